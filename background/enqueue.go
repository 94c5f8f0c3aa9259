package background

import (
	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"
)

// TaskSender is the part of a machinery server used to enqueue tasks
type TaskSender interface {
	SendTask(signature *tasks.Signature) (*result.AsyncResult, error)
}

// Enqueuer turns help lifecycle events into machinery tasks handled by the worker
type Enqueuer struct {
	sender TaskSender
}

func NewEnqueuer(sender TaskSender) *Enqueuer {
	return &Enqueuer{sender: sender}
}

func (e *Enqueuer) NotifyHelpResponded(helpID, responseID, farmerID string) error {
	return e.send(TaskNotifyHelpResponded, helpID, responseID, farmerID)
}

func (e *Enqueuer) NotifyHelpAccepted(helpID, helperID string) error {
	return e.send(TaskNotifyHelpAccepted, helpID, helperID)
}

func (e *Enqueuer) NotifyHelpStatusChanged(helpID, recipientID, status string) error {
	return e.send(TaskNotifyHelpStatusChanged, helpID, recipientID, status)
}

func (e *Enqueuer) send(name string, args ...string) error {
	signature := &tasks.Signature{
		Name:       name,
		RetryCount: 3,
	}
	for _, a := range args {
		signature.Args = append(signature.Args, tasks.Arg{
			Type:  "string",
			Value: a,
		})
	}

	if _, err := e.sender.SendTask(signature); err != nil {
		return err
	}

	log.WithField("task", name).WithField("args", args).Debug("task enqueued")
	return nil
}
