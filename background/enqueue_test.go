package background

import (
	"errors"
	"testing"

	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/stretchr/testify/assert"
)

type recordingSender struct {
	signatures []*tasks.Signature
	err        error
}

func (r *recordingSender) SendTask(signature *tasks.Signature) (*result.AsyncResult, error) {
	r.signatures = append(r.signatures, signature)
	return nil, r.err
}

func TestEnqueuer(t *testing.T) {
	sender := &recordingSender{}
	e := NewEnqueuer(sender)

	assert.NoError(t, e.NotifyHelpResponded("h1", "r1", "f1"))
	assert.NoError(t, e.NotifyHelpAccepted("h1", "n1"))
	assert.NoError(t, e.NotifyHelpStatusChanged("h1", "f1", "completed"))

	if assert.Len(t, sender.signatures, 3) {
		assert.Equal(t, TaskNotifyHelpResponded, sender.signatures[0].Name)
		assert.Equal(t, []tasks.Arg{
			{Type: "string", Value: "h1"},
			{Type: "string", Value: "r1"},
			{Type: "string", Value: "f1"},
		}, sender.signatures[0].Args)

		assert.Equal(t, TaskNotifyHelpAccepted, sender.signatures[1].Name)

		assert.Equal(t, TaskNotifyHelpStatusChanged, sender.signatures[2].Name)
		assert.Equal(t, "completed", sender.signatures[2].Args[2].Value)
	}
}

func TestEnqueuerBrokerFailure(t *testing.T) {
	e := NewEnqueuer(&recordingSender{err: errors.New("redis: connection refused")})
	assert.Error(t, e.NotifyHelpAccepted("h1", "n1"))
}
