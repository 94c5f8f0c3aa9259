package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kisan-sahay/kisan-api/store"
)

const defaultConcurrency = 5

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "background")
}

// BackgroundManager is a struct for kisan background manager
type BackgroundManager struct {
	store store.KisanCore

	notificationCenter NotificationCenter

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(ormDB *gorm.DB, mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	)

	return &BackgroundManager{
		store:              store.NewKisanStore(ormDB),
		notificationCenter: NewInboxNotificationCenter(mongoStore),
		taskServer:         taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// RegisterHelpTasks registers the notification tasks of the help lifecycle
func (m *BackgroundManager) RegisterHelpTasks() error {
	for name, taskFunc := range map[string]interface{}{
		TaskNotifyHelpResponded:     m.NotifyHelpResponded,
		TaskNotifyHelpAccepted:      m.NotifyHelpAccepted,
		TaskNotifyHelpStatusChanged: m.NotifyHelpStatusChanged,
	} {
		if err := m.RegisterTask(name, taskFunc); err != nil {
			return err
		}
	}
	return nil
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	concurrency := viper.GetInt("worker.concurrency")
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	m.worker = m.taskServer.NewWorker("kisan-worker", concurrency)
	return m.worker.Launch()
}
