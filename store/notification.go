package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kisan-sahay/kisan-api/schema"
)

var ErrNotificationNotExist = fmt.Errorf("notification not found")

type Notification interface {
	AddNotification(notification schema.Notification) error
	ListNotifications(accountID string, limit int64) ([]schema.Notification, error)
	MarkNotificationRead(accountID string, notificationID primitive.ObjectID) error
}

// AddNotification puts a message into an account inbox
func (m *mongoDB) AddNotification(notification schema.Notification) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.NotificationCollection)

	notification.ID = primitive.NewObjectID()
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now().UTC()
	}

	_, err := c.InsertOne(ctx, notification)
	return err
}

// ListNotifications returns the newest messages of an account inbox
func (m *mongoDB) ListNotifications(accountID string, limit int64) ([]schema.Notification, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.NotificationCollection)

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := c.Find(ctx, bson.M{"account_id": accountID}, opts)
	if err != nil {
		return nil, err
	}

	notifications := make([]schema.Notification, 0)
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}

	return notifications, nil
}

func (m *mongoDB) MarkNotificationRead(accountID string, notificationID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.NotificationCollection)

	result, err := c.UpdateOne(ctx,
		bson.M{"_id": notificationID, "account_id": accountID},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrNotificationNotExist
	}

	return nil
}
