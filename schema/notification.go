package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	NotificationCollection = "notification"
)

// Notification is an in-app message kept in the recipient's inbox
type Notification struct {
	ID        primitive.ObjectID     `json:"id" bson:"_id,omitempty"`
	AccountID string                 `json:"account_id" bson:"account_id"`
	Heading   string                 `json:"heading" bson:"heading"`
	Content   string                 `json:"content" bson:"content"`
	Data      map[string]interface{} `json:"data" bson:"data"`
	Read      bool                   `json:"read" bson:"read"`
	CreatedAt time.Time              `json:"created_at" bson:"created_at"`
}
