package background

import (
	"github.com/kisan-sahay/kisan-api/schema"
	"github.com/kisan-sahay/kisan-api/store"
)

type NotificationCenter interface {
	NotifyAccountByText(accountID, heading, content string, data map[string]interface{}) error
}

// InboxNotificationCenter delivers notifications into the in-app inbox of an account
type InboxNotificationCenter struct {
	inbox store.Notification
}

func NewInboxNotificationCenter(inbox store.Notification) *InboxNotificationCenter {
	return &InboxNotificationCenter{
		inbox: inbox,
	}
}

func (n *InboxNotificationCenter) NotifyAccountByText(accountID, heading, content string, data map[string]interface{}) error {
	return n.inbox.AddNotification(schema.Notification{
		AccountID: accountID,
		Heading:   heading,
		Content:   content,
		Data:      data,
	})
}
