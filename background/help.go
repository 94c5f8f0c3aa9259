package background

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/kisan-sahay/kisan-api/schema"
	"github.com/kisan-sahay/kisan-api/utils"
)

const (
	TaskNotifyHelpResponded     = "notify_help_responded"
	TaskNotifyHelpAccepted      = "notify_help_accepted"
	TaskNotifyHelpStatusChanged = "notify_help_status_changed"
)

// NotifyHelpResponded is a background job to tell a farmer that a helper made
// an offer on one of the farmer's requests
func (m *BackgroundManager) NotifyHelpResponded(helpID, responseID, farmerID string) error {
	help, recipient, err := m.loadHelpAndAccount(helpID, farmerID)
	if err != nil {
		return err
	}

	rid, err := uuid.Parse(responseID)
	if err != nil {
		return err
	}

	response, err := m.store.GetHelpResponse(rid)
	if err != nil {
		return err
	}

	if response.RequestID != help.ID {
		return fmt.Errorf("response %s does not belong to help %s", responseID, helpID)
	}

	helper := "A helper"
	if response.Helper != nil {
		helper = response.Helper.FullName
		if response.Helper.OrganizationName != "" {
			helper = response.Helper.OrganizationName
		}
	}

	return m.notifyLocalized(recipient, "help.responded", map[string]interface{}{
		"Title":  help.Title,
		"Helper": helper,
	}, map[string]interface{}{
		"notification_type": "NOTIFY_HELP_RESPONDED",
		"help_id":           helpID,
	})
}

// NotifyHelpAccepted is a background job to send notification to the helper
// whose response was accepted
func (m *BackgroundManager) NotifyHelpAccepted(helpID, helperID string) error {
	help, recipient, err := m.loadHelpAndAccount(helpID, helperID)
	if err != nil {
		return err
	}

	return m.notifyLocalized(recipient, "help.accepted", map[string]interface{}{
		"Title": help.Title,
	}, map[string]interface{}{
		"notification_type": "NOTIFY_HELP_ACCEPTED",
		"help_id":           helpID,
	})
}

// NotifyHelpStatusChanged is a background job to tell the other participant of
// a request that its status moved
func (m *BackgroundManager) NotifyHelpStatusChanged(helpID, recipientID, status string) error {
	help, recipient, err := m.loadHelpAndAccount(helpID, recipientID)
	if err != nil {
		return err
	}

	loc := utils.NewLocalizer(recipient.Profile.PreferredLanguage)
	statusName, err := loc.Localize(&i18n.LocalizeConfig{MessageID: "help.status." + status})
	if err != nil {
		statusName = status
	}

	return m.notifyLocalized(recipient, "help.status_changed", map[string]interface{}{
		"Title":  help.Title,
		"Status": statusName,
	}, map[string]interface{}{
		"notification_type": "NOTIFY_HELP_STATUS_CHANGED",
		"help_id":           helpID,
		"status":            status,
	})
}

func (m *BackgroundManager) loadHelpAndAccount(helpID, accountID string) (*schema.HelpRequest, *schema.Account, error) {
	hid, err := uuid.Parse(helpID)
	if err != nil {
		return nil, nil, err
	}

	aid, err := uuid.Parse(accountID)
	if err != nil {
		return nil, nil, err
	}

	help, err := m.store.GetHelpRequest(hid)
	if err != nil {
		return nil, nil, err
	}

	account, err := m.store.GetAccount(aid)
	if err != nil {
		return nil, nil, err
	}

	return help, account, nil
}

// notifyLocalized renders `<messageID>.heading` and `<messageID>.content` in the
// preferred language of the recipient and sends them
func (m *BackgroundManager) notifyLocalized(recipient *schema.Account, messageID string, templateData, data map[string]interface{}) error {
	loc := utils.NewLocalizer(recipient.Profile.PreferredLanguage)

	heading, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID + ".heading",
		TemplateData: templateData,
	})
	if err != nil {
		return err
	}

	content, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID + ".content",
		TemplateData: templateData,
	})
	if err != nil {
		return err
	}

	log.WithField("account_id", recipient.ID).WithField("message", messageID).Debug("send notification")
	return m.notificationCenter.NotifyAccountByText(recipient.ID.String(), heading, content, data)
}
