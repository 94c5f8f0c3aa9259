package help

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kisan-sahay/kisan-api/schema"
	"github.com/kisan-sahay/kisan-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "help")
}

// Store is the persistence the engine works on. It is satisfied by store.KisanStore.
type Store interface {
	CreateHelpRequest(help *schema.HelpRequest) error
	GetHelpRequest(helpID uuid.UUID) (*schema.HelpRequest, error)
	ListHelpRequests(filter schema.HelpFilter) ([]schema.HelpRequest, error)
	CountHelpRequests(filter schema.HelpFilter) (int64, error)
	UpdateHelpStatus(helpID, actorID uuid.UUID, from, to schema.HelpStatus) error

	CreateHelpResponse(response *schema.HelpResponse) error
	GetHelpResponse(responseID uuid.UUID) (*schema.HelpResponse, error)
	ListHelpResponses(helpID uuid.UUID) ([]schema.HelpResponse, error)
	CountHelpResponses(filter schema.ResponseFilter) (int64, error)
	AcceptHelpResponse(farmerID uuid.UUID, response schema.HelpResponse, at time.Time) error
}

// Notifier is told about lifecycle events after they are stored. Its failures
// are logged and never undo or fail the operation.
type Notifier interface {
	NotifyHelpResponded(helpID, responseID, farmerID string) error
	NotifyHelpAccepted(helpID, helperID string) error
	NotifyHelpStatusChanged(helpID, recipientID, status string) error
}

// Engine runs the lifecycle of help requests: creation, helper responses,
// acceptance of one response and the status changes after it. Every operation
// takes the identity of the caller and checks it before touching the store.
type Engine struct {
	store    Store
	notifier Notifier
	validate *validate
	now      func() time.Time
}

func NewEngine(s Store, n Notifier) *Engine {
	return &Engine{
		store:    s,
		notifier: n,
		validate: newValidate(),
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Create opens a help request for a farmer. The location is copied from the
// farmer's profile and does not follow later profile edits.
func (e *Engine) Create(id schema.Identity, params CreateParams) (*schema.HelpRequest, error) {
	if !CanCreate(id.Role) {
		return nil, &AuthorizationError{Action: "create help requests", Role: id.Role}
	}

	params.normalize()
	if err := e.validate.check(params); err != nil {
		return nil, err
	}

	now := e.now()
	help := &schema.HelpRequest{
		ID:            uuid.New(),
		FarmerID:      id.AccountID,
		Title:         params.Title,
		Description:   params.Description,
		Category:      params.Category,
		Urgency:       params.Urgency,
		Location:      id.Profile.Location(),
		RequiredItems: params.RequiredItems,
		EstimatedCost: params.EstimatedCost,
		Status:        schema.HelpPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := e.store.CreateHelpRequest(help); err != nil {
		return nil, &TransportError{Err: err}
	}

	log.WithField("help_id", help.ID).WithField("farmer_id", id.AccountID).Info("help request created")
	return help, nil
}

// Get returns a request the caller is allowed to see
func (e *Engine) Get(id schema.Identity, helpID uuid.UUID) (*schema.HelpRequest, error) {
	help, err := e.getRequest(helpID)
	if err != nil {
		return nil, err
	}

	if !CanView(*help, id.AccountID, id.Role) {
		return nil, &AuthorizationError{Action: "view this help request", Role: id.Role}
	}

	return help, nil
}

// List returns the requests visible to the caller. Farmers are always limited
// to their own requests.
func (e *Engine) List(id schema.Identity, filter schema.HelpFilter) ([]schema.HelpRequest, error) {
	switch id.Role {
	case schema.RoleFarmer:
		filter.FarmerID = &id.AccountID
	case schema.RoleNGO, schema.RoleDonor, schema.RoleAdmin:
	default:
		return nil, &AuthorizationError{Action: "list help requests", Role: id.Role}
	}

	helps, err := e.store.ListHelpRequests(filter)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	return helps, nil
}

// SubmitResponse records a helper's offer on a pending request. It does not
// change the request.
func (e *Engine) SubmitResponse(id schema.Identity, helpID uuid.UUID, params ResponseParams) (*schema.HelpResponse, error) {
	if !id.Role.IsHelper() {
		return nil, &AuthorizationError{Action: "respond to help requests", Role: id.Role}
	}

	help, err := e.getRequest(helpID)
	if err != nil {
		return nil, err
	}

	if !CanRespond(*help, id.AccountID, id.Role) {
		return nil, &StateError{Status: help.Status, Reason: "only pending requests take new offers"}
	}

	params.normalize()
	if err := e.validate.check(params); err != nil {
		return nil, err
	}

	contact := schema.ContactInfo{
		Phone:        id.Profile.Phone,
		Email:        id.Email,
		Organization: id.Profile.OrganizationName,
	}
	if params.ContactInfo != nil {
		contact = *params.ContactInfo
	}

	response := &schema.HelpResponse{
		ID:            uuid.New(),
		RequestID:     help.ID,
		HelperID:      id.AccountID,
		Message:       params.Message,
		OfferedItems:  params.OfferedItems,
		OfferedAmount: params.OfferedAmount,
		ContactInfo:   contact,
		IsAccepted:    false,
		CreatedAt:     e.now(),
	}

	if err := e.store.CreateHelpResponse(response); err != nil {
		switch {
		case errors.Is(err, store.ErrRequestNotPending):
			return nil, &StateError{Reason: "the request stopped taking offers"}
		case errors.Is(err, store.ErrRequestNotExist):
			return nil, &NotFoundError{Kind: "help request", ID: helpID.String()}
		default:
			return nil, &TransportError{Err: err}
		}
	}

	log.WithField("help_id", help.ID).WithField("helper_id", id.AccountID).Info("help response submitted")
	e.notify("help_responded", func() error {
		return e.notifier.NotifyHelpResponded(help.ID.String(), response.ID.String(), help.FarmerID.String())
	})

	return response, nil
}

// ListResponses returns the responses of a request, newest first
func (e *Engine) ListResponses(id schema.Identity, helpID uuid.UUID) ([]schema.HelpResponse, error) {
	help, err := e.Get(id, helpID)
	if err != nil {
		return nil, err
	}

	responses, err := e.store.ListHelpResponses(help.ID)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	return responses, nil
}

// AcceptResponse lets the owner pick one response. The request becomes
// assigned to the response's helper and the response is flagged accepted, both
// or neither. Once a request has left pending no other response can be accepted.
func (e *Engine) AcceptResponse(id schema.Identity, helpID, responseID uuid.UUID) (*schema.HelpRequest, error) {
	help, err := e.getRequest(helpID)
	if err != nil {
		return nil, err
	}

	if help.FarmerID != id.AccountID {
		return nil, &AuthorizationError{Action: "accept responses of this help request", Role: id.Role}
	}

	if help.Status != schema.HelpPending {
		return nil, &StateError{Status: help.Status, Reason: "a response has already been accepted"}
	}

	response, err := e.store.GetHelpResponse(responseID)
	if err != nil {
		if errors.Is(err, store.ErrResponseNotExist) {
			return nil, &StateError{Status: help.Status, Reason: "the response does not belong to this request"}
		}
		return nil, &TransportError{Err: err}
	}

	if response.RequestID != help.ID {
		return nil, &StateError{Status: help.Status, Reason: "the response does not belong to this request"}
	}

	now := e.now()
	if err := e.store.AcceptHelpResponse(id.AccountID, *response, now); err != nil {
		switch {
		case errors.Is(err, store.ErrRequestNotPending):
			return nil, &StateError{Reason: "another response was accepted first"}
		case errors.Is(err, store.ErrResponseNotExist):
			return nil, &StateError{Status: help.Status, Reason: "the response does not belong to this request"}
		default:
			return nil, &TransportError{Err: err}
		}
	}

	help.Status = schema.HelpAssigned
	help.AssignedTo = &response.HelperID
	help.AssignedAt = &now
	help.UpdatedAt = now

	log.WithField("help_id", help.ID).WithField("helper_id", response.HelperID).Info("help response accepted")
	e.notify("help_accepted", func() error {
		return e.notifier.NotifyHelpAccepted(help.ID.String(), response.HelperID.String())
	})

	return help, nil
}

// AdvanceStatus moves an assigned request forward or cancels a request. Only
// the owner and the assigned helper may do it.
func (e *Engine) AdvanceStatus(id schema.Identity, helpID uuid.UUID, to schema.HelpStatus) (*schema.HelpRequest, error) {
	if !to.Valid() {
		return nil, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", to)}
	}

	help, err := e.getRequest(helpID)
	if err != nil {
		return nil, err
	}

	if !CanAdvance(*help, id.AccountID) {
		return nil, &AuthorizationError{Action: "change the status of this help request", Role: id.Role}
	}

	if to == schema.HelpAssigned {
		return nil, &StateError{Status: help.Status, Reason: "requests are assigned by accepting a response"}
	}

	if !CanTransition(help.Status, to) {
		return nil, &StateError{Status: help.Status, Reason: fmt.Sprintf("cannot move to %s", to)}
	}

	if err := e.store.UpdateHelpStatus(help.ID, id.AccountID, help.Status, to); err != nil {
		if errors.Is(err, store.ErrStatusConflict) {
			return nil, &StateError{Reason: "the status was changed concurrently"}
		}
		return nil, &TransportError{Err: err}
	}

	help.Status = to
	help.UpdatedAt = e.now()

	log.WithField("help_id", help.ID).WithField("status", to).Info("help status changed")
	if recipient, ok := counterparty(*help, id.AccountID); ok {
		e.notify("help_status_changed", func() error {
			return e.notifier.NotifyHelpStatusChanged(help.ID.String(), recipient.String(), string(to))
		})
	}

	return help, nil
}

func (e *Engine) getRequest(helpID uuid.UUID) (*schema.HelpRequest, error) {
	help, err := e.store.GetHelpRequest(helpID)
	if err != nil {
		if errors.Is(err, store.ErrRequestNotExist) {
			return nil, &NotFoundError{Kind: "help request", ID: helpID.String()}
		}
		return nil, &TransportError{Err: err}
	}
	return help, nil
}

func (e *Engine) notify(event string, send func() error) {
	if e.notifier == nil {
		return
	}
	if err := send(); err != nil {
		log.WithError(err).WithField("event", event).Error("enqueue notification")
	}
}

// counterparty is the other participant of a request than the actor
func counterparty(help schema.HelpRequest, actorID uuid.UUID) (uuid.UUID, bool) {
	if help.AssignedTo == nil {
		return uuid.Nil, false
	}
	if actorID == help.FarmerID {
		return *help.AssignedTo, true
	}
	return help.FarmerID, true
}
