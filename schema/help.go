package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// HelpStatus is the lifecycle state of a help request
type HelpStatus string

const (
	HelpPending    HelpStatus = "pending"
	HelpAssigned   HelpStatus = "assigned"
	HelpInProgress HelpStatus = "in_progress"
	HelpCompleted  HelpStatus = "completed"
	HelpCancelled  HelpStatus = "cancelled"
)

// HelpStatuses lists every status in lifecycle order
var HelpStatuses = []HelpStatus{
	HelpPending,
	HelpAssigned,
	HelpInProgress,
	HelpCompleted,
	HelpCancelled,
}

func (s HelpStatus) Valid() bool {
	switch s {
	case HelpPending, HelpAssigned, HelpInProgress, HelpCompleted, HelpCancelled:
		return true
	}
	return false
}

// Terminal reports whether no transition leaves the status.
func (s HelpStatus) Terminal() bool {
	return s == HelpCompleted || s == HelpCancelled
}

// Assigned reports whether a request in this status must have a helper.
func (s HelpStatus) Assigned() bool {
	return s == HelpAssigned || s == HelpInProgress || s == HelpCompleted
}

type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return true
	}
	return false
}

// Location is a snapshot of the farmer's address taken when the request is created
type Location struct {
	State    string `json:"state"`
	District string `json:"district"`
	Village  string `json:"village"`
}

func (l Location) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *Location) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, l)
}

// ContactInfo is a snapshot of the helper's contact details taken at submission
type ContactInfo struct {
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
}

func (c ContactInfo) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *ContactInfo) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, c)
}

type HelpRequest struct {
	ID            uuid.UUID       `json:"id" gorm:"type:uuid;primary_key"`
	FarmerID      uuid.UUID       `json:"farmer_id" gorm:"type:uuid;not null;index"`
	Farmer        *AccountProfile `json:"farmer,omitempty" gorm:"foreignkey:FarmerID;association_foreignkey:AccountID"`
	Title         string          `json:"title" gorm:"not null"`
	Description   string          `json:"description" gorm:"type:text;not null"`
	Category      string          `json:"category" gorm:"type:varchar(64);not null"`
	Urgency       Urgency         `json:"urgency" gorm:"type:varchar(16);not null"`
	Location      Location        `json:"location" gorm:"type:jsonb;not null;default:'{}'"`
	RequiredItems pq.StringArray  `json:"required_items" gorm:"type:text[]"`
	EstimatedCost *float64        `json:"estimated_cost"`
	Status        HelpStatus      `json:"status" gorm:"type:varchar(16);not null;index"`
	AssignedTo    *uuid.UUID      `json:"assigned_to" gorm:"type:uuid;index"`
	AssignedAt    *time.Time      `json:"assigned_at"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type HelpResponse struct {
	ID            uuid.UUID       `json:"id" gorm:"type:uuid;primary_key"`
	RequestID     uuid.UUID       `json:"request_id" gorm:"type:uuid;not null;index"`
	HelperID      uuid.UUID       `json:"helper_id" gorm:"type:uuid;not null;index"`
	Helper        *AccountProfile `json:"helper,omitempty" gorm:"foreignkey:HelperID;association_foreignkey:AccountID"`
	Message       string          `json:"message" gorm:"type:text;not null"`
	OfferedItems  pq.StringArray  `json:"offered_items" gorm:"type:text[]"`
	OfferedAmount *float64        `json:"offered_amount"`
	ContactInfo   ContactInfo     `json:"contact_info" gorm:"type:jsonb;not null;default:'{}'"`
	IsAccepted    bool            `json:"is_accepted" gorm:"not null;default:false"`
	CreatedAt     time.Time       `json:"created_at"`
}

// HelpFilter narrows a help request query. Zero fields do not filter.
type HelpFilter struct {
	FarmerID   *uuid.UUID
	AssignedTo *uuid.UUID
	Statuses   []HelpStatus
	Urgency    Urgency
	Category   string
	Query      string
	Limit      int
}

// ResponseFilter narrows a help response query. Zero fields do not filter.
type ResponseFilter struct {
	RequestID *uuid.UUID
	HelperID  *uuid.UUID
}

// FarmerDashboard aggregates the requests owned by a farmer
type FarmerDashboard struct {
	StatusCounts map[HelpStatus]int64 `json:"status_counts"`
	Total        int64                `json:"total"`
	Recent       []HelpRequest        `json:"recent"`
}

// HelperDashboard aggregates the work visible to an NGO or donor
type HelperDashboard struct {
	PendingCount   int64         `json:"pending_count"`
	AssignedCount  int64         `json:"assigned_count"`
	CompletedCount int64         `json:"completed_count"`
	ResponsesCount int64         `json:"responses_count"`
	RecentPending  []HelpRequest `json:"recent_pending"`
	ActiveAssigned []HelpRequest `json:"active_assigned"`
}
