package schema

import (
	"time"

	"github.com/google/uuid"
)

type Account struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primary_key"`
	Email        string         `json:"email" gorm:"type:varchar(320);unique_index;not null"`
	PasswordHash string         `json:"-" gorm:"not null"`
	Profile      AccountProfile `json:"profile" gorm:"foreignkey:ProfileID"`
	ProfileID    uuid.UUID      `json:"-" gorm:"type:uuid"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// AccountProfile is the mutable part of an account. Help requests and responses
// copy what they need from it at creation time.
type AccountProfile struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	AccountID         uuid.UUID `json:"account_id" gorm:"type:uuid;unique_index;not null"`
	FullName          string    `json:"full_name"`
	Role              Role      `json:"role" gorm:"type:varchar(16);not null"`
	Phone             string    `json:"phone"`
	State             string    `json:"state"`
	District          string    `json:"district"`
	Village           string    `json:"village"`
	OrganizationName  string    `json:"organization_name"`
	PreferredLanguage string    `json:"preferred_language" gorm:"default:'en'"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Location returns the profile address as a request location snapshot.
func (p AccountProfile) Location() Location {
	return Location{
		State:    p.State,
		District: p.District,
		Village:  p.Village,
	}
}

// Identity is the authenticated caller of an operation. It is built once per
// API call from the verified token and the stored account.
type Identity struct {
	AccountID uuid.UUID
	Email     string
	Role      Role
	Profile   AccountProfile
}

// IdentityOf builds the caller identity of an account
func IdentityOf(a *Account) Identity {
	return Identity{
		AccountID: a.ID,
		Email:     a.Email,
		Role:      a.Profile.Role,
		Profile:   a.Profile,
	}
}

// ProfileUpdate carries the profile fields a user may change. Nil fields are
// left untouched. The role is not part of it.
type ProfileUpdate struct {
	FullName          *string `json:"full_name"`
	Phone             *string `json:"phone"`
	State             *string `json:"state"`
	District          *string `json:"district"`
	Village           *string `json:"village"`
	OrganizationName  *string `json:"organization_name"`
	PreferredLanguage *string `json:"preferred_language"`
}

// Columns returns the changed fields keyed by column name
func (u ProfileUpdate) Columns() map[string]interface{} {
	columns := map[string]interface{}{}
	for column, value := range map[string]*string{
		"full_name":          u.FullName,
		"phone":              u.Phone,
		"state":              u.State,
		"district":           u.District,
		"village":            u.Village,
		"organization_name":  u.OrganizationName,
		"preferred_language": u.PreferredLanguage,
	} {
		if value != nil {
			columns[column] = *value
		}
	}
	return columns
}
