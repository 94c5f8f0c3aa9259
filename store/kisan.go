package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/kisan-sahay/kisan-api/schema"
)

const uniqueViolationCode = "23505"

// KisanCore is the relational datastore of accounts and help requests
type KisanCore interface {
	Ping() error

	// Account
	CreateAccount(email, password string, profile schema.AccountProfile) (*schema.Account, error)
	GetAccount(accountID uuid.UUID) (*schema.Account, error)
	VerifyAccountPassword(email, password string) (*schema.Account, error)
	UpdateAccountProfile(accountID uuid.UUID, update schema.ProfileUpdate) (*schema.Account, error)

	// Help
	CreateHelpRequest(help *schema.HelpRequest) error
	GetHelpRequest(helpID uuid.UUID) (*schema.HelpRequest, error)
	ListHelpRequests(filter schema.HelpFilter) ([]schema.HelpRequest, error)
	CountHelpRequests(filter schema.HelpFilter) (int64, error)
	UpdateHelpStatus(helpID, actorID uuid.UUID, from, to schema.HelpStatus) error

	// Help response
	CreateHelpResponse(response *schema.HelpResponse) error
	GetHelpResponse(responseID uuid.UUID) (*schema.HelpResponse, error)
	ListHelpResponses(helpID uuid.UUID) ([]schema.HelpResponse, error)
	CountHelpResponses(filter schema.ResponseFilter) (int64, error)
	AcceptHelpResponse(farmerID uuid.UUID, response schema.HelpResponse, at time.Time) error
}

// KisanStore is an implementation of KisanCore
type KisanStore struct {
	ormDB *gorm.DB
}

func NewKisanStore(ormDB *gorm.DB) *KisanStore {
	return &KisanStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *KisanStore) Ping() error {
	return s.ormDB.DB().Ping()
}

func isUniqueViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == uniqueViolationCode
}
