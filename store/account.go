package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"golang.org/x/crypto/bcrypt"

	"github.com/kisan-sahay/kisan-api/schema"
)

var (
	ErrAccountNotExist    = fmt.Errorf("account not found")
	ErrAccountTaken       = fmt.Errorf("the email has been registered")
	ErrInvalidCredentials = fmt.Errorf("invalid email or password")
)

// CreateAccount registers an account with a hashed password and its profile
func (s *KisanStore) CreateAccount(email, password string, profile schema.AccountProfile) (*schema.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	accountID := uuid.New()
	profile.ID = uuid.New()
	profile.AccountID = accountID
	if profile.PreferredLanguage == "" {
		profile.PreferredLanguage = "en"
	}

	a := schema.Account{
		ID:           accountID,
		Email:        normalizeEmail(email),
		PasswordHash: string(hash),
		Profile:      profile,
		ProfileID:    profile.ID,
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAccountTaken
		}
		return nil, err
	}

	return &a, nil
}

// GetAccount returns an account with its profile
func (s *KisanStore) GetAccount(accountID uuid.UUID) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Preload("Profile").Where("id = ?", accountID).First(&a).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrAccountNotExist
		}
		return nil, err
	}
	return &a, nil
}

// VerifyAccountPassword returns the account of a matching email and password.
// Unknown emails and wrong passwords are not distinguished.
func (s *KisanStore) VerifyAccountPassword(email, password string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Preload("Profile").Where("email = ?", normalizeEmail(email)).First(&a).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &a, nil
}

// UpdateAccountProfile applies the non-nil fields of update to the profile
func (s *KisanStore) UpdateAccountProfile(accountID uuid.UUID, update schema.ProfileUpdate) (*schema.Account, error) {
	columns := update.Columns()
	if len(columns) > 0 {
		result := s.ormDB.Model(schema.AccountProfile{}).
			Where("account_id = ?", accountID).
			Updates(columns)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrAccountNotExist
		}
	}

	return s.GetAccount(accountID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
