package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/kisan-sahay/kisan-api/schema"
)

var (
	ErrRequestNotExist   = fmt.Errorf("help request not found")
	ErrRequestNotPending = fmt.Errorf("the request is no longer pending")
	ErrResponseNotExist  = fmt.Errorf("help response not found for the request")
	ErrStatusConflict    = fmt.Errorf("the request status has been changed by someone else")
)

// CreateHelpRequest inserts a help request
func (s *KisanStore) CreateHelpRequest(help *schema.HelpRequest) error {
	return s.ormDB.Create(help).Error
}

// GetHelpRequest returns a help request with the farmer profile inlined
func (s *KisanStore) GetHelpRequest(helpID uuid.UUID) (*schema.HelpRequest, error) {
	var help schema.HelpRequest

	if err := s.ormDB.Preload("Farmer").Where("id = ?", helpID).First(&help).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrRequestNotExist
		}
		return nil, err
	}

	return &help, nil
}

// ListHelpRequests returns the requests matching a filter, newest first
func (s *KisanStore) ListHelpRequests(filter schema.HelpFilter) ([]schema.HelpRequest, error) {
	helps := []schema.HelpRequest{}

	query := s.ormDB.Preload("Farmer").Scopes(helpFilterScope(filter)).Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Find(&helps).Error; err != nil {
		return nil, err
	}

	return helps, nil
}

// CountHelpRequests counts the requests matching a filter. Limit is ignored.
func (s *KisanStore) CountHelpRequests(filter schema.HelpFilter) (int64, error) {
	var count int64
	if err := s.ormDB.Model(schema.HelpRequest{}).Scopes(helpFilterScope(filter)).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateHelpStatus moves a request from one status to another. The update only
// applies when the request is still in `from` and the actor is either the
// owner or the assigned helper.
func (s *KisanStore) UpdateHelpStatus(helpID, actorID uuid.UUID, from, to schema.HelpStatus) error {
	result := s.ormDB.Model(schema.HelpRequest{}).
		Where("id = ? AND status = ? AND (farmer_id = ? OR assigned_to = ?)", helpID, from, actorID, actorID).
		Update("status", to)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrStatusConflict
	}

	return nil
}

// CreateHelpResponse appends a response to a pending request. The request row
// is share-locked for the insert so that a concurrent acceptance either waits
// for the response or makes the insert fail.
func (s *KisanStore) CreateHelpResponse(response *schema.HelpResponse) error {
	return s.ormDB.Transaction(func(tx *gorm.DB) error {
		var help schema.HelpRequest
		if err := tx.Set("gorm:query_option", "FOR SHARE").
			Where("id = ?", response.RequestID).
			First(&help).Error; err != nil {
			if gorm.IsRecordNotFoundError(err) {
				return ErrRequestNotExist
			}
			return err
		}

		if help.Status != schema.HelpPending {
			return ErrRequestNotPending
		}

		return tx.Create(response).Error
	})
}

// GetHelpResponse returns a single response with the helper profile inlined
func (s *KisanStore) GetHelpResponse(responseID uuid.UUID) (*schema.HelpResponse, error) {
	var response schema.HelpResponse

	if err := s.ormDB.Preload("Helper").Where("id = ?", responseID).First(&response).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrResponseNotExist
		}
		return nil, err
	}

	return &response, nil
}

// ListHelpResponses returns the responses of a request with the helper profile
// inlined, newest first
func (s *KisanStore) ListHelpResponses(helpID uuid.UUID) ([]schema.HelpResponse, error) {
	responses := []schema.HelpResponse{}

	if err := s.ormDB.Preload("Helper").
		Where("request_id = ?", helpID).
		Order("created_at DESC").
		Find(&responses).Error; err != nil {
		return nil, err
	}

	return responses, nil
}

// CountHelpResponses counts the responses matching a filter
func (s *KisanStore) CountHelpResponses(filter schema.ResponseFilter) (int64, error) {
	query := s.ormDB.Model(schema.HelpResponse{})
	if filter.RequestID != nil {
		query = query.Where("request_id = ?", *filter.RequestID)
	}
	if filter.HelperID != nil {
		query = query.Where("helper_id = ?", *filter.HelperID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// AcceptHelpResponse assigns the helper of a response to its request and marks
// the response accepted, in one transaction. The request is only updated while
// it is pending and owned by farmerID, so of two concurrent acceptances the
// second finds no row to update and gets ErrRequestNotPending.
func (s *KisanStore) AcceptHelpResponse(farmerID uuid.UUID, response schema.HelpResponse, at time.Time) error {
	err := s.ormDB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(schema.HelpRequest{}).
			Where("id = ? AND farmer_id = ? AND status = ?", response.RequestID, farmerID, schema.HelpPending).
			Updates(map[string]interface{}{
				"status":      schema.HelpAssigned,
				"assigned_to": response.HelperID,
				"assigned_at": at,
			})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return ErrRequestNotPending
		}

		result = tx.Model(schema.HelpResponse{}).
			Where("id = ? AND request_id = ? AND helper_id = ?", response.ID, response.RequestID, response.HelperID).
			Update("is_accepted", true)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return ErrResponseNotExist
		}

		return nil
	})

	// the partial unique index on accepted responses is the last line
	if isUniqueViolation(err) {
		return ErrRequestNotPending
	}

	return err
}

// likeEscaper makes LIKE wildcards in user input match literally
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func helpFilterScope(filter schema.HelpFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.FarmerID != nil {
			db = db.Where("farmer_id = ?", *filter.FarmerID)
		}
		if filter.AssignedTo != nil {
			db = db.Where("assigned_to = ?", *filter.AssignedTo)
		}
		if len(filter.Statuses) > 0 {
			db = db.Where("status IN (?)", filter.Statuses)
		}
		if filter.Urgency != "" {
			db = db.Where("urgency = ?", filter.Urgency)
		}
		if filter.Category != "" {
			db = db.Where("category = ?", filter.Category)
		}
		if filter.Query != "" {
			pattern := "%" + likeEscaper.Replace(filter.Query) + "%"
			db = db.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
		}
		return db
	}
}
