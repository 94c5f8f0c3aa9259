package help

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kisan-sahay/kisan-api/schema"
	"github.com/kisan-sahay/kisan-api/store"
)

// memStore keeps requests and responses in memory with the same conditional
// write rules as the postgres store
type memStore struct {
	sync.Mutex
	requests  map[uuid.UUID]schema.HelpRequest
	responses []schema.HelpResponse
}

func newMemStore() *memStore {
	return &memStore{
		requests: map[uuid.UUID]schema.HelpRequest{},
	}
}

func (m *memStore) CreateHelpRequest(help *schema.HelpRequest) error {
	m.Lock()
	defer m.Unlock()
	m.requests[help.ID] = *help
	return nil
}

func (m *memStore) GetHelpRequest(helpID uuid.UUID) (*schema.HelpRequest, error) {
	m.Lock()
	defer m.Unlock()
	help, ok := m.requests[helpID]
	if !ok {
		return nil, store.ErrRequestNotExist
	}
	return &help, nil
}

func (m *memStore) matches(help schema.HelpRequest, filter schema.HelpFilter) bool {
	if filter.FarmerID != nil && help.FarmerID != *filter.FarmerID {
		return false
	}
	if filter.AssignedTo != nil && (help.AssignedTo == nil || *help.AssignedTo != *filter.AssignedTo) {
		return false
	}
	if len(filter.Statuses) > 0 {
		found := false
		for _, s := range filter.Statuses {
			if s == help.Status {
				found = true
			}
		}
		if !found {
			return false
		}
	}
	if filter.Urgency != "" && help.Urgency != filter.Urgency {
		return false
	}
	return true
}

func (m *memStore) ListHelpRequests(filter schema.HelpFilter) ([]schema.HelpRequest, error) {
	m.Lock()
	defer m.Unlock()
	helps := []schema.HelpRequest{}
	for _, help := range m.requests {
		if m.matches(help, filter) {
			helps = append(helps, help)
		}
	}
	sort.Slice(helps, func(i, j int) bool {
		return helps[i].CreatedAt.After(helps[j].CreatedAt)
	})
	if filter.Limit > 0 && len(helps) > filter.Limit {
		helps = helps[:filter.Limit]
	}
	return helps, nil
}

func (m *memStore) CountHelpRequests(filter schema.HelpFilter) (int64, error) {
	filter.Limit = 0
	helps, err := m.ListHelpRequests(filter)
	return int64(len(helps)), err
}

func (m *memStore) UpdateHelpStatus(helpID, actorID uuid.UUID, from, to schema.HelpStatus) error {
	m.Lock()
	defer m.Unlock()
	help, ok := m.requests[helpID]
	if !ok || help.Status != from {
		return store.ErrStatusConflict
	}
	if help.FarmerID != actorID && (help.AssignedTo == nil || *help.AssignedTo != actorID) {
		return store.ErrStatusConflict
	}
	help.Status = to
	m.requests[helpID] = help
	return nil
}

func (m *memStore) CreateHelpResponse(response *schema.HelpResponse) error {
	m.Lock()
	defer m.Unlock()
	help, ok := m.requests[response.RequestID]
	if !ok {
		return store.ErrRequestNotExist
	}
	if help.Status != schema.HelpPending {
		return store.ErrRequestNotPending
	}
	m.responses = append(m.responses, *response)
	return nil
}

func (m *memStore) GetHelpResponse(responseID uuid.UUID) (*schema.HelpResponse, error) {
	m.Lock()
	defer m.Unlock()
	for _, r := range m.responses {
		if r.ID == responseID {
			r := r
			return &r, nil
		}
	}
	return nil, store.ErrResponseNotExist
}

func (m *memStore) ListHelpResponses(helpID uuid.UUID) ([]schema.HelpResponse, error) {
	m.Lock()
	defer m.Unlock()
	responses := []schema.HelpResponse{}
	for i := len(m.responses) - 1; i >= 0; i-- {
		if m.responses[i].RequestID == helpID {
			responses = append(responses, m.responses[i])
		}
	}
	return responses, nil
}

func (m *memStore) CountHelpResponses(filter schema.ResponseFilter) (int64, error) {
	m.Lock()
	defer m.Unlock()
	var n int64
	for _, r := range m.responses {
		if filter.RequestID != nil && r.RequestID != *filter.RequestID {
			continue
		}
		if filter.HelperID != nil && r.HelperID != *filter.HelperID {
			continue
		}
		n++
	}
	return n, nil
}

func (m *memStore) AcceptHelpResponse(farmerID uuid.UUID, response schema.HelpResponse, at time.Time) error {
	m.Lock()
	defer m.Unlock()
	help, ok := m.requests[response.RequestID]
	if !ok || help.FarmerID != farmerID || help.Status != schema.HelpPending {
		return store.ErrRequestNotPending
	}

	index := -1
	for i, r := range m.responses {
		if r.ID == response.ID && r.RequestID == response.RequestID {
			index = i
		}
	}
	if index < 0 {
		return store.ErrResponseNotExist
	}

	helperID := response.HelperID
	help.Status = schema.HelpAssigned
	help.AssignedTo = &helperID
	help.AssignedAt = &at
	m.requests[help.ID] = help
	m.responses[index].IsAccepted = true
	return nil
}
