package help

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/kisan-sahay/kisan-api/schema"
)

type LifecycleTestSuite struct {
	suite.Suite
	store  *memStore
	engine *Engine

	farmer schema.Identity
	ngo    schema.Identity
	donor  schema.Identity
}

func newIdentity(role schema.Role, name string) schema.Identity {
	id := uuid.New()
	return schema.Identity{
		AccountID: id,
		Email:     name + "@example.org",
		Role:      role,
		Profile: schema.AccountProfile{
			AccountID:        id,
			FullName:         name,
			Role:             role,
			Phone:            "+91-98000-00000",
			State:            "Punjab",
			District:         "Ludhiana",
			Village:          "Dehlon",
			OrganizationName: name + " trust",
		},
	}
}

func (s *LifecycleTestSuite) SetupTest() {
	s.store = newMemStore()
	s.engine = NewEngine(s.store, nil)
	s.farmer = newIdentity(schema.RoleFarmer, "gurpreet")
	s.ngo = newIdentity(schema.RoleNGO, "seedbank")
	s.donor = newIdentity(schema.RoleDonor, "anita")
}

func (s *LifecycleTestSuite) createRequest() *schema.HelpRequest {
	help, err := s.engine.Create(s.farmer, CreateParams{
		Title:       "Wheat seeds for rabi season",
		Description: "Lost the stored seed to flooding",
		Category:    "seeds",
		Urgency:     schema.UrgencyHigh,
	})
	s.Require().NoError(err)
	return help
}

func (s *LifecycleTestSuite) respond(id schema.Identity, help *schema.HelpRequest) *schema.HelpResponse {
	response, err := s.engine.SubmitResponse(id, help.ID, ResponseParams{
		Message: "We can send 40kg of certified seed",
	})
	s.Require().NoError(err)
	return response
}

func (s *LifecycleTestSuite) acceptedResponses(helpID uuid.UUID) []schema.HelpResponse {
	responses, err := s.store.ListHelpResponses(helpID)
	s.Require().NoError(err)
	accepted := []schema.HelpResponse{}
	for _, r := range responses {
		if r.IsAccepted {
			accepted = append(accepted, r)
		}
	}
	return accepted
}

func (s *LifecycleTestSuite) TestCreateStartsPendingAndUnassigned() {
	help := s.createRequest()

	stored, err := s.store.GetHelpRequest(help.ID)
	s.Require().NoError(err)
	s.Equal(schema.HelpPending, stored.Status)
	s.Nil(stored.AssignedTo)
	s.Nil(stored.AssignedAt)
	s.Equal(s.farmer.AccountID, stored.FarmerID)
}

func (s *LifecycleTestSuite) TestLocationIsSnapshot() {
	help := s.createRequest()

	s.farmer.Profile.Village = "Sahnewal"
	stored, err := s.store.GetHelpRequest(help.ID)
	s.Require().NoError(err)
	s.Equal("Dehlon", stored.Location.Village)
	s.Equal("Ludhiana", stored.Location.District)
}

func (s *LifecycleTestSuite) TestAcceptScenario() {
	help := s.createRequest()
	s.Equal("seeds", help.Category)
	s.Equal(schema.UrgencyHigh, help.Urgency)

	a := s.respond(s.ngo, help)
	b := s.respond(s.donor, help)

	responses, err := s.engine.ListResponses(s.farmer, help.ID)
	s.Require().NoError(err)
	s.Len(responses, 2)
	s.Equal(b.ID, responses[0].ID, "newest response first")
	for _, r := range responses {
		s.False(r.IsAccepted)
	}

	assigned, err := s.engine.AcceptResponse(s.farmer, help.ID, a.ID)
	s.Require().NoError(err)
	s.Equal(schema.HelpAssigned, assigned.Status)
	s.Require().NotNil(assigned.AssignedTo)
	s.Equal(s.ngo.AccountID, *assigned.AssignedTo)
	s.NotNil(assigned.AssignedAt)

	_, err = s.engine.AcceptResponse(s.farmer, help.ID, b.ID)
	s.True(IsState(err), "second acceptance must be a state error, got %v", err)

	accepted := s.acceptedResponses(help.ID)
	s.Require().Len(accepted, 1)
	s.Equal(a.ID, accepted[0].ID)

	stored, err := s.store.GetHelpRequest(help.ID)
	s.Require().NoError(err)
	s.Equal(accepted[0].HelperID, *stored.AssignedTo)
}

func (s *LifecycleTestSuite) TestConcurrentAcceptance() {
	help := s.createRequest()
	a := s.respond(s.ngo, help)
	b := s.respond(s.donor, help)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i, responseID := range []uuid.UUID{a.ID, b.ID} {
		wg.Add(1)
		go func(i int, responseID uuid.UUID) {
			defer wg.Done()
			_, errs[i] = s.engine.AcceptResponse(s.farmer, help.ID, responseID)
		}(i, responseID)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			s.True(IsState(err), "loser must get a state error, got %v", err)
		}
	}
	s.Equal(1, succeeded)

	accepted := s.acceptedResponses(help.ID)
	s.Require().Len(accepted, 1)

	stored, err := s.store.GetHelpRequest(help.ID)
	s.Require().NoError(err)
	s.Equal(accepted[0].HelperID, *stored.AssignedTo)
}

func (s *LifecycleTestSuite) TestSubmitResponseAfterAssignmentLeavesResponsesUnchanged() {
	help := s.createRequest()
	a := s.respond(s.ngo, help)
	_, err := s.engine.AcceptResponse(s.farmer, help.ID, a.ID)
	s.Require().NoError(err)

	before, err := s.store.CountHelpResponses(schema.ResponseFilter{RequestID: &help.ID})
	s.Require().NoError(err)

	_, err = s.engine.SubmitResponse(s.donor, help.ID, ResponseParams{Message: "backup tractor"})
	s.True(IsState(err))

	// the status check wins over input validation
	_, err = s.engine.SubmitResponse(s.donor, help.ID, ResponseParams{})
	s.True(IsState(err))

	after, err := s.store.CountHelpResponses(schema.ResponseFilter{RequestID: &help.ID})
	s.Require().NoError(err)
	s.Equal(before, after)
}

func (s *LifecycleTestSuite) TestPendingCannotCompleteDirectly() {
	help := s.createRequest()

	_, err := s.engine.AdvanceStatus(s.farmer, help.ID, schema.HelpCompleted)
	s.True(IsState(err))

	stored, err := s.store.GetHelpRequest(help.ID)
	s.Require().NoError(err)
	s.Equal(schema.HelpPending, stored.Status)
}

func (s *LifecycleTestSuite) TestFullLifecycle() {
	help := s.createRequest()
	a := s.respond(s.ngo, help)
	_, err := s.engine.AcceptResponse(s.farmer, help.ID, a.ID)
	s.Require().NoError(err)

	updated, err := s.engine.AdvanceStatus(s.ngo, help.ID, schema.HelpInProgress)
	s.Require().NoError(err)
	s.Equal(schema.HelpInProgress, updated.Status)

	updated, err = s.engine.AdvanceStatus(s.farmer, help.ID, schema.HelpCompleted)
	s.Require().NoError(err)
	s.Equal(schema.HelpCompleted, updated.Status)

	_, err = s.engine.AdvanceStatus(s.farmer, help.ID, schema.HelpCancelled)
	s.True(IsState(err), "completed is terminal")

	stored, err := s.store.GetHelpRequest(help.ID)
	s.Require().NoError(err)
	s.Equal(schema.HelpCompleted, stored.Status)
	s.Equal(s.ngo.AccountID, *stored.AssignedTo)
}

func (s *LifecycleTestSuite) TestCancelPendingKeepsUnassigned() {
	help := s.createRequest()

	_, err := s.engine.AdvanceStatus(s.ngo, help.ID, schema.HelpCancelled)
	s.True(IsAuthorization(err), "an unassigned helper cannot cancel")

	updated, err := s.engine.AdvanceStatus(s.farmer, help.ID, schema.HelpCancelled)
	s.Require().NoError(err)
	s.Equal(schema.HelpCancelled, updated.Status)
	s.Nil(updated.AssignedTo)

	_, err = s.engine.SubmitResponse(s.ngo, help.ID, ResponseParams{Message: "too late"})
	s.True(IsState(err))
}

func (s *LifecycleTestSuite) assertCancelledAfterAssignment(help *schema.HelpRequest, helper schema.Identity) {
	stored, err := s.store.GetHelpRequest(help.ID)
	s.Require().NoError(err)
	s.Equal(schema.HelpCancelled, stored.Status)
	s.Require().NotNil(stored.AssignedTo, "the assignment is kept for history")
	s.Equal(helper.AccountID, *stored.AssignedTo)
	s.NotNil(stored.AssignedAt)

	accepted := s.acceptedResponses(help.ID)
	s.Require().Len(accepted, 1)
	s.Equal(*stored.AssignedTo, accepted[0].HelperID)

	for _, to := range []schema.HelpStatus{schema.HelpInProgress, schema.HelpCompleted, schema.HelpCancelled} {
		_, err = s.engine.AdvanceStatus(s.farmer, help.ID, to)
		s.True(IsState(err), "cancelled is terminal, moving to %s gave %v", to, err)
	}

	_, err = s.engine.SubmitResponse(s.donor, help.ID, ResponseParams{Message: "still need seed?"})
	s.True(IsState(err))
}

func (s *LifecycleTestSuite) TestHelperCancelsAfterAssignment() {
	help := s.createRequest()
	a := s.respond(s.ngo, help)
	_, err := s.engine.AcceptResponse(s.farmer, help.ID, a.ID)
	s.Require().NoError(err)

	cancelled, err := s.engine.AdvanceStatus(s.ngo, help.ID, schema.HelpCancelled)
	s.Require().NoError(err)
	s.Equal(schema.HelpCancelled, cancelled.Status)

	s.assertCancelledAfterAssignment(help, s.ngo)
}

func (s *LifecycleTestSuite) TestFarmerCancelsWhileInProgress() {
	help := s.createRequest()
	a := s.respond(s.donor, help)
	_, err := s.engine.AcceptResponse(s.farmer, help.ID, a.ID)
	s.Require().NoError(err)
	_, err = s.engine.AdvanceStatus(s.donor, help.ID, schema.HelpInProgress)
	s.Require().NoError(err)

	cancelled, err := s.engine.AdvanceStatus(s.farmer, help.ID, schema.HelpCancelled)
	s.Require().NoError(err)
	s.Equal(schema.HelpCancelled, cancelled.Status)

	s.assertCancelledAfterAssignment(help, s.donor)
}

// an assigned status always has a helper; a helper outside the assigned
// statuses only remains on a request cancelled after acceptance
func (s *LifecycleTestSuite) TestAssignedInvariantHolds() {
	s.createRequest()
	pendingCancelled := s.createRequest()
	_, err := s.engine.AdvanceStatus(s.farmer, pendingCancelled.ID, schema.HelpCancelled)
	s.Require().NoError(err)

	assigned := s.createRequest()
	r := s.respond(s.donor, assigned)
	_, err = s.engine.AcceptResponse(s.farmer, assigned.ID, r.ID)
	s.Require().NoError(err)

	inProgress := s.createRequest()
	r = s.respond(s.ngo, inProgress)
	_, err = s.engine.AcceptResponse(s.farmer, inProgress.ID, r.ID)
	s.Require().NoError(err)
	_, err = s.engine.AdvanceStatus(s.ngo, inProgress.ID, schema.HelpInProgress)
	s.Require().NoError(err)

	completed := s.createRequest()
	r = s.respond(s.ngo, completed)
	_, err = s.engine.AcceptResponse(s.farmer, completed.ID, r.ID)
	s.Require().NoError(err)
	_, err = s.engine.AdvanceStatus(s.ngo, completed.ID, schema.HelpInProgress)
	s.Require().NoError(err)
	_, err = s.engine.AdvanceStatus(s.farmer, completed.ID, schema.HelpCompleted)
	s.Require().NoError(err)

	assignedCancelled := s.createRequest()
	r = s.respond(s.donor, assignedCancelled)
	_, err = s.engine.AcceptResponse(s.farmer, assignedCancelled.ID, r.ID)
	s.Require().NoError(err)
	_, err = s.engine.AdvanceStatus(s.donor, assignedCancelled.ID, schema.HelpCancelled)
	s.Require().NoError(err)

	helps, err := s.engine.List(s.farmer, schema.HelpFilter{})
	s.Require().NoError(err)
	s.Len(helps, 6)

	keptAfterCancel := 0
	for _, h := range helps {
		if h.Status.Assigned() {
			s.NotNil(h.AssignedTo, "request %s is %s", h.ID, h.Status)
		}
		if h.AssignedTo != nil {
			s.True(h.Status.Assigned() || h.Status == schema.HelpCancelled, "request %s is %s", h.ID, h.Status)
			s.Len(s.acceptedResponses(h.ID), 1)
			if h.Status == schema.HelpCancelled {
				keptAfterCancel++
			}
		} else {
			s.Empty(s.acceptedResponses(h.ID))
		}
	}
	s.Equal(1, keptAfterCancel)
}

func (s *LifecycleTestSuite) TestDonorCannotCreate() {
	_, err := s.engine.Create(s.donor, CreateParams{
		Title:       "Need fertilizer",
		Description: "urea",
		Category:    "fertilizers",
	})
	s.True(IsAuthorization(err))

	count, err := s.store.CountHelpRequests(schema.HelpFilter{})
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *LifecycleTestSuite) TestFarmerOnlyListsOwnRequests() {
	s.createRequest()
	other := newIdentity(schema.RoleFarmer, "harjit")
	_, err := s.engine.Create(other, CreateParams{
		Title:       "Drip irrigation pipes",
		Description: "200m of 16mm pipe",
		Category:    "irrigation",
	})
	s.Require().NoError(err)

	mine, err := s.engine.List(s.farmer, schema.HelpFilter{})
	s.Require().NoError(err)
	s.Len(mine, 1)

	all, err := s.engine.List(s.ngo, schema.HelpFilter{})
	s.Require().NoError(err)
	s.Len(all, 2)
}

func (s *LifecycleTestSuite) TestDashboards() {
	help := s.createRequest()
	s.createRequest()
	a := s.respond(s.ngo, help)
	_, err := s.engine.AcceptResponse(s.farmer, help.ID, a.ID)
	s.Require().NoError(err)

	farmer, err := s.engine.FarmerDashboard(s.farmer)
	s.Require().NoError(err)
	s.Equal(int64(2), farmer.Total)
	s.Equal(int64(1), farmer.StatusCounts[schema.HelpPending])
	s.Equal(int64(1), farmer.StatusCounts[schema.HelpAssigned])
	s.Len(farmer.Recent, 2)

	helper, err := s.engine.HelperDashboard(s.ngo)
	s.Require().NoError(err)
	s.Equal(int64(1), helper.PendingCount)
	s.Equal(int64(1), helper.AssignedCount)
	s.Equal(int64(0), helper.CompletedCount)
	s.Equal(int64(1), helper.ResponsesCount)
	s.Len(helper.ActiveAssigned, 1)

	_, err = s.engine.HelperDashboard(s.farmer)
	s.True(IsAuthorization(err))
}

func TestLifecycleTestSuite(t *testing.T) {
	suite.Run(t, new(LifecycleTestSuite))
}
