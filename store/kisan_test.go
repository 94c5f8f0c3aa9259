package store

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/stretchr/testify/suite"

	"github.com/kisan-sahay/kisan-api/schema"
)

type KisanStoreTestSuite struct {
	suite.Suite
	connString string
	ormDB      *gorm.DB
	store      *KisanStore

	farmer *schema.Account
	ngo    *schema.Account
	donor  *schema.Account
}

func NewKisanStoreTestSuite(connString string) *KisanStoreTestSuite {
	return &KisanStoreTestSuite{
		connString: connString,
	}
}

func (s *KisanStoreTestSuite) SetupSuite() {
	db, err := gorm.Open("postgres", s.connString)
	if err != nil {
		s.T().Fatalf("connect postgres with error: %s", err)
	}

	if err := db.AutoMigrate(
		&schema.Account{},
		&schema.AccountProfile{},
		&schema.HelpRequest{},
		&schema.HelpResponse{},
	).Error; err != nil {
		s.T().Fatal(err)
	}

	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS help_response_one_accepted
		ON help_responses(request_id) WHERE is_accepted = true`).Error; err != nil {
		s.T().Fatal(err)
	}

	s.ormDB = db
	s.store = NewKisanStore(db)
}

func (s *KisanStoreTestSuite) TearDownSuite() {
	s.ormDB.Close()
}

// SetupTest makes every test start with three fresh accounts and no requests
func (s *KisanStoreTestSuite) SetupTest() {
	if err := s.ormDB.Exec("TRUNCATE help_responses, help_requests, account_profiles, accounts").Error; err != nil {
		s.T().Fatal(err)
	}

	var err error
	s.farmer, err = s.store.CreateAccount("Farmer@Example.org ", "farmer-pass", schema.AccountProfile{
		FullName: "Ramesh",
		Role:     schema.RoleFarmer,
		State:    "Karnataka",
		District: "Mandya",
	})
	s.Require().NoError(err)

	s.ngo, err = s.store.CreateAccount("ngo@example.org", "ngo-pass-1", schema.AccountProfile{
		FullName:         "Asha",
		Role:             schema.RoleNGO,
		OrganizationName: "Raitha Mitra",
	})
	s.Require().NoError(err)

	s.donor, err = s.store.CreateAccount("donor@example.org", "donor-pass", schema.AccountProfile{
		FullName: "Vikram",
		Role:     schema.RoleDonor,
	})
	s.Require().NoError(err)
}

func (s *KisanStoreTestSuite) newHelp() *schema.HelpRequest {
	now := time.Now().UTC()
	help := &schema.HelpRequest{
		ID:          uuid.New(),
		FarmerID:    s.farmer.ID,
		Title:       "Sugarcane harvester",
		Description: "Need a harvester for 3 acres",
		Category:    "equipment",
		Urgency:     schema.UrgencyHigh,
		Location:    s.farmer.Profile.Location(),
		Status:      schema.HelpPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.Require().NoError(s.store.CreateHelpRequest(help))
	return help
}

func (s *KisanStoreTestSuite) newResponse(help *schema.HelpRequest, helper *schema.Account) *schema.HelpResponse {
	response := &schema.HelpResponse{
		ID:           uuid.New(),
		RequestID:    help.ID,
		HelperID:     helper.ID,
		Message:      "We can send one next week",
		OfferedItems: []string{"harvester"},
		ContactInfo:  schema.ContactInfo{Email: helper.Email},
		CreatedAt:    time.Now().UTC(),
	}
	s.Require().NoError(s.store.CreateHelpResponse(response))
	return response
}

func (s *KisanStoreTestSuite) TestAccounts() {
	a, err := s.store.VerifyAccountPassword("farmer@example.org", "farmer-pass")
	s.NoError(err)
	s.Equal(s.farmer.ID, a.ID)
	s.Equal(schema.RoleFarmer, a.Profile.Role)
	s.Equal("en", a.Profile.PreferredLanguage)

	_, err = s.store.VerifyAccountPassword("farmer@example.org", "wrong")
	s.Equal(ErrInvalidCredentials, err)

	_, err = s.store.CreateAccount("FARMER@example.org", "another-pass", schema.AccountProfile{Role: schema.RoleFarmer})
	s.Equal(ErrAccountTaken, err)

	village := "Pandavapura"
	a, err = s.store.UpdateAccountProfile(s.farmer.ID, schema.ProfileUpdate{Village: &village})
	s.NoError(err)
	s.Equal(village, a.Profile.Village)
	s.Equal("Mandya", a.Profile.District)

	_, err = s.store.GetAccount(uuid.New())
	s.Equal(ErrAccountNotExist, err)
}

func (s *KisanStoreTestSuite) TestHelpRequestRoundTrip() {
	help := s.newHelp()

	stored, err := s.store.GetHelpRequest(help.ID)
	s.NoError(err)
	s.Equal(help.Title, stored.Title)
	s.Equal(schema.Location{State: "Karnataka", District: "Mandya"}, stored.Location)
	s.Require().NotNil(stored.Farmer)
	s.Equal("Ramesh", stored.Farmer.FullName)

	_, err = s.store.GetHelpRequest(uuid.New())
	s.Equal(ErrRequestNotExist, err)

	helps, err := s.store.ListHelpRequests(schema.HelpFilter{Query: "HARVESTER"})
	s.NoError(err)
	s.Len(helps, 1)

	count, err := s.store.CountHelpRequests(schema.HelpFilter{Statuses: []schema.HelpStatus{schema.HelpCompleted}})
	s.NoError(err)
	s.Zero(count)
}

func (s *KisanStoreTestSuite) TestSearchMatchesWildcardsLiterally() {
	help := s.newHelp()
	s.Require().NoError(s.ormDB.Model(schema.HelpRequest{}).Where("id = ?", help.ID).
		Update("description", "Need 100% of the harvester_rent covered").Error)
	s.newHelp()

	for query, count := range map[string]int{
		"100%":        1,
		"%":           1,
		"_":           1,
		"harvester_r": 1,
		"3_acres":     0,
		"harvester":   2,
	} {
		helps, err := s.store.ListHelpRequests(schema.HelpFilter{Query: query})
		s.NoError(err)
		s.Len(helps, count, "query %q", query)
	}
}

func (s *KisanStoreTestSuite) TestAcceptIsExclusive() {
	help := s.newHelp()
	a := s.newResponse(help, s.ngo)
	b := s.newResponse(help, s.donor)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i, r := range []*schema.HelpResponse{a, b} {
		wg.Add(1)
		go func(i int, r schema.HelpResponse) {
			defer wg.Done()
			errs[i] = s.store.AcceptHelpResponse(s.farmer.ID, r, time.Now().UTC())
		}(i, *r)
	}
	wg.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			s.Equal(ErrRequestNotPending, err)
			failed++
		}
	}
	s.Equal(1, failed)

	stored, err := s.store.GetHelpRequest(help.ID)
	s.NoError(err)
	s.Equal(schema.HelpAssigned, stored.Status)
	s.Require().NotNil(stored.AssignedTo)

	responses, err := s.store.ListHelpResponses(help.ID)
	s.NoError(err)
	accepted := 0
	for _, r := range responses {
		if r.IsAccepted {
			accepted++
			s.Equal(*stored.AssignedTo, r.HelperID)
		}
	}
	s.Equal(1, accepted)
}

func (s *KisanStoreTestSuite) TestResponsesOnlyWhilePending() {
	help := s.newHelp()
	a := s.newResponse(help, s.ngo)
	s.NoError(s.store.AcceptHelpResponse(s.farmer.ID, *a, time.Now().UTC()))

	err := s.store.CreateHelpResponse(&schema.HelpResponse{
		ID:        uuid.New(),
		RequestID: help.ID,
		HelperID:  s.donor.ID,
		Message:   "late offer",
		CreatedAt: time.Now().UTC(),
	})
	s.Equal(ErrRequestNotPending, err)

	count, err := s.store.CountHelpResponses(schema.ResponseFilter{RequestID: &help.ID})
	s.NoError(err)
	s.Equal(int64(1), count)
}

func (s *KisanStoreTestSuite) TestUpdateHelpStatusIsConditional() {
	help := s.newHelp()
	a := s.newResponse(help, s.ngo)
	s.NoError(s.store.AcceptHelpResponse(s.farmer.ID, *a, time.Now().UTC()))

	// a stale `from` does not apply
	s.Equal(ErrStatusConflict, s.store.UpdateHelpStatus(help.ID, s.farmer.ID, schema.HelpPending, schema.HelpCancelled))
	// a stranger does not apply
	s.Equal(ErrStatusConflict, s.store.UpdateHelpStatus(help.ID, s.donor.ID, schema.HelpAssigned, schema.HelpCancelled))

	s.NoError(s.store.UpdateHelpStatus(help.ID, s.ngo.ID, schema.HelpAssigned, schema.HelpInProgress))

	assigned, err := s.store.ListHelpRequests(schema.HelpFilter{AssignedTo: &s.ngo.ID})
	s.NoError(err)
	s.Require().Len(assigned, 1)
	s.Equal(schema.HelpInProgress, assigned[0].Status)
}

func TestKisanStoreTestSuite(t *testing.T) {
	connString := os.Getenv("KISAN_TEST_ORM_CONN")
	if connString == "" {
		t.Skip("KISAN_TEST_ORM_CONN is not set")
	}
	suite.Run(t, NewKisanStoreTestSuite(connString))
}
