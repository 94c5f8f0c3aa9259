package help

import (
	"golang.org/x/sync/errgroup"

	"github.com/kisan-sahay/kisan-api/schema"
)

const dashboardRecentLimit = 5

// FarmerDashboard summarises the requests of the calling farmer
func (e *Engine) FarmerDashboard(id schema.Identity) (*schema.FarmerDashboard, error) {
	if id.Role != schema.RoleFarmer {
		return nil, &AuthorizationError{Action: "view the farmer dashboard", Role: id.Role}
	}

	counts := make([]int64, len(schema.HelpStatuses))
	var recent []schema.HelpRequest

	var g errgroup.Group
	for i, status := range schema.HelpStatuses {
		i, status := i, status
		g.Go(func() error {
			n, err := e.store.CountHelpRequests(schema.HelpFilter{
				FarmerID: &id.AccountID,
				Statuses: []schema.HelpStatus{status},
			})
			counts[i] = n
			return err
		})
	}
	g.Go(func() error {
		var err error
		recent, err = e.store.ListHelpRequests(schema.HelpFilter{
			FarmerID: &id.AccountID,
			Limit:    dashboardRecentLimit,
		})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, &TransportError{Err: err}
	}

	d := &schema.FarmerDashboard{
		StatusCounts: make(map[schema.HelpStatus]int64, len(schema.HelpStatuses)),
		Recent:       recent,
	}
	for i, status := range schema.HelpStatuses {
		d.StatusCounts[status] = counts[i]
		d.Total += counts[i]
	}

	return d, nil
}

// HelperDashboard summarises open requests and the assignments of the calling
// NGO or donor
func (e *Engine) HelperDashboard(id schema.Identity) (*schema.HelperDashboard, error) {
	if !id.Role.IsHelper() {
		return nil, &AuthorizationError{Action: "view the helper dashboard", Role: id.Role}
	}

	d := &schema.HelperDashboard{}

	var g errgroup.Group
	g.Go(func() error {
		var err error
		d.PendingCount, err = e.store.CountHelpRequests(schema.HelpFilter{
			Statuses: []schema.HelpStatus{schema.HelpPending},
		})
		return err
	})
	g.Go(func() error {
		var err error
		d.AssignedCount, err = e.store.CountHelpRequests(schema.HelpFilter{
			AssignedTo: &id.AccountID,
		})
		return err
	})
	g.Go(func() error {
		var err error
		d.CompletedCount, err = e.store.CountHelpRequests(schema.HelpFilter{
			AssignedTo: &id.AccountID,
			Statuses:   []schema.HelpStatus{schema.HelpCompleted},
		})
		return err
	})
	g.Go(func() error {
		var err error
		d.ResponsesCount, err = e.store.CountHelpResponses(schema.ResponseFilter{
			HelperID: &id.AccountID,
		})
		return err
	})
	g.Go(func() error {
		var err error
		d.RecentPending, err = e.store.ListHelpRequests(schema.HelpFilter{
			Statuses: []schema.HelpStatus{schema.HelpPending},
			Limit:    dashboardRecentLimit,
		})
		return err
	})
	g.Go(func() error {
		var err error
		d.ActiveAssigned, err = e.store.ListHelpRequests(schema.HelpFilter{
			AssignedTo: &id.AccountID,
			Statuses:   []schema.HelpStatus{schema.HelpAssigned, schema.HelpInProgress},
		})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, &TransportError{Err: err}
	}

	return d, nil
}
