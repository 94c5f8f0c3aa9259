package help

import "github.com/kisan-sahay/kisan-api/schema"

// transitions is the lifecycle of a help request. pending -> assigned is only
// reachable through an accepted response.
var transitions = map[schema.HelpStatus][]schema.HelpStatus{
	schema.HelpPending:    {schema.HelpAssigned, schema.HelpCancelled},
	schema.HelpAssigned:   {schema.HelpInProgress, schema.HelpCancelled},
	schema.HelpInProgress: {schema.HelpCompleted, schema.HelpCancelled},
	schema.HelpCompleted:  {},
	schema.HelpCancelled:  {},
}

// CanTransition reports whether a request may move from one status to another
func CanTransition(from, to schema.HelpStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses lists the statuses reachable from a status through AdvanceStatus
func NextStatuses(from schema.HelpStatus) []schema.HelpStatus {
	next := make([]schema.HelpStatus, 0, 2)
	for _, s := range transitions[from] {
		if s != schema.HelpAssigned {
			next = append(next, s)
		}
	}
	return next
}
