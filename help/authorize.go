package help

import (
	"github.com/google/uuid"

	"github.com/kisan-sahay/kisan-api/schema"
)

// CanView reports whether a viewer may see a request and its responses.
// Farmers only see their own requests; helpers and admins see all of them.
func CanView(request schema.HelpRequest, viewerID uuid.UUID, role schema.Role) bool {
	switch role {
	case schema.RoleFarmer:
		return request.FarmerID == viewerID
	case schema.RoleNGO, schema.RoleDonor, schema.RoleAdmin:
		return true
	default:
		return false
	}
}

// CanRespond reports whether a viewer may offer help on a request
func CanRespond(request schema.HelpRequest, viewerID uuid.UUID, role schema.Role) bool {
	switch role {
	case schema.RoleNGO, schema.RoleDonor:
		return request.Status == schema.HelpPending
	case schema.RoleFarmer, schema.RoleAdmin:
		return false
	default:
		return false
	}
}

// CanAccept reports whether a viewer may accept a response of a request
func CanAccept(request schema.HelpRequest, viewerID uuid.UUID) bool {
	return request.FarmerID == viewerID && request.Status == schema.HelpPending
}

// CanAdvance reports whether a viewer may change the status of a request. Only
// the owner and the assigned helper take part in it.
func CanAdvance(request schema.HelpRequest, viewerID uuid.UUID) bool {
	if request.FarmerID == viewerID {
		return true
	}
	return request.AssignedTo != nil && *request.AssignedTo == viewerID
}

// CanCreate reports whether a role may open help requests
func CanCreate(role schema.Role) bool {
	switch role {
	case schema.RoleFarmer:
		return true
	case schema.RoleNGO, schema.RoleDonor, schema.RoleAdmin:
		return false
	default:
		return false
	}
}
