package help

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/kisan-sahay/kisan-api/schema"
)

func TestCanView(t *testing.T) {
	owner := uuid.New()
	request := schema.HelpRequest{ID: uuid.New(), FarmerID: owner, Status: schema.HelpPending}

	assert.True(t, CanView(request, owner, schema.RoleFarmer))
	assert.False(t, CanView(request, uuid.New(), schema.RoleFarmer))
	assert.True(t, CanView(request, uuid.New(), schema.RoleNGO))
	assert.True(t, CanView(request, uuid.New(), schema.RoleDonor))
	assert.True(t, CanView(request, uuid.New(), schema.RoleAdmin))
	assert.False(t, CanView(request, owner, schema.Role("guest")))
}

func TestCanRespond(t *testing.T) {
	helper := uuid.New()
	for _, status := range schema.HelpStatuses {
		request := schema.HelpRequest{FarmerID: uuid.New(), Status: status}
		pending := status == schema.HelpPending

		assert.Equal(t, pending, CanRespond(request, helper, schema.RoleNGO), "ngo on %s", status)
		assert.Equal(t, pending, CanRespond(request, helper, schema.RoleDonor), "donor on %s", status)
		assert.False(t, CanRespond(request, request.FarmerID, schema.RoleFarmer))
		assert.False(t, CanRespond(request, helper, schema.RoleAdmin))
	}
}

func TestCanAccept(t *testing.T) {
	owner := uuid.New()
	for _, status := range schema.HelpStatuses {
		request := schema.HelpRequest{FarmerID: owner, Status: status}
		assert.Equal(t, status == schema.HelpPending, CanAccept(request, owner), "status %s", status)
		assert.False(t, CanAccept(request, uuid.New()))
	}
}

func TestCanAdvance(t *testing.T) {
	owner := uuid.New()
	helper := uuid.New()

	request := schema.HelpRequest{FarmerID: owner, Status: schema.HelpPending}
	assert.True(t, CanAdvance(request, owner))
	assert.False(t, CanAdvance(request, helper))

	request.Status = schema.HelpAssigned
	request.AssignedTo = &helper
	assert.True(t, CanAdvance(request, owner))
	assert.True(t, CanAdvance(request, helper))
	assert.False(t, CanAdvance(request, uuid.New()))
}

func TestCanCreate(t *testing.T) {
	assert.True(t, CanCreate(schema.RoleFarmer))
	assert.False(t, CanCreate(schema.RoleNGO))
	assert.False(t, CanCreate(schema.RoleDonor))
	assert.False(t, CanCreate(schema.RoleAdmin))
}
