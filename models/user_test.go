package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleAdmin, ParseRole("  Admin "))
	assert.Equal(t, RoleManager, ParseRole("MANAGER"))
	assert.Equal(t, RoleGuest, ParseRole("guest"))
	// Unknown roles stay read-only.
	assert.Equal(t, RoleGuest, ParseRole("superuser"))
	assert.Equal(t, RoleGuest, ParseRole(""))
}

func TestRolePermissions(t *testing.T) {
	assert.True(t, RoleAdmin.CanCreateBooking())
	assert.True(t, RoleAdmin.CanManageCabins())

	assert.True(t, RoleManager.CanCreateBooking())
	assert.True(t, RoleManager.CanEditBooking())
	assert.True(t, RoleManager.CanCancelBooking())
	assert.False(t, RoleManager.CanManageCabins())

	assert.False(t, RoleGuest.CanCreateBooking())
	assert.False(t, RoleGuest.CanEditBooking())
	assert.False(t, RoleGuest.CanCancelBooking())
	assert.False(t, RoleGuest.CanManageCabins())

	// A role missing from the permission table fails closed.
	assert.False(t, Role("intern").CanCreateBooking())
}
