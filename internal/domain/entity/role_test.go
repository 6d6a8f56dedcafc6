package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		raw  string
		want Role
	}{
		{raw: "admin", want: RoleAdmin},
		{raw: "staff", want: RoleStaff},
		{raw: "customer", want: RoleCustomer},
		{raw: " Staff ", want: RoleUnknown},
		{raw: "staff ", want: RoleUnknown},
		{raw: "ADMIN", want: RoleUnknown},
		{raw: "Admin", want: RoleUnknown},
		{raw: "CUSTOMER", want: RoleUnknown},
		{raw: "", want: RoleUnknown},
		{raw: "manager", want: RoleUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRole(tt.raw))
		})
	}
}

func TestRoles(t *testing.T) {
	roles := AllRoles()

	assert.True(t, roles.Contains(RoleStaff))
	assert.False(t, roles.Contains(RoleUnknown))
	assert.Equal(t, []string{"admin", "staff", "customer"}, roles.ToStrings())
	assert.False(t, RoleUnknown.IsValid())
}
