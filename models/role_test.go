package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func userWithRole(name string) *User {
	return &User{Role: &Role{Name: name}}
}

func TestIsAdminLike(t *testing.T) {
	assert.False(t, IsAdminLike(nil))
	assert.False(t, IsAdminLike(&User{}))
	assert.True(t, IsAdminLike(&User{IsSuperuser: true}))
	assert.True(t, IsAdminLike(userWithRole("admin")))
	assert.True(t, IsAdminLike(userWithRole("Admin")), "role comparison is case-insensitive")
	assert.False(t, IsAdminLike(userWithRole("sub-admin")))
	assert.False(t, IsAdminLike(userWithRole("sales")))
}

func TestIsAdminOrSubAdmin(t *testing.T) {
	assert.True(t, IsAdminOrSubAdmin(&User{IsSuperuser: true}))
	assert.True(t, IsAdminOrSubAdmin(userWithRole("admin")))
	assert.True(t, IsAdminOrSubAdmin(userWithRole("sub-admin")))
	assert.False(t, IsAdminOrSubAdmin(userWithRole("sales")))
	assert.False(t, IsAdminOrSubAdmin(nil))
}

func TestIsSubAdmin(t *testing.T) {
	assert.True(t, IsSubAdmin(userWithRole("sub-admin")))
	assert.True(t, IsSubAdmin(userWithRole("Sub-Admin")))
	assert.False(t, IsSubAdmin(userWithRole("admin")))
	assert.False(t, IsSubAdmin(&User{IsSuperuser: true}), "superuser is not a sub-admin")
	assert.False(t, IsSubAdmin(nil))
}

func TestIsSales(t *testing.T) {
	assert.True(t, IsSales(userWithRole("sales")))
	assert.False(t, IsSales(userWithRole("admin")))
	assert.False(t, IsSales(&User{}))
	assert.False(t, IsSales(nil))
}
