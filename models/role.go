package models

import "strings"

// Role is a lookup table; users point at it with a nullable FK.
type Role struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:200;unique;not null"`
}

// Well-known role names. Roles are free-form rows, but the authorization
// predicates below only ever care about these three.
const (
	RoleAdmin    = "admin"
	RoleSubAdmin = "sub-admin"
	RoleSales    = "sales"
)

func (u *User) roleName() string {
	if u == nil || u.Role == nil {
		return ""
	}
	return strings.ToLower(u.Role.Name)
}

// IsAdminLike reports whether the user is a superuser or carries the
// "admin" role. Admin-like users have full control everywhere.
func IsAdminLike(u *User) bool {
	if u == nil {
		return false
	}
	return u.IsSuperuser || u.roleName() == RoleAdmin
}

// IsAdminOrSubAdmin gates write access to sensitive collections
// (staff records, role assignments).
func IsAdminOrSubAdmin(u *User) bool {
	return IsAdminLike(u) || IsSubAdmin(u)
}

// IsSubAdmin reports whether the user carries the "sub-admin" role.
// Sub-admins may read and update staff but not delete them.
func IsSubAdmin(u *User) bool {
	return u != nil && u.roleName() == RoleSubAdmin
}

// IsSales reports whether the user carries the "sales" role. Sales users
// only see leads assigned to them.
func IsSales(u *User) bool {
	return u != nil && u.roleName() == RoleSales
}
