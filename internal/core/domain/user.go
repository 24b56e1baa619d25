package domain

import (
	"strconv"
	"time"
)

// System user roles. The numeric codes are part of stored records and of the
// seed-file format, so they are stable.
const (
	RoleAdmin   = 1
	RoleRegular = 2
)

const (
	RoleLabelAdmin   = "Admin"
	RoleLabelRegular = "Regular"
)

// roleLabels is the closed role-code → label table.
var roleLabels = map[int]string{
	RoleAdmin:   RoleLabelAdmin,
	RoleRegular: RoleLabelRegular,
}

// RoleLabel returns the human-readable label for a role code. Unknown codes
// fall back to their decimal representation; token issuance never fails on a
// bad role.
func RoleLabel(role int) string {
	if label, ok := roleLabels[role]; ok {
		return label
	}
	return strconv.Itoa(role)
}

// ValidRole reports whether the role code is in the closed set.
func ValidRole(role int) bool {
	_, ok := roleLabels[role]
	return ok
}

// RoleFromLabel resolves a label back to its role code.
func RoleFromLabel(label string) (int, bool) {
	for code, l := range roleLabels {
		if l == label {
			return code, true
		}
	}
	return 0, false
}

// SystemUser is an identity record with credentials and lifecycle timestamps.
// A nil Deleted timestamp means the record is active.
type SystemUser struct {
	ID           int        `json:"id" bson:"_id,omitempty"`
	FirstName    string     `json:"first_name" bson:"first_name"`
	LastName     string     `json:"last_name" bson:"last_name"`
	Email        string     `json:"email" bson:"email"`
	PasswordHash string     `json:"-" bson:"password_hash"`
	Role         int        `json:"role" bson:"role"`
	Created      time.Time  `json:"created" bson:"created"`
	Deleted      *time.Time `json:"deleted,omitempty" bson:"deleted,omitempty"`
}

// Active reports whether the user has not been soft-deleted.
func (u *SystemUser) Active() bool {
	return u.Deleted == nil
}
