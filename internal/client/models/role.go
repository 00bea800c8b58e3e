package models

import "strings"

// UserRole is a backend user role.
type UserRole struct {
	Text  string
	Value string
}

var (
	RoleUser  = UserRole{Text: "用户", Value: "user"}
	RoleAdmin = UserRole{Text: "管理员", Value: "admin"}
)

var roles = []UserRole{RoleUser, RoleAdmin}

// RoleByValue looks a role up by its wire value.
func RoleByValue(value string) (UserRole, bool) {
	if strings.TrimSpace(value) == "" {
		return UserRole{}, false
	}
	for _, r := range roles {
		if r.Value == value {
			return r, true
		}
	}
	return UserRole{}, false
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}
