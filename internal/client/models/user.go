// Package models defines the login user record, user roles and the backend
// response envelope.
package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// DefaultUserName is the placeholder shown while nobody is logged in.
const DefaultUserName = "未登录"

var ErrMalformedUser = errors.New("malformed login user")

// LoginUser is the logged-in user as returned by the backend. Fields are
// carried through unchanged and never validated.
type LoginUser struct {
	ID          int64  `json:"id,omitempty"`
	UserAccount string `json:"userAccount,omitempty"`
	UserName    string `json:"userName"`
	UserAvatar  string `json:"userAvatar,omitempty"`
	UserProfile string `json:"userProfile,omitempty"`
	UserRole    string `json:"userRole,omitempty"`
	CreateTime  string `json:"createTime,omitempty"`
	UpdateTime  string `json:"updateTime,omitempty"`
}

// DefaultLoginUser returns the unauthenticated placeholder record.
func DefaultLoginUser() LoginUser {
	return LoginUser{UserName: DefaultUserName}
}

// IsDefault reports whether u is the unauthenticated placeholder.
func (u LoginUser) IsDefault() bool {
	return u == DefaultLoginUser()
}

// Role resolves UserRole; ok is false for blank or unknown values.
func (u LoginUser) Role() (UserRole, bool) {
	return RoleByValue(u.UserRole)
}

// ParseLoginUser decodes a persisted record. Any JSON object is accepted,
// including one with a blank or missing userName, since that is what the
// holder writes for such users.
func ParseLoginUser(data []byte) (LoginUser, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return LoginUser{}, fmt.Errorf("%w: %v", ErrMalformedUser, err)
	}
	if fields == nil {
		return LoginUser{}, fmt.Errorf("%w: not a JSON object", ErrMalformedUser)
	}

	var u LoginUser
	if err := json.Unmarshal(data, &u); err != nil {
		return LoginUser{}, fmt.Errorf("%w: %v", ErrMalformedUser, err)
	}
	return u, nil
}
