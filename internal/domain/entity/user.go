// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"maps"
	"strings"
)

// User is a single record of the credential store.
// Username is the identity key: unique within a store and case-sensitive.
type User struct {
	Username     string         // Login name.
	PasswordHash string         // Self-describing bcrypt hash; never the plaintext.
	Role         Role           // One of viewer, editor, admin.
	Email        string         // Optional contact address.
	FirstName    string         // Optional display data.
	LastName     string         // Optional display data.
	Active       bool           // Inactive users cannot authenticate.
	Metadata     map[string]any // Opaque key-value bag, stored but never interpreted.
}

// DisplayName returns the user's full name, or the username when no name is set.
func (u *User) DisplayName() string {
	if name := strings.TrimSpace(u.FirstName + " " + u.LastName); name != "" {
		return name
	}

	return u.Username
}

// Clone returns a deep copy of the user so callers cannot mutate store state.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}

	clone := *u
	if u.Metadata != nil {
		clone.Metadata = maps.Clone(u.Metadata)
	}

	return &clone
}
