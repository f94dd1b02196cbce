// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"fileauth/internal/domain/entity"
)

// NewUser carries the data required to create a user record.
// Password is plaintext; the store hashes it before persisting.
type NewUser struct {
	Username  string         `validate:"required"`
	Password  string         `validate:"required"`
	Role      entity.Role    `validate:"required,oneof=viewer editor admin"`
	Email     string         `validate:"omitempty,email"`
	FirstName string
	LastName  string
	Active    bool
	Metadata  map[string]any
}

// UserUpdate describes a partial update. Nil fields are left unchanged.
type UserUpdate struct {
	Password  *string
	Role      *entity.Role
	Email     *string
	FirstName *string
	LastName  *string
	Active    *bool
}

// IsEmpty reports whether the update changes nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Password == nil && u.Role == nil && u.Email == nil &&
		u.FirstName == nil && u.LastName == nil && u.Active == nil
}

// CredentialStore owns the durable list of user records.
//
// Reads may run concurrently. Mutations are serialized and persist the full
// record list before returning; on failure neither the file nor the
// in-memory state changes. Returned users are copies.
type CredentialStore interface {
	// Path returns the backing file location.
	Path() string

	// Load parses the backing file into memory.
	Load(ctx context.Context) error

	// Reload discards the in-memory state and loads the backing file again.
	Reload(ctx context.Context) error

	// Reset replaces the in-memory state with an empty store without touching the file.
	// The next mutation creates or overwrites the backing file.
	Reset(ctx context.Context)

	// Get retrieves a single user by username.
	Get(ctx context.Context, username string) (*entity.User, error)

	// Exists reports whether a user with the given username exists.
	Exists(ctx context.Context, username string) bool

	// List returns all users in file order.
	List(ctx context.Context) ([]*entity.User, error)

	// Add creates a new user, hashing the supplied password.
	Add(ctx context.Context, input NewUser) (*entity.User, error)

	// Update applies a partial update to an existing user.
	Update(ctx context.Context, username string, update UserUpdate) (*entity.User, error)

	// Delete removes a user.
	Delete(ctx context.Context, username string) error

	// Authenticate verifies a username/password pair.
	// Unknown users, inactive users and wrong passwords are indistinguishable.
	Authenticate(ctx context.Context, username, password string) (*entity.User, error)
}
