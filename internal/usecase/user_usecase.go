package usecase

import (
	"context"

	"fileauth/internal/domain/entity"
)

// DefaultAdminUsername is the account created when a users file is initialised.
const DefaultAdminUsername = "admin"

// InitStoreInput defines how a new users file is bootstrapped.
type InitStoreInput struct {
	Password string
	Email    string
	Force    bool // Overwrite an existing file.
}

// CreateUserInput defines the data required to add a user.
type CreateUserInput struct {
	Username  string
	Password  string
	Role      entity.Role
	Email     string
	FirstName string
	LastName  string
	Active    *bool // Defaults to true.
	Metadata  map[string]any
}

// UpdateUserInput is a partial update; nil fields are left unchanged.
type UpdateUserInput struct {
	Password  *string
	Role      *entity.Role
	Email     *string
	FirstName *string
	LastName  *string
	Active    *bool
}

// UserUsecase defines user administration for the CLI and the admin API.
// actor names the administrator performing a change and is only used for auditing.
type UserUsecase interface {
	InitStore(ctx context.Context, input InitStoreInput) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	GetUser(ctx context.Context, username string) (*entity.User, error)
	CreateUser(ctx context.Context, actor string, input CreateUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, actor, username string, input UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, actor, username string) error
	HashPassword(password string) (string, error)
}
