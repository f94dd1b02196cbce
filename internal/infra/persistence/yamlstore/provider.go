package yamlstore

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"

	"fileauth/config"
	"fileauth/internal/domain/lifecycle"
	"fileauth/internal/domain/repository"
	"fileauth/internal/domain/service"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	Logger    *slog.Logger
	Hasher    service.PasswordHasher
	Validator *validator.Validate `optional:"true"`
}

// NewCredentialStore builds the store for the configured users file and loads
// it when the application starts.
func NewCredentialStore(params Params) repository.CredentialStore {
	opts := []Option{}
	if params.Validator != nil {
		opts = append(opts, WithValidator(params.Validator))
	}

	store := New(params.Config.Auth.UsersFile, params.Hasher, params.Logger, opts...)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return store.Load(ctx)
		},
	})

	return store
}
