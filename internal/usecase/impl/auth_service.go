// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fileauth/internal/delivery/context"
	domainerrors "fileauth/internal/domain/errors"
	"fileauth/internal/domain/repository"
	"fileauth/internal/domain/service"
	"fileauth/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	store        repository.CredentialStore
	tokenService service.TokenService
	audit        *auditRecorder
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Store          repository.CredentialStore
	TokenService   service.TokenService
	AuditPublisher service.AuditPublisher `optional:"true"`
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		store:        params.Store,
		tokenService: params.TokenService,
		audit:        newAuditRecorder(params.AuditPublisher),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates against the credential store and issues a token with the configured TTL.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("username and password required")
	}

	user, err := srv.store.Authenticate(ctx, input.Username, input.Password)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrInvalidCredentials) {
			return nil, errors.Wrap(err, "failed to authenticate")
		}

		srv.log(ctx).Warn("Failed login attempt",
			slog.String("username", input.Username),
			slog.String("remote_addr", input.RemoteAddr),
		)
		srv.audit.record(ctx, srv.log(ctx), &service.AuditEvent{
			Action:     service.AuditLoginFailed,
			Username:   input.Username,
			RemoteAddr: input.RemoteAddr,
		})

		return nil, domainerrors.ErrInvalidCredentials
	}

	ttl := srv.tokenService.DefaultTTL()
	token, err := srv.tokenService.Issue(user, ttl)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("AUDIT: User logged in",
		slog.String("username", user.Username),
		slog.String("role", string(user.Role)),
		slog.String("remote_addr", input.RemoteAddr),
	)
	srv.audit.record(ctx, srv.log(ctx), &service.AuditEvent{
		Action:     service.AuditLoginSucceeded,
		Username:   user.Username,
		RemoteAddr: input.RemoteAddr,
	})

	return &usecase.LoginOutput{
		AccessToken: token,
		TokenType:   usecase.TokenTypeBearer,
		ExpiresIn:   int64(ttl / time.Second),
		User:        user,
	}, nil
}

func (srv *authService) Logout(ctx context.Context, input usecase.LogoutInput) {
	if input.Username == "" {
		return
	}

	srv.log(ctx).Info("AUDIT: User logged out",
		slog.String("username", input.Username),
		slog.String("remote_addr", input.RemoteAddr),
	)
	srv.audit.record(ctx, srv.log(ctx), &service.AuditEvent{
		Action:     service.AuditLogout,
		Username:   input.Username,
		RemoteAddr: input.RemoteAddr,
	})
}
