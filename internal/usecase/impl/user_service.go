package impl

import (
	"context"
	"log/slog"

	deliverycontext "fileauth/internal/delivery/context"
	"fileauth/internal/domain/entity"
	domainerrors "fileauth/internal/domain/errors"
	"fileauth/internal/domain/repository"
	"fileauth/internal/domain/service"
	"fileauth/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	store  repository.CredentialStore
	hasher service.PasswordHasher
	audit  *auditRecorder
	logger *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	Store          repository.CredentialStore
	Hasher         service.PasswordHasher
	AuditPublisher service.AuditPublisher `optional:"true"`
	Logger         *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		store:  params.Store,
		hasher: params.Hasher,
		audit:  newAuditRecorder(params.AuditPublisher),
		logger: params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// InitStore creates a users file holding a single admin account. An existing
// file, readable or not, is only replaced when Force is set.
func (srv *userService) InitStore(ctx context.Context, input usecase.InitStoreInput) (*entity.User, error) {
	if input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("admin password is required")
	}

	err := srv.store.Load(ctx)
	if !errors.Is(err, domainerrors.ErrUsersFileNotFound) && !input.Force {
		return nil, domainerrors.ErrUsersFileExists.WrapMessage(srv.store.Path())
	}

	srv.store.Reset(ctx)

	user, err := srv.store.Add(ctx, repository.NewUser{
		Username: usecase.DefaultAdminUsername,
		Password: input.Password,
		Role:     entity.RoleAdmin,
		Email:    input.Email,
		Active:   true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create admin user")
	}

	srv.log(ctx).Info("Initialised users file", slog.String("path", srv.store.Path()))
	srv.audit.record(ctx, srv.log(ctx), &service.AuditEvent{
		Action:   service.AuditUserCreated,
		Username: user.Username,
	})

	return user, nil
}

func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.store.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *userService) GetUser(ctx context.Context, username string) (*entity.User, error) {
	user, err := srv.store.Get(ctx, username)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get user %q", username)
	}

	return user, nil
}

func (srv *userService) CreateUser(ctx context.Context, actor string, input usecase.CreateUserInput) (*entity.User, error) {
	active := true
	if input.Active != nil {
		active = *input.Active
	}

	user, err := srv.store.Add(ctx, repository.NewUser{
		Username:  input.Username,
		Password:  input.Password,
		Role:      input.Role,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Active:    active,
		Metadata:  input.Metadata,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.audit.record(ctx, srv.log(ctx), &service.AuditEvent{
		Action:   service.AuditUserCreated,
		Username: user.Username,
		Actor:    actor,
	})

	return user, nil
}

func (srv *userService) UpdateUser(ctx context.Context, actor, username string, input usecase.UpdateUserInput) (*entity.User, error) {
	update := repository.UserUpdate{
		Password:  input.Password,
		Role:      input.Role,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Active:    input.Active,
	}
	if update.IsEmpty() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("no changes specified")
	}

	user, err := srv.store.Update(ctx, username, update)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update user %q", username)
	}

	srv.audit.record(ctx, srv.log(ctx), &service.AuditEvent{
		Action:   service.AuditUserUpdated,
		Username: user.Username,
		Actor:    actor,
		Changes:  changedFields(update),
	})

	return user, nil
}

func (srv *userService) DeleteUser(ctx context.Context, actor, username string) error {
	if err := srv.store.Delete(ctx, username); err != nil {
		return errors.Wrapf(err, "failed to delete user %q", username)
	}

	srv.audit.record(ctx, srv.log(ctx), &service.AuditEvent{
		Action:   service.AuditUserDeleted,
		Username: username,
		Actor:    actor,
	})

	return nil
}

// HashPassword returns a bcrypt hash for manual editing of the users file.
func (srv *userService) HashPassword(password string) (string, error) {
	if password == "" {
		return "", domainerrors.ErrValidationFailed.WrapMessage("password is required")
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return hash, nil
}

// changedFields names the fields an update touches. Values are omitted so
// secrets never reach the audit sink.
func changedFields(update repository.UserUpdate) []string {
	var changes []string
	if update.Password != nil {
		changes = append(changes, "password")
	}
	if update.Role != nil {
		changes = append(changes, "role")
	}
	if update.Email != nil {
		changes = append(changes, "email")
	}
	if update.FirstName != nil {
		changes = append(changes, "first_name")
	}
	if update.LastName != nil {
		changes = append(changes, "last_name")
	}
	if update.Active != nil {
		changes = append(changes, "active")
	}

	return changes
}
