// Package yamlstore implements the credential store on top of a YAML users file.
package yamlstore

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"fileauth/internal/domain/entity"
	domainerrors "fileauth/internal/domain/errors"
	"fileauth/internal/domain/repository"
	"fileauth/internal/domain/service"
	"fileauth/internal/errors"
	"fileauth/internal/util"
)

// dummyPassword is hashed when the store is created and compared against when a username is unknown,
// so that lookups of missing users cost the same as a wrong password.
const dummyPassword = "fileauth-timing-equalizer"

// UserStore is a CredentialStore backed by a single YAML file.
//
// It holds the whole file in memory. Reads share a read lock; mutations hold
// the write lock for the read-modify-persist cycle and only update memory
// after the file has been replaced. Two processes using the same file do not
// see each other's changes until they Reload.
type UserStore struct {
	path     string
	hasher   service.PasswordHasher
	validate *validator.Validate
	logger   *slog.Logger
	rename   renameFunc

	mu     sync.RWMutex
	users  []*entity.User
	index  map[string]int
	loaded bool

	dummyHash string
}

var _ repository.CredentialStore = (*UserStore)(nil)

// Option customises a UserStore.
type Option func(*UserStore)

// WithRename replaces the final rename of the persist cycle.
func WithRename(rename func(oldpath, newpath string) error) Option {
	return func(s *UserStore) {
		s.rename = rename
	}
}

// WithValidator shares a validator instance with the store.
func WithValidator(validate *validator.Validate) Option {
	return func(s *UserStore) {
		s.validate = validate
	}
}

// New creates a store for path. It does not touch the file; call Load or Reset.
func New(path string, hasher service.PasswordHasher, logger *slog.Logger, opts ...Option) *UserStore {
	if logger == nil {
		logger = slog.Default()
	}

	s := &UserStore{
		path:     path,
		hasher:   hasher,
		validate: validator.New(),
		logger:   logger.With(slog.String("component", "credential_store")),
		rename:   os.Rename,
		index:    map[string]int{},
	}
	for _, opt := range opts {
		opt(s)
	}

	hash, err := hasher.Hash(dummyPassword)
	if err != nil {
		s.logger.Error("Failed to prepare dummy hash", slog.Any("error", err))
	}
	s.dummyHash = hash

	return s
}

// Path returns the backing file location.
func (s *UserStore) Path() string {
	return s.path
}

// Load parses the backing file into memory, replacing any previous state.
// The write lock is held from the read until the commit so a concurrent
// mutation cannot be overwritten by an older snapshot.
func (s *UserStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domainerrors.ErrUsersFileNotFound.WrapMessage(s.path)
		}

		return errors.Wrapf(err, "read users file %s", s.path)
	}

	users, err := decode(data, s.validate)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to parse users file",
			slog.String("path", s.path),
			slog.Any("error", err),
		)

		return err
	}

	s.commit(users)
	s.loaded = true

	s.logger.InfoContext(ctx, "Loaded users",
		slog.Int("count", len(users)),
		slog.String("path", s.path),
		slog.String("checksum", util.Checksum(data)),
	)

	return nil
}

// Reload discards the in-memory state and loads the backing file again.
// On failure the previous state is kept.
func (s *UserStore) Reload(ctx context.Context) error {
	return s.Load(ctx)
}

// Reset starts an empty store at the same path without touching the file.
func (s *UserStore) Reset(ctx context.Context) {
	s.mu.Lock()
	s.commit(nil)
	s.loaded = true
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "Reset users", slog.String("path", s.path))
}

// Get retrieves a single user by username.
func (s *UserStore) Get(_ context.Context, username string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, domainerrors.ErrStoreNotLoaded
	}

	user, ok := s.lookup(username)
	if !ok {
		return nil, domainerrors.ErrUserNotFound.WrapMessage(username)
	}

	return user.Clone(), nil
}

// Exists reports whether a user with the given username exists.
func (s *UserStore) Exists(_ context.Context, username string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.lookup(username)

	return ok
}

// List returns all users in file order.
func (s *UserStore) List(_ context.Context) ([]*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, domainerrors.ErrStoreNotLoaded
	}

	users := make([]*entity.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user.Clone())
	}

	return users, nil
}

// Add creates a new user, hashing the supplied password.
func (s *UserStore) Add(ctx context.Context, input repository.NewUser) (*entity.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	if err := s.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	// Fail fast before paying for a hash; the check is repeated under the lock.
	if s.Exists(ctx, input.Username) {
		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage(input.Username)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Username:     input.Username,
		PasswordHash: hash,
		Role:         input.Role,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Active:       input.Active,
		Metadata:     maps.Clone(input.Metadata),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return nil, domainerrors.ErrStoreNotLoaded
	}
	if _, exists := s.lookup(user.Username); exists {
		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage(user.Username)
	}

	next := append(slices.Clone(s.users), user)
	if err := s.persist(ctx, next); err != nil {
		return nil, err
	}
	s.commit(next)

	s.logger.WarnContext(ctx, "AUDIT: User created",
		slog.String("username", user.Username),
		slog.String("role", user.Role.String()),
	)

	return user.Clone(), nil
}

// Update applies a partial update to an existing user.
func (s *UserStore) Update(ctx context.Context, username string, update repository.UserUpdate) (*entity.User, error) {
	if update.Role != nil && !update.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("invalid role %q", *update.Role))
	}
	if update.Email != nil {
		if err := s.validate.Var(*update.Email, "omitempty,email"); err != nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
		}
	}

	var newHash string
	if update.Password != nil {
		if *update.Password == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("password must not be empty")
		}

		hash, err := s.hasher.Hash(*update.Password)
		if err != nil {
			return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
		}
		newHash = hash
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return nil, domainerrors.ErrStoreNotLoaded
	}

	pos, ok := s.index[username]
	if !ok {
		return nil, domainerrors.ErrUserNotFound.WrapMessage(username)
	}

	updated := s.users[pos].Clone()
	changes := applyUpdate(updated, update, newHash)

	next := slices.Clone(s.users)
	next[pos] = updated
	if err := s.persist(ctx, next); err != nil {
		return nil, err
	}
	s.commit(next)

	s.logger.WarnContext(ctx, "AUDIT: User updated",
		slog.String("username", username),
		slog.String("changes", strings.Join(changes, ", ")),
	)

	return updated.Clone(), nil
}

// Delete removes a user.
func (s *UserStore) Delete(ctx context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return domainerrors.ErrStoreNotLoaded
	}

	pos, ok := s.index[username]
	if !ok {
		return domainerrors.ErrUserNotFound.WrapMessage(username)
	}

	next := slices.Delete(slices.Clone(s.users), pos, pos+1)
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.commit(next)

	s.logger.WarnContext(ctx, "AUDIT: User deleted", slog.String("username", username))

	return nil
}

// Authenticate verifies a username/password pair. Every failure returns
// ErrInvalidCredentials; the reason is only logged.
func (s *UserStore) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	s.mu.RLock()
	if !s.loaded {
		s.mu.RUnlock()

		return nil, domainerrors.ErrStoreNotLoaded
	}
	user, ok := s.lookup(username)
	if ok {
		user = user.Clone()
	}
	s.mu.RUnlock()

	if !ok {
		s.hasher.Check(password, s.dummyHash)
		s.logAuthFailure(ctx, username, "user not found")

		return nil, domainerrors.ErrInvalidCredentials
	}

	// The password is checked for inactive users too so both paths cost the same.
	valid := s.hasher.Check(password, user.PasswordHash)
	if !user.Active {
		s.logAuthFailure(ctx, username, "user inactive")

		return nil, domainerrors.ErrInvalidCredentials
	}
	if !valid {
		s.logAuthFailure(ctx, username, "invalid password")

		return nil, domainerrors.ErrInvalidCredentials
	}

	s.logger.InfoContext(ctx, "User authenticated successfully", slog.String("username", username))

	return user, nil
}

func (s *UserStore) logAuthFailure(ctx context.Context, username, reason string) {
	s.logger.WarnContext(ctx, "Authentication failed",
		slog.String("username", username),
		slog.String("reason", reason),
	)
}

// lookup must be called with mu held.
func (s *UserStore) lookup(username string) (*entity.User, bool) {
	pos, ok := s.index[username]
	if !ok {
		return nil, false
	}

	return s.users[pos], true
}

// commit must be called with mu held for writing.
func (s *UserStore) commit(users []*entity.User) {
	index := make(map[string]int, len(users))
	for i, user := range users {
		index[user.Username] = i
	}
	s.users = users
	s.index = index
}

// persist must be called with mu held for writing.
func (s *UserStore) persist(ctx context.Context, users []*entity.User) error {
	data, err := encode(users)
	if err != nil {
		return domainerrors.ErrUsersFilePersist.WrapMessage(err.Error())
	}

	if err := writeAtomic(s.path, data, s.rename); err != nil {
		s.logger.ErrorContext(ctx, "Failed to save users file",
			slog.String("path", s.path),
			slog.Any("error", err),
		)

		return domainerrors.ErrUsersFilePersist.WrapMessage(err.Error())
	}

	s.logger.InfoContext(ctx, "Saved users",
		slog.Int("count", len(users)),
		slog.String("path", s.path),
		slog.String("checksum", util.Checksum(data)),
	)

	return nil
}

// applyUpdate mutates user in place and describes what changed.
func applyUpdate(user *entity.User, update repository.UserUpdate, newHash string) []string {
	var changes []string

	if update.Password != nil {
		user.PasswordHash = newHash
		changes = append(changes, "password")
	}
	if update.Role != nil {
		changes = append(changes, fmt.Sprintf("role: %s -> %s", user.Role, *update.Role))
		user.Role = *update.Role
	}
	if update.Email != nil {
		user.Email = *update.Email
		changes = append(changes, "email")
	}
	if update.FirstName != nil {
		user.FirstName = *update.FirstName
		changes = append(changes, "first_name")
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
		changes = append(changes, "last_name")
	}
	if update.Active != nil {
		changes = append(changes, fmt.Sprintf("active: %t -> %t", user.Active, *update.Active))
		user.Active = *update.Active
	}

	return changes
}
