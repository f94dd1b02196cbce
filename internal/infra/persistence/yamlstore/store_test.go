package yamlstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"fileauth/internal/domain/entity"
	domainerrors "fileauth/internal/domain/errors"
	"fileauth/internal/domain/repository"
	"fileauth/internal/errors"
)

func TestUserStore_LoadPreservesOrderAndFields(t *testing.T) {
	adminHash := mustHash(t, "admin-pass")
	viewerHash := mustHash(t, "viewer-pass")
	store := newLoadedStore(t, fmt.Sprintf(`version: "1.0"
users:
  - username: zed
    password_hash: %s
    role: admin
    email: zed@example.com
    first_name: Zed
    last_name: Last
    metadata:
      team: data
  - username: amy
    password_hash: %s
    role: viewer
    active: false
`, adminHash, viewerHash))

	users, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, "zed", users[0].Username)
	assert.Equal(t, entity.RoleAdmin, users[0].Role)
	assert.Equal(t, "zed@example.com", users[0].Email)
	assert.Equal(t, "Zed Last", users[0].DisplayName())
	assert.True(t, users[0].Active, "active defaults to true")
	assert.Equal(t, map[string]any{"team": "data"}, users[0].Metadata)

	assert.Equal(t, "amy", users[1].Username)
	assert.False(t, users[1].Active)
}

func TestUserStore_LoadMissingVersionAndEmptyFile(t *testing.T) {
	store := newLoadedStore(t, fmt.Sprintf(`users:
  - username: bob
    password_hash: %s
    role: editor
`, mustHash(t, "pw")))

	users, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)

	empty := newLoadedStore(t, "")
	users, err = empty.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserStore_LoadMissingFile(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "absent.yaml"), fastHasher{}, discardLogger())

	err := store.Load(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrUsersFileNotFound))
}

func TestUserStore_LoadMalformed(t *testing.T) {
	hash := mustHash(t, "pw")

	tests := []struct {
		name    string
		content string
	}{
		{name: "bad yaml", content: "users: [unterminated"},
		{name: "not a mapping", content: "- just\n- a list\n"},
		{name: "unknown version", content: `version: "2.0"` + "\nusers: []\n"},
		{name: "invalid role", content: fmt.Sprintf("users:\n  - username: a\n    password_hash: %s\n    role: owner\n", hash)},
		{name: "empty username", content: fmt.Sprintf("users:\n  - username: \"\"\n    password_hash: %s\n    role: admin\n", hash)},
		{name: "missing hash", content: "users:\n  - username: a\n    role: admin\n"},
		{name: "duplicate username", content: fmt.Sprintf("users:\n  - username: a\n    password_hash: %[1]s\n    role: admin\n  - username: a\n    password_hash: %[1]s\n    role: viewer\n", hash)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := New(writeUsersFile(t, tt.content), fastHasher{}, discardLogger())

			err := store.Load(context.Background())
			assert.True(t, errors.Is(err, domainerrors.ErrUsersFileMalformed), "got %v", err)
		})
	}
}

func TestUserStore_ReloadIsIdempotent(t *testing.T) {
	store := newEmptyStore(t)
	addUser(t, store, "one", "pw1", entity.RoleViewer)
	addUser(t, store, "two", "pw2", entity.RoleEditor)
	addUser(t, store, "three", "pw3", entity.RoleAdmin)

	before, err := store.List(context.Background())
	require.NoError(t, err)

	require.NoError(t, store.Reload(context.Background()))
	require.NoError(t, store.Reload(context.Background()))

	after, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUserStore_ReloadFailureKeepsState(t *testing.T) {
	store := newEmptyStore(t)
	addUser(t, store, "keep", "pw", entity.RoleViewer)

	require.NoError(t, os.WriteFile(store.Path(), []byte("version: \"9\"\n"), 0o600))

	err := store.Reload(context.Background())
	require.Error(t, err)
	assert.True(t, store.Exists(context.Background(), "keep"))
}

func TestUserStore_SeesExternalEditsOnlyAfterReload(t *testing.T) {
	store := newEmptyStore(t)
	addUser(t, store, "first", "pw", entity.RoleViewer)

	other := New(store.Path(), fastHasher{}, discardLogger())
	require.NoError(t, other.Load(context.Background()))
	addUser(t, other, "second", "pw", entity.RoleViewer)

	assert.False(t, store.Exists(context.Background(), "second"))
	require.NoError(t, store.Reload(context.Background()))
	assert.True(t, store.Exists(context.Background(), "second"))
}

func TestUserStore_AddPersists(t *testing.T) {
	store := newEmptyStore(t)

	user, err := store.Add(context.Background(), repository.NewUser{
		Username:  "ada",
		Password:  "s3cret",
		Role:      entity.RoleAdmin,
		Email:     "ada@example.com",
		FirstName: "Ada",
		Active:    true,
		Metadata:  map[string]any{"team": "core"},
	})
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	assert.True(t, fastHasher{}.Check("s3cret", user.PasswordHash))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	content := string(readFile(t, store.Path()))
	assert.Contains(t, content, `version: "1.0"`)
	assert.Contains(t, content, "password_hash:")
	assert.NotContains(t, content, "last_name")
	assert.NotContains(t, content, "s3cret")

	reloaded := New(store.Path(), fastHasher{}, discardLogger())
	require.NoError(t, reloaded.Load(context.Background()))
	got, err := reloaded.Get(context.Background(), "ada")
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserStore_AddConflictLeavesFileUnchanged(t *testing.T) {
	store := newEmptyStore(t)
	addUser(t, store, "ada", "pw", entity.RoleAdmin)
	before := readFile(t, store.Path())

	_, err := store.Add(context.Background(), repository.NewUser{
		Username: "ada",
		Password: "other",
		Role:     entity.RoleViewer,
		Active:   true,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	assert.Equal(t, before, readFile(t, store.Path()))

	users, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, entity.RoleAdmin, users[0].Role)
}

func TestUserStore_AddValidation(t *testing.T) {
	store := newEmptyStore(t)

	tests := []struct {
		name  string
		input repository.NewUser
	}{
		{name: "empty username", input: repository.NewUser{Username: "  ", Password: "pw", Role: entity.RoleViewer}},
		{name: "unknown role", input: repository.NewUser{Username: "x", Password: "pw", Role: "owner"}},
		{name: "empty password", input: repository.NewUser{Username: "x", Role: entity.RoleViewer}},
		{name: "bad email", input: repository.NewUser{Username: "x", Password: "pw", Role: entity.RoleViewer, Email: "not-an-email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Add(context.Background(), tt.input)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "got %v", err)
		})
	}

	_, err := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err), "no file is written for rejected input")
}

func TestUserStore_Update(t *testing.T) {
	store := newEmptyStore(t)
	original := addUser(t, store, "ada", "old-pass", entity.RoleViewer)

	updated, err := store.Update(context.Background(), "ada", repository.UserUpdate{
		Role:     ptr(entity.RoleEditor),
		LastName: ptr("Lovelace"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEditor, updated.Role)
	assert.Equal(t, "Lovelace", updated.LastName)
	assert.Equal(t, original.PasswordHash, updated.PasswordHash, "password untouched")

	updated, err = store.Update(context.Background(), "ada", repository.UserUpdate{
		Password: ptr("new-pass"),
		Active:   ptr(false),
	})
	require.NoError(t, err)
	assert.NotEqual(t, original.PasswordHash, updated.PasswordHash)
	assert.True(t, fastHasher{}.Check("new-pass", updated.PasswordHash))
	assert.False(t, updated.Active)

	reloaded := New(store.Path(), fastHasher{}, discardLogger())
	require.NoError(t, reloaded.Load(context.Background()))
	got, err := reloaded.Get(context.Background(), "ada")
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUserStore_UpdateErrors(t *testing.T) {
	store := newEmptyStore(t)
	addUser(t, store, "ada", "pw", entity.RoleViewer)

	_, err := store.Update(context.Background(), "nobody", repository.UserUpdate{Email: ptr("nobody@example.com")})
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))

	_, err = store.Update(context.Background(), "ada", repository.UserUpdate{Role: ptr(entity.Role("root"))})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = store.Update(context.Background(), "ada", repository.UserUpdate{Password: ptr("")})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserStore_UpdateKeepsFileMode(t *testing.T) {
	store := newEmptyStore(t)
	addUser(t, store, "ada", "pw", entity.RoleViewer)
	require.NoError(t, os.Chmod(store.Path(), 0o640))

	_, err := store.Update(context.Background(), "ada", repository.UserUpdate{Email: ptr("ada@example.com")})
	require.NoError(t, err)

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
}

func TestUserStore_Delete(t *testing.T) {
	store := newEmptyStore(t)
	addUser(t, store, "a", "pw", entity.RoleViewer)
	addUser(t, store, "b", "pw", entity.RoleViewer)
	addUser(t, store, "c", "pw", entity.RoleViewer)

	require.NoError(t, store.Delete(context.Background(), "b"))

	users, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a", users[0].Username)
	assert.Equal(t, "c", users[1].Username)

	_, err = store.Get(context.Background(), "b")
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))

	err = store.Delete(context.Background(), "b")
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserStore_PersistFailureRollsBack(t *testing.T) {
	failRename := false
	store := newEmptyStore(t, WithRename(func(oldpath, newpath string) error {
		if failRename {
			return errors.New("disk unplugged")
		}

		return os.Rename(oldpath, newpath)
	}))
	addUser(t, store, "ada", "pw", entity.RoleAdmin)
	addUser(t, store, "bob", "pw", entity.RoleViewer)
	before := readFile(t, store.Path())

	failRename = true

	_, err := store.Add(context.Background(), repository.NewUser{Username: "eve", Password: "pw", Role: entity.RoleViewer, Active: true})
	assert.True(t, errors.Is(err, domainerrors.ErrUsersFilePersist))

	_, err = store.Update(context.Background(), "bob", repository.UserUpdate{Role: ptr(entity.RoleAdmin)})
	assert.True(t, errors.Is(err, domainerrors.ErrUsersFilePersist))

	err = store.Delete(context.Background(), "ada")
	assert.True(t, errors.Is(err, domainerrors.ErrUsersFilePersist))

	// File and memory both still reflect the last good state.
	assert.Equal(t, before, readFile(t, store.Path()))
	assert.Empty(t, tempFiles(t, filepath.Dir(store.Path())))
	assert.False(t, store.Exists(context.Background(), "eve"))
	assert.True(t, store.Exists(context.Background(), "ada"))
	bob, err := store.Get(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleViewer, bob.Role)

	require.NoError(t, store.Reload(context.Background()))
	users, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserStore_Authenticate(t *testing.T) {
	store := newEmptyStore(t)
	addUser(t, store, "ada", "right", entity.RoleAdmin)
	_, err := store.Add(context.Background(), repository.NewUser{Username: "sleepy", Password: "right", Role: entity.RoleViewer, Active: false})
	require.NoError(t, err)

	user, err := store.Authenticate(context.Background(), "ada", "right")
	require.NoError(t, err)
	assert.Equal(t, "ada", user.Username)

	failures := []struct {
		username string
		password string
	}{
		{"ada", "wrong"},
		{"ghost", "right"},
		{"sleepy", "right"},
		{"ADA", "right"},
	}
	for _, f := range failures {
		user, err := store.Authenticate(context.Background(), f.username, f.password)
		assert.Nil(t, user)
		assert.Same(t, domainerrors.ErrInvalidCredentials, err, "%s/%s", f.username, f.password)
	}
}

func TestUserStore_AuthenticateUnknownUserCostsOneCheck(t *testing.T) {
	hasher := &countingHasher{}
	store := New(filepath.Join(t.TempDir(), "users.yaml"), hasher, discardLogger())
	store.Reset(context.Background())
	ada := addUser(t, store, "ada", "right", entity.RoleAdmin)

	hashes, _ := hasher.calls()
	require.Equal(t, 2, hashes, "dummy hash at construction plus ada's password")

	for _, username := range []string{"ghost", "ada", "ghost"} {
		hasher.reset()

		_, err := store.Authenticate(context.Background(), username, "wrong")
		assert.Same(t, domainerrors.ErrInvalidCredentials, err)

		hashes, checked := hasher.calls()
		assert.Zero(t, hashes, username)
		require.Len(t, checked, 1, username)

		cost, err := bcrypt.Cost([]byte(checked[0]))
		require.NoError(t, err, username)
		wantCost, err := bcrypt.Cost([]byte(ada.PasswordHash))
		require.NoError(t, err)
		assert.Equal(t, wantCost, cost, username)
	}
}

func TestUserStore_ReloadDuringAddKeepsAcknowledgedWrite(t *testing.T) {
	reloaded := make(chan error, 1)
	var once sync.Once
	var store *UserStore
	store = newEmptyStore(t, WithRename(func(oldpath, newpath string) error {
		once.Do(func() {
			go func() {
				reloaded <- store.Reload(context.Background())
			}()
			time.Sleep(50 * time.Millisecond)
		})

		return os.Rename(oldpath, newpath)
	}))

	addUser(t, store, "bob", "pw", entity.RoleViewer)
	require.NoError(t, <-reloaded)

	assert.True(t, store.Exists(context.Background(), "bob"))

	addUser(t, store, "carol", "pw", entity.RoleViewer)

	fromDisk := New(store.Path(), fastHasher{}, discardLogger())
	require.NoError(t, fromDisk.Load(context.Background()))
	assert.True(t, fromDisk.Exists(context.Background(), "bob"))
	assert.True(t, fromDisk.Exists(context.Background(), "carol"))
}

func TestUserStore_NotLoaded(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "users.yaml"), fastHasher{}, discardLogger())

	_, err := store.List(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrStoreNotLoaded))

	_, err = store.Add(context.Background(), repository.NewUser{Username: "a", Password: "pw", Role: entity.RoleViewer})
	assert.True(t, errors.Is(err, domainerrors.ErrStoreNotLoaded))

	_, err = store.Authenticate(context.Background(), "a", "pw")
	assert.True(t, errors.Is(err, domainerrors.ErrStoreNotLoaded))
}

func TestUserStore_ReturnsCopies(t *testing.T) {
	store := newEmptyStore(t)
	_, err := store.Add(context.Background(), repository.NewUser{
		Username: "ada",
		Password: "pw",
		Role:     entity.RoleViewer,
		Metadata: map[string]any{"team": "core"},
	})
	require.NoError(t, err)

	user, err := store.Get(context.Background(), "ada")
	require.NoError(t, err)
	user.Role = entity.RoleAdmin
	user.Metadata["team"] = "hacked"

	again, err := store.Get(context.Background(), "ada")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleViewer, again.Role)
	assert.Equal(t, "core", again.Metadata["team"])
}

func TestUserStore_ConcurrentMutations(t *testing.T) {
	store := newEmptyStore(t)

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers*2)

	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.Add(context.Background(), repository.NewUser{
				Username: fmt.Sprintf("user-%d", i),
				Password: "pw",
				Role:     entity.RoleViewer,
				Active:   true,
			})
			errs <- err
		}(i)

		// Same username from every worker: exactly one wins.
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Add(context.Background(), repository.NewUser{
				Username: "contended",
				Password: "pw",
				Role:     entity.RoleViewer,
				Active:   true,
			})
			if err != nil && !errors.Is(err, domainerrors.ErrUserAlreadyExists) {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	require.NoError(t, store.Reload(context.Background()))
	users, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, workers+1)

	contended := 0
	for _, user := range users {
		if strings.HasPrefix(user.Username, "contended") {
			contended++
		}
	}
	assert.Equal(t, 1, contended)
}

func TestUserStore_Reset(t *testing.T) {
	store := newLoadedStore(t, fmt.Sprintf("users:\n  - username: old\n    password_hash: %s\n    role: admin\n", mustHash(t, "pw")))
	before := readFile(t, store.Path())

	store.Reset(context.Background())
	assert.False(t, store.Exists(context.Background(), "old"))
	assert.Equal(t, before, readFile(t, store.Path()), "reset does not write")

	addUser(t, store, "fresh", "pw", entity.RoleAdmin)
	require.NoError(t, store.Reload(context.Background()))
	assert.False(t, store.Exists(context.Background(), "old"))
	assert.True(t, store.Exists(context.Background(), "fresh"))
}
