package yamlstore

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"fileauth/internal/domain/entity"
	"fileauth/internal/domain/repository"
)

// fastHasher is bcrypt at minimum cost so tests stay quick.
type fastHasher struct{}

func (fastHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)

	return string(hash), err
}

func (fastHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// countingHasher records every call made through it.
type countingHasher struct {
	fastHasher

	mu      sync.Mutex
	hashes  int
	checked []string
}

func (h *countingHasher) Hash(password string) (string, error) {
	h.mu.Lock()
	h.hashes++
	h.mu.Unlock()

	return h.fastHasher.Hash(password)
}

func (h *countingHasher) Check(password, hash string) bool {
	h.mu.Lock()
	h.checked = append(h.checked, hash)
	h.mu.Unlock()

	return h.fastHasher.Check(password, hash)
}

func (h *countingHasher) reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hashes = 0
	h.checked = nil
}

func (h *countingHasher) calls() (hashes int, checked []string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.hashes, append([]string(nil), h.checked...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := fastHasher{}.Hash(password)
	require.NoError(t, err)

	return hash
}

func writeUsersFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func newLoadedStore(t *testing.T, content string, opts ...Option) *UserStore {
	t.Helper()
	store := New(writeUsersFile(t, content), fastHasher{}, discardLogger(), opts...)
	require.NoError(t, store.Load(context.Background()))

	return store
}

func newEmptyStore(t *testing.T, opts ...Option) *UserStore {
	t.Helper()
	store := New(filepath.Join(t.TempDir(), "users.yaml"), fastHasher{}, discardLogger(), opts...)
	store.Reset(context.Background())

	return store
}

func addUser(t *testing.T, store *UserStore, username, password string, role entity.Role) *entity.User {
	t.Helper()
	user, err := store.Add(context.Background(), repository.NewUser{
		Username: username,
		Password: password,
		Role:     role,
		Active:   true,
	})
	require.NoError(t, err)

	return user
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return data
}

func tempFiles(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, ".users_*.tmp"))
	require.NoError(t, err)

	return matches
}

func ptr[T any](v T) *T {
	return &v
}
