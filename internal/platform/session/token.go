// Package session holds the bearer token sources handed to the HTTP client.
// The client only reads tokens; writing happens in the login flow of the
// caller.
package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"hrmportal/internal/platform/crypto"
)

// Static always returns the same token.
type Static string

func (s Static) Token(context.Context) (string, error) {
	return string(s), nil
}

// Store is an in-memory token holder safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	token string
}

func NewStore(token string) *Store {
	return &Store{token: token}
}

func (s *Store) Token(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

func (s *Store) Set(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

func (s *Store) Clear() {
	s.Set("")
}

// FileStore keeps the token in a file, sealed when a key is configured.
type FileStore struct {
	path   string
	sealer *crypto.Sealer
}

func NewFileStore(path string, sealer *crypto.Sealer) *FileStore {
	return &FileStore{path: path, sealer: sealer}
}

func (s *FileStore) Path() string {
	return s.path
}

// Token returns "" when nothing has been saved yet.
func (s *FileStore) Token(context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	token, err := s.sealer.OpenString(strings.TrimSpace(string(data)))
	if err != nil {
		return "", fmt.Errorf("open token file: %w", err)
	}
	return token, nil
}

func (s *FileStore) Save(token string) error {
	sealed, err := s.sealer.SealString(token)
	if err != nil {
		return fmt.Errorf("seal token: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	return os.WriteFile(s.path, []byte(sealed+"\n"), 0o600)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

type ctxKey struct{}

// WithToken scopes a token to one inbound request. Context reads it back.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxKey{}, token)
}

// Context reads the token placed by WithToken. The portal server uses it to
// forward the caller's credential on backend calls.
type Context struct{}

func (Context) Token(ctx context.Context) (string, error) {
	token, _ := ctx.Value(ctxKey{}).(string)
	return token, nil
}
