// Package session persists the signed-in user between hrctl invocations.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

const FileName = "session.toml"

// Session holds the four values kept after login.
type Session struct {
	Token    string `toml:"token"`
	Role     string `toml:"role"`
	UserID   string `toml:"user_id"`
	UserName string `toml:"user_name"`
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}

type Store interface {
	Load() (Session, error)
	Save(Session) error
	Clear() error
}

// FileStore keeps the session as TOML readable only by the owner.
type FileStore struct {
	path string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, FileName)}
}

func (f *FileStore) Path() string {
	return f.path
}

// Load returns an empty session when no file exists.
func (f *FileStore) Load() (Session, error) {
	var s Session

	if _, err := toml.DecodeFile(f.path, &s); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Session{}, nil
		}
		return Session{}, fmt.Errorf("read session: %w", err)
	}

	return s, nil
}

func (f *FileStore) Save(s Session) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	if err = toml.NewEncoder(file).Encode(s); err != nil {
		_ = file.Close()
		return fmt.Errorf("encode session: %w", err)
	}

	return file.Close()
}

func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

type MemoryStore struct {
	mu      sync.Mutex
	session Session
}

func NewMemoryStore(s Session) *MemoryStore {
	return &MemoryStore{session: s}
}

func (m *MemoryStore) Load() (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.session, nil
}

func (m *MemoryStore) Save(s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = s
	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = Session{}
	return nil
}
