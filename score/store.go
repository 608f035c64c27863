package score

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/ini.v1"
)

const (
	iniSection = "score"
	iniKey     = "high_score"
)

// Store persists a single high-score integer
type Store interface {
	Load() (int, error)
	Save(score int) error
}

// IniStore keeps the high score in an ini file under [score] high_score
type IniStore struct {
	path string
}

// NewIniStore returns a store backed by the ini file at path
// The file and its directory are created on first save
func NewIniStore(path string) *IniStore {
	return &IniStore{path: path}
}

// DefaultPath returns the score file location under the user config dir
func DefaultPath(dirName, fileName string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, dirName, fileName), nil
}

// Load reads the stored value
// A missing file yields 0 without error
func (s *IniStore) Load() (int, error) {
	f, err := ini.Load(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("load score file %s: %w", s.path, err)
	}

	key := f.Section(iniSection).Key(iniKey)
	if key.String() == "" {
		return 0, nil
	}
	v, err := key.Int()
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", iniKey, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative %s: %d", iniKey, v)
	}
	return v, nil
}

// Save writes the value, preserving any other keys in the file
func (s *IniStore) Save(score int) error {
	f, err := ini.Load(s.path)
	if err != nil {
		f = ini.Empty()
	}
	f.Section(iniSection).Key(iniKey).SetValue(fmt.Sprintf("%d", score))

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create score dir: %w", err)
	}
	if err := f.SaveTo(s.path); err != nil {
		return fmt.Errorf("save score file %s: %w", s.path, err)
	}
	return nil
}

// MemoryStore keeps the high score for the lifetime of the process
type MemoryStore struct {
	mu    sync.Mutex
	value int
	err   error
}

// NewMemoryStore returns a store seeded with initial
func NewMemoryStore(initial int) *MemoryStore {
	return &MemoryStore{value: initial}
}

// Load returns the stored value
func (m *MemoryStore) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, nil
}

// Save stores the value, or returns the injected failure
func (m *MemoryStore) Save(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.value = score
	return nil
}

// FailSaves makes subsequent saves return err; nil restores normal behaviour
func (m *MemoryStore) FailSaves(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
}
