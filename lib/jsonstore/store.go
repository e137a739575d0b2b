package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/codexx-academy/dto"
)

// UserRecord is the account shape stored in the legacy JSON file.
type UserRecord struct {
	Username           string   `json:"username"`
	Email              string   `json:"email"`
	PasswordHash       string   `json:"password_hash"`
	Role               string   `json:"role"`
	IsActive           bool     `json:"is_active"`
	IsVerified         bool     `json:"is_verified"`
	IsDemo             bool     `json:"is_demo"`
	Badges             []string `json:"badges"`
	MustChangePassword bool     `json:"must_change_password"`
	CreatedAt          string   `json:"created_at,omitempty"`
}

// FileData is the multi-tenant layout of the JSON file: one portfolio
// aggregate per username plus the account list.
type FileData struct {
	Portfolios map[string]dto.PortfolioState `json:"portfolios"`
	Users      []UserRecord                  `json:"users"`
}

// Store serializes access to the JSON data file. Writes go through a temp
// file and rename so a crash never leaves a half-written file behind.
type Store struct {
	path string
	mu   sync.Mutex
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Read loads the file, migrating the pre-multi-tenant layout on the fly. A
// missing file yields an empty dataset, not an error.
func (s *Store) Read() (*FileData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked()
}

func (s *Store) readLocked() (*FileData, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &FileData{Portfolios: map[string]dto.PortfolioState{}}, nil
	}
	if err != nil {
		return nil, err
	}

	var data FileData
	if err := json.Unmarshal(raw, &data); err == nil && data.Portfolios != nil {
		return &data, nil
	}

	// Older files hold a single portfolio object at the top level. Wrap it
	// under its username so the rest of the code only sees one layout.
	var single dto.PortfolioState
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, fmt.Errorf("unrecognized data file format: %v", err)
	}
	username := single.Username
	if username == "" {
		username = "admin"
		single.Username = username
	}
	return &FileData{
		Portfolios: map[string]dto.PortfolioState{username: single},
	}, nil
}

// Write replaces the whole file atomically.
func (s *Store) Write(data *FileData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(data)
}

func (s *Store) writeLocked(data *FileData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".data-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, s.path)
}

// Update applies fn to the current file contents and writes the result back,
// all under the store lock.
func (s *Store) Update(fn func(*FileData) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.readLocked()
	if err != nil {
		return err
	}
	if err := fn(data); err != nil {
		return err
	}
	return s.writeLocked(data)
}

// SetPortfolio stores one tenant's aggregate in the file.
func (s *Store) SetPortfolio(username string, state dto.PortfolioState) error {
	return s.Update(func(data *FileData) error {
		if data.Portfolios == nil {
			data.Portfolios = map[string]dto.PortfolioState{}
		}
		state.Username = username
		data.Portfolios[username] = state
		return nil
	})
}

// GetPortfolio returns one tenant's aggregate, or false when absent.
func (s *Store) GetPortfolio(username string) (dto.PortfolioState, bool, error) {
	data, err := s.Read()
	if err != nil {
		return dto.PortfolioState{}, false, err
	}
	state, ok := data.Portfolios[username]
	return state, ok, nil
}

// DeletePortfolio removes one tenant's aggregate and account record.
func (s *Store) DeletePortfolio(username string) error {
	return s.Update(func(data *FileData) error {
		delete(data.Portfolios, username)
		kept := data.Users[:0]
		for _, u := range data.Users {
			if u.Username != username {
				kept = append(kept, u)
			}
		}
		data.Users = kept
		return nil
	})
}
