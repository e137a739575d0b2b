package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/codexx-academy/dto"
)

const backupKeep = 20

const backupIndexFile = "backups.json"

// BackupService snapshots the JSON data file into the backup directory and
// keeps a metadata index next to the snapshots. At most backupKeep snapshots
// are retained; older ones are rotated out.
type BackupService struct {
	dataFile string
	dir      string
	mu       sync.Mutex
}

func NewBackupService(dataFile, dir string) *BackupService {
	return &BackupService{dataFile: dataFile, dir: dir}
}

func (s *BackupService) indexPath() string {
	return filepath.Join(s.dir, backupIndexFile)
}

func (s *BackupService) readIndex() ([]dto.BackupInfo, error) {
	raw, err := os.ReadFile(s.indexPath())
	if os.IsNotExist(err) {
		return []dto.BackupInfo{}, nil
	}
	if err != nil {
		return nil, err
	}
	var index []dto.BackupInfo
	if err := json.Unmarshal(raw, &index); err != nil {
		return nil, err
	}
	return index, nil
}

func (s *BackupService) writeIndex(index []dto.BackupInfo) error {
	raw, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.indexPath(), raw, 0o644)
}

// Create snapshots the current data file. The reason is free text shown in
// the backup list ("manual", "before restore", ...).
func (s *BackupService) Create(reason string) (*dto.BackupInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.dataFile)
	if err != nil {
		return nil, fmt.Errorf("nothing to back up: %v", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, err
	}

	now := time.Now()
	id := uuid.NewString()
	filename := fmt.Sprintf("data_%s_%s.json", now.Format("20060102_150405"), id[:8])
	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0o644); err != nil {
		return nil, err
	}

	info := dto.BackupInfo{
		ID:        id,
		Filename:  filename,
		CreatedAt: now.Format(dto.TimeLayout),
		SizeBytes: int64(len(data)),
		Reason:    reason,
	}

	index, err := s.readIndex()
	if err != nil {
		return nil, err
	}
	index = append(index, info)
	index = s.rotate(index)

	if err := s.writeIndex(index); err != nil {
		return nil, err
	}
	return &info, nil
}

// rotate trims the index to the newest backupKeep entries and removes the
// rotated snapshot files. The index is append-ordered, so the oldest entries
// sit at the front.
func (s *BackupService) rotate(index []dto.BackupInfo) []dto.BackupInfo {
	for len(index) > backupKeep {
		victim := index[0]
		index = index[1:]
		if err := os.Remove(filepath.Join(s.dir, victim.Filename)); err != nil && !os.IsNotExist(err) {
			zap.L().Warn("failed to remove rotated backup", zap.String("file", victim.Filename), zap.Error(err))
		}
	}
	return index
}

// List returns the backups, newest first.
func (s *BackupService) List() ([]dto.BackupInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, err := s.readIndex()
	if err != nil {
		return nil, err
	}
	sort.Slice(index, func(i, j int) bool {
		return index[i].CreatedAt > index[j].CreatedAt
	})
	return index, nil
}

func (s *BackupService) find(id string) (*dto.BackupInfo, []dto.BackupInfo, error) {
	index, err := s.readIndex()
	if err != nil {
		return nil, nil, err
	}
	for i := range index {
		if index[i].ID == id {
			return &index[i], index, nil
		}
	}
	return nil, index, errors.New("backup not found")
}

// Restore replaces the data file with a snapshot, taking a safety snapshot
// of the current state first.
func (s *BackupService) Restore(id string) error {
	s.mu.Lock()
	info, _, err := s.find(id)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	// Safety copy of the state being replaced.
	if _, err := s.Create("before restore"); err != nil {
		zap.L().Warn("pre-restore snapshot failed", zap.Error(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dir, info.Filename))
	if err != nil {
		return fmt.Errorf("backup file unreadable: %v", err)
	}
	return os.WriteFile(s.dataFile, data, 0o644)
}

// Delete removes one snapshot and its index entry.
func (s *BackupService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found, index, err := s.find(id)
	if err != nil {
		return err
	}
	info := *found

	kept := make([]dto.BackupInfo, 0, len(index))
	for _, b := range index {
		if b.ID != info.ID {
			kept = append(kept, b)
		}
	}
	if err := os.Remove(filepath.Join(s.dir, info.Filename)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return s.writeIndex(kept)
}
