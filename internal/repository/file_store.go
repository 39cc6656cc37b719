package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/abishekkprasad/health-journal/internal/models"
	"github.com/google/uuid"
)

// MemoryTarget disables the snapshot file entirely; state lives only in
// process memory. Used by the demo variant and the tests.
const MemoryTarget = ":memory:"

// FileStore is the embedded storage backend used when no database target is
// configured. It keeps everything in memory behind a mutex and snapshots the
// full state to a JSON file after every write, so the journal survives
// restarts without a database server.
type FileStore struct {
	mu    sync.Mutex
	path  string
	state fileState
}

type fileState struct {
	Profile *models.UserProfile        `json:"profile,omitempty"`
	Logs    map[string]models.DailyLog `json:"logs"`
	History []models.BodyFatEntry      `json:"body_fat_history"`
}

// OpenFileStore loads the snapshot at path if one exists. A missing file is
// an empty journal, not an error.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:  path,
		state: fileState{Logs: map[string]models.DailyLog{}},
	}
	if path == "" || path == MemoryTarget {
		s.path = ""
		return s, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read store file: %w", err)
	}
	if err := json.Unmarshal(data, &s.state); err != nil {
		return nil, fmt.Errorf("unable to parse store file %s: %w", path, err)
	}
	if s.state.Logs == nil {
		s.state.Logs = map[string]models.DailyLog{}
	}
	return s, nil
}

// persist is called with the mutex held.
func (s *FileStore) persist() error {
	if s.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) SetProfile(_ context.Context, profile *models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if s.state.Profile != nil {
		profile.CreatedAt = s.state.Profile.CreatedAt
	} else {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	stored := *profile
	s.state.Profile = &stored
	return s.persist()
}

func (s *FileStore) GetProfile(_ context.Context) (*models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Profile == nil {
		return nil, ErrNoProfile
	}
	profile := *s.state.Profile
	return &profile, nil
}

func (s *FileStore) UpdateBodyFat(_ context.Context, bodyFatPercent float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Profile == nil {
		return ErrNoProfile
	}
	s.state.Profile.BodyFatPercent = bodyFatPercent
	s.state.Profile.UpdatedAt = time.Now().UTC()
	return s.persist()
}

func (s *FileStore) UpsertLog(_ context.Context, log *models.DailyLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	key := log.DateKey()
	if existing, ok := s.state.Logs[key]; ok {
		log.CreatedAt = existing.CreatedAt
	} else {
		log.CreatedAt = now
	}
	log.UpdatedAt = now

	s.state.Logs[key] = *log
	return s.persist()
}

func (s *FileStore) ListLogs(_ context.Context) ([]models.DailyLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logs := make([]models.DailyLog, 0, len(s.state.Logs))
	for _, log := range s.state.Logs {
		logs = append(logs, log)
	}
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].LogDate.After(logs[j].LogDate)
	})
	return logs, nil
}

func (s *FileStore) GetLog(_ context.Context, date time.Time) (*models.DailyLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log, ok := s.state.Logs[date.Format("2006-01-02")]
	if !ok {
		return nil, ErrLogNotFound
	}
	return &log, nil
}

func (s *FileStore) AppendBodyFat(_ context.Context, bodyFatPercent float64) (*models.BodyFatEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := models.BodyFatEntry{
		ID:             uuid.New(),
		BodyFatPercent: bodyFatPercent,
		RecordedAt:     time.Now().UTC(),
	}
	s.state.History = append(s.state.History, entry)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *FileStore) ListRecentBodyFat(_ context.Context, limit int) ([]models.BodyFatEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]models.BodyFatEntry, 0, limit)
	for i := len(s.state.History) - 1; i >= 0 && len(entries) < limit; i-- {
		entries = append(entries, s.state.History[i])
	}
	return entries, nil
}
