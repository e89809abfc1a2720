package services

import (
	"sync"

	"calix/internal/domain"
	"calix/internal/logging"
	"calix/internal/ports"
)

// ProgressionService tracks which progressions are active and the current level of each
type ProgressionService struct {
	catalog     ports.ProgressionCatalog
	mu          sync.Mutex
	state       domain.ProgressionSnapshot
	subscribers []func(domain.ProgressionChange)
}

// NewProgressionService creates a ProgressionService seeded with initial state
func NewProgressionService(catalog ports.ProgressionCatalog, initial domain.ProgressionSnapshot) *ProgressionService {
	state := initial.Clone()
	if state.ActiveIDs == nil {
		state.ActiveIDs = []string{}
	}
	if state.Levels == nil {
		state.Levels = []domain.ProgressionLevel{}
	}
	return &ProgressionService{
		catalog: catalog,
		state:   state,
	}
}

// Subscribe registers fn to receive every committed change
func (s *ProgressionService) Subscribe(fn func(domain.ProgressionChange)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Snapshot returns a deep copy of the current state
func (s *ProgressionService) Snapshot() domain.ProgressionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// ActiveIDs returns the active progression IDs in activation order
func (s *ProgressionService) ActiveIDs() []string {
	return s.Snapshot().ActiveIDs
}

// Activate starts tracking a progression. Returns false if it was already active.
// A level record at 0 is created only if none exists yet.
func (s *ProgressionService) Activate(progressionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Contains(progressionID) {
		return false
	}

	next := s.state.Clone()
	next.ActiveIDs = append(next.ActiveIDs, progressionID)
	if _, ok := next.Level(progressionID); !ok {
		next.Levels = append(next.Levels, domain.ProgressionLevel{ProgressionID: progressionID})
	}
	s.commit(domain.CommandActivate, next)

	logging.Logger.Info("Progression activated", "id", progressionID)
	return true
}

// Deactivate stops tracking a progression but keeps its level.
// Returns false if it was not active.
func (s *ProgressionService) Deactivate(progressionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Contains(progressionID) {
		return false
	}

	next := s.state.Clone()
	ids := next.ActiveIDs[:0]
	for _, id := range next.ActiveIDs {
		if id != progressionID {
			ids = append(ids, id)
		}
	}
	next.ActiveIDs = ids
	s.commit(domain.CommandDeactivate, next)

	logging.Logger.Info("Progression deactivated", "id", progressionID)
	return true
}

// IsActive reports whether the progression is being tracked
func (s *ProgressionService) IsActive(progressionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Contains(progressionID)
}

// CurrentLevel returns the stored level, or 0 when there is none
func (s *ProgressionService) CurrentLevel(progressionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	level, _ := s.state.Level(progressionID)
	return level
}

// SetLevel stores level as given, whether or not the progression is active
func (s *ProgressionService) SetLevel(progressionID string, level int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setLevelLocked(progressionID, level)
}

// Advance moves a progression one step past the step it reads as.
// A level already at or beyond the last step is returned unchanged and nothing is committed.
func (s *ProgressionService) Advance(progressionID string) (int, error) {
	path, err := s.path(progressionID)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	level, _ := s.state.Level(progressionID)
	last := len(path.Steps) - 1
	if level >= last {
		return level, nil
	}

	next := path.ClampLevel(level) + 1
	s.setLevelLocked(progressionID, next)
	return next, nil
}

// Status resolves the stored level against the catalog path
func (s *ProgressionService) Status(progressionID string) (domain.ProgressionStatus, error) {
	path, err := s.path(progressionID)
	if err != nil {
		return domain.ProgressionStatus{}, err
	}

	s.mu.Lock()
	level, _ := s.state.Level(progressionID)
	active := s.state.Contains(progressionID)
	s.mu.Unlock()

	status, ok := domain.ResolveStatus(path, level, active)
	if !ok {
		return domain.ProgressionStatus{}, domain.ErrProgressionNotFound
	}
	return status, nil
}

// ActiveStatuses returns the status of every active progression, in activation order.
// Progressions missing from the catalog are skipped.
func (s *ProgressionService) ActiveStatuses() []domain.ProgressionStatus {
	var statuses []domain.ProgressionStatus
	for _, id := range s.ActiveIDs() {
		status, err := s.Status(id)
		if err != nil {
			logging.Logger.Debug("Skipping unknown active progression", "id", id)
			continue
		}
		statuses = append(statuses, status)
	}
	return statuses
}

func (s *ProgressionService) path(progressionID string) (domain.ProgressionPath, error) {
	if s.catalog == nil {
		return domain.ProgressionPath{}, domain.ErrProgressionNotFound
	}
	path, ok := s.catalog.ProgressionByID(progressionID)
	if !ok || len(path.Steps) == 0 {
		return domain.ProgressionPath{}, domain.ErrProgressionNotFound
	}
	return path, nil
}

// setLevelLocked must be called with mu held
func (s *ProgressionService) setLevelLocked(progressionID string, level int) {
	next := s.state.Clone()
	found := false
	for i := range next.Levels {
		if next.Levels[i].ProgressionID == progressionID {
			next.Levels[i].CurrentLevel = level
			found = true
			break
		}
	}
	if !found {
		next.Levels = append(next.Levels, domain.ProgressionLevel{ProgressionID: progressionID, CurrentLevel: level})
	}
	s.commit(domain.CommandSetLevel, next)

	logging.Logger.Info("Progression level set", "id", progressionID, "level", level)
}

// commit must be called with mu held
func (s *ProgressionService) commit(cmd domain.ProgressionCommand, next domain.ProgressionSnapshot) {
	s.state = next
	for _, fn := range s.subscribers {
		fn(domain.ProgressionChange{Command: cmd, Snapshot: next.Clone()})
	}
}
