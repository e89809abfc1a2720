package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"calix/internal/domain"
	"calix/internal/logging"
	"calix/internal/ports"
)

// WorkoutService owns the in-progress workout and the completed history.
// Every command either commits a new snapshot or leaves state untouched.
type WorkoutService struct {
	catalog     ports.ExerciseCatalog
	clock       func() time.Time
	mu          sync.Mutex
	newID       func() string
	state       domain.WorkoutSnapshot
	subscribers []func(domain.WorkoutChange)
}

// WorkoutOption configures a WorkoutService
type WorkoutOption func(*WorkoutService)

// WithClock overrides the time source
func WithClock(clock func() time.Time) WorkoutOption {
	return func(s *WorkoutService) {
		s.clock = clock
	}
}

// WithIDGenerator overrides how fresh workout, exercise and set IDs are made
func WithIDGenerator(newID func() string) WorkoutOption {
	return func(s *WorkoutService) {
		s.newID = newID
	}
}

// NewWorkoutService creates a WorkoutService seeded with initial state.
// catalog may be nil, in which case exercise names are never looked up.
func NewWorkoutService(catalog ports.ExerciseCatalog, initial domain.WorkoutSnapshot, opts ...WorkoutOption) *WorkoutService {
	s := &WorkoutService{
		catalog: catalog,
		clock:   time.Now,
		newID:   uuid.NewString,
		state:   initial.Clone(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.state.History == nil {
		s.state.History = []domain.WorkoutLog{}
	}
	return s
}

// Subscribe registers fn to receive every committed change.
// fn runs on the committing goroutine, in command order.
func (s *WorkoutService) Subscribe(fn func(domain.WorkoutChange)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Snapshot returns a deep copy of the current state
func (s *WorkoutService) Snapshot() domain.WorkoutSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Current returns a copy of the in-progress workout, if any
func (s *WorkoutService) Current() (domain.WorkoutLog, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Current == nil {
		return domain.WorkoutLog{}, false
	}
	return s.state.Current.Clone(), true
}

// History returns a copy of the completed workouts, most recent first
func (s *WorkoutService) History() []domain.WorkoutLog {
	return s.Snapshot().History
}

// Start begins a new workout, seeding exercises from template when given
func (s *WorkoutService) Start(template *domain.WorkoutTemplate) (domain.WorkoutLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Current != nil {
		return domain.WorkoutLog{}, domain.ErrWorkoutInProgress
	}

	workout := domain.WorkoutLog{
		ID:        s.newID(),
		Date:      s.clock().UTC(),
		Name:      domain.DefaultWorkoutName,
		Exercises: []domain.ExerciseLog{},
	}
	if template != nil {
		if template.Name != "" {
			workout.Name = template.Name
		}
		for _, te := range template.Exercises {
			workout.Exercises = append(workout.Exercises, domain.ExerciseLog{
				ID:            s.newID(),
				ExerciseID:    te.ExerciseID,
				ExerciseName:  te.Name,
				ProgressionID: te.ProgressionID,
				Sets:          []domain.SetLog{},
			})
		}
	}

	next := s.state.Clone()
	next.Current = &workout
	s.commit(domain.CommandStart, next, false)

	logging.Logger.Info("Workout started", "id", workout.ID, "name", workout.Name, "exercises", len(workout.Exercises))
	return workout.Clone(), nil
}

// AddExercise appends an exercise to the current workout.
// The name falls back to the catalog name, then to a placeholder.
func (s *WorkoutService) AddExercise(exerciseID, displayName, progressionID string) (domain.ExerciseLog, error) {
	var added domain.ExerciseLog
	err := s.update(domain.CommandAddExercise, func(w *domain.WorkoutLog) error {
		added = domain.ExerciseLog{
			ID:            s.newID(),
			ExerciseID:    exerciseID,
			ExerciseName:  s.exerciseName(exerciseID, displayName),
			ProgressionID: progressionID,
			Sets:          []domain.SetLog{},
		}
		w.Exercises = append(w.Exercises, added)
		return nil
	})
	if err != nil {
		return domain.ExerciseLog{}, err
	}
	return added.Clone(), nil
}

// RemoveExercise drops an exercise and its sets from the current workout
func (s *WorkoutService) RemoveExercise(exerciseLogID string) error {
	return s.update(domain.CommandRemoveExercise, func(w *domain.WorkoutLog) error {
		i := w.FindExercise(exerciseLogID)
		if i < 0 {
			return domain.ErrExerciseNotFound
		}
		w.Exercises = append(w.Exercises[:i], w.Exercises[i+1:]...)
		return nil
	})
}

// AddSet appends a set to an exercise of the current workout
func (s *WorkoutService) AddSet(exerciseLogID string, fields domain.SetFields) (domain.SetLog, error) {
	var added domain.SetLog
	err := s.update(domain.CommandAddSet, func(w *domain.WorkoutLog) error {
		i := w.FindExercise(exerciseLogID)
		if i < 0 {
			return domain.ErrExerciseNotFound
		}
		if err := fields.Validate(); err != nil {
			return err
		}
		added = domain.NewSetLog(s.newID(), fields)
		w.Exercises[i].Sets = append(w.Exercises[i].Sets, added)
		return nil
	})
	if err != nil {
		return domain.SetLog{}, err
	}
	return added.Clone(), nil
}

// UpdateSet merges the supplied fields into an existing set
func (s *WorkoutService) UpdateSet(exerciseLogID, setID string, update domain.SetUpdate) (domain.SetLog, error) {
	var updated domain.SetLog
	err := s.update(domain.CommandUpdateSet, func(w *domain.WorkoutLog) error {
		i := w.FindExercise(exerciseLogID)
		if i < 0 {
			return domain.ErrExerciseNotFound
		}
		j := w.Exercises[i].FindSet(setID)
		if j < 0 {
			return domain.ErrSetNotFound
		}
		if err := update.Validate(); err != nil {
			return err
		}
		updated = w.Exercises[i].Sets[j].Apply(update)
		w.Exercises[i].Sets[j] = updated
		return nil
	})
	if err != nil {
		return domain.SetLog{}, err
	}
	return updated.Clone(), nil
}

// RemoveSet deletes a set from an exercise of the current workout
func (s *WorkoutService) RemoveSet(exerciseLogID, setID string) error {
	return s.update(domain.CommandRemoveSet, func(w *domain.WorkoutLog) error {
		i := w.FindExercise(exerciseLogID)
		if i < 0 {
			return domain.ErrExerciseNotFound
		}
		j := w.Exercises[i].FindSet(setID)
		if j < 0 {
			return domain.ErrSetNotFound
		}
		sets := w.Exercises[i].Sets
		w.Exercises[i].Sets = append(sets[:j], sets[j+1:]...)
		return nil
	})
}

// Rename overwrites the name of the current workout
func (s *WorkoutService) Rename(name string) error {
	return s.update(domain.CommandRename, func(w *domain.WorkoutLog) error {
		w.Name = name
		return nil
	})
}

// Complete stamps the duration, marks the workout complete and moves it to the front of history.
// Empty notes keep whatever notes the workout already had.
func (s *WorkoutService) Complete(notes string) (domain.WorkoutLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Current == nil {
		return domain.WorkoutLog{}, domain.ErrNoActiveWorkout
	}

	next := s.state.Clone()
	completed := *next.Current
	duration := domain.ElapsedMinutes(completed.Date, s.clock())
	completed.Duration = &duration
	completed.IsComplete = true
	if notes != "" {
		completed.Notes = notes
	}

	next.History = append([]domain.WorkoutLog{completed}, next.History...)
	next.Current = nil
	s.commit(domain.CommandComplete, next, true)

	logging.Logger.Info("Workout completed", "id", completed.ID, "duration_minutes", duration, "sets", completed.SetCount())
	return completed.Clone(), nil
}

// Cancel discards the current workout without touching history
func (s *WorkoutService) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Current == nil {
		return domain.ErrNoActiveWorkout
	}

	id := s.state.Current.ID
	next := s.state.Clone()
	next.Current = nil
	s.commit(domain.CommandCancel, next, false)

	logging.Logger.Info("Workout cancelled", "id", id)
	return nil
}

func (s *WorkoutService) exerciseName(exerciseID, displayName string) string {
	if displayName != "" {
		return displayName
	}
	if s.catalog != nil {
		if step, ok := s.catalog.ExerciseByID(exerciseID); ok && step.Name != "" {
			return step.Name
		}
	}
	return domain.UnknownExerciseName
}

// update runs fn against a copy of the current workout and commits it when fn succeeds
func (s *WorkoutService) update(cmd domain.WorkoutCommand, fn func(w *domain.WorkoutLog) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Current == nil {
		logging.Logger.Debug("Ignoring workout command without active workout", "command", cmd)
		return domain.ErrNoActiveWorkout
	}

	next := s.state.Clone()
	if err := fn(next.Current); err != nil {
		logging.Logger.Debug("Workout command rejected", "command", cmd, "error", err)
		return err
	}
	s.commit(cmd, next, false)
	return nil
}

// commit must be called with mu held
func (s *WorkoutService) commit(cmd domain.WorkoutCommand, next domain.WorkoutSnapshot, historyChanged bool) {
	s.state = next
	for _, fn := range s.subscribers {
		fn(domain.WorkoutChange{
			Command:        cmd,
			HistoryChanged: historyChanged,
			Snapshot:       next.Clone(),
		})
	}
}
