package domain

import "time"

// DefaultWorkoutName is used when a workout is started without a template
const DefaultWorkoutName = "Custom Workout"

// UnknownExerciseName is shown when neither the caller nor the catalog names an exercise
const UnknownExerciseName = "Unknown Exercise"

// WorkoutCommand identifies the command that produced a workout change
type WorkoutCommand string

const (
	CommandAddExercise    WorkoutCommand = "add-exercise"
	CommandAddSet         WorkoutCommand = "add-set"
	CommandCancel         WorkoutCommand = "cancel"
	CommandComplete       WorkoutCommand = "complete"
	CommandRemoveExercise WorkoutCommand = "remove-exercise"
	CommandRemoveSet      WorkoutCommand = "remove-set"
	CommandRename         WorkoutCommand = "rename"
	CommandStart          WorkoutCommand = "start"
	CommandUpdateSet      WorkoutCommand = "update-set"
)

// SetLog is one recorded attempt of an exercise
type SetLog struct {
	ID       string   `json:"id"`
	Reps     *int     `json:"reps,omitempty"`
	Duration *int     `json:"duration,omitempty"` // seconds
	Weight   *float64 `json:"weight,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

// SetFields holds the values of a new set. Nil fields stay unset.
type SetFields struct {
	Duration *int
	Notes    string
	Reps     *int
	Weight   *float64
}

// SetUpdate is a partial set update. Nil fields are left unchanged.
type SetUpdate struct {
	Duration *int
	Notes    *string
	Reps     *int
	Weight   *float64
}

// ExerciseLog is one exercise performed within a workout
type ExerciseLog struct {
	ID            string   `json:"id"`
	ExerciseID    string   `json:"exerciseId"`
	ExerciseName  string   `json:"exerciseName"`
	ProgressionID string   `json:"progressionId,omitempty"`
	Sets          []SetLog `json:"sets"`
	Notes         string   `json:"notes,omitempty"`
}

// WorkoutLog is a single training session, in progress or completed
type WorkoutLog struct {
	ID         string        `json:"id"`
	Date       time.Time     `json:"date"`
	Name       string        `json:"name,omitempty"`
	Exercises  []ExerciseLog `json:"exercises"`
	Duration   *int          `json:"duration,omitempty"` // minutes
	Notes      string        `json:"notes,omitempty"`
	IsComplete bool          `json:"isComplete"`
}

// WorkoutSnapshot is the full state owned by the workout manager
type WorkoutSnapshot struct {
	Current *WorkoutLog
	History []WorkoutLog // most recent first
}

// WorkoutChange is emitted after every committed workout command
type WorkoutChange struct {
	Command        WorkoutCommand
	HistoryChanged bool
	Snapshot       WorkoutSnapshot
}

// Validate rejects negative measurements
func (f SetFields) Validate() error {
	return validateMeasurements(f.Reps, f.Duration, f.Weight)
}

// Validate rejects negative measurements
func (u SetUpdate) Validate() error {
	return validateMeasurements(u.Reps, u.Duration, u.Weight)
}

func validateMeasurements(reps, duration *int, weight *float64) error {
	if reps != nil && *reps < 0 {
		return ErrInvalidSet
	}
	if duration != nil && *duration < 0 {
		return ErrInvalidSet
	}
	if weight != nil && *weight < 0 {
		return ErrInvalidSet
	}
	return nil
}

// NewSetLog builds a set from its fields
func NewSetLog(id string, f SetFields) SetLog {
	return SetLog{
		ID:       id,
		Reps:     clonePtr(f.Reps),
		Duration: clonePtr(f.Duration),
		Weight:   clonePtr(f.Weight),
		Notes:    f.Notes,
	}
}

// Apply returns a copy of the set with the update merged in
func (s SetLog) Apply(u SetUpdate) SetLog {
	out := s.Clone()
	if u.Reps != nil {
		out.Reps = clonePtr(u.Reps)
	}
	if u.Duration != nil {
		out.Duration = clonePtr(u.Duration)
	}
	if u.Weight != nil {
		out.Weight = clonePtr(u.Weight)
	}
	if u.Notes != nil {
		out.Notes = *u.Notes
	}
	return out
}

// Clone returns a deep copy
func (s SetLog) Clone() SetLog {
	s.Reps = clonePtr(s.Reps)
	s.Duration = clonePtr(s.Duration)
	s.Weight = clonePtr(s.Weight)
	return s
}

// Clone returns a deep copy
func (e ExerciseLog) Clone() ExerciseLog {
	sets := make([]SetLog, len(e.Sets))
	for i, set := range e.Sets {
		sets[i] = set.Clone()
	}
	e.Sets = sets
	return e
}

// FindSet returns the index of the set with the given ID, or -1
func (e ExerciseLog) FindSet(setID string) int {
	for i, set := range e.Sets {
		if set.ID == setID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy
func (w WorkoutLog) Clone() WorkoutLog {
	exercises := make([]ExerciseLog, len(w.Exercises))
	for i, ex := range w.Exercises {
		exercises[i] = ex.Clone()
	}
	w.Exercises = exercises
	w.Duration = clonePtr(w.Duration)
	return w
}

// FindExercise returns the index of the exercise log with the given ID, or -1
func (w WorkoutLog) FindExercise(exerciseLogID string) int {
	for i, ex := range w.Exercises {
		if ex.ID == exerciseLogID {
			return i
		}
	}
	return -1
}

// SetCount returns the number of sets logged across all exercises
func (w WorkoutLog) SetCount() int {
	n := 0
	for _, ex := range w.Exercises {
		n += len(ex.Sets)
	}
	return n
}

// Clone returns a deep copy
func (s WorkoutSnapshot) Clone() WorkoutSnapshot {
	var out WorkoutSnapshot
	if s.Current != nil {
		current := s.Current.Clone()
		out.Current = &current
	}
	if s.History != nil {
		out.History = make([]WorkoutLog, len(s.History))
		for i, w := range s.History {
			out.History[i] = w.Clone()
		}
	}
	return out
}

// ElapsedMinutes returns whole minutes between start and end, truncated toward zero
func ElapsedMinutes(start, end time.Time) int {
	return int(end.Sub(start) / time.Minute)
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
