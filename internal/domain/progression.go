package domain

// Difficulty is the tier of a progression step
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
	DifficultyElite        Difficulty = "Elite"
)

// ProgressionCommand identifies the command that produced a progression change
type ProgressionCommand string

const (
	CommandActivate   ProgressionCommand = "activate"
	CommandDeactivate ProgressionCommand = "deactivate"
	CommandSetLevel   ProgressionCommand = "set-level"
)

// ProgressionStep is one rung of a progression (catalog data)
type ProgressionStep struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty"`
	Tips        []string   `json:"tips,omitempty"`
}

// ProgressionPath is an ordered ladder of steps from easiest to hardest
type ProgressionPath struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Description string            `json:"description"`
	Steps       []ProgressionStep `json:"steps"`
}

// TemplateExercise is one planned exercise of a workout template
type TemplateExercise struct {
	ID             string `json:"id"`
	ExerciseID     string `json:"exerciseId"`
	Name           string `json:"name"`
	ProgressionID  string `json:"progressionId,omitempty"`
	TargetSets     int    `json:"targetSets"`
	TargetReps     *int   `json:"targetReps,omitempty"`
	TargetDuration *int   `json:"targetDuration,omitempty"` // seconds
}

// WorkoutTemplate is a predefined exercise list used to seed a workout
type WorkoutTemplate struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Exercises   []TemplateExercise `json:"exercises"`
}

// ProgressionLevel records the current step index of a progression
type ProgressionLevel struct {
	ProgressionID string `json:"progressionId"`
	CurrentLevel  int    `json:"currentLevel"`
}

// ProgressionSnapshot is the full state owned by the progression tracker
type ProgressionSnapshot struct {
	ActiveIDs []string
	Levels    []ProgressionLevel
}

// ProgressionChange is emitted after every committed progression command
type ProgressionChange struct {
	Command  ProgressionCommand
	Snapshot ProgressionSnapshot
}

// ProgressionStatus is a progression resolved against its stored level.
// Level is the stored value; Current is clamped into the step list.
type ProgressionStatus struct {
	Active   bool
	Current  ProgressionStep
	Index    int
	Level    int
	Mastered bool
	Next     *ProgressionStep
	Path     ProgressionPath
}

// StepIndex returns the position of the exercise within the path, or -1
func (p ProgressionPath) StepIndex(exerciseID string) int {
	for i, step := range p.Steps {
		if step.ID == exerciseID {
			return i
		}
	}
	return -1
}

// ClampLevel bounds a level to the path's step indices
func (p ProgressionPath) ClampLevel(level int) int {
	if level < 0 || len(p.Steps) == 0 {
		return 0
	}
	if level >= len(p.Steps) {
		return len(p.Steps) - 1
	}
	return level
}

// ResolveStatus maps a stored level onto the path. Levels past the end resolve to
// the last step and are reported as mastered; negative levels resolve to the first.
func ResolveStatus(path ProgressionPath, level int, active bool) (ProgressionStatus, bool) {
	if len(path.Steps) == 0 {
		return ProgressionStatus{}, false
	}

	index := path.ClampLevel(level)
	status := ProgressionStatus{
		Active:   active,
		Current:  path.Steps[index],
		Index:    index,
		Level:    level,
		Mastered: level >= len(path.Steps),
		Path:     path,
	}
	if index+1 < len(path.Steps) {
		next := path.Steps[index+1]
		status.Next = &next
	}
	return status, true
}

// Contains reports whether the progression is active
func (s ProgressionSnapshot) Contains(progressionID string) bool {
	for _, id := range s.ActiveIDs {
		if id == progressionID {
			return true
		}
	}
	return false
}

// Level returns the stored level for the progression
func (s ProgressionSnapshot) Level(progressionID string) (int, bool) {
	for _, l := range s.Levels {
		if l.ProgressionID == progressionID {
			return l.CurrentLevel, true
		}
	}
	return 0, false
}

// Clone returns a deep copy
func (s ProgressionSnapshot) Clone() ProgressionSnapshot {
	var out ProgressionSnapshot
	if s.ActiveIDs != nil {
		out.ActiveIDs = append(make([]string, 0, len(s.ActiveIDs)), s.ActiveIDs...)
	}
	if s.Levels != nil {
		out.Levels = append(make([]ProgressionLevel, 0, len(s.Levels)), s.Levels...)
	}
	return out
}
