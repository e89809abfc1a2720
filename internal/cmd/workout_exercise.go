package cmd

import (
	"fmt"

	"calix/internal/domain"
	"calix/internal/logging"
)

// ExerciseCmd manages exercises of the workout in progress
type ExerciseCmd struct {
	Add    ExerciseAddCmd    `cmd:"add" help:"Add an exercise"`
	Remove ExerciseRemoveCmd `cmd:"remove" aliases:"rm" help:"Remove an exercise and its sets"`
}

// ExerciseAddCmd adds an exercise
type ExerciseAddCmd struct {
	ExerciseID  string `arg:"" name:"exercise-id" help:"Exercise ID (see 'calix catalog exercises')"`
	Name        string `help:"Display name (defaults to the catalog name)"`
	Progression string `help:"Progression ID (defaults to the progression the exercise belongs to)"`
}

// Run executes the add command
func (s *ExerciseAddCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing exercise add command", "exercise", s.ExerciseID)

	progressionID := s.Progression
	if progressionID == "" {
		if path, ok := cli.Container.Catalog.ProgressionForExercise(s.ExerciseID); ok {
			progressionID = path.ID
		}
	}

	ex, err := cli.Container.WorkoutService.AddExercise(s.ExerciseID, s.Name, progressionID)
	if err != nil {
		return err
	}

	workout, _ := cli.Container.WorkoutService.Current()
	fmt.Fprintf(cli.out(), "Added '%s' as exercise %d (%s)\n", ex.ExerciseName, len(workout.Exercises), ex.ID)
	return nil
}

// ExerciseRemoveCmd removes an exercise
type ExerciseRemoveCmd struct {
	Ref string `arg:"" name:"exercise" help:"Exercise ID or 1-based position"`
}

// Run executes the remove command
func (s *ExerciseRemoveCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing exercise remove command", "ref", s.Ref)

	workout, ok := cli.Container.WorkoutService.Current()
	if !ok {
		return domain.ErrNoActiveWorkout
	}
	ex, err := resolveExercise(workout, s.Ref)
	if err != nil {
		return err
	}

	if err := cli.Container.WorkoutService.RemoveExercise(ex.ID); err != nil {
		return err
	}

	fmt.Fprintf(cli.out(), "Removed '%s'\n", ex.ExerciseName)
	return nil
}
