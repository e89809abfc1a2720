package cmd

import (
	"fmt"

	"calix/internal/domain"
	"calix/internal/logging"
)

// SetCmd manages sets of the workout in progress
type SetCmd struct {
	Add    SetAddCmd    `cmd:"add" help:"Log a set"`
	Remove SetRemoveCmd `cmd:"remove" aliases:"rm" help:"Remove a set"`
	Update SetUpdateCmd `cmd:"update" help:"Change fields of a logged set"`
}

// SetFlags are the measurements shared by add and update. Unset flags stay nil.
type SetFlags struct {
	Duration *int     `help:"Hold duration in seconds"`
	Notes    *string  `help:"Notes for this set"`
	Reps     *int     `help:"Repetitions" short:"r"`
	Weight   *float64 `help:"Added weight in kg" short:"w"`
}

// SetAddCmd logs a set
type SetAddCmd struct {
	Exercise string `arg:"" help:"Exercise ID or 1-based position"`
	SetFlags `embed:""`
}

// Run executes the add command
func (s *SetAddCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing set add command", "exercise", s.Exercise)

	ex, err := currentExercise(cli, s.Exercise)
	if err != nil {
		return err
	}

	fields := domain.SetFields{Duration: s.Duration, Reps: s.Reps, Weight: s.Weight}
	if s.Notes != nil {
		fields.Notes = *s.Notes
	}
	set, err := cli.Container.WorkoutService.AddSet(ex.ID, fields)
	if err != nil {
		return err
	}

	fmt.Fprintf(cli.out(), "%s set %d: %s\n", ex.ExerciseName, len(ex.Sets)+1, formatSet(set))
	return nil
}

// SetUpdateCmd changes fields of a set
type SetUpdateCmd struct {
	Exercise string `arg:"" help:"Exercise ID or 1-based position"`
	Set      string `arg:"" help:"Set ID or 1-based position"`
	SetFlags `embed:""`
}

// Run executes the update command
func (s *SetUpdateCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing set update command", "exercise", s.Exercise, "set", s.Set)

	ex, err := currentExercise(cli, s.Exercise)
	if err != nil {
		return err
	}
	set, err := resolveSet(ex, s.Set)
	if err != nil {
		return err
	}

	updated, err := cli.Container.WorkoutService.UpdateSet(ex.ID, set.ID, domain.SetUpdate{
		Duration: s.Duration,
		Notes:    s.Notes,
		Reps:     s.Reps,
		Weight:   s.Weight,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cli.out(), "%s set updated: %s\n", ex.ExerciseName, formatSet(updated))
	return nil
}

// SetRemoveCmd removes a set
type SetRemoveCmd struct {
	Exercise string `arg:"" help:"Exercise ID or 1-based position"`
	Set      string `arg:"" help:"Set ID or 1-based position"`
}

// Run executes the remove command
func (s *SetRemoveCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing set remove command", "exercise", s.Exercise, "set", s.Set)

	ex, err := currentExercise(cli, s.Exercise)
	if err != nil {
		return err
	}
	set, err := resolveSet(ex, s.Set)
	if err != nil {
		return err
	}

	if err := cli.Container.WorkoutService.RemoveSet(ex.ID, set.ID); err != nil {
		return err
	}

	fmt.Fprintf(cli.out(), "Removed %s set (%s)\n", ex.ExerciseName, formatSet(set))
	return nil
}

func currentExercise(cli *CLI, ref string) (domain.ExerciseLog, error) {
	workout, ok := cli.Container.WorkoutService.Current()
	if !ok {
		return domain.ExerciseLog{}, domain.ErrNoActiveWorkout
	}
	return resolveExercise(workout, ref)
}
