package cmd

import (
	"errors"
	"fmt"
	"time"

	"calix/internal/domain"
	"calix/internal/logging"
	"calix/internal/theme"
)

// WorkoutCmd manages the workout in progress
type WorkoutCmd struct {
	Cancel   WorkoutCancelCmd   `cmd:"cancel" help:"Discard the workout in progress"`
	Complete WorkoutCompleteCmd `cmd:"complete" help:"Finish the workout and save it to history"`
	Exercise ExerciseCmd        `cmd:"exercise" help:"Add or remove exercises"`
	Rename   WorkoutRenameCmd   `cmd:"rename" help:"Rename the workout in progress"`
	Set      SetCmd             `cmd:"set" help:"Log, update or remove sets"`
	Show     WorkoutShowCmd     `cmd:"show" help:"Show the workout in progress" default:"1"`
	Start    WorkoutStartCmd    `cmd:"start" help:"Start a new workout"`
}

// WorkoutStartCmd starts a workout
type WorkoutStartCmd struct {
	Custom   bool   `help:"Start an empty workout even if a default template is configured"`
	Template string `help:"Template ID to seed exercises from (see 'calix catalog templates')" short:"t"`
}

// Run executes the start command
func (s *WorkoutStartCmd) Run(cli *CLI) error {
	templateID := s.Template
	if templateID == "" && !s.Custom {
		templateID = cli.defaultTemplate()
	}
	logging.Logger.Debug("Executing workout start command", "template", templateID)

	var template *domain.WorkoutTemplate
	if templateID != "" {
		t, ok := cli.Container.Catalog.Template(templateID)
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, templateID)
		}
		template = &t
	}

	workout, err := cli.Container.WorkoutService.Start(template)
	if errors.Is(err, domain.ErrWorkoutInProgress) {
		return fmt.Errorf("%w: complete or cancel it first", err)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cli.out(), theme.SuccessStyle.Render(fmt.Sprintf("Started '%s'", workout.Name)))
	if len(workout.Exercises) > 0 {
		fmt.Fprintln(cli.out())
		printWorkout(cli.out(), workout)
	}
	return nil
}

// WorkoutShowCmd shows the workout in progress
type WorkoutShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the show command
func (s *WorkoutShowCmd) Run(cli *CLI) error {
	workout, ok := cli.Container.WorkoutService.Current()
	if !ok {
		if s.Format == "json" {
			return printJSON(cli.out(), nil)
		}
		fmt.Fprintln(cli.out(), "No workout in progress. Start one with 'calix workout start'.")
		return nil
	}

	if s.Format == "json" {
		return printJSON(cli.out(), workout)
	}

	fmt.Fprintln(cli.out(), theme.TitleStyle.Render(workout.Name))
	printWorkout(cli.out(), workout)
	elapsed := domain.ElapsedMinutes(workout.Date, time.Now())
	fmt.Fprintln(cli.out())
	fmt.Fprintln(cli.out(), theme.MutedStyle.Render(fmt.Sprintf("%s elapsed, %d sets logged", formatMinutes(&elapsed), workout.SetCount())))
	return nil
}

// WorkoutRenameCmd renames the workout in progress
type WorkoutRenameCmd struct {
	Name string `arg:"" help:"New workout name"`
}

// Run executes the rename command
func (s *WorkoutRenameCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing workout rename command", "name", s.Name)

	if err := cli.Container.WorkoutService.Rename(s.Name); err != nil {
		return err
	}

	fmt.Fprintf(cli.out(), "Workout renamed to '%s'\n", s.Name)
	return nil
}

// WorkoutCompleteCmd finishes the workout in progress
type WorkoutCompleteCmd struct {
	Notes string `help:"Notes to store with the workout" short:"n"`
}

// Run executes the complete command
func (s *WorkoutCompleteCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing workout complete command")

	workout, err := cli.Container.WorkoutService.Complete(s.Notes)
	if err != nil {
		return err
	}

	fmt.Fprintln(cli.out(), theme.SuccessStyle.Render(fmt.Sprintf("Completed '%s'", workout.Name)))
	fmt.Fprintf(cli.out(), "Duration: %s, exercises: %d, sets: %d\n",
		formatMinutes(workout.Duration), len(workout.Exercises), workout.SetCount())
	return nil
}

// WorkoutCancelCmd discards the workout in progress
type WorkoutCancelCmd struct{}

// Run executes the cancel command
func (s *WorkoutCancelCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing workout cancel command")

	if err := cli.Container.WorkoutService.Cancel(); err != nil {
		return err
	}

	fmt.Fprintln(cli.out(), "Workout cancelled")
	return nil
}
