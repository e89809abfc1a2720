package cmd

import (
	"fmt"

	"calix/internal/domain"
	"calix/internal/logging"
	"calix/internal/theme"
)

// ProgressionsCmd tracks skill progressions
type ProgressionsCmd struct {
	Activate   ProgressionsActivateCmd   `cmd:"activate" help:"Start tracking a progression"`
	Advance    ProgressionsAdvanceCmd    `cmd:"advance" help:"Move a progression to its next step"`
	Deactivate ProgressionsDeactivateCmd `cmd:"deactivate" help:"Stop tracking a progression (its level is kept)"`
	Level      ProgressionsLevelCmd      `cmd:"level" help:"Set the current level of a progression"`
	List       ProgressionsListCmd       `cmd:"list" help:"List tracked progressions" default:"1"`
	View       ProgressionsViewCmd       `cmd:"view" help:"Show every step of a progression"`
}

type progressionRow struct {
	Active        bool   `json:"active"`
	Current       string `json:"current"`
	CurrentName   string `json:"currentName"`
	Level         int    `json:"level"`
	Mastered      bool   `json:"mastered"`
	Name          string `json:"name"`
	Next          string `json:"next,omitempty"`
	ProgressionID string `json:"progressionId"`
	Steps         int    `json:"steps"`
}

func newProgressionRow(status domain.ProgressionStatus) progressionRow {
	row := progressionRow{
		Active:        status.Active,
		Current:       status.Current.ID,
		CurrentName:   status.Current.Name,
		Level:         status.Level,
		Mastered:      status.Mastered,
		Name:          status.Path.Name,
		ProgressionID: status.Path.ID,
		Steps:         len(status.Path.Steps),
	}
	if status.Next != nil {
		row.Next = status.Next.Name
	}
	return row
}

// ProgressionsListCmd lists progressions
type ProgressionsListCmd struct {
	All    bool   `help:"Include progressions that are not active" short:"a"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (s *ProgressionsListCmd) Run(cli *CLI) error {
	svc := cli.Container.ProgressionService

	var statuses []domain.ProgressionStatus
	if s.All {
		for _, path := range cli.Container.Catalog.Progressions() {
			status, err := svc.Status(path.ID)
			if err != nil {
				continue
			}
			statuses = append(statuses, status)
		}
	} else {
		statuses = svc.ActiveStatuses()
	}

	rows := make([]progressionRow, 0, len(statuses))
	for _, status := range statuses {
		rows = append(rows, newProgressionRow(status))
	}

	if s.Format == "json" {
		return printJSON(cli.out(), rows)
	}

	if len(rows) == 0 {
		fmt.Fprintln(cli.out(), "No active progressions. Activate one with 'calix progressions activate ID'.")
		return nil
	}

	w := newTable(cli.out())
	fmt.Fprintln(w, "ID\tNAME\tSTEP\tCURRENT\tNEXT\tACTIVE")
	for _, row := range rows {
		step := fmt.Sprintf("%d/%d", clampDisplay(row.Level, row.Steps), row.Steps)
		next := valueOr(row.Next, "-")
		if row.Mastered {
			next = "mastered"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%t\n", row.ProgressionID, row.Name, step, row.CurrentName, next, row.Active)
	}
	w.Flush()
	return nil
}

// clampDisplay converts a stored level to a 1-based step number within steps
func clampDisplay(level, steps int) int {
	switch {
	case level < 0:
		return 1
	case level >= steps:
		return steps
	default:
		return level + 1
	}
}

// ProgressionsActivateCmd activates a progression
type ProgressionsActivateCmd struct {
	ID string `arg:"" name:"progression-id" help:"Progression ID (see 'calix progressions list --all')"`
}

// Run executes the activate command
func (s *ProgressionsActivateCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing progressions activate command", "id", s.ID)

	path, ok := cli.Container.Catalog.ProgressionByID(s.ID)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrProgressionNotFound, s.ID)
	}

	if !cli.Container.ProgressionService.Activate(s.ID) {
		fmt.Fprintf(cli.out(), "'%s' is already active\n", path.Name)
		return nil
	}
	fmt.Fprintf(cli.out(), "Now tracking '%s'\n", path.Name)
	return nil
}

// ProgressionsDeactivateCmd deactivates a progression
type ProgressionsDeactivateCmd struct {
	ID string `arg:"" name:"progression-id" help:"Progression ID"`
}

// Run executes the deactivate command
func (s *ProgressionsDeactivateCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing progressions deactivate command", "id", s.ID)

	if !cli.Container.ProgressionService.Deactivate(s.ID) {
		fmt.Fprintf(cli.out(), "'%s' is not active\n", s.ID)
		return nil
	}
	fmt.Fprintf(cli.out(), "Stopped tracking '%s'\n", s.ID)
	return nil
}

// ProgressionsLevelCmd sets the level of a progression
type ProgressionsLevelCmd struct {
	ID    string `arg:"" name:"progression-id" help:"Progression ID"`
	Level int    `arg:"" help:"Zero-based step index"`
}

// Run executes the level command
func (s *ProgressionsLevelCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing progressions level command", "id", s.ID, "level", s.Level)

	cli.Container.ProgressionService.SetLevel(s.ID, s.Level)

	status, err := cli.Container.ProgressionService.Status(s.ID)
	if err != nil {
		fmt.Fprintf(cli.out(), "'%s' level set to %d\n", s.ID, s.Level)
		return nil
	}
	fmt.Fprintf(cli.out(), "'%s' level set to %d: %s\n", status.Path.Name, s.Level, status.Current.Name)
	return nil
}

// ProgressionsAdvanceCmd moves a progression up one step
type ProgressionsAdvanceCmd struct {
	ID string `arg:"" name:"progression-id" help:"Progression ID"`
}

// Run executes the advance command
func (s *ProgressionsAdvanceCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing progressions advance command", "id", s.ID)

	if _, err := cli.Container.ProgressionService.Advance(s.ID); err != nil {
		return fmt.Errorf("%w: %s", err, s.ID)
	}

	status, err := cli.Container.ProgressionService.Status(s.ID)
	if err != nil {
		return err
	}
	if status.Next == nil {
		fmt.Fprintln(cli.out(), theme.SuccessStyle.Render(fmt.Sprintf("%s: reached the final step, %s", status.Path.Name, status.Current.Name)))
		return nil
	}
	fmt.Fprintf(cli.out(), "%s: now at %s (next: %s)\n", status.Path.Name, status.Current.Name, status.Next.Name)
	return nil
}

// ProgressionsViewCmd shows a progression and its steps
type ProgressionsViewCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	ID     string `arg:"" name:"progression-id" help:"Progression ID"`
}

// Run executes the view command
func (s *ProgressionsViewCmd) Run(cli *CLI) error {
	status, err := cli.Container.ProgressionService.Status(s.ID)
	if err != nil {
		return fmt.Errorf("%w: %s", err, s.ID)
	}

	if s.Format == "json" {
		return printJSON(cli.out(), struct {
			Path   domain.ProgressionPath `json:"path"`
			Status progressionRow         `json:"status"`
		}{status.Path, newProgressionRow(status)})
	}

	fmt.Fprintln(cli.out(), theme.TitleStyle.Render(status.Path.Name))
	if status.Path.Description != "" {
		fmt.Fprintln(cli.out(), status.Path.Description)
	}
	fmt.Fprintf(cli.out(), "Category: %s, active: %t\n\n", status.Path.Category, status.Active)

	w := newTable(cli.out())
	fmt.Fprintln(w, "\t#\tSTEP\tDIFFICULTY\tID")
	for i, step := range status.Path.Steps {
		marker := ""
		if i == status.Index {
			marker = ">"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", marker, i, step.Name, step.Difficulty, step.ID)
	}
	w.Flush()

	fmt.Fprintf(cli.out(), "\nCurrent: %s %s\n",
		theme.CurrentStepStyle.Render(status.Current.Name),
		theme.DifficultyStyle(status.Current.Difficulty).Render(string(status.Current.Difficulty)))
	if status.Mastered {
		fmt.Fprintln(cli.out(), theme.SuccessStyle.Render("Progression mastered"))
	}
	return nil
}
