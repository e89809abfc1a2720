package cmd

import (
	"fmt"
	"strings"

	"calix/internal/domain"
	"calix/internal/theme"
)

// CatalogCmd browses the built-in reference data
type CatalogCmd struct {
	Exercises CatalogExercisesCmd `cmd:"exercises" help:"List or search exercises" default:"1"`
	Templates CatalogTemplatesCmd `cmd:"templates" help:"List workout templates"`
}

type exerciseRow struct {
	Difficulty    domain.Difficulty `json:"difficulty"`
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	ProgressionID string            `json:"progressionId,omitempty"`
}

// CatalogExercisesCmd lists exercises
type CatalogExercisesCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Search string `help:"Case-insensitive name filter" short:"s"`
}

// Run executes the exercises command
func (s *CatalogExercisesCmd) Run(cli *CLI) error {
	catalog := cli.Container.Catalog

	steps := catalog.Exercises()
	if s.Search != "" {
		steps = catalog.SearchExercises(s.Search)
	}

	rows := make([]exerciseRow, 0, len(steps))
	for _, step := range steps {
		row := exerciseRow{Difficulty: step.Difficulty, ID: step.ID, Name: step.Name}
		if path, ok := catalog.ProgressionForExercise(step.ID); ok {
			row.ProgressionID = path.ID
		}
		rows = append(rows, row)
	}

	if s.Format == "json" {
		return printJSON(cli.out(), rows)
	}

	if len(rows) == 0 {
		fmt.Fprintf(cli.out(), "No exercises match '%s'\n", s.Search)
		return nil
	}

	w := newTable(cli.out())
	fmt.Fprintln(w, "ID\tNAME\tDIFFICULTY\tPROGRESSION")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.ID, row.Name, row.Difficulty, row.ProgressionID)
	}
	w.Flush()
	return nil
}

// CatalogTemplatesCmd lists workout templates
type CatalogTemplatesCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the templates command
func (s *CatalogTemplatesCmd) Run(cli *CLI) error {
	templates := cli.Container.Catalog.Templates()

	if s.Format == "json" {
		return printJSON(cli.out(), templates)
	}

	for i, t := range templates {
		if i > 0 {
			fmt.Fprintln(cli.out())
		}
		fmt.Fprintf(cli.out(), "%s  %s\n", theme.HeaderStyle.Render(t.Name), theme.MutedStyle.Render("("+t.ID+")"))
		if t.Description != "" {
			fmt.Fprintln(cli.out(), t.Description)
		}

		w := newTable(cli.out())
		for _, ex := range t.Exercises {
			fmt.Fprintf(w, "  %s\t%s\n", ex.Name, formatTarget(ex))
		}
		w.Flush()
	}
	return nil
}

func formatTarget(ex domain.TemplateExercise) string {
	var target []string
	if ex.TargetReps != nil {
		target = append(target, fmt.Sprintf("%d reps", *ex.TargetReps))
	}
	if ex.TargetDuration != nil {
		target = append(target, fmt.Sprintf("%ds", *ex.TargetDuration))
	}
	if len(target) == 0 {
		return fmt.Sprintf("%d sets", ex.TargetSets)
	}
	return fmt.Sprintf("%d x %s", ex.TargetSets, strings.Join(target, " / "))
}
