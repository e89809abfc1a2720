package cmd

import (
	"fmt"
	"time"

	"calix/internal/domain"
	"calix/internal/theme"
)

// HistoryCmd reviews completed workouts
type HistoryCmd struct {
	List  HistoryListCmd  `cmd:"list" help:"List completed workouts by month" default:"1"`
	Stats HistoryStatsCmd `cmd:"stats" help:"Show totals and streaks"`
	View  HistoryViewCmd  `cmd:"view" help:"View a completed workout"`
}

// HistoryListCmd lists completed workouts
type HistoryListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Limit  int    `help:"Show at most this many workouts (0 = all)" default:"0"`
}

// Run executes the list command
func (s *HistoryListCmd) Run(cli *CLI) error {
	history := cli.Container.WorkoutService.History()
	if s.Limit > 0 && len(history) > s.Limit {
		history = history[:s.Limit]
	}

	if s.Format == "json" {
		return printJSON(cli.out(), history)
	}

	if len(history) == 0 {
		fmt.Fprintln(cli.out(), "No completed workouts yet.")
		return nil
	}

	n := 1
	for i, group := range domain.GroupByMonth(history, time.Local) {
		if i > 0 {
			fmt.Fprintln(cli.out())
		}
		fmt.Fprintln(cli.out(), theme.HeaderStyle.Render(group.Label))

		w := newTable(cli.out())
		fmt.Fprintln(w, "#\tDATE\tNAME\tEXERCISES\tSETS\tDURATION\tID")
		for _, workout := range group.Workouts {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%s\t%s\n",
				n,
				workout.Date.Local().Format(dateLayout),
				workout.Name,
				len(workout.Exercises),
				workout.SetCount(),
				formatMinutes(workout.Duration),
				workout.ID,
			)
			n++
		}
		w.Flush()
	}
	return nil
}

// HistoryViewCmd shows a completed workout
type HistoryViewCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Ref    string `arg:"" name:"workout" help:"Workout ID or 1-based position (1 = most recent)"`
}

// Run executes the view command
func (s *HistoryViewCmd) Run(cli *CLI) error {
	workout, ok := resolveHistory(cli.Container.WorkoutService.History(), s.Ref)
	if !ok {
		return fmt.Errorf("workout not found: %s", s.Ref)
	}

	if s.Format == "json" {
		return printJSON(cli.out(), workout)
	}

	printWorkout(cli.out(), workout)
	return nil
}

// HistoryStatsCmd summarizes completed workouts
type HistoryStatsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the stats command
func (s *HistoryStatsCmd) Run(cli *CLI) error {
	stats := domain.SummarizeHistory(cli.Container.WorkoutService.History(), time.Now())

	if s.Format == "json" {
		return printJSON(cli.out(), stats)
	}

	fmt.Fprintln(cli.out(), theme.TitleStyle.Render("Training summary"))
	w := newTable(cli.out())
	fmt.Fprintf(w, "Workouts completed\t%d\n", stats.WorkoutsCompleted)
	fmt.Fprintf(w, "Total time\t%s\n", formatMinutes(&stats.TotalMinutes))
	fmt.Fprintf(w, "Total sets\t%d\n", stats.TotalSets)
	fmt.Fprintf(w, "Current streak\t%d days\n", stats.CurrentStreak)
	fmt.Fprintf(w, "Longest streak\t%d days\n", stats.LongestStreak)
	if stats.LastWorkout != nil {
		fmt.Fprintf(w, "Last workout\t%s\n", stats.LastWorkout.Local().Format(dateLayout))
	}
	w.Flush()
	return nil
}
