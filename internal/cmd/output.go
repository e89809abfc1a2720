package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"calix/internal/domain"
)

const dateLayout = "2006-01-02 15:04"

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// position parses a 1-based position reference
func position(ref string, n int) (int, bool) {
	i, err := strconv.Atoi(ref)
	if err != nil || i < 1 || i > n {
		return 0, false
	}
	return i - 1, true
}

// resolveExercise finds an exercise of w by ID or by 1-based position
func resolveExercise(w domain.WorkoutLog, ref string) (domain.ExerciseLog, error) {
	if i := w.FindExercise(ref); i >= 0 {
		return w.Exercises[i], nil
	}
	if i, ok := position(ref, len(w.Exercises)); ok {
		return w.Exercises[i], nil
	}
	return domain.ExerciseLog{}, fmt.Errorf("%w: %s", domain.ErrExerciseNotFound, ref)
}

// resolveSet finds a set of ex by ID or by 1-based position
func resolveSet(ex domain.ExerciseLog, ref string) (domain.SetLog, error) {
	if i := ex.FindSet(ref); i >= 0 {
		return ex.Sets[i], nil
	}
	if i, ok := position(ref, len(ex.Sets)); ok {
		return ex.Sets[i], nil
	}
	return domain.SetLog{}, fmt.Errorf("%w: %s", domain.ErrSetNotFound, ref)
}

// resolveHistory finds a completed workout by ID or by 1-based position (1 = most recent)
func resolveHistory(history []domain.WorkoutLog, ref string) (domain.WorkoutLog, bool) {
	for _, w := range history {
		if w.ID == ref {
			return w, true
		}
	}
	if i, ok := position(ref, len(history)); ok {
		return history[i], true
	}
	return domain.WorkoutLog{}, false
}

func formatSet(s domain.SetLog) string {
	var parts []string
	if s.Reps != nil {
		parts = append(parts, fmt.Sprintf("%d reps", *s.Reps))
	}
	if s.Duration != nil {
		parts = append(parts, fmt.Sprintf("%ds", *s.Duration))
	}
	if s.Weight != nil {
		parts = append(parts, strconv.FormatFloat(*s.Weight, 'f', -1, 64)+" kg")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " @ ")
}

func formatMinutes(minutes *int) string {
	if minutes == nil {
		return "-"
	}
	if *minutes >= 60 {
		return fmt.Sprintf("%dh %02dm", *minutes/60, *minutes%60)
	}
	return fmt.Sprintf("%dm", *minutes)
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// printWorkout renders a workout with its exercises and sets
func printWorkout(w io.Writer, workout domain.WorkoutLog) {
	fmt.Fprintf(w, "Workout: %s\n", workout.Name)
	fmt.Fprintf(w, "ID: %s\n", workout.ID)
	fmt.Fprintf(w, "Started: %s\n", workout.Date.Local().Format(dateLayout))
	if workout.IsComplete {
		fmt.Fprintf(w, "Duration: %s\n", formatMinutes(workout.Duration))
	}
	if workout.Notes != "" {
		fmt.Fprintf(w, "Notes: %s\n", workout.Notes)
	}

	if len(workout.Exercises) == 0 {
		fmt.Fprintln(w, "\nNo exercises yet.")
		return
	}

	for i, ex := range workout.Exercises {
		fmt.Fprintf(w, "\n%d. %s", i+1, ex.ExerciseName)
		if ex.ProgressionID != "" {
			fmt.Fprintf(w, " [%s]", ex.ProgressionID)
		}
		fmt.Fprintf(w, "  (%s)\n", ex.ID)

		if len(ex.Sets) == 0 {
			fmt.Fprintln(w, "   no sets")
			continue
		}
		tw := newTable(w)
		for j, s := range ex.Sets {
			fmt.Fprintf(tw, "   %d\t%s\t%s\t%s\n", j+1, formatSet(s), valueOr(s.Notes, ""), s.ID)
		}
		tw.Flush()
	}
}
