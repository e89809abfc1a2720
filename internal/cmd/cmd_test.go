package cmd

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calix/internal/config"
	"calix/internal/domain"
	"calix/internal/services"
)

// run parses args against a fresh CLI backed by dbPath and executes the selected command
func run(t *testing.T, dbPath string, settings *config.Settings, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CALIX_HOME", filepath.Dir(dbPath))
	t.Setenv("CALIX_DB_PATH", dbPath)

	var out bytes.Buffer
	cli := CLI{Out: &out}
	cli.SetSettings(settings)

	parser, err := kong.New(&cli, kong.Name("calix"), kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	require.NoError(t, err)

	runErr := ctx.Run(&cli)
	require.NoError(t, cli.Close())
	return out.String(), runErr
}

func newTestContainer(t *testing.T, dbPath string, opts ...services.WorkoutOption) *Container {
	t.Helper()
	container, err := NewContainer(dbPath, opts...)
	require.NoError(t, err)
	return container
}

func TestResolveExercise(t *testing.T) {
	workout := domain.WorkoutLog{Exercises: []domain.ExerciseLog{
		{ID: "aaa", ExerciseName: "Pull-ups"},
		{ID: "bbb", ExerciseName: "Dips"},
		{ID: "7", ExerciseName: "Numeric ID"},
	}}

	tests := []struct {
		ref     string
		want    string
		wantErr bool
	}{
		{"bbb", "Dips", false},
		{"1", "Pull-ups", false},
		{"7", "Numeric ID", false},
		{"3", "Numeric ID", false},
		{"0", "", true},
		{"4", "", true},
		{"ccc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			ex, err := resolveExercise(workout, tt.ref)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrExerciseNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ex.ExerciseName)
		})
	}
}

func TestResolveSet(t *testing.T) {
	ex := domain.ExerciseLog{Sets: []domain.SetLog{{ID: "s1"}, {ID: "s2"}}}

	set, err := resolveSet(ex, "2")
	require.NoError(t, err)
	assert.Equal(t, "s2", set.ID)

	set, err = resolveSet(ex, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", set.ID)

	_, err = resolveSet(ex, "s9")
	assert.ErrorIs(t, err, domain.ErrSetNotFound)
}

func TestFormatSet(t *testing.T) {
	reps := 10
	duration := 30
	weight := 7.5

	assert.Equal(t, "-", formatSet(domain.SetLog{}))
	assert.Equal(t, "10 reps", formatSet(domain.SetLog{Reps: &reps}))
	assert.Equal(t, "10 reps @ 7.5 kg", formatSet(domain.SetLog{Reps: &reps, Weight: &weight}))
	assert.Equal(t, "30s", formatSet(domain.SetLog{Duration: &duration}))
}

func TestContainer_StatePersistsAcrossRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "calix.db")
	start := time.Date(2025, 4, 1, 7, 0, 0, 0, time.UTC)
	now := start

	first := newTestContainer(t, dbPath, services.WithClock(func() time.Time { return now }))
	template, ok := first.Catalog.Template("pull-day")
	require.True(t, ok)
	workout, err := first.WorkoutService.Start(&template)
	require.NoError(t, err)
	reps := 8
	_, err = first.WorkoutService.AddSet(workout.Exercises[0].ID, domain.SetFields{Reps: &reps})
	require.NoError(t, err)
	first.ProgressionService.SetLevel("pull-ups", 2)
	require.NoError(t, first.Close())

	second := newTestContainer(t, dbPath, services.WithClock(func() time.Time { return now }))
	current, ok := second.WorkoutService.Current()
	require.True(t, ok, "the in-progress workout survives a restart")
	assert.Equal(t, workout.ID, current.ID)
	assert.Equal(t, 1, current.SetCount())
	assert.Equal(t, 2, second.ProgressionService.CurrentLevel("pull-ups"))
	assert.Equal(t, []string{"pull-ups", "push-ups", "dips"}, second.ProgressionService.ActiveIDs())

	now = start.Add(45 * time.Minute)
	_, err = second.WorkoutService.Complete("solid")
	require.NoError(t, err)
	require.NoError(t, second.Close())

	third := newTestContainer(t, dbPath)
	defer third.Close()
	_, ok = third.WorkoutService.Current()
	assert.False(t, ok)
	history := third.WorkoutService.History()
	require.Len(t, history, 1)
	assert.Equal(t, "Pull Day", history[0].Name)
	assert.Equal(t, "solid", history[0].Notes)
	require.NotNil(t, history[0].Duration)
	assert.Equal(t, 45, *history[0].Duration)
}

func TestCLI_WorkoutFlow(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "calix.db")

	out, err := run(t, dbPath, nil, "workout", "start")
	require.NoError(t, err)
	assert.Contains(t, out, "Started 'Custom Workout'")

	_, err = run(t, dbPath, nil, "workout", "start")
	assert.ErrorIs(t, err, domain.ErrWorkoutInProgress)

	out, err = run(t, dbPath, nil, "workout", "exercise", "add", "ring-dips")
	require.NoError(t, err)
	assert.Contains(t, out, "Added 'Ring Dips' as exercise 1")

	out, err = run(t, dbPath, nil, "workout", "set", "add", "1", "--reps", "6", "--weight", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "6 reps @ 5 kg")

	out, err = run(t, dbPath, nil, "workout", "set", "update", "1", "1", "--reps", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "7 reps @ 5 kg")

	_, err = run(t, dbPath, nil, "workout", "set", "remove", "1", "9")
	assert.ErrorIs(t, err, domain.ErrSetNotFound)

	out, err = run(t, dbPath, nil, "workout", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Ring Dips [dips]")

	_, err = run(t, dbPath, nil, "workout", "rename", "Evening Dips")
	require.NoError(t, err)

	out, err = run(t, dbPath, nil, "workout", "complete", "--notes", "good pump")
	require.NoError(t, err)
	assert.Contains(t, out, "Completed 'Evening Dips'")

	out, err = run(t, dbPath, nil, "history", "view", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Workout: Evening Dips")
	assert.Contains(t, out, "Notes: good pump")
	assert.Contains(t, out, "7 reps @ 5 kg")

	out, err = run(t, dbPath, nil, "history", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Workouts completed")

	_, err = run(t, dbPath, nil, "workout", "cancel")
	assert.ErrorIs(t, err, domain.ErrNoActiveWorkout)
}

func TestCLI_StartUsesDefaultTemplate(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "calix.db")
	settings := &config.Settings{DefaultTemplate: "legs-day"}

	out, err := run(t, dbPath, settings, "workout", "start")
	require.NoError(t, err)
	assert.Contains(t, out, "Started 'Legs Day'")

	_, err = run(t, dbPath, settings, "workout", "cancel")
	require.NoError(t, err)

	out, err = run(t, dbPath, settings, "workout", "start", "--custom")
	require.NoError(t, err)
	assert.Contains(t, out, "Started 'Custom Workout'")
}

func TestCLI_UnknownTemplate(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "calix.db")

	_, err := run(t, dbPath, nil, "workout", "start", "--template", "rest-day")

	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestCLI_Progressions(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "calix.db")

	out, err := run(t, dbPath, nil, "progressions", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "pull-ups")
	assert.Contains(t, out, "dips")
	assert.NotContains(t, out, "planche")

	_, err = run(t, dbPath, nil, "progressions", "activate", "levitation")
	assert.ErrorIs(t, err, domain.ErrProgressionNotFound)

	out, err = run(t, dbPath, nil, "progressions", "activate", "planche")
	require.NoError(t, err)
	assert.Contains(t, out, "Now tracking 'Planche Progression'")

	_, err = run(t, dbPath, nil, "progressions", "level", "planche", "2")
	require.NoError(t, err)
	out, err = run(t, dbPath, nil, "progressions", "advance", "planche")
	require.NoError(t, err)
	assert.Contains(t, out, "Planche Progression: now at")

	_, err = run(t, dbPath, nil, "progressions", "deactivate", "planche")
	require.NoError(t, err)

	container := newTestContainer(t, dbPath)
	defer container.Close()
	assert.False(t, container.ProgressionService.IsActive("planche"))
	assert.Equal(t, 3, container.ProgressionService.CurrentLevel("planche"))
}

func TestCLI_CatalogSearch(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "calix.db")

	out, err := run(t, dbPath, nil, "catalog", "exercises", "--search", "muscle")
	require.NoError(t, err)
	assert.Contains(t, out, "muscle-up")
	assert.NotContains(t, out, "pistol-squats")

	out, err = run(t, dbPath, nil, "catalog", "templates")
	require.NoError(t, err)
	assert.Contains(t, out, "full-body")
}
