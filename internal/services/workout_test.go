package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calix/internal/domain"
	portsmocks "calix/internal/ports/mocks"
)

var t0 = time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestWorkoutService(t *testing.T, initial domain.WorkoutSnapshot) (*WorkoutService, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: t0}
	svc := NewWorkoutService(nil, initial, WithClock(clock.Now), WithIDGenerator(sequentialIDs()))
	return svc, clock
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestWorkoutService_StartDefaults(t *testing.T) {
	svc, _ := newTestWorkoutService(t, domain.WorkoutSnapshot{})

	workout, err := svc.Start(nil)

	require.NoError(t, err)
	assert.Equal(t, "id-1", workout.ID)
	assert.Equal(t, "Custom Workout", workout.Name)
	assert.Equal(t, t0, workout.Date)
	assert.Empty(t, workout.Exercises)
	assert.False(t, workout.IsComplete)
	assert.Nil(t, workout.Duration)

	current, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, workout, current)
}

func TestWorkoutService_StartFromTemplate(t *testing.T) {
	svc, _ := newTestWorkoutService(t, domain.WorkoutSnapshot{})
	template := &domain.WorkoutTemplate{
		ID:   "pull-day",
		Name: "Pull Day",
		Exercises: []domain.TemplateExercise{
			{ID: "t1", ExerciseID: "pull-ups", Name: "Pull-ups", ProgressionID: "pull-ups", TargetSets: 3, TargetReps: intPtr(8)},
			{ID: "t2", ExerciseID: "tuck-front-lever", Name: "Tuck Front Lever", ProgressionID: "front-lever", TargetSets: 3, TargetDuration: intPtr(10)},
		},
	}

	workout, err := svc.Start(template)

	require.NoError(t, err)
	assert.Equal(t, "Pull Day", workout.Name)
	require.Len(t, workout.Exercises, 2)
	assert.Equal(t, domain.ExerciseLog{
		ID: "id-2", ExerciseID: "pull-ups", ExerciseName: "Pull-ups", ProgressionID: "pull-ups", Sets: []domain.SetLog{},
	}, workout.Exercises[0])
	assert.Equal(t, "front-lever", workout.Exercises[1].ProgressionID)
	assert.Empty(t, workout.Exercises[1].Sets)
}

func TestWorkoutService_StartWhileInProgress(t *testing.T) {
	svc, _ := newTestWorkoutService(t, domain.WorkoutSnapshot{})
	first, err := svc.Start(nil)
	require.NoError(t, err)

	_, err = svc.Start(&domain.WorkoutTemplate{Name: "Legs Day"})

	assert.ErrorIs(t, err, domain.ErrWorkoutInProgress)
	current, _ := svc.Current()
	assert.Equal(t, first, current)
}

func TestWorkoutService_NoCurrentNoOps(t *testing.T) {
	history := []domain.WorkoutLog{{ID: "old", Date: t0.Add(-24 * time.Hour), Name: "Old", Exercises: []domain.ExerciseLog{}, IsComplete: true, Duration: intPtr(30)}}

	tests := []struct {
		name string
		run  func(svc *WorkoutService) error
	}{
		{"add exercise", func(svc *WorkoutService) error { _, err := svc.AddExercise("ex1", "Push-ups", ""); return err }},
		{"remove exercise", func(svc *WorkoutService) error { return svc.RemoveExercise("e1") }},
		{"add set", func(svc *WorkoutService) error { _, err := svc.AddSet("e1", domain.SetFields{Reps: intPtr(5)}); return err }},
		{"update set", func(svc *WorkoutService) error {
			_, err := svc.UpdateSet("e1", "s1", domain.SetUpdate{Reps: intPtr(5)})
			return err
		}},
		{"remove set", func(svc *WorkoutService) error { return svc.RemoveSet("e1", "s1") }},
		{"rename", func(svc *WorkoutService) error { return svc.Rename("New") }},
		{"complete", func(svc *WorkoutService) error { _, err := svc.Complete("notes"); return err }},
		{"cancel", func(svc *WorkoutService) error { return svc.Cancel() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestWorkoutService(t, domain.WorkoutSnapshot{History: history})
			changes := 0
			svc.Subscribe(func(domain.WorkoutChange) { changes++ })

			err := tt.run(svc)

			assert.ErrorIs(t, err, domain.ErrNoActiveWorkout)
			snapshot := svc.Snapshot()
			assert.Nil(t, snapshot.Current)
			assert.Equal(t, history, snapshot.History)
			assert.Zero(t, changes)
		})
	}
}

func TestWorkoutService_AddExerciseNameFallback(t *testing.T) {
	t.Run("display name wins", func(t *testing.T) {
		catalog := portsmocks.NewMockExerciseCatalog(t)
		svc := NewWorkoutService(catalog, domain.WorkoutSnapshot{})
		_, err := svc.Start(nil)
		require.NoError(t, err)

		ex, err := svc.AddExercise("pull-ups", "My Pull-ups", "pull-ups")

		require.NoError(t, err)
		assert.Equal(t, "My Pull-ups", ex.ExerciseName)
		assert.Equal(t, "pull-ups", ex.ProgressionID)
	})

	t.Run("catalog name", func(t *testing.T) {
		catalog := portsmocks.NewMockExerciseCatalog(t)
		catalog.EXPECT().ExerciseByID("pistol-squats").Return(domain.ProgressionStep{ID: "pistol-squats", Name: "Pistol Squats"}, true)
		svc := NewWorkoutService(catalog, domain.WorkoutSnapshot{})
		_, err := svc.Start(nil)
		require.NoError(t, err)

		ex, err := svc.AddExercise("pistol-squats", "", "")

		require.NoError(t, err)
		assert.Equal(t, "Pistol Squats", ex.ExerciseName)
	})

	t.Run("unknown exercise", func(t *testing.T) {
		catalog := portsmocks.NewMockExerciseCatalog(t)
		catalog.EXPECT().ExerciseByID("mystery").Return(domain.ProgressionStep{}, false)
		svc := NewWorkoutService(catalog, domain.WorkoutSnapshot{})
		_, err := svc.Start(nil)
		require.NoError(t, err)

		ex, err := svc.AddExercise("mystery", "", "")

		require.NoError(t, err)
		assert.Equal(t, "Unknown Exercise", ex.ExerciseName)
		assert.Equal(t, "mystery", ex.ExerciseID)
	})
}

func TestWorkoutService_ExerciseAndSetMutations(t *testing.T) {
	svc, _ := newTestWorkoutService(t, domain.WorkoutSnapshot{})
	_, err := svc.Start(nil)
	require.NoError(t, err)

	first, err := svc.AddExercise("ex1", "Push-ups", "")
	require.NoError(t, err)
	second, err := svc.AddExercise("ex2", "Dips", "dips")
	require.NoError(t, err)

	set1, err := svc.AddSet(first.ID, domain.SetFields{Reps: intPtr(10)})
	require.NoError(t, err)
	set2, err := svc.AddSet(first.ID, domain.SetFields{})
	require.NoError(t, err, "empty sets are allowed")

	require.NoError(t, svc.RemoveSet(first.ID, set1.ID))
	require.NoError(t, svc.RemoveExercise(second.ID))

	current, _ := svc.Current()
	require.Len(t, current.Exercises, 1)
	assert.Equal(t, first.ID, current.Exercises[0].ID)
	require.Len(t, current.Exercises[0].Sets, 1)
	assert.Equal(t, set2.ID, current.Exercises[0].Sets[0].ID)

	assert.ErrorIs(t, svc.RemoveExercise("missing"), domain.ErrExerciseNotFound)
	assert.ErrorIs(t, svc.RemoveSet(first.ID, "missing"), domain.ErrSetNotFound)
	_, err = svc.AddSet("missing", domain.SetFields{})
	assert.ErrorIs(t, err, domain.ErrExerciseNotFound)
	_, err = svc.UpdateSet(first.ID, "missing", domain.SetUpdate{})
	assert.ErrorIs(t, err, domain.ErrSetNotFound)

	after, _ := svc.Current()
	assert.Equal(t, current, after, "rejected commands leave the workout unchanged")
}

func TestWorkoutService_UpdateSetMergesOnlySuppliedFields(t *testing.T) {
	svc, _ := newTestWorkoutService(t, domain.WorkoutSnapshot{})
	_, err := svc.Start(nil)
	require.NoError(t, err)
	ex, err := svc.AddExercise("l-sit", "L-Sit", "")
	require.NoError(t, err)
	set, err := svc.AddSet(ex.ID, domain.SetFields{Duration: intPtr(20), Notes: "shaky"})
	require.NoError(t, err)

	updated, err := svc.UpdateSet(ex.ID, set.ID, domain.SetUpdate{Weight: floatPtr(2.5)})

	require.NoError(t, err)
	assert.Equal(t, set.ID, updated.ID)
	assert.Equal(t, intPtr(20), updated.Duration)
	assert.Equal(t, floatPtr(2.5), updated.Weight)
	assert.Nil(t, updated.Reps)
	assert.Equal(t, "shaky", updated.Notes)
}

func TestWorkoutService_RejectsNegativeSetValues(t *testing.T) {
	svc, _ := newTestWorkoutService(t, domain.WorkoutSnapshot{})
	_, err := svc.Start(nil)
	require.NoError(t, err)
	ex, err := svc.AddExercise("ex1", "Push-ups", "")
	require.NoError(t, err)
	set, err := svc.AddSet(ex.ID, domain.SetFields{Reps: intPtr(5)})
	require.NoError(t, err)

	_, err = svc.AddSet(ex.ID, domain.SetFields{Reps: intPtr(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidSet)
	_, err = svc.UpdateSet(ex.ID, set.ID, domain.SetUpdate{Weight: floatPtr(-5)})
	assert.ErrorIs(t, err, domain.ErrInvalidSet)

	current, _ := svc.Current()
	require.Len(t, current.Exercises[0].Sets, 1)
	assert.Equal(t, set, current.Exercises[0].Sets[0])
}

func TestWorkoutService_CompletionDuration(t *testing.T) {
	svc, clock := newTestWorkoutService(t, domain.WorkoutSnapshot{})
	_, err := svc.Start(nil)
	require.NoError(t, err)

	clock.Advance(125000 * time.Millisecond)
	completed, err := svc.Complete("")

	require.NoError(t, err)
	require.NotNil(t, completed.Duration)
	assert.Equal(t, 2, *completed.Duration)
	assert.True(t, completed.IsComplete)

	_, ok := svc.Current()
	assert.False(t, ok)
}

func TestWorkoutService_CompleteKeepsExistingNotes(t *testing.T) {
	current := domain.WorkoutLog{ID: "w1", Date: t0, Name: "Custom Workout", Exercises: []domain.ExerciseLog{}, Notes: "from before"}
	svc, _ := newTestWorkoutService(t, domain.WorkoutSnapshot{Current: &current})

	completed, err := svc.Complete("")

	require.NoError(t, err)
	assert.Equal(t, "from before", completed.Notes)
}

func TestWorkoutService_HistoryOrdering(t *testing.T) {
	svc, clock := newTestWorkoutService(t, domain.WorkoutSnapshot{})

	a, err := svc.Start(nil)
	require.NoError(t, err)
	require.NoError(t, svc.Rename("A"))
	_, err = svc.Complete("")
	require.NoError(t, err)

	clock.Advance(time.Hour)
	b, err := svc.Start(nil)
	require.NoError(t, err)
	require.NoError(t, svc.Rename("B"))
	_, err = svc.Complete("")
	require.NoError(t, err)

	history := svc.History()
	require.Len(t, history, 2)
	assert.Equal(t, b.ID, history[0].ID)
	assert.Equal(t, "B", history[0].Name)
	assert.Equal(t, a.ID, history[1].ID)
}

func TestWorkoutService_CancelKeepsHistory(t *testing.T) {
	history := []domain.WorkoutLog{{ID: "old", Date: t0, Exercises: []domain.ExerciseLog{}, IsComplete: true}}
	svc, _ := newTestWorkoutService(t, domain.WorkoutSnapshot{History: history})
	_, err := svc.Start(nil)
	require.NoError(t, err)

	require.NoError(t, svc.Cancel())

	snapshot := svc.Snapshot()
	assert.Nil(t, snapshot.Current)
	assert.Equal(t, history, snapshot.History)
}

func TestWorkoutService_EndToEnd(t *testing.T) {
	svc, clock := newTestWorkoutService(t, domain.WorkoutSnapshot{})

	_, err := svc.Start(nil)
	require.NoError(t, err)
	ex, err := svc.AddExercise("ex1", "Push-ups", "")
	require.NoError(t, err)
	set, err := svc.AddSet(ex.ID, domain.SetFields{Reps: intPtr(10)})
	require.NoError(t, err)
	_, err = svc.UpdateSet(ex.ID, set.ID, domain.SetUpdate{Weight: floatPtr(5)})
	require.NoError(t, err)
	clock.Advance(40 * time.Minute)
	_, err = svc.Complete("felt good")
	require.NoError(t, err)

	history := svc.History()
	require.Len(t, history, 1)
	got := history[0]
	assert.Equal(t, "felt good", got.Notes)
	require.Len(t, got.Exercises, 1)
	assert.Equal(t, "Push-ups", got.Exercises[0].ExerciseName)
	require.Len(t, got.Exercises[0].Sets, 1)
	assert.Equal(t, domain.SetLog{ID: set.ID, Reps: intPtr(10), Weight: floatPtr(5)}, got.Exercises[0].Sets[0])
	assert.Equal(t, intPtr(40), got.Duration)
}

func TestWorkoutService_SubscribersSeeEveryCommitInOrder(t *testing.T) {
	svc, _ := newTestWorkoutService(t, domain.WorkoutSnapshot{})
	var changes []domain.WorkoutChange
	svc.Subscribe(func(c domain.WorkoutChange) { changes = append(changes, c) })

	_, err := svc.Start(nil)
	require.NoError(t, err)
	ex, err := svc.AddExercise("ex1", "Push-ups", "")
	require.NoError(t, err)
	_, err = svc.AddSet(ex.ID, domain.SetFields{Reps: intPtr(3)})
	require.NoError(t, err)
	_, err = svc.Complete("")
	require.NoError(t, err)

	require.Len(t, changes, 4)
	assert.Equal(t, domain.CommandStart, changes[0].Command)
	assert.Equal(t, domain.CommandAddExercise, changes[1].Command)
	assert.Equal(t, domain.CommandAddSet, changes[2].Command)
	assert.Equal(t, domain.CommandComplete, changes[3].Command)
	assert.False(t, changes[2].HistoryChanged)
	assert.True(t, changes[3].HistoryChanged)
	assert.Nil(t, changes[3].Snapshot.Current)
	assert.Len(t, changes[3].Snapshot.History, 1)
}

func TestWorkoutService_PublishedSnapshotsAreIsolated(t *testing.T) {
	svc, _ := newTestWorkoutService(t, domain.WorkoutSnapshot{})
	var published domain.WorkoutSnapshot
	svc.Subscribe(func(c domain.WorkoutChange) { published = c.Snapshot })

	_, err := svc.Start(nil)
	require.NoError(t, err)
	ex, err := svc.AddExercise("ex1", "Push-ups", "")
	require.NoError(t, err)

	published.Current.Name = "tampered"
	published.Current.Exercises[0].ExerciseName = "tampered"

	current, _ := svc.Current()
	assert.Equal(t, "Custom Workout", current.Name)
	assert.Equal(t, ex.ExerciseName, current.Exercises[0].ExerciseName)
}
