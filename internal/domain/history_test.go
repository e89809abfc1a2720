package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedAt(id string, date time.Time, minutes, sets int) WorkoutLog {
	exercise := ExerciseLog{ID: id + "-e", Sets: make([]SetLog, sets)}
	return WorkoutLog{
		ID:         id,
		Date:       date,
		Duration:   intPtr(minutes),
		Exercises:  []ExerciseLog{exercise},
		IsComplete: true,
	}
}

func day(d, hour int) time.Time {
	return time.Date(2025, 3, d, hour, 0, 0, 0, time.UTC)
}

func TestSummarizeHistory_Empty(t *testing.T) {
	stats := SummarizeHistory(nil, day(10, 12))

	assert.Equal(t, HistoryStats{}, stats)
}

func TestSummarizeHistory_Totals(t *testing.T) {
	history := []WorkoutLog{
		completedAt("c", day(9, 18), 45, 12),
		completedAt("b", day(9, 7), 20, 4),
		completedAt("a", day(3, 7), 30, 9),
	}

	stats := SummarizeHistory(history, day(9, 20))

	assert.Equal(t, 3, stats.WorkoutsCompleted)
	assert.Equal(t, 95, stats.TotalMinutes)
	assert.Equal(t, 25, stats.TotalSets)
	require.NotNil(t, stats.LastWorkout)
	assert.Equal(t, day(9, 18), *stats.LastWorkout)
}

func TestSummarizeHistory_Streaks(t *testing.T) {
	history := []WorkoutLog{
		completedAt("g", day(9, 8), 10, 1),
		completedAt("f", day(8, 8), 10, 1),
		completedAt("e", day(5, 8), 10, 1),
		completedAt("d", day(4, 8), 10, 1),
		completedAt("c", day(4, 19), 10, 1),
		completedAt("b", day(3, 8), 10, 1),
		completedAt("a", day(2, 8), 10, 1),
	}

	tests := []struct {
		name        string
		now         time.Time
		wantCurrent int
	}{
		{"trained today", day(9, 21), 2},
		{"nothing yet today", day(10, 9), 2},
		{"streak broken", day(11, 9), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := SummarizeHistory(history, tt.now)
			assert.Equal(t, tt.wantCurrent, stats.CurrentStreak)
			assert.Equal(t, 4, stats.LongestStreak)
		})
	}
}

func TestGroupByMonth(t *testing.T) {
	history := []WorkoutLog{
		{ID: "mar-2", Date: time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)},
		{ID: "jan", Date: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)},
		{ID: "mar-1", Date: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "dec", Date: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)},
	}

	groups := GroupByMonth(history, time.UTC)

	require.Len(t, groups, 3)
	assert.Equal(t, "March 2025", groups[0].Label)
	assert.Equal(t, "January 2025", groups[1].Label)
	assert.Equal(t, "December 2024", groups[2].Label)

	var ids []string
	for _, w := range groups[0].Workouts {
		ids = append(ids, w.ID)
	}
	assert.Equal(t, []string{"mar-2", "mar-1"}, ids)
	assert.Nil(t, GroupByMonth(nil, time.UTC))
}

func TestGroupByMonth_UsesDisplayLocation(t *testing.T) {
	athens := time.FixedZone("EET", 2*60*60)
	// 2025-02-01 00:30 in Athens, stored in UTC as it is on Start
	startedAt := time.Date(2025, 2, 1, 0, 30, 0, 0, athens).UTC()
	history := []WorkoutLog{{ID: "first-of-feb", Date: startedAt}}

	local := GroupByMonth(history, athens)
	require.Len(t, local, 1)
	assert.Equal(t, "February 2025", local[0].Label)
	assert.Equal(t, athens, local[0].Month.Location())

	utc := GroupByMonth(history, time.UTC)
	require.Len(t, utc, 1)
	assert.Equal(t, "January 2025", utc[0].Label)
}
