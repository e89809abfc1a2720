package domain

import (
	"sort"
	"time"
)

// HistoryStats summarizes completed workouts
type HistoryStats struct {
	CurrentStreak     int        `json:"currentStreak"`
	LastWorkout       *time.Time `json:"lastWorkout,omitempty"`
	LongestStreak     int        `json:"longestStreak"`
	TotalMinutes      int        `json:"totalWorkoutTime"`
	TotalSets         int        `json:"totalSets"`
	WorkoutsCompleted int        `json:"workoutsCompleted"`
}

// MonthGroup holds the workouts of one calendar month
type MonthGroup struct {
	Label    string
	Month    time.Time
	Workouts []WorkoutLog
}

// SummarizeHistory computes totals and day streaks. Days are calendar days in now's location.
// The current streak counts back from today, or from yesterday when nothing was logged today.
func SummarizeHistory(history []WorkoutLog, now time.Time) HistoryStats {
	stats := HistoryStats{WorkoutsCompleted: len(history)}
	if len(history) == 0 {
		return stats
	}

	loc := now.Location()
	days := make(map[time.Time]bool)
	var last time.Time
	for _, w := range history {
		if w.Duration != nil {
			stats.TotalMinutes += *w.Duration
		}
		stats.TotalSets += w.SetCount()
		days[truncateDay(w.Date.In(loc))] = true
		if w.Date.After(last) {
			last = w.Date
		}
	}
	stats.LastWorkout = &last

	for day := range days {
		if days[day.AddDate(0, 0, -1)] {
			continue
		}
		run := 1
		for days[day.AddDate(0, 0, run)] {
			run++
		}
		if run > stats.LongestStreak {
			stats.LongestStreak = run
		}
	}

	cursor := truncateDay(now)
	if !days[cursor] {
		cursor = cursor.AddDate(0, 0, -1)
	}
	for days[cursor] {
		stats.CurrentStreak++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return stats
}

// GroupByMonth buckets workouts by calendar month in loc, newest month first.
// Workouts keep their relative order inside a group.
func GroupByMonth(history []WorkoutLog, loc *time.Location) []MonthGroup {
	var groups []MonthGroup
	index := make(map[time.Time]int)

	for _, w := range history {
		date := w.Date.In(loc)
		month := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, loc)
		i, ok := index[month]
		if !ok {
			i = len(groups)
			index[month] = i
			groups = append(groups, MonthGroup{Label: month.Format("January 2006"), Month: month})
		}
		groups[i].Workouts = append(groups[i].Workouts, w)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Month.After(groups[j].Month)
	})
	return groups
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
