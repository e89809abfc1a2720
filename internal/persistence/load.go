package persistence

import (
	"context"
	"fmt"

	"calix/internal/domain"
	"calix/internal/logging"
	"calix/internal/ports"
)

// LoadWorkouts hydrates the workout snapshot from the store.
// Malformed values are logged and read as empty; only store failures are returned.
func LoadWorkouts(ctx context.Context, store ports.KeyValueReader) (domain.WorkoutSnapshot, error) {
	var snapshot domain.WorkoutSnapshot

	raw, ok, err := store.Get(ctx, KeyWorkoutHistory)
	if err != nil {
		return snapshot, fmt.Errorf("failed to load workout history: %w", err)
	}
	if ok {
		history, err := DecodeHistory(raw)
		if err != nil {
			logging.Logger.Error("Ignoring workout history", "error", err)
		} else {
			snapshot.History = history
		}
	}

	raw, ok, err = store.Get(ctx, KeyCurrentWorkout)
	if err != nil {
		return snapshot, fmt.Errorf("failed to load current workout: %w", err)
	}
	if ok {
		current, err := DecodeWorkout(raw)
		if err != nil {
			logging.Logger.Error("Ignoring current workout", "error", err)
		} else {
			snapshot.Current = current
		}
	}

	logging.Logger.Debug("Workouts loaded",
		"history", len(snapshot.History),
		"in_progress", snapshot.Current != nil)
	return snapshot, nil
}

// LoadProgressions hydrates the progression snapshot from the store.
// When no active set has ever been stored the defaults are seeded and written back.
func LoadProgressions(ctx context.Context, store ports.KeyValueReadWriter) (domain.ProgressionSnapshot, error) {
	var snapshot domain.ProgressionSnapshot

	raw, ok, err := store.Get(ctx, KeyActiveProgressions)
	if err != nil {
		return snapshot, fmt.Errorf("failed to load active progressions: %w", err)
	}
	if ok {
		ids, err := DecodeActiveIDs(raw)
		if err != nil {
			logging.Logger.Error("Ignoring active progressions", "error", err)
		} else {
			snapshot.ActiveIDs = ids
		}
	} else {
		snapshot.ActiveIDs = append([]string(nil), DefaultActiveProgressions...)
		value, err := EncodeActiveIDs(snapshot.ActiveIDs)
		if err != nil {
			return snapshot, err
		}
		if err := store.Set(ctx, KeyActiveProgressions, value); err != nil {
			return snapshot, fmt.Errorf("failed to seed active progressions: %w", err)
		}
		logging.Logger.Info("Seeded default progressions", "ids", snapshot.ActiveIDs)
	}

	raw, ok, err = store.Get(ctx, KeyProgressionLevels)
	if err != nil {
		return snapshot, fmt.Errorf("failed to load progression levels: %w", err)
	}
	if ok {
		levels, err := DecodeLevels(raw)
		if err != nil {
			logging.Logger.Error("Ignoring progression levels", "error", err)
		} else {
			snapshot.Levels = levels
		}
	}

	return snapshot, nil
}
