package persistence

import (
	"encoding/json"
	"fmt"

	"calix/internal/domain"
)

// Store keys. The first, third and fourth keep the layout of the original client storage.
const (
	KeyActiveProgressions = "active-progressions"
	KeyCurrentWorkout     = "current-workout"
	KeyProgressionLevels  = "progression-levels"
	KeyWorkoutHistory     = "workout-logs"
)

// DefaultActiveProgressions is seeded once when no active set has ever been stored
var DefaultActiveProgressions = []string{"pull-ups", "push-ups", "dips"}

func encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode record: %w", err)
	}
	return string(data), nil
}

func decode(key, raw string, v any) error {
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("%w: key %q: %v", domain.ErrMalformedState, key, err)
	}
	return nil
}

// EncodeHistory serializes the workout history
func EncodeHistory(history []domain.WorkoutLog) (string, error) {
	if history == nil {
		history = []domain.WorkoutLog{}
	}
	return encode(history)
}

// DecodeHistory parses the workout history
func DecodeHistory(raw string) ([]domain.WorkoutLog, error) {
	var history []domain.WorkoutLog
	if err := decode(KeyWorkoutHistory, raw, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// EncodeWorkout serializes the in-progress workout
func EncodeWorkout(workout domain.WorkoutLog) (string, error) {
	return encode(workout)
}

// DecodeWorkout parses the in-progress workout. A JSON null decodes to nil.
func DecodeWorkout(raw string) (*domain.WorkoutLog, error) {
	var workout *domain.WorkoutLog
	if err := decode(KeyCurrentWorkout, raw, &workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// EncodeActiveIDs serializes the active progression IDs
func EncodeActiveIDs(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	return encode(ids)
}

// DecodeActiveIDs parses the active progression IDs
func DecodeActiveIDs(raw string) ([]string, error) {
	var ids []string
	if err := decode(KeyActiveProgressions, raw, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// EncodeLevels serializes the progression level records
func EncodeLevels(levels []domain.ProgressionLevel) (string, error) {
	if levels == nil {
		levels = []domain.ProgressionLevel{}
	}
	return encode(levels)
}

// DecodeLevels parses the progression level records
func DecodeLevels(raw string) ([]domain.ProgressionLevel, error) {
	var levels []domain.ProgressionLevel
	if err := decode(KeyProgressionLevels, raw, &levels); err != nil {
		return nil, err
	}
	return levels, nil
}
