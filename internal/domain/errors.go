package domain

import "errors"

var (
	ErrExerciseNotFound    = errors.New("exercise not found in current workout")
	ErrInvalidSet          = errors.New("set values must not be negative")
	ErrMalformedState      = errors.New("malformed persisted state")
	ErrNoActiveWorkout     = errors.New("no active workout")
	ErrProgressionNotFound = errors.New("progression not found")
	ErrSetNotFound         = errors.New("set not found")
	ErrStoreLocked         = errors.New("store is locked by another process")
	ErrTemplateNotFound    = errors.New("workout template not found")
	ErrWorkoutInProgress   = errors.New("a workout is already in progress")
)
