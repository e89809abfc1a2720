package persistence

import (
	"calix/internal/domain"
	"calix/internal/logging"
)

// WorkoutRecorder persists committed workout changes
type WorkoutRecorder struct {
	writer *Writer
}

// NewWorkoutRecorder creates a recorder writing through w
func NewWorkoutRecorder(w *Writer) *WorkoutRecorder {
	return &WorkoutRecorder{writer: w}
}

// Record queues the writes for one change. An empty history is never written,
// so a stored history is not overwritten by a fresh process.
func (r *WorkoutRecorder) Record(change domain.WorkoutChange) {
	snapshot := change.Snapshot

	if change.HistoryChanged && len(snapshot.History) > 0 {
		value, err := EncodeHistory(snapshot.History)
		if err != nil {
			logging.Logger.Error("Failed to encode workout history", "error", err)
		} else {
			r.writer.Set(KeyWorkoutHistory, value)
		}
	}

	if snapshot.Current == nil {
		r.writer.Delete(KeyCurrentWorkout)
		return
	}

	value, err := EncodeWorkout(*snapshot.Current)
	if err != nil {
		logging.Logger.Error("Failed to encode current workout", "error", err)
		return
	}
	r.writer.Set(KeyCurrentWorkout, value)
}

// ProgressionRecorder persists committed progression changes
type ProgressionRecorder struct {
	writer *Writer
}

// NewProgressionRecorder creates a recorder writing through w
func NewProgressionRecorder(w *Writer) *ProgressionRecorder {
	return &ProgressionRecorder{writer: w}
}

// Record queues both progression keys
func (r *ProgressionRecorder) Record(change domain.ProgressionChange) {
	ids, err := EncodeActiveIDs(change.Snapshot.ActiveIDs)
	if err != nil {
		logging.Logger.Error("Failed to encode active progressions", "error", err)
	} else {
		r.writer.Set(KeyActiveProgressions, ids)
	}

	levels, err := EncodeLevels(change.Snapshot.Levels)
	if err != nil {
		logging.Logger.Error("Failed to encode progression levels", "error", err)
		return
	}
	r.writer.Set(KeyProgressionLevels, levels)
}
