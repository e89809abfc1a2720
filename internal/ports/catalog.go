package ports

import "calix/internal/domain"

// ExerciseCatalog looks up exercises by ID
type ExerciseCatalog interface {
	ExerciseByID(exerciseID string) (domain.ProgressionStep, bool)
}

// ProgressionCatalog looks up progression paths by ID
type ProgressionCatalog interface {
	ProgressionByID(progressionID string) (domain.ProgressionPath, bool)
}

// TemplateCatalog looks up workout templates
type TemplateCatalog interface {
	Template(templateID string) (domain.WorkoutTemplate, bool)
	Templates() []domain.WorkoutTemplate
}

// Catalog is the read-only reference data source
type Catalog interface {
	ExerciseCatalog
	ProgressionCatalog
	TemplateCatalog
	Exercises() []domain.ProgressionStep
	ProgressionForExercise(exerciseID string) (domain.ProgressionPath, bool)
	Progressions() []domain.ProgressionPath
	SearchExercises(query string) []domain.ProgressionStep
}
