package catalog

import (
	"strings"

	"calix/internal/domain"
	"calix/internal/ports"
)

// StaticCatalog serves the built-in progressions and workout templates
type StaticCatalog struct {
	exercises  map[string]domain.ProgressionStep
	paths      []domain.ProgressionPath
	pathByStep map[string]int
	templates  []domain.WorkoutTemplate
}

// Verify interface compliance at compile time
var _ ports.Catalog = (*StaticCatalog)(nil)

// NewStaticCatalog creates the catalog from the built-in data
func NewStaticCatalog() *StaticCatalog {
	return NewCatalog(progressions, templates)
}

// NewCatalog indexes the given progressions and templates.
// When a step ID appears in several progressions the first one wins.
func NewCatalog(paths []domain.ProgressionPath, tmpls []domain.WorkoutTemplate) *StaticCatalog {
	c := &StaticCatalog{
		exercises:  make(map[string]domain.ProgressionStep),
		paths:      paths,
		pathByStep: make(map[string]int),
		templates:  tmpls,
	}
	for i, path := range paths {
		for _, step := range path.Steps {
			if _, exists := c.exercises[step.ID]; exists {
				continue
			}
			c.exercises[step.ID] = step
			c.pathByStep[step.ID] = i
		}
	}
	return c
}

// ExerciseByID implements ports.ExerciseCatalog
func (c *StaticCatalog) ExerciseByID(exerciseID string) (domain.ProgressionStep, bool) {
	step, ok := c.exercises[exerciseID]
	return step, ok
}

// ProgressionByID implements ports.ProgressionCatalog
func (c *StaticCatalog) ProgressionByID(progressionID string) (domain.ProgressionPath, bool) {
	for _, path := range c.paths {
		if path.ID == progressionID {
			return path, true
		}
	}
	return domain.ProgressionPath{}, false
}

// ProgressionForExercise returns the progression a step belongs to
func (c *StaticCatalog) ProgressionForExercise(exerciseID string) (domain.ProgressionPath, bool) {
	i, ok := c.pathByStep[exerciseID]
	if !ok {
		return domain.ProgressionPath{}, false
	}
	return c.paths[i], true
}

// Progressions returns all progression paths in catalog order
func (c *StaticCatalog) Progressions() []domain.ProgressionPath {
	return append([]domain.ProgressionPath(nil), c.paths...)
}

// Exercises returns every step of every progression in catalog order
func (c *StaticCatalog) Exercises() []domain.ProgressionStep {
	var all []domain.ProgressionStep
	for _, path := range c.paths {
		all = append(all, path.Steps...)
	}
	return all
}

// SearchExercises matches exercise names case-insensitively by substring.
// An empty query returns every exercise.
func (c *StaticCatalog) SearchExercises(query string) []domain.ProgressionStep {
	query = strings.ToLower(strings.TrimSpace(query))
	var matches []domain.ProgressionStep
	for _, step := range c.Exercises() {
		if strings.Contains(strings.ToLower(step.Name), query) {
			matches = append(matches, step)
		}
	}
	return matches
}

// Template implements ports.TemplateCatalog
func (c *StaticCatalog) Template(templateID string) (domain.WorkoutTemplate, bool) {
	for _, t := range c.templates {
		if t.ID == templateID {
			return t, true
		}
	}
	return domain.WorkoutTemplate{}, false
}

// Templates implements ports.TemplateCatalog
func (c *StaticCatalog) Templates() []domain.WorkoutTemplate {
	return append([]domain.WorkoutTemplate(nil), c.templates...)
}
