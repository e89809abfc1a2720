package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	adaptercatalog "calix/internal/adapters/catalog"
	adapterstorage "calix/internal/adapters/storage"
	"calix/internal/domain"
	"calix/internal/logging"
	"calix/internal/persistence"
	"calix/internal/ports"
	"calix/internal/services"
)

// closeTimeout bounds how long Close waits for queued writes
const closeTimeout = 15 * time.Second

// Container holds all dependencies for the application
type Container struct {
	// Services
	ProgressionService *services.ProgressionService
	WorkoutService     *services.WorkoutService

	// Reference data
	Catalog ports.Catalog

	// Internal - for cleanup only
	store  ports.KeyValueStore
	writer *persistence.Writer
}

// NewContainer opens the store at dbPath, hydrates both services and wires their recorders
func NewContainer(dbPath string, opts ...services.WorkoutOption) (*Container, error) {
	store, err := adapterstorage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, err
	}

	container, err := newContainerWithStore(context.Background(), store, opts...)
	if err != nil {
		store.Close()
		return nil, err
	}
	return container, nil
}

func newContainerWithStore(ctx context.Context, store ports.KeyValueStore, opts ...services.WorkoutOption) (*Container, error) {
	catalog := adaptercatalog.NewStaticCatalog()

	var workouts domain.WorkoutSnapshot
	var progressions domain.ProgressionSnapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		workouts, err = persistence.LoadWorkouts(gctx, store)
		return err
	})
	g.Go(func() error {
		var err error
		progressions, err = persistence.LoadProgressions(gctx, store)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	writer := persistence.NewWriter(store, persistence.DefaultWriteTimeout)

	workoutService := services.NewWorkoutService(catalog, workouts, opts...)
	workoutService.Subscribe(persistence.NewWorkoutRecorder(writer).Record)

	progressionService := services.NewProgressionService(catalog, progressions)
	progressionService.Subscribe(persistence.NewProgressionRecorder(writer).Record)

	logging.Logger.Debug("Container ready",
		"history", len(workouts.History),
		"active_progressions", len(progressions.ActiveIDs))

	return &Container{
		Catalog:            catalog,
		ProgressionService: progressionService,
		WorkoutService:     workoutService,
		store:              store,
		writer:             writer,
	}, nil
}

// Close drains queued writes and closes the store
func (c *Container) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	var errs []error
	if c.writer != nil {
		if err := c.writer.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to save changes: %w", err))
		}
	}
	if c.store != nil {
		if err := c.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close store: %w", err))
		}
	}
	return errors.Join(errs...)
}
