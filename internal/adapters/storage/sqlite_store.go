package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"calix/internal/logging"
	"calix/internal/paths"
	"calix/internal/ports"
)

const (
	// DefaultLockTimeout is how long a second process waits for the writer lock
	DefaultLockTimeout = 5 * time.Second

	maxRetries = 5
)

// SQLiteStore implements ports.KeyValueStore on a single SQLite table using GORM
type SQLiteStore struct {
	db   *gorm.DB
	lock *writerLock
}

// Verify interface compliance at compile time
var _ ports.KeyValueStore = (*SQLiteStore)(nil)

// Option configures a SQLiteStore
type Option func(*storeOptions)

type storeOptions struct {
	lockTimeout time.Duration
}

// WithLockTimeout overrides how long to wait for another process to release the store
func WithLockTimeout(timeout time.Duration) Option {
	return func(o *storeOptions) {
		o.lockTimeout = timeout
	}
}

// slowQueryThreshold is the duration above which a query is logged as a warning
const slowQueryThreshold = 200 * time.Millisecond

// queryLogger routes GORM output to slog, tagged with the store component
type queryLogger struct {
	level  logger.LogLevel
	log    *slog.Logger
	slowAt time.Duration
}

func newQueryLogger(log *slog.Logger, level logger.LogLevel) *queryLogger {
	return &queryLogger{
		level:  level,
		log:    log.With("component", "kv-store"),
		slowAt: slowQueryThreshold,
	}
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *queryLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		l.log.InfoContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *queryLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		l.log.WarnContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *queryLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		l.log.ErrorContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	attrs := []any{"duration", elapsed, "sql", sql, "rows", rows}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		// A missing key is a normal Get outcome, not a failure
		l.log.ErrorContext(ctx, "KV query failed", append(attrs, "error", err)...)
	case elapsed > l.slowAt:
		l.log.WarnContext(ctx, "Slow KV query", attrs...)
	default:
		l.log.DebugContext(ctx, "KV query", attrs...)
	}
}

// storeLogLevel enables query logging only when calix runs with --debug
func storeLogLevel() logger.LogLevel {
	if os.Getenv("CALIX_DEBUG") == "1" {
		return logger.Info
	}
	return logger.Silent
}

// NewSQLiteStore opens (or creates) the store at dbPath.
// It holds an exclusive lock on dbPath+".lock" until Close.
func NewSQLiteStore(dbPath string, opts ...Option) (*SQLiteStore, error) {
	options := storeOptions{lockTimeout: DefaultLockTimeout}
	for _, opt := range opts {
		opt(&options)
	}

	// Expand home directory if present
	dbPath = paths.ExpandPath(dbPath)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Take the writer lock before touching the database so a second process fails fast
	lock, err := acquireWriterLock(dbPath+".lock", options.lockTimeout)
	if err != nil {
		return nil, err
	}

	// Open database
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newQueryLogger(logging.Logger, storeLogLevel()),
	})
	if err != nil {
		lock.Release()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL keeps readers unblocked while the recorder writes
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	// Auto-migrate the key-value table
	if err := db.AutoMigrate(&KVRecordModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			lock.Release()
			return nil, fmt.Errorf("failed to migrate kv_records schema: %w", err)
		}
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		lock.Release()
		return nil, err
	}
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("SQLite store opened", "path", dbPath)
	return &SQLiteStore{db: db, lock: lock}, nil
}

// Close closes the database connection and releases the writer lock
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		s.lock.Release()
		return err
	}
	closeErr := sqlDB.Close()

	// Release the lock even when closing failed, and report the first error
	if err := s.lock.Release(); err != nil && closeErr == nil {
		closeErr = err
	}
	return closeErr
}

// Get implements ports.KeyValueReader
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var record KVRecordModel
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Where("name = ?", key).Take(&record).Error
	}, maxRetries)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return record.Value, true, nil
}

// Set implements ports.KeyValueWriter. Later writes win.
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	err := withRetry(func() error {
		record := KVRecordModel{Name: key, Value: value, Revision: 1}
		// Insert, or overwrite the value and bump the revision of an existing key
		return s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(map[string]any{
				"value":      value,
				"revision":   gorm.Expr("revision + 1"),
				"updated_at": time.Now().UTC(),
			}),
		}).Create(&record).Error
	}, maxRetries)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Delete implements ports.KeyValueWriter. Deleting a missing key is not an error.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Where("name = ?", key).Delete(&KVRecordModel{}).Error
	}, maxRetries)
	if err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		// Only busy/locked errors are worth retrying
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			logging.Logger.Debug("SQLite busy, retrying", "attempt", i+1)
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
