package storage

import (
	"fmt"
	"os"
	"time"

	"calix/internal/domain"
	"calix/internal/logging"
)

// lockPollInterval is how often a busy lock is retried
const lockPollInterval = 50 * time.Millisecond

// writerLock is an exclusive advisory lock that keeps a single process writing to the store
type writerLock struct {
	file *os.File
}

// acquireWriterLock waits up to timeout for the lock at path
func acquireWriterLock(path string, timeout time.Duration) (*writerLock, error) {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	deadline := time.Now().Add(timeout)
	for {
		locked, err := tryLockFile(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to acquire lock: %w", err)
		}
		if locked {
			logging.Logger.Debug("Store lock acquired", "path", path)
			return &writerLock{file: file}, nil
		}
		if time.Now().After(deadline) {
			file.Close()
			return nil, fmt.Errorf("%w: %s", domain.ErrStoreLocked, path)
		}
		time.Sleep(lockPollInterval)
	}
}

// Release unlocks and closes the lock file
func (l *writerLock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	unlockErr := unlockFile(l.file)
	closeErr := l.file.Close()
	l.file = nil
	if unlockErr != nil {
		return fmt.Errorf("failed to release lock: %w", unlockErr)
	}
	return closeErr
}
