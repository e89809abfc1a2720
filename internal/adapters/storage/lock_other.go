//go:build !unix && !windows

package storage

import "os"

// tryLockFile is a no-op where advisory locks are unavailable
func tryLockFile(file *os.File) (bool, error) {
	return true, nil
}

// unlockFile is a no-op where advisory locks are unavailable
func unlockFile(file *os.File) error {
	return nil
}
