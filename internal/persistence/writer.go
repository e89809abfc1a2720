package persistence

import (
	"context"
	"errors"
	"sync"
	"time"

	"calix/internal/logging"
	"calix/internal/ports"
)

// DefaultWriteTimeout bounds a single store write
const DefaultWriteTimeout = 10 * time.Second

// ErrWriterClosed is returned when flushing a closed writer
var ErrWriterClosed = errors.New("writer is closed")

type writeOp struct {
	delete  bool
	flushed chan struct{}
	key     string
	value   string
}

// Writer applies store writes on a single goroutine, strictly in the order they were queued
type Writer struct {
	done    chan struct{}
	errMu   sync.Mutex
	errs    []error
	mu      sync.Mutex
	closed  bool
	ops     chan writeOp
	store   ports.KeyValueWriter
	timeout time.Duration
}

// NewWriter starts the write loop over store
func NewWriter(store ports.KeyValueWriter, timeout time.Duration) *Writer {
	if timeout <= 0 {
		timeout = DefaultWriteTimeout
	}
	w := &Writer{
		done:    make(chan struct{}),
		ops:     make(chan writeOp, 64),
		store:   store,
		timeout: timeout,
	}
	go w.loop()
	return w
}

// Set queues a write of value under key
func (w *Writer) Set(key, value string) {
	w.enqueue(writeOp{key: key, value: value})
}

// Delete queues removal of key
func (w *Writer) Delete(key string) {
	w.enqueue(writeOp{key: key, delete: true})
}

func (w *Writer) enqueue(op writeOp) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		logging.Logger.Warn("Dropping write on closed writer", "key", op.key)
		return false
	}
	w.ops <- op
	return true
}

// Flush waits until every write queued before the call has been applied.
// It returns the write errors collected since the previous flush.
func (w *Writer) Flush(ctx context.Context) error {
	flushed := make(chan struct{})
	if !w.enqueue(writeOp{flushed: flushed}) {
		return ErrWriterClosed
	}

	select {
	case <-flushed:
	case <-ctx.Done():
		return ctx.Err()
	}

	w.errMu.Lock()
	defer w.errMu.Unlock()
	err := errors.Join(w.errs...)
	w.errs = nil
	return err
}

// Close drains pending writes and stops the loop
func (w *Writer) Close(ctx context.Context) error {
	err := w.Flush(ctx)
	if errors.Is(err, ErrWriterClosed) {
		return nil
	}

	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.ops)
	}
	w.mu.Unlock()

	select {
	case <-w.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return err
}

func (w *Writer) loop() {
	defer close(w.done)

	for op := range w.ops {
		if op.flushed != nil {
			close(op.flushed)
			continue
		}
		w.apply(op)
	}
}

func (w *Writer) apply(op writeOp) {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	var err error
	if op.delete {
		err = w.store.Delete(ctx, op.key)
	} else {
		err = w.store.Set(ctx, op.key, op.value)
	}
	if err == nil {
		logging.Logger.Debug("Store write applied", "key", op.key, "delete", op.delete)
		return
	}

	logging.Logger.Error("Store write failed", "key", op.key, "error", err)
	w.errMu.Lock()
	w.errs = append(w.errs, err)
	w.errMu.Unlock()
}
