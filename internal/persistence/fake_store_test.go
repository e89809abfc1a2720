package persistence

import (
	"context"
	"errors"
	"sync"
)

// fakeStore is an in-memory ports.KeyValueStore that records every operation
type fakeStore struct {
	failKeys map[string]error
	log      []string
	mu       sync.Mutex
	values   map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: make(map[string]string), failKeys: make(map[string]error)}
}

func (f *fakeStore) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failKeys[key]; ok {
		return "", false, err
	}
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeStore) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failKeys[key]; ok {
		return err
	}
	f.values[key] = value
	f.log = append(f.log, "set "+key+"="+value)
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failKeys[key]; ok {
		return err
	}
	delete(f.values, key)
	f.log = append(f.log, "delete "+key)
	return nil
}

func (f *fakeStore) Close() error { return nil }

func (f *fakeStore) ops() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.log...)
}

func (f *fakeStore) value(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok
}

var errDiskFull = errors.New("disk full")
