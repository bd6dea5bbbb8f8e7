// Package kvstore provides the durable key-value storage the vault
// persists its collection into: one serialized blob per key.
package kvstore

import (
	"context"
	"sync"
)

// Store is a durable key-value store for string blobs.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Memory is an in-memory Store for tests. The error hooks let tests
// exercise storage failure paths.
type Memory struct {
	mu     sync.Mutex
	data   map[string]string
	GetErr error
	SetErr error
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	m.data[key] = value
	return nil
}

func (m *Memory) Close() error { return nil }

// Seed writes a value directly, bypassing the error hooks.
func (m *Memory) Seed(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}
