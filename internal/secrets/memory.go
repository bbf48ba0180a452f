package secrets

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// MemoryKeychain is an in-memory Keychain implementation for testing.
type MemoryKeychain struct {
	mu      sync.RWMutex
	entries map[memKey]memEntry
}

type memKey struct {
	account string
	service string
}

type memEntry struct {
	value      string
	createdAt  time.Time
	modifiedAt time.Time
}

// NewMemoryKeychain creates a new in-memory credential store.
func NewMemoryKeychain() *MemoryKeychain {
	return &MemoryKeychain{entries: make(map[memKey]memEntry)}
}

func (m *MemoryKeychain) Get(account, service string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[memKey{account, service}]
	// The darwin password helper cannot distinguish an empty secret from a
	// missing one; the fake reports empty values the same way.
	if !ok || e.value == "" {
		return "", fmt.Errorf("%w: %s/%s", ErrNotFound, account, service)
	}
	return e.value, nil
}

func (m *MemoryKeychain) Set(account, service, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	key := memKey{account, service}
	e, ok := m.entries[key]
	if !ok {
		e = memEntry{createdAt: now}
	}
	e.value = value
	e.modifiedAt = now
	m.entries[key] = e
	return nil
}

func (m *MemoryKeychain) Delete(account, service string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := memKey{account, service}
	if _, ok := m.entries[key]; !ok {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, account, service)
	}
	delete(m.entries, key)
	return nil
}

func (m *MemoryKeychain) Entries(account string) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entries := make([]Entry, 0, len(m.entries))
	for k, e := range m.entries {
		if k.account != account {
			continue
		}
		entries = append(entries, Entry{
			Service:    k.service,
			Account:    k.account,
			CreatedAt:  e.createdAt,
			ModifiedAt: e.modifiedAt,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Service < entries[j].Service
	})
	return entries, nil
}
