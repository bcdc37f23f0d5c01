/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package rekeystore

import (
	"fmt"
	"sync"

	"github.com/suparena/rekeystore/datastore"
)

// RepositoryManager is a thread-safe collection of named Repository
// instances, one per table or bounded context (for example, "library" or
// "orders").
type RepositoryManager struct {
	mu    sync.RWMutex
	repos map[string]datastore.Repository
}

// NewRepositoryManager creates an empty RepositoryManager.
func NewRepositoryManager() *RepositoryManager {
	return &RepositoryManager{
		repos: make(map[string]datastore.Repository),
	}
}

// Register stores the provided Repository under the given key.
func Register(m *RepositoryManager, key string, repo datastore.Repository) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.repos[key]; exists {
		return fmt.Errorf("repository with key %q already registered", key)
	}
	m.repos[key] = repo
	return nil
}

// Get retrieves the Repository associated with the given key.
func Get(m *RepositoryManager, key string) (datastore.Repository, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	repo, exists := m.repos[key]
	if !exists {
		return nil, fmt.Errorf("repository with key %q not found", key)
	}
	return repo, nil
}

// Keys returns all registered repository keys.
func (m *RepositoryManager) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.repos))
	for k := range m.repos {
		keys = append(keys, k)
	}
	return keys
}

// Remove deletes a repository by key.
func (m *RepositoryManager) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.repos[key]; !exists {
		return fmt.Errorf("repository with key %q not found", key)
	}
	delete(m.repos, key)
	return nil
}
