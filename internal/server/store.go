package server

import (
	"sync"

	"github.com/maprojet/compte-client/internal/models"
)

// Store keeps accounts in memory for the reference service. IDs are
// assigned sequentially; list order is insertion order.
type Store struct {
	mu       sync.Mutex
	nextID   int64
	order    []int64
	accounts map[int64]models.Account
}

// NewStore initializes an empty store.
func NewStore() *Store {
	return &Store{
		nextID:   1,
		accounts: make(map[int64]models.Account),
	}
}

// List returns all accounts in insertion order.
func (s *Store) List() []models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Account, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.accounts[id])
	}
	return out
}

// Get returns the account stored under id.
func (s *Store) Get(id int64) (models.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	return a, ok
}

// Create assigns the next id and stores the account.
func (s *Store) Create(account models.Account) models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	account.ID = &id
	s.accounts[id] = account
	s.order = append(s.order, id)
	return account
}

// Update replaces the account under id, keeping the id authoritative over
// whatever the payload carried.
func (s *Store) Update(id int64, account models.Account) (models.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[id]; !ok {
		return models.Account{}, false
	}
	account.ID = &id
	s.accounts[id] = account
	return account, true
}

// Delete removes the account under id.
func (s *Store) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[id]; !ok {
		return false
	}
	delete(s.accounts, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}
