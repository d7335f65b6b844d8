package admin

import (
	"sync"
)

// MemoryRepository keeps admins in memory. Used in tests.
type MemoryRepository struct {
	mu     sync.RWMutex
	admins map[string]*Admin
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{admins: make(map[string]*Admin)}
}

func (r *MemoryRepository) Create(a *Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *a
	r.admins[a.ID] = &clone
	return nil
}

func (r *MemoryRepository) GetByEmail(email string) (*Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.admins {
		if a.Email == email {
			clone := *a
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRepository) GetByID(id string) (*Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.admins[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *MemoryRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.admins), nil
}

var _ AdminRepository = (*MemoryRepository)(nil)
