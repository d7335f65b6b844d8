package experience

import (
	"sort"
	"sync"
)

// MemoryRepository keeps experiences in memory. Used in tests.
type MemoryRepository struct {
	mu          sync.RWMutex
	experiences map[string]*Experience
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{experiences: make(map[string]*Experience)}
}

func (r *MemoryRepository) Create(e *Experience) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *e
	r.experiences[e.ID] = &clone
	return nil
}

func (r *MemoryRepository) GetByID(id string) (*Experience, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.experiences[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *MemoryRepository) GetAll() ([]*Experience, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	experiences := make([]*Experience, 0, len(r.experiences))
	for _, e := range r.experiences {
		clone := *e
		experiences = append(experiences, &clone)
	}
	sort.Slice(experiences, func(i, j int) bool {
		return experiences[i].CreatedAt.After(experiences[j].CreatedAt)
	})
	return experiences, nil
}

func (r *MemoryRepository) Update(e *Experience) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.experiences[e.ID]; !ok {
		return ErrNotFound
	}
	clone := *e
	r.experiences[e.ID] = &clone
	return nil
}

func (r *MemoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.experiences[id]; !ok {
		return ErrNotFound
	}
	delete(r.experiences, id)
	return nil
}

var _ ExperienceRepository = (*MemoryRepository)(nil)
