package technology

import (
	"sort"
	"sync"
)

// MemoryRepository keeps technologies in memory. Used in tests.
type MemoryRepository struct {
	mu           sync.RWMutex
	technologies map[string]*Technology
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{technologies: make(map[string]*Technology)}
}

func (r *MemoryRepository) Create(t *Technology) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *t
	r.technologies[t.ID] = &clone
	return nil
}

func (r *MemoryRepository) GetByID(id string) (*Technology, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.technologies[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *MemoryRepository) GetAll() ([]*Technology, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	technologies := make([]*Technology, 0, len(r.technologies))
	for _, t := range r.technologies {
		clone := *t
		technologies = append(technologies, &clone)
	}
	sort.Slice(technologies, func(i, j int) bool {
		return technologies[i].Proficiency > technologies[j].Proficiency
	})
	return technologies, nil
}

func (r *MemoryRepository) Update(t *Technology) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.technologies[t.ID]; !ok {
		return ErrNotFound
	}
	clone := *t
	r.technologies[t.ID] = &clone
	return nil
}

func (r *MemoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.technologies[id]; !ok {
		return ErrNotFound
	}
	delete(r.technologies, id)
	return nil
}

var _ TechnologyRepository = (*MemoryRepository)(nil)
