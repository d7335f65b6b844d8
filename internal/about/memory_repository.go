package about

import (
	"sync"
)

// MemoryRepository keeps the profile and socials in memory. Used in tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	profile *About
	socials map[string]*Social
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{socials: make(map[string]*Social)}
}

func (r *MemoryRepository) Get() (*About, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.profile == nil {
		return nil, ErrNotFound
	}
	clone := *r.profile
	clone.Socials = nil
	return &clone, nil
}

func (r *MemoryRepository) Create(a *About) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *a
	clone.Socials = nil
	r.profile = &clone
	return nil
}

func (r *MemoryRepository) Update(a *About) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.profile == nil || r.profile.ID != a.ID {
		return ErrNotFound
	}
	clone := *a
	clone.Socials = nil
	r.profile = &clone
	return nil
}

func (r *MemoryRepository) GetSocials(aboutID string) ([]*Social, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var socials []*Social
	for _, s := range r.socials {
		if s.AboutID == aboutID {
			clone := *s
			socials = append(socials, &clone)
		}
	}
	return socials, nil
}

func (r *MemoryRepository) AddSocial(s *Social) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *s
	r.socials[s.ID] = &clone
	return nil
}

func (r *MemoryRepository) DeleteSocial(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.socials[id]; !ok {
		return ErrNotFound
	}
	delete(r.socials, id)
	return nil
}

var _ AboutRepository = (*MemoryRepository)(nil)
