package project

import "sort"

type MemoryRepository struct {
	projects map[string]*Project
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{projects: make(map[string]*Project)}
}

func (r *MemoryRepository) Create(p *Project) error {
	clone := *p
	r.projects[p.ID] = &clone
	return nil
}

func (r *MemoryRepository) GetByID(id string) (*Project, error) {
	p, exists := r.projects[id]
	if !exists {
		return nil, ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *MemoryRepository) GetAll() ([]*Project, error) {
	result := make([]*Project, 0, len(r.projects))
	for _, p := range r.projects {
		clone := *p
		result = append(result, &clone)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *MemoryRepository) Update(p *Project) error {
	if _, exists := r.projects[p.ID]; !exists {
		return ErrNotFound
	}
	clone := *p
	r.projects[p.ID] = &clone
	return nil
}

func (r *MemoryRepository) Delete(id string) error {
	if _, exists := r.projects[id]; !exists {
		return ErrNotFound
	}
	delete(r.projects, id)
	return nil
}

var _ ProjectRepository = (*MemoryRepository)(nil)
