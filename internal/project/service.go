package project

import (
	"time"

	"github.com/google/uuid"
)

// Notifier is told about content mutations so connected admin sessions can
// refresh their views.
type Notifier interface {
	NotifyContentChanged(resource, action, id string)
}

type ProjectService struct {
	repo     ProjectRepository
	notifier Notifier
}

func NewProjectService(repo ProjectRepository, notifier Notifier) *ProjectService {
	return &ProjectService{repo: repo, notifier: notifier}
}

func (s *ProjectService) List() ([]*Project, error) {
	return s.repo.GetAll()
}

func (s *ProjectService) Get(id string) (*Project, error) {
	return s.repo.GetByID(id)
}

func (s *ProjectService) Create(in *Input) (*Project, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &Project{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Description:  in.Description,
		Image:        in.Image,
		Technologies: in.Technologies,
		LiveURL:      optional(in.LiveURL),
		GithubURL:    optional(in.GithubURL),
		Featured:     in.Featured,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if p.Image == "" {
		p.Image = placeholderImage
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}

	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	s.notify("created", p.ID)
	return p, nil
}

func (s *ProjectService) Update(id string, in *Input) (*Project, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	p.Title = in.Title
	p.Description = in.Description
	p.Image = in.Image
	if p.Image == "" {
		p.Image = placeholderImage
	}
	p.Technologies = in.Technologies
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	p.LiveURL = optional(in.LiveURL)
	p.GithubURL = optional(in.GithubURL)
	p.Featured = in.Featured
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(p); err != nil {
		return nil, err
	}
	s.notify("updated", p.ID)
	return p, nil
}

func (s *ProjectService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.notify("deleted", id)
	return nil
}

func (s *ProjectService) notify(action, id string) {
	if s.notifier != nil {
		s.notifier.NotifyContentChanged("projects", action, id)
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
