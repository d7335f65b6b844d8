package experience

import (
	"time"

	"github.com/google/uuid"
)

type Notifier interface {
	NotifyContentChanged(resource, action, id string)
}

type ExperienceService struct {
	repo     ExperienceRepository
	notifier Notifier
}

func NewExperienceService(repo ExperienceRepository, notifier Notifier) *ExperienceService {
	return &ExperienceService{repo: repo, notifier: notifier}
}

func (s *ExperienceService) List() ([]*Experience, error) {
	return s.repo.GetAll()
}

func (s *ExperienceService) Get(id string) (*Experience, error) {
	return s.repo.GetByID(id)
}

func (s *ExperienceService) Create(in *Input) (*Experience, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	e := &Experience{
		ID:           uuid.NewString(),
		Company:      in.Company,
		Role:         in.Role,
		Period:       in.Period,
		Description:  in.Description,
		Technologies: in.Technologies,
		Logo:         optional(in.Logo),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if e.Technologies == nil {
		e.Technologies = []string{}
	}

	if err := s.repo.Create(e); err != nil {
		return nil, err
	}
	s.notify("created", e.ID)
	return e, nil
}

func (s *ExperienceService) Update(id string, in *Input) (*Experience, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	e, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	e.Company = in.Company
	e.Role = in.Role
	e.Period = in.Period
	e.Description = in.Description
	e.Technologies = in.Technologies
	if e.Technologies == nil {
		e.Technologies = []string{}
	}
	e.Logo = optional(in.Logo)
	e.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(e); err != nil {
		return nil, err
	}
	s.notify("updated", e.ID)
	return e, nil
}

func (s *ExperienceService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.notify("deleted", id)
	return nil
}

func (s *ExperienceService) notify(action, id string) {
	if s.notifier != nil {
		s.notifier.NotifyContentChanged("experiences", action, id)
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
