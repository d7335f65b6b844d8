package technology

import (
	"time"

	"github.com/google/uuid"
)

type Notifier interface {
	NotifyContentChanged(resource, action, id string)
}

type TechnologyService struct {
	repo     TechnologyRepository
	notifier Notifier
}

func NewTechnologyService(repo TechnologyRepository, notifier Notifier) *TechnologyService {
	return &TechnologyService{repo: repo, notifier: notifier}
}

func (s *TechnologyService) List() ([]*Technology, error) {
	return s.repo.GetAll()
}

func (s *TechnologyService) Get(id string) (*Technology, error) {
	return s.repo.GetByID(id)
}

func (s *TechnologyService) Create(in *Input) (*Technology, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t := &Technology{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Icon:        in.Icon,
		Category:    in.Category,
		Proficiency: in.Proficiency,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(t); err != nil {
		return nil, err
	}
	s.notify("created", t.ID)
	return t, nil
}

func (s *TechnologyService) Update(id string, in *Input) (*Technology, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	t, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	t.Name = in.Name
	t.Icon = in.Icon
	t.Category = in.Category
	t.Proficiency = in.Proficiency
	t.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(t); err != nil {
		return nil, err
	}
	s.notify("updated", t.ID)
	return t, nil
}

func (s *TechnologyService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.notify("deleted", id)
	return nil
}

func (s *TechnologyService) notify(action, id string) {
	if s.notifier != nil {
		s.notifier.NotifyContentChanged("technologies", action, id)
	}
}
