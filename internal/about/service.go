package about

import (
	"time"

	"github.com/google/uuid"
)

type Notifier interface {
	NotifyContentChanged(resource, action, id string)
}

type AboutService struct {
	repo     AboutRepository
	notifier Notifier
}

func NewAboutService(repo AboutRepository, notifier Notifier) *AboutService {
	return &AboutService{repo: repo, notifier: notifier}
}

// Get returns the profile with its socials embedded.
func (s *AboutService) Get() (*About, error) {
	a, err := s.repo.Get()
	if err != nil {
		return nil, err
	}

	socials, err := s.repo.GetSocials(a.ID)
	if err != nil {
		return nil, err
	}
	if socials == nil {
		socials = []*Social{}
	}
	a.Socials = socials
	return a, nil
}

// Update replaces the profile fields. The profile is created on first
// update when none exists yet.
func (s *AboutService) Update(in *Input) (*About, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	a, err := s.repo.Get()
	if err == ErrNotFound {
		a = &About{
			ID:        uuid.NewString(),
			CreatedAt: now,
		}
		s.apply(a, in, now)
		if err := s.repo.Create(a); err != nil {
			return nil, err
		}
		s.notify("created", a.ID)
		return s.Get()
	}
	if err != nil {
		return nil, err
	}

	s.apply(a, in, now)
	if err := s.repo.Update(a); err != nil {
		return nil, err
	}
	s.notify("updated", a.ID)
	return s.Get()
}

func (s *AboutService) apply(a *About, in *Input, now time.Time) {
	a.Name = in.Name
	a.Title = in.Title
	a.Bio = in.Bio
	a.Avatar = optional(in.Avatar)
	a.Location = in.Location
	a.Email = in.Email
	a.Phone = optional(in.Phone)
	a.CVURL = optional(in.CVURL)
	a.UpdatedAt = now
}

func (s *AboutService) AddSocial(in *SocialInput) (*Social, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.Get()
	if err != nil {
		return nil, err
	}

	social := &Social{
		ID:      uuid.NewString(),
		AboutID: a.ID,
		Name:    in.Name,
		URL:     in.URL,
		Icon:    in.Icon,
	}
	if err := s.repo.AddSocial(social); err != nil {
		return nil, err
	}
	s.notify("updated", a.ID)
	return social, nil
}

func (s *AboutService) DeleteSocial(id string) error {
	if err := s.repo.DeleteSocial(id); err != nil {
		return err
	}
	s.notify("updated", id)
	return nil
}

func (s *AboutService) notify(action, id string) {
	if s.notifier != nil {
		s.notifier.NotifyContentChanged("about", action, id)
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
