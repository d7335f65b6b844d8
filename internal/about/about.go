package about

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"time"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("about profile not found")
)

// About is the singleton profile shown on the landing page. Socials are
// embedded when reading the profile.
type About struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Bio       string    `json:"bio"`
	Avatar    *string   `json:"avatar"`
	Location  string    `json:"location"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	CVURL     *string   `json:"cvUrl"`
	Socials   []*Social `json:"socials"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Social struct {
	ID      string `json:"id"`
	AboutID string `json:"aboutId"`
	Name    string `json:"name"`
	URL     string `json:"url"`
	Icon    string `json:"icon"`
}

type Input struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`
	Location string `json:"location"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	CVURL    string `json:"cvUrl"`
}

func (in *Input) validate() error {
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.Bio == "" {
		return fmt.Errorf("%w: bio is required", ErrValidation)
	}
	if in.Location == "" {
		return fmt.Errorf("%w: location is required", ErrValidation)
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return fmt.Errorf("%w: email is invalid", ErrValidation)
	}
	return nil
}

type SocialInput struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

func (in *SocialInput) validate() error {
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	parsed, err := url.Parse(in.URL)
	if err != nil || parsed.Scheme == "" || (parsed.Host == "" && parsed.Opaque == "") {
		return fmt.Errorf("%w: url is invalid", ErrValidation)
	}
	if in.Icon == "" {
		return fmt.Errorf("%w: icon is required", ErrValidation)
	}
	return nil
}

type AboutRepository interface {
	// Get returns the profile without socials, ErrNotFound when none exists.
	Get() (*About, error)
	Create(a *About) error
	Update(a *About) error

	GetSocials(aboutID string) ([]*Social, error)
	AddSocial(s *Social) error
	DeleteSocial(id string) error
}
