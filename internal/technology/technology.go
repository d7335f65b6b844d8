package technology

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("technology not found")
)

var validCategories = map[string]bool{
	"frontend": true,
	"backend":  true,
	"tools":    true,
	"other":    true,
}

type Technology struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon"`
	Category    string    `json:"category"`
	Proficiency int       `json:"proficiency"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Input struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency"`
}

func (in *Input) validate() error {
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.Icon == "" {
		return fmt.Errorf("%w: icon is required", ErrValidation)
	}
	if !validCategories[in.Category] {
		return fmt.Errorf("%w: category must be one of frontend, backend, tools, other", ErrValidation)
	}
	if in.Proficiency < 1 || in.Proficiency > 100 {
		return fmt.Errorf("%w: proficiency must be between 1 and 100", ErrValidation)
	}
	return nil
}

type TechnologyRepository interface {
	Create(t *Technology) error
	GetByID(id string) (*Technology, error)
	GetAll() ([]*Technology, error)
	Update(t *Technology) error
	Delete(id string) error
}
