package experience

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("experience not found")
)

type Experience struct {
	ID           string    `json:"id"`
	Company      string    `json:"company"`
	Role         string    `json:"role"`
	Period       string    `json:"period"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	Logo         *string   `json:"logo"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Input struct {
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	Period       string   `json:"period"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Logo         string   `json:"logo"`
}

func (in *Input) validate() error {
	if in.Company == "" {
		return fmt.Errorf("%w: company is required", ErrValidation)
	}
	if in.Role == "" {
		return fmt.Errorf("%w: role is required", ErrValidation)
	}
	if in.Period == "" {
		return fmt.Errorf("%w: period is required", ErrValidation)
	}
	if in.Description == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	return nil
}

type ExperienceRepository interface {
	Create(e *Experience) error
	GetByID(id string) (*Experience, error)
	GetAll() ([]*Experience, error)
	Update(e *Experience) error
	Delete(id string) error
}
