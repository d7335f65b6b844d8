package project

import (
	"errors"
	"fmt"
	"time"
)

const placeholderImage = "/projects/placeholder.jpg"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("project not found")
)

type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	Technologies []string  `json:"technologies"`
	LiveURL      *string   `json:"liveUrl"`
	GithubURL    *string   `json:"githubUrl"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Input is the mutable subset of a project accepted from the admin panel.
type Input struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	LiveURL      string   `json:"liveUrl"`
	GithubURL    string   `json:"githubUrl"`
	Featured     bool     `json:"featured"`
}

func (in *Input) validate() error {
	if in.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.Description == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	return nil
}

type ProjectRepository interface {
	Create(p *Project) error
	GetByID(id string) (*Project, error)
	GetAll() ([]*Project, error)
	Update(p *Project) error
	Delete(id string) error
}
