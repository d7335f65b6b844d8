package project

import (
	"errors"
	"time"

	"github.com/burdych/portfolio_server/internal/listing"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"
)

var searchFields = []string{"title", "description"}

type ProjectEndpoints struct {
	service *ProjectService
}

func NewEndpoints(service *ProjectService) *ProjectEndpoints {
	return &ProjectEndpoints{service: service}
}

func fieldValue(p *Project, field string) (string, bool) {
	switch field {
	case "title":
		return p.Title, true
	case "description":
		return p.Description, true
	case "featured":
		if p.Featured {
			return "true", true
		}
		return "false", true
	case "createdAt":
		return p.CreatedAt.Format(time.RFC3339), true
	}
	return "", false
}

// List handles GET /projects with optional q/sort/dir filtering
func (pe *ProjectEndpoints) List(ctx *fasthttp.RequestCtx) {
	projects, err := pe.service.List()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list projects")
		ctx.Error("Failed to list projects", fasthttp.StatusInternalServerError)
		return
	}

	query := string(ctx.QueryArgs().Peek("q"))
	sortKey := string(ctx.QueryArgs().Peek("sort"))
	direction := listing.Ascending
	if string(ctx.QueryArgs().Peek("dir")) == string(listing.Descending) {
		direction = listing.Descending
	}
	projects = listing.Project(projects, query, searchFields, sortKey, direction, fieldValue)

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	json.NewEncoder(ctx).Encode(projects)
}

// Get handles GET /projects/{id}
func (pe *ProjectEndpoints) Get(ctx *fasthttp.RequestCtx) {
	id, ok := ctx.UserValue("projectID").(string)
	if !ok || id == "" {
		ctx.Error("Project ID is required", fasthttp.StatusBadRequest)
		return
	}

	p, err := pe.service.Get(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			ctx.Error("Project not found", fasthttp.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("projectId", id).Msg("Failed to get project")
		ctx.Error("Failed to get project", fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	json.NewEncoder(ctx).Encode(p)
}

// Create handles POST /projects
func (pe *ProjectEndpoints) Create(ctx *fasthttp.RequestCtx) {
	var in Input
	if err := json.Unmarshal(ctx.PostBody(), &in); err != nil {
		ctx.Error("Invalid request body", fasthttp.StatusBadRequest)
		return
	}

	p, err := pe.service.Create(&in)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			ctx.Error(err.Error(), fasthttp.StatusBadRequest)
			return
		}
		log.Error().Err(err).Msg("Failed to create project")
		ctx.Error("Failed to create project", fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusCreated)
	json.NewEncoder(ctx).Encode(p)
}

// Update handles PUT /projects/{id}
func (pe *ProjectEndpoints) Update(ctx *fasthttp.RequestCtx) {
	id, ok := ctx.UserValue("projectID").(string)
	if !ok || id == "" {
		ctx.Error("Project ID is required", fasthttp.StatusBadRequest)
		return
	}

	var in Input
	if err := json.Unmarshal(ctx.PostBody(), &in); err != nil {
		ctx.Error("Invalid request body", fasthttp.StatusBadRequest)
		return
	}

	p, err := pe.service.Update(id, &in)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			ctx.Error(err.Error(), fasthttp.StatusBadRequest)
		case errors.Is(err, ErrNotFound):
			ctx.Error("Project not found", fasthttp.StatusNotFound)
		default:
			log.Error().Err(err).Str("projectId", id).Msg("Failed to update project")
			ctx.Error("Failed to update project", fasthttp.StatusInternalServerError)
		}
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	json.NewEncoder(ctx).Encode(p)
}

// Delete handles DELETE /projects/{id}
func (pe *ProjectEndpoints) Delete(ctx *fasthttp.RequestCtx) {
	id, ok := ctx.UserValue("projectID").(string)
	if !ok || id == "" {
		ctx.Error("Project ID is required", fasthttp.StatusBadRequest)
		return
	}

	if err := pe.service.Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			ctx.Error("Project not found", fasthttp.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("projectId", id).Msg("Failed to delete project")
		ctx.Error("Failed to delete project", fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	json.NewEncoder(ctx).Encode(map[string]bool{"success": true})
}
