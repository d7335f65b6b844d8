package experience

import (
	"errors"
	"time"

	"github.com/burdych/portfolio_server/internal/listing"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"
)

var searchFields = []string{"company", "role"}

type ExperienceEndpoints struct {
	service *ExperienceService
}

func NewEndpoints(service *ExperienceService) *ExperienceEndpoints {
	return &ExperienceEndpoints{service: service}
}

func fieldValue(e *Experience, field string) (string, bool) {
	switch field {
	case "company":
		return e.Company, true
	case "role":
		return e.Role, true
	case "period":
		return e.Period, true
	case "createdAt":
		return e.CreatedAt.Format(time.RFC3339), true
	}
	return "", false
}

// List handles GET /experiences with optional q/sort/dir filtering
func (ee *ExperienceEndpoints) List(ctx *fasthttp.RequestCtx) {
	experiences, err := ee.service.List()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list experiences")
		ctx.Error("Failed to list experiences", fasthttp.StatusInternalServerError)
		return
	}

	query := string(ctx.QueryArgs().Peek("q"))
	sortKey := string(ctx.QueryArgs().Peek("sort"))
	direction := listing.Ascending
	if string(ctx.QueryArgs().Peek("dir")) == string(listing.Descending) {
		direction = listing.Descending
	}
	experiences = listing.Project(experiences, query, searchFields, sortKey, direction, fieldValue)

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	json.NewEncoder(ctx).Encode(experiences)
}

// Get handles GET /experiences/{id}
func (ee *ExperienceEndpoints) Get(ctx *fasthttp.RequestCtx) {
	id, ok := ctx.UserValue("experienceID").(string)
	if !ok || id == "" {
		ctx.Error("Experience ID is required", fasthttp.StatusBadRequest)
		return
	}

	e, err := ee.service.Get(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			ctx.Error("Experience not found", fasthttp.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("experienceId", id).Msg("Failed to get experience")
		ctx.Error("Failed to get experience", fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	json.NewEncoder(ctx).Encode(e)
}

// Create handles POST /experiences
func (ee *ExperienceEndpoints) Create(ctx *fasthttp.RequestCtx) {
	var in Input
	if err := json.Unmarshal(ctx.PostBody(), &in); err != nil {
		ctx.Error("Invalid request body", fasthttp.StatusBadRequest)
		return
	}

	e, err := ee.service.Create(&in)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			ctx.Error(err.Error(), fasthttp.StatusBadRequest)
			return
		}
		log.Error().Err(err).Msg("Failed to create experience")
		ctx.Error("Failed to create experience", fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusCreated)
	json.NewEncoder(ctx).Encode(e)
}

// Update handles PUT /experiences/{id}
func (ee *ExperienceEndpoints) Update(ctx *fasthttp.RequestCtx) {
	id, ok := ctx.UserValue("experienceID").(string)
	if !ok || id == "" {
		ctx.Error("Experience ID is required", fasthttp.StatusBadRequest)
		return
	}

	var in Input
	if err := json.Unmarshal(ctx.PostBody(), &in); err != nil {
		ctx.Error("Invalid request body", fasthttp.StatusBadRequest)
		return
	}

	e, err := ee.service.Update(id, &in)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			ctx.Error(err.Error(), fasthttp.StatusBadRequest)
		case errors.Is(err, ErrNotFound):
			ctx.Error("Experience not found", fasthttp.StatusNotFound)
		default:
			log.Error().Err(err).Str("experienceId", id).Msg("Failed to update experience")
			ctx.Error("Failed to update experience", fasthttp.StatusInternalServerError)
		}
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	json.NewEncoder(ctx).Encode(e)
}

// Delete handles DELETE /experiences/{id}
func (ee *ExperienceEndpoints) Delete(ctx *fasthttp.RequestCtx) {
	id, ok := ctx.UserValue("experienceID").(string)
	if !ok || id == "" {
		ctx.Error("Experience ID is required", fasthttp.StatusBadRequest)
		return
	}

	if err := ee.service.Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			ctx.Error("Experience not found", fasthttp.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("experienceId", id).Msg("Failed to delete experience")
		ctx.Error("Failed to delete experience", fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	json.NewEncoder(ctx).Encode(map[string]bool{"success": true})
}
