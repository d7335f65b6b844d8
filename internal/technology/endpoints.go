package technology

import (
	"errors"
	"strconv"

	"github.com/burdych/portfolio_server/internal/listing"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"
)

var searchFields = []string{"name", "category"}

type TechnologyEndpoints struct {
	service *TechnologyService
}

func NewEndpoints(service *TechnologyService) *TechnologyEndpoints {
	return &TechnologyEndpoints{service: service}
}

func fieldValue(t *Technology, field string) (string, bool) {
	switch field {
	case "name":
		return t.Name, true
	case "category":
		return t.Category, true
	case "proficiency":
		// zero padded so lexicographic order matches numeric order
		return fmt3(t.Proficiency), true
	}
	return "", false
}

func fmt3(n int) string {
	s := strconv.Itoa(n)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}

// List handles GET /technologies with optional q/sort/dir filtering
func (te *TechnologyEndpoints) List(ctx *fasthttp.RequestCtx) {
	technologies, err := te.service.List()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list technologies")
		ctx.Error("Failed to list technologies", fasthttp.StatusInternalServerError)
		return
	}

	query := string(ctx.QueryArgs().Peek("q"))
	sortKey := string(ctx.QueryArgs().Peek("sort"))
	direction := listing.Ascending
	if string(ctx.QueryArgs().Peek("dir")) == string(listing.Descending) {
		direction = listing.Descending
	}
	technologies = listing.Project(technologies, query, searchFields, sortKey, direction, fieldValue)

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	json.NewEncoder(ctx).Encode(technologies)
}

// Get handles GET /technologies/{id}
func (te *TechnologyEndpoints) Get(ctx *fasthttp.RequestCtx) {
	id, ok := ctx.UserValue("technologyID").(string)
	if !ok || id == "" {
		ctx.Error("Technology ID is required", fasthttp.StatusBadRequest)
		return
	}

	t, err := te.service.Get(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			ctx.Error("Technology not found", fasthttp.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("technologyId", id).Msg("Failed to get technology")
		ctx.Error("Failed to get technology", fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	json.NewEncoder(ctx).Encode(t)
}

// Create handles POST /technologies
func (te *TechnologyEndpoints) Create(ctx *fasthttp.RequestCtx) {
	var in Input
	if err := json.Unmarshal(ctx.PostBody(), &in); err != nil {
		ctx.Error("Invalid request body", fasthttp.StatusBadRequest)
		return
	}

	t, err := te.service.Create(&in)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			ctx.Error(err.Error(), fasthttp.StatusBadRequest)
			return
		}
		log.Error().Err(err).Msg("Failed to create technology")
		ctx.Error("Failed to create technology", fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusCreated)
	json.NewEncoder(ctx).Encode(t)
}

// Update handles PUT /technologies/{id}
func (te *TechnologyEndpoints) Update(ctx *fasthttp.RequestCtx) {
	id, ok := ctx.UserValue("technologyID").(string)
	if !ok || id == "" {
		ctx.Error("Technology ID is required", fasthttp.StatusBadRequest)
		return
	}

	var in Input
	if err := json.Unmarshal(ctx.PostBody(), &in); err != nil {
		ctx.Error("Invalid request body", fasthttp.StatusBadRequest)
		return
	}

	t, err := te.service.Update(id, &in)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			ctx.Error(err.Error(), fasthttp.StatusBadRequest)
		case errors.Is(err, ErrNotFound):
			ctx.Error("Technology not found", fasthttp.StatusNotFound)
		default:
			log.Error().Err(err).Str("technologyId", id).Msg("Failed to update technology")
			ctx.Error("Failed to update technology", fasthttp.StatusInternalServerError)
		}
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	json.NewEncoder(ctx).Encode(t)
}

// Delete handles DELETE /technologies/{id}
func (te *TechnologyEndpoints) Delete(ctx *fasthttp.RequestCtx) {
	id, ok := ctx.UserValue("technologyID").(string)
	if !ok || id == "" {
		ctx.Error("Technology ID is required", fasthttp.StatusBadRequest)
		return
	}

	if err := te.service.Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			ctx.Error("Technology not found", fasthttp.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("technologyId", id).Msg("Failed to delete technology")
		ctx.Error("Failed to delete technology", fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	json.NewEncoder(ctx).Encode(map[string]bool{"success": true})
}
