package about

import (
	"errors"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"
)

type AboutEndpoints struct {
	service *AboutService
}

func NewEndpoints(service *AboutService) *AboutEndpoints {
	return &AboutEndpoints{service: service}
}

// Get handles GET /about
func (ae *AboutEndpoints) Get(ctx *fasthttp.RequestCtx) {
	a, err := ae.service.Get()
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			ctx.Error("About profile not found", fasthttp.StatusNotFound)
			return
		}
		log.Error().Err(err).Msg("Failed to get about profile")
		ctx.Error("Failed to get about profile", fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	json.NewEncoder(ctx).Encode(a)
}

// Update handles PUT /about
func (ae *AboutEndpoints) Update(ctx *fasthttp.RequestCtx) {
	var in Input
	if err := json.Unmarshal(ctx.PostBody(), &in); err != nil {
		ctx.Error("Invalid request body", fasthttp.StatusBadRequest)
		return
	}

	a, err := ae.service.Update(&in)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			ctx.Error(err.Error(), fasthttp.StatusBadRequest)
			return
		}
		log.Error().Err(err).Msg("Failed to update about profile")
		ctx.Error("Failed to update about profile", fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	json.NewEncoder(ctx).Encode(a)
}

// AddSocial handles POST /about/socials
func (ae *AboutEndpoints) AddSocial(ctx *fasthttp.RequestCtx) {
	var in SocialInput
	if err := json.Unmarshal(ctx.PostBody(), &in); err != nil {
		ctx.Error("Invalid request body", fasthttp.StatusBadRequest)
		return
	}

	social, err := ae.service.AddSocial(&in)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			ctx.Error(err.Error(), fasthttp.StatusBadRequest)
		case errors.Is(err, ErrNotFound):
			ctx.Error("About profile not found", fasthttp.StatusNotFound)
		default:
			log.Error().Err(err).Msg("Failed to add social link")
			ctx.Error("Failed to add social link", fasthttp.StatusInternalServerError)
		}
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusCreated)
	json.NewEncoder(ctx).Encode(social)
}

// DeleteSocial handles DELETE /about/socials/{id}
func (ae *AboutEndpoints) DeleteSocial(ctx *fasthttp.RequestCtx) {
	id, ok := ctx.UserValue("socialID").(string)
	if !ok || id == "" {
		ctx.Error("Social ID is required", fasthttp.StatusBadRequest)
		return
	}

	if err := ae.service.DeleteSocial(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			ctx.Error("Social link not found", fasthttp.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("socialId", id).Msg("Failed to delete social link")
		ctx.Error("Failed to delete social link", fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	json.NewEncoder(ctx).Encode(map[string]bool{"success": true})
}
