package storage

import (
	"errors"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"
)

type Endpoints struct {
	service *Service
}

func NewEndpoints(service *Service) *Endpoints {
	return &Endpoints{service: service}
}

// PresignUpload handles POST /storage/presign
func (e *Endpoints) PresignUpload(ctx *fasthttp.RequestCtx) {
	var req PresignUploadRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.Error("Invalid request body", fasthttp.StatusBadRequest)
		return
	}

	credential, err := e.service.PresignUpload(ctx, &req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			ctx.Error(err.Error(), fasthttp.StatusBadRequest)
			return
		}
		log.Error().Err(err).Str("filename", req.Filename).Msg("Failed to presign upload")
		ctx.Error("Failed to presign upload", fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	json.NewEncoder(ctx).Encode(credential)
}

// RemoveObject handles DELETE /storage/objects/{key}
func (e *Endpoints) RemoveObject(ctx *fasthttp.RequestCtx) {
	objectKey, ok := ctx.UserValue("objectKey").(string)
	if !ok || objectKey == "" {
		ctx.Error("Object key is required", fasthttp.StatusBadRequest)
		return
	}

	// Best-effort and idempotent: failures are logged inside the service,
	// deleting a nonexistent key is not an error.
	e.service.RemoveObject(ctx, objectKey)

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	json.NewEncoder(ctx).Encode(map[string]bool{"success": true})
}

type viewRequest struct {
	URL string `json:"url"`
}

type viewResponse struct {
	PresignedURL string `json:"presignedUrl"`
}

// PresignView handles POST /storage/view
func (e *Endpoints) PresignView(ctx *fasthttp.RequestCtx) {
	var req viewRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.URL == "" {
		ctx.Error("Invalid request body", fasthttp.StatusBadRequest)
		return
	}

	presigned, err := e.service.PresignView(ctx, req.URL)
	if err != nil {
		log.Error().Err(err).Str("url", req.URL).Msg("Failed to presign view URL")
		ctx.Error("Failed to presign view URL", fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	json.NewEncoder(ctx).Encode(viewResponse{PresignedURL: presigned})
}

type viewBatchRequest struct {
	URLs []string `json:"urls"`
}

type viewBatchResponse struct {
	URLs []ViewURL `json:"urls"`
}

// PresignViewBatch handles POST /storage/view/batch
func (e *Endpoints) PresignViewBatch(ctx *fasthttp.RequestCtx) {
	var req viewBatchRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.Error("Invalid request body", fasthttp.StatusBadRequest)
		return
	}

	urls := e.service.PresignViewBatch(ctx, req.URLs)

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	json.NewEncoder(ctx).Encode(viewBatchResponse{URLs: urls})
}
