package health

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
)

type HealthEndpoints struct {
	version   string
	startedAt time.Time
}

func NewEndpoints(version string) *HealthEndpoints {
	return &HealthEndpoints{
		version:   version,
		startedAt: time.Now(),
	}
}

type HealthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
}

// Health handles GET /health, the public liveness endpoint
func (h *HealthEndpoints) Health(ctx *fasthttp.RequestCtx) {
	response := HealthResponse{
		Status:        "ok",
		Version:       h.version,
		UptimeSeconds: int64(time.Since(h.startedAt).Seconds()),
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)

	responseJSON, err := json.Marshal(response)
	if err != nil {
		ctx.Error("Internal Server Error", fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetBody(responseJSON)
}
