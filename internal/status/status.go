package status

import (
	"context"
	"database/sql"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"
)

const checkTimeout = 5 * time.Second

type ClientCounter interface {
	GetStats() int
}

type StorageChecker interface {
	Check(ctx context.Context) error
}

type StatusEndpoints struct {
	version string
	db      *sql.DB
	counter ClientCounter
	storage StorageChecker
}

func NewEndpoints(version string, db *sql.DB, counter ClientCounter, storage StorageChecker) *StatusEndpoints {
	return &StatusEndpoints{
		version: version,
		db:      db,
		counter: counter,
		storage: storage,
	}
}

type StatusResponse struct {
	Health           string `json:"health"`
	Version          string `json:"version"`
	Database         string `json:"database"`
	Storage          string `json:"storage"`
	ConnectedClients int    `json:"connectedClients"`
}

func (se *StatusEndpoints) Status(ctx *fasthttp.RequestCtx) {
	response := StatusResponse{
		Health:   "OK",
		Version:  se.version,
		Database: "OK",
		Storage:  "OK",
	}

	if err := se.db.Ping(); err != nil {
		log.Warn().Err(err).Msg("Database ping failed")
		response.Health = "DEGRADED"
		response.Database = "UNREACHABLE"
	}

	if se.storage != nil {
		checkCtx, cancel := context.WithTimeout(context.Background(), checkTimeout)
		defer cancel()
		if err := se.storage.Check(checkCtx); err != nil {
			log.Warn().Err(err).Msg("Storage check failed")
			response.Health = "DEGRADED"
			response.Storage = "UNREACHABLE"
		}
	}

	if se.counter != nil {
		response.ConnectedClients = se.counter.GetStats()
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
