package admin

import (
	"errors"

	"github.com/goccy/go-json"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"
)

type AdminEndpoints struct {
	service *AdminService
}

func NewEndpoints(service *AdminService) *AdminEndpoints {
	return &AdminEndpoints{service: service}
}

// Login handles POST /auth/login
func (ae *AdminEndpoints) Login(ctx *fasthttp.RequestCtx) {
	var req LoginRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.Error("Invalid request body", fasthttp.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		ctx.Error("Email and password are required", fasthttp.StatusBadRequest)
		return
	}

	token, expiresAt, err := ae.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			ctx.Error("Invalid credentials", fasthttp.StatusUnauthorized)
			return
		}
		log.Error().Err(err).Msg("Login failed")
		ctx.Error("Internal server error", fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	json.NewEncoder(ctx).Encode(LoginResponse{Token: token, ExpiresAt: expiresAt})
}

// JWKS handles GET /.well-known/jwks.json so clients can verify issued tokens
func (ae *AdminEndpoints) JWKS(ctx *fasthttp.RequestCtx) {
	key, err := jwk.Import(ae.service.PublicKey())
	if err != nil {
		log.Error().Err(err).Msg("Failed to build JWK from public key")
		ctx.Error("Internal server error", fasthttp.StatusInternalServerError)
		return
	}

	if err := key.Set(jwk.KeyIDKey, "portfolio-admin"); err == nil {
		key.Set(jwk.AlgorithmKey, jwa.RS256())
		key.Set(jwk.KeyUsageKey, "sig")
	}

	set := jwk.NewSet()
	if err := set.AddKey(key); err != nil {
		log.Error().Err(err).Msg("Failed to assemble JWK set")
		ctx.Error("Internal server error", fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	json.NewEncoder(ctx).Encode(set)
}
