package middleware

import (
	"github.com/burdych/portfolio_server/internal/admin"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"
)

type AuthMiddleware struct {
	adminService *admin.AdminService
}

func NewAuthMiddleware(adminService *admin.AdminService) *AuthMiddleware {
	return &AuthMiddleware{
		adminService: adminService,
	}
}

func (am *AuthMiddleware) RequireAuth(handler fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		authenticatedAdmin, err := am.adminService.ValidateJWTFromRequest(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Authentication failed")
			ctx.Error("Unauthorized", fasthttp.StatusUnauthorized)
			return
		}

		ctx.SetUserValue("admin", authenticatedAdmin)

		handler(ctx)
	}
}
