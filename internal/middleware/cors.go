package middleware

import (
	"regexp"

	"github.com/valyala/fasthttp"
)

// localhost origins match any port so the admin frontend dev server works
// without per-port configuration.
var localhostOrigin = regexp.MustCompile(`^https?://localhost:\d+$`)

type CORSMiddleware struct {
	origins  map[string]bool
	allowAll bool
}

func NewCORSMiddleware(allowedOrigins []string) *CORSMiddleware {
	cm := &CORSMiddleware{origins: make(map[string]bool, len(allowedOrigins))}
	if len(allowedOrigins) == 0 {
		cm.allowAll = true
		return cm
	}
	for _, origin := range allowedOrigins {
		if origin == "*" {
			cm.allowAll = true
			continue
		}
		cm.origins[origin] = true
	}
	return cm
}

func (cm *CORSMiddleware) Handle(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		origin := string(ctx.Request.Header.Peek("Origin"))

		if cm.isOriginAllowed(origin) {
			ctx.Response.Header.Set("Access-Control-Allow-Origin", origin)
			// Credentials require echoing the specific origin, not *
			ctx.Response.Header.Set("Access-Control-Allow-Credentials", "true")
		} else if cm.allowAll {
			ctx.Response.Header.Set("Access-Control-Allow-Origin", "*")
		}

		ctx.Response.Header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		ctx.Response.Header.Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		ctx.Response.Header.Set("Access-Control-Expose-Headers", "Authorization, Content-Type")
		ctx.Response.Header.Set("Access-Control-Max-Age", "86400")

		if string(ctx.Method()) == "OPTIONS" {
			ctx.SetStatusCode(fasthttp.StatusNoContent)
			return
		}

		next(ctx)
	}
}

func (cm *CORSMiddleware) isOriginAllowed(origin string) bool {
	if origin == "" {
		return false
	}
	if cm.origins[origin] {
		return true
	}
	if localhostOrigin.MatchString(origin) {
		// dev-mode rule: configured "http(s)://localhost:*" entries, or an
		// allow-all setup, accept any localhost port
		if cm.origins["http://localhost:*"] || cm.origins["https://localhost:*"] {
			return true
		}
		return cm.allowAll && len(cm.origins) == 0
	}
	return false
}
