package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
)

func runCORS(cm *CORSMiddleware, origin, method string) (*fasthttp.RequestCtx, bool) {
	var ctx fasthttp.RequestCtx
	var reached bool
	ctx.Request.Header.SetMethod(method)
	if origin != "" {
		ctx.Request.Header.Set("Origin", origin)
	}
	cm.Handle(func(ctx *fasthttp.RequestCtx) { reached = true })(&ctx)
	return &ctx, reached
}

func TestCORSMiddleware_Handle_ShouldEchoConfiguredOrigin(t *testing.T) {
	// given
	cm := NewCORSMiddleware([]string{"https://portfolio.example.com"})

	// when
	ctx, reached := runCORS(cm, "https://portfolio.example.com", "GET")

	// then
	assert.True(t, reached)
	assert.Equal(t, "https://portfolio.example.com", string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")))
	assert.Equal(t, "true", string(ctx.Response.Header.Peek("Access-Control-Allow-Credentials")))
}

func TestCORSMiddleware_Handle_ShouldAllowAnyLocalhostPortViaPattern(t *testing.T) {
	// given
	cm := NewCORSMiddleware([]string{"http://localhost:*"})

	// when
	ctx, _ := runCORS(cm, "http://localhost:5173", "GET")

	// then
	assert.Equal(t, "http://localhost:5173", string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")))
}

func TestCORSMiddleware_Handle_ShouldFallBackToWildcardForUnknownOrigin(t *testing.T) {
	// given
	cm := NewCORSMiddleware(nil)

	// when
	ctx, _ := runCORS(cm, "https://evil.example.com", "GET")

	// then
	assert.Equal(t, "*", string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")))
	assert.Empty(t, string(ctx.Response.Header.Peek("Access-Control-Allow-Credentials")))
}

func TestCORSMiddleware_Handle_ShouldNotEchoUnknownOriginWhenConfigured(t *testing.T) {
	// given
	cm := NewCORSMiddleware([]string{"https://portfolio.example.com"})

	// when
	ctx, _ := runCORS(cm, "https://evil.example.com", "GET")

	// then
	assert.Empty(t, string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")))
}

func TestCORSMiddleware_Handle_ShouldShortCircuitPreflight(t *testing.T) {
	// given
	cm := NewCORSMiddleware([]string{"https://portfolio.example.com"})

	// when
	ctx, reached := runCORS(cm, "https://portfolio.example.com", "OPTIONS")

	// then
	assert.False(t, reached)
	assert.Equal(t, fasthttp.StatusNoContent, ctx.Response.StatusCode())
}
