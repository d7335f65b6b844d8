package internal

import (
	"strings"

	"github.com/burdych/portfolio_server/internal/about"
	"github.com/burdych/portfolio_server/internal/admin"
	"github.com/burdych/portfolio_server/internal/experience"
	"github.com/burdych/portfolio_server/internal/health"
	"github.com/burdych/portfolio_server/internal/middleware"
	"github.com/burdych/portfolio_server/internal/project"
	"github.com/burdych/portfolio_server/internal/status"
	"github.com/burdych/portfolio_server/internal/storage"
	"github.com/burdych/portfolio_server/internal/technology"
	"github.com/burdych/portfolio_server/internal/websocket"
	"github.com/valyala/fasthttp"
)

type Endpoints struct {
	Admin        *admin.AdminEndpoints
	Projects     *project.ProjectEndpoints
	Experiences  *experience.ExperienceEndpoints
	Technologies *technology.TechnologyEndpoints
	About        *about.AboutEndpoints
	Storage      *storage.Endpoints
	Health       *health.HealthEndpoints
	Status       *status.StatusEndpoints
	WS           *websocket.Handler
}

func NewRequestHandler(config *Config, adminService *admin.AdminService, endpoints *Endpoints) fasthttp.RequestHandler {
	authMiddleware := middleware.NewAuthMiddleware(adminService)
	corsMiddleware := middleware.NewCORSMiddleware(config.Server.AllowedOrigins)

	handler := func(ctx *fasthttp.RequestCtx) {
		path := string(ctx.Path())
		method := string(ctx.Method())

		switch {
		case path == "/auth/login":
			if method == "POST" {
				endpoints.Admin.Login(ctx)
			} else {
				ctx.Error("Method Not Allowed", fasthttp.StatusMethodNotAllowed)
			}
		case path == "/.well-known/jwks.json":
			endpoints.Admin.JWKS(ctx)
		case path == "/health":
			endpoints.Health.Health(ctx)
		case path == "/status":
			authMiddleware.RequireAuth(endpoints.Status.Status)(ctx)

		case path == "/projects":
			switch method {
			case "GET":
				endpoints.Projects.List(ctx)
			case "POST":
				authMiddleware.RequireAuth(endpoints.Projects.Create)(ctx)
			default:
				ctx.Error("Method Not Allowed", fasthttp.StatusMethodNotAllowed)
			}
		case strings.HasPrefix(path, "/projects/"):
			parts := strings.Split(path, "/")
			if len(parts) == 3 {
				ctx.SetUserValue("projectID", parts[2])
				switch method {
				case "GET":
					endpoints.Projects.Get(ctx)
				case "PUT":
					authMiddleware.RequireAuth(endpoints.Projects.Update)(ctx)
				case "DELETE":
					authMiddleware.RequireAuth(endpoints.Projects.Delete)(ctx)
				default:
					ctx.Error("Method Not Allowed", fasthttp.StatusMethodNotAllowed)
				}
			} else {
				ctx.Error("Not Found", fasthttp.StatusNotFound)
			}

		case path == "/experiences":
			switch method {
			case "GET":
				endpoints.Experiences.List(ctx)
			case "POST":
				authMiddleware.RequireAuth(endpoints.Experiences.Create)(ctx)
			default:
				ctx.Error("Method Not Allowed", fasthttp.StatusMethodNotAllowed)
			}
		case strings.HasPrefix(path, "/experiences/"):
			parts := strings.Split(path, "/")
			if len(parts) == 3 {
				ctx.SetUserValue("experienceID", parts[2])
				switch method {
				case "GET":
					endpoints.Experiences.Get(ctx)
				case "PUT":
					authMiddleware.RequireAuth(endpoints.Experiences.Update)(ctx)
				case "DELETE":
					authMiddleware.RequireAuth(endpoints.Experiences.Delete)(ctx)
				default:
					ctx.Error("Method Not Allowed", fasthttp.StatusMethodNotAllowed)
				}
			} else {
				ctx.Error("Not Found", fasthttp.StatusNotFound)
			}

		case path == "/technologies":
			switch method {
			case "GET":
				endpoints.Technologies.List(ctx)
			case "POST":
				authMiddleware.RequireAuth(endpoints.Technologies.Create)(ctx)
			default:
				ctx.Error("Method Not Allowed", fasthttp.StatusMethodNotAllowed)
			}
		case strings.HasPrefix(path, "/technologies/"):
			parts := strings.Split(path, "/")
			if len(parts) == 3 {
				ctx.SetUserValue("technologyID", parts[2])
				switch method {
				case "GET":
					endpoints.Technologies.Get(ctx)
				case "PUT":
					authMiddleware.RequireAuth(endpoints.Technologies.Update)(ctx)
				case "DELETE":
					authMiddleware.RequireAuth(endpoints.Technologies.Delete)(ctx)
				default:
					ctx.Error("Method Not Allowed", fasthttp.StatusMethodNotAllowed)
				}
			} else {
				ctx.Error("Not Found", fasthttp.StatusNotFound)
			}

		case path == "/about":
			switch method {
			case "GET":
				endpoints.About.Get(ctx)
			case "PUT":
				authMiddleware.RequireAuth(endpoints.About.Update)(ctx)
			default:
				ctx.Error("Method Not Allowed", fasthttp.StatusMethodNotAllowed)
			}
		case path == "/about/socials":
			if method == "POST" {
				authMiddleware.RequireAuth(endpoints.About.AddSocial)(ctx)
			} else {
				ctx.Error("Method Not Allowed", fasthttp.StatusMethodNotAllowed)
			}
		case strings.HasPrefix(path, "/about/socials/"):
			parts := strings.Split(path, "/")
			if len(parts) == 4 {
				ctx.SetUserValue("socialID", parts[3])
				if method == "DELETE" {
					authMiddleware.RequireAuth(endpoints.About.DeleteSocial)(ctx)
				} else {
					ctx.Error("Method Not Allowed", fasthttp.StatusMethodNotAllowed)
				}
			} else {
				ctx.Error("Not Found", fasthttp.StatusNotFound)
			}

		case path == "/storage/presign":
			if method == "POST" {
				authMiddleware.RequireAuth(endpoints.Storage.PresignUpload)(ctx)
			} else {
				ctx.Error("Method Not Allowed", fasthttp.StatusMethodNotAllowed)
			}
		case path == "/storage/view":
			if method == "POST" {
				authMiddleware.RequireAuth(endpoints.Storage.PresignView)(ctx)
			} else {
				ctx.Error("Method Not Allowed", fasthttp.StatusMethodNotAllowed)
			}
		case path == "/storage/view/batch":
			if method == "POST" {
				authMiddleware.RequireAuth(endpoints.Storage.PresignViewBatch)(ctx)
			} else {
				ctx.Error("Method Not Allowed", fasthttp.StatusMethodNotAllowed)
			}
		case strings.HasPrefix(path, "/storage/objects/"):
			parts := strings.Split(path, "/")
			if len(parts) == 4 {
				ctx.SetUserValue("objectKey", parts[3])
				if method == "DELETE" {
					authMiddleware.RequireAuth(endpoints.Storage.RemoveObject)(ctx)
				} else {
					ctx.Error("Method Not Allowed", fasthttp.StatusMethodNotAllowed)
				}
			} else {
				ctx.Error("Not Found", fasthttp.StatusNotFound)
			}

		case path == "/ws":
			endpoints.WS.HandleFastHTTP(ctx)

		default:
			ctx.Error("Not Found", fasthttp.StatusNotFound)
		}
	}

	return corsMiddleware.Handle(handler)
}
