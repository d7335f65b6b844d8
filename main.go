package main

import (
	"context"

	"github.com/burdych/portfolio_server/internal"
	"github.com/burdych/portfolio_server/internal/about"
	"github.com/burdych/portfolio_server/internal/admin"
	"github.com/burdych/portfolio_server/internal/experience"
	"github.com/burdych/portfolio_server/internal/health"
	"github.com/burdych/portfolio_server/internal/keys"
	"github.com/burdych/portfolio_server/internal/project"
	"github.com/burdych/portfolio_server/internal/seed"
	"github.com/burdych/portfolio_server/internal/status"
	"github.com/burdych/portfolio_server/internal/storage"
	"github.com/burdych/portfolio_server/internal/technology"
	"github.com/burdych/portfolio_server/internal/websocket"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"
)

const version = "1.0.0"

func main() {
	config, err := internal.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
		return
	}

	privateKey, publicKey, err := keys.DeriveRSAKeyPair(config.Admin.Password, config.Server.ExternalURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Error deriving RSA keys")
		return
	}
	log.Info().Msg("RSA keys initialized successfully")

	db, err := internal.NewDB(config.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing database")
		return
	}

	signer, err := storage.NewS3Signer(config.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing storage signer")
		return
	}
	resolver := storage.NewURLResolver(config.Storage.PublicEndpoint, config.Storage.APIEndpoint)
	storageService := storage.NewService(signer, resolver, config.Storage)

	hub := websocket.NewHub()
	go hub.Run()

	adminRepository := admin.NewRepository(db)
	adminService := admin.NewAdminService(adminRepository, config.Admin, privateKey, publicKey)
	if err := adminService.Bootstrap(); err != nil {
		log.Fatal().Err(err).Msg("Error bootstrapping admin account")
		return
	}

	projectService := project.NewProjectService(project.NewRepository(db), hub)
	experienceService := experience.NewExperienceService(experience.NewRepository(db), hub)
	technologyService := technology.NewTechnologyService(technology.NewRepository(db), hub)
	aboutService := about.NewAboutService(about.NewRepository(db), hub)

	seeder := seed.NewSeeder(config.Seed, projectService, experienceService, technologyService, aboutService, storageService)
	if err := seeder.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Error seeding database")
		return
	}

	endpoints := &internal.Endpoints{
		Admin:        admin.NewEndpoints(adminService),
		Projects:     project.NewEndpoints(projectService),
		Experiences:  experience.NewEndpoints(experienceService),
		Technologies: technology.NewEndpoints(technologyService),
		About:        about.NewEndpoints(aboutService),
		Storage:      storage.NewEndpoints(storageService),
		Health:       health.NewEndpoints(version),
		Status:       status.NewEndpoints(version, db, hub, storageService),
		WS:           websocket.NewHandler(hub, adminService),
	}

	requestHandler := internal.NewRequestHandler(config, adminService, endpoints)

	log.Info().Str("addr", config.Server.ListenAddr).Msg("Starting server")
	if err := fasthttp.ListenAndServe(config.Server.ListenAddr, requestHandler); err != nil {
		log.Fatal().Err(err).Msg("Error starting server")
	}
}
