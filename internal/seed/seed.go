package seed

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/burdych/portfolio_server/internal/about"
	"github.com/burdych/portfolio_server/internal/experience"
	"github.com/burdych/portfolio_server/internal/project"
	"github.com/burdych/portfolio_server/internal/storage"
	"github.com/burdych/portfolio_server/internal/technology"
	"github.com/burdych/portfolio_server/internal/uploader"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Enabled   bool   `mapstructure:"enabled"`
	AssetsDir string `mapstructure:"assets_dir"`
}

// Seeder fills an empty database with starter portfolio content so a fresh
// deployment renders something before the first admin login. Local assets
// from AssetsDir are pushed to object storage first and seeded records
// reference the uploaded URLs.
type Seeder struct {
	config      Config
	projects    *project.ProjectService
	experiences *experience.ExperienceService
	techs       *technology.TechnologyService
	profile     *about.AboutService
	storage     *storage.Service
}

func NewSeeder(config Config, projects *project.ProjectService, experiences *experience.ExperienceService, techs *technology.TechnologyService, profile *about.AboutService, storageService *storage.Service) *Seeder {
	return &Seeder{
		config:      config,
		projects:    projects,
		experiences: experiences,
		techs:       techs,
		profile:     profile,
		storage:     storageService,
	}
}

// Run is a no-op when seeding is disabled or content already exists.
func (s *Seeder) Run(ctx context.Context) error {
	if !s.config.Enabled {
		return nil
	}

	existing, err := s.projects.List()
	if err != nil {
		return fmt.Errorf("failed to check existing projects: %w", err)
	}
	if len(existing) > 0 {
		log.Debug().Msg("Seed skipped, content already exists")
		return nil
	}

	assetURLs, err := s.importAssets(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Asset import failed, seeding with placeholder images")
		assetURLs = map[string]string{}
	}

	if err := s.seedProjects(assetURLs); err != nil {
		return err
	}
	if err := s.seedExperiences(assetURLs); err != nil {
		return err
	}
	if err := s.seedTechnologies(); err != nil {
		return err
	}
	if err := s.seedProfile(assetURLs); err != nil {
		return err
	}

	log.Info().Msg("Database seeded with starter content")
	return nil
}

// importAssets uploads every file in AssetsDir through the upload
// coordinator and maps the original filename to its public URL.
func (s *Seeder) importAssets(ctx context.Context) (map[string]string, error) {
	urls := map[string]string{}
	if s.config.AssetsDir == "" {
		return urls, nil
	}

	entries, err := os.ReadDir(s.config.AssetsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return urls, nil
		}
		return nil, fmt.Errorf("failed to read assets dir: %w", err)
	}

	var files []uploader.File
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		contentType := mime.TypeByExtension(filepath.Ext(entry.Name()))
		if !strings.HasPrefix(contentType, "image/") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.config.AssetsDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read asset %s: %w", entry.Name(), err)
		}
		files = append(files, uploader.File{
			Name:        entry.Name(),
			ContentType: contentType,
			Data:        data,
		})
	}
	if len(files) == 0 {
		return urls, nil
	}

	coordinator := uploader.NewCoordinator(
		storage.DefaultPolicy(),
		func(ctx context.Context, req *storage.PresignUploadRequest) (*storage.WriteCredential, error) {
			return s.storage.PresignUpload(ctx, req)
		},
		uploader.WithMaxFiles(len(files)),
	)

	if err := coordinator.Enqueue(ctx, files...); err != nil {
		return nil, err
	}
	coordinator.Wait()

	for _, task := range coordinator.Tasks() {
		if task.Status == uploader.StatusComplete {
			urls[task.Filename] = task.PublicURL
			continue
		}
		log.Warn().Str("file", task.Filename).Str("error", task.Err).Msg("Asset upload failed")
	}
	return urls, nil
}

func (s *Seeder) seedProjects(assetURLs map[string]string) error {
	inputs := []*project.Input{
		{
			Title:        "Portfolio Website",
			Description:  "Personal portfolio with an admin panel and direct-to-storage image uploads.",
			Image:        assetURLs["portfolio.jpg"],
			Technologies: []string{"Go", "PostgreSQL", "MinIO"},
			Featured:     true,
		},
		{
			Title:        "Weather Dashboard",
			Description:  "Live weather dashboard aggregating several public APIs.",
			Image:        assetURLs["weather.jpg"],
			Technologies: []string{"TypeScript", "React"},
		},
	}
	for _, in := range inputs {
		if _, err := s.projects.Create(in); err != nil {
			return fmt.Errorf("failed to seed project %q: %w", in.Title, err)
		}
	}
	return nil
}

func (s *Seeder) seedExperiences(assetURLs map[string]string) error {
	inputs := []*experience.Input{
		{
			Company:      "Freelance",
			Role:         "Full Stack Developer",
			Period:       "2023 - present",
			Description:  "Building web applications for clients, from e-shops to internal tools.",
			Technologies: []string{"Go", "TypeScript", "React"},
			Logo:         assetURLs["freelance.png"],
		},
		{
			Company:      "Acme Agency",
			Role:         "Backend Developer",
			Period:       "2020 - 2023",
			Description:  "Developed and operated APIs and integrations for agency clients.",
			Technologies: []string{"Go", "PostgreSQL"},
			Logo:         assetURLs["acme.png"],
		},
	}
	for _, in := range inputs {
		if _, err := s.experiences.Create(in); err != nil {
			return fmt.Errorf("failed to seed experience %q: %w", in.Company, err)
		}
	}
	return nil
}

func (s *Seeder) seedTechnologies() error {
	inputs := []*technology.Input{
		{Name: "Go", Icon: "go", Category: "backend", Proficiency: 90},
		{Name: "TypeScript", Icon: "typescript", Category: "frontend", Proficiency: 88},
		{Name: "React", Icon: "react", Category: "frontend", Proficiency: 85},
		{Name: "PostgreSQL", Icon: "postgresql", Category: "backend", Proficiency: 80},
		{Name: "Docker", Icon: "docker", Category: "tools", Proficiency: 78},
	}
	for _, in := range inputs {
		if _, err := s.techs.Create(in); err != nil {
			return fmt.Errorf("failed to seed technology %q: %w", in.Name, err)
		}
	}
	return nil
}

func (s *Seeder) seedProfile(assetURLs map[string]string) error {
	_, err := s.profile.Update(&about.Input{
		Name:     "Your Name",
		Title:    "Full Stack Developer",
		Bio:      "Edit this profile in the admin panel.",
		Avatar:   assetURLs["avatar.jpg"],
		Location: "Prague, Czech Republic",
		Email:    "hello@example.com",
	})
	if err != nil {
		return fmt.Errorf("failed to seed about profile: %w", err)
	}

	socials := []*about.SocialInput{
		{Name: "GitHub", URL: "https://github.com/burdych", Icon: "github"},
		{Name: "LinkedIn", URL: "https://www.linkedin.com/in/burdych", Icon: "linkedin"},
		{Name: "Email", URL: "mailto:hello@example.com", Icon: "mail"},
	}
	for _, in := range socials {
		if _, err := s.profile.AddSocial(in); err != nil {
			return fmt.Errorf("failed to seed social %q: %w", in.Name, err)
		}
	}
	return nil
}
