// Package bootstrap assembles the application: storage, services, handlers,
// and the HTTP router, driven by config.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "resumeforge/internal/auth"
	"resumeforge/internal/editor"
	"resumeforge/internal/export"
	"resumeforge/internal/jobs"
	"resumeforge/internal/llm"
	openai "resumeforge/internal/llm/openai"
	"resumeforge/internal/resumes"
	"resumeforge/internal/shared/config"
	"resumeforge/internal/shared/server"
	"resumeforge/internal/shared/storage/db"
	"resumeforge/internal/shared/storage/object"
	localstore "resumeforge/internal/shared/storage/object/local"
	s3store "resumeforge/internal/shared/storage/object/s3"
	"resumeforge/internal/suggest"
	"resumeforge/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	ResumesRepo resumes.Repo
	JobsRepo    jobs.Repo
	UsersRepo   users.Repo

	ResumesService *resumes.Service
	JobsService    *jobs.Service
	UsersService   *users.Service
	ExportService  *export.Service
	Gateway        *suggest.Gateway
	EditorManager  *editor.Manager

	ResumesHandler *resumes.Handler
	JobsHandler    *jobs.Handler
	EditorHandler  *editor.Handler
	ExportHandler  *export.Handler
	UsersHandler   *users.Handler
	GoogleAuth     *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}
	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         app.Config,
		ResumesHandler: app.ResumesHandler,
		JobsHandler:    app.JobsHandler,
		EditorHandler:  app.EditorHandler,
		ExportHandler:  app.ExportHandler,
		UsersHandler:   app.UsersHandler,
		GoogleAuth:     app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildServices(app *App) error {
	var resumeRepo resumes.Repo
	var jobRepo jobs.Repo
	var userRepo users.Repo

	if app.DB != nil {
		resumeRepo = &resumes.PGRepo{DB: app.DB}
		jobRepo = &jobs.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
	} else {
		resumeRepo = resumes.NewSeededMemoryRepo()
		jobRepo = jobs.NewSeededMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	resumeSvc := resumes.NewService(resumeRepo)
	jobSvc := jobs.NewService(jobRepo)
	userSvc := users.NewService(userRepo)

	// Without a credential the gateway stays up but answers every request
	// with a service-unavailable error.
	var llmClient llm.Client
	if strings.TrimSpace(app.Config.OpenAIAPIKey) != "" {
		client, err := openai.NewClient(app.Config.OpenAIAPIKey, app.Config.OpenAIModel)
		if err != nil {
			return err
		}
		llmClient = client
	} else {
		log.Printf("bootstrap: OPENAI_API_KEY empty; suggestions disabled")
	}
	gateway := suggest.NewGateway(llmClient)

	var surface export.Surface
	if app.Config.ExportSurface == "chrome" {
		surface = export.NewChromeSurface()
	}
	exportSvc := export.NewService(resumeSvc, surface, app.Store)

	manager := editor.NewManager(resumeSvc)

	googleAuthSvc := googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)

	app.ResumesRepo = resumeRepo
	app.JobsRepo = jobRepo
	app.UsersRepo = userRepo
	app.ResumesService = resumeSvc
	app.JobsService = jobSvc
	app.UsersService = userSvc
	app.ExportService = exportSvc
	app.Gateway = gateway
	app.EditorManager = manager
	app.ResumesHandler = resumes.NewHandler(resumeSvc)
	app.JobsHandler = jobs.NewHandler(jobSvc)
	app.EditorHandler = editor.NewHandler(manager, gateway)
	app.ExportHandler = export.NewHandler(exportSvc)
	app.UsersHandler = users.NewHandler(userSvc)
	app.GoogleAuth = googleAuthSvc

	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
