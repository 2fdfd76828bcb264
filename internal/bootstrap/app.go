package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-analytics/internal/analyses"
	"resume-analytics/internal/resumes"
	"resume-analytics/internal/scoring"
	"resume-analytics/internal/shared/auth"
	"resume-analytics/internal/shared/config"
	"resume-analytics/internal/shared/server"
	"resume-analytics/internal/shared/server/middleware"
	"resume-analytics/internal/shared/storage/db"
	"resume-analytics/internal/shared/storage/object"
	localstore "resume-analytics/internal/shared/storage/object/local"
	s3store "resume-analytics/internal/shared/storage/object/s3"
	"resume-analytics/internal/shared/telemetry"
	"resume-analytics/internal/users"
)

// App holds shared dependencies and the assembled router.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	Engine *scoring.Engine
	Tokens *auth.TokenMaker

	UsersRepo    users.Repo
	ResumesRepo  resumes.Repo
	AnalysesRepo analyses.Repo

	UsersService    *users.Service
	ResumesService  *resumes.Service
	AnalysesService *analyses.Service

	UsersHandler    *users.Handler
	ResumesHandler  *resumes.Handler
	AnalysisHandler *analyses.Handler
}

// Build prepares every dependency and wires the router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	for _, problem := range cfg.Validate() {
		if !cfg.IsDevLike() {
			return nil, fmt.Errorf("config: %s", problem)
		}
		telemetry.Warn("bootstrap.config", map[string]any{"problem": problem})
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	engine, err := buildEngine(cfg)
	if err != nil {
		return nil, err
	}

	tokens, err := auth.NewTokenMaker(cfg.JWTSecret, cfg.Env == "production", cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Engine: engine,
		Tokens: tokens,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		Tokens:          tokens,
		UserHandler:     app.UsersHandler,
		ResumeHandler:   app.ResumesHandler,
		AnalysisHandler: app.AnalysisHandler,
		Limiter:         middleware.NewRateLimiter(nil),
	})
	return app, nil
}

// Close releases the database pool, if any.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.IsDevLike() || cfg.Env == "test" {
			telemetry.Info("bootstrap.database", map[string]any{"mode": "memory"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.database", map[string]any{
				"mode":  "memory",
				"error": err.Error(),
			})
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
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

// buildEngine loads CATALOG_FILE when set; otherwise the built-in catalog
// is used.
func buildEngine(cfg config.Config) (*scoring.Engine, error) {
	if cfg.CatalogFile == "" {
		return scoring.DefaultEngine(), nil
	}
	catalog, err := scoring.LoadCatalogFile(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", cfg.CatalogFile, err)
	}
	telemetry.Info("bootstrap.catalog", map[string]any{
		"file":  cfg.CatalogFile,
		"roles": len(catalog.Roles()),
	})
	return scoring.NewEngine(nil, catalog), nil
}

func buildServices(app *App) {
	if app.DB != nil {
		app.UsersRepo = &users.PGRepo{DB: app.DB}
		app.ResumesRepo = &resumes.PGRepo{DB: app.DB}
		app.AnalysesRepo = &analyses.PGRepo{DB: app.DB}
	} else {
		app.UsersRepo = users.NewMemoryRepo()
		app.ResumesRepo = resumes.NewMemoryRepo()
		app.AnalysesRepo = analyses.NewMemoryRepo()
	}

	attempts := auth.NewMemoryAttempts(app.Config.LoginMaxAttempts, app.Config.LoginWindow, nil)

	app.UsersService = users.NewService(app.UsersRepo, app.Tokens, attempts)
	app.ResumesService = resumes.NewService(app.Store, app.ResumesRepo, app.Config.MaxUploadBytes)
	app.AnalysesService = analyses.NewService(app.AnalysesRepo, app.ResumesService, app.Engine, app.Store)

	app.UsersHandler = users.NewHandler(app.UsersService)
	app.ResumesHandler = resumes.NewHandler(app.ResumesService)
	app.AnalysisHandler = analyses.NewHandler(app.AnalysesService)
}
