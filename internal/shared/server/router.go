package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/analyses"
	"ats-backend/internal/analyzer"
	"ats-backend/internal/documents"
	"ats-backend/internal/jobroles"
	"ats-backend/internal/opinion/groq"
	"ats-backend/internal/shared/config"
	"ats-backend/internal/shared/metrics"
	"ats-backend/internal/shared/server/middleware"
	"ats-backend/internal/shared/server/respond"
	"ats-backend/internal/shared/storage/db"
	localstore "ats-backend/internal/shared/storage/object/local"
)

// analyzeRateRule throttles analysis starts per caller; the pipeline fans out
// to the opinion provider, so this is the expensive route.
var analyzeRateRule = middleware.RateLimitRule{Rate: 0.5, Burst: 5}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Identity(),
	)

	// Dependencies
	store := localstore.New(cfg.LocalStoreDir)
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, opts)
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	roles := jobroles.Default()
	if cfg.JobRolesPath != "" {
		loaded, err := jobroles.LoadFile(cfg.JobRolesPath)
		if err != nil {
			log.Printf("failed to load job roles from %s, using built-in catalog: %v", cfg.JobRolesPath, err)
		} else {
			roles = loaded
		}
	}

	engine := &analyzer.Engine{}
	if cfg.GroqAPIKey != "" {
		provider, err := groq.NewClient(cfg.GroqAPIKey, cfg.GroqModel)
		if err != nil {
			log.Printf("groq client unavailable, using fallback scoring: %v", err)
		} else {
			engine.Opinion = provider
		}
	}

	var docRepo documents.Repo
	if sqlDB != nil {
		docRepo = &documents.PGRepo{DB: sqlDB}
	} else {
		docRepo = documents.NewMemoryRepo()
	}
	docSvc := &documents.Service{Store: store, Repo: docRepo}
	docHandler := documents.NewHandler(docSvc)

	var analysisRepo analyses.Repo
	if sqlDB != nil {
		analysisRepo = &analyses.PGRepo{DB: sqlDB}
	} else {
		analysisRepo = analyses.NewMemoryRepo()
	}
	analysisSvc := &analyses.Service{
		Repo:            analysisRepo,
		Docs:            docRepo,
		Store:           store,
		Engine:          engine,
		Roles:           roles,
		AnalysisVersion: cfg.AnalysisVersion,
	}
	limiter := middleware.NewRateLimiter(nil)
	analysisHandler := analyses.NewHandler(analysisSvc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true, "time": time.Now().UTC()})
	})
	docHandler.RegisterRoutes(api)
	analysisHandler.RegisterRoutes(api, middleware.RateLimit(limiter, analyzeRateRule))

	r.GET("/metrics", metrics.Handler())

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
