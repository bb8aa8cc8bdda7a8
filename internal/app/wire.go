package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/labsample-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/labsample-backend/internal/adapter/postgres/audit"
	samplerepo "github.com/heartmarshall/labsample-backend/internal/adapter/postgres/sample"
	tagrepo "github.com/heartmarshall/labsample-backend/internal/adapter/postgres/tag"
	userrepo "github.com/heartmarshall/labsample-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/labsample-backend/internal/auth"
	"github.com/heartmarshall/labsample-backend/internal/config"
	"github.com/heartmarshall/labsample-backend/internal/export"
	auditsvc "github.com/heartmarshall/labsample-backend/internal/service/audit"
	authsvc "github.com/heartmarshall/labsample-backend/internal/service/auth"
	reportsvc "github.com/heartmarshall/labsample-backend/internal/service/report"
	samplesvc "github.com/heartmarshall/labsample-backend/internal/service/sample"
	tagsvc "github.com/heartmarshall/labsample-backend/internal/service/tag"
	usersvc "github.com/heartmarshall/labsample-backend/internal/service/user"
	workflowsvc "github.com/heartmarshall/labsample-backend/internal/service/workflow"
	"github.com/heartmarshall/labsample-backend/internal/transport/middleware"
	"github.com/heartmarshall/labsample-backend/internal/transport/rest"
)

// rateLimitCleanup is how often idle rate-limit buckets are swept.
const rateLimitCleanup = time.Minute

// database is what the wiring needs from the connection pool.
type database interface {
	postgres.DB
	Ping(ctx context.Context) error
}

// NewHandler assembles repositories, services and the HTTP router over db.
// The returned cleanup stops background goroutines.
func NewHandler(cfg *config.Config, logger *slog.Logger, db database) (http.Handler, func()) {
	// Repositories.
	users := userrepo.New(db)
	samples := samplerepo.New(db)
	tags := tagrepo.New(db)
	audits := auditrepo.New(db)
	tx := postgres.NewTxManager(db)

	// Auth primitives.
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := auth.NewHasher(cfg.Auth.BcryptCost)

	// Services.
	auditService := auditsvc.NewService(logger, audits, users)
	authService := authsvc.NewService(logger, users, auditService, tx, jwt, hasher, cfg.Auth)
	userService := usersvc.NewService(logger, users, auditService, tx, hasher, cfg.Auth)
	sampleService := samplesvc.NewService(logger, samples, tags, users, auditService, audits, tx, cfg.Report)
	tagService := tagsvc.NewService(logger, tags, users, auditService, tx)
	workflowService := workflowsvc.NewService(logger, samples, users, auditService, tx)
	reportService := reportsvc.NewService(logger, samples, audits, users, cfg.Report)

	render := export.Renderer{PDFFontPath: cfg.Report.PDFFontPath}
	limiter := middleware.NewRateLimiter(rateLimitCleanup)

	handlers := rest.Handlers{
		Health:  rest.NewHealthHandler(db, Version),
		Auth:    rest.NewAuthHandler(authService, logger),
		Me:      rest.NewMeHandler(userService, logger),
		Samples: rest.NewSampleHandler(sampleService, workflowService, render, logger),
		Tags:    rest.NewTagHandler(tagService, logger),
		Audit:   rest.NewAuditHandler(auditService, logger),
		Reports: rest.NewReportHandler(reportService, cfg.Report.Formats(), render, logger),
		Users:   rest.NewUserAdminHandler(userService, logger),
	}

	router := rest.NewRouter(handlers, rest.RouterConfig{
		Global: []middleware.Middleware{
			middleware.Recovery(logger),
			middleware.RequestID,
			middleware.ClientIP(cfg.Server.TrustProxy),
			middleware.Metrics(),
			middleware.Logger(logger),
			middleware.CORS(cfg.CORS),
		},
		Authenticate: middleware.Auth(authService),
		AuthLimit:    limiter.Limit(cfg.RateLimit.LoginPerMinute),
	})

	return router, limiter.Stop
}
