package di

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/arriendohq/arriendo/internal/app"
	"github.com/arriendohq/arriendo/internal/config"
	"github.com/arriendohq/arriendo/internal/database"
	"github.com/arriendohq/arriendo/internal/health"
	"github.com/arriendohq/arriendo/internal/http/handler"
	"github.com/arriendohq/arriendo/internal/http/middleware"
	"github.com/arriendohq/arriendo/internal/http/router"
	"github.com/arriendohq/arriendo/internal/observability"
	"github.com/arriendohq/arriendo/internal/repository"
	"github.com/arriendohq/arriendo/internal/security"
	"github.com/arriendohq/arriendo/internal/service"
)

const rateLimitKeyPrefix = "arriendo:ratelimit"

var ConfigSet = wire.NewSet(config.Load)

var ObservabilitySet = wire.NewSet(
	provideObservabilityRuntime,
	provideAppLogger,
)

var RuntimeInfraSet = wire.NewSet(
	provideRuntimeDB,
	provideRedisClient,
	provideMinIOStorage,
	provideReadinessProbeRunner,
)

var RepositorySet = wire.NewSet(
	repository.NewUserRepository,
	repository.NewSessionRepository,
	repository.NewPropertyRepository,
	repository.NewContractRepository,
	repository.NewPaymentRepository,
	repository.NewTicketRepository,
	repository.NewVisitRepository,
	repository.NewLegalCaseRepository,
	repository.NewTemplateRepository,
)

var SecuritySet = wire.NewSet(
	provideJWTManager,
	provideCookieManager,
)

var ServiceSet = wire.NewSet(
	provideTokenService,
	service.NewOAuthService,
	service.NewAuthService,
	service.NewUserService,
	provideStorageService,
	service.NewPropertyService,
	service.NewContractService,
	service.NewPaymentService,
	service.NewTicketService,
	service.NewVisitService,
	service.NewLegalService,
	service.NewDashboardService,
	service.NewTemplateService,
	wire.Bind(new(service.AuthServiceInterface), new(*service.AuthService)),
	wire.Bind(new(service.UserServiceInterface), new(*service.UserService)),
	wire.Bind(new(service.PropertyServiceInterface), new(*service.PropertyService)),
	wire.Bind(new(service.ContractServiceInterface), new(*service.ContractService)),
	wire.Bind(new(service.PaymentServiceInterface), new(*service.PaymentService)),
	wire.Bind(new(service.TicketServiceInterface), new(*service.TicketService)),
	wire.Bind(new(service.VisitServiceInterface), new(*service.VisitService)),
	wire.Bind(new(service.LegalServiceInterface), new(*service.LegalService)),
	wire.Bind(new(service.DashboardServiceInterface), new(*service.DashboardService)),
	wire.Bind(new(service.TemplateService), new(*service.DBTemplateService)),
)

var HTTPSet = wire.NewSet(
	handler.NewAuthHandler,
	handler.NewPropertyHandler,
	handler.NewContractHandler,
	handler.NewPaymentHandler,
	handler.NewTicketHandler,
	handler.NewVisitHandler,
	handler.NewLegalHandler,
	handler.NewTemplateHandler,
	handler.NewDashboardHandler,
	handler.NewAdminHandler,
	provideGlobalRateLimiter,
	provideAuthRateLimiter,
	provideRouterDependencies,
	router.NewRouter,
	provideHTTPServer,
)

var AppSet = wire.NewSet(app.New)

// MigrationRunner backs the seed CLI: schema first, then the baseline
// templates, then the demo dataset when the flag asks for it.
type MigrationRunner struct {
	cfg *config.Config
	db  *gorm.DB
}

func NewMigrationRunner(cfg *config.Config, db *gorm.DB) *MigrationRunner {
	return &MigrationRunner{cfg: cfg, db: db}
}

func (m *MigrationRunner) Run() error {
	if err := database.Migrate(m.db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := database.SeedTemplates(m.db); err != nil {
		return err
	}
	if m.cfg.SeedDemoFixtures {
		if err := database.SeedDemo(m.db); err != nil {
			return err
		}
	}
	return nil
}

func provideObservabilityRuntime(cfg *config.Config) (*observability.Runtime, error) {
	bootstrapLogger := observability.NewBootstrapLogger(cfg)
	return observability.InitRuntime(context.Background(), cfg, bootstrapLogger)
}

func provideAppLogger(cfg *config.Config, runtime *observability.Runtime) *slog.Logger {
	return observability.InitLogger(cfg, runtime.LoggerProvider)
}

func provideOpenDB(cfg *config.Config) (*gorm.DB, error) {
	return database.Open(cfg)
}

func provideRuntimeDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	if err := database.SeedTemplates(db); err != nil {
		return nil, err
	}
	if cfg.SeedDemoFixtures {
		if err := database.SeedDemo(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

func provideRedisClient(cfg *config.Config) redis.UniversalClient {
	if !cfg.RedisEnabled {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	observability.InstrumentRedisClient(client, nil)
	return client
}

func provideMinIOStorage(cfg *config.Config) (*service.MinIOStorageService, error) {
	if !cfg.StorageEnabled {
		return nil, nil
	}
	return service.NewMinIOStorageService(
		cfg.StorageEndpoint,
		cfg.StorageAccessKey,
		cfg.StorageSecretKey,
		cfg.StorageBucket,
		cfg.StorageUseSSL,
	)
}

func provideStorageService(minioSvc *service.MinIOStorageService) service.StorageService {
	if minioSvc == nil {
		return service.NoopStorageService{}
	}
	return minioSvc
}

func provideJWTManager(cfg *config.Config) *security.JWTManager {
	return security.NewJWTManager(cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTAccessSecret, cfg.JWTRefreshSecret)
}

func provideCookieManager(cfg *config.Config) *security.CookieManager {
	return security.NewCookieManager(cfg.CookieDomain, cfg.CookieSecure, cfg.CookieSameSite)
}

func provideTokenService(cfg *config.Config, jwt *security.JWTManager, sessionRepo repository.SessionRepository) *service.TokenService {
	return service.NewTokenService(jwt, sessionRepo, cfg.RefreshTokenPepper, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)
}

func provideGlobalRateLimiter(cfg *config.Config, redisClient redis.UniversalClient) router.GlobalRateLimiterFunc {
	if cfg.RedisEnabled && redisClient != nil {
		redisLimiter := middleware.NewRedisFixedWindowLimiter(redisClient, rateLimitKeyPrefix+":api")
		return router.GlobalRateLimiterFunc(middleware.NewDistributedRateLimiter(
			redisLimiter,
			cfg.APIRateLimitPerMin,
			time.Minute,
			middleware.FailOpen,
			"api",
		).Middleware())
	}
	return router.GlobalRateLimiterFunc(middleware.NewRateLimiter(cfg.APIRateLimitPerMin, time.Minute).Middleware())
}

func provideAuthRateLimiter(cfg *config.Config, redisClient redis.UniversalClient) router.AuthRateLimiterFunc {
	if cfg.RedisEnabled && redisClient != nil {
		redisLimiter := middleware.NewRedisFixedWindowLimiter(redisClient, rateLimitKeyPrefix+":auth")
		return router.AuthRateLimiterFunc(middleware.NewDistributedRateLimiter(
			redisLimiter,
			cfg.AuthRateLimitPerMin,
			time.Minute,
			middleware.FailClosed,
			"auth",
		).Middleware())
	}
	return router.AuthRateLimiterFunc(middleware.NewRateLimiter(cfg.AuthRateLimitPerMin, time.Minute).Middleware())
}

func provideReadinessProbeRunner(
	cfg *config.Config,
	db *gorm.DB,
	redisClient redis.UniversalClient,
	minioSvc *service.MinIOStorageService,
) *health.ProbeRunner {
	checkers := make([]health.Checker, 0, 3)
	checkers = append(checkers, health.NewDBChecker(db))
	if cfg.RedisEnabled {
		checkers = append(checkers, health.NewRedisChecker(redisClient))
	}
	if minioSvc != nil {
		checkers = append(checkers, health.NewStorageChecker(minioSvc.Client(), cfg.StorageBucket))
	}
	return health.NewProbeRunner(cfg.ReadinessProbeTimeout, cfg.ServerStartGracePeriod, checkers...)
}

func provideRouterDependencies(
	authHandler *handler.AuthHandler,
	propertyHandler *handler.PropertyHandler,
	contractHandler *handler.ContractHandler,
	paymentHandler *handler.PaymentHandler,
	ticketHandler *handler.TicketHandler,
	visitHandler *handler.VisitHandler,
	legalHandler *handler.LegalHandler,
	templateHandler *handler.TemplateHandler,
	dashboardHandler *handler.DashboardHandler,
	adminHandler *handler.AdminHandler,
	jwt *security.JWTManager,
	globalRateLimiter router.GlobalRateLimiterFunc,
	authRateLimiter router.AuthRateLimiterFunc,
	readiness *health.ProbeRunner,
	cfg *config.Config,
) router.Dependencies {
	return router.Dependencies{
		AuthHandler:       authHandler,
		PropertyHandler:   propertyHandler,
		ContractHandler:   contractHandler,
		PaymentHandler:    paymentHandler,
		TicketHandler:     ticketHandler,
		VisitHandler:      visitHandler,
		LegalHandler:      legalHandler,
		TemplateHandler:   templateHandler,
		DashboardHandler:  dashboardHandler,
		AdminHandler:      adminHandler,
		JWTManager:        jwt,
		CORSOrigins:       cfg.CORSAllowedOrigins,
		AuthRateLimitRPM:  cfg.AuthRateLimitPerMin,
		APIRateLimitRPM:   cfg.APIRateLimitPerMin,
		GlobalRateLimiter: globalRateLimiter,
		AuthRateLimiter:   authRateLimiter,
		Readiness:         readiness,
		EnableOTelHTTP:    cfg.OTELMetricsEnabled || cfg.OTELTracingEnabled,
	}
}

func provideHTTPServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           h,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
