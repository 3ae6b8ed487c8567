package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "zap_shift/docs"
	response "zap_shift/internal/adapter/http/dto/response"
	"zap_shift/internal/adapter/http/handlers"
	"zap_shift/internal/adapter/http/middleware"
	"zap_shift/internal/config"
	"zap_shift/internal/infrastructure/auth"
	applogger "zap_shift/internal/infrastructure/logger"
	"zap_shift/internal/infrastructure/metrics"
	"zap_shift/internal/infrastructure/payments"
	"zap_shift/internal/usecase"
	"zap_shift/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	bannerMessage   = "Zap Shift server is running"
	shutdownTimeout = 10 * time.Second
)

// Dependencies is everything the router serves.
type Dependencies struct {
	Payments usecase.IPaymentUseCase
	Parcels  usecase.IParcelUseCase
	Users    usecase.IUserUseCase
	Riders   usecase.IRiderUseCase
	Verifier interfaces.ITokenVerifier
	Metrics  http.Handler
}

// Run will start the server
func Run() {
	cfg := config.Load()

	logger, err := applogger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open storage", zap.String("driver", cfg.StorageDriver), zap.Error(err))
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := repos.close(closeCtx); err != nil {
			logger.Warn("storage close failed", zap.Error(err))
		}
	}()

	deps := buildDependencies(cfg, logger, repos)
	router := NewRouter(cfg, logger, deps)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr), zap.String("storage", cfg.StorageDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to startup the application", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("http server stopped")
}

func buildDependencies(cfg config.Config, logger *zap.Logger, repos repositories) Dependencies {
	var gateway interfaces.ICheckoutGateway
	gw, err := payments.NewCheckoutGateway(cfg.Payments, logger)
	if err != nil {
		logger.Warn("payment gateway not configured", zap.String("provider", cfg.Payments.Provider), zap.Error(err))
	} else {
		gateway = gw
	}

	var verifier interfaces.ITokenVerifier
	v, err := auth.NewJWTVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience)
	if err != nil {
		logger.Warn("token verification disabled; protected routes will answer 401", zap.Error(err))
	} else {
		verifier = v
	}

	registry := prometheus.NewRegistry()
	settlementMetrics := metrics.NewSettlementMetrics(registry)

	return Dependencies{
		Payments: usecase.NewPaymentUseCase(repos.parcels, repos.payments, gateway,
			usecase.WithPaymentLogger(logger),
			usecase.WithSettlementObserver(settlementMetrics),
		),
		Parcels:  usecase.NewParcelUseCase(repos.parcels),
		Users:    usecase.NewUserUseCase(repos.users),
		Riders:   usecase.NewRiderUseCase(repos.riders, repos.users, logger),
		Verifier: verifier,
		Metrics:  metrics.Handler(registry),
	}
}

// NewRouter builds the gin engine with middlewares and every route group.
func NewRouter(cfg config.Config, logger *zap.Logger, deps Dependencies) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	setMiddlewares(router, cfg, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics))
	}
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, response.BannerResponse{Message: bannerMessage})
	})

	requireToken := middleware.VerifyToken(deps.Verifier, logger)
	requireAdmin := middleware.VerifyAdmin(deps.Users)

	addPaymentRoutes(&router.RouterGroup, handlers.NewPaymentHandler(deps.Payments, logger), requireToken)
	addParcelRoutes(&router.RouterGroup, handlers.NewParcelHandler(deps.Parcels), requireToken)
	addUserRoutes(&router.RouterGroup, handlers.NewUserHandler(deps.Users), requireToken, requireAdmin)
	addRiderRoutes(&router.RouterGroup, handlers.NewRiderHandler(deps.Riders), requireToken, requireAdmin)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	return router
}

func setMiddlewares(router *gin.Engine, cfg config.Config, logger *zap.Logger) {
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(logger, true))

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.CORSOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
		corsCfg.AllowCredentials = true
	}
	router.Use(cors.New(corsCfg))
}
