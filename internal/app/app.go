package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/rmfarias/warranty-service/internal/config"
	"github.com/rmfarias/warranty-service/internal/handler"
	"github.com/rmfarias/warranty-service/internal/repository"
	"github.com/rmfarias/warranty-service/internal/service"
	"github.com/rmfarias/warranty-service/internal/utils"
	"github.com/rmfarias/warranty-service/pkg/observability"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	infra  Infrastructure
	config *config.Config
	router *gin.Engine
	server *http.Server
}

// handlers bundles every route handler for setupRoutes.
type handlers struct {
	auth      *handler.AuthHandler
	vehicle   *handler.VehicleHandler
	part      *handler.PartHandler
	supplier  *handler.SupplierHandler
	location  *handler.LocationHandler
	purchase  *handler.PurchaseHandler
	warranty  *handler.WarrantyHandler
	analytics *handler.AnalyticsHandler
}

func NewApp(infra Infrastructure, cfg *config.Config) (*App, error) {
	repos := repository.NewRepositories(infra.Postgres())

	jwtManager, err := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.Algorithm,
		cfg.JWT.AccessTokenExpiry.Duration,
		cfg.JWT.RefreshTokenExpiry.Duration,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT manager: %w", err)
	}

	blacklistService := service.NewTokenBlacklistService(infra.Redis())
	rateLimiter := service.NewRateLimiter(infra.Redis())
	healthChecker := NewHealthChecker(infra)

	authService := service.NewAuthService(
		repos.User,
		repos.Token,
		jwtManager,
		blacklistService,
		cfg.Security.BCryptCost,
		infra.Logger(),
	)

	h := &handlers{
		auth:      handler.NewAuthHandler(authService),
		vehicle:   handler.NewVehicleHandler(service.NewVehicleService(repos.Vehicle)),
		part:      handler.NewPartHandler(service.NewPartService(repos.Part, repos.Supplier)),
		supplier:  handler.NewSupplierHandler(service.NewSupplierService(repos.Supplier, repos.Location)),
		location:  handler.NewLocationHandler(service.NewLocationService(repos.Location)),
		purchase:  handler.NewPurchaseHandler(service.NewPurchaseService(repos.Purchase, repos.Part)),
		warranty:  handler.NewWarrantyHandler(service.NewWarrantyService(repos.Warranty, repos.Vehicle, repos.Part, repos.Purchase, repos.Location)),
		analytics: handler.NewAnalyticsHandler(service.NewAnalyticsService(repos, infra.Logger())),
	}

	router := gin.Default()
	router.Use(otelgin.Middleware("warranty-service"))
	router.Use(handler.LoggerMiddleware(infra.Logger()))
	router.Use(handler.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.CORS.AllowedMethods, cfg.CORS.AllowedHeaders))

	setupRoutes(router, cfg, h, authService, rateLimiter, healthChecker, infra.MetricsHandler())

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
	}

	return &App{
		infra:  infra,
		config: cfg,
		router: router,
		server: srv,
	}, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func setupRoutes(
	router *gin.Engine,
	cfg *config.Config,
	h *handlers,
	authService service.AuthService,
	rateLimiter *service.RateLimiter,
	healthChecker *HealthChecker,
	metricsHandler http.Handler,
) {
	router.GET("/metrics", observability.PrometheusHandler(metricsHandler))
	router.GET("/health", healthChecker.Handler)

	api := router.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/signup",
			handler.RateLimitMiddleware(rateLimiter, cfg.Security.RateLimitRequests, cfg.Security.RateLimitWindow.Duration, handler.IPBasedKey),
			h.auth.Signup,
		)
		auth.POST("/token",
			handler.RateLimitMiddleware(rateLimiter, cfg.Security.RateLimitRequests, cfg.Security.RateLimitWindow.Duration, handler.IPBasedKey),
			h.auth.Token,
		)
		auth.GET("/refresh_token", h.auth.Refresh)
		auth.POST("/logout", handler.AuthMiddleware(authService), h.auth.Logout)
		auth.GET("/me", handler.AuthMiddleware(authService), h.auth.GetMe)
	}

	protected := api.Group("")
	protected.Use(handler.AuthMiddleware(authService))

	vehicle := protected.Group("/vehicle")
	{
		vehicle.POST("", h.vehicle.Create)
		vehicle.GET("", h.vehicle.List)
		vehicle.GET("/id/:id", h.vehicle.GetByID)
		vehicle.GET("/model/:model", h.vehicle.GetByModel)
		vehicle.GET("/propulsion/:propulsion", h.vehicle.GetByPropulsion)
		vehicle.GET("/year/:year", h.vehicle.GetByYear)
		vehicle.PUT("/id/:id", h.vehicle.Update)
		vehicle.DELETE("/id/:id", handler.RequireElevated(), h.vehicle.Delete)
	}

	part := protected.Group("/part")
	{
		part.POST("", h.part.Create)
		part.GET("", h.part.List)
		part.GET("/id/:id", h.part.GetByID)
		part.GET("/name/:name", h.part.GetByName)
		part.PUT("/id/:id", h.part.Update)
		part.DELETE("/name/:name", handler.RequireElevated(), h.part.DeleteByName)
	}

	supplier := protected.Group("/supplier")
	{
		supplier.POST("", h.supplier.Create)
		supplier.GET("", h.supplier.List)
		supplier.GET("/id/:id", h.supplier.GetByID)
		supplier.GET("/name/:name", h.supplier.GetByName)
		supplier.GET("/cpf/:cpf", h.supplier.GetByCPF)
		supplier.PUT("/id/:id", h.supplier.Update)
		supplier.DELETE("/name/:name", handler.RequireElevated(), h.supplier.DeleteByName)
	}

	location := protected.Group("/location")
	{
		location.POST("", h.location.Create)
		location.GET("", h.location.List)
		location.GET("/id/:id", h.location.GetByID)
		location.GET("/market/:market", h.location.GetByMarket)
		location.GET("/country/:country", h.location.GetByCountry)
		location.GET("/province/:province", h.location.GetByProvince)
		location.GET("/city/:city", h.location.GetByCity)
		location.PUT("/id/:id", h.location.Update)
		location.DELETE("/id/:id", handler.RequireElevated(), h.location.Delete)
	}

	purchases := protected.Group("/purchases")
	{
		purchases.POST("", h.purchase.Create)
		purchases.GET("", h.purchase.List)
		purchases.GET("/id/:id", h.purchase.GetByID)
		purchases.GET("/type/:type", h.purchase.GetByType)
		purchases.GET("/date/:date", h.purchase.GetByDate)
		purchases.PUT("/id/:id", h.purchase.Update)
		purchases.DELETE("/id/:id", handler.RequireElevated(), h.purchase.Delete)
	}

	warranty := protected.Group("/warranty")
	{
		warranty.POST("", h.warranty.Create)
		warranty.GET("", h.warranty.List)
		warranty.GET("/id/:id", h.warranty.GetByClaimKey)
		warranty.PUT("/id/:id", h.warranty.Update)
		warranty.DELETE("/id/:id", handler.RequireElevated(), h.warranty.Delete)
	}

	analytics := protected.Group("/analytics")
	{
		analytics.GET("/purchases_by_type/:type", h.analytics.PurchasesByType)
		analytics.GET("/vehicle_model/:model", h.analytics.VehicleModel)
		analytics.GET("/propulsion_type/:type", h.analytics.PropulsionType)
		analytics.GET("/part_by_suppliers/:name", h.analytics.SupplierParts)
		analytics.GET("/supplier_by_province/:province", h.analytics.SupplierByProvince)
	}
}

func (a *App) Run(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		a.infra.Logger().Info("Application starting",
			zap.String("host", a.config.Server.Host),
			zap.String("port", a.config.Server.Port),
		)

		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.infra.Logger().Error("Server error", zap.Error(err))
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case err := <-errChan:
		a.infra.Logger().Error("Application failed to start", zap.Error(err))
		serverErr = err
	case <-ctx.Done():
		a.infra.Logger().Info("Application stopped by context")
	}

	if err := a.Shutdown(); err != nil {
		a.infra.Logger().Error("Shutdown error", zap.Error(err))
		if serverErr != nil {
			return errors.Join(serverErr, err)
		}
		return err
	}

	return serverErr
}

func (a *App) Shutdown() error {
	a.infra.Logger().Info("Application shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	errs := make(chan error, 2)

	go func() {
		errs <- a.server.Shutdown(ctx)
	}()

	go func() {
		errs <- a.infra.Shutdown(ctx)
	}()

	err := errors.Join(<-errs, <-errs)
	if err != nil {
		a.infra.Logger().Error("Shutdown failed", zap.Error(err))
		return err
	}

	a.infra.Logger().Info("Application exited successfully")
	return nil
}
