package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	deliveryapp "github.com/Olpagroup25/insa/internal/application/delivery"
	identityapp "github.com/Olpagroup25/insa/internal/application/identity"
	inventoryapp "github.com/Olpagroup25/insa/internal/application/inventory"
	partnerapp "github.com/Olpagroup25/insa/internal/application/partner"
	tradeapp "github.com/Olpagroup25/insa/internal/application/trade"
	"github.com/Olpagroup25/insa/internal/domain/identity"
	"github.com/Olpagroup25/insa/internal/domain/inventory"
	"github.com/Olpagroup25/insa/internal/infrastructure/auth"
	"github.com/Olpagroup25/insa/internal/infrastructure/config"
	"github.com/Olpagroup25/insa/internal/infrastructure/event"
	"github.com/Olpagroup25/insa/internal/infrastructure/logger"
	"github.com/Olpagroup25/insa/internal/infrastructure/persistence"
	"github.com/Olpagroup25/insa/internal/infrastructure/render"
	"github.com/Olpagroup25/insa/internal/infrastructure/telemetry"
	"github.com/Olpagroup25/insa/internal/interfaces/http/handler"
	"github.com/Olpagroup25/insa/internal/interfaces/http/middleware"
	"github.com/Olpagroup25/insa/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/Olpagroup25/insa/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			INSA Pickup Point API
//	@version		1.0
//	@description	Back-office API and pickup point portal of the INSA shop

//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

const slowQueryThreshold = 200 * time.Millisecond

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting INSA pickup portal",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx := context.Background()

	// Tracing
	tracerProvider, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Metrics and log export
	meterProvider, err := telemetry.NewMeterProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	defer func() {
		if err := meterProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down meter provider", zap.Error(err))
		}
	}()
	loggerProvider, err := telemetry.NewLoggerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize logger provider", zap.Error(err))
	}
	defer func() {
		if err := loggerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down logger provider", zap.Error(err))
		}
	}()
	log = loggerProvider.Bridge(log, cfg.Telemetry.ServiceName, logger.ParseLevel(cfg.Log.Level))

	// Database
	gormLog := logger.NewGormLogger(log, logger.GormLogLevel(cfg.Log.Level), slowQueryThreshold)
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if db.Driver == "sqlite" {
		if err := db.AutoMigrate(); err != nil {
			log.Fatal("Failed to create sqlite schema", zap.Error(err))
		}
	}
	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
		SlowQueryThresh: slowQueryThreshold,
		DBSystem:        dbSystem(db.Driver),
	}, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}
	log.Info("Database connected", zap.String("driver", db.Driver))

	// Token revocation
	var blacklist auth.TokenBlacklist = auth.NewInMemoryTokenBlacklist()
	if cfg.Redis.Enabled {
		redisClient, err := auth.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer func() { _ = redisClient.Close() }()
		blacklist = auth.NewRedisTokenBlacklist(redisClient)
		log.Info("Token blacklist backed by redis")
	}

	// Repositories
	partnerRepo := persistence.NewGormPartnerRepository(db.DB)
	carrierRepo := persistence.NewGormCarrierRepository(db.DB)
	pickingRepo := persistence.NewGormPickingRepository(db.DB)
	salesOrderRepo := persistence.NewGormSalesOrderRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, identityapp.AuthServiceConfig{
		MaxLoginAttempts: cfg.Portal.MaxLoginAttempts,
		LockDuration:     cfg.Portal.LockDuration,
	}, log)
	userService := identityapp.NewUserService(userRepo, partnerRepo, blacklist, cfg.JWT.RefreshTokenExpiration, log)
	partnerService := partnerapp.NewPartnerService(partnerRepo, log)
	carrierService := deliveryapp.NewCarrierService(carrierRepo, partnerRepo, log)
	pickupPointService := deliveryapp.NewPickupPointService(carrierRepo, partnerRepo)
	salesOrderService := tradeapp.NewSalesOrderService(salesOrderRepo, carrierRepo, pickingRepo, log)
	salesOrderService.SetTransactionScope(persistence.NewGormTradeTransactionScope(db))
	pickingService := inventoryapp.NewPickingService(pickingRepo, log)
	pickupService := inventoryapp.NewPickupService(pickingRepo, cfg.Portal.PageSize, log)

	// Event bus
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(inventoryapp.NewCarrierPickupPartnerChangedHandler(pickingRepo, log))
	if meterProvider.IsEnabled() {
		eventMetrics, err := telemetry.NewEventMetrics(meterProvider.Meter("insa.events"))
		if err != nil {
			log.Fatal("Failed to create event metrics", zap.Error(err))
		}
		eventBus.Subscribe(eventMetrics)
	}
	if cfg.Event.KafkaEnabled {
		forwarder := event.NewKafkaForwarder(event.NewKafkaWriter(cfg.Event), log, inventory.EventTypePickupConfirmed)
		eventBus.Subscribe(forwarder)
		defer func() {
			if err := forwarder.Close(); err != nil {
				log.Error("Error closing kafka writer", zap.Error(err))
			}
		}()
		log.Info("Forwarding events to kafka",
			zap.Strings("brokers", cfg.Event.KafkaBrokers),
			zap.String("topic", cfg.Event.KafkaTopic),
			zap.Strings("event_types", forwarder.EventTypes()),
		)
	}
	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	carrierService.SetEventPublisher(eventBus)
	salesOrderService.SetEventPublisher(eventBus)
	pickingService.SetEventPublisher(eventBus)
	pickupService.SetEventPublisher(eventBus)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}

	pages, err := render.New()
	if err != nil {
		log.Fatal("Failed to load page templates", zap.Error(err))
	}
	engine.HTMLRender = pages

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(middleware.HTTPMetrics(meterProvider))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.SpanAttributes())
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	loginLimit := func(c *gin.Context) { c.Next() }
	if cfg.HTTP.AuthRateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		limiter.StartCleanup(ctx)
		loginLimit = middleware.RateLimit(limiter)
	}

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	webAuthHandler := handler.NewWebAuthHandler(authService, cfg.Cookie)
	portalHandler := handler.NewPortalHandler(pickupService, userService)
	pickupPointHandler := handler.NewPickupPointHandler(pickupPointService)
	avatarHandler := handler.NewAvatarHandler(partnerService)
	healthHandler := handler.NewHealthHandler(db)
	partnerHandler := handler.NewPartnerHandler(partnerService)
	carrierHandler := handler.NewCarrierHandler(carrierService)
	salesOrderHandler := handler.NewSalesOrderHandler(salesOrderService)
	pickingHandler := handler.NewPickingHandler(pickingService)
	userHandler := handler.NewUserHandler(userService)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	apiAuth := middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Logger:         log,
	})
	optionalSession := middleware.OptionalJWTAuthMiddleware(jwtService, cfg.Cookie.Name)

	// Portal pages, signed in through the session cookie
	portalRoutes := router.NewDomainGroup("portal", handler.PortalHomePath).
		Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
			JWTService:     jwtService,
			TokenBlacklist: blacklist,
			CookieName:     cfg.Cookie.Name,
			OnError:        middleware.LoginRedirect(handler.LoginPath),
			Logger:         log,
		}))
	portalRoutes.GET("", portalHandler.Home)
	portalRoutes.GET("/home", portalHandler.Home)
	pickupRoutes := portalRoutes.Group("pickup", "/pickup/orders")
	pickupRoutes.GET("", portalHandler.List)
	pickupRoutes.GET("/page/:page", portalHandler.List)
	pickupRoutes.GET("/:picking_id", portalHandler.Detail)
	pickupRoutes.POST("/:picking_id/confirm", portalHandler.Confirm)

	webRoutes := router.NewDomainGroup("web", "/web")
	webRoutes.GET("/login", optionalSession, webAuthHandler.ShowLogin)
	webRoutes.POST("/login", loginLimit, webAuthHandler.Login)
	webRoutes.POST("/logout", optionalSession, webAuthHandler.Logout)
	webRoutes.GET("/image/res.partner/:id/avatar_128", avatarHandler.Partner)

	shopRoutes := router.NewDomainGroup("shop", "/shop")
	shopRoutes.Match([]string{http.MethodGet, http.MethodPost}, "/pickup_point_info/:carrier_id", pickupPointHandler.Info)

	systemRoutes := router.NewDomainGroup("system", "")
	systemRoutes.GET("/health", healthHandler.Check)
	systemRoutes.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{Enabled: cfg.Swagger.Enabled}, nil),
		ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.RegisterRoot(portalRoutes).
		RegisterRoot(webRoutes).
		RegisterRoot(shopRoutes).
		RegisterRoot(systemRoutes)

	// Back-office API
	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/login", loginLimit, authHandler.Login)
	authRoutes.POST("/refresh", loginLimit, authHandler.RefreshToken)
	authRoutes.POST("/logout", apiAuth, authHandler.Logout)
	authRoutes.GET("/me", apiAuth, authHandler.GetCurrentUser)

	partnerRoutes := router.NewDomainGroup("partner", "/partners").
		Use(apiAuth, middleware.RequirePermission(identity.PermissionPartnerManage))
	partnerRoutes.POST("", partnerHandler.Create)
	partnerRoutes.GET("", partnerHandler.List)
	partnerRoutes.GET("/:id", partnerHandler.GetByID)
	partnerRoutes.PUT("/:id", partnerHandler.Update)

	carrierRoutes := router.NewDomainGroup("carrier", "/carriers").
		Use(apiAuth, middleware.RequirePermission(identity.PermissionCarrierManage))
	carrierRoutes.POST("", carrierHandler.Create)
	carrierRoutes.GET("", carrierHandler.List)
	carrierRoutes.GET("/:id", carrierHandler.GetByID)
	carrierRoutes.PUT("/:id", carrierHandler.Update)
	carrierRoutes.PUT("/:id/pickup-partner", carrierHandler.AssignPickupPartner)
	carrierRoutes.DELETE("/:id/pickup-partner", carrierHandler.ClearPickupPartner)

	salesOrderRoutes := router.NewDomainGroup("sales_order", "/sales-orders").
		Use(apiAuth, middleware.RequirePermission(identity.PermissionSalesOrderManage))
	salesOrderRoutes.POST("", salesOrderHandler.Create)
	salesOrderRoutes.GET("", salesOrderHandler.List)
	salesOrderRoutes.GET("/:id", salesOrderHandler.GetByID)
	salesOrderRoutes.PUT("/:id/carrier", salesOrderHandler.SelectCarrier)
	salesOrderRoutes.POST("/:id/confirm", salesOrderHandler.Confirm)
	salesOrderRoutes.POST("/:id/cancel", salesOrderHandler.Cancel)

	pickingRoutes := router.NewDomainGroup("picking", "/pickings").
		Use(apiAuth, middleware.RequirePermission(identity.PermissionPickingManage))
	pickingRoutes.GET("/:id", pickingHandler.GetByID)
	pickingRoutes.POST("/:id/validate", pickingHandler.Validate)
	pickingRoutes.POST("/:id/cancel", pickingHandler.Cancel)

	userRoutes := router.NewDomainGroup("user", "/users").
		Use(apiAuth, middleware.RequirePermission(identity.PermissionUserManage))
	userRoutes.POST("", userHandler.Create)
	userRoutes.GET("", userHandler.ListByPartner)
	userRoutes.GET("/:id", userHandler.GetByID)
	userRoutes.POST("/:id/deactivate", userHandler.Deactivate)

	r.Register(authRoutes).
		Register(partnerRoutes).
		Register(carrierRoutes).
		Register(salesOrderRoutes).
		Register(pickingRoutes).
		Register(userRoutes)

	r.Setup()

	for _, route := range r.Routes() {
		log.Debug("Route registered",
			zap.String("group", route.Group),
			zap.String("method", route.Method),
			zap.String("path", route.Path),
		)
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("Server exited gracefully")
}

func dbSystem(driver string) string {
	if driver == "postgres" {
		return "postgresql"
	}
	return driver
}
