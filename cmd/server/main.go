package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	accessapp "github.com/gymdesk/backend/internal/application/access"
	billingapp "github.com/gymdesk/backend/internal/application/billing"
	identityapp "github.com/gymdesk/backend/internal/application/identity"
	membershipapp "github.com/gymdesk/backend/internal/application/membership"
	notificationapp "github.com/gymdesk/backend/internal/application/notification"
	trainingapp "github.com/gymdesk/backend/internal/application/training"
	"github.com/gymdesk/backend/internal/domain/shared"
	"github.com/gymdesk/backend/internal/infrastructure/auth"
	"github.com/gymdesk/backend/internal/infrastructure/cache"
	"github.com/gymdesk/backend/internal/infrastructure/config"
	"github.com/gymdesk/backend/internal/infrastructure/event"
	"github.com/gymdesk/backend/internal/infrastructure/logger"
	"github.com/gymdesk/backend/internal/infrastructure/payment"
	"github.com/gymdesk/backend/internal/infrastructure/persistence"
	"github.com/gymdesk/backend/internal/infrastructure/scheduler"
	"github.com/gymdesk/backend/internal/interfaces/http/handler"
	"github.com/gymdesk/backend/internal/interfaces/http/middleware"
	"github.com/gymdesk/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting GymDesk Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	planRepo := persistence.NewGormPlanRepository(db.DB)
	memberRepo := persistence.NewGormMemberRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	trainerRepo := persistence.NewGormTrainerRepository(db.DB)
	classRepo := persistence.NewGormGymClassRepository(db.DB)
	notifRepo := persistence.NewGormNotificationRepository(db.DB)
	accessLogRepo := persistence.NewGormAccessLogRepository(db.DB)

	// Webhook replay protection. Redis is shared across instances;
	// the in-memory store is for single-instance deployments.
	var idempotencyStore shared.IdempotencyStore
	if cfg.Redis.Enabled {
		redisStore, err := cache.NewRedisIdempotencyStore(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		idempotencyStore = redisStore
		log.Info("Redis idempotency store connected")
	} else {
		idempotencyStore = cache.NewInMemoryIdempotencyStore()
		log.Info("Using in-memory idempotency store")
	}

	// Event bus
	eventBus := event.NewInMemoryEventBus(log)
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)
	planService := membershipapp.NewPlanService(planRepo, eventBus)
	memberService := membershipapp.NewMemberService(memberRepo, planRepo, eventBus, log)
	expiryService := membershipapp.NewExpiryService(memberRepo, eventBus, log)
	paymentService := billingapp.NewPaymentService(paymentRepo, memberRepo, planRepo, eventBus, log)
	trainingService := trainingapp.NewTrainingService(trainerRepo, classRepo)
	notificationService := notificationapp.NewNotificationService(notifRepo)
	checkInService := accessapp.NewCheckInService(memberRepo, accessLogRepo, log)

	gateway := payment.NewHMACGateway(cfg.Gateway.Name, cfg.Gateway.WebhookSecret)
	paymentCallbackService := billingapp.NewPaymentCallbackService(billingapp.PaymentCallbackServiceConfig{
		Gateway:          gateway,
		PaymentRepo:      paymentRepo,
		MemberRepo:       memberRepo,
		PlanRepo:         planRepo,
		EventPublisher:   eventBus,
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.Gateway.IdempotencyTTL,
		Logger:           log,
	})

	// Notification listeners for cross-context events
	paymentListener := notificationapp.NewPaymentSucceededListener(notificationService, log)
	eventBus.Subscribe(paymentListener)
	expiryListener := notificationapp.NewMemberExpiredListener(notificationService, log)
	eventBus.Subscribe(expiryListener)
	log.Info("Event listeners registered",
		zap.Strings("payment_events", paymentListener.EventTypes()),
		zap.Strings("expiry_events", expiryListener.EventTypes()),
	)

	// Expiry sweep
	if cfg.Scheduler.Enabled {
		sched := scheduler.New(cfg.Scheduler.SweepInterval, log)
		sched.Register(scheduler.NewExpiryJob(expiryService))
		sched.Start(context.Background())
		defer sched.Stop()
		log.Info("Expiry scheduler started",
			zap.Duration("sweep_interval", cfg.Scheduler.SweepInterval))
	}

	// HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	planHandler := handler.NewPlanHandler(planService)
	memberHandler := handler.NewMemberHandler(memberService, paymentService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	paymentCallbackHandler := handler.NewPaymentCallbackHandler(paymentCallbackService)
	trainingHandler := handler.NewTrainingHandler(trainingService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	checkInHandler := handler.NewCheckInHandler(checkInService)
	systemHandler := handler.NewSystemHandler(db)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check outside API versioning
	engine.GET("/health", systemHandler.Health)

	// The gateway callback bypasses JWT; it is authenticated by the
	// webhook signature instead.
	engine.POST("/api/v1/payments/callback", paymentCallbackHandler.HandleCallback)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/ping",
			"/api/v1/system/info",
		},
		Logger: log,
	}))

	// Identity
	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.Refresh)
	authRoutes.GET("/me", authHandler.Me)

	userRoutes := router.NewDomainGroup("users", "/users")
	userRoutes.POST("", middleware.RequireAdmin(), authHandler.CreateUser)
	userRoutes.DELETE("/:id", middleware.RequireAdmin(), authHandler.DisableUser)

	// Membership plans; mutations are admin-only
	planRoutes := router.NewDomainGroup("plans", "/plans")
	planRoutes.GET("", planHandler.List)
	planRoutes.GET("/:id", planHandler.Get)
	planRoutes.POST("", middleware.RequireAdmin(), planHandler.Create)
	planRoutes.PUT("/:id", middleware.RequireAdmin(), planHandler.Update)
	planRoutes.DELETE("/:id", middleware.RequireAdmin(), planHandler.Deactivate)

	// Members
	memberRoutes := router.NewDomainGroup("members", "/members")
	memberRoutes.POST("", memberHandler.Register)
	memberRoutes.GET("", memberHandler.List)
	memberRoutes.GET("/:id", memberHandler.Get)
	memberRoutes.PUT("/:id", memberHandler.Update)
	memberRoutes.POST("/:id/subscribe", memberHandler.Subscribe)
	memberRoutes.DELETE("/:id", middleware.RequireAdmin(), memberHandler.Delete)
	memberRoutes.GET("/:id/payments", memberHandler.ListPayments)
	memberRoutes.POST("/:id/checkin", checkInHandler.CheckIn)
	memberRoutes.GET("/:id/checkins", checkInHandler.History)
	memberRoutes.GET("/:id/notifications", notificationHandler.ListForMember)
	memberRoutes.GET("/:id/notifications/unread", notificationHandler.CountUnread)
	memberRoutes.POST("/:id/notifications", middleware.RequireAdmin(), notificationHandler.Notify)

	// Payments; manual settlement is admin-only
	paymentRoutes := router.NewDomainGroup("payments", "/payments")
	paymentRoutes.POST("", paymentHandler.Create)
	paymentRoutes.GET("", paymentHandler.List)
	paymentRoutes.GET("/:id", paymentHandler.Get)
	paymentRoutes.PUT("/:id/status", middleware.RequireAdmin(), paymentHandler.UpdateStatus)

	// Trainers and classes
	trainerRoutes := router.NewDomainGroup("trainers", "/trainers")
	trainerRoutes.GET("", trainingHandler.ListTrainers)
	trainerRoutes.GET("/:id", trainingHandler.GetTrainer)
	trainerRoutes.POST("", middleware.RequireAdmin(), trainingHandler.CreateTrainer)
	trainerRoutes.PUT("/:id", middleware.RequireAdmin(), trainingHandler.UpdateTrainer)
	trainerRoutes.DELETE("/:id", middleware.RequireAdmin(), trainingHandler.DeactivateTrainer)

	classRoutes := router.NewDomainGroup("classes", "/classes")
	classRoutes.GET("", trainingHandler.ListUpcomingClasses)
	classRoutes.GET("/:id", trainingHandler.GetClass)
	classRoutes.POST("", middleware.RequireAdmin(), trainingHandler.CreateClass)
	classRoutes.PUT("/:id/schedule", middleware.RequireAdmin(), trainingHandler.RescheduleClass)
	classRoutes.POST("/:id/enroll", trainingHandler.EnrollInClass)
	classRoutes.DELETE("/:id", middleware.RequireAdmin(), trainingHandler.DeleteClass)

	// Notifications and check-in windows
	notificationRoutes := router.NewDomainGroup("notifications", "/notifications")
	notificationRoutes.PUT("/:id/read", notificationHandler.MarkRead)

	checkinRoutes := router.NewDomainGroup("checkins", "/checkins")
	checkinRoutes.GET("", checkInHandler.ListBetween)

	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.Info)

	r.Register(authRoutes).
		Register(userRoutes).
		Register(planRoutes).
		Register(memberRoutes).
		Register(paymentRoutes).
		Register(trainerRoutes).
		Register(classRoutes).
		Register(notificationRoutes).
		Register(checkinRoutes).
		Register(systemRoutes)
	r.Setup()

	engine.GET("/api/v1/ping", systemHandler.Ping)

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
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
