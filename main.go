package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"courtsync/handler"
	"courtsync/middleware"
	"courtsync/model"
	"courtsync/repository"
	"courtsync/services"
	"courtsync/usecase"
	"courtsync/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxRequestBody = 1 << 20 // 1 MiB

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"REDIS_URL",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"REFRESH_TOKEN_EXPIRATION_TIME",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
	if os.Getenv("GO_ENV") != "test" {
		utils.InitMongoClient()
	}
}

type app struct {
	resolver     *usecase.SessionResolver
	courts       *usecase.CourtsService
	events       *usecase.EventRequestsService
	sessionsRepo *repository.SessionsRepo
	usersRepo    *repository.UsersRepo

	courtFeed    *usecase.Feed[model.Court]
	activityFeed *usecase.Feed[model.Activity]
	requestFeed  *usecase.Feed[model.EventRequest]
}

func newApp() *app {
	courtsRepo := repository.GetCourtsRepo(utils.MongoClient)
	requestsRepo := repository.GetEventRequestsRepo(utils.MongoClient)
	activityRepo := repository.GetActivityLogsRepo(utils.MongoClient)
	usersRepo := repository.GetUsersRepo(utils.MongoClient)
	sessionsRepo := repository.GetSessionsRepo(utils.MongoClient)

	courtFeed := usecase.NewFeed("courts", courtsRepo.FindAll)
	activityFeed := usecase.NewFeed("activityLogs", func(ctx context.Context) ([]model.Activity, error) {
		return activityRepo.Recent(ctx, usecase.ActivityFeedLimit)
	})
	requestFeed := usecase.NewFeed("eventRequests", requestsRepo.FindPending)

	resolver := &usecase.SessionResolver{
		Users:        usersRepo,
		Demo:         services.DemoSessions,
		DemoEmail:    utils.GetEnvAsString("DEMO_ADMIN_EMAIL", "admin@upm.edu.my"),
		DemoPassword: utils.GetEnvAsString("DEMO_ADMIN_PASSWORD", "admin123"),
	}

	return &app{
		resolver: resolver,
		courts: &usecase.CourtsService{
			Courts:       courtsRepo,
			Activity:     activityRepo,
			CourtFeed:    courtFeed,
			ActivityFeed: activityFeed,
		},
		events: &usecase.EventRequestsService{
			Requests: requestsRepo,
			Feed:     requestFeed,
		},
		sessionsRepo: sessionsRepo,
		usersRepo:    usersRepo,
		courtFeed:    courtFeed,
		activityFeed: activityFeed,
		requestFeed:  requestFeed,
	}
}

func (a *app) runFeeds(ctx context.Context) {
	dbName := os.Getenv("MONGO_DB")
	db := utils.MongoClient.Database(dbName)

	go a.courtFeed.Run(ctx, db.Collection("courts"))
	go a.activityFeed.Run(ctx, db.Collection("activityLogs"))
	go a.requestFeed.Run(ctx, db.Collection("eventRequests"))
}

func setupRouter(a *app) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.EnhancedRecoveryMiddleware())
	router.Use(middleware.RequestSizeLimiter(maxRequestBody))
	router.Use(middleware.MetricsMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		handler.HealthHandler(c, utils.MongoClient)
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, a.resolver, a.sessionsRepo)
			})
			auth.POST("/google", func(c *gin.Context) {
				handler.GoogleSignInHandler(c, a.resolver)
			})
		}
	}

	// Protected routes (admin session required)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(a.resolver))
	{
		auth := protected.Group("/auth")
		{
			auth.GET("/session", handler.GetSessionHandler)
			auth.POST("/logout", func(c *gin.Context) {
				handler.LogoutHandler(c, a.resolver, a.sessionsRepo)
			})
			auth.GET("/sessions/active", func(c *gin.Context) {
				handler.GetActiveSessions(c, a.sessionsRepo)
			})
			auth.POST("/2fa/setup", func(c *gin.Context) {
				handler.TwoFactorSetupHandler(c, a.usersRepo)
			})
		}

		courts := protected.Group("/courts")
		{
			courts.GET("/", func(c *gin.Context) {
				handler.GetCourtsHandler(c, a.courts)
			})
			courts.POST("/:id/toggle", func(c *gin.Context) {
				handler.ToggleLockHandler(c, a.courts)
			})
			courts.GET("/stream", func(c *gin.Context) {
				handler.StreamCourtsHandler(c, a.courtFeed)
			})
		}

		activity := protected.Group("/activity")
		{
			activity.GET("/", func(c *gin.Context) {
				handler.GetActivityHandler(c, a.courts)
			})
			activity.GET("/stream", func(c *gin.Context) {
				handler.StreamActivityHandler(c, a.activityFeed)
			})
		}

		events := protected.Group("/events")
		{
			events.GET("/", func(c *gin.Context) {
				handler.GetPendingRequestsHandler(c, a.events)
			})
			events.POST("/:id/approve", func(c *gin.Context) {
				handler.ApproveRequestHandler(c, a.events)
			})
			events.POST("/:id/decline", func(c *gin.Context) {
				handler.DeclineRequestHandler(c, a.events)
			})
			events.GET("/stream", func(c *gin.Context) {
				handler.StreamRequestsHandler(c, a.requestFeed)
			})
		}

		protected.GET("/users", handler.GetUsersHandler)
	}

	return router
}

func main() {
	redisURL := os.Getenv("REDIS_URL")

	blacklist, err := services.NewTokenBlacklist(redisURL)
	if err != nil {
		log.Fatalf("Failed to initialize token blacklist: %v", err)
	}
	services.TokenBlacklist = blacklist

	demoStore, err := services.NewDemoSessionStore(redisURL)
	if err != nil {
		log.Fatalf("Failed to initialize demo session store: %v", err)
	}
	services.DemoSessions = demoStore

	dbName := os.Getenv("MONGO_DB")
	if err := repository.SetupIndexes(utils.MongoClient.Database(dbName)); err != nil {
		log.Printf("Failed to set up indexes: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp()

	if err := usecase.EnsureAdminAccount(ctx, a.usersRepo,
		os.Getenv("SEED_ADMIN_EMAIL"),
		os.Getenv("SEED_ADMIN_PASSWORD"),
		utils.GetEnvAsString("SEED_ADMIN_NAME", "Court Administrator")); err != nil {
		log.Printf("Failed to seed admin account: %v", err)
	}

	a.runFeeds(ctx)

	router := setupRouter(a)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
