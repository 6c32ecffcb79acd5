package router

import (
	"context"
	"log"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/collectivevoice/backend/internal/handlers"
	"github.com/collectivevoice/backend/internal/middleware"
	"github.com/collectivevoice/backend/internal/models"
	"github.com/collectivevoice/backend/internal/realtime"
	"github.com/collectivevoice/backend/internal/repositories"
	"github.com/collectivevoice/backend/internal/seed"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, firebaseAuthClient *auth.Client) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Notification{},
		&models.PolicyFollow{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	mongoDB := mgClient.Database("collectivevoice")

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	petitionRepo := repositories.NewMongoPetitionRepository(mongoDB)
	signatureRepo := repositories.NewMongoSignatureRepository(mongoDB)
	commentRepo := repositories.NewMongoCommentRepository(mongoDB)
	policyRepo := repositories.NewMongoPolicyRepository(mongoDB)
	policyFollowRepo := repositories.NewPostgresPolicyFollowRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)

	// Seed the policy digest on first startup
	seedCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := policyRepo.SeedIfEmpty(seedCtx, seed.Policies()); err != nil {
		log.Printf("Failed to seed policy digest: %v", err)
	}

	// Hub for comment change notifications (SSE)
	hub := realtime.NewHub()

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, firebaseAuthClient)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	// User profile routes
	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterProfileRoutes(api)
	log.Println("User profile routes configured.")

	// Petition routes
	petitionHandler := handlers.NewPetitionHandler(petitionRepo, userRepo)
	petitionHandler.RegisterPetitionRoutes(api)
	log.Println("Petition routes configured.")

	// Signature routes
	signatureHandler := handlers.NewSignatureHandler(signatureRepo, petitionRepo, userRepo, notificationRepo)
	signatureHandler.RegisterSignatureRoutes(api)
	log.Println("Signature routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(commentRepo, petitionRepo, userRepo, notificationRepo, hub)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	// Policy routes
	policyHandler := handlers.NewPolicyHandler(policyRepo, policyFollowRepo)
	policyHandler.RegisterPolicyRoutes(api)
	log.Println("Policy routes configured.")

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(notificationRepo, userRepo)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	log.Println("All routes configured.")
}
