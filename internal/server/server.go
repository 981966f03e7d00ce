// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"time"

	"ripple/internal/cache"
	"ripple/internal/config"
	"ripple/internal/middleware"
	"ripple/internal/social"
	"ripple/internal/store"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config   *config.Config
	store    *store.Store
	resolver *social.Resolver
	redis    *redis.Client
}

// NewServer creates a new server instance with all dependencies.
func NewServer(cfg *config.Config) (*Server, error) {
	st := store.New()

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	middleware.InitMiddleware(cfg)

	return &Server{
		config:   cfg,
		store:    st,
		resolver: social.NewResolver(st),
		redis:    redisClient,
	}, nil
}

// NewServerWithStore creates a server bound to an existing store.
// Tests use it to preload state.
func NewServerWithStore(cfg *config.Config, st *store.Store) *Server {
	middleware.InitMiddleware(cfg)
	return &Server{
		config:   cfg,
		store:    st,
		resolver: social.NewResolver(st),
	}
}

// Store exposes the underlying entity store.
func (s *Server) Store() *store.Store {
	return s.store
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Request ID for log correlation
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware
	app.Use(middleware.StructuredLogger())

	// Prometheus HTTP metrics
	prom := fiberprometheus.New("ripple")
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/health", s.HealthCheck)

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", middleware.RateLimit(s.redis, 3, 10*time.Minute, "register"), s.Register)
	auth.Post("/login", middleware.RateLimit(s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Get("/me", middleware.AuthRequired, s.Me)

	// Protected routes
	protected := api.Group("", middleware.AuthRequired)

	// Post routes
	posts := protected.Group("/posts")
	posts.Get("/", s.GetFeed)
	posts.Post("/", middleware.RateLimit(s.redis, 10, time.Minute, "create_post"), s.CreatePost)
	posts.Get("/user/:userId", s.GetUserPosts)
	posts.Post("/:postId/like", s.LikePost)
	posts.Delete("/:postId/like", s.UnlikePost)
	posts.Post("/:postId/comments", middleware.RateLimit(s.redis, 10, time.Minute, "create_comment"), s.CreateComment)
	posts.Get("/:postId/comments", s.GetComments)

	// Friend routes
	friends := protected.Group("/friends")
	friends.Post("/request", middleware.RateLimit(s.redis, 5, 5*time.Minute, "friend_request"), s.SendFriendRequest)
	friends.Put("/request/:requestId/accept", s.AcceptFriendRequest)
	friends.Put("/request/:requestId/reject", s.RejectFriendRequest)
	friends.Get("/requests", s.GetPendingRequests)
	friends.Get("/", s.GetFriends)

	// User routes
	protected.Get("/users/:userId", s.GetUserProfile)

	// Admin routes
	admin := api.Group("/admin", middleware.AuthRequired, middleware.AdminRequired)
	admin.Get("/users", s.AdminGetUsers)
	admin.Get("/posts", s.AdminGetPosts)
	admin.Delete("/users/:userId", s.AdminDeleteUser)
	admin.Delete("/posts/:postId", s.AdminDeletePost)
	admin.Put("/users/:userId/ban", s.AdminToggleBan)
}

// HealthCheck handles GET /api/health
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.redis != nil {
		return s.redis.Close()
	}
	return nil
}
