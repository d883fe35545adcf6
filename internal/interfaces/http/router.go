// Package http assembles the HTTP surface: repositories, use cases, handlers,
// and the route table.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	attachmentusecases "github.com/supportsync-io/supportsync/internal/application/attachment/usecases"
	authusecases "github.com/supportsync-io/supportsync/internal/application/auth/usecases"
	dashboardusecases "github.com/supportsync-io/supportsync/internal/application/dashboard/usecases"
	frusecases "github.com/supportsync-io/supportsync/internal/application/featurerequest/usecases"
	ticketusecases "github.com/supportsync-io/supportsync/internal/application/ticket/usecases"
	userusecases "github.com/supportsync-io/supportsync/internal/application/user/usecases"
	"github.com/supportsync-io/supportsync/internal/infrastructure/auth"
	"github.com/supportsync-io/supportsync/internal/infrastructure/cache"
	"github.com/supportsync-io/supportsync/internal/infrastructure/config"
	"github.com/supportsync-io/supportsync/internal/infrastructure/ratelimit"
	"github.com/supportsync-io/supportsync/internal/infrastructure/repository"
	"github.com/supportsync-io/supportsync/internal/infrastructure/storage"
	"github.com/supportsync-io/supportsync/internal/interfaces/http/handlers"
	"github.com/supportsync-io/supportsync/internal/interfaces/http/middleware"
	"github.com/supportsync-io/supportsync/internal/shared/authorization"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
)

type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface
}

// NewRouter wires the full dependency graph and registers all routes.
func NewRouter(cfg *config.Config, database *gorm.DB, log logger.Interface) (*Router, error) {
	gin.SetMode(cfg.Server.Mode)

	// infrastructure
	userRepo := repository.NewUserRepository(database)
	ticketRepo := repository.NewTicketRepository(database)
	frRepo := repository.NewFeatureRequestRepository(database)
	attachmentRepo := repository.NewAttachmentRepository(database)
	dashboardRepo := repository.NewDashboardRepository(database)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	var loginLimiter ratelimit.LoginLimiter = ratelimit.NoopLimiter{}
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		loginLimiter = ratelimit.NewRedisLoginLimiter(
			redisClient,
			cfg.RateLimit.LoginLimit,
			time.Duration(cfg.RateLimit.LoginWindowSeconds)*time.Second,
		)
	}

	fileStore, err := storage.NewLocalFileStore(cfg.Upload.Dir)
	if err != nil {
		return nil, err
	}

	// use cases
	registerUC := authusecases.NewRegisterUseCase(userRepo, hasher, log)
	loginUC := authusecases.NewLoginUseCase(userRepo, hasher, jwtService, loginLimiter, log)

	listUsersUC := userusecases.NewListUsersUseCase(userRepo, log)
	createUserUC := userusecases.NewCreateUserUseCase(userRepo, hasher, log)
	updateUserUC := userusecases.NewUpdateUserUseCase(userRepo, hasher, log)
	getUserUC := userusecases.NewGetUserUseCase(userRepo, log)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, userRepo, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(ticketRepo, log)
	addTicketCommentUC := ticketusecases.NewAddCommentUseCase(ticketRepo, log)
	listTicketCommentsUC := ticketusecases.NewListCommentsUseCase(ticketRepo, log)

	createFRUC := frusecases.NewCreateFeatureRequestUseCase(frRepo, log)
	getFRUC := frusecases.NewGetFeatureRequestUseCase(frRepo, log)
	listFRUC := frusecases.NewListFeatureRequestsUseCase(frRepo, log)
	updateFRUC := frusecases.NewUpdateFeatureRequestUseCase(frRepo, log)
	deleteFRUC := frusecases.NewDeleteFeatureRequestUseCase(frRepo, log)
	upvoteUC := frusecases.NewUpvoteUseCase(frRepo, log)
	addFRCommentUC := frusecases.NewAddCommentUseCase(frRepo, log)
	listFRCommentsUC := frusecases.NewListCommentsUseCase(frRepo, log)

	uploadUC := attachmentusecases.NewUploadAttachmentUseCase(attachmentRepo, ticketRepo, frRepo, fileStore, log)
	downloadUC := attachmentusecases.NewDownloadAttachmentUseCase(attachmentRepo, ticketRepo, fileStore, log)
	listAttachmentsUC := attachmentusecases.NewListAttachmentsUseCase(attachmentRepo, ticketRepo, frRepo, log)
	deleteAttachmentUC := attachmentusecases.NewDeleteAttachmentUseCase(attachmentRepo, fileStore, log)

	var summaryUC dashboardusecases.SummaryExecutor = dashboardusecases.NewSummaryUseCase(dashboardRepo, log)
	if redisClient != nil {
		summaryUC = cache.NewSummaryCache(summaryUC, redisClient, 30*time.Second, log)
	}

	// handlers
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, getUserUC, log)
	userHandler := handlers.NewUserHandler(listUsersUC, createUserUC, updateUserUC, getUserUC, log)
	ticketHandler := handlers.NewTicketHandler(
		createTicketUC, getTicketUC, listTicketsUC, updateTicketUC, deleteTicketUC,
		addTicketCommentUC, listTicketCommentsUC, log,
	)
	frHandler := handlers.NewFeatureRequestHandler(
		createFRUC, getFRUC, listFRUC, updateFRUC, deleteFRUC,
		upvoteUC, addFRCommentUC, listFRCommentsUC, log,
	)
	attachmentHandler := handlers.NewAttachmentHandler(uploadUC, downloadUC, listAttachmentsUC, deleteAttachmentUC, log)
	dashboardHandler := handlers.NewDashboardHandler(summaryUC, log)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, userRepo, log)

	engine := gin.New()
	engine.Use(
		middleware.Recovery(log),
		middleware.Logger(log),
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.SecurityHeaders(),
	)

	registerRoutes(engine, authMiddleware, authHandler, userHandler, ticketHandler, frHandler, attachmentHandler, dashboardHandler)

	return &Router{
		engine: engine,
		cfg:    cfg,
		logger: log,
	}, nil
}

func registerRoutes(
	engine *gin.Engine,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	ticketHandler *handlers.TicketHandler,
	frHandler *handlers.FeatureRequestHandler,
	attachmentHandler *handlers.AttachmentHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	engine.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/logout", authMiddleware.RequireAuth(), authHandler.Logout)
		authGroup.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
		authGroup.GET("/profile", authMiddleware.RequireAuth(), authHandler.Me)
	}

	users := api.Group("/users", authMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		users.GET("", userHandler.List)
		users.GET("/admins", userHandler.ListAdmins)
		users.POST("", userHandler.Create)
		users.GET("/:id", userHandler.Get)
		users.PATCH("/:id", userHandler.Update)
	}

	tickets := api.Group("/tickets", authMiddleware.RequireAuth())
	{
		tickets.POST("", ticketHandler.Create)
		tickets.GET("", ticketHandler.List)
		tickets.GET("/me", ticketHandler.ListMine)
		tickets.GET("/assigned", ticketHandler.ListAssigned)
		tickets.GET("/:id", ticketHandler.Get)
		tickets.PATCH("/:id", ticketHandler.Update)
		tickets.DELETE("/:id", ticketHandler.Delete)
		tickets.POST("/:id/comments", ticketHandler.AddComment)
		tickets.GET("/:id/comments", ticketHandler.ListComments)
		tickets.GET("/:id/attachments", attachmentHandler.ListByTicket)
	}

	featureRequests := api.Group("/feature-requests", authMiddleware.RequireAuth())
	{
		featureRequests.POST("", frHandler.Create)
		featureRequests.GET("", frHandler.List)
		featureRequests.GET("/:id", frHandler.Get)
		featureRequests.PATCH("/:id", frHandler.Update)
		featureRequests.DELETE("/:id", frHandler.Delete)
		featureRequests.POST("/:id/upvote", frHandler.Upvote)
		featureRequests.POST("/:id/comments", frHandler.AddComment)
		featureRequests.GET("/:id/comments", frHandler.ListComments)
		featureRequests.GET("/:id/attachments", attachmentHandler.ListByFeatureRequest)
	}

	attachments := api.Group("/upload/attachments", authMiddleware.RequireAuth())
	{
		attachments.POST("", attachmentHandler.Upload)
		attachments.GET("/:id/download", attachmentHandler.Download)
		attachments.DELETE("/:id", attachmentHandler.Delete)
	}

	api.GET("/dashboard/summary", authMiddleware.RequireAuth(), authorization.RequireAdmin(), dashboardHandler.Summary)
}

// Engine exposes the underlying gin engine, mainly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the configured address.
func (r *Router) Run() error {
	addr := r.cfg.Server.GetAddr()
	r.logger.Infow("starting HTTP server", "addr", addr)
	return r.engine.Run(addr)
}
