package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"clientbase-backend/internal/config"
	"clientbase-backend/internal/features/customfields"
	"clientbase-backend/internal/features/dashboard"
	"clientbase-backend/internal/features/invitations"
	"clientbase-backend/internal/features/revalidation"
	"clientbase-backend/internal/features/system"
	"clientbase-backend/internal/features/workspaces"

	accounts_controllers "clientbase-backend/internal/features/accounts/controllers"
	accounts_services "clientbase-backend/internal/features/accounts/services"
	clients_controllers "clientbase-backend/internal/features/clients/controllers"
	deals_controllers "clientbase-backend/internal/features/deals/controllers"
	interactions_controllers "clientbase-backend/internal/features/interactions/controllers"
	tasks_controllers "clientbase-backend/internal/features/tasks/controllers"
	users_controllers "clientbase-backend/internal/features/users/controllers"
	users_middleware "clientbase-backend/internal/features/users/middleware"
	users_services "clientbase-backend/internal/features/users/services"
	env_utils "clientbase-backend/internal/util/env"
	"clientbase-backend/internal/util/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title ClientBase Backend API
// @version 1.0
// @description Multi-tenant CRM backend

// @host localhost:4010
// @BasePath /api/v1
// @schemes http
func main() {
	log := logger.GetLogger()

	runMigrations(log)

	gin.SetMode(gin.ReleaseMode)
	ginApp := gin.Default()

	ginApp.Use(gzip.Gzip(
		gzip.DefaultCompression,
		gzip.WithExcludedExtensions(
			[]string{".png", ".gif", ".jpeg", ".jpg", ".ico", ".svg", ".pdf"},
		),
	))

	enableCors(ginApp)
	setUpDependencies()
	setUpRoutes(ginApp)
	runBackgroundTasks(log)

	startServerWithGracefulShutdown(log, ginApp)
}

func setUpRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	v1.GET("/docs/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	system.GetHealthcheckController().RegisterRoutes(v1)

	// Public auth routes sit behind a per-IP rate limit.
	public := v1.Group("")
	public.Use(users_middleware.RateLimitMiddleware(5, 10))

	userController := users_controllers.GetUserController()
	userController.RegisterRoutes(public)

	userService := users_services.GetUserService()
	authMiddleware := users_middleware.AuthMiddleware(userService)

	protected := v1.Group("")
	protected.Use(authMiddleware)

	userController.RegisterProtectedRoutes(protected)
	accounts_controllers.GetAccountController().RegisterRoutes(protected)
	workspaces.GetWorkspaceController().RegisterRoutes(protected)
	dashboard.GetDashboardController().RegisterRoutes(protected)
	revalidation.GetRevalidationController().RegisterRoutes(protected)

	// CRM routes additionally resolve the tenant from the path.
	crm := v1.Group("")
	crm.Use(authMiddleware, workspaces.WorkspaceMiddleware())

	clients_controllers.GetClientController().RegisterRoutes(crm)
	deals_controllers.GetDealController().RegisterRoutes(crm)
	tasks_controllers.GetTaskController().RegisterRoutes(crm)
	interactions_controllers.GetInteractionController().RegisterRoutes(crm)
	customfields.GetCustomFieldController().RegisterRoutes(crm)
	invitations.GetInvitationController().RegisterRoutes(crm)
}

func setUpDependencies() {
	accounts_services.SetupDependencies()
}

func runBackgroundTasks(log *slog.Logger) {
	scheduler := cron.New()

	_, err := scheduler.AddFunc("@hourly", func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("Panic in invitation sweeper", "error", r)
			}
		}()

		invitations.GetInvitationService().SweepExpiredInvitations()
	})
	if err != nil {
		log.Error("Failed to schedule invitation sweeper", "error", err)
		return
	}

	scheduler.Start()
	log.Info("Background tasks scheduled")
}

func runMigrations(log *slog.Logger) {
	log.Info("Running database migrations...")

	cmd := exec.Command("goose", "up")
	cmd.Env = append(
		os.Environ(),
		"GOOSE_DRIVER=postgres",
		"GOOSE_DBSTRING="+config.GetEnv().DatabaseDsn,
	)
	cmd.Dir = "./migrations"

	output, err := cmd.CombinedOutput()
	if err != nil {
		log.Error("Failed to run migrations", "error", err, "output", string(output))
		os.Exit(1)
	}

	log.Info("Database migrations completed successfully")
}

func enableCors(ginApp *gin.Engine) {
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		ginApp.Use(cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
			AllowHeaders: []string{
				"Origin",
				"Content-Length",
				"Content-Type",
				"Authorization",
				"Accept",
				"Accept-Language",
				"Accept-Encoding",
			},
			AllowCredentials: true,
		}))
	}
}

func startServerWithGracefulShutdown(log *slog.Logger, app *gin.Engine) {
	host := ""
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		host = "127.0.0.1"
	}

	srv := &http.Server{
		Addr:    host + ":" + config.GetEnv().HTTPPort,
		Handler: app,
	}

	go func() {
		log.Info("Starting HTTP server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen:", "error", err)
		}
	}()

	log.Info("ClientBase backend is running!", "http", "http://localhost:"+config.GetEnv().HTTPPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown:", "error", err)
	}

	log.Info("Server gracefully stopped")
}
