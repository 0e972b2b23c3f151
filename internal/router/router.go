package router

import (
	"time"

	"github.com/clientdeck-dev/clientdeck/internal/handlers"
	"github.com/clientdeck-dev/clientdeck/internal/metrics"
	"github.com/clientdeck-dev/clientdeck/internal/middleware"
	"github.com/clientdeck-dev/clientdeck/internal/store"
	"github.com/clientdeck-dev/clientdeck/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Stores struct {
	Tenants store.TenantStore
	Owners  store.OwnerStore
}

func NewRouter(stores Stores) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(metrics.Middleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authHandler := handlers.NewAuthHandler(stores.Owners)
	clientsHandler := handlers.NewClientsHandler(stores.Tenants)
	projectsHandler := handlers.NewProjectsHandler(stores.Tenants)
	filesHandler := handlers.NewFilesHandler(stores.Tenants)
	portalHandler := handlers.NewPortalHandler(stores.Tenants)

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.AuthMiddleware(stores.Owners), authHandler.Me)
		}

		// Public portal surface: tenancy resolution by slug only, no
		// ownership check, no mutation path.
		api.GET("/portal/:subdomain", portalHandler.Show)

		clients := api.Group("/clients", middleware.AuthMiddleware(stores.Owners))
		{
			clients.POST("", clientsHandler.Create)
			clients.GET("", clientsHandler.List)
			clients.GET("/:client_id", clientsHandler.Get)
			clients.PUT("/:client_id", clientsHandler.Update)
			clients.DELETE("/:client_id", clientsHandler.Delete)

			clients.POST("/:client_id/projects", projectsHandler.Create)
			clients.PUT("/:client_id/projects/:project_id", projectsHandler.Update)
			clients.DELETE("/:client_id/projects/:project_id", projectsHandler.Delete)
			clients.POST("/:client_id/projects/:project_id/updates", projectsHandler.CreateUpdate)

			clients.POST("/:client_id/files", filesHandler.Create)
			clients.DELETE("/:client_id/files/:file_id", filesHandler.Delete)
		}
	}

	return r
}
