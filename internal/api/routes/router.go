package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/projetvet/projetvet-go/docs"
	"github.com/projetvet/projetvet-go/internal/api/handlers"
	"github.com/projetvet/projetvet-go/internal/api/middleware"
	"github.com/projetvet/projetvet-go/internal/application"
	"github.com/projetvet/projetvet-go/internal/config"
	"github.com/projetvet/projetvet-go/internal/cron"
	"github.com/projetvet/projetvet-go/internal/repository"
)

// RegisterRoutes wires repositories, services and handlers onto the
// engine and starts the background notification dispatcher.
func RegisterRoutes(r *gin.Engine, deps application.Deps) {
	reposInstance := repository.New()
	servicesInstance := application.New(reposInstance, deps)
	handlersInstance := handlers.New(servicesInstance, r)
	authMiddleware := middleware.NewAuth(reposInstance)

	// Status events reach websocket subscribers through the hub.
	servicesInstance.Entry.Events = handlersInstance.Events

	cron.StartNotificationDispatcher(servicesInstance.Notification)

	application.SeedSchemas(servicesInstance.Schema, config.SeedSchemaDir)

	docs.SwaggerInfo.BasePath = "/"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/register", handlersInstance.User.Register)
	r.POST("/login", handlersInstance.User.Login)
	r.POST("/logout", handlersInstance.User.Logout)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/ws/entries", handlersInstance.Events.Subscribe)

		auth.GET("/formsets", handlersInstance.Schema.ListFormSets)
		auth.GET("/structure/:formset", handlersInstance.Schema.GetStructure)

		admin := auth.Group("/admin", authMiddleware.Admin())
		{
			admin.POST("/structure/:formset/import", handlersInstance.Schema.Import)
			admin.POST("/users/roles", handlersInstance.User.AssignRole)
		}

		entries := auth.Group("/entries")
		{
			entries.GET("", handlersInstance.Entry.List)
			entries.POST("", handlersInstance.Entry.Create)
			entries.GET("/:id", handlersInstance.Entry.Get)
			entries.PUT("/:id", handlersInstance.Entry.Update)
			entries.DELETE("/:id", handlersInstance.Entry.Delete)
		}

		reports := auth.Group("/reports")
		{
			reports.GET("/credits", handlersInstance.Report.Credits)
			reports.GET("/interviews", handlersInstance.Report.Interviews)
		}
	}
}
