package testutils

import (
	"github.com/gin-gonic/gin"

	"github.com/projetvet/projetvet-go/internal/api/routes"
	"github.com/projetvet/projetvet-go/internal/application"
)

func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, application.Deps{})
	return r
}
