package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/hashirsyed/portfolio-api/config"
	"github.com/hashirsyed/portfolio-api/internal/delivery/http/middleware"
	"github.com/hashirsyed/portfolio-api/internal/domain"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	ProjectUC domain.ProjectUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORS(deps.Config.CORSOrigin)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	// Health check, exposed at both observed paths
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	r.GET("/health", healthHandler)

	api := r.Group("/api")
	api.GET("/health", healthHandler)

	// Public routes
	NewContactHandler(api, deps.ContactUC)
	NewProjectHandler(api, deps.ProjectUC)

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
