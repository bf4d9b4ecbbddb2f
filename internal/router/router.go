package router

import (
	"fmt"
	"sort"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/bilimly/bilimly-api/internal/handler"
	"github.com/bilimly/bilimly-api/internal/middleware"
	"github.com/bilimly/bilimly-api/internal/security"
	"github.com/bilimly/bilimly-api/internal/service"
	"github.com/bilimly/bilimly-api/pkg/config"
	appErrors "github.com/bilimly/bilimly-api/pkg/errors"
	"github.com/bilimly/bilimly-api/pkg/logger"
	corsmiddleware "github.com/bilimly/bilimly-api/pkg/middleware/cors"
	reqidmiddleware "github.com/bilimly/bilimly-api/pkg/middleware/requestid"
	"github.com/bilimly/bilimly-api/pkg/response"
)

// Deps bundles the collaborators the router composes.
type Deps struct {
	Config  *config.Config
	Logger  *zap.Logger
	Tokens  *security.TokenManager
	Metrics *service.MetricsService

	Auth           *handler.AuthHandler
	Courses        *handler.CourseHandler
	Profile        *handler.ProfileHandler
	Admin          *handler.AdminHandler
	Health         *handler.HealthHandler
	MetricsHandler *handler.MetricsHandler
}

// New assembles the gin engine with the full middleware chain and route table.
func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	if deps.Logger != nil {
		r.Use(logger.GinMiddleware(deps.Logger))
	}
	r.Use(corsmiddleware.New(deps.Config.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(deps.Metrics))

	r.GET("/health", deps.Health.Health)
	r.GET("/ready", deps.Health.Ready)
	r.GET("/metrics", deps.MetricsHandler.Prometheus)

	if deps.Config.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	prefix := deps.Config.APIPrefix
	if prefix == "" {
		prefix = "/api"
	}
	api := r.Group(prefix)
	api.GET("/test-db", deps.Health.TestDB)
	api.GET("/courses", deps.Courses.List)

	auth := api.Group("/auth")
	auth.POST("/register", deps.Auth.Register)
	auth.POST("/login", deps.Auth.Login)

	user := api.Group("/user")
	user.GET("/profile", middleware.RequireAuth(deps.Tokens), deps.Profile.Profile)

	// The admin group intentionally has no auth guard; see AdminHandler.
	admin := api.Group("/admin")
	admin.GET("/users", deps.Admin.Users)
	admin.GET("/users/export", deps.Admin.Export)

	catalog := routeCatalog(r)
	r.NoRoute(func(c *gin.Context) {
		response.ErrorWithMeta(c, appErrors.ErrRouteNotFound, map[string]interface{}{
			"available_routes": catalog,
		})
	})

	return r
}

// routeCatalog snapshots the registered routes for the 404 payload.
func routeCatalog(r *gin.Engine) []string {
	routes := r.Routes()
	catalog := make([]string, 0, len(routes))
	for _, route := range routes {
		catalog = append(catalog, fmt.Sprintf("%s %s", route.Method, route.Path))
	}
	sort.Strings(catalog)
	return catalog
}
