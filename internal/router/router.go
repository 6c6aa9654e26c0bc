package router

import (
	"net/http"

	docs "github.com/SuHyeon515/wky-report/api"
	"github.com/SuHyeon515/wky-report/internal/config"
	"github.com/SuHyeon515/wky-report/internal/controllers"
	"github.com/SuHyeon515/wky-report/internal/controllers/healthz"
	"github.com/SuHyeon515/wky-report/internal/httputil"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Set at build time with -ldflags "-X github.com/SuHyeon515/wky-report/internal/router.version=...".
var version = "0.0.0"

// Config sets up the router with all middlewares.
//
// The returned function unregisters the metrics and must be called
// before Config is called again.
func Config(cfg config.Config) (*gin.Engine, func(), error) {
	if err := registerPrometheusMetrics(); err != nil {
		return nil, func() {}, err
	}

	teardown := func() {
		if !unregisterPrometheusMetrics() {
			log.Error().Msg("could not unregister prometheus metrics")
		}
	}

	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	// Uploads larger than this are buffered to temporary files
	r.MaxMultipartMemory = cfg.MaxUploadBytes()

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(MetricsMiddleware())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	r.Use(cors.New(corsConfig(cfg)))

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Info().Str("version", version).Strs("cors", cfg.CORSOrigins()).Msg("Router")

	docs.SwaggerInfo.Title = "wky-report"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "Bookkeeping API for bank exports: uploads, categorization and income and expense reports."

	return r, teardown, nil
}

// corsConfig allows the configured origins. A single "*" allows every
// origin while still supporting credentials.
func corsConfig(cfg config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"OPTIONS", "GET", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
		AllowCredentials: true,
	}

	origins := cfg.CORSOrigins()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowOriginFunc = func(string) bool { return true }
	} else {
		c.AllowOrigins = origins
	}

	return c
}

// AttachRoutes attaches the API routes to the router group that is passed in
// Separating this from Config() allows us to attach it to different
// paths for different use cases.
func AttachRoutes(group *gin.RouterGroup, cfg config.Config) {
	group.GET("/health", healthz.Get)
	group.OPTIONS("/health", healthz.Options)
	group.GET("/db/ping", healthz.GetDBPing)
	group.OPTIONS("/db/ping", healthz.Options)

	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	if cfg.EnablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	controllers.RegisterCategoryRoutes(group.Group("/categories"))
	controllers.RegisterTransactionRoutes(group.Group("/transactions"))
	controllers.RegisterCategorizeRoutes(group.Group("/categorize"))
	controllers.RegisterMetaRoutes(group.Group("/meta"))
	controllers.RegisterReportRoutes(group.Group("/reports"))
	controllers.RegisterUploadRoutes(group.Group("/uploads"), cfg.MaxUploadMB)
	controllers.RegisterRuleRoutes(group.Group("/rules"))

	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"/docs/index.html"` // Swagger API documentation
	Health  string `json:"health" example:"/health"`        // Health of the API
	Metrics string `json:"metrics" example:"/metrics"`      // Endpoint returning Prometheus metrics
	Reports string `json:"reports" example:"/reports"`      // Income and expense reports
	Uploads string `json:"uploads" example:"/uploads"`      // Upload batches of bank exports
}

// GetRoot returns the link list for the API root
//
//	@Summary		API root
//	@Description	Entrypoint for the API, listing the main endpoints
//	@Tags			General
//	@Success		200	{object}	RootResponse
//	@Router			/ [get]
func GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    "/docs/index.html",
			Health:  "/health",
			Metrics: "/metrics",
			Reports: "/reports",
			Uploads: "/uploads",
		},
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}
