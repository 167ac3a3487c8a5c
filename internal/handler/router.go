package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"skillforge/internal/domain/user"
	"skillforge/internal/handler/api"
	"skillforge/internal/handler/middleware"
	"skillforge/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, couponHandler *api.CouponHandler, certificateHandler *api.CertificateHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, couponHandler, certificateHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, couponHandler *api.CouponHandler, certificateHandler *api.CertificateHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		coupons := apiGroup.Group("/coupons")
		coupons.Use(authMiddleware.RequireAuth())
		{
			addRoutes(coupons, []route{
				{Method: http.MethodPost, Path: "/validate", Handler: couponHandler.Validate},
				{Method: http.MethodPost, Path: "/apply", Handler: couponHandler.Apply},
			})

			adminOnly := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}
			addRoutes(coupons, []route{
				{Method: http.MethodPost, Path: "", Handler: couponHandler.Create, Mw: adminOnly},
				{Method: http.MethodGet, Path: "", Handler: couponHandler.List, Mw: adminOnly},
				{Method: http.MethodGet, Path: "/:id", Handler: couponHandler.Get, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/:id", Handler: couponHandler.Update, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: couponHandler.Delete, Mw: adminOnly},
				{Method: http.MethodPatch, Path: "/:id/toggle-status", Handler: couponHandler.ToggleStatus, Mw: adminOnly},
			})
		}

		certificates := apiGroup.Group("/certificates")
		{
			// Public verification endpoint for third parties checking a
			// printed certificate id.
			addRoutes(certificates, []route{
				{Method: http.MethodGet, Path: "/verify/:certificateId", Handler: certificateHandler.Verify},
			})

			authRequired := certificates.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "", Handler: certificateHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: certificateHandler.Get},
				{Method: http.MethodPost, Path: "/generate", Handler: certificateHandler.Generate, Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleInstructor)}},
				{Method: http.MethodPut, Path: "/:id/revoke", Handler: certificateHandler.UpdateStatus, Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
