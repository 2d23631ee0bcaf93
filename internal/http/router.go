package api

import (
	"fmt"
	stdhttp "net/http"

	intconfig "navmind/internal/config"
	h "navmind/internal/http/handlers"
	"navmind/internal/http/middleware"
	"navmind/internal/http/web"
	"navmind/internal/llm"
	"navmind/internal/services"
	"navmind/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps are the collaborators the routes are wired with.
type Deps struct {
	LLM llm.Completer
	// Users is nil when accounts are disabled.
	Users services.UserStore
}

func NewRouter(env intconfig.Env, deps Deps) (*gin.Engine, error) {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Logger().Warn("failed to set trusted proxies", zap.Error(err))
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	plans := h.Plans{Client: deps.LLM, USDToINR: env.USDToINR}
	accounts := deps.Users != nil
	secret := []byte(env.JWTSecret)

	r.GET("/", plans.Index)
	r.POST("/plan", plans.SubmitPlan)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		if accounts {
			auth := api.Group("/auth")
			ah := h.Accounts{Users: deps.Users, JWTSecret: secret}
			auth.POST("/register", ah.Register)
			auth.POST("/login", ah.Login)

			api.GET("/routes", middleware.RequireAuth(secret), middleware.RequireRoles("admin"), h.Routes)
		} else {
			api.GET("/routes", h.Routes)
		}

		planGroup := api.Group("/plans")
		if accounts {
			planGroup.Use(middleware.RequireAuth(secret))
		}
		planGroup.POST("", plans.CreatePlan)
		planGroup.POST("/export", plans.ExportPlan)
	}

	h.SetRouter(r)
	return r, nil
}
