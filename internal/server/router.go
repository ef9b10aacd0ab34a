package server

import (
	"net/http"

	"github.com/maddiejones03/Workah/internal/config"
	"github.com/maddiejones03/Workah/internal/handlers"
	"github.com/maddiejones03/Workah/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")
	r.Static("/uploads", "./web/static/uploads")
	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("workah_session", store))

	r.Use(middleware.InjectUser())

	// landing page with search
	r.GET("/", handlers.Index)

	// auth
	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.Login)
	r.GET("/register", handlers.ShowRegister)
	r.POST("/register", handlers.Register)
	r.GET("/logout", handlers.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// applications (any logged-in user)
	auth.GET("/jobs/:id/apply", handlers.ShowApply)
	auth.POST("/jobs/:id/apply", handlers.Apply)

	// listing management (managers only)
	manager := auth.Group("/")
	manager.Use(middleware.RequireManager())

	manager.GET("/dashboard", handlers.Dashboard)
	manager.GET("/jobs/add", handlers.ShowAddJob)
	manager.POST("/jobs/add", handlers.AddJob)
	manager.GET("/jobs/edit/:id", handlers.ShowEditJob)
	manager.POST("/jobs/edit/:id", handlers.EditJob)
	manager.POST("/jobs/delete/:id", handlers.DeleteJob)

	// healthcheck
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
