package bootstrap

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/damataprodutora/portfolio-backend/internal/api/http"
	"github.com/damataprodutora/portfolio-backend/internal/api/http/middleware"
	"github.com/damataprodutora/portfolio-backend/internal/auth"
	"github.com/damataprodutora/portfolio-backend/internal/portfolio"
	"github.com/damataprodutora/portfolio-backend/internal/session"
	"github.com/damataprodutora/portfolio-backend/internal/uploads"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Auth        *auth.Service
	Sessions    session.Store
	Portfolio   *portfolio.Store
	Uploads     *uploads.Store
	StaticDir   string
	SessionTTL  time.Duration
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version)
	healthHandler.RegisterRoutes(r)

	authHandler := httpapi.NewAuthHandler(dep.Auth, dep.Sessions, int(dep.SessionTTL.Seconds()))
	authHandler.RegisterRoutes(r)

	portfolioHandler := httpapi.NewPortfolioHandler(dep.Portfolio, dep.Uploads)
	r.GET("/portfolio.json", portfolioHandler.Snapshot)

	guard := middleware.RequireAuth(dep.Sessions)
	r.POST("/upload-images", guard, portfolioHandler.UploadImages)
	r.POST("/save-portfolio", guard, portfolioHandler.Save)

	r.Static("/uploads", dep.Uploads.Dir())

	if dep.StaticDir != "" {
		adminPage := filepath.Join(dep.StaticDir, "admin.html")
		r.GET("/admin.html", guard, func(c *gin.Context) {
			c.File(adminPage)
		})
		// Everything else falls through to the site assets.
		r.NoRoute(gin.WrapH(http.FileServer(http.Dir(dep.StaticDir))))
	}

	return r
}
