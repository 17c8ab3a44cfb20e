package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/auth"
	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/config"
	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/websocket"
)

// Controllers bundles everything SetupRoutes mounts.
type Controllers struct {
	Health      *HealthController
	Auth        *AuthController
	Template    *TemplateController
	Certificate *CertificateController
	SharePage   *SharePageController
	Site        *SiteController
	Backup      *BackupController
	AdminAuth   *auth.AdminAuth
	Hub         *websocket.Hub
}

// SetupRoutes builds the gin engine with all middleware and routes.
func SetupRoutes(cfg *config.Config, ctrl *Controllers) *gin.Engine {
	if config.IsProduction(cfg) {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestIDMiddleware())
	engine.Use(RequestLogMiddleware())
	engine.Use(SecurityHeadersMiddleware())
	engine.Use(CORSMiddleware(&cfg.CORS))
	if cfg.Rate.RPS > 0 {
		engine.Use(RateLimitMiddleware(cfg.Rate.RPS, cfg.Rate.Burst))
	}

	engine.GET("/health", ctrl.Health.Check)
	engine.GET("/metrics", MetricsHandler)

	// share pages are plain HTML, outside the /api/v1 JSON surface
	engine.GET("/certificates/share/:uid", ctrl.SharePage.Page)
	engine.GET("/certificates", ctrl.SharePage.LegacyRedirect)

	v1 := engine.Group("/api/v1")
	{
		v1.POST("/auth/login", ctrl.Auth.Login)

		v1.GET("/events", ctrl.Site.ListEvents)
		v1.GET("/team", ctrl.Site.ListTeam)
		v1.GET("/partners", ctrl.Site.ListPartners)
		v1.POST("/chat", ctrl.Site.Chat)

		certificates := v1.Group("/certificates")
		{
			certificates.GET("/events", ctrl.Certificate.ListClaimableEvents)
			certificates.POST("/claim", ctrl.Certificate.Claim)
			certificates.GET("/share/:uid", ctrl.Certificate.Share)
			certificates.GET("/share/:uid/image.png", ctrl.Certificate.ShareImage)
			certificates.GET("/share/:uid/card.png", ctrl.Certificate.ShareCard)
			certificates.GET("/share/:uid/certificate.pdf", ctrl.Certificate.SharePDF)
		}

		admin := v1.Group("/admin")
		admin.Use(ctrl.AdminAuth.Middleware())
		{
			admin.GET("/templates", ctrl.Template.List)
			admin.POST("/templates", ctrl.Template.Create)
			admin.GET("/templates/:id", ctrl.Template.Get)
			admin.PUT("/templates/:id", ctrl.Template.Update)
			admin.DELETE("/templates/:id", ctrl.Template.Delete)
			admin.POST("/templates/:id/roster", ctrl.Template.UploadRoster)
			admin.GET("/templates/:id/roster", ctrl.Template.ListRoster)

			admin.POST("/events", ctrl.Site.SaveEvent)
			admin.DELETE("/events/:id", ctrl.Site.DeleteEvent)
			admin.POST("/team", ctrl.Site.SaveTeamMember)
			admin.DELETE("/team/:id", ctrl.Site.DeleteTeamMember)
			admin.POST("/partners", ctrl.Site.SavePartner)
			admin.DELETE("/partners/:id", ctrl.Site.DeletePartner)

			admin.POST("/backups", ctrl.Backup.Create)
			admin.GET("/backups", ctrl.Backup.List)
		}
	}

	engine.GET("/ws/admin", websocket.Handler(ctrl.Hub, ctrl.AdminAuth))

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    404,
			Message: "route not found",
		})
	})

	return engine
}
