package container

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/api"
	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/auth"
	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/config"
	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/database"
	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/render"
	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/repository"
	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/service"
	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/uniqueid"
	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/websocket"
)

// Container wires configuration, storage, services and controllers together.
type Container struct {
	Config *config.Config
	DB     *gorm.DB

	Store        repository.RecordStore
	Templates    repository.TemplateRepository
	Attendees    repository.AttendeeRepository
	Certificates repository.CertificateRepository
	Site         repository.SiteRepository

	TemplateService service.TemplateService
	RosterService   service.RosterService
	IssuanceService service.IssuanceService
	ShareService    service.ShareService
	SiteService     service.SiteService
	ChatService     service.ChatService
	BackupService   *service.BackupService

	Renderer  *render.Renderer
	AdminAuth *auth.AdminAuth
	Hub       *websocket.Hub
}

// New builds the full dependency graph: database, repositories, services.
func New(cfg *config.Config) (*Container, error) {
	db, err := database.ConnectWithRetry(cfg.Database, 3, time.Second)
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	c := &Container{Config: cfg, DB: db}

	c.Store = repository.NewGormRecordStore(db)
	c.Templates = repository.NewTemplateRepository(c.Store)
	c.Attendees = repository.NewAttendeeRepository(c.Store)
	c.Certificates = repository.NewCertificateRepository(c.Store)
	c.Site = repository.NewSiteRepository(c.Store)

	c.Hub = websocket.NewHub()

	c.TemplateService = service.NewTemplateService(c.Templates)
	c.RosterService = service.NewRosterService(c.Attendees)
	c.IssuanceService = service.NewIssuanceService(
		c.Templates,
		c.Attendees,
		c.Certificates,
		uniqueid.NewRandomStrategy(),
		service.ReissuePolicy(cfg.Issuance.ReissuePolicy),
		c.Hub,
	)
	c.ShareService = service.NewShareService(c.Certificates, c.Templates)
	c.SiteService = service.NewSiteService(c.Site)
	c.ChatService = service.NewChatService()
	c.BackupService = service.NewBackupService(c.Store, cfg.Backup.Dir)

	c.Renderer = render.NewRenderer(cfg.Render.FontPath, time.Duration(cfg.Render.ImageFetchTimeout)*time.Second)
	c.AdminAuth = auth.NewAdminAuth(cfg.Admin)

	return c, nil
}

// Controllers builds the HTTP controller bundle for route setup.
func (c *Container) Controllers() *api.Controllers {
	publicURL := c.Config.Server.PublicURL

	return &api.Controllers{
		Health:      api.NewHealthController(c.DB),
		Auth:        api.NewAuthController(c.AdminAuth),
		Template:    api.NewTemplateController(c.TemplateService, c.RosterService),
		Certificate: api.NewCertificateController(c.IssuanceService, c.ShareService, c.Renderer, publicURL),
		SharePage:   api.NewSharePageController(c.ShareService, publicURL),
		Site:        api.NewSiteController(c.SiteService, c.ChatService),
		Backup:      api.NewBackupController(c.BackupService),
		AdminAuth:   c.AdminAuth,
		Hub:         c.Hub,
	}
}

// Close releases the database connection.
func (c *Container) Close() error {
	if c.DB == nil {
		return nil
	}
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
