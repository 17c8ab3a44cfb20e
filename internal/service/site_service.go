package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/model"
	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/repository"
)

// SiteService is plain CRUD over the site's CMS records: events, team
// members and partners.
type SiteService interface {
	ListEvents(ctx context.Context) ([]*model.Event, error)
	SaveEvent(ctx context.Context, e *model.Event) (*model.Event, error)
	DeleteEvent(ctx context.Context, id string) error

	ListTeam(ctx context.Context) ([]*model.TeamMember, error)
	SaveTeamMember(ctx context.Context, m *model.TeamMember) (*model.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id string) error

	ListPartners(ctx context.Context) ([]*model.Partner, error)
	SavePartner(ctx context.Context, p *model.Partner) (*model.Partner, error)
	DeletePartner(ctx context.Context, id string) error
}

type siteService struct {
	site repository.SiteRepository
	now  func() time.Time
}

// NewSiteService creates a site service.
func NewSiteService(site repository.SiteRepository) SiteService {
	return &siteService{site: site, now: time.Now}
}

func generateSiteID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func (s *siteService) ListEvents(ctx context.Context) ([]*model.Event, error) {
	events, err := s.site.ListEvents(ctx)
	if err != nil {
		return nil, NewIOError("list events", err)
	}
	return events, nil
}

func (s *siteService) SaveEvent(ctx context.Context, e *model.Event) (*model.Event, error) {
	if e.ID == "" {
		e.ID = generateSiteID("evt")
		e.CreatedAt = s.now()
	}
	e.Title = strings.TrimSpace(e.Title)
	if err := e.Validate(); err != nil {
		return nil, NewValidationError("%v", err)
	}
	if err := s.site.SaveEvent(ctx, e); err != nil {
		return nil, NewIOError("save event", err)
	}
	return e, nil
}

func (s *siteService) DeleteEvent(ctx context.Context, id string) error {
	if err := s.site.DeleteEvent(ctx, id); err != nil {
		return NewIOError("delete event", err)
	}
	return nil
}

func (s *siteService) ListTeam(ctx context.Context) ([]*model.TeamMember, error) {
	team, err := s.site.ListTeam(ctx)
	if err != nil {
		return nil, NewIOError("list team", err)
	}
	return team, nil
}

func (s *siteService) SaveTeamMember(ctx context.Context, m *model.TeamMember) (*model.TeamMember, error) {
	if m.ID == "" {
		m.ID = generateSiteID("team")
	}
	m.Name = strings.TrimSpace(m.Name)
	if err := m.Validate(); err != nil {
		return nil, NewValidationError("%v", err)
	}
	if err := s.site.SaveTeamMember(ctx, m); err != nil {
		return nil, NewIOError("save team member", err)
	}
	return m, nil
}

func (s *siteService) DeleteTeamMember(ctx context.Context, id string) error {
	if err := s.site.DeleteTeamMember(ctx, id); err != nil {
		return NewIOError("delete team member", err)
	}
	return nil
}

func (s *siteService) ListPartners(ctx context.Context) ([]*model.Partner, error) {
	partners, err := s.site.ListPartners(ctx)
	if err != nil {
		return nil, NewIOError("list partners", err)
	}
	return partners, nil
}

func (s *siteService) SavePartner(ctx context.Context, p *model.Partner) (*model.Partner, error) {
	if p.ID == "" {
		p.ID = generateSiteID("ptr")
	}
	p.Name = strings.TrimSpace(p.Name)
	if err := p.Validate(); err != nil {
		return nil, NewValidationError("%v", err)
	}
	if err := s.site.SavePartner(ctx, p); err != nil {
		return nil, NewIOError("save partner", err)
	}
	return p, nil
}

func (s *siteService) DeletePartner(ctx context.Context, id string) error {
	if err := s.site.DeletePartner(ctx, id); err != nil {
		return NewIOError("delete partner", err)
	}
	return nil
}
