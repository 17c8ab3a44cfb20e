package repository

import (
	"context"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/model"
)

// SiteRepository covers the legacy CMS collections: events, team members and
// partners. These are flat records with no relationships.
type SiteRepository interface {
	ListEvents(ctx context.Context) ([]*model.Event, error)
	SaveEvent(ctx context.Context, e *model.Event) error
	DeleteEvent(ctx context.Context, id string) error

	ListTeam(ctx context.Context) ([]*model.TeamMember, error)
	SaveTeamMember(ctx context.Context, m *model.TeamMember) error
	DeleteTeamMember(ctx context.Context, id string) error

	ListPartners(ctx context.Context) ([]*model.Partner, error)
	SavePartner(ctx context.Context, p *model.Partner) error
	DeletePartner(ctx context.Context, id string) error
}

type siteRepository struct {
	store RecordStore
}

// NewSiteRepository creates a site repository over a record store.
func NewSiteRepository(store RecordStore) SiteRepository {
	return &siteRepository{store: store}
}

func (r *siteRepository) ListEvents(ctx context.Context) ([]*model.Event, error) {
	raws, err := r.store.List(ctx, model.CollectionEvents)
	if err != nil {
		return nil, err
	}
	return decodeAll[model.Event](raws)
}

func (r *siteRepository) SaveEvent(ctx context.Context, e *model.Event) error {
	return r.store.Upsert(ctx, model.CollectionEvents, e)
}

func (r *siteRepository) DeleteEvent(ctx context.Context, id string) error {
	return r.store.Delete(ctx, model.CollectionEvents, id)
}

func (r *siteRepository) ListTeam(ctx context.Context) ([]*model.TeamMember, error) {
	raws, err := r.store.List(ctx, model.CollectionTeamMembers)
	if err != nil {
		return nil, err
	}
	return decodeAll[model.TeamMember](raws)
}

func (r *siteRepository) SaveTeamMember(ctx context.Context, m *model.TeamMember) error {
	return r.store.Upsert(ctx, model.CollectionTeamMembers, m)
}

func (r *siteRepository) DeleteTeamMember(ctx context.Context, id string) error {
	return r.store.Delete(ctx, model.CollectionTeamMembers, id)
}

func (r *siteRepository) ListPartners(ctx context.Context) ([]*model.Partner, error) {
	raws, err := r.store.List(ctx, model.CollectionPartners)
	if err != nil {
		return nil, err
	}
	return decodeAll[model.Partner](raws)
}

func (r *siteRepository) SavePartner(ctx context.Context, p *model.Partner) error {
	return r.store.Upsert(ctx, model.CollectionPartners, p)
}

func (r *siteRepository) DeletePartner(ctx context.Context, id string) error {
	return r.store.Delete(ctx, model.CollectionPartners, id)
}
