package repository

import (
	"context"
	"errors"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/model"
)

// TemplateRepository is the typed view over the certificate_templates
// collection.
type TemplateRepository interface {
	FindAll(ctx context.Context) ([]*model.CertificateTemplate, error)
	FindByID(ctx context.Context, id string) (*model.CertificateTemplate, error)
	FindByEventID(ctx context.Context, eventID string) (*model.CertificateTemplate, error)
	Save(ctx context.Context, tpl *model.CertificateTemplate) error
	Delete(ctx context.Context, id string) error
}

type templateRepository struct {
	store RecordStore
}

// NewTemplateRepository creates a template repository over a record store.
func NewTemplateRepository(store RecordStore) TemplateRepository {
	return &templateRepository{store: store}
}

// FindAll returns all templates
func (r *templateRepository) FindAll(ctx context.Context) ([]*model.CertificateTemplate, error) {
	raws, err := r.store.List(ctx, model.CollectionTemplates)
	if err != nil {
		return nil, err
	}
	return decodeAll[model.CertificateTemplate](raws)
}

// FindByID returns one template or ErrRecordNotFound
func (r *templateRepository) FindByID(ctx context.Context, id string) (*model.CertificateTemplate, error) {
	raw, err := r.store.Get(ctx, model.CollectionTemplates, id)
	if err != nil {
		return nil, err
	}
	return decodeOne[model.CertificateTemplate](raw)
}

// FindByEventID returns the template for an event or ErrRecordNotFound.
// Event ids are the join key to rosters and issued certificates, so the
// registry enforces one template per event at save time.
func (r *templateRepository) FindByEventID(ctx context.Context, eventID string) (*model.CertificateTemplate, error) {
	templates, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, tpl := range templates {
		if tpl.EventID == eventID {
			return tpl, nil
		}
	}
	return nil, ErrRecordNotFound
}

// Save upserts a template
func (r *templateRepository) Save(ctx context.Context, tpl *model.CertificateTemplate) error {
	if tpl == nil {
		return errors.New("template is required")
	}
	return r.store.Upsert(ctx, model.CollectionTemplates, tpl)
}

// Delete removes a template; absent ids are not an error
func (r *templateRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, model.CollectionTemplates, id)
}
