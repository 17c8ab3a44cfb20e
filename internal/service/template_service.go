package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/model"
	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/repository"
)

// TemplateService is the certificate template registry: admin CRUD over the
// per-event certificate designs.
type TemplateService interface {
	List(ctx context.Context) ([]*model.CertificateTemplate, error)
	Get(ctx context.Context, id string) (*model.CertificateTemplate, error)
	Create(ctx context.Context, req *TemplateRequest) (*model.CertificateTemplate, error)
	Update(ctx context.Context, id string, req *TemplateRequest) (*model.CertificateTemplate, error)
	Delete(ctx context.Context, id string) error
}

// TemplateRequest carries the editable template fields.
type TemplateRequest struct {
	EventID          string             `json:"event_id" binding:"required"`
	EventName        string             `json:"event_name" binding:"required"`
	TemplateImageURL string             `json:"template_image_url" binding:"required"`
	Theme            string             `json:"theme"`
	TextColor        model.TextColor    `json:"text_color"`
	NamePosition     model.NamePosition `json:"name_position"`
}

type templateService struct {
	templates repository.TemplateRepository
	now       func() time.Time
}

// NewTemplateService creates a template service.
func NewTemplateService(templates repository.TemplateRepository) TemplateService {
	return &templateService{
		templates: templates,
		now:       time.Now,
	}
}

func generateTemplateID() string {
	return fmt.Sprintf("tpl-%d", time.Now().UnixNano())
}

// List returns all templates
func (s *templateService) List(ctx context.Context) ([]*model.CertificateTemplate, error) {
	templates, err := s.templates.FindAll(ctx)
	if err != nil {
		return nil, NewIOError("list templates", err)
	}
	return templates, nil
}

// Get returns one template
func (s *templateService) Get(ctx context.Context, id string) (*model.CertificateTemplate, error) {
	tpl, err := s.templates.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, NewNotFoundError("template", "template %s not found", id)
	}
	if err != nil {
		return nil, NewIOError("get template", err)
	}
	return tpl, nil
}

// Create validates and persists a new template. Event ids are the join key
// to rosters and issued certificates, so one template per event is enforced
// here.
func (s *templateService) Create(ctx context.Context, req *TemplateRequest) (*model.CertificateTemplate, error) {
	tpl := &model.CertificateTemplate{
		ID:               generateTemplateID(),
		EventID:          strings.TrimSpace(req.EventID),
		EventName:        strings.TrimSpace(req.EventName),
		TemplateImageURL: strings.TrimSpace(req.TemplateImageURL),
		Theme:            req.Theme,
		TextColor:        req.TextColor,
		NamePosition:     req.NamePosition,
		CreatedAt:        s.now(),
		UpdatedAt:        s.now(),
	}

	if err := tpl.Validate(); err != nil {
		return nil, NewValidationError("%v", err)
	}

	if err := s.ensureEventIDFree(ctx, tpl.EventID, ""); err != nil {
		return nil, err
	}

	if err := s.templates.Save(ctx, tpl); err != nil {
		return nil, NewIOError("save template", err)
	}
	return tpl, nil
}

// Update validates and persists changes to an existing template.
func (s *templateService) Update(ctx context.Context, id string, req *TemplateRequest) (*model.CertificateTemplate, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	tpl := &model.CertificateTemplate{
		ID:               existing.ID,
		EventID:          strings.TrimSpace(req.EventID),
		EventName:        strings.TrimSpace(req.EventName),
		TemplateImageURL: strings.TrimSpace(req.TemplateImageURL),
		Theme:            req.Theme,
		TextColor:        req.TextColor,
		NamePosition:     req.NamePosition,
		CreatedAt:        existing.CreatedAt,
		UpdatedAt:        s.now(),
	}

	if err := tpl.Validate(); err != nil {
		return nil, NewValidationError("%v", err)
	}

	if err := s.ensureEventIDFree(ctx, tpl.EventID, tpl.ID); err != nil {
		return nil, err
	}

	if err := s.templates.Save(ctx, tpl); err != nil {
		return nil, NewIOError("save template", err)
	}
	return tpl, nil
}

// Delete removes a template. Idempotent; does not cascade to rosters or
// issued certificates, which remain resolvable until their template lookup
// fails gracefully at share time.
func (s *templateService) Delete(ctx context.Context, id string) error {
	if err := s.templates.Delete(ctx, id); err != nil {
		return NewIOError("delete template", err)
	}
	return nil
}

func (s *templateService) ensureEventIDFree(ctx context.Context, eventID, selfID string) error {
	other, err := s.templates.FindByEventID(ctx, eventID)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return NewIOError("check event id", err)
	}
	if other.ID != selfID {
		return NewValidationError("a template for event %q already exists", eventID)
	}
	return nil
}
