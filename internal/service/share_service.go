package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/model"
	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/repository"
)

// ShareService resolves a public uniqueId back to the (certificate, template)
// pair needed to redisplay a previously issued certificate, independent of
// the original issuance session.
type ShareService interface {
	Resolve(ctx context.Context, uniqueID string) (*model.Certificate, *model.CertificateTemplate, error)
}

type shareService struct {
	certs     repository.CertificateRepository
	templates repository.TemplateRepository
}

// NewShareService creates a share/verification resolver.
func NewShareService(certs repository.CertificateRepository, templates repository.TemplateRepository) ShareService {
	return &shareService{
		certs:     certs,
		templates: templates,
	}
}

// Resolve looks the certificate up by its public uniqueId, then re-fetches
// the live template by the certificate's eventId. The template is read live
// on purpose: templates are living design assets, only identity fields are
// snapshotted on the certificate. A missing certificate and a missing
// template are distinct terminal states, not failures.
func (s *shareService) Resolve(ctx context.Context, uniqueID string) (*model.Certificate, *model.CertificateTemplate, error) {
	uniqueID = strings.TrimSpace(uniqueID)
	if uniqueID == "" {
		return nil, nil, NewValidationError("certificate id is required")
	}

	cert, err := s.certs.FindByUniqueID(ctx, uniqueID)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, nil, NewNotFoundError("certificate", "no certificate found for id %s", uniqueID)
	}
	if err != nil {
		return nil, nil, NewIOError("find certificate", err)
	}

	tpl, err := s.templates.FindByEventID(ctx, cert.EventID)
	if errors.Is(err, repository.ErrRecordNotFound) {
		// the template was deleted after issuance; the certificate's
		// snapshot fields alone cannot redraw the image
		return cert, nil, NewNotFoundError("template", "the certificate design for %s is no longer available", cert.EventName)
	}
	if err != nil {
		return nil, nil, NewIOError("find template", err)
	}

	return cert, tpl, nil
}
