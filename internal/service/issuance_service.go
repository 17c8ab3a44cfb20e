package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/metrics"
	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/model"
	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/repository"
	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/uniqueid"
)

// ClaimState names the stages of one claim attempt.
type ClaimState string

const (
	StateIdle       ClaimState = "idle"
	StateValidating ClaimState = "validating"
	StateMatching   ClaimState = "matching"
	StateMinting    ClaimState = "minting"
	StatePersisted  ClaimState = "persisted"
	StateRejected   ClaimState = "rejected"
	StateNotFound   ClaimState = "not_found"
)

// ReissuePolicy decides what a repeat claim for an already-certified name
// yields.
type ReissuePolicy string

const (
	// ReissueAlwaysNew mints a fresh certificate on every successful claim.
	ReissueAlwaysNew ReissuePolicy = "always_new"
	// ReissueReuseExisting returns the earliest certificate already issued
	// for the same normalized name and event.
	ReissueReuseExisting ReissuePolicy = "reuse_existing"
)

// Notifier receives issuance events (admin dashboard live feed).
type Notifier interface {
	CertificateIssued(cert *model.Certificate)
}

// IssuanceService runs the claim workflow: validate the claim, match it
// against the event's imported roster, mint and persist a certificate.
type IssuanceService interface {
	Claim(ctx context.Context, eventID, fullName string) (*model.Certificate, *model.CertificateTemplate, error)
	// ClaimableEvents lists the events that currently offer certificates.
	ClaimableEvents(ctx context.Context) ([]*model.CertificateTemplate, error)
}

type issuanceService struct {
	templates repository.TemplateRepository
	attendees repository.AttendeeRepository
	certs     repository.CertificateRepository
	ids       uniqueid.Generator
	policy    ReissuePolicy
	notifier  Notifier
	now       func() time.Time
}

// NewIssuanceService creates an issuance service. notifier may be nil.
func NewIssuanceService(
	templates repository.TemplateRepository,
	attendees repository.AttendeeRepository,
	certs repository.CertificateRepository,
	ids uniqueid.Generator,
	policy ReissuePolicy,
	notifier Notifier,
) IssuanceService {
	if ids == nil {
		ids = uniqueid.NewRandomStrategy()
	}
	if policy == "" {
		policy = ReissueAlwaysNew
	}
	return &issuanceService{
		templates: templates,
		attendees: attendees,
		certs:     certs,
		ids:       ids,
		policy:    policy,
		notifier:  notifier,
		now:       time.Now,
	}
}

// NormalizeName produces the matching form of a name: trimmed, internal
// whitespace runs collapsed to single spaces, lowercased. Matching requires
// byte-for-byte equality of normalized forms; nothing fuzzy.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Claim walks validating -> matching -> minting -> persisted, or stops at a
// rejection/not-found terminal state. On success it returns the certificate
// together with the event's template for immediate rendering.
func (s *issuanceService) Claim(ctx context.Context, eventID, fullName string) (*model.Certificate, *model.CertificateTemplate, error) {
	// Validating
	eventID = strings.TrimSpace(eventID)
	fullName = strings.TrimSpace(fullName)
	switch {
	case eventID == "" && fullName == "":
		metrics.RecordClaim(string(StateRejected))
		return nil, nil, NewValidationError("please choose an event and enter your full name")
	case eventID == "":
		metrics.RecordClaim(string(StateRejected))
		return nil, nil, NewValidationError("please choose an event")
	case fullName == "":
		metrics.RecordClaim(string(StateRejected))
		return nil, nil, NewValidationError("please enter your full name")
	}

	// Matching
	tpl, err := s.templates.FindByEventID(ctx, eventID)
	if errors.Is(err, repository.ErrRecordNotFound) {
		metrics.RecordClaim(string(StateRejected))
		return nil, nil, NewNotFoundError("event", "this event is not available for certificates yet")
	}
	if err != nil {
		metrics.RecordClaim("error")
		return nil, nil, NewIOError("load template", err)
	}

	roster, err := s.attendees.ListByEvent(ctx, eventID)
	if err != nil {
		metrics.RecordClaim("error")
		return nil, nil, NewIOError("load roster", err)
	}

	claimed := NormalizeName(fullName)
	var match *model.CertificateAttendee
	for _, attendee := range roster {
		if NormalizeName(attendee.FullName) == claimed {
			match = attendee
			break
		}
	}
	if match == nil {
		metrics.RecordClaim(string(StateNotFound))
		return nil, nil, NewNotFoundError("attendee",
			"we could not find %q on the attendee list for %s; please double-check the spelling or contact the organizers",
			fullName, tpl.EventName)
	}

	if s.policy == ReissueReuseExisting {
		if existing := s.findExisting(ctx, eventID, match.FullName); existing != nil {
			metrics.RecordClaim(string(StatePersisted))
			return existing, tpl, nil
		}
	}

	// Minting: recipientName comes from the roster row, preserving its
	// canonical spelling and casing, never the claimant's raw input.
	cert := &model.Certificate{
		ID:            fmt.Sprintf("%s-%s", tpl.ID, s.ids.NewID()),
		UniqueID:      s.ids.NewID(),
		EventID:       tpl.EventID,
		EventName:     tpl.EventName,
		RecipientName: match.FullName,
		Date:          s.now(),
		Theme:         tpl.Theme,
	}

	// Persisted
	if err := s.certs.Save(ctx, cert); err != nil {
		metrics.RecordClaim("error")
		return nil, nil, NewIOError("save certificate", err)
	}

	metrics.RecordClaim(string(StatePersisted))
	metrics.RecordCertificateIssued()
	if s.notifier != nil {
		s.notifier.CertificateIssued(cert)
	}

	return cert, tpl, nil
}

// findExisting returns the earliest certificate already issued for the
// normalized name, or nil. Lookup failures fall through to a fresh mint.
func (s *issuanceService) findExisting(ctx context.Context, eventID, fullName string) *model.Certificate {
	issued, err := s.certs.ListByEvent(ctx, eventID)
	if err != nil {
		return nil
	}
	want := NormalizeName(fullName)
	for _, cert := range issued {
		if NormalizeName(cert.RecipientName) == want {
			return cert
		}
	}
	return nil
}

// ClaimableEvents returns all templates, i.e. every event a certificate can
// currently be claimed for.
func (s *issuanceService) ClaimableEvents(ctx context.Context) ([]*model.CertificateTemplate, error) {
	templates, err := s.templates.FindAll(ctx)
	if err != nil {
		return nil, NewIOError("list templates", err)
	}
	return templates, nil
}
