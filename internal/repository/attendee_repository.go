package repository

import (
	"context"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/model"
)

// AttendeeRepository is the typed view over the certificate_attendees
// collection.
type AttendeeRepository interface {
	ListByEvent(ctx context.Context, eventID string) ([]*model.CertificateAttendee, error)
	BulkSave(ctx context.Context, attendees []*model.CertificateAttendee) error
	DeleteByEvent(ctx context.Context, eventID string) error
}

type attendeeRepository struct {
	store RecordStore
}

// NewAttendeeRepository creates an attendee repository over a record store.
func NewAttendeeRepository(store RecordStore) AttendeeRepository {
	return &attendeeRepository{store: store}
}

// ListByEvent returns every attendee imported for the event, in store order.
func (r *attendeeRepository) ListByEvent(ctx context.Context, eventID string) ([]*model.CertificateAttendee, error) {
	raws, err := r.store.List(ctx, model.CollectionAttendees)
	if err != nil {
		return nil, err
	}
	all, err := decodeAll[model.CertificateAttendee](raws)
	if err != nil {
		return nil, err
	}

	out := make([]*model.CertificateAttendee, 0, len(all))
	for _, a := range all {
		if a.EventID == eventID {
			out = append(out, a)
		}
	}
	return out, nil
}

// BulkSave persists an import batch. Each write is independent; a failure
// mid-batch leaves earlier rows in place (no multi-record transactions).
func (r *attendeeRepository) BulkSave(ctx context.Context, attendees []*model.CertificateAttendee) error {
	for _, a := range attendees {
		if err := r.store.Upsert(ctx, model.CollectionAttendees, a); err != nil {
			return err
		}
	}
	return nil
}

// DeleteByEvent removes the event's entire roster (replace-mode imports).
func (r *attendeeRepository) DeleteByEvent(ctx context.Context, eventID string) error {
	attendees, err := r.ListByEvent(ctx, eventID)
	if err != nil {
		return err
	}
	for _, a := range attendees {
		if err := r.store.Delete(ctx, model.CollectionAttendees, a.ID); err != nil {
			return err
		}
	}
	return nil
}
