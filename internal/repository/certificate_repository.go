package repository

import (
	"context"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/model"
)

// CertificateRepository is the typed view over the certificates_issued
// collection.
type CertificateRepository interface {
	Save(ctx context.Context, cert *model.Certificate) error
	// FindByUniqueID matches on the public share identifier, not the
	// storage key.
	FindByUniqueID(ctx context.Context, uniqueID string) (*model.Certificate, error)
	ListByEvent(ctx context.Context, eventID string) ([]*model.Certificate, error)
}

type certificateRepository struct {
	store RecordStore
}

// NewCertificateRepository creates a certificate repository over a record store.
func NewCertificateRepository(store RecordStore) CertificateRepository {
	return &certificateRepository{store: store}
}

// Save persists an issued certificate
func (r *certificateRepository) Save(ctx context.Context, cert *model.Certificate) error {
	return r.store.Upsert(ctx, model.CollectionCertificates, cert)
}

// FindByUniqueID scans issued certificates for the public identifier.
func (r *certificateRepository) FindByUniqueID(ctx context.Context, uniqueID string) (*model.Certificate, error) {
	raws, err := r.store.List(ctx, model.CollectionCertificates)
	if err != nil {
		return nil, err
	}
	certs, err := decodeAll[model.Certificate](raws)
	if err != nil {
		return nil, err
	}

	for _, cert := range certs {
		if cert.UniqueID == uniqueID {
			return cert, nil
		}
	}
	return nil, ErrRecordNotFound
}

// ListByEvent returns the certificates issued for one event, in store order.
func (r *certificateRepository) ListByEvent(ctx context.Context, eventID string) ([]*model.Certificate, error) {
	raws, err := r.store.List(ctx, model.CollectionCertificates)
	if err != nil {
		return nil, err
	}
	certs, err := decodeAll[model.Certificate](raws)
	if err != nil {
		return nil, err
	}

	out := make([]*model.Certificate, 0, len(certs))
	for _, cert := range certs {
		if cert.EventID == eventID {
			out = append(out, cert)
		}
	}
	return out, nil
}
