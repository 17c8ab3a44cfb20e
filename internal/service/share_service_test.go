package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareResolve(t *testing.T) {
	f := newIssuanceFixture(t, ReissueAlwaysNew)
	share := NewShareService(f.certs, f.templates)

	issued, _, err := f.issuance.Claim(context.Background(), "devfest-2025", "Juan Dela Cruz")
	require.NoError(t, err)

	cert, tpl, err := share.Resolve(context.Background(), issued.UniqueID)
	require.NoError(t, err)
	assert.Equal(t, issued.UniqueID, cert.UniqueID)
	assert.Equal(t, "Juan Dela Cruz", cert.RecipientName)
	assert.Equal(t, "tpl-1", tpl.ID)
}

func TestShareResolveIdempotent(t *testing.T) {
	f := newIssuanceFixture(t, ReissueAlwaysNew)
	share := NewShareService(f.certs, f.templates)

	issued, _, err := f.issuance.Claim(context.Background(), "devfest-2025", "Juan Dela Cruz")
	require.NoError(t, err)

	first, _, err := share.Resolve(context.Background(), issued.UniqueID)
	require.NoError(t, err)
	second, _, err := share.Resolve(context.Background(), issued.UniqueID)
	require.NoError(t, err)

	// resolution never mutates the record
	assert.Equal(t, first.UniqueID, second.UniqueID)
	assert.Equal(t, first.Date, second.Date)
}

func TestShareResolveUnknownID(t *testing.T) {
	f := newIssuanceFixture(t, ReissueAlwaysNew)
	share := NewShareService(f.certs, f.templates)

	_, _, err := share.Resolve(context.Background(), "nope")
	require.Error(t, err)
	assert.Equal(t, "certificate", NotFoundKind(err))
}

func TestShareResolveEmptyID(t *testing.T) {
	f := newIssuanceFixture(t, ReissueAlwaysNew)
	share := NewShareService(f.certs, f.templates)

	_, _, err := share.Resolve(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestShareResolveTemplateDeleted(t *testing.T) {
	f := newIssuanceFixture(t, ReissueAlwaysNew)
	share := NewShareService(f.certs, f.templates)

	issued, _, err := f.issuance.Claim(context.Background(), "devfest-2025", "Juan Dela Cruz")
	require.NoError(t, err)

	require.NoError(t, f.templates.Delete(context.Background(), "tpl-1"))

	// the certificate survives; the missing design is its own terminal state
	cert, tpl, err := share.Resolve(context.Background(), issued.UniqueID)
	require.Error(t, err)
	assert.Equal(t, "template", NotFoundKind(err))
	assert.Nil(t, tpl)
	require.NotNil(t, cert)
	assert.Equal(t, "DevFest 2025", cert.EventName)
}

func TestShareResolveSeesLiveTemplateEdits(t *testing.T) {
	f := newIssuanceFixture(t, ReissueAlwaysNew)
	share := NewShareService(f.certs, f.templates)

	issued, _, err := f.issuance.Claim(context.Background(), "devfest-2025", "Juan Dela Cruz")
	require.NoError(t, err)

	tpl, err := f.templates.FindByID(context.Background(), "tpl-1")
	require.NoError(t, err)
	tpl.TemplateImageURL = "https://cdn.example.com/devfest-v2.png"
	require.NoError(t, f.templates.Save(context.Background(), tpl))

	_, resolved, err := share.Resolve(context.Background(), issued.UniqueID)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/devfest-v2.png", resolved.TemplateImageURL)
}

func TestShareResolveCertificateSurvivesRosterReplace(t *testing.T) {
	f := newIssuanceFixture(t, ReissueAlwaysNew)
	share := NewShareService(f.certs, f.templates)
	roster := NewRosterService(f.attendees)

	issued, _, err := f.issuance.Claim(context.Background(), "devfest-2025", "Juan Dela Cruz")
	require.NoError(t, err)

	// clearing the roster must not invalidate issued certificates
	require.NoError(t, f.attendees.DeleteByEvent(context.Background(), "devfest-2025"))
	left, err := roster.ListByEvent(context.Background(), "devfest-2025")
	require.NoError(t, err)
	require.Empty(t, left)

	cert, _, err := share.Resolve(context.Background(), issued.UniqueID)
	require.NoError(t, err)
	assert.Equal(t, "Juan Dela Cruz", cert.RecipientName)
}
