package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/model"
	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/repository"
)

func newTemplateFixture() TemplateService {
	store := repository.NewMemoryRecordStore()
	return NewTemplateService(repository.NewTemplateRepository(store))
}

func validTemplateRequest() *TemplateRequest {
	return &TemplateRequest{
		EventID:          "devfest-2025",
		EventName:        "DevFest 2025",
		TemplateImageURL: "https://cdn.example.com/devfest.png",
		TextColor:        model.TextColorWhite,
		NamePosition:     model.NamePosition{X: 50, Y: 40},
	}
}

func TestTemplateCreate(t *testing.T) {
	svc := newTemplateFixture()

	tpl, err := svc.Create(context.Background(), validTemplateRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, tpl.ID)
	assert.Equal(t, "devfest-2025", tpl.EventID)
	assert.False(t, tpl.CreatedAt.IsZero())

	got, err := svc.Get(context.Background(), tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, tpl.EventName, got.EventName)
}

func TestTemplateCreateValidation(t *testing.T) {
	svc := newTemplateFixture()

	cases := []func(*TemplateRequest){
		func(r *TemplateRequest) { r.EventID = "" },
		func(r *TemplateRequest) { r.EventName = "  " },
		func(r *TemplateRequest) { r.TemplateImageURL = "" },
		func(r *TemplateRequest) { r.TextColor = "red" },
		func(r *TemplateRequest) { r.NamePosition.X = 120 },
		func(r *TemplateRequest) { r.NamePosition.Y = -5 },
	}
	for i, mutate := range cases {
		req := validTemplateRequest()
		mutate(req)
		_, err := svc.Create(context.Background(), req)
		require.Error(t, err, "case %d", i)
		assert.True(t, IsValidation(err), "case %d", i)
	}
}

func TestTemplateEventIDUnique(t *testing.T) {
	svc := newTemplateFixture()

	_, err := svc.Create(context.Background(), validTemplateRequest())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validTemplateRequest())
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestTemplateUpdate(t *testing.T) {
	svc := newTemplateFixture()

	tpl, err := svc.Create(context.Background(), validTemplateRequest())
	require.NoError(t, err)

	req := validTemplateRequest()
	req.EventName = "DevFest Bacolod 2025"
	req.NamePosition = model.NamePosition{X: 80, Y: 30}

	updated, err := svc.Update(context.Background(), tpl.ID, req)
	require.NoError(t, err)
	assert.Equal(t, tpl.ID, updated.ID)
	assert.Equal(t, "DevFest Bacolod 2025", updated.EventName)
	assert.Equal(t, 80.0, updated.NamePosition.X)
	// an update may keep its own event id
	assert.Equal(t, "devfest-2025", updated.EventID)
}

func TestTemplateUpdateCannotStealEventID(t *testing.T) {
	svc := newTemplateFixture()

	_, err := svc.Create(context.Background(), validTemplateRequest())
	require.NoError(t, err)

	other := validTemplateRequest()
	other.EventID = "io-extended-2025"
	second, err := svc.Create(context.Background(), other)
	require.NoError(t, err)

	steal := validTemplateRequest()
	_, err = svc.Update(context.Background(), second.ID, steal)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestTemplateUpdateNotFound(t *testing.T) {
	svc := newTemplateFixture()

	_, err := svc.Update(context.Background(), "tpl-missing", validTemplateRequest())
	require.Error(t, err)
	assert.Equal(t, "template", NotFoundKind(err))
}

func TestTemplateDeleteIdempotent(t *testing.T) {
	svc := newTemplateFixture()

	tpl, err := svc.Create(context.Background(), validTemplateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), tpl.ID))
	require.NoError(t, svc.Delete(context.Background(), tpl.ID))

	_, err = svc.Get(context.Background(), tpl.ID)
	assert.True(t, IsNotFound(err))
}

func TestTemplateList(t *testing.T) {
	svc := newTemplateFixture()

	_, err := svc.Create(context.Background(), validTemplateRequest())
	require.NoError(t, err)
	other := validTemplateRequest()
	other.EventID = "io-extended-2025"
	other.EventName = "I/O Extended 2025"
	_, err = svc.Create(context.Background(), other)
	require.NoError(t, err)

	templates, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, templates, 2)
}
