package render

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/model"
)

// testArtDataURI builds a solid-color PNG wrapped in a data URI so renderer
// tests run without network or filesystem fixtures.
func testArtDataURI(t *testing.T, w, h int, c color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func testCertificate() *model.Certificate {
	return &model.Certificate{
		ID:            "tpl-1-abc",
		UniqueID:      "a1b2c3d4-e5f6-7890-abcd-ef1234567890",
		EventID:       "devfest-2025",
		EventName:     "DevFest 2025",
		RecipientName: "Juan Dela Cruz",
		Date:          time.Date(2025, 11, 8, 9, 0, 0, 0, time.UTC),
	}
}

func TestComputeLayoutAnchors(t *testing.T) {
	bounds := image.Rect(0, 0, 1000, 500)

	centered := ComputeLayout(bounds, model.NamePosition{X: 50, Y: 40})
	assert.Equal(t, 500.0, centered.NameX)
	assert.Equal(t, 200.0, centered.NameY)

	offset := ComputeLayout(bounds, model.NamePosition{X: 80, Y: 30})
	assert.Equal(t, 800.0, offset.NameX)
	assert.Equal(t, 150.0, offset.NameY)

	// the event line hangs a fixed step below the name anchor
	assert.Equal(t, offset.NameX, offset.EventX)
	assert.InDelta(t, 150.0+500*0.07, offset.EventY, 0.001)

	// the stamp is pinned to the bottom center regardless of the anchor
	assert.Equal(t, 500.0, offset.StampX)
	assert.InDelta(t, 500*0.94, offset.StampY, 0.001)
}

func TestComputeLayoutEdges(t *testing.T) {
	bounds := image.Rect(0, 0, 400, 300)

	topLeft := ComputeLayout(bounds, model.NamePosition{X: 0, Y: 0})
	assert.Equal(t, 0.0, topLeft.NameX)
	assert.Equal(t, 0.0, topLeft.NameY)

	bottomRight := ComputeLayout(bounds, model.NamePosition{X: 100, Y: 100})
	assert.Equal(t, 400.0, bottomRight.NameX)
	assert.Equal(t, 300.0, bottomRight.NameY)

	// shadow never collapses below one pixel on small art
	assert.Equal(t, 1.0, topLeft.ShadowOffset)
}

func TestRenderPNG(t *testing.T) {
	r := NewRenderer("", time.Second)
	tpl := &model.CertificateTemplate{
		ID:               "tpl-1",
		EventID:          "devfest-2025",
		EventName:        "DevFest 2025",
		TemplateImageURL: testArtDataURI(t, 600, 400, color.White),
		TextColor:        model.TextColorBlack,
		NamePosition:     model.NamePosition{X: 50, Y: 40},
	}

	data, err := r.RenderPNG(context.Background(), testCertificate(), tpl)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 600, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())
}

func TestRenderShareCardAddsCaptionBand(t *testing.T) {
	r := NewRenderer("", time.Second)
	tpl := &model.CertificateTemplate{
		ID:               "tpl-1",
		EventID:          "devfest-2025",
		EventName:        "DevFest 2025",
		TemplateImageURL: testArtDataURI(t, 600, 400, color.Black),
		TextColor:        model.TextColorWhite,
		NamePosition:     model.NamePosition{X: 50, Y: 40},
	}

	data, err := r.RenderShareCard(context.Background(), testCertificate(), tpl, "http://localhost:8080/certificates/share/a1b2c3d4")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), 600)
	assert.Greater(t, img.Bounds().Dy(), 400)
}

func TestRenderPDF(t *testing.T) {
	r := NewRenderer("", time.Second)
	tpl := &model.CertificateTemplate{
		ID:               "tpl-1",
		EventID:          "devfest-2025",
		EventName:        "DevFest 2025",
		TemplateImageURL: testArtDataURI(t, 600, 400, color.White),
		NamePosition:     model.NamePosition{X: 50, Y: 40},
	}

	data, err := r.RenderPDF(context.Background(), testCertificate(), tpl)
	require.NoError(t, err)
	require.Greater(t, len(data), 4)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderMissingArt(t *testing.T) {
	r := NewRenderer("", time.Second)
	tpl := &model.CertificateTemplate{
		ID:               "tpl-1",
		EventID:          "devfest-2025",
		EventName:        "DevFest 2025",
		TemplateImageURL: "/no/such/file.png",
		NamePosition:     model.NamePosition{X: 50, Y: 40},
	}

	_, err := r.RenderPNG(context.Background(), testCertificate(), tpl)
	assert.Error(t, err)
}

func TestLoaderRejectsEmptyReference(t *testing.T) {
	l := NewImageLoader(time.Second)
	_, err := l.Load(context.Background(), "   ")
	assert.Error(t, err)
}
