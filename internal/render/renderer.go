// Package render composites a recipient's name onto a certificate template's
// background art and exports the result as a PNG raster, a social share
// card, or a single-page landscape PDF. The same compositing path serves the
// admin preview, the public share page and the downloadable exports.
package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"time"

	"github.com/fogleman/gg"
	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/model"
	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/uniqueid"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Renderer builds certificate composites.
type Renderer struct {
	loader   *ImageLoader
	fontPath string
}

// NewRenderer creates a renderer. fontPath names a TTF for the overlays; when
// empty (or unloadable) a built-in bitmap face is used instead, which keeps
// rendering functional in minimal environments and tests.
func NewRenderer(fontPath string, fetchTimeout time.Duration) *Renderer {
	return &Renderer{
		loader:   NewImageLoader(fetchTimeout),
		fontPath: fontPath,
	}
}

func (r *Renderer) face(points float64) font.Face {
	if r.fontPath != "" {
		if face, err := gg.LoadFontFace(r.fontPath, points); err == nil {
			return face
		}
	}
	return basicfont.Face7x13
}

// Composite renders the full certificate image: background art plus the name
// overlay, event name line and uniqueId stamp.
func (r *Renderer) Composite(ctx context.Context, cert *model.Certificate, tpl *model.CertificateTemplate) (image.Image, error) {
	if cert == nil || tpl == nil {
		return nil, fmt.Errorf("certificate and template are required")
	}

	art, err := r.loader.Load(ctx, tpl.TemplateImageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to load template art: %w", err)
	}

	dc := gg.NewContextForImage(art)
	r.drawOverlay(dc, cert, tpl, ComputeLayout(art.Bounds(), tpl.NamePosition))
	return dc.Image(), nil
}

// drawOverlay draws the text layers: recipient name centered on its anchor,
// event name beneath it, short uniqueId stamp at the bottom. Each string gets
// a drop shadow in the opposite tone for legibility against arbitrary art.
func (r *Renderer) drawOverlay(dc *gg.Context, cert *model.Certificate, tpl *model.CertificateTemplate, layout Layout) {
	textWhite := tpl.EffectiveTextColor() == model.TextColorWhite

	drawWithShadow := func(s string, x, y, points float64) {
		dc.SetFontFace(r.face(points))
		if textWhite {
			dc.SetRGB(0, 0, 0)
		} else {
			dc.SetRGB(1, 1, 1)
		}
		dc.DrawStringAnchored(s, x+layout.ShadowOffset, y+layout.ShadowOffset, 0.5, 0.5)
		if textWhite {
			dc.SetRGB(1, 1, 1)
		} else {
			dc.SetRGB(0, 0, 0)
		}
		dc.DrawStringAnchored(s, x, y, 0.5, 0.5)
	}

	drawWithShadow(cert.RecipientName, layout.NameX, layout.NameY, layout.NameSize)
	drawWithShadow(cert.EventName, layout.EventX, layout.EventY, layout.EventSize)
	drawWithShadow(fmt.Sprintf("Certificate ID: %s", uniqueid.Short(cert.UniqueID)), layout.StampX, layout.StampY, layout.StampSize)
}

// RenderPNG exports the composite as a PNG raster. Alpha in the template art
// is preserved, so templates with transparency stay transparent.
func (r *Renderer) RenderPNG(ctx context.Context, cert *model.Certificate, tpl *model.CertificateTemplate) ([]byte, error) {
	img, err := r.Composite(ctx, cert, tpl)
	if err != nil {
		return nil, err
	}
	return encodePNG(img)
}

// RenderShareCard exports the composite on a white card with the
// verification URL printed beneath the certificate art.
func (r *Renderer) RenderShareCard(ctx context.Context, cert *model.Certificate, tpl *model.CertificateTemplate, verifyURL string) ([]byte, error) {
	img, err := r.Composite(ctx, cert, tpl)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	pad := bounds.Dy() / 20
	captionBand := bounds.Dy() / 6
	w := bounds.Dx() + pad*2
	h := bounds.Dy() + pad*2 + captionBand

	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.DrawImage(img, pad, pad)

	dc.SetFontFace(r.face(float64(captionBand) * 0.25))
	dc.SetRGB(0.25, 0.25, 0.25)
	captionY := float64(pad*2+bounds.Dy()) + float64(captionBand)*0.5
	dc.DrawStringAnchored("Verify this certificate:", float64(w)/2, captionY-float64(captionBand)*0.18, 0.5, 0.5)
	dc.DrawStringAnchored(verifyURL, float64(w)/2, captionY+float64(captionBand)*0.18, 0.5, 0.5)

	return encodePNG(dc.Image())
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}
