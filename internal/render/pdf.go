package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/model"
	"github.com/jung-kurt/gofpdf"
)

// A4 landscape page size in millimeters.
const (
	pdfPageWidth  = 297.0
	pdfPageHeight = 210.0
	pdfMargin     = 10.0
)

// RenderPDF exports the composite as a single-page landscape A4 PDF, scaled
// to fit inside the page margins and centered.
func (r *Renderer) RenderPDF(ctx context.Context, cert *model.Certificate, tpl *model.CertificateTemplate) ([]byte, error) {
	img, err := r.Composite(ctx, cert, tpl)
	if err != nil {
		return nil, err
	}
	pngBytes, err := encodePNG(img)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	imgW := float64(bounds.Dx())
	imgH := float64(bounds.Dy())

	maxW := pdfPageWidth - 2*pdfMargin
	maxH := pdfPageHeight - 2*pdfMargin

	// scale to fit, preserving the template's aspect ratio
	scale := maxW / imgW
	if imgH*scale > maxH {
		scale = maxH / imgH
	}
	drawW := imgW * scale
	drawH := imgH * scale
	x := (pdfPageWidth - drawW) / 2
	y := (pdfPageHeight - drawH) / 2

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("%s - %s", cert.RecipientName, cert.EventName), true)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("certificate", opts, bytes.NewReader(pngBytes))
	pdf.ImageOptions("certificate", x, y, drawW, drawH, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
