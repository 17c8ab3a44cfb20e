package render

import (
	"image"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/model"
)

// Layout holds the pixel positions and sizes of every overlay element for one
// certificate composite. It is pure math over the image bounds and the
// template's stored anchor so previews, downloads and PDFs all place the name
// identically.
type Layout struct {
	Width  int
	Height int

	// NameX/NameY is the center of the recipient-name overlay, derived
	// exactly from the template's percentage anchor.
	NameX float64
	NameY float64

	EventX float64
	EventY float64

	StampX float64
	StampY float64

	NameSize  float64 // font points
	EventSize float64
	StampSize float64

	ShadowOffset float64
}

// ComputeLayout maps the template's normalized anchor onto concrete image
// bounds.
func ComputeLayout(bounds image.Rectangle, pos model.NamePosition) Layout {
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())

	shadow := h * 0.004
	if shadow < 1 {
		shadow = 1
	}

	return Layout{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),

		NameX: w * pos.X / 100,
		NameY: h * pos.Y / 100,

		// event name sits a fixed step below the name anchor
		EventX: w * pos.X / 100,
		EventY: h*pos.Y/100 + h*0.07,

		// the uniqueId stamp is pinned near the bottom edge
		StampX: w / 2,
		StampY: h * 0.94,

		NameSize:  h * 0.08,
		EventSize: h * 0.04,
		StampSize: h * 0.03,

		ShadowOffset: shadow,
	}
}
