package model

import (
	"errors"
	"time"
)

// TextColor is the name overlay color choice.
type TextColor string

const (
	TextColorBlack TextColor = "black"
	TextColorWhite TextColor = "white"
)

// NamePosition locates the center of the recipient-name overlay as
// percentages (0-100) of the template image's bounding box.
type NamePosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CertificateTemplate describes the certificate offered for one event: the
// background art, the overlay color, and where the recipient name sits.
type CertificateTemplate struct {
	ID               string       `json:"id"`
	EventID          string       `json:"event_id"`
	EventName        string       `json:"event_name"`
	TemplateImageURL string       `json:"template_image_url"`
	Theme            string       `json:"theme,omitempty"` // legacy cosmetic tag, superseded by TextColor
	TextColor        TextColor    `json:"text_color,omitempty"`
	NamePosition     NamePosition `json:"name_position"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// RecordID implements Record
func (t *CertificateTemplate) RecordID() string {
	return t.ID
}

// Validate checks the fields required before a template may be persisted.
func (t *CertificateTemplate) Validate() error {
	if t.ID == "" {
		return errors.New("template id is required")
	}
	if t.EventID == "" {
		return errors.New("event_id is required")
	}
	if t.EventName == "" {
		return errors.New("event_name is required")
	}
	if t.TemplateImageURL == "" {
		return errors.New("template_image_url is required")
	}
	if t.TextColor != "" && t.TextColor != TextColorBlack && t.TextColor != TextColorWhite {
		return errors.New("text_color must be black or white")
	}
	if t.NamePosition.X < 0 || t.NamePosition.X > 100 || t.NamePosition.Y < 0 || t.NamePosition.Y > 100 {
		return errors.New("name_position must be within 0-100")
	}
	return nil
}

// EffectiveTextColor resolves the overlay color, falling back to a
// theme-derived default for legacy templates saved before text_color existed.
func (t *CertificateTemplate) EffectiveTextColor() TextColor {
	if t.TextColor == TextColorBlack || t.TextColor == TextColorWhite {
		return t.TextColor
	}
	if t.Theme == "dark" {
		return TextColorWhite
	}
	return TextColorBlack
}
