package model

import (
	"errors"
	"time"
)

// Event is a site event listing (marketing page content, not the certificate
// join key — certificates reference events through the template's EventID).
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        string    `json:"date,omitempty"`
	Location    string    `json:"location,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecordID implements Record
func (e *Event) RecordID() string { return e.ID }

// Validate checks event fields
func (e *Event) Validate() error {
	if e.ID == "" {
		return errors.New("event id is required")
	}
	if e.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

// TeamMember is a site team roster entry.
type TeamMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	LinkURL  string `json:"link_url,omitempty"`
}

// RecordID implements Record
func (m *TeamMember) RecordID() string { return m.ID }

// Validate checks team member fields
func (m *TeamMember) Validate() error {
	if m.ID == "" {
		return errors.New("team member id is required")
	}
	if m.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

// Partner is a site partner/sponsor entry.
type Partner struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
	SiteURL string `json:"site_url,omitempty"`
}

// RecordID implements Record
func (p *Partner) RecordID() string { return p.ID }

// Validate checks partner fields
func (p *Partner) Validate() error {
	if p.ID == "" {
		return errors.New("partner id is required")
	}
	if p.Name == "" {
		return errors.New("name is required")
	}
	return nil
}
