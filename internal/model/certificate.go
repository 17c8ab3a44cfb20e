package model

import (
	"errors"
	"time"
)

// Certificate is one issued certificate. EventName, Theme and RecipientName
// are snapshots taken at issuance time; the background art and overlay
// position are re-read from the live template at display time.
type Certificate struct {
	ID            string    `json:"id"`        // storage key: templateID + fresh token
	UniqueID      string    `json:"unique_id"` // short public identifier used in share URLs
	EventID       string    `json:"event_id"`
	EventName     string    `json:"event_name"`
	RecipientName string    `json:"recipient_name"`
	Date          time.Time `json:"date"` // issuance timestamp, not the event date
	Theme         string    `json:"theme,omitempty"`
}

// RecordID implements Record
func (c *Certificate) RecordID() string {
	return c.ID
}

// Validate checks certificate fields
func (c *Certificate) Validate() error {
	if c.ID == "" {
		return errors.New("certificate id is required")
	}
	if c.UniqueID == "" {
		return errors.New("unique_id is required")
	}
	if c.EventID == "" {
		return errors.New("event_id is required")
	}
	if c.RecipientName == "" {
		return errors.New("recipient_name is required")
	}
	return nil
}
