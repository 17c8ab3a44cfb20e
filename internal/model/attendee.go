package model

import "errors"

// CertificateAttendee is one imported roster row: a person entitled to claim
// a certificate for the event. FullName keeps the roster's original casing;
// normalization happens only at match time.
type CertificateAttendee struct {
	ID       string `json:"id"`
	EventID  string `json:"event_id"`
	FullName string `json:"full_name"`
}

// RecordID implements Record
func (a *CertificateAttendee) RecordID() string {
	return a.ID
}

// Validate checks attendee fields
func (a *CertificateAttendee) Validate() error {
	if a.ID == "" {
		return errors.New("attendee id is required")
	}
	if a.EventID == "" {
		return errors.New("event_id is required")
	}
	if a.FullName == "" {
		return errors.New("full_name is required")
	}
	return nil
}
