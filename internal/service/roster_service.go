package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/model"
	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/repository"
)

// ImportMode selects what happens to an event's existing roster on import.
type ImportMode string

const (
	// ImportModeAppend adds the new rows to whatever is already stored.
	// Re-uploading a corrected file does not remove stale rows.
	ImportModeAppend ImportMode = "append"
	// ImportModeReplace clears the event's roster before inserting.
	ImportModeReplace ImportMode = "replace"
)

// headerFullName is the mandatory roster column.
const headerFullName = "full_name"

// ImportResult summarizes one roster import.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// RosterService imports attendee rosters from uploaded CSV files.
type RosterService interface {
	Import(ctx context.Context, eventID string, r io.Reader, mode ImportMode) (*ImportResult, error)
	ListByEvent(ctx context.Context, eventID string) ([]*model.CertificateAttendee, error)
}

type rosterService struct {
	attendees repository.AttendeeRepository
	now       func() time.Time
}

// NewRosterService creates a roster service.
func NewRosterService(attendees repository.AttendeeRepository) RosterService {
	return &rosterService{
		attendees: attendees,
		now:       time.Now,
	}
}

// Import parses a CSV roster and bulk-persists its attendees for the event.
// The first line is a case-insensitive header that must contain a full_name
// column; quoted fields follow the usual CSV grammar (doubled quotes escape,
// commas inside quotes are literal). Rows with an empty name are skipped
// silently. Nothing is written unless at least one valid row parsed.
func (s *rosterService) Import(ctx context.Context, eventID string, r io.Reader, mode ImportMode) (*ImportResult, error) {
	if strings.TrimSpace(eventID) == "" {
		return nil, NewValidationError("event id is required")
	}
	if mode == "" {
		mode = ImportModeAppend
	}
	if mode != ImportModeAppend && mode != ImportModeReplace {
		return nil, NewValidationError("unknown import mode %q", mode)
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, NewIOError("read roster file", err)
	}
	if strings.TrimSpace(string(content)) == "" {
		return nil, NewFormatError("the uploaded file is empty")
	}

	reader := csv.NewReader(strings.NewReader(string(content)))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, NewFormatError("could not parse the header row: %v", err)
	}

	nameIdx := -1
	for i, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), headerFullName) {
			nameIdx = i
			break
		}
	}
	if nameIdx < 0 {
		return nil, NewFormatError("missing required column %q", headerFullName)
	}

	batch := s.now().UnixMilli()
	var attendees []*model.CertificateAttendee
	skipped := 0
	for row := 0; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// malformed line; rows are tolerated individually
			skipped++
			continue
		}
		if nameIdx >= len(record) {
			skipped++
			continue
		}

		name := cleanName(record[nameIdx])
		if name == "" {
			skipped++
			continue
		}

		attendees = append(attendees, &model.CertificateAttendee{
			// batch timestamp + row index avoids collisions within one import
			ID:       fmt.Sprintf("%s-%d-%d", eventID, batch, row),
			EventID:  eventID,
			FullName: name,
		})
	}

	if len(attendees) == 0 {
		return nil, NewFormatError("no valid rows found: every row was blank or missing a %s value", headerFullName)
	}

	if mode == ImportModeReplace {
		if err := s.attendees.DeleteByEvent(ctx, eventID); err != nil {
			return nil, NewIOError("clear existing roster", err)
		}
	}

	if err := s.attendees.BulkSave(ctx, attendees); err != nil {
		return nil, NewIOError("save roster", err)
	}

	return &ImportResult{Imported: len(attendees), Skipped: skipped}, nil
}

// ListByEvent returns an event's imported roster.
func (s *rosterService) ListByEvent(ctx context.Context, eventID string) ([]*model.CertificateAttendee, error) {
	attendees, err := s.attendees.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, NewIOError("list roster", err)
	}
	return attendees, nil
}

// cleanName strips a stray outer quote pair left by hand-edited files, then
// trims whitespace. The CSV grammar normally removes enclosure quotes before
// this runs.
func cleanName(cell string) string {
	name := strings.TrimSpace(cell)
	name = strings.Trim(name, `"`)
	return strings.TrimSpace(name)
}
