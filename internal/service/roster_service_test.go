package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/repository"
)

func newRosterFixture() (RosterService, repository.AttendeeRepository) {
	store := repository.NewMemoryRecordStore()
	attendees := repository.NewAttendeeRepository(store)
	return NewRosterService(attendees), attendees
}

// advanceBatchClock moves the service clock forward so consecutive imports
// never share a batch timestamp.
func advanceBatchClock(svc RosterService, offset time.Duration) {
	rs := svc.(*rosterService)
	base := time.Now()
	rs.now = func() time.Time { return base.Add(offset) }
}

func TestRosterImport(t *testing.T) {
	svc, _ := newRosterFixture()

	csv := "full_name,email\nJuan Dela Cruz,juan@example.com\nMaria Santos,maria@example.com\n"
	result, err := svc.Import(context.Background(), "devfest-2025", strings.NewReader(csv), ImportModeAppend)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.Skipped)

	roster, err := svc.ListByEvent(context.Background(), "devfest-2025")
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, "Juan Dela Cruz", roster[0].FullName)
	assert.Equal(t, "Maria Santos", roster[1].FullName)
}

func TestRosterImportQuotedFields(t *testing.T) {
	svc, _ := newRosterFixture()

	// commas inside quotes are literal; doubled quotes escape
	csv := "full_name\n\"Dela Cruz, Juan\"\n\"Maria \"\"Mars\"\" Santos\"\n"
	result, err := svc.Import(context.Background(), "evt", strings.NewReader(csv), ImportModeAppend)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)

	roster, err := svc.ListByEvent(context.Background(), "evt")
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, "Dela Cruz, Juan", roster[0].FullName)
	assert.Equal(t, `Maria "Mars" Santos`, roster[1].FullName)
}

func TestRosterImportHeaderCaseInsensitive(t *testing.T) {
	svc, _ := newRosterFixture()

	csv := "Full_Name\nJuan Dela Cruz\n"
	result, err := svc.Import(context.Background(), "evt", strings.NewReader(csv), ImportModeAppend)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
}

func TestRosterImportSkipsBlankRows(t *testing.T) {
	svc, _ := newRosterFixture()

	csv := "full_name\nJuan Dela Cruz\n\"\"\n   \nMaria Santos\n"
	result, err := svc.Import(context.Background(), "evt", strings.NewReader(csv), ImportModeAppend)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 2, result.Skipped)
}

func TestRosterImportMissingColumn(t *testing.T) {
	svc, _ := newRosterFixture()

	csv := "name,email\nJuan Dela Cruz,juan@example.com\n"
	_, err := svc.Import(context.Background(), "evt", strings.NewReader(csv), ImportModeAppend)
	require.Error(t, err)
	assert.True(t, IsFormat(err))
	assert.Contains(t, err.Error(), "full_name")
}

func TestRosterImportEmptyFile(t *testing.T) {
	svc, _ := newRosterFixture()

	_, err := svc.Import(context.Background(), "evt", strings.NewReader("   \n  "), ImportModeAppend)
	require.Error(t, err)
	assert.True(t, IsFormat(err))
}

func TestRosterImportAllRowsBlank(t *testing.T) {
	svc, _ := newRosterFixture()

	csv := "full_name\n\n  \n"
	_, err := svc.Import(context.Background(), "evt", strings.NewReader(csv), ImportModeAppend)
	require.Error(t, err)
	assert.True(t, IsFormat(err))

	// nothing was written
	roster, err := svc.ListByEvent(context.Background(), "evt")
	require.NoError(t, err)
	assert.Empty(t, roster)
}

func TestRosterImportAppendKeepsExisting(t *testing.T) {
	svc, _ := newRosterFixture()

	_, err := svc.Import(context.Background(), "evt", strings.NewReader("full_name\nJuan Dela Cruz\n"), ImportModeAppend)
	require.NoError(t, err)
	advanceBatchClock(svc, time.Second)
	_, err = svc.Import(context.Background(), "evt", strings.NewReader("full_name\nMaria Santos\n"), ImportModeAppend)
	require.NoError(t, err)

	roster, err := svc.ListByEvent(context.Background(), "evt")
	require.NoError(t, err)
	assert.Len(t, roster, 2)
}

func TestRosterImportReplaceClearsExisting(t *testing.T) {
	svc, _ := newRosterFixture()

	_, err := svc.Import(context.Background(), "evt", strings.NewReader("full_name\nJuan Dela Cruz\n"), ImportModeAppend)
	require.NoError(t, err)
	_, err = svc.Import(context.Background(), "evt", strings.NewReader("full_name\nMaria Santos\n"), ImportModeReplace)
	require.NoError(t, err)

	roster, err := svc.ListByEvent(context.Background(), "evt")
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "Maria Santos", roster[0].FullName)
}

func TestRosterImportUnknownMode(t *testing.T) {
	svc, _ := newRosterFixture()

	_, err := svc.Import(context.Background(), "evt", strings.NewReader("full_name\nJuan\n"), ImportMode("merge"))
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestRosterImportScopedToEvent(t *testing.T) {
	svc, _ := newRosterFixture()

	_, err := svc.Import(context.Background(), "evt-a", strings.NewReader("full_name\nJuan Dela Cruz\n"), ImportModeAppend)
	require.NoError(t, err)
	_, err = svc.Import(context.Background(), "evt-b", strings.NewReader("full_name\nMaria Santos\n"), ImportModeAppend)
	require.NoError(t, err)

	rosterA, err := svc.ListByEvent(context.Background(), "evt-a")
	require.NoError(t, err)
	require.Len(t, rosterA, 1)
	assert.Equal(t, "Juan Dela Cruz", rosterA[0].FullName)
}

func TestCleanNameStripsStrayQuotes(t *testing.T) {
	assert.Equal(t, "Juan Dela Cruz", cleanName(`  "Juan Dela Cruz"  `))
	assert.Equal(t, "Juan Dela Cruz", cleanName("Juan Dela Cruz"))
	assert.Equal(t, "", cleanName(`""`))
}
