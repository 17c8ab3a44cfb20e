package model

import "time"

// Record is the minimal capability shared by every persisted record kind.
type Record interface {
	RecordID() string
}

// Collection names used by the record store.
const (
	CollectionTemplates    = "certificate_templates"
	CollectionAttendees    = "certificate_attendees"
	CollectionCertificates = "certificates_issued"
	CollectionEvents       = "events"
	CollectionTeamMembers  = "team_members"
	CollectionPartners     = "partners"
)

// RecordRow is the storage row behind the generic record store: one record of
// any kind, addressed by (collection, id), payload serialized as JSON.
type RecordRow struct {
	Collection string    `gorm:"primaryKey;type:varchar(64)"`
	ID         string    `gorm:"primaryKey;type:varchar(128)"`
	Data       []byte    `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name
func (RecordRow) TableName() string {
	return "records"
}
