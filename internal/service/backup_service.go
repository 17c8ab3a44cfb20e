package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/model"
	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/repository"
	"gopkg.in/yaml.v3"
)

// BackupService snapshots every record collection to a timestamped YAML file
// so admins can recover from accidental deletions (the store itself has no
// revision history).
type BackupService struct {
	store repository.RecordStore
	dir   string
	now   func() time.Time
}

// NewBackupService creates a backup service writing into dir.
func NewBackupService(store repository.RecordStore, dir string) *BackupService {
	return &BackupService{store: store, dir: dir, now: time.Now}
}

// backupCollections lists the collections included in a snapshot.
var backupCollections = []string{
	model.CollectionTemplates,
	model.CollectionAttendees,
	model.CollectionCertificates,
	model.CollectionEvents,
	model.CollectionTeamMembers,
	model.CollectionPartners,
}

// Snapshot is the on-disk backup document.
type Snapshot struct {
	CreatedAt   time.Time                           `yaml:"created_at"`
	Collections map[string][]map[string]interface{} `yaml:"collections"`
}

// Create writes a snapshot of all collections and returns the filename.
func (s *BackupService) Create(ctx context.Context) (string, error) {
	snapshot := Snapshot{
		CreatedAt:   s.now(),
		Collections: make(map[string][]map[string]interface{}),
	}

	for _, collection := range backupCollections {
		raws, err := s.store.List(ctx, collection)
		if err != nil {
			return "", NewIOError(fmt.Sprintf("list %s", collection), err)
		}
		records := make([]map[string]interface{}, 0, len(raws))
		for _, raw := range raws {
			var rec map[string]interface{}
			if err := json.Unmarshal(raw, &rec); err != nil {
				return "", NewIOError("decode record", err)
			}
			records = append(records, rec)
		}
		snapshot.Collections[collection] = records
	}

	data, err := yaml.Marshal(&snapshot)
	if err != nil {
		return "", NewIOError("marshal snapshot", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", NewIOError("create backup dir", err)
	}

	filename := fmt.Sprintf("backup-%s.yaml", s.now().Format("20060102-150405"))
	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0o644); err != nil {
		return "", NewIOError("write snapshot", err)
	}

	return filename, nil
}

// List returns the available backup filenames, newest first.
func (s *BackupService) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, NewIOError("read backup dir", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".yaml") {
			names = append(names, entry.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}
