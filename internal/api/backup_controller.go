package api

import (
	"github.com/gin-gonic/gin"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/service"
)

// BackupController is the admin surface over record snapshots.
type BackupController struct {
	backup *service.BackupService
}

// NewBackupController creates a backup controller.
func NewBackupController(backup *service.BackupService) *BackupController {
	return &BackupController{backup: backup}
}

// Create snapshots all record collections and returns the filename.
func (b *BackupController) Create(c *gin.Context) {
	filename, err := b.backup.Create(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, gin.H{"filename": filename})
}

// List returns the available backup filenames, newest first.
func (b *BackupController) List(c *gin.Context) {
	names, err := b.backup.List()
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, names)
}
