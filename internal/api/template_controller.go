package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/metrics"
	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/service"
)

// TemplateController is the admin surface over certificate templates and
// their rosters.
type TemplateController struct {
	templateService service.TemplateService
	rosterService   service.RosterService
}

// NewTemplateController creates a template controller.
func NewTemplateController(templateService service.TemplateService, rosterService service.RosterService) *TemplateController {
	return &TemplateController{
		templateService: templateService,
		rosterService:   rosterService,
	}
}

// List returns all certificate templates.
func (t *TemplateController) List(c *gin.Context) {
	templates, err := t.templateService.List(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, templates)
}

// Get returns one template.
func (t *TemplateController) Get(c *gin.Context) {
	tpl, err := t.templateService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, tpl)
}

// Create creates a template.
func (t *TemplateController) Create(c *gin.Context) {
	var req service.TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	tpl, err := t.templateService.Create(c.Request.Context(), &req)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, tpl)
}

// Update updates a template.
func (t *TemplateController) Update(c *gin.Context) {
	var req service.TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	tpl, err := t.templateService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, tpl)
}

// Delete removes a template. Idempotent.
func (t *TemplateController) Delete(c *gin.Context) {
	if err := t.templateService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, nil)
}

// UploadRoster imports a CSV roster for the template's event. The file may
// arrive as a multipart "file" part or as the raw request body. mode=replace
// clears the event's previous roster first; the default appends.
func (t *TemplateController) UploadRoster(c *gin.Context) {
	tpl, err := t.templateService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	mode := service.ImportMode(c.DefaultQuery("mode", string(service.ImportModeAppend)))

	reader := c.Request.Body
	if file, _, ferr := c.Request.FormFile("file"); ferr == nil {
		defer file.Close()
		reader = file
	}

	result, err := t.rosterService.Import(c.Request.Context(), tpl.EventID, reader, mode)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	metrics.RecordRosterRows(result.Imported)
	Success(c, result)
}

// ListRoster returns the template's imported attendees.
func (t *TemplateController) ListRoster(c *gin.Context) {
	tpl, err := t.templateService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	attendees, err := t.rosterService.ListByEvent(c.Request.Context(), tpl.EventID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, attendees)
}
