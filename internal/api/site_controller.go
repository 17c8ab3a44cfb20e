package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/model"
	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/service"
)

// SiteController serves the site's CMS content (events, team, partners) and
// the chat widget endpoint. Lists are public; writes are admin-only.
type SiteController struct {
	site service.SiteService
	chat service.ChatService
}

// NewSiteController creates a site controller.
func NewSiteController(site service.SiteService, chat service.ChatService) *SiteController {
	return &SiteController{site: site, chat: chat}
}

// ListEvents returns all events.
func (s *SiteController) ListEvents(c *gin.Context) {
	events, err := s.site.ListEvents(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, events)
}

// SaveEvent creates or updates an event.
func (s *SiteController) SaveEvent(c *gin.Context) {
	var event model.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		Error(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	saved, err := s.site.SaveEvent(c.Request.Context(), &event)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, saved)
}

// DeleteEvent removes an event. Idempotent.
func (s *SiteController) DeleteEvent(c *gin.Context) {
	if err := s.site.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, nil)
}

// ListTeam returns all team members.
func (s *SiteController) ListTeam(c *gin.Context) {
	team, err := s.site.ListTeam(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, team)
}

// SaveTeamMember creates or updates a team member.
func (s *SiteController) SaveTeamMember(c *gin.Context) {
	var member model.TeamMember
	if err := c.ShouldBindJSON(&member); err != nil {
		Error(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	saved, err := s.site.SaveTeamMember(c.Request.Context(), &member)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, saved)
}

// DeleteTeamMember removes a team member. Idempotent.
func (s *SiteController) DeleteTeamMember(c *gin.Context) {
	if err := s.site.DeleteTeamMember(c.Request.Context(), c.Param("id")); err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, nil)
}

// ListPartners returns all partners.
func (s *SiteController) ListPartners(c *gin.Context) {
	partners, err := s.site.ListPartners(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, partners)
}

// SavePartner creates or updates a partner.
func (s *SiteController) SavePartner(c *gin.Context) {
	var partner model.Partner
	if err := c.ShouldBindJSON(&partner); err != nil {
		Error(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	saved, err := s.site.SavePartner(c.Request.Context(), &partner)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, saved)
}

// DeletePartner removes a partner. Idempotent.
func (s *SiteController) DeletePartner(c *gin.Context) {
	if err := s.site.DeletePartner(c.Request.Context(), c.Param("id")); err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, nil)
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chat returns the canned response for a chat widget message.
func (s *SiteController) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}
	Success(c, gin.H{"reply": s.chat.Reply(req.Message)})
}
