package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/metrics"
	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/model"
	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/render"
	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/service"
)

// CertificateController is the public claim/share/verification surface.
type CertificateController struct {
	issuance  service.IssuanceService
	share     service.ShareService
	renderer  *render.Renderer
	publicURL string
}

// NewCertificateController creates a certificate controller.
func NewCertificateController(issuance service.IssuanceService, share service.ShareService, renderer *render.Renderer, publicURL string) *CertificateController {
	return &CertificateController{
		issuance:  issuance,
		share:     share,
		renderer:  renderer,
		publicURL: publicURL,
	}
}

// claimableEvent is the public projection of a template: just enough to
// populate the claim form's event selector.
type claimableEvent struct {
	EventID   string `json:"event_id"`
	EventName string `json:"event_name"`
}

// ListClaimableEvents returns the events certificates can be claimed for.
func (ct *CertificateController) ListClaimableEvents(c *gin.Context) {
	templates, err := ct.issuance.ClaimableEvents(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	events := make([]claimableEvent, 0, len(templates))
	for _, tpl := range templates {
		events = append(events, claimableEvent{EventID: tpl.EventID, EventName: tpl.EventName})
	}
	Success(c, events)
}

type claimRequest struct {
	EventID  string `json:"event_id"`
	FullName string `json:"full_name"`
}

// claimResponse returns the minted certificate with its template and the
// canonical share URL.
type claimResponse struct {
	Certificate *model.Certificate         `json:"certificate"`
	Template    *model.CertificateTemplate `json:"template"`
	ShareURL    string                     `json:"share_url"`
}

// Claim matches the submitted name against the event's roster and mints a
// certificate on success.
func (ct *CertificateController) Claim(c *gin.Context) {
	var req claimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	cert, tpl, err := ct.issuance.Claim(c.Request.Context(), req.EventID, req.FullName)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	Success(c, claimResponse{
		Certificate: cert,
		Template:    tpl,
		ShareURL:    ct.shareURL(cert.UniqueID),
	})
}

// shareResponse mirrors claimResponse for resolved certificates.
type shareResponse struct {
	Certificate *model.Certificate         `json:"certificate"`
	Template    *model.CertificateTemplate `json:"template"`
	ShareURL    string                     `json:"share_url"`
}

// Share resolves a uniqueId to its (certificate, template) pair.
func (ct *CertificateController) Share(c *gin.Context) {
	cert, tpl, err := ct.share.Resolve(c.Request.Context(), c.Param("uid"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	Success(c, shareResponse{
		Certificate: cert,
		Template:    tpl,
		ShareURL:    ct.shareURL(cert.UniqueID),
	})
}

// ShareImage exports the resolved certificate as a PNG download.
func (ct *CertificateController) ShareImage(c *gin.Context) {
	cert, tpl, err := ct.share.Resolve(c.Request.Context(), c.Param("uid"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	png, err := ct.renderer.RenderPNG(c.Request.Context(), cert, tpl)
	if err != nil {
		Error(c, http.StatusBadGateway, "could not render the certificate image, please try again", err.Error())
		return
	}

	metrics.RecordRender("png")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="certificate-%s.png"`, cert.UniqueID))
	c.Data(http.StatusOK, "image/png", png)
}

// ShareCard exports the social share card: certificate art plus the
// verification URL caption.
func (ct *CertificateController) ShareCard(c *gin.Context) {
	cert, tpl, err := ct.share.Resolve(c.Request.Context(), c.Param("uid"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	png, err := ct.renderer.RenderShareCard(c.Request.Context(), cert, tpl, ct.shareURL(cert.UniqueID))
	if err != nil {
		Error(c, http.StatusBadGateway, "could not render the share card, please try again", err.Error())
		return
	}

	metrics.RecordRender("card")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="certificate-card-%s.png"`, cert.UniqueID))
	c.Data(http.StatusOK, "image/png", png)
}

// SharePDF exports the resolved certificate as a landscape A4 PDF.
func (ct *CertificateController) SharePDF(c *gin.Context) {
	cert, tpl, err := ct.share.Resolve(c.Request.Context(), c.Param("uid"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	pdf, err := ct.renderer.RenderPDF(c.Request.Context(), cert, tpl)
	if err != nil {
		Error(c, http.StatusBadGateway, "could not render the certificate PDF, please try again", err.Error())
		return
	}

	metrics.RecordRender("pdf")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="certificate-%s.pdf"`, cert.UniqueID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (ct *CertificateController) shareURL(uniqueID string) string {
	return fmt.Sprintf("%s/certificates/share/%s", ct.publicURL, uniqueID)
}
