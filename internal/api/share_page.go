package api

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/service"
)

// sharePageTmpl carries the social-preview metadata crawlers read plus a
// minimal human-readable body; the SPA handles the full presentation.
var sharePageTmpl = template.Must(template.New("share").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<meta property="og:title" content="{{.Title}}">
<meta property="og:description" content="{{.Description}}">
<meta property="og:type" content="website">
<meta property="og:url" content="{{.PageURL}}">
{{if .ImageURL}}<meta property="og:image" content="{{.ImageURL}}">{{end}}
<meta name="twitter:card" content="summary_large_image">
</head>
<body>
<h1>{{.Title}}</h1>
<p>{{.Description}}</p>
{{if .CardURL}}<p><img src="{{.CardURL}}" alt="Certificate" style="max-width:100%"></p>
<p><a href="{{.PDFURL}}">Download PDF</a> · <a href="{{.PNGURL}}">Download image</a></p>{{end}}
</body>
</html>
`))

type sharePageData struct {
	Title       string
	Description string
	PageURL     string
	ImageURL    string
	CardURL     string
	PDFURL      string
	PNGURL      string
}

// SharePageController serves the canonical share page and the legacy
// query-parameter alias.
type SharePageController struct {
	share     service.ShareService
	publicURL string
}

// NewSharePageController creates a share page controller.
func NewSharePageController(share service.ShareService, publicURL string) *SharePageController {
	return &SharePageController{share: share, publicURL: publicURL}
}

// Page renders the canonical share page at /certificates/share/:uid. Missing
// certificates and deleted templates are normal terminal pages, not errors.
func (sp *SharePageController) Page(c *gin.Context) {
	uid := c.Param("uid")

	cert, tpl, err := sp.share.Resolve(c.Request.Context(), uid)
	if err != nil {
		switch service.NotFoundKind(err) {
		case "certificate":
			sp.renderPlain(c, http.StatusNotFound, "Certificate not found",
				"We couldn't find a certificate with that id. You can claim yours from the certificates page.")
		case "template":
			sp.renderPlain(c, http.StatusNotFound, "Certificate design unavailable",
				fmt.Sprintf("This certificate for %s is on record, but its design is no longer available.", cert.EventName))
		default:
			sp.renderPlain(c, http.StatusInternalServerError, "Something went wrong",
				"Please try again in a moment.")
		}
		return
	}

	base := fmt.Sprintf("%s/api/v1/certificates/share/%s", sp.publicURL, cert.UniqueID)
	data := sharePageData{
		Title:       fmt.Sprintf("%s — %s", cert.RecipientName, cert.EventName),
		Description: fmt.Sprintf("Certificate of participation awarded to %s for %s.", cert.RecipientName, cert.EventName),
		PageURL:     fmt.Sprintf("%s/certificates/share/%s", sp.publicURL, cert.UniqueID),
		ImageURL:    tpl.TemplateImageURL,
		CardURL:     base + "/card.png",
		PDFURL:      base + "/certificate.pdf",
		PNGURL:      base + "/image.png",
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	_ = sharePageTmpl.Execute(c.Writer, data)
}

// LegacyRedirect handles the deprecated ?certId= form by redirecting to the
// canonical path; it carries no resolution logic of its own.
func (sp *SharePageController) LegacyRedirect(c *gin.Context) {
	certID := c.Query("certId")
	if certID == "" {
		c.Redirect(http.StatusMovedPermanently, "/")
		return
	}
	c.Redirect(http.StatusMovedPermanently, fmt.Sprintf("/certificates/share/%s", certID))
}

func (sp *SharePageController) renderPlain(c *gin.Context, status int, title, body string) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	_ = sharePageTmpl.Execute(c.Writer, sharePageData{
		Title:       title,
		Description: body,
		PageURL:     sp.publicURL,
	})
}
