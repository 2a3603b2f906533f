package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/galwayseo/site/internal/content"
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// renderMarkdown converts authored markdown to sanitized HTML.
func renderMarkdown(source string) string {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
		return ""
	}
	return sanitizer.Sanitize(buf.String())
}

type pageSummary struct {
	ID               string `json:"id"`
	Service          string `json:"service"`
	ServiceSlug      string `json:"serviceSlug"`
	Location         string `json:"location"`
	LocationSlug     string `json:"locationSlug"`
	PageTitle        string `json:"pageTitle"`
	ShortDescription string `json:"shortDescription"`
}

// ListContentPages handles GET /api/content/pages.
func (a *API) ListContentPages(c *gin.Context) {
	pages := a.content.Pages()
	summaries := make([]pageSummary, 0, len(pages))
	for _, page := range pages {
		summaries = append(summaries, pageSummary{
			ID:               page.ID,
			Service:          page.Service,
			ServiceSlug:      page.ServiceSlug,
			Location:         page.Location,
			LocationSlug:     page.LocationSlug,
			PageTitle:        page.PageTitle,
			ShortDescription: page.ShortDescription,
		})
	}

	c.JSON(http.StatusOK, gin.H{"pages": summaries, "total": len(summaries)})
}

// GetContentPage handles GET /api/content/pages/:id. The renderer turns
// the 404 into its own not-found page.
func (a *API) GetContentPage(c *gin.Context) {
	page, err := a.content.Page(c.Param("id"))
	if err != nil {
		if errors.Is(err, content.ErrPageNotFound) {
			respondError(c, http.StatusNotFound, "Page not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to load page")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":            page,
		"descriptionHtml": renderMarkdown(page.Description),
	})
}

type serviceSummary struct {
	content.Service
	LocationCount int `json:"locationCount"`
}

// ListContentServices handles GET /api/content/services. Each service
// carries the number of locations it is offered in.
func (a *API) ListContentServices(c *gin.Context) {
	services := a.content.Services()
	summaries := make([]serviceSummary, 0, len(services))
	for _, svc := range services {
		summaries = append(summaries, serviceSummary{
			Service:       svc,
			LocationCount: len(a.content.PagesByService(svc.Slug)),
		})
	}

	c.JSON(http.StatusOK, gin.H{"services": summaries, "total": len(summaries)})
}

// GetContentService handles GET /api/content/services/:slug.
func (a *API) GetContentService(c *gin.Context) {
	svc, err := a.content.Service(c.Param("slug"))
	if err != nil {
		if errors.Is(err, content.ErrServiceNotFound) {
			respondError(c, http.StatusNotFound, "Service not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to load service")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"service":         svc,
		"descriptionHtml": renderMarkdown(svc.Description),
		"pages":           a.content.PagesByService(svc.Slug),
	})
}

type locationSummary struct {
	content.Location
	ServiceCount int `json:"serviceCount"`
}

// ListContentLocations handles GET /api/content/locations. Locations are
// ranked (main first, then population) and grouped by type in the fixed
// city/town/suburb/village order.
func (a *API) ListContentLocations(c *gin.Context) {
	ranked := content.RankLocations(a.content.Locations())
	summaries := make([]locationSummary, 0, len(ranked))
	for _, loc := range ranked {
		summaries = append(summaries, locationSummary{
			Location:     loc,
			ServiceCount: len(a.content.PagesByLocation(loc.Slug)),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"locations": summaries,
		"groups":    a.content.LocationsByType(),
		"total":     len(summaries),
	})
}

// GetContentLocation handles GET /api/content/locations/:slug.
func (a *API) GetContentLocation(c *gin.Context) {
	loc, err := a.content.Location(c.Param("slug"))
	if err != nil {
		if errors.Is(err, content.ErrLocationNotFound) {
			respondError(c, http.StatusNotFound, "Location not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to load location")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"location": loc,
		"pages":    a.content.PagesByLocation(loc.Slug),
	})
}

// ListContentRoutes handles GET /api/content/routes: the full static path
// set the generator must pre-render.
func (a *API) ListContentRoutes(c *gin.Context) {
	routes := a.content.Routes()
	c.JSON(http.StatusOK, gin.H{"routes": routes, "total": len(routes)})
}
