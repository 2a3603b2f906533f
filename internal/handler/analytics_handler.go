package handler

import (
	"log"
	"net/http"

	"github.com/galwayseo/site/internal/service"
	"github.com/gin-gonic/gin"
)

type pageViewRequest struct {
	PageURL      string `json:"pageUrl"`
	PageTitle    string `json:"pageTitle"`
	PageType     string `json:"pageType"`
	Service      string `json:"service"`
	Location     string `json:"location"`
	Referrer     string `json:"referrer"`
	Country      string `json:"country"`
	City         string `json:"city"`
	SessionID    string `json:"sessionId"`
	IsNewVisitor bool   `json:"isNewVisitor"`
	TimeOnPage   int    `json:"timeOnPage"`
	ScrollDepth  int    `json:"scrollDepth"`
	Browser      string `json:"browser"`
	OS           string `json:"os"`
}

// TrackPageView handles POST /api/analytics. Any failure is logged and
// swallowed: the beacon must never block or alarm the client page, so the
// response is always success-shaped.
func (a *API) TrackPageView(c *gin.Context) {
	var req pageViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	meta := extractMeta(c)
	err := a.analytics.Track(service.PageViewInput{
		PageURL:      req.PageURL,
		PageTitle:    req.PageTitle,
		PageType:     req.PageType,
		Service:      req.Service,
		Location:     req.Location,
		IPAddress:    meta.IPAddress,
		UserAgent:    meta.UserAgent,
		Referrer:     firstNonEmpty(req.Referrer, meta.Referrer),
		Country:      req.Country,
		City:         req.City,
		SessionID:    req.SessionID,
		IsNewVisitor: req.IsNewVisitor,
		TimeOnPage:   req.TimeOnPage,
		ScrollDepth:  req.ScrollDepth,
		Browser:      req.Browser,
		OS:           req.OS,
	})
	if err != nil {
		log.Printf("analytics tracking error: %v", err)
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
