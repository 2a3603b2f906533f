package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/galwayseo/site/internal/db"
	"github.com/galwayseo/site/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login 处理后台登录请求，成功后写入会话。
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req, "Invalid request body") {
		return
	}

	var user db.User
	if err := a.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("username", user.Username)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout 处理后台登出。
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AuthRequired 是后台 API 的认证中间件。
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get("user_id") == nil {
			respondError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func leadFilterFromQuery(c *gin.Context) service.LeadFilter {
	return service.LeadFilter{
		Status:   strings.TrimSpace(c.Query("status")),
		Service:  strings.TrimSpace(c.Query("service")),
		Location: strings.TrimSpace(c.Query("location")),
		Limit:    parseLimitQuery(c),
	}
}

// ListContacts handles GET /admin/api/contacts.
func (a *API) ListContacts(c *gin.Context) {
	forms, err := a.contacts.List(leadFilterFromQuery(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load contact forms")
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": forms, "total": len(forms)})
}

type contactStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// UpdateContactStatus handles PUT /admin/api/contacts/:id/status.
func (a *API) UpdateContactStatus(c *gin.Context) {
	var req contactStatusRequest
	if !bindJSON(c, &req, "Invalid request body") {
		return
	}
	if strings.TrimSpace(req.Status) == "" {
		respondError(c, http.StatusBadRequest, "Status is required")
		return
	}

	form, err := a.contacts.UpdateStatus(c.Param("id"), req.Status, req.Notes)
	if err != nil {
		if errors.Is(err, service.ErrLeadNotFound) {
			respondError(c, http.StatusNotFound, "Contact form not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to update contact form")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "contact": form})
}

// ListQuotes handles GET /admin/api/quotes.
func (a *API) ListQuotes(c *gin.Context) {
	quotes, err := a.quotes.List(leadFilterFromQuery(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load quote requests")
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotes": quotes, "total": len(quotes)})
}

type quoteStatusRequest struct {
	Status       string   `json:"status"`
	QuotedAmount *float64 `json:"quotedAmount"`
}

// UpdateQuoteStatus handles PUT /admin/api/quotes/:id/status.
func (a *API) UpdateQuoteStatus(c *gin.Context) {
	var req quoteStatusRequest
	if !bindJSON(c, &req, "Invalid request body") {
		return
	}
	if strings.TrimSpace(req.Status) == "" {
		respondError(c, http.StatusBadRequest, "Status is required")
		return
	}

	quote, err := a.quotes.UpdateStatus(c.Param("id"), req.Status, req.QuotedAmount)
	if err != nil {
		if errors.Is(err, service.ErrLeadNotFound) {
			respondError(c, http.StatusNotFound, "Quote request not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to update quote request")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "quote": quote})
}

// ListCallbacks handles GET /admin/api/callbacks.
func (a *API) ListCallbacks(c *gin.Context) {
	requests, err := a.callbacks.List(leadFilterFromQuery(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load callback requests")
		return
	}
	c.JSON(http.StatusOK, gin.H{"callbacks": requests, "total": len(requests)})
}

type callbackStatusRequest struct {
	Status      string `json:"status"`
	CallOutcome string `json:"callOutcome"`
}

// UpdateCallbackStatus handles PUT /admin/api/callbacks/:id/status.
func (a *API) UpdateCallbackStatus(c *gin.Context) {
	var req callbackStatusRequest
	if !bindJSON(c, &req, "Invalid request body") {
		return
	}
	if strings.TrimSpace(req.Status) == "" {
		respondError(c, http.StatusBadRequest, "Status is required")
		return
	}

	request, err := a.callbacks.UpdateStatus(c.Param("id"), req.Status, req.CallOutcome)
	if err != nil {
		if errors.Is(err, service.ErrLeadNotFound) {
			respondError(c, http.StatusNotFound, "Callback request not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to update callback request")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "callback": request})
}

// ListSubscribers handles GET /admin/api/newsletter/subscribers. The
// subscribed query flag defaults to true.
func (a *API) ListSubscribers(c *gin.Context) {
	subscribed := true
	if raw := strings.TrimSpace(c.Query("subscribed")); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid subscribed flag")
			return
		}
		subscribed = parsed
	}

	subscribers, err := a.newsletter.Subscribers(subscribed)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load subscribers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribers": subscribers, "total": len(subscribers)})
}

// AnalyticsOverview handles GET /admin/api/analytics/overview.
func (a *API) AnalyticsOverview(c *gin.Context) {
	overview, err := a.analytics.Overview(service.OverviewFilter{
		PageType: strings.TrimSpace(c.Query("pageType")),
		Service:  strings.TrimSpace(c.Query("service")),
		Location: strings.TrimSpace(c.Query("location")),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load analytics overview")
		return
	}
	c.JSON(http.StatusOK, overview)
}
