package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/galwayseo/site/internal/service"
	"github.com/gin-gonic/gin"
)

// leadError maps a service failure to the response contract: validation
// problems get a 400 with the field-specific message, everything else a
// 500 with a generic message and the detail logged server-side.
func leadError(c *gin.Context, err error, kind, fallback string) {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		respondError(c, http.StatusBadRequest, ve.Message)
		return
	}
	log.Printf("%s error: %v", kind, err)
	respondError(c, http.StatusInternalServerError, fallback)
}

type contactRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Message   string `json:"message"`
	Service   string `json:"service"`
	Location  string `json:"location"`
	SourceURL string `json:"sourceUrl"`
}

// SubmitContact handles POST /api/contact.
func (a *API) SubmitContact(c *gin.Context) {
	var req contactRequest
	if !bindJSON(c, &req, "Invalid request body") {
		return
	}

	meta := extractMeta(c)
	form, err := a.contacts.Submit(service.ContactInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Message:   req.Message,
		Service:   req.Service,
		Location:  req.Location,
		SourceURL: firstNonEmpty(req.SourceURL, meta.Referrer),
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
		Referrer:  meta.Referrer,
	})
	if err != nil {
		leadError(c, err, "contact form", "Failed to submit contact form. Please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      form.ID,
		"message": "Thank you for contacting us! We will get back to you shortly.",
	})
}

type quoteRequest struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Company            string `json:"company"`
	Website            string `json:"website"`
	Service            string `json:"service"`
	Location           string `json:"location"`
	Budget             string `json:"budget"`
	Timeline           string `json:"timeline"`
	Description        string `json:"description"`
	HasExistingWebsite bool   `json:"hasExistingWebsite"`
	CurrentProvider    string `json:"currentProvider"`
	SourceURL          string `json:"sourceUrl"`
}

// SubmitQuote handles POST /api/quote.
func (a *API) SubmitQuote(c *gin.Context) {
	var req quoteRequest
	if !bindJSON(c, &req, "Invalid request body") {
		return
	}

	meta := extractMeta(c)
	quote, err := a.quotes.Submit(service.QuoteInput{
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		Company:            req.Company,
		Website:            req.Website,
		Service:            req.Service,
		Location:           req.Location,
		Budget:             req.Budget,
		Timeline:           req.Timeline,
		Description:        req.Description,
		HasExistingWebsite: req.HasExistingWebsite,
		CurrentProvider:    req.CurrentProvider,
		SourceURL:          firstNonEmpty(req.SourceURL, meta.Referrer),
		IPAddress:          meta.IPAddress,
		UserAgent:          meta.UserAgent,
	})
	if err != nil {
		leadError(c, err, "quote request", "Failed to submit quote request. Please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      quote.ID,
		"message": "Thank you for your quote request! We will review your requirements and get back to you within 24 hours.",
	})
}

type callbackRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	PreferredTime string `json:"preferredTime"`
	PreferredDate string `json:"preferredDate"`
	Service       string `json:"service"`
	Location      string `json:"location"`
	SourceURL     string `json:"sourceUrl"`
}

// SubmitCallback handles POST /api/callback.
func (a *API) SubmitCallback(c *gin.Context) {
	var req callbackRequest
	if !bindJSON(c, &req, "Invalid request body") {
		return
	}

	meta := extractMeta(c)
	request, err := a.callbacks.Submit(service.CallbackInput{
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		PreferredTime: req.PreferredTime,
		PreferredDate: req.PreferredDate,
		Service:       req.Service,
		Location:      req.Location,
		SourceURL:     firstNonEmpty(req.SourceURL, meta.Referrer),
	})
	if err != nil {
		leadError(c, err, "callback request", "Failed to submit callback request. Please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      request.ID,
		"message": "Thank you! We will call you back at your preferred time.",
	})
}
