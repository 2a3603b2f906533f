package handler

import (
	"errors"
	"net/http"

	"github.com/galwayseo/site/internal/service"
	"github.com/gin-gonic/gin"
)

type subscribeRequest struct {
	Email     string   `json:"email"`
	Name      string   `json:"name"`
	Company   string   `json:"company"`
	Location  string   `json:"location"`
	Interests []string `json:"interests"`
	SourceURL string   `json:"sourceUrl"`
}

// SubscribeNewsletter handles POST /api/newsletter.
func (a *API) SubscribeNewsletter(c *gin.Context) {
	var req subscribeRequest
	if !bindJSON(c, &req, "Invalid request body") {
		return
	}

	meta := extractMeta(c)
	subscriber, err := a.newsletter.Subscribe(service.SubscribeInput{
		Email:     req.Email,
		Name:      req.Name,
		Company:   req.Company,
		Location:  req.Location,
		Interests: req.Interests,
		SourceURL: firstNonEmpty(req.SourceURL, meta.Referrer),
	})
	if err != nil {
		leadError(c, err, "newsletter subscription", "Failed to subscribe. Please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Thank you for subscribing to our newsletter!",
		"subscribed": subscriber.Subscribed,
	})
}

// UnsubscribeNewsletter handles DELETE /api/newsletter. Email and the
// optional reason arrive as query parameters from the unsubscribe link.
func (a *API) UnsubscribeNewsletter(c *gin.Context) {
	email := c.Query("email")
	reason := c.Query("reason")

	_, err := a.newsletter.Unsubscribe(email, reason)
	if err != nil {
		if errors.Is(err, service.ErrSubscriberNotFound) {
			respondError(c, http.StatusBadRequest, "No subscription found for this email address")
			return
		}
		leadError(c, err, "newsletter unsubscribe", "Failed to unsubscribe. Please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "You have been unsubscribed from our newsletter.",
	})
}
