package service

import (
	"errors"
	"strings"
	"time"

	"github.com/galwayseo/site/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubscribeInput carries a newsletter subscription request.
type SubscribeInput struct {
	Email     string
	Name      string
	Company   string
	Location  string
	Interests []string
	SourceURL string
}

// NewsletterService handles subscriptions keyed by email.
type NewsletterService struct {
	db *gorm.DB
}

// NewNewsletterService returns a new NewsletterService instance.
func NewNewsletterService(gdb *gorm.DB) *NewsletterService {
	return &NewsletterService{db: gdb}
}

// Subscribe upserts the subscriber keyed by email. Resubscribing flips the
// subscribed flag back on and refreshes the profile fields; historical
// unsubscribe data is left untouched.
func (s *NewsletterService) Subscribe(in SubscribeInput) (*db.NewsletterSubscriber, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return nil, invalidField("email", "Email address is required")
	}
	if !ValidEmail(email) {
		return nil, invalidField("email", "Invalid email address")
	}

	subscriber := db.NewsletterSubscriber{
		Email:      email,
		Name:       in.Name,
		Company:    in.Company,
		Location:   in.Location,
		Interests:  strings.Join(in.Interests, ","),
		SourceURL:  in.SourceURL,
		Subscribed: true,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"subscribed": true,
			"name":       subscriber.Name,
			"company":    subscriber.Company,
			"location":   subscriber.Location,
			"interests":  subscriber.Interests,
			"updated_at": time.Now(),
		}),
	}).Create(&subscriber).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the caller sees the stored row, not the insert attempt.
	var stored db.NewsletterSubscriber
	if err := s.db.Where("email = ?", email).First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// Unsubscribe marks the subscriber unsubscribed with a timestamp and an
// optional free-text reason. Unknown emails return ErrSubscriberNotFound.
func (s *NewsletterService) Unsubscribe(email, reason string) (*db.NewsletterSubscriber, error) {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return nil, invalidField("email", "Email address is required")
	}

	var subscriber db.NewsletterSubscriber
	if err := s.db.Where("email = ?", trimmed).First(&subscriber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriberNotFound
		}
		return nil, err
	}

	now := time.Now()
	subscriber.Subscribed = false
	subscriber.UnsubscribedAt = &now
	if reason != "" {
		subscriber.UnsubscribeReason = reason
	}

	if err := s.db.Save(&subscriber).Error; err != nil {
		return nil, err
	}
	return &subscriber, nil
}

// Subscribers lists subscribers by flag, newest first.
func (s *NewsletterService) Subscribers(subscribed bool) ([]db.NewsletterSubscriber, error) {
	var subscribers []db.NewsletterSubscriber
	err := s.db.Where("subscribed = ?", subscribed).
		Order("created_at DESC").
		Find(&subscribers).Error
	if err != nil {
		return nil, err
	}
	return subscribers, nil
}
