package service

import (
	"errors"
	"strings"
	"time"

	"github.com/galwayseo/site/internal/db"
	"gorm.io/gorm"
)

// QuoteInput carries a quote request submission.
type QuoteInput struct {
	Name               string
	Email              string
	Phone              string
	Company            string
	Website            string
	Service            string
	Location           string
	Budget             string
	Timeline           string
	Description        string
	HasExistingWebsite bool
	CurrentProvider    string
	SourceURL          string
	IPAddress          string
	UserAgent          string
}

// QuoteService handles quote request intake and back-office access.
type QuoteService struct {
	db *gorm.DB
}

// NewQuoteService returns a new QuoteService instance.
func NewQuoteService(gdb *gorm.DB) *QuoteService {
	return &QuoteService{db: gdb}
}

// Submit validates a quote request and persists it.
func (s *QuoteService) Submit(in QuoteInput) (*db.QuoteRequest, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Phone) == "" || strings.TrimSpace(in.Service) == "" {
		return nil, invalidField("name,email,phone,service", "Missing required fields: name, email, phone, and service are required")
	}
	if !ValidEmail(in.Email) {
		return nil, invalidField("email", "Invalid email address")
	}
	if !ValidPhone(in.Phone) {
		return nil, invalidField("phone", "Invalid phone number")
	}

	quote := &db.QuoteRequest{
		Name:               in.Name,
		Email:              in.Email,
		Phone:              in.Phone,
		Company:            in.Company,
		Website:            in.Website,
		Service:            in.Service,
		Location:           in.Location,
		Budget:             in.Budget,
		Timeline:           in.Timeline,
		Description:        in.Description,
		HasExistingWebsite: in.HasExistingWebsite,
		CurrentProvider:    in.CurrentProvider,
		SourceURL:          in.SourceURL,
		IPAddress:          in.IPAddress,
		UserAgent:          in.UserAgent,
		Status:             "new",
	}
	if err := s.db.Create(quote).Error; err != nil {
		return nil, err
	}
	return quote, nil
}

// List returns recent quote requests, newest first.
func (s *QuoteService) List(f LeadFilter) ([]db.QuoteRequest, error) {
	q := s.db.Model(&db.QuoteRequest{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Service != "" {
		q = q.Where("service = ?", f.Service)
	}

	var quotes []db.QuoteRequest
	if err := q.Order("created_at DESC").Limit(f.limit()).Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}

// UpdateStatus advances a quote request. A quoted status with an amount
// stamps QuotedAt; accepted stamps AcceptedAt.
func (s *QuoteService) UpdateStatus(id, status string, quotedAmount *float64) (*db.QuoteRequest, error) {
	var quote db.QuoteRequest
	if err := s.db.Where("id = ?", id).First(&quote).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}

	quote.Status = status
	if quotedAmount != nil {
		quote.QuotedAmount = quotedAmount
	}

	now := time.Now()
	switch {
	case status == "quoted" && quotedAmount != nil:
		quote.QuotedAt = &now
	case status == "accepted":
		quote.AcceptedAt = &now
	}

	if err := s.db.Save(&quote).Error; err != nil {
		return nil, err
	}
	return &quote, nil
}
