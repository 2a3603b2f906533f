package service

import (
	"errors"
	"strings"
	"time"

	"github.com/galwayseo/site/internal/db"
	"gorm.io/gorm"
)

// CallbackInput carries a callback request submission. PreferredDate is the
// raw client value; unparseable dates are stored as absent.
type CallbackInput struct {
	Name          string
	Phone         string
	Email         string
	PreferredTime string
	PreferredDate string
	Service       string
	Location      string
	SourceURL     string
}

// CallbackService handles callback request intake and back-office access.
type CallbackService struct {
	db *gorm.DB
}

// NewCallbackService returns a new CallbackService instance.
func NewCallbackService(gdb *gorm.DB) *CallbackService {
	return &CallbackService{db: gdb}
}

// Submit validates a callback request and persists it. Email is optional
// but validated when present.
func (s *CallbackService) Submit(in CallbackInput) (*db.CallbackRequest, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Phone) == "" {
		return nil, invalidField("name,phone", "Missing required fields: name and phone are required")
	}
	if !ValidPhone(in.Phone) {
		return nil, invalidField("phone", "Invalid phone number")
	}
	if in.Email != "" && !ValidEmail(in.Email) {
		return nil, invalidField("email", "Invalid email address")
	}

	request := &db.CallbackRequest{
		Name:          in.Name,
		Phone:         in.Phone,
		Email:         in.Email,
		PreferredTime: in.PreferredTime,
		PreferredDate: parseDate(in.PreferredDate),
		Service:       in.Service,
		Location:      in.Location,
		SourceURL:     in.SourceURL,
		Status:        "pending",
	}
	if err := s.db.Create(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}

func parseDate(raw string) *time.Time {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return &parsed
		}
	}
	return nil
}

// List returns recent callback requests, newest first.
func (s *CallbackService) List(f LeadFilter) ([]db.CallbackRequest, error) {
	q := s.db.Model(&db.CallbackRequest{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var requests []db.CallbackRequest
	if err := q.Order("created_at DESC").Limit(f.limit()).Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// UpdateStatus advances a callback request. A called or completed status
// stamps CalledAt.
func (s *CallbackService) UpdateStatus(id, status, callOutcome string) (*db.CallbackRequest, error) {
	var request db.CallbackRequest
	if err := s.db.Where("id = ?", id).First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}

	request.Status = status
	if callOutcome != "" {
		request.CallOutcome = callOutcome
	}
	if status == "called" || status == "completed" {
		now := time.Now()
		request.CalledAt = &now
	}

	if err := s.db.Save(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}
