package service

import (
	"errors"
	"strings"
	"time"

	"github.com/galwayseo/site/internal/db"
	"gorm.io/gorm"
)

// ContactInput carries a contact form submission plus the request metadata
// attached by the HTTP layer.
type ContactInput struct {
	Name      string
	Email     string
	Phone     string
	Company   string
	Message   string
	Service   string
	Location  string
	SourceURL string
	IPAddress string
	UserAgent string
	Referrer  string
}

// ContactService handles contact form intake and back-office access.
type ContactService struct {
	db *gorm.DB
}

// NewContactService returns a new ContactService instance.
func NewContactService(gdb *gorm.DB) *ContactService {
	return &ContactService{db: gdb}
}

// Submit validates a contact submission and persists it. A ValidationError
// means nothing was written.
func (s *ContactService) Submit(in ContactInput) (*db.ContactForm, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || strings.TrimSpace(in.Message) == "" {
		return nil, invalidField("name,email,message", "Missing required fields: name, email, and message are required")
	}
	if !ValidEmail(in.Email) {
		return nil, invalidField("email", "Invalid email address")
	}

	form := &db.ContactForm{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		Message:   in.Message,
		Service:   in.Service,
		Location:  in.Location,
		SourceURL: in.SourceURL,
		IPAddress: in.IPAddress,
		UserAgent: in.UserAgent,
		Referrer:  in.Referrer,
		Status:    "new",
	}
	if err := s.db.Create(form).Error; err != nil {
		return nil, err
	}
	return form, nil
}

// LeadFilter narrows back-office listings. A zero Limit means 50.
type LeadFilter struct {
	Status   string
	Service  string
	Location string
	Limit    int
}

func (f LeadFilter) limit() int {
	if f.Limit <= 0 {
		return 50
	}
	return f.Limit
}

// List returns recent contact submissions, newest first.
func (s *ContactService) List(f LeadFilter) ([]db.ContactForm, error) {
	q := s.db.Model(&db.ContactForm{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Service != "" {
		q = q.Where("service = ?", f.Service)
	}
	if f.Location != "" {
		q = q.Where("location = ?", f.Location)
	}

	var forms []db.ContactForm
	if err := q.Order("created_at DESC").Limit(f.limit()).Find(&forms).Error; err != nil {
		return nil, err
	}
	return forms, nil
}

// UpdateStatus moves a lead through the back-office pipeline and stamps the
// responded/converted times.
func (s *ContactService) UpdateStatus(id, status, notes string) (*db.ContactForm, error) {
	var form db.ContactForm
	if err := s.db.Where("id = ?", id).First(&form).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}

	form.Status = status
	if notes != "" {
		form.Notes = notes
	}

	now := time.Now()
	switch status {
	case "contacted":
		form.RespondedAt = &now
	case "converted":
		form.ConvertedAt = &now
	}

	if err := s.db.Save(&form).Error; err != nil {
		return nil, err
	}
	return &form, nil
}
