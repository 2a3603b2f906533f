package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactForm 保存联系表单提交的线索记录。
// Status 由后台流程推进：new → contacted → converted。
type ContactForm struct {
	ID          string `gorm:"primaryKey;size:36"`
	Name        string `gorm:"size:120;not null"`
	Email       string `gorm:"size:255;not null"`
	Phone       string `gorm:"size:40"`
	Company     string `gorm:"size:120"`
	Message     string `gorm:"type:text;not null"`
	Service     string `gorm:"size:80"`
	Location    string `gorm:"size:80"`
	SourceURL   string `gorm:"size:255"`
	IPAddress   string `gorm:"size:64"`
	UserAgent   string `gorm:"size:255"`
	Referrer    string `gorm:"size:255"`
	Status      string `gorm:"size:20;default:new"`
	Notes       string `gorm:"type:text"`
	RespondedAt *time.Time
	ConvertedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BeforeCreate 在入库前分配 UUID 主键。
func (f *ContactForm) BeforeCreate(*gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// TableName 指定自定义表名。
func (ContactForm) TableName() string {
	return "contact_forms"
}
