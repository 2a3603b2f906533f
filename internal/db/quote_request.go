package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuoteRequest 保存报价请求线索。
type QuoteRequest struct {
	ID                 string `gorm:"primaryKey;size:36"`
	Name               string `gorm:"size:120;not null"`
	Email              string `gorm:"size:255;not null"`
	Phone              string `gorm:"size:40;not null"`
	Company            string `gorm:"size:120"`
	Website            string `gorm:"size:255"`
	Service            string `gorm:"size:80;not null"`
	Location           string `gorm:"size:80"`
	Budget             string `gorm:"size:60"`
	Timeline           string `gorm:"size:60"`
	Description        string `gorm:"type:text"`
	HasExistingWebsite bool
	CurrentProvider    string `gorm:"size:120"`
	SourceURL          string `gorm:"size:255"`
	IPAddress          string `gorm:"size:64"`
	UserAgent          string `gorm:"size:255"`
	Status             string `gorm:"size:20;default:new"`
	QuotedAmount       *float64
	QuotedAt           *time.Time
	AcceptedAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// BeforeCreate 在入库前分配 UUID 主键。
func (q *QuoteRequest) BeforeCreate(*gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}

// TableName 指定自定义表名。
func (QuoteRequest) TableName() string {
	return "quote_requests"
}
