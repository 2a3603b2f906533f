package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CallbackRequest 保存回电请求线索。
type CallbackRequest struct {
	ID            string `gorm:"primaryKey;size:36"`
	Name          string `gorm:"size:120;not null"`
	Phone         string `gorm:"size:40;not null"`
	Email         string `gorm:"size:255"`
	PreferredTime string `gorm:"size:60"`
	PreferredDate *time.Time
	Service       string `gorm:"size:80"`
	Location      string `gorm:"size:80"`
	SourceURL     string `gorm:"size:255"`
	Status        string `gorm:"size:20;default:pending"`
	CallOutcome   string `gorm:"size:255"`
	CalledAt      *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BeforeCreate 在入库前分配 UUID 主键。
func (r *CallbackRequest) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// TableName 指定自定义表名。
func (CallbackRequest) TableName() string {
	return "callback_requests"
}
