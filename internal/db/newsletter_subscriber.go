package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewsletterSubscriber 以邮箱为自然键保存订阅记录。
// 重复订阅通过 upsert 更新而不是新增行。
type NewsletterSubscriber struct {
	ID                string `gorm:"primaryKey;size:36"`
	Email             string `gorm:"size:255;uniqueIndex;not null"`
	Name              string `gorm:"size:120"`
	Company           string `gorm:"size:120"`
	Location          string `gorm:"size:80"`
	Interests         string `gorm:"size:255"`
	SourceURL         string `gorm:"size:255"`
	Subscribed        bool   `gorm:"default:true"`
	UnsubscribedAt    *time.Time
	UnsubscribeReason string `gorm:"size:255"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// BeforeCreate 在入库前分配 UUID 主键。
func (n *NewsletterSubscriber) BeforeCreate(*gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

// TableName 指定自定义表名。
func (NewsletterSubscriber) TableName() string {
	return "newsletter_subscribers"
}
