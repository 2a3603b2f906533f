package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PageView 记录一次页面访问信标，仅追加，不更新。
type PageView struct {
	ID           string `gorm:"primaryKey;size:36"`
	PageURL      string `gorm:"size:255;not null;index"`
	PageTitle    string `gorm:"size:255"`
	PageType     string `gorm:"size:40;not null"`
	Service      string `gorm:"size:80"`
	Location     string `gorm:"size:80"`
	IPAddress    string `gorm:"size:64"`
	UserAgent    string `gorm:"size:255"`
	Referrer     string `gorm:"size:255"`
	Country      string `gorm:"size:80"`
	City         string `gorm:"size:80"`
	SessionID    string `gorm:"size:64"`
	IsNewVisitor bool
	TimeOnPage   int
	ScrollDepth  int
	DeviceType   string `gorm:"size:20"`
	Browser      string `gorm:"size:40"`
	OS           string `gorm:"size:40"`
	CreatedAt    time.Time
}

// BeforeCreate 在入库前分配 UUID 主键。
func (v *PageView) BeforeCreate(*gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// TableName 指定自定义表名。
func (PageView) TableName() string {
	return "page_views"
}
