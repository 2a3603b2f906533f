package handler

import (
	"github.com/galwayseo/site/internal/content"
	"github.com/galwayseo/site/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db         *gorm.DB
	content    *content.Store
	contacts   *service.ContactService
	quotes     *service.QuoteService
	callbacks  *service.CallbackService
	newsletter *service.NewsletterService
	analytics  *service.AnalyticsService
	baseURL    string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, store *content.Store, baseURL string) *API {
	return &API{
		db:         gdb,
		content:    store,
		contacts:   service.NewContactService(gdb),
		quotes:     service.NewQuoteService(gdb),
		callbacks:  service.NewCallbackService(gdb),
		newsletter: service.NewNewsletterService(gdb),
		analytics:  service.NewAnalyticsService(gdb),
		baseURL:    baseURL,
	}
}

// DB exposes the underlying gorm instance for legacy paths.
func (a *API) DB() *gorm.DB {
	return a.db
}

// Content exposes the content store backing the read-only endpoints.
func (a *API) Content() *content.Store {
	return a.content
}
