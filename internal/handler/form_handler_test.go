package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/galwayseo/site/internal/content"
	"github.com/galwayseo/site/internal/db"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func writeTestJSON(t *testing.T, path string, v any) {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal %s: %v", path, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// testContentStore builds a small content directory: two services, two
// locations, two pages.
func testContentStore(t *testing.T) *content.Store {
	t.Helper()

	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "pages"), 0o755); err != nil {
		t.Fatalf("failed to create pages dir: %v", err)
	}

	writeTestJSON(t, filepath.Join(dir, "services.json"), map[string]any{
		"services": []content.Service{
			{Name: "Web Design & Development", Slug: "web-design", Category: "development", Description: "## Websites that convert\n\nFast, modern builds."},
			{Name: "SEO Services", Slug: "seo-services", Category: "marketing", Description: "Rank where it matters."},
		},
	})
	writeTestJSON(t, filepath.Join(dir, "locations.json"), map[string]any{
		"locations": []content.Location{
			{ID: "loc-galway-city", Name: "Galway City", Slug: "galway-city", Type: "city", IsMainLocation: true, County: "Galway", Population: 85910},
			{ID: "loc-oranmore", Name: "Oranmore", Slug: "oranmore", Type: "town", County: "Galway", Population: 4990},
		},
	})

	pages := []content.ServiceLocationPage{
		{
			ID: "web-design-galway-city", Service: "Web Design & Development", ServiceSlug: "web-design",
			Location: "Galway City", LocationSlug: "galway-city",
			PageTitle: "Web Design in Galway City", ShortDescription: "Web design in Galway City",
			Description: "**Professional** web design in Galway City.", CTAPhone: "+353 91 123 456",
		},
		{
			ID: "seo-services-oranmore", Service: "SEO Services", ServiceSlug: "seo-services",
			Location: "Oranmore", LocationSlug: "oranmore",
			PageTitle: "SEO Services in Oranmore", ShortDescription: "SEO in Oranmore",
			Description: "Local SEO for Oranmore businesses.", CTAPhone: "+353 91 123 456",
		},
	}
	for _, page := range pages {
		writeTestJSON(t, filepath.Join(dir, "pages", page.ID+".json"), page)
	}

	store, err := content.Load(dir)
	if err != nil {
		t.Fatalf("failed to load test content: %v", err)
	}
	return store
}

func setupTestDB(t *testing.T) (*API, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(
		&db.User{},
		&db.ContactForm{},
		&db.QuoteRequest{},
		&db.CallbackRequest{},
		&db.NewsletterSubscriber{},
		&db.PageView{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db.DB = gdb

	return NewAPI(gdb, testContentStore(t), "https://galwayseo.ai"), func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func postJSON(t *testing.T, handle gin.HandlerFunc, target string, payload any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	handle(c)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return body
}

func TestSubmitContactSuccess(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	w := postJSON(t, api.SubmitContact, "/api/contact",
		map[string]any{"name": "Jane", "email": "jane@x.com", "message": "hi"},
		map[string]string{"X-Forwarded-For": "203.0.113.9", "Referer": "https://galwayseo.ai/contact"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["success"] != true {
		t.Fatalf("expected success true, got %v", body["success"])
	}
	if id, _ := body["id"].(string); id == "" {
		t.Fatal("expected a non-empty generated id")
	}

	var form db.ContactForm
	if err := db.DB.First(&form).Error; err != nil {
		t.Fatalf("lead not persisted: %v", err)
	}
	if form.IPAddress != "203.0.113.9" {
		t.Fatalf("expected forwarded ip stored, got %q", form.IPAddress)
	}
	if form.SourceURL != "https://galwayseo.ai/contact" {
		t.Fatalf("expected source url to default to referer, got %q", form.SourceURL)
	}
}

func TestSubmitContactMissingFieldPersistsNothing(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	w := postJSON(t, api.SubmitContact, "/api/contact",
		map[string]any{"name": "Jane", "email": "jane@x.com"}, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var count int64
	db.DB.Model(&db.ContactForm{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected zero persistence calls, found %d rows", count)
	}
}

func TestSubmitQuoteInvalidPhone(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	w := postJSON(t, api.SubmitQuote, "/api/quote", map[string]any{
		"name": "Jane", "email": "jane@x.com", "phone": "call-me-maybe", "service": "seo-services",
	}, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Invalid phone number" {
		t.Fatalf("expected phone error message, got %v", body["error"])
	}
}

func TestSubmitQuoteSuccess(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	w := postJSON(t, api.SubmitQuote, "/api/quote", map[string]any{
		"name": "Jane", "email": "jane@x.com", "phone": "+353 86 153 0832",
		"service": "web-design", "budget": "5k-10k", "hasExistingWebsite": true,
	}, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var quote db.QuoteRequest
	if err := db.DB.First(&quote).Error; err != nil {
		t.Fatalf("quote not persisted: %v", err)
	}
	if !quote.HasExistingWebsite || quote.Budget != "5k-10k" {
		t.Fatalf("unexpected stored quote: %+v", quote)
	}
}

func TestSubmitCallbackRequiresPhone(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	w := postJSON(t, api.SubmitCallback, "/api/callback", map[string]any{"name": "Jane"}, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var count int64
	db.DB.Model(&db.CallbackRequest{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no rows, found %d", count)
	}
}

func TestSubmitCallbackSuccess(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	w := postJSON(t, api.SubmitCallback, "/api/callback", map[string]any{
		"name": "Jane", "phone": "091 123 456", "preferredTime": "morning", "preferredDate": "2026-09-14",
	}, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if id, _ := body["id"].(string); id == "" {
		t.Fatal("expected a non-empty generated id")
	}
}
