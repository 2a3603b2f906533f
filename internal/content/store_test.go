package content

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()

	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal %s: %v", path, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func fixturePage(serviceSlug, serviceName, locationSlug, locationName string) ServiceLocationPage {
	return ServiceLocationPage{
		ID:               serviceSlug + "-" + locationSlug,
		Service:          serviceName,
		ServiceSlug:      serviceSlug,
		Location:         locationName,
		LocationSlug:     locationSlug,
		PageTitle:        serviceName + " in " + locationName,
		MetaDescription:  serviceName + " for businesses in " + locationName,
		Description:      "Professional " + serviceName + " in " + locationName + ".",
		ShortDescription: serviceName + " in " + locationName,
		Benefits:         []string{"Local team", "Fast turnaround"},
		Process: []ProcessStep{
			{Step: 1, Title: "Discovery", Description: "We learn about your business."},
			{Step: 2, Title: "Delivery", Description: "We ship the work."},
		},
		FAQ:      []FAQItem{{Question: "How long does it take?", Answer: "Usually two to four weeks."}},
		Keywords: []string{serviceSlug, locationSlug},
		CTAPhone: "+353 91 123 456",
	}
}

func writePage(t *testing.T, dir string, page ServiceLocationPage) {
	t.Helper()
	writeJSON(t, filepath.Join(dir, "pages", page.ID+".json"), page)
}

// fixtureDir builds a small consistent content directory: three services,
// four locations, three pages.
func fixtureDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "pages"), 0o755); err != nil {
		t.Fatalf("failed to create pages dir: %v", err)
	}

	writeJSON(t, filepath.Join(dir, "services.json"), map[string]any{
		"services": []Service{
			{Name: "Web Design & Development", Slug: "web-design", Category: "development", Description: "Fast, modern websites."},
			{Name: "SEO Services", Slug: "seo-services", Category: "marketing", Description: "Rank where it matters."},
			{Name: "AI Marketing", Slug: "ai-marketing", Category: "marketing", Description: "Marketing automation with AI."},
		},
	})
	writeJSON(t, filepath.Join(dir, "locations.json"), map[string]any{
		"locations": []Location{
			{ID: "loc-galway-city", Name: "Galway City", Slug: "galway-city", Type: "city", IsMainLocation: true, County: "Galway", Population: 85910},
			{ID: "loc-oranmore", Name: "Oranmore", Slug: "oranmore", Type: "town", County: "Galway", Population: 4990, DistanceFromMain: Distance{Value: 9, Unit: "km"}},
			{ID: "loc-salthill", Name: "Salthill", Slug: "salthill", Type: "suburb", County: "Galway", Population: 3100, DistanceFromMain: Distance{Value: 3, Unit: "km"}},
			{ID: "loc-barna", Name: "Barna", Slug: "barna", Type: "village", County: "Galway", Population: 2000, DistanceFromMain: Distance{Value: 8, Unit: "km"}},
		},
	})

	writePage(t, dir, fixturePage("web-design", "Web Design & Development", "galway-city", "Galway City"))
	writePage(t, dir, fixturePage("web-design", "Web Design & Development", "oranmore", "Oranmore"))
	writePage(t, dir, fixturePage("seo-services", "SEO Services", "galway-city", "Galway City"))

	return dir
}

func TestLoadAndAccessors(t *testing.T) {
	store, err := Load(fixtureDir(t))
	if err != nil {
		t.Fatalf("failed to load content: %v", err)
	}

	if got := len(store.Pages()); got != 3 {
		t.Fatalf("expected 3 pages, got %d", got)
	}
	if got := len(store.Services()); got != 3 {
		t.Fatalf("expected 3 services, got %d", got)
	}
	if got := len(store.Locations()); got != 4 {
		t.Fatalf("expected 4 locations, got %d", got)
	}

	page, err := store.Page("web-design-galway-city")
	if err != nil {
		t.Fatalf("failed to fetch page: %v", err)
	}
	if page.Location != "Galway City" {
		t.Fatalf("unexpected page location: %q", page.Location)
	}

	if _, err := store.Page("web-design-atlantis"); !errors.Is(err, ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound, got %v", err)
	}
	if _, err := store.Service("nope"); !errors.Is(err, ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
	if _, err := store.Location("nope"); !errors.Is(err, ErrLocationNotFound) {
		t.Fatalf("expected ErrLocationNotFound, got %v", err)
	}

	svc, err := store.Service("seo-services")
	if err != nil {
		t.Fatalf("failed to fetch service: %v", err)
	}
	if svc.Name != "SEO Services" {
		t.Fatalf("unexpected service name: %q", svc.Name)
	}
}

func TestAccessorsReturnIsolatedCopies(t *testing.T) {
	store, err := Load(fixtureDir(t))
	if err != nil {
		t.Fatalf("failed to load content: %v", err)
	}

	page, err := store.Page("web-design-galway-city")
	if err != nil {
		t.Fatalf("failed to fetch page: %v", err)
	}
	page.Benefits[0] = "mutated"
	page.Process[0].Title = "mutated"
	page.FAQ[0].Answer = "mutated"

	pages := store.Pages()
	pages[0].Keywords[0] = "mutated"

	filtered := store.PagesByService("web-design")
	filtered[0].Benefits[0] = "mutated"

	fresh, err := store.Page("web-design-galway-city")
	if err != nil {
		t.Fatalf("failed to re-fetch page: %v", err)
	}
	if fresh.Benefits[0] == "mutated" || fresh.Process[0].Title == "mutated" || fresh.FAQ[0].Answer == "mutated" {
		t.Fatalf("snapshot mutated through a returned page: %+v", fresh)
	}
	for _, p := range store.Pages() {
		if p.Keywords[0] == "mutated" || p.Benefits[0] == "mutated" {
			t.Fatalf("snapshot mutated through a returned listing: %+v", p)
		}
	}
}

func TestLoadRejectsMalformedPage(t *testing.T) {
	dir := fixtureDir(t)
	bad := filepath.Join(dir, "pages", "ai-marketing-barna.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("failed to write bad page: %v", err)
	}

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected load to fail on malformed page")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}
	if parseErr.File != "ai-marketing-barna.json" {
		t.Fatalf("expected error to name the bad file, got %q", parseErr.File)
	}
}

func TestLoadRejectsDuplicatePageID(t *testing.T) {
	dir := fixtureDir(t)

	// Same record under a different filename: the id collides.
	dupe := fixturePage("web-design", "Web Design & Development", "galway-city", "Galway City")
	writeJSON(t, filepath.Join(dir, "pages", "zz-duplicate.json"), dupe)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected load to fail on duplicate page id")
	}
	if !strings.Contains(err.Error(), "duplicate page id") || !strings.Contains(err.Error(), "zz-duplicate.json") {
		t.Fatalf("expected duplicate-id error naming both files, got %v", err)
	}
}

func TestLoadRejectsMismatchedPageID(t *testing.T) {
	dir := fixtureDir(t)

	page := fixturePage("ai-marketing", "AI Marketing", "barna", "Barna")
	page.ID = "something-else"
	writeJSON(t, filepath.Join(dir, "pages", "something-else.json"), page)

	_, err := Load(dir)
	if err == nil || !strings.Contains(err.Error(), "does not match") {
		t.Fatalf("expected mismatched-id error, got %v", err)
	}
}

func TestLoadRejectsOrphanedSlugs(t *testing.T) {
	dir := fixtureDir(t)
	writePage(t, dir, fixturePage("video-marketing", "Video Marketing", "galway-city", "Galway City"))

	_, err := Load(dir)
	if err == nil || !strings.Contains(err.Error(), "unknown service slug") {
		t.Fatalf("expected unknown-service error, got %v", err)
	}
}

func TestLoadRejectsDuplicateCatalogSlug(t *testing.T) {
	dir := fixtureDir(t)
	writeJSON(t, filepath.Join(dir, "services.json"), map[string]any{
		"services": []Service{
			{Name: "SEO Services", Slug: "seo-services"},
			{Name: "Search Engine Optimisation", Slug: "seo-services"},
		},
	})

	_, err := Load(dir)
	if err == nil || !strings.Contains(err.Error(), "duplicate service slug") {
		t.Fatalf("expected duplicate-slug error, got %v", err)
	}
}

func TestReloadKeepsSnapshotOnFailure(t *testing.T) {
	dir := fixtureDir(t)
	store, err := Load(dir)
	if err != nil {
		t.Fatalf("failed to load content: %v", err)
	}

	bad := filepath.Join(dir, "pages", "web-design-galway-city.json")
	if err := os.WriteFile(bad, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("failed to corrupt page: %v", err)
	}

	if err := store.Reload(); err == nil {
		t.Fatal("expected reload to fail on corrupted content")
	}

	// Old snapshot must still serve reads.
	if _, err := store.Page("web-design-galway-city"); err != nil {
		t.Fatalf("expected previous snapshot to survive failed reload: %v", err)
	}
}

func TestReloadPicksUpNewPages(t *testing.T) {
	dir := fixtureDir(t)
	store, err := Load(dir)
	if err != nil {
		t.Fatalf("failed to load content: %v", err)
	}

	writePage(t, dir, fixturePage("ai-marketing", "AI Marketing", "barna", "Barna"))
	if err := store.Reload(); err != nil {
		t.Fatalf("failed to reload content: %v", err)
	}

	if _, err := store.Page("ai-marketing-barna"); err != nil {
		t.Fatalf("expected new page after reload: %v", err)
	}
}
