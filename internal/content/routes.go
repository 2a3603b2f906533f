package content

import "strings"

// Route kinds, one per pre-rendered page family.
const (
	RouteKindService  = "service"
	RouteKindLocation = "location"
	RouteKindPage     = "page"
)

// Route is one static path the site generator must pre-render.
type Route struct {
	Path string `json:"path"`
	Kind string `json:"kind"`
}

// Routes enumerates the complete static path set: one service-category
// path per cataloged service, one location path per cataloged location and
// one path per service-location page. The result is a pure function of the
// current snapshot; page paths are duplicate-free because duplicate ids are
// rejected at load time.
func (s *Store) Routes() []Route {
	snap := s.snapshot()

	routes := make([]Route, 0, len(snap.services)+len(snap.locations)+len(snap.pages))
	for _, svc := range snap.services {
		routes = append(routes, Route{Path: "/services/" + svc.Slug, Kind: RouteKindService})
	}
	for _, loc := range snap.locations {
		routes = append(routes, Route{Path: "/locations/" + loc.Slug, Kind: RouteKindLocation})
	}
	for _, page := range snap.pages {
		routes = append(routes, Route{Path: "/" + page.ID, Kind: RouteKindPage})
	}
	return routes
}

// SitemapEntry is one URL in the generated sitemap, annotated with crawler
// hints.
type SitemapEntry struct {
	URL        string  `json:"url"`
	ChangeFreq string  `json:"changeFrequency"`
	Priority   float64 `json:"priority"`
}

// staticSitemapPages are the hand-written pages that always appear first.
var staticSitemapPages = []SitemapEntry{
	{URL: "", ChangeFreq: "weekly", Priority: 1},
	{URL: "/services", ChangeFreq: "weekly", Priority: 0.9},
	{URL: "/locations", ChangeFreq: "weekly", Priority: 0.9},
	{URL: "/about", ChangeFreq: "monthly", Priority: 0.8},
	{URL: "/contact", ChangeFreq: "monthly", Priority: 0.8},
}

// SitemapEntries builds the full sitemap: static pages, then service
// category pages, location pages and every service-location page.
func (s *Store) SitemapEntries(baseURL string) []SitemapEntry {
	base := strings.TrimRight(baseURL, "/")
	snap := s.snapshot()

	entries := make([]SitemapEntry, 0, len(staticSitemapPages)+len(snap.services)+len(snap.locations)+len(snap.pages))
	for _, page := range staticSitemapPages {
		entries = append(entries, SitemapEntry{URL: base + page.URL, ChangeFreq: page.ChangeFreq, Priority: page.Priority})
	}
	for _, svc := range snap.services {
		entries = append(entries, SitemapEntry{URL: base + "/services/" + svc.Slug, ChangeFreq: "weekly", Priority: 0.8})
	}
	for _, loc := range snap.locations {
		entries = append(entries, SitemapEntry{URL: base + "/locations/" + loc.Slug, ChangeFreq: "weekly", Priority: 0.7})
	}
	for _, page := range snap.pages {
		entries = append(entries, SitemapEntry{URL: base + "/" + page.ID, ChangeFreq: "monthly", Priority: 0.6})
	}
	return entries
}
