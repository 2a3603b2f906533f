package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

var (
	ErrPageNotFound     = errors.New("service-location page not found")
	ErrLocationNotFound = errors.New("location not found")
	ErrServiceNotFound  = errors.New("service not found")
)

// ParseError reports a content file that could not be decoded.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Store 持有从磁盘加载的内容目录。快照一经加载不可变，Reload 整体替换。
type Store struct {
	dir string

	mu   sync.RWMutex
	snap *snapshot
}

type snapshot struct {
	pages           []ServiceLocationPage
	pagesByID       map[string]*ServiceLocationPage
	locations       []Location
	locationsBySlug map[string]*Location
	services        []Service
	servicesBySlug  map[string]*Service
}

// Load reads the content directory once into an immutable in-memory store.
// Expected layout: <dir>/services.json, <dir>/locations.json and one JSON
// record per service-location page under <dir>/pages/.
//
// Load fails, naming the offending file, when a record is malformed, when a
// page id is duplicated or does not equal "<serviceSlug>-<locationSlug>",
// or when a page references a service or location missing from the
// catalogs. Bad content is a build-time error, not a runtime surprise.
func Load(dir string) (*Store, error) {
	snap, err := loadSnapshot(dir)
	if err != nil {
		return nil, err
	}
	return &Store{dir: dir, snap: snap}, nil
}

// Reload re-reads the content directory. On failure the previous snapshot
// stays active and the error is returned to the caller.
func (s *Store) Reload() error {
	snap, err := loadSnapshot(s.dir)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
	return nil
}

// Dir returns the directory backing this store.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) snapshot() *snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Pages returns every service-location page in load order (page files are
// read in filename order so the listing is deterministic).
func (s *Store) Pages() []ServiceLocationPage {
	snap := s.snapshot()
	out := make([]ServiceLocationPage, len(snap.pages))
	for i := range snap.pages {
		out[i] = snap.pages[i].clone()
	}
	return out
}

// Page returns the page with the given identifier, or ErrPageNotFound.
func (s *Store) Page(id string) (*ServiceLocationPage, error) {
	if page, ok := s.snapshot().pagesByID[id]; ok {
		copied := page.clone()
		return &copied, nil
	}
	return nil, ErrPageNotFound
}

// Locations returns the locations catalog in file order.
func (s *Store) Locations() []Location {
	snap := s.snapshot()
	out := make([]Location, len(snap.locations))
	copy(out, snap.locations)
	return out
}

// Location returns the cataloged location for slug, or ErrLocationNotFound.
func (s *Store) Location(slug string) (*Location, error) {
	if loc, ok := s.snapshot().locationsBySlug[slug]; ok {
		copied := *loc
		return &copied, nil
	}
	return nil, ErrLocationNotFound
}

// Services returns the services catalog in file order.
func (s *Store) Services() []Service {
	snap := s.snapshot()
	out := make([]Service, len(snap.services))
	copy(out, snap.services)
	return out
}

// Service returns the cataloged service for slug, or ErrServiceNotFound.
func (s *Store) Service(slug string) (*Service, error) {
	if svc, ok := s.snapshot().servicesBySlug[slug]; ok {
		copied := *svc
		return &copied, nil
	}
	return nil, ErrServiceNotFound
}

func loadSnapshot(dir string) (*snapshot, error) {
	services, err := loadServices(filepath.Join(dir, "services.json"))
	if err != nil {
		return nil, err
	}

	locations, err := loadLocations(filepath.Join(dir, "locations.json"))
	if err != nil {
		return nil, err
	}

	snap := &snapshot{
		services:        services,
		servicesBySlug:  make(map[string]*Service, len(services)),
		locations:       locations,
		locationsBySlug: make(map[string]*Location, len(locations)),
	}

	for i := range services {
		svc := &services[i]
		if svc.Slug == "" {
			return nil, fmt.Errorf("services.json: service %q has no slug", svc.Name)
		}
		if _, exists := snap.servicesBySlug[svc.Slug]; exists {
			return nil, fmt.Errorf("services.json: duplicate service slug %q", svc.Slug)
		}
		snap.servicesBySlug[svc.Slug] = svc
	}

	for i := range locations {
		loc := &locations[i]
		if loc.Slug == "" {
			return nil, fmt.Errorf("locations.json: location %q has no slug", loc.Name)
		}
		if _, exists := snap.locationsBySlug[loc.Slug]; exists {
			return nil, fmt.Errorf("locations.json: duplicate location slug %q", loc.Slug)
		}
		snap.locationsBySlug[loc.Slug] = loc
	}

	pages, files, err := loadPages(filepath.Join(dir, "pages"))
	if err != nil {
		return nil, err
	}

	snap.pages = pages
	snap.pagesByID = make(map[string]*ServiceLocationPage, len(pages))
	seenIn := make(map[string]string, len(pages))

	for i := range pages {
		page := &pages[i]
		file := files[i]

		if want := page.ServiceSlug + "-" + page.LocationSlug; page.ID != want {
			return nil, fmt.Errorf("%s: page id %q does not match %q", file, page.ID, want)
		}
		if prev, exists := seenIn[page.ID]; exists {
			return nil, fmt.Errorf("duplicate page id %q in %s and %s", page.ID, prev, file)
		}
		if _, ok := snap.servicesBySlug[page.ServiceSlug]; !ok {
			return nil, fmt.Errorf("%s: unknown service slug %q", file, page.ServiceSlug)
		}
		if _, ok := snap.locationsBySlug[page.LocationSlug]; !ok {
			return nil, fmt.Errorf("%s: unknown location slug %q", file, page.LocationSlug)
		}

		seenIn[page.ID] = file
		snap.pagesByID[page.ID] = page
	}

	return snap, nil
}

func loadServices(path string) ([]Service, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc struct {
		Services []Service `json:"services"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ParseError{File: filepath.Base(path), Err: err}
	}
	return doc.Services, nil
}

func loadLocations(path string) ([]Location, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc struct {
		Locations []Location `json:"locations"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ParseError{File: filepath.Base(path), Err: err}
	}
	return doc.Locations, nil
}

func loadPages(dir string) ([]ServiceLocationPage, []string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	pages := make([]ServiceLocationPage, 0, len(names))
	files := make([]string, 0, len(names))
	for _, name := range names {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, nil, err
		}

		var page ServiceLocationPage
		if err := json.Unmarshal(raw, &page); err != nil {
			return nil, nil, &ParseError{File: name, Err: err}
		}
		pages = append(pages, page)
		files = append(files, name)
	}

	return pages, files, nil
}
