package content

import (
	"cmp"
	"slices"
)

// PagesByService returns every page whose serviceSlug matches, in load order.
func (s *Store) PagesByService(serviceSlug string) []ServiceLocationPage {
	return s.filterPages(func(p *ServiceLocationPage) bool {
		return p.ServiceSlug == serviceSlug
	})
}

// PagesByLocation returns every page whose locationSlug matches, in load order.
func (s *Store) PagesByLocation(locationSlug string) []ServiceLocationPage {
	return s.filterPages(func(p *ServiceLocationPage) bool {
		return p.LocationSlug == locationSlug
	})
}

func (s *Store) filterPages(keep func(*ServiceLocationPage) bool) []ServiceLocationPage {
	snap := s.snapshot()
	var out []ServiceLocationPage
	for i := range snap.pages {
		if keep(&snap.pages[i]) {
			out = append(out, snap.pages[i].clone())
		}
	}
	return out
}

// UniqueServiceSlugs returns the distinct service slugs appearing on pages,
// in first-seen order. Derived from the page set, not the services catalog:
// a cataloged service with zero pages does not appear here.
func (s *Store) UniqueServiceSlugs() []string {
	return s.uniqueSlugs(func(p *ServiceLocationPage) string { return p.ServiceSlug })
}

// UniqueLocationSlugs returns the distinct location slugs appearing on
// pages, in first-seen order.
func (s *Store) UniqueLocationSlugs() []string {
	return s.uniqueSlugs(func(p *ServiceLocationPage) string { return p.LocationSlug })
}

func (s *Store) uniqueSlugs(key func(*ServiceLocationPage) string) []string {
	snap := s.snapshot()
	seen := make(map[string]bool, len(snap.pages))
	var out []string
	for i := range snap.pages {
		slug := key(&snap.pages[i])
		if !seen[slug] {
			seen[slug] = true
			out = append(out, slug)
		}
	}
	return out
}

// PageGroup is an ordered set of pages sharing one catalog entry. Name is
// resolved from the catalog, so two entries with the same display name but
// different slugs never merge.
type PageGroup struct {
	Slug  string                `json:"slug"`
	Name  string                `json:"name"`
	Pages []ServiceLocationPage `json:"pages"`
}

// GroupPagesByService groups pages by service slug. Group order follows the
// first appearance of each slug in the page set; page order within a group
// is load order.
func (s *Store) GroupPagesByService() []PageGroup {
	snap := s.snapshot()
	return groupPages(snap.pages,
		func(p *ServiceLocationPage) string { return p.ServiceSlug },
		func(slug string) string {
			if svc, ok := snap.servicesBySlug[slug]; ok {
				return svc.Name
			}
			return slug
		})
}

// GroupPagesByLocation groups pages by location slug, resolving the display
// name from the locations catalog.
func (s *Store) GroupPagesByLocation() []PageGroup {
	snap := s.snapshot()
	return groupPages(snap.pages,
		func(p *ServiceLocationPage) string { return p.LocationSlug },
		func(slug string) string {
			if loc, ok := snap.locationsBySlug[slug]; ok {
				return loc.Name
			}
			return slug
		})
}

func groupPages(pages []ServiceLocationPage, key func(*ServiceLocationPage) string, name func(string) string) []PageGroup {
	index := make(map[string]int)
	var groups []PageGroup
	for i := range pages {
		slug := key(&pages[i])
		at, ok := index[slug]
		if !ok {
			at = len(groups)
			index[slug] = at
			groups = append(groups, PageGroup{Slug: slug, Name: name(slug)})
		}
		groups[at].Pages = append(groups[at].Pages, pages[i])
	}
	return groups
}

// RankLocations orders locations for listing pages: main locations first,
// then by population descending. Ties keep their original order, so the
// sort must stay stable.
func RankLocations(locations []Location) []Location {
	ranked := slices.Clone(locations)
	slices.SortStableFunc(ranked, func(a, b Location) int {
		if a.IsMainLocation != b.IsMainLocation {
			if a.IsMainLocation {
				return -1
			}
			return 1
		}
		return cmp.Compare(b.Population, a.Population)
	})
	return ranked
}

// locationTypeOrder fixes the section order on the locations listing page.
var locationTypeOrder = []string{"city", "town", "suburb", "village"}

var locationTypeLabels = map[string]string{
	"city":    "Cities",
	"town":    "Towns",
	"suburb":  "Suburbs",
	"village": "Villages",
}

// LocationTypeGroup is one section of the locations listing page.
type LocationTypeGroup struct {
	Type      string     `json:"type"`
	Label     string     `json:"label"`
	Locations []Location `json:"locations"`
}

// LocationsByType returns the ranked catalog grouped into the fixed
// city/town/suburb/village section order. Types outside the closed set are
// appended after the known sections in first-seen order.
func (s *Store) LocationsByType() []LocationTypeGroup {
	ranked := RankLocations(s.Locations())

	byType := make(map[string][]Location)
	var extra []string
	for _, loc := range ranked {
		if _, known := byType[loc.Type]; !known && !slices.Contains(locationTypeOrder, loc.Type) {
			extra = append(extra, loc.Type)
		}
		byType[loc.Type] = append(byType[loc.Type], loc)
	}

	var groups []LocationTypeGroup
	for _, t := range append(slices.Clone(locationTypeOrder), extra...) {
		locs := byType[t]
		if len(locs) == 0 {
			continue
		}
		label := locationTypeLabels[t]
		if label == "" {
			label = t
		}
		groups = append(groups, LocationTypeGroup{Type: t, Label: label, Locations: locs})
	}
	return groups
}
