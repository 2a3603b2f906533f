package service

import (
	"cmp"
	"slices"
	"strings"

	"github.com/galwayseo/site/internal/db"
	"gorm.io/gorm"
)

// PageViewInput carries one analytics beacon payload plus request metadata.
type PageViewInput struct {
	PageURL      string
	PageTitle    string
	PageType     string
	Service      string
	Location     string
	IPAddress    string
	UserAgent    string
	Referrer     string
	Country      string
	City         string
	SessionID    string
	IsNewVisitor bool
	TimeOnPage   int
	ScrollDepth  int
	Browser      string
	OS           string
}

// AnalyticsService 负责记录页面访问并聚合站点统计。
type AnalyticsService struct {
	db *gorm.DB
}

// NewAnalyticsService 创建 AnalyticsService。
func NewAnalyticsService(gdb *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: gdb}
}

// DeviceType derives a coarse device class from the user agent string.
// Priority order: mobile, then tablet, default desktop.
func DeviceType(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "mobile"):
		return "mobile"
	case strings.Contains(ua, "tablet"), strings.Contains(ua, "ipad"):
		return "tablet"
	default:
		return "desktop"
	}
}

// Track records one page view. Errors are returned so the handler can log
// them; the analytics endpoint itself never surfaces them to the client.
func (s *AnalyticsService) Track(in PageViewInput) error {
	if strings.TrimSpace(in.PageURL) == "" || strings.TrimSpace(in.PageType) == "" {
		return invalidField("pageUrl,pageType", "Missing required fields: pageUrl and pageType are required")
	}

	view := db.PageView{
		PageURL:      in.PageURL,
		PageTitle:    in.PageTitle,
		PageType:     in.PageType,
		Service:      in.Service,
		Location:     in.Location,
		IPAddress:    in.IPAddress,
		UserAgent:    in.UserAgent,
		Referrer:     in.Referrer,
		Country:      in.Country,
		City:         in.City,
		SessionID:    in.SessionID,
		IsNewVisitor: in.IsNewVisitor,
		TimeOnPage:   in.TimeOnPage,
		ScrollDepth:  in.ScrollDepth,
		DeviceType:   DeviceType(in.UserAgent),
		Browser:      in.Browser,
		OS:           in.OS,
	}
	return s.db.Create(&view).Error
}

// OverviewFilter narrows the analytics aggregation.
type OverviewFilter struct {
	PageType string
	Service  string
	Location string
}

// PageCount is one entry of the top-pages ranking.
type PageCount struct {
	URL   string `json:"url"`
	Views int    `json:"views"`
}

// SiteOverview 聚合站点层面的访问统计。
type SiteOverview struct {
	TotalViews     int         `json:"totalViews"`
	UniqueVisitors int         `json:"uniqueVisitors"`
	AvgTimeOnPage  int         `json:"avgTimeOnPage"`
	AvgScrollDepth int         `json:"avgScrollDepth"`
	TopPages       []PageCount `json:"topPages"`
}

// Overview aggregates the most recent page views (up to 1000): totals,
// unique visitors keyed by session id falling back to ip, averages and the
// top ten pages by view count.
func (s *AnalyticsService) Overview(f OverviewFilter) (SiteOverview, error) {
	q := s.db.Model(&db.PageView{})
	if f.PageType != "" {
		q = q.Where("page_type = ?", f.PageType)
	}
	if f.Service != "" {
		q = q.Where("service = ?", f.Service)
	}
	if f.Location != "" {
		q = q.Where("location = ?", f.Location)
	}

	var views []db.PageView
	if err := q.Order("created_at DESC").Limit(1000).Find(&views).Error; err != nil {
		return SiteOverview{}, err
	}

	overview := SiteOverview{TotalViews: len(views)}
	if len(views) == 0 {
		return overview, nil
	}

	visitors := make(map[string]bool, len(views))
	counts := make(map[string]int)
	timeSum, scrollSum := 0, 0
	for _, view := range views {
		visitor := view.SessionID
		if visitor == "" {
			visitor = view.IPAddress
		}
		visitors[visitor] = true
		counts[view.PageURL]++
		timeSum += view.TimeOnPage
		scrollSum += view.ScrollDepth
	}

	overview.UniqueVisitors = len(visitors)
	overview.AvgTimeOnPage = timeSum / len(views)
	overview.AvgScrollDepth = scrollSum / len(views)

	top := make([]PageCount, 0, len(counts))
	for url, count := range counts {
		top = append(top, PageCount{URL: url, Views: count})
	}
	slices.SortFunc(top, func(a, b PageCount) int {
		if c := cmp.Compare(b.Views, a.Views); c != 0 {
			return c
		}
		return cmp.Compare(a.URL, b.URL)
	})
	if len(top) > 10 {
		top = top[:10]
	}
	overview.TopPages = top

	return overview, nil
}
