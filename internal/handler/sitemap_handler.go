package handler

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap handles GET /sitemap.xml for crawler consumption.
func (a *API) Sitemap(c *gin.Context) {
	entries := a.content.SitemapEntries(a.baseURL)
	lastMod := time.Now().Format("2006-01-02")

	set := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]sitemapURL, 0, len(entries)),
	}
	for _, entry := range entries {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        entry.URL,
			LastMod:    lastMod,
			ChangeFreq: entry.ChangeFreq,
			Priority:   entry.Priority,
		})
	}

	c.XML(http.StatusOK, set)
}
