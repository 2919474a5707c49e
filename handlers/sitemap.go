package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"northbridge_site_go/config"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// GetSitemapHandler lists the indexable public pages
func GetSitemapHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)

	urls := make([]SitemapURL, 0, len(sitePages))
	for _, page := range sitePages {
		if page.NoIndex {
			continue
		}
		urls = append(urls, SitemapURL{
			Loc:        absoluteURL(cfg.AppURL, page.Path),
			ChangeFreq: page.ChangeFreq,
			Priority:   page.Priority,
		})
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// RobotsHandler allows all crawlers and points them at the sitemap
func RobotsHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	return c.String(http.StatusOK, fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /api/\n\nSitemap: %s\n",
		absoluteURL(cfg.AppURL, "/sitemap.xml")))
}
