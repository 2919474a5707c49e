package handlers

import (
	_ "embed"
	"fmt"
	"northbridge_site_go/models"
	"northbridge_site_go/services/i18n"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed seo.yaml
var seoYAML []byte

type seoFile struct {
	Pages []*models.SEO `yaml:"pages"`
}

// sitePages holds the public pages in sitemap order.
var sitePages = mustParseSEO(seoYAML)

func parseSEO(data []byte) ([]*models.SEO, error) {
	var file seoFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse page metadata: %w", err)
	}
	seen := make(map[string]bool, len(file.Pages))
	for _, page := range file.Pages {
		if page.Key == "" || page.Path == "" {
			return nil, fmt.Errorf("page metadata entry needs a key and a path: %+v", page)
		}
		if seen[page.Key] {
			return nil, fmt.Errorf("duplicate page metadata key %q", page.Key)
		}
		seen[page.Key] = true
	}
	return file.Pages, nil
}

func mustParseSEO(data []byte) []*models.SEO {
	pages, err := parseSEO(data)
	if err != nil {
		panic(err)
	}
	return pages
}

// GetSEO returns a copy of the metadata for page with absolute URLs against appURL.
// It returns nil for an unknown page.
func GetSEO(page, appURL, lang string) *models.SEO {
	for _, p := range sitePages {
		if p.Key != page {
			continue
		}
		seo := *p
		seo.WithCanonical(absoluteURL(appURL, p.Path))
		if seo.OGImage != "" && strings.HasPrefix(seo.OGImage, "/") {
			seo.OGImage = absoluteURL(appURL, seo.OGImage)
		}
		var alt []string
		for _, l := range i18n.Supported {
			if l != lang {
				alt = append(alt, l)
			}
		}
		return seo.WithLocale(lang, alt...)
	}
	return nil
}

func absoluteURL(appURL, path string) string {
	return strings.TrimRight(appURL, "/") + path
}
