package models

// SEO contains metadata for search engine optimization and social sharing
type SEO struct {
	Key         string   `yaml:"key"`         // Page identifier
	Title       string   `yaml:"title"`       // Page title
	Description string   `yaml:"description"` // Meta description (150-160 chars recommended)
	Keywords    string   `yaml:"keywords"`    // Meta keywords (comma-separated)
	Path        string   `yaml:"path"`        // Route path; joined with the app URL for the canonical link
	Canonical   string   `yaml:"-"`           // Canonical URL
	OGImage     string   `yaml:"og_image"`    // Open Graph image URL
	OGType      string   `yaml:"og_type"`     // Open Graph type (website, article, etc.)
	ChangeFreq  string   `yaml:"changefreq"`  // Sitemap change frequency
	Priority    float32  `yaml:"priority"`    // Sitemap priority
	NoIndex     bool     `yaml:"noindex"`     // If true, adds noindex directive and leaves the page out of the sitemap
	Locale      string   `yaml:"-"`           // Current locale (e.g., "en", "es")
	AltLocales  []string `yaml:"-"`           // Alternative locales for hreflang
}

// WithCanonical sets the canonical URL
func (s *SEO) WithCanonical(url string) *SEO {
	s.Canonical = url
	return s
}

// WithLocale sets the current locale and alternative locales
func (s *SEO) WithLocale(locale string, altLocales ...string) *SEO {
	s.Locale = locale
	s.AltLocales = altLocales
	return s
}
