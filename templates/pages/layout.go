package pages

import (
	"context"
	"fmt"
	"io"
	"northbridge_site_go/middleware"
	"northbridge_site_go/models"
	"northbridge_site_go/services/i18n"
	"strings"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
)

// copyPolicy limits translated copy to inline formatting and links.
var copyPolicy = bluemonday.UGCPolicy()

type navLink struct {
	path string
	key  string
}

var navLinks = []navLink{
	{"/", "nav.home"},
	{"/approach", "nav.approach"},
	{"/contact", "nav.contact"},
}

// Layout wraps body in the shared document shell: head metadata, navigation and footer.
func Layout(seo *models.SEO, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := i18n.GetLocale(ctx)
		e := esc

		var b strings.Builder
		fmt.Fprintf(&b, "<!DOCTYPE html>\n<html lang=\"%s\">\n<head>\n", e(lang))
		b.WriteString("<meta charset=\"UTF-8\">\n<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
		fmt.Fprintf(&b, "<title>%s</title>\n", e(seo.Title))
		fmt.Fprintf(&b, "<meta name=\"description\" content=\"%s\">\n", e(seo.Description))
		if seo.Keywords != "" {
			fmt.Fprintf(&b, "<meta name=\"keywords\" content=\"%s\">\n", e(seo.Keywords))
		}
		if seo.NoIndex {
			b.WriteString("<meta name=\"robots\" content=\"noindex, nofollow\">\n")
		}
		if seo.Canonical != "" {
			fmt.Fprintf(&b, "<link rel=\"canonical\" href=\"%s\">\n", e(seo.Canonical))
			for _, alt := range seo.AltLocales {
				fmt.Fprintf(&b, "<link rel=\"alternate\" hreflang=\"%s\" href=\"%s?lang=%s\">\n", e(alt), e(seo.Canonical), e(alt))
			}
		}
		fmt.Fprintf(&b, "<meta property=\"og:title\" content=\"%s\">\n", e(seo.Title))
		fmt.Fprintf(&b, "<meta property=\"og:description\" content=\"%s\">\n", e(seo.Description))
		fmt.Fprintf(&b, "<meta property=\"og:type\" content=\"%s\">\n", e(seo.OGType))
		if seo.OGImage != "" {
			fmt.Fprintf(&b, "<meta property=\"og:image\" content=\"%s\">\n", e(seo.OGImage))
		}
		fmt.Fprintf(&b, "<link rel=\"stylesheet\" href=\"/%s?v=%s\">\n</head>\n<body>\n",
			middleware.StylesheetPath, e(middleware.GetCSSVersion(ctx)))

		fmt.Fprintf(&b, "<header class=\"site-header\"><a class=\"brand\" href=\"/\">%s</a><nav>", e(i18n.T(ctx, "site.name")))
		for _, link := range navLinks {
			fmt.Fprintf(&b, "<a href=\"%s\">%s</a>", link.path, e(i18n.T(ctx, link.key)))
		}
		for _, l := range i18n.Supported {
			fmt.Fprintf(&b, "<a class=\"lang\" href=\"?lang=%s\">%s</a>", l, strings.ToUpper(l))
		}
		b.WriteString("</nav></header>\n<main>\n")

		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}

		_, err := fmt.Fprintf(w, "</main>\n<footer class=\"site-footer\"><p>%s</p></footer>\n</body>\n</html>\n",
			e(i18n.T(ctx, "site.tagline")))
		return err
	})
}

func esc(s string) string {
	return templ.EscapeString(s)
}

// richText returns the translation for key as sanitized HTML. Translations may
// carry inline markup such as <strong>; anything else is stripped.
func richText(ctx context.Context, key string) string {
	return sanitizeCopy(i18n.T(ctx, key))
}

func sanitizeCopy(s string) string {
	return copyPolicy.Sanitize(s)
}

// writeAll writes parts to w in order, stopping at the first error.
func writeAll(w io.Writer, parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	return nil
}
