package pages

import (
	"context"
	"io"
	"northbridge_site_go/models"
	"northbridge_site_go/services/i18n"

	"github.com/a-h/templ"
)

// Home renders the landing page.
func Home(seo *models.SEO) templ.Component {
	return Layout(seo, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		e := esc
		return writeAll(w,
			`<section class="hero"><h1>`, e(i18n.T(ctx, "home.headline")), `</h1>`,
			`<p>`, richText(ctx, "home.intro"), `</p>`,
			`<a class="button" href="/contact">`, e(i18n.T(ctx, "home.cta")), `</a></section>`, "\n",
		)
	}))
}
