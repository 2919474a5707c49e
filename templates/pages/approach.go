package pages

import (
	"context"
	"io"
	"northbridge_site_go/models"
	"northbridge_site_go/services/i18n"

	"github.com/a-h/templ"
)

var approachSteps = []string{"approach.step1", "approach.step2", "approach.step3"}

// Approach renders the page describing how engagements run.
func Approach(seo *models.SEO) templ.Component {
	return Layout(seo, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		e := esc
		if err := writeAll(w,
			`<section class="approach"><h1>`, e(i18n.T(ctx, "approach.headline")), `</h1>`,
			`<p>`, richText(ctx, "approach.intro"), `</p><ol class="steps">`,
		); err != nil {
			return err
		}
		for _, step := range approachSteps {
			if err := writeAll(w, `<li>`, e(i18n.T(ctx, step)), `</li>`); err != nil {
				return err
			}
		}
		return writeAll(w, `</ol></section>`, "\n")
	}))
}
