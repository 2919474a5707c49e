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
)

// ContactEndpoint is where the contact form posts its JSON payload.
const ContactEndpoint = "/api/contact"

// contactScript posts the form as JSON once per submit. On success it clears the
// form; on failure it keeps the input. A second submit while one is in flight is ignored.
const contactScript = `<script nonce="%s">
(function () {
  var form = document.getElementById("contact-form");
  var status = document.getElementById("contact-status");
  var submitting = false;
  form.addEventListener("submit", function (ev) {
    ev.preventDefault();
    if (submitting) { return; }
    submitting = true;
    var data = {goals: []};
    new FormData(form).forEach(function (value, key) {
      if (key === "goals") { data.goals.push(value); } else { data[key] = value; }
    });
    fetch(form.action, {method: "POST", headers: {"Content-Type": "application/json"}, body: JSON.stringify(data)})
      .then(function (res) { return res.json(); })
      .then(function (body) {
        if (!body.success) { throw new Error(body.message); }
        form.reset();
        status.className = "status success";
        status.textContent = form.dataset.success;
      })
      .catch(function () {
        status.className = "status error";
        status.textContent = form.dataset.error;
      })
      .finally(function () { submitting = false; });
  });
})();
</script>
`

// Contact renders the contact form page.
func Contact(seo *models.SEO) templ.Component {
	return Layout(seo, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		t := func(key string) string { return i18n.T(ctx, key) }

		var b strings.Builder
		fmt.Fprintf(&b, `<section class="contact"><h1>%s</h1><p>%s</p>`, esc(t("contact.headline")), richText(ctx, "contact.intro"))
		fmt.Fprintf(&b, `<form id="contact-form" method="post" action="%s" data-success="%s" data-error="%s">`,
			ContactEndpoint, esc(t("contact.success")), esc(t("contact.error")))

		fmt.Fprintf(&b, `<fieldset><legend>%s</legend>`, esc(t("contact.section.company")))
		textInput(&b, "companyName", "text", t("contact.field.companyName"))
		textInput(&b, "website", "url", t("contact.field.website"))
		selectInput(&b, "sector", t("contact.field.sector"), SectorOptions)
		selectInput(&b, "region", t("contact.field.region"), RegionOptions)
		selectInput(&b, "teamSize", t("contact.field.teamSize"), TeamSizeOptions)
		selectInput(&b, "revenue", t("contact.field.revenue"), RevenueOptions)
		b.WriteString(`</fieldset>`)

		fmt.Fprintf(&b, `<fieldset><legend>%s</legend><p>%s</p>`, esc(t("contact.section.goals")), esc(t("contact.field.goals")))
		for _, goal := range GoalOptions {
			fmt.Fprintf(&b, `<label><input type="checkbox" name="goals" value="%s"> %s</label>`, esc(goal.Value), esc(goal.Label))
		}
		selectInput(&b, "timing", t("contact.field.timing"), TimingOptions)
		b.WriteString(`</fieldset>`)

		fmt.Fprintf(&b, `<fieldset><legend>%s</legend>`, esc(t("contact.section.contact")))
		textInput(&b, "name", "text", t("contact.field.name"))
		textInput(&b, "email", "email", t("contact.field.email"))
		textInput(&b, "invitationCode", "text", t("contact.field.invitationCode"))
		b.WriteString(`</fieldset>`)

		fmt.Fprintf(&b, `<button type="submit">%s</button></form><p id="contact-status" class="status" role="status"></p></section>`,
			esc(t("contact.submit")))
		b.WriteString("\n")
		fmt.Fprintf(&b, contactScript, esc(middleware.GetNonce(ctx)))

		_, err := io.WriteString(w, b.String())
		return err
	}))
}

// textInput and selectInput escape every value they write, label included.
func textInput(b *strings.Builder, name, inputType, label string) {
	name = esc(name)
	fmt.Fprintf(b, `<label for="%s">%s</label><input id="%s" name="%s" type="%s">`, name, esc(label), name, name, esc(inputType))
}

func selectInput(b *strings.Builder, name, label string, options []Option) {
	name = esc(name)
	fmt.Fprintf(b, `<label for="%s">%s</label><select id="%s" name="%s"><option value=""></option>`, name, esc(label), name, name)
	for _, opt := range options {
		fmt.Fprintf(b, `<option value="%s">%s</option>`, esc(opt.Value), esc(opt.Label))
	}
	b.WriteString(`</select>`)
}
