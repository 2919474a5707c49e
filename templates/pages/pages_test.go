package pages

import (
	"bytes"
	"context"
	"northbridge_site_go/middleware"
	"northbridge_site_go/models"
	"northbridge_site_go/services/i18n"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderString(t *testing.T, lang string, c templ.Component) string {
	t.Helper()
	require.NoError(t, i18n.Load())
	var buf bytes.Buffer
	require.NoError(t, c.Render(i18n.WithLocale(context.Background(), lang), &buf))
	return buf.String()
}

func testSEO() *models.SEO {
	return &models.SEO{
		Title:       "Contact <Us>",
		Description: "Say hello",
		OGType:      "website",
		Canonical:   "https://example.com/contact",
		Locale:      "en",
		AltLocales:  []string{"es"},
	}
}

func TestLayout(t *testing.T) {
	html := renderString(t, "en", Home(testSEO()))

	assert.Contains(t, html, `<html lang="en">`)
	assert.Contains(t, html, "<title>Contact &lt;Us&gt;</title>")
	assert.Contains(t, html, `<link rel="canonical" href="https://example.com/contact">`)
	assert.Contains(t, html, `hreflang="es"`)
	assert.Contains(t, html, `href="/approach"`)
	assert.Contains(t, html, "</html>")
}

func TestHome(t *testing.T) {
	html := renderString(t, "en", Home(testSEO()))
	assert.Contains(t, html, i18n.Translate("en", "home.headline"))
	assert.Contains(t, html, `href="/contact"`)
	assert.Contains(t, html, "<strong>owner-led companies</strong>")
}

func TestSanitizeCopy(t *testing.T) {
	out := sanitizeCopy(`Plain <strong>bold</strong><script>alert(1)</script> <a href="javascript:alert(1)">x</a>`)
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "javascript:")
}

func TestFormInputs_EscapeLabels(t *testing.T) {
	var b strings.Builder
	textInput(&b, "name", "text", `Name <b>"x"</b>`)
	selectInput(&b, "sector", "Sector & Co", []Option{{Value: `a"b`, Label: "<Retail>"}})

	out := b.String()
	assert.Contains(t, out, `<label for="name">Name &lt;b&gt;&#34;x&#34;&lt;/b&gt;</label>`)
	assert.Contains(t, out, `<label for="sector">Sector &amp; Co</label>`)
	assert.Contains(t, out, `<option value="a&#34;b">&lt;Retail&gt;</option>`)
	assert.NotContains(t, out, "<b>")
}

func TestApproach_Spanish(t *testing.T) {
	html := renderString(t, "es", Approach(testSEO()))
	assert.Contains(t, html, `<html lang="es">`)
	assert.Contains(t, html, templ.EscapeString(i18n.Translate("es", "approach.headline")))
	for _, step := range approachSteps {
		assert.Contains(t, html, templ.EscapeString(i18n.Translate("es", step)))
	}
}

func TestContact(t *testing.T) {
	html := renderString(t, "en", Contact(testSEO()))

	assert.Contains(t, html, `action="/api/contact"`)
	for _, name := range []string{"companyName", "website", "sector", "region", "teamSize", "revenue",
		"timing", "name", "email", "invitationCode"} {
		assert.Contains(t, html, `name="`+name+`"`, "field %s", name)
	}
	for _, goal := range GoalOptions {
		assert.Contains(t, html, `name="goals" value="`+goal.Value+`"`)
	}
	assert.Contains(t, html, `type="email"`)
	assert.Contains(t, html, "JSON.stringify")
}

func TestContact_ScriptNonce(t *testing.T) {
	require.NoError(t, i18n.Load())
	ctx := middleware.WithNonce(i18n.WithLocale(context.Background(), "en"), "abc123")

	var buf bytes.Buffer
	require.NoError(t, Contact(testSEO()).Render(ctx, &buf))
	assert.Contains(t, buf.String(), `<script nonce="abc123">`)
}

func TestLayout_VersionedStylesheet(t *testing.T) {
	html := renderString(t, "en", Home(testSEO()))
	assert.Contains(t, html, `href="/static/css/style.css?v=`)
}
