package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"northbridge_site_go/config"
	"northbridge_site_go/models"
	"northbridge_site_go/services"
	"northbridge_site_go/services/i18n"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := i18n.Load(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type recordingMailer struct {
	mu   sync.Mutex
	msgs []*services.ContactMessage
	err  error
}

func (r *recordingMailer) Send(_ context.Context, msg *services.ContactMessage) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
	return "email_1", r.err
}

func testConfig(env string) *config.Config {
	return &config.Config{
		Environment:    env,
		AppURL:         "https://example.com",
		AllowedOrigins: []string{"*"},
	}
}

func serve(t *testing.T, cfg *config.Config, mailer services.Mailer, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	New(cfg, mailer).ServeHTTP(rec, req)
	return rec
}

func TestRoutes(t *testing.T) {
	cfg := testConfig("development")
	mailer := &recordingMailer{}

	for _, path := range []string{"/", "/approach", "/contact", "/sitemap.xml", "/robots.txt", "/healthz", "/metrics", "/dev/email/preview"} {
		t.Run(path, func(t *testing.T) {
			rec := serve(t, cfg, mailer, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestContactPageSecurityHeaders(t *testing.T) {
	rec := serve(t, testConfig("development"), &recordingMailer{}, httptest.NewRequest(http.MethodGet, "/contact", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	csp := rec.Header().Get("Content-Security-Policy")
	require.NotEmpty(t, csp)
	assert.Contains(t, rec.Body.String(), `<script nonce="`)
	start := strings.Index(csp, "'nonce-") + len("'nonce-")
	nonce := csp[start : start+strings.Index(csp[start:], "'")]
	assert.Contains(t, rec.Body.String(), `<script nonce="`+nonce+`">`)
}

func TestDevRoutesHiddenInProduction(t *testing.T) {
	rec := serve(t, testConfig("production"), &recordingMailer{}, httptest.NewRequest(http.MethodGet, "/dev/email/preview", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContactEndpoint(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mailer := &recordingMailer{}
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"companyName":"Acme","goals":["leads"]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept-Language", "es-MX,es;q=0.9")

		rec := serve(t, testConfig("development"), mailer, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp models.ContactResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, i18n.Translate("es", "contact.success"), resp.Message)
		assert.Len(t, mailer.msgs, 1)
	})

	t.Run("Provider failure", func(t *testing.T) {
		mailer := &recordingMailer{err: errors.New("down")}
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{}`))

		rec := serve(t, testConfig("development"), mailer, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"success":false,"message":"`+i18n.Translate("en", "contact.error")+`"}`, rec.Body.String())
	})

	t.Run("GET not allowed", func(t *testing.T) {
		rec := serve(t, testConfig("development"), &recordingMailer{}, httptest.NewRequest(http.MethodGet, "/api/contact", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestMetricsExposeSubmissions(t *testing.T) {
	cfg := testConfig("development")
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`not json`))
	serve(t, cfg, &recordingMailer{}, req)

	rec := serve(t, cfg, &recordingMailer{}, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `site_contact_submissions_total{outcome="bad_request"}`)
}
