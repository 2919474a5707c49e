package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"northbridge_site_go/models"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func reply(w http.ResponseWriter, status int, success bool) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ContactResponse{Success: success, Message: "msg"})
}

func filledForm(endpoint string) *Form {
	f := New(endpoint)
	f.UpdateField(FieldCompanyName, "Acme")
	f.UpdateField(FieldEmail, "a@b.com")
	f.ToggleGoal("leads")
	return f
}

func TestUpdateField(t *testing.T) {
	f := New("http://unused")
	for _, field := range Fields {
		f.UpdateField(field, string(field)+"-value")
	}
	f.UpdateField(Field("unknown"), "ignored")

	v := f.Values()
	assert.Equal(t, "companyName-value", v.CompanyName)
	assert.Equal(t, "website-value", v.Website)
	assert.Equal(t, "sector-value", v.Sector)
	assert.Equal(t, "region-value", v.Region)
	assert.Equal(t, "teamSize-value", v.TeamSize)
	assert.Equal(t, "revenue-value", v.Revenue)
	assert.Equal(t, "timing-value", v.Timing)
	assert.Equal(t, "name-value", v.Name)
	assert.Equal(t, "email-value", v.Email)
	assert.Equal(t, "invitationCode-value", v.InvitationCode)
}

func TestToggleGoal(t *testing.T) {
	f := New("http://unused")
	assert.Empty(t, f.Goals())

	f.ToggleGoal("leads")
	f.ToggleGoal("website")
	f.ToggleGoal("brand")
	assert.Equal(t, []string{"leads", "website", "brand"}, f.Goals())

	t.Run("Two toggles cancel", func(t *testing.T) {
		before := f.Goals()
		f.ToggleGoal("pricing")
		f.ToggleGoal("pricing")
		assert.Equal(t, before, f.Goals())

		f.ToggleGoal("website")
		f.ToggleGoal("website")
		assert.ElementsMatch(t, before, f.Goals())
	})

	t.Run("Removal keeps order", func(t *testing.T) {
		g := New("http://unused")
		g.ToggleGoal("a")
		g.ToggleGoal("b")
		g.ToggleGoal("c")
		g.ToggleGoal("b")
		assert.Equal(t, []string{"a", "c"}, g.Goals())
	})
}

func TestValuesIsACopy(t *testing.T) {
	f := New("http://unused")
	f.ToggleGoal("leads")

	v := f.Values()
	v.Goals[0] = "mutated"
	v.CompanyName = "mutated"

	assert.Equal(t, []string{"leads"}, f.Goals())
	assert.Empty(t, f.Values().CompanyName)
}

func TestSubmit_Success(t *testing.T) {
	var got models.Submission
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "es", r.Header.Get("Accept-Language"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		reply(w, http.StatusOK, true)
	})

	f := filledForm(srv.URL)
	WithLanguage("es")(f)

	status := f.Submit(context.Background())

	assert.Equal(t, StatusSuccess, status)
	assert.Equal(t, StatusSuccess, f.Status())
	assert.NoError(t, f.Err())
	assert.False(t, f.Submitting())
	assert.Equal(t, "Acme", got.CompanyName)
	assert.Equal(t, []string{"leads"}, got.Goals)

	assert.Equal(t, models.Submission{Goals: []string{}}, f.Values(), "form resets to its initial state")
}

func TestSubmit_FailureKeepsInput(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"Server error", func(w http.ResponseWriter, r *http.Request) { reply(w, http.StatusInternalServerError, false) }},
		{"Success false with 200", func(w http.ResponseWriter, r *http.Request) { reply(w, http.StatusOK, false) }},
		{"Not JSON", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("<html>oops</html>")) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.handler)
			f := filledForm(srv.URL)
			before := f.Values()

			status := f.Submit(context.Background())

			assert.Equal(t, StatusError, status)
			assert.Error(t, f.Err())
			assert.False(t, f.Submitting())
			assert.Equal(t, before, f.Values())
		})
	}
}

func TestSubmit_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	f := filledForm(url)
	before := f.Values()

	assert.Equal(t, StatusError, f.Submit(context.Background()))
	assert.False(t, f.Submitting())
	assert.Equal(t, before, f.Values())
}

func TestSubmit_RecoversAfterError(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			reply(w, http.StatusInternalServerError, false)
			return
		}
		reply(w, http.StatusOK, true)
	})

	f := filledForm(srv.URL)
	require.Equal(t, StatusError, f.Submit(context.Background()))

	fail.Store(false)
	assert.Equal(t, StatusSuccess, f.Submit(context.Background()))
	assert.NoError(t, f.Err())
}

func TestSubmit_GuardsReentry(t *testing.T) {
	var requests int32
	entered := make(chan struct{})
	release := make(chan struct{})
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		close(entered)
		<-release
		reply(w, http.StatusOK, true)
	})

	f := filledForm(srv.URL)

	var wg sync.WaitGroup
	wg.Add(1)
	var first Status
	go func() {
		defer wg.Done()
		first = f.Submit(context.Background())
	}()

	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("first submit never reached the server")
	}
	assert.True(t, f.Submitting())

	// Re-entrant calls return at once without sending.
	for i := 0; i < 3; i++ {
		assert.Equal(t, StatusIdle, f.Submit(context.Background()))
	}

	close(release)
	wg.Wait()

	assert.Equal(t, StatusSuccess, first)
	assert.Equal(t, int32(1), atomic.LoadInt32(&requests))
	assert.False(t, f.Submitting())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "error", StatusError.String())
}
