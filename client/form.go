// Package client implements the contact form: local form state plus a
// single-attempt submit to the site's /api/contact endpoint.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"northbridge_site_go/models"
	"sync"
)

// Field names one editable text field of the form.
type Field string

const (
	FieldCompanyName    Field = "companyName"
	FieldWebsite        Field = "website"
	FieldSector         Field = "sector"
	FieldRegion         Field = "region"
	FieldTeamSize       Field = "teamSize"
	FieldRevenue        Field = "revenue"
	FieldTiming         Field = "timing"
	FieldName           Field = "name"
	FieldEmail          Field = "email"
	FieldInvitationCode Field = "invitationCode"
)

// Fields lists every text field in form order.
var Fields = []Field{
	FieldCompanyName, FieldWebsite, FieldSector, FieldRegion, FieldTeamSize,
	FieldRevenue, FieldTiming, FieldName, FieldEmail, FieldInvitationCode,
}

// Status is the banner state shown after a submit attempt.
type Status int

const (
	StatusIdle Status = iota
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// Form holds the state of one contact form. It is safe for concurrent use.
type Form struct {
	endpoint   string
	httpClient *http.Client
	language   string

	mu         sync.Mutex
	values     models.Submission
	status     Status
	lastErr    error
	submitting bool
}

type Option func(*Form)

// WithHTTPClient sets the client used for submits. The default is http.DefaultClient.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Form) { f.httpClient = c }
}

// WithLanguage sends lang as Accept-Language so the reply message is localized.
func WithLanguage(lang string) Option {
	return func(f *Form) { f.language = lang }
}

// New returns an empty form that submits to endpoint.
func New(endpoint string, opts ...Option) *Form {
	f := &Form{
		endpoint:   endpoint,
		httpClient: http.DefaultClient,
		values:     emptySubmission(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func emptySubmission() models.Submission {
	return models.Submission{Goals: []string{}}
}

// UpdateField sets one text field. Unknown fields are ignored.
func (f *Form) UpdateField(field Field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if p := fieldPtr(&f.values, field); p != nil {
		*p = value
	}
}

func fieldPtr(s *models.Submission, field Field) *string {
	switch field {
	case FieldCompanyName:
		return &s.CompanyName
	case FieldWebsite:
		return &s.Website
	case FieldSector:
		return &s.Sector
	case FieldRegion:
		return &s.Region
	case FieldTeamSize:
		return &s.TeamSize
	case FieldRevenue:
		return &s.Revenue
	case FieldTiming:
		return &s.Timing
	case FieldName:
		return &s.Name
	case FieldEmail:
		return &s.Email
	case FieldInvitationCode:
		return &s.InvitationCode
	}
	return nil
}

// ToggleGoal adds goal if it is absent and removes it otherwise.
// The remaining goals keep their insertion order.
func (f *Form) ToggleGoal(goal string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, g := range f.values.Goals {
		if g == goal {
			f.values.Goals = append(f.values.Goals[:i:i], f.values.Goals[i+1:]...)
			return
		}
	}
	f.values.Goals = append(f.values.Goals, goal)
}

// Values returns a copy of the current form state.
func (f *Form) Values() models.Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values.Clone()
}

// Goals returns the selected goals in insertion order.
func (f *Form) Goals() []string {
	return f.Values().Goals
}

func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Err returns why the last submit failed, or nil.
func (f *Form) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// Submitting reports whether a submit is in flight.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Submit posts the current state once. A call made while another submit is in
// flight returns the current status without sending anything.
// On success the form is cleared; on any failure the input is kept.
func (f *Form) Submit(ctx context.Context) Status {
	f.mu.Lock()
	if f.submitting {
		status := f.status
		f.mu.Unlock()
		return status
	}
	f.submitting = true
	snapshot := f.values.Clone()
	f.mu.Unlock()

	err := f.post(ctx, snapshot)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	f.lastErr = err
	if err != nil {
		f.status = StatusError
		return f.status
	}
	f.values = emptySubmission()
	f.status = StatusSuccess
	return f.status
}

func (f *Form) post(ctx context.Context, sub models.Submission) error {
	payload, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if f.language != "" {
		req.Header.Set("Accept-Language", f.language)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send submission: %w", err)
	}
	defer resp.Body.Close()

	var out models.ContactResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		return fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode/100 != 2 || !out.Success {
		return fmt.Errorf("submission rejected (status %d): %s", resp.StatusCode, out.Message)
	}
	return nil
}
