package services

import (
	"fmt"
	"log"
	"northbridge_site_go/models"
	"strings"
	"time"
	_ "time/tzdata" // submission timestamps must resolve the zone on hosts without a tz database

	"github.com/google/uuid"
)

const (
	fallbackNotProvided  = "Not provided"
	fallbackNotSpecified = "Not specified"
	fallbackNone         = "None"
	fallbackSubjectLabel = "Unknown"

	// SubmissionTimeZone is the zone submission timestamps are rendered in.
	SubmissionTimeZone = "America/New_York"
	// submissionTimeLayout mirrors the en-US "M/D/YYYY, h:mm:ss AM" rendering.
	submissionTimeLayout = "1/2/2006, 3:04:05 PM MST"
)

var submissionLocation = loadSubmissionLocation()

func loadSubmissionLocation() *time.Location {
	loc, err := time.LoadLocation(SubmissionTimeZone)
	if err != nil {
		log.Printf("[WARNING] Failed to load %s, falling back to UTC: %v", SubmissionTimeZone, err)
		return time.UTC
	}
	return loc
}

// ContactMessage is the email derived from a contact Submission.
type ContactMessage struct {
	SubmissionID string
	Subject      string
	TextBody     string
	ReplyTo      string // empty when the submitter left no email
}

// BuildContactMessage renders a Submission into the email sent to the firm.
// submittedAt is shown in SubmissionTimeZone.
func BuildContactMessage(sub models.Submission, submittedAt time.Time) *ContactMessage {
	email := clean(sub.Email)

	var b strings.Builder
	b.WriteString("New contact form submission\n")

	section := func(title string) {
		b.WriteString("\n")
		b.WriteString(title)
		b.WriteString("\n")
	}
	line := func(label, value, fallback string) {
		fmt.Fprintf(&b, "%s: %s\n", label, orFallback(clean(value), fallback))
	}

	section("COMPANY")
	line("Company Name", sub.CompanyName, fallbackNotProvided)
	line("Website", sub.Website, fallbackNotProvided)
	line("Sector", sub.Sector, fallbackNotSpecified)
	line("Region", sub.Region, fallbackNotSpecified)
	line("Team Size", sub.TeamSize, fallbackNotSpecified)
	line("Revenue", sub.Revenue, fallbackNotSpecified)

	section("GOALS")
	fmt.Fprintf(&b, "Goals: %s\n", FormatGoals(sub.Goals))
	line("Timing", sub.Timing, fallbackNotSpecified)

	section("CONTACT")
	line("Name", sub.Name, fallbackNotProvided)
	fmt.Fprintf(&b, "Email: %s\n", orFallback(email, fallbackNotProvided))
	line("Invitation Code", sub.InvitationCode, fallbackNone)

	fmt.Fprintf(&b, "\nSubmitted: %s\n", FormatSubmittedAt(submittedAt))

	return &ContactMessage{
		SubmissionID: uuid.New().String(),
		Subject:      "New Contact Form Submission: " + subjectLabel(sub),
		TextBody:     b.String(),
		ReplyTo:      email,
	}
}

// FormatGoals joins the goals with ", " in the order given, or returns "None"
// when there are none.
func FormatGoals(goals []string) string {
	if len(goals) == 0 {
		return fallbackNone
	}
	return strings.Join(goals, ", ")
}

// FormatSubmittedAt renders t in the submission time zone.
func FormatSubmittedAt(t time.Time) string {
	return t.In(submissionLocation).Format(submissionTimeLayout)
}

func subjectLabel(sub models.Submission) string {
	if company := clean(sub.CompanyName); company != "" {
		return company
	}
	if name := clean(sub.Name); name != "" {
		return name
	}
	return fallbackSubjectLabel
}

// clean trims a user supplied value. The email is plain text, so the value is
// otherwise kept verbatim.
func clean(s string) string {
	return strings.TrimSpace(s)
}

func orFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
