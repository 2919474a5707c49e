package handlers

import (
	"net/http"
	"northbridge_site_go/config"
	"northbridge_site_go/models"
	"northbridge_site_go/services"

	"github.com/labstack/echo/v4"
)

// sampleSubmission is what the preview renders when no query params are given.
var sampleSubmission = models.Submission{
	CompanyName: "Acme Widgets",
	Website:     "https://acme.example",
	Sector:      "retail",
	Region:      "north-america",
	TeamSize:    "11-50",
	Revenue:     "1m-5m",
	Goals:       []string{"leads", "website"},
	Timing:      "this-quarter",
	Name:        "Jordan Example",
	Email:       "jordan@acme.example",
}

// PreviewContactEmailHandler renders the contact email for a sample submission
// without sending it (development only).
func PreviewContactEmailHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	if cfg.IsProduction() {
		return echo.NewHTTPError(http.StatusForbidden, "This endpoint is only available in development mode")
	}

	sub := sampleSubmission.Clone()
	if company := c.QueryParam("company"); company != "" {
		sub.CompanyName = company
	}
	if c.QueryParam("empty") == "true" {
		sub = models.Submission{}
	}

	msg := services.BuildContactMessage(sub, now())
	return c.JSON(http.StatusOK, map[string]string{
		"to":       cfg.ContactRecipient,
		"reply_to": msg.ReplyTo,
		"subject":  msg.Subject,
		"text":     msg.TextBody,
	})
}
