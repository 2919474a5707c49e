package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"northbridge_site_go/logging"
	"northbridge_site_go/models"
	"northbridge_site_go/services"
	"northbridge_site_go/services/i18n"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// now is replaced in tests.
var now = time.Now

// ContactSubmitHandler forwards a contact form submission to the configured mailer.
// Every failure, whatever its cause, gets the same 500 reply.
func ContactSubmitHandler(c echo.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logging.L().Error("contact submission panicked", zap.Any("panic", r), zap.Stack("stack"))
			services.RecordSubmission(services.OutcomeInternalError)
			err = contactFailure(c)
		}
	}()

	sub, err := decodeSubmission(c.Request().Body)
	if err != nil {
		logging.L().Warn("invalid contact submission body", zap.Error(err), zap.String("ip", c.RealIP()))
		services.RecordSubmission(services.OutcomeBadRequest)
		return contactFailure(c)
	}

	mailer, ok := c.Get("mailer").(services.Mailer)
	if !ok || mailer == nil {
		panic(fmt.Sprintf("mailer missing from context: %T", c.Get("mailer")))
	}

	msg := services.BuildContactMessage(sub, now())
	providerID, err := mailer.Send(c.Request().Context(), msg)
	if err != nil {
		logging.L().Error("failed to deliver contact submission",
			zap.String("submission_id", msg.SubmissionID),
			zap.Error(err),
		)
		services.RecordSubmission(services.OutcomeProviderError)
		return contactFailure(c)
	}

	logging.L().Info("contact submission delivered",
		zap.String("submission_id", msg.SubmissionID),
		zap.String("provider_id", providerID),
	)
	services.RecordSubmission(services.OutcomeSuccess)
	return c.JSON(http.StatusOK, models.ContactResponse{
		Success: true,
		Message: i18n.T(c.Request().Context(), "contact.success"),
	})
}

func contactFailure(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, models.ContactResponse{
		Success: false,
		Message: i18n.T(c.Request().Context(), "contact.error"),
	})
}

// decodeSubmission reads exactly one JSON object from r. Anything other than
// whitespace after the object is an error.
func decodeSubmission(r io.Reader) (models.Submission, error) {
	var sub models.Submission

	dec := json.NewDecoder(r)
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return sub, fmt.Errorf("failed to decode submission: %w", err)
	}
	if !bytes.HasPrefix(raw, []byte("{")) {
		return sub, errors.New("submission must be a JSON object")
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return sub, errors.New("unexpected data after submission")
	}

	if err := json.Unmarshal(raw, &sub); err != nil {
		return sub, fmt.Errorf("failed to decode submission: %w", err)
	}
	return sub, nil
}
