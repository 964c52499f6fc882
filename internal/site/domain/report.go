package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidReportURL = errors.New("report url must be an absolute http(s) url")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Report is a user-submitted suspicious-site report.
type Report struct {
	ID         string    `json:"id" validate:"required"`
	URL        string    `json:"url" validate:"required,http_url"`
	Screenshot []byte    `json:"screenshot,omitempty"`
	DOM        string    `json:"dom,omitempty"`
	Referrers  []string  `json:"referrers,omitempty"`
	Alerts     []string  `json:"alerts,omitempty"`
	CreatedAt  time.Time `json:"createdAt" validate:"required"`
}

// ReportRequest is what the browser-side glue submits; the service fills in the rest.
type ReportRequest struct {
	URL              string `validate:"required,http_url"`
	TabID            int    `validate:"gte=0"`
	Screenshot       []byte
	DOM              string
	IncludeRedirects bool
}

// Validate checks the report for required fields.
func (r Report) Validate() error {
	return reportError(validate.Struct(r))
}

// Validate checks the request before any work is done for it.
func (r ReportRequest) Validate() error {
	return reportError(validate.Struct(r))
}

// reportError maps URL failures onto the sentinel errors callers match on.
func reportError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	if fe.Field() == "URL" {
		if fe.Tag() == "required" {
			return ErrEmptyURL
		}
		return ErrInvalidReportURL
	}
	return fmt.Errorf("report %s failed %q validation", fe.Field(), fe.Tag())
}
