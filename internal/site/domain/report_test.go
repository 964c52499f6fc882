package domain

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestReport_Validate(t *testing.T) {
	now := time.Now()
	valid := Report{ID: "0b8e0b1e-9c1a-4c1e-9a57-3d1f6c5e2a10", URL: "https://phish.example.tk/login", CreatedAt: now}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name string
		mut  func(r *Report)
		want error
		msg  string
	}{
		{"missing id", func(r *Report) { r.ID = "" }, nil, `report ID failed "required" validation`},
		{"missing url", func(r *Report) { r.URL = "" }, ErrEmptyURL, ""},
		{"blank url", func(r *Report) { r.URL = "   " }, ErrInvalidReportURL, ""},
		{"relative url", func(r *Report) { r.URL = "/login" }, ErrInvalidReportURL, ""},
		{"ftp url", func(r *Report) { r.URL = "ftp://example.com/file" }, ErrInvalidReportURL, ""},
		{"zero time", func(r *Report) { r.CreatedAt = time.Time{} }, nil, `report CreatedAt failed "required" validation`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := valid
			tc.mut(&r)
			err := r.Validate()
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if tc.msg != "" && !strings.Contains(err.Error(), tc.msg) {
				t.Fatalf("expected %q in %q", tc.msg, err.Error())
			}
		})
	}
}

func TestReportRequest_Validate(t *testing.T) {
	if err := (ReportRequest{URL: "http://example.com/"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (ReportRequest{}).Validate(); !errors.Is(err, ErrEmptyURL) {
		t.Fatalf("expected ErrEmptyURL, got %v", err)
	}
	if err := (ReportRequest{URL: "example.com"}).Validate(); !errors.Is(err, ErrInvalidReportURL) {
		t.Fatalf("expected ErrInvalidReportURL, got %v", err)
	}
	if err := (ReportRequest{URL: "http://example.com/", TabID: -1}).Validate(); err == nil {
		t.Fatalf("expected error for negative tab id")
	}
}
