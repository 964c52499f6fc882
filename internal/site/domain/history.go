package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyURL      = errors.New("url must not be empty")
	ErrZeroVisitTime = errors.New("visit time must be set")
)

// HistoryItem is one visited URL as reported by the browsing-history provider.
type HistoryItem struct {
	URL       string
	VisitTime time.Time
}

// NewHistoryItem constructs a HistoryItem and validates its fields.
func NewHistoryItem(url string, visitTime time.Time) (HistoryItem, error) {
	h := HistoryItem{URL: strings.TrimSpace(url), VisitTime: visitTime}
	if err := h.Validate(); err != nil {
		return HistoryItem{}, err
	}
	return h, nil
}

// Validate checks the HistoryItem for required fields.
func (h HistoryItem) Validate() error {
	if h.URL == "" {
		return ErrEmptyURL
	}
	if h.VisitTime.IsZero() {
		return ErrZeroVisitTime
	}
	return nil
}
