package domain

import (
	"fmt"
	"strings"
)

// AlertKind identifies a heuristic signal raised for a page.
// The numeric order is the display precedence of the alert list.
type AlertKind uint8

const (
	AlertNotTopSite AlertKind = iota + 1
	AlertIDN
	AlertNotVisitedBefore
	AlertManySubdomains
	AlertLongSubdomains
	AlertMultipleURLShorteners
	AlertSuspiciousTLD
)

var alertNames = map[AlertKind]string{
	AlertNotTopSite:            "notTopSite",
	AlertIDN:                   "isIDN",
	AlertNotVisitedBefore:      "notVisitedBefore",
	AlertManySubdomains:        "manySubdomains",
	AlertLongSubdomains:        "longSubdomains",
	AlertMultipleURLShorteners: "multipleUrlShortenerRedirects",
	AlertSuspiciousTLD:         "redirectsThroughSuspiciousTld",
}

var alertMessages = map[AlertKind]string{
	AlertNotTopSite:            "Site is not in the top 1k sites",
	AlertIDN:                   "Domain uses uncommon characters",
	AlertNotVisitedBefore:      "You haven't visited this site in the last 3 months",
	AlertManySubdomains:        "Domain has unusually many subdomains",
	AlertLongSubdomains:        "Domain has unusually long subdomains",
	AlertMultipleURLShorteners: "Redirected through multiple URL shorteners",
	AlertSuspiciousTLD:         "Redirected through a suspicious domain",
}

// String returns the stable signal name, e.g. "isIDN".
func (k AlertKind) String() string {
	if name, ok := alertNames[k]; ok {
		return name
	}
	return fmt.Sprintf("AlertKind(%d)", k)
}

// Message returns the fixed human-readable text shown for the alert.
func (k AlertKind) Message() string {
	return alertMessages[k]
}

// ParseAlertKind converts a signal name into an AlertKind (case-insensitive).
func ParseAlertKind(s string) (AlertKind, error) {
	s = strings.TrimSpace(s)
	for k, name := range alertNames {
		if strings.EqualFold(name, s) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unsupported AlertKind: %q", s)
}

// Signals holds the outcome of every evaluator for one page.
// Pure value type; the zero value raises no alerts.
type Signals struct {
	Host                 string
	TopSite              bool
	IDN                  bool
	VisitedBefore        bool
	ManySubdomains       bool
	LongSubdomains       bool
	MultipleURLShortener bool
	SuspiciousTLD        bool
}

// Alerts returns the raised alerts in display precedence.
// A top site never carries the IDN alert.
func (s Signals) Alerts() []AlertKind {
	if s.Host == "" {
		return nil
	}
	var out []AlertKind
	if !s.TopSite {
		out = append(out, AlertNotTopSite)
		if s.IDN {
			out = append(out, AlertIDN)
		}
	}
	if !s.VisitedBefore {
		out = append(out, AlertNotVisitedBefore)
	}
	if s.ManySubdomains {
		out = append(out, AlertManySubdomains)
	}
	if s.LongSubdomains {
		out = append(out, AlertLongSubdomains)
	}
	if s.MultipleURLShortener {
		out = append(out, AlertMultipleURLShorteners)
	}
	if s.SuspiciousTLD {
		out = append(out, AlertSuspiciousTLD)
	}
	return out
}

// Messages maps alert kinds to their messages, preserving order and dropping duplicates.
func Messages(kinds []AlertKind) []string {
	out := make([]string, 0, len(kinds))
	seen := make(map[AlertKind]struct{}, len(kinds))
	for _, k := range kinds {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k.Message())
	}
	return out
}
