package domain

import "fmt"

// URLType classifies an entry of a tab's referrer chain.
type URLType string

const (
	URLTypeEventURL         URLType = "EVENT_URL"
	URLTypeLandingPage      URLType = "LANDING_PAGE"
	URLTypeLandingReferrer  URLType = "LANDING_REFERRER"
	URLTypeClientRedirect   URLType = "CLIENT_REDIRECT"
	URLTypeRecentNavigation URLType = "RECENT_NAVIGATION"
	URLTypeReferrer         URLType = "REFERRER"
)

// Valid reports whether t is one of the known URL types.
func (t URLType) Valid() bool {
	switch t {
	case URLTypeEventURL, URLTypeLandingPage, URLTypeLandingReferrer,
		URLTypeClientRedirect, URLTypeRecentNavigation, URLTypeReferrer:
		return true
	}
	return false
}

// ServerRedirect is one hop of an HTTP redirect sub-chain.
type ServerRedirect struct {
	URL string `json:"url"`
}

// ReferrerEntry is one navigation in a tab's referrer chain, most recent first.
type ReferrerEntry struct {
	URLType             URLType          `json:"urlType"`
	ReferrerURL         string           `json:"referrerUrl,omitempty"`
	MainFrameURL        string           `json:"mainFrameUrl,omitempty"`
	ServerRedirectChain []ServerRedirect `json:"serverRedirectChain,omitempty"`
}

// IsClientRedirect reports whether the entry was reached by a script or meta redirect.
func (e ReferrerEntry) IsClientRedirect() bool {
	return e.URLType == URLTypeClientRedirect
}

// Validate checks that the entry carries a known URL type.
func (e ReferrerEntry) Validate() error {
	if !e.URLType.Valid() {
		return fmt.Errorf("unsupported url type: %q", e.URLType)
	}
	return nil
}
