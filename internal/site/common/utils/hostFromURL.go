package utils

import (
	"errors"
	"fmt"
	"net/url"

	"golang.org/x/net/idna"
)

// ErrNoHost is returned when a URL carries no host component.
var ErrNoHost = errors.New("url has no host")

// HostFromURL extracts the canonical host of rawURL in its ASCII-compatible
// encoding. Unicode labels are converted to their xn-- form so later label
// checks never split inside a multi-byte character. When IDNA conversion
// fails the lowercased host is returned unchanged.
func HostFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	host := CanonicalHostName(u.Hostname())
	if host == "" {
		return "", ErrNoHost
	}
	return ToASCII(host), nil
}

// ToASCII converts a host to its ASCII-compatible encoding, falling back to the input.
func ToASCII(host string) string {
	if converted, err := idna.Lookup.ToASCII(host); err == nil && converted != "" {
		return converted
	}
	return host
}
