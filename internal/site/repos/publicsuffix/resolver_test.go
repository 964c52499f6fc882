package publicsuffix

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	xpublicsuffix "golang.org/x/net/publicsuffix"
)

func newTestResolver() *Resolver {
	return NewResolver(NewStore(DefaultPatterns()))
}

func TestResolver_GetTld(t *testing.T) {
	r := newTestResolver()
	cases := []struct {
		host        string
		wantICANN   string
		wantPrivate string
	}{
		{"www.google.com", "com", "com"},
		{"www.google.co.uk", "co.uk", "co.uk"},
		{"com", "com", "com"},
		{"co.uk", "co.uk", "co.uk"},
		{"uk", "uk", "uk"},
		{"example.gov.uk", "gov.uk", "gov.uk"},
		{"www.example.co.jp", "co.jp", "co.jp"},
		{"www.example.de", "de", "de"},
		{"example.tk", "tk", "tk"},
		{"bit.ly", "ly", "ly"},
		{"xn--v8j0cwa6g.com", "com", "com"},

		// private rules only count when icannOnly is false
		{"foo.blogspot.com", "com", "blogspot.com"},
		{"blogspot.com", "com", "blogspot.com"},
		{"foo.blogspot.co.uk", "co.uk", "blogspot.co.uk"},
		{"foo.bar.github.io", "io", "github.io"},
		{"bucket.s3.amazonaws.com", "com", "s3.amazonaws.com"},
		{"my-site.pages.dev", "dev", "pages.dev"},

		// wildcard rules
		{"foo.ck", "foo.ck", "foo.ck"},
		{"foo.kawasaki.jp", "foo.kawasaki.jp", "foo.kawasaki.jp"},
		{"kawasaki.jp", "kawasaki.jp", "kawasaki.jp"},
		{"example.com.bd", "com.bd", "com.bd"},
		{"www.example.com.bd", "com.bd", "com.bd"},
		{"bd", "bd", "bd"},
		{"a.b.er", "b.er", "b.er"},
		{"ec2-1-2-3-4.us-east-1.compute.amazonaws.com", "com", "us-east-1.compute.amazonaws.com"},
		{"compute.amazonaws.com", "com", "compute.amazonaws.com"},

		// exception rules beat wildcards
		{"www.ck", "ck", "ck"},
		{"a.www.ck", "ck", "ck"},
		{"city.kawasaki.jp", "kawasaki.jp", "kawasaki.jp"},
		{"www.city.kawasaki.jp", "kawasaki.jp", "kawasaki.jp"},
		{"city.kitakyushu.jp", "kitakyushu.jp", "kitakyushu.jp"},
		{"x.kitakyushu.jp", "x.kitakyushu.jp", "x.kitakyushu.jp"},

		// no rule matches: the implicit "*" rule yields the last label
		{"localhost", "localhost", "localhost"},
		{"intranet.corp", "corp", "corp"},
		{"a.b.c.d.test", "test", "test"},
		{"", "", ""},

		// partial-label matches are rejected
		{"notcom", "notcom", "notcom"},
		{"examplecom", "examplecom", "examplecom"},

		// input is expected to be lowercase already
		{"EXAMPLE.COM", "COM", "COM"},
	}
	for _, tc := range cases {
		t.Run(tc.host, func(t *testing.T) {
			assert.Equal(t, tc.wantICANN, r.GetTld(tc.host, true), "icannOnly=true")
			assert.Equal(t, tc.wantPrivate, r.GetTld(tc.host, false), "icannOnly=false")
		})
	}
}

func TestResolver_GetTld_IsLabelAlignedSuffix(t *testing.T) {
	r := newTestResolver()
	hosts := []string{
		"www.google.com", "a.b.c.d.e.example.co.uk", "foo.blogspot.com", "x.y.z.kawasaki.jp",
		"www.city.kawasaki.jp", "node.us-east-1.compute.amazonaws.com", "localhost", "a.b.er",
		"many.many.many.subdomains.com", "xn--80ak6aa92e.xn--p1ai", "1.2.3.4", "",
	}
	for _, h := range hosts {
		for _, icannOnly := range []bool{true, false} {
			got := r.GetTld(h, icannOnly)
			assert.True(t, strings.HasSuffix(h, got), "GetTld(%q) = %q is not a suffix", h, got)
			assert.LessOrEqual(t, len(got), len(h))
			if got != "" && got != h {
				assert.True(t, strings.HasSuffix(h, "."+got), "GetTld(%q) = %q is not label aligned", h, got)
			}
		}
	}
}

func TestResolver_AgreesWithUpstreamList(t *testing.T) {
	r := newTestResolver()
	hosts := []string{
		// country code TLDs, flat and second level
		"example.nl", "shop.example.es", "www.example.it", "example.ch", "a.example.com.mx",
		"www.example.de", "www.example.fr", "news.bbc.co.uk", "shop.example.com.au",
		"www.example.co.jp", "www.example.com.br", "example.co.in", "www.example.ru",
		"www.example.pl", "example.se", "example.co.za", "www.example.ca",
		"foo.bar.example.com.tr", "www.example.gov.uk", "example.ac.jp", "www.example.com.cn",
		"www.example.co.kr", "example.at", "example.be", "example.dk", "example.no",
		"example.fi", "example.ie", "example.pt", "example.gr", "example.cz", "example.hu",
		"example.ro", "example.co.nz", "example.com.sg", "example.com.ar", "example.cl",
		"xn--80ak6aa92e.xn--p1ai",

		// generic TLDs
		"www.google.com", "example.co", "example.io", "example.app", "example.dev",
		"example.xyz", "example.online", "example.store",

		// private, wildcard and exception rules
		"foo.blogspot.com", "foo.bar.github.io", "foo.kawasaki.jp", "www.city.kawasaki.jp",
		"foo.ck", "www.ck",

		// no rule at all
		"localhost", "intranet.corp",
	}
	for _, h := range hosts {
		want, _ := xpublicsuffix.PublicSuffix(h)
		got := r.GetTld(h, false)
		assert.NotEmpty(t, got, "host %q", h)
		assert.Equal(t, want, got, "host %q", h)
	}
}

func TestResolver_GetTld_NeverEmpty(t *testing.T) {
	r := newTestResolver()
	for _, h := range []string{"example.nl", "b.c.example.nl", "x", "a.b.c.unknown-tld", "xn--v8j0cwa6g.xn--unknown"} {
		for _, icannOnly := range []bool{true, false} {
			assert.NotEmpty(t, r.GetTld(h, icannOnly), "host=%q icannOnly=%v", h, icannOnly)
		}
	}
	assert.Equal(t, []string{"b", "c", "example"}, NonSuffixLabels("b.c.example.nl", r.GetTld("b.c.example.nl", false)))
	assert.Equal(t, "google.nl", r.RegistrableDomain("www.google.nl", false))
}

func TestResolver_RegistrableDomain(t *testing.T) {
	r := newTestResolver()
	cases := []struct {
		host      string
		icannOnly bool
		want      string
	}{
		{"www.google.com", false, "google.com"},
		{"www.google.co.uk", false, "google.co.uk"},
		{"foo.blogspot.com", false, "foo.blogspot.com"},
		{"foo.blogspot.com", true, "blogspot.com"},
		{"com", false, ""},
		{"co.uk", false, ""},
		{"localhost", false, ""},
		{"www.example.nl", false, "example.nl"},
		{"a.example.com.mx", true, "example.com.mx"},
		{"", false, ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, r.RegistrableDomain(tc.host, tc.icannOnly), "host=%q icannOnly=%v", tc.host, tc.icannOnly)
	}
}

func TestNonSuffixLabels(t *testing.T) {
	cases := []struct {
		host   string
		suffix string
		want   []string
	}{
		{"many.many.many.subdomains.com", "com", []string{"many", "many", "many", "subdomains"}},
		{"example.co.uk", "co.uk", []string{"example"}},
		{"co.uk", "co.uk", nil},
		{"localhost", "", []string{"localhost"}},
		{"", "", nil},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NonSuffixLabels(tc.host, tc.suffix), "host=%q suffix=%q", tc.host, tc.suffix)
	}
}
