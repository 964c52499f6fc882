package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlertKind_StringAndMessage(t *testing.T) {
	cases := []struct {
		kind AlertKind
		name string
	}{
		{AlertNotTopSite, "notTopSite"},
		{AlertIDN, "isIDN"},
		{AlertNotVisitedBefore, "notVisitedBefore"},
		{AlertManySubdomains, "manySubdomains"},
		{AlertLongSubdomains, "longSubdomains"},
		{AlertMultipleURLShorteners, "multipleUrlShortenerRedirects"},
		{AlertSuspiciousTLD, "redirectsThroughSuspiciousTld"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.name, tc.kind.String())
		assert.NotEmpty(t, tc.kind.Message(), "message for %s", tc.name)
	}
	assert.Equal(t, "AlertKind(99)", AlertKind(99).String())
	assert.Empty(t, AlertKind(99).Message())
}

func TestParseAlertKind(t *testing.T) {
	cases := []struct {
		in      string
		want    AlertKind
		wantErr bool
	}{
		{"isIDN", AlertIDN, false},
		{" ISIDN ", AlertIDN, false},
		{"notTopSite", AlertNotTopSite, false},
		{"redirectsThroughSuspiciousTld", AlertSuspiciousTLD, false},
		{"", 0, true},
		{"phishy", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseAlertKind(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseAlertKind(%q) expected error, got nil", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseAlertKind(%q) unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseAlertKind(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSignals_Alerts_Precedence(t *testing.T) {
	s := Signals{
		Host:                 "login.xn--secure-bank.example.tk",
		TopSite:              false,
		IDN:                  true,
		VisitedBefore:        false,
		ManySubdomains:       true,
		LongSubdomains:       true,
		MultipleURLShortener: true,
		SuspiciousTLD:        true,
	}
	assert.Equal(t, []AlertKind{
		AlertNotTopSite,
		AlertIDN,
		AlertNotVisitedBefore,
		AlertManySubdomains,
		AlertLongSubdomains,
		AlertMultipleURLShorteners,
		AlertSuspiciousTLD,
	}, s.Alerts())
}

func TestSignals_Alerts_TopSiteSuppressesIDN(t *testing.T) {
	s := Signals{Host: "xn--80ak6aa92e.com", TopSite: true, IDN: true, VisitedBefore: true}
	assert.Empty(t, s.Alerts())
}

func TestSignals_Alerts_QuietPage(t *testing.T) {
	s := Signals{Host: "www.google.com", TopSite: true, VisitedBefore: true}
	assert.Empty(t, s.Alerts())
}

func TestSignals_Alerts_NoHost(t *testing.T) {
	assert.Nil(t, Signals{}.Alerts())
}

func TestMessages_DeduplicatesInOrder(t *testing.T) {
	got := Messages([]AlertKind{AlertNotVisitedBefore, AlertNotTopSite, AlertNotVisitedBefore})
	assert.Equal(t, []string{AlertNotVisitedBefore.Message(), AlertNotTopSite.Message()}, got)
	assert.Empty(t, Messages(nil))
}
