package email

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/re-tools/property-atlas/pkg/models/domain"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		Title:       "Investment Property Analysis",
		GeneratedAt: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
		Currency:    "USD",
		Sections: []domain.ReportSection{
			{
				Title:   "Financial Metrics",
				Summary: map[string]interface{}{"Cap Rate": "11.40%"},
				Details: []domain.ReportDetail{
					{Name: "Monthly Payment", Value: 858.91, Unit: "USD"},
				},
			},
		},
	}
}

func TestCompose(t *testing.T) {
	msg := Compose("broker@example.com", sampleReport())

	assert.Equal(t, "broker@example.com", msg.To)
	assert.Equal(t, "Investment Property Analysis", msg.Subject)
	assert.Contains(t, msg.Body, "Generated Aug 1, 2026")
	assert.Contains(t, msg.Body, "Financial Metrics")
	assert.Contains(t, msg.Body, "Cap Rate: 11.40%")
	assert.Contains(t, msg.Body, "Monthly Payment: 858.91 USD")
}

func TestCompose_SummaryOrderIsStable(t *testing.T) {
	report := sampleReport()
	report.Sections[0].Summary = map[string]interface{}{
		"DSCR":              "2.21",
		"Cap Rate":          "11.40%",
		"Monthly Cash Flow": "$1,041.09",
	}

	msg := Compose("broker@example.com", report)
	assert.Less(t,
		strings.Index(msg.Body, "Cap Rate"),
		strings.Index(msg.Body, "DSCR"))
	assert.Less(t,
		strings.Index(msg.Body, "DSCR"),
		strings.Index(msg.Body, "Monthly Cash Flow"))

	// identical input yields an identical body
	assert.Equal(t, msg.Body, Compose("broker@example.com", report).Body)
}

func TestMailtoURL(t *testing.T) {
	link := MailtoURL(Compose("broker@example.com", sampleReport()))

	assert.True(t, strings.HasPrefix(link, "mailto:broker%40example.com?"))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	query := parsed.Query()
	assert.Equal(t, "Investment Property Analysis", query.Get("subject"))
	assert.Contains(t, query.Get("body"), "Financial Metrics")
}

func TestGmailComposeURL(t *testing.T) {
	link := GmailComposeURL(Compose("broker@example.com", sampleReport()))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "mail.google.com", parsed.Host)

	query := parsed.Query()
	assert.Equal(t, "cm", query.Get("view"))
	assert.Equal(t, "broker@example.com", query.Get("to"))
	assert.Equal(t, "Investment Property Analysis", query.Get("su"))
}
