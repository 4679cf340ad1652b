package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail_ReportReady(t *testing.T) {
	e, err := NewEmail(EmailMeta{Recipient: "ops@example.com", TemplateType: ReportReadyTemplate}, ReportReady{
		ReportName:   "Weekly <Paid> & Organic",
		PeriodStart:  "2024-05-05",
		PeriodEnd:    "2024-05-11",
		GeneratedAt:  "2024-05-13 09:00",
		Formats:      []string{"csv", "json"},
		RunID:        "run1",
		DownloadPath: "/api/v1/reports/runs/run1/download",
	})
	require.NoError(t, err)

	assert.Equal(t, "ops@example.com", e.Recipient)
	assert.Equal(t, "Report ready: Weekly <Paid> & Organic", e.Subject)
	assert.Contains(t, e.Body, "Weekly &lt;Paid&gt; &amp; Organic")
	assert.Contains(t, e.Body, "csv, json")
	assert.Contains(t, e.Body, "/api/v1/reports/runs/run1/download")
	assert.NotContains(t, e.Body, "<p></p>")
}

func TestNewEmail_UnknownTemplate(t *testing.T) {
	_, err := NewEmail(EmailMeta{Recipient: "ops@example.com", TemplateType: "password_reset"}, nil)
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestNewEmail_MissingRecipient(t *testing.T) {
	_, err := NewEmail(EmailMeta{Recipient: " ", TemplateType: ReportReadyTemplate}, ReportReady{ReportName: "Weekly"})
	assert.ErrorIs(t, err, ErrMissingRecipient)
}
