package email

import "errors"

var (
	ErrUnknownTemplate  = errors.New("email: unknown template")
	ErrMissingRecipient = errors.New("email: missing recipient")
)

type EmailMeta struct {
	Recipient    string
	CC           []string
	TemplateType string
}

type Email struct {
	Recipient string
	Subject   string
	Body      string
	CC        []string
}

// These types are used to apply data to email templates
type ReportReady struct {
	ReportName   string
	Description  string
	PeriodStart  string
	PeriodEnd    string
	GeneratedAt  string
	Formats      []string
	RunID        string
	DownloadPath string
}
