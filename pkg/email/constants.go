package email

import "embed"

//go:embed templates/*
var emailTemplates embed.FS

const (
	ReportReadyTemplate = "report_ready"
)

var subjects = map[string]string{
	ReportReadyTemplate: "Report ready: {{.ReportName}}",
}
