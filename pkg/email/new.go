package email

import (
	"bytes"
	"strings"
)

// NewEmail renders the template named by e.TemplateType with data.
func NewEmail(e EmailMeta, data any) (Email, error) {
	if strings.TrimSpace(e.Recipient) == "" {
		return Email{}, ErrMissingRecipient
	}
	tmpl, err := getEmailTemplate(e.TemplateType)
	if err != nil {
		return Email{}, err
	}
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return Email{}, err
	}

	subject, err := getEmailSubject(e.TemplateType, data)
	if err != nil {
		return Email{}, err
	}

	return Email{
		Recipient: e.Recipient,
		CC:        e.CC,
		Subject:   strings.TrimSpace(subject),
		Body:      body.String(),
	}, nil
}
