package email

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"
	textTemplate "text/template"
)

var (
	templatesOnce sync.Once
	templates     map[string]*template.Template
	templatesErr  error
)

// Return parsed template for email
func getEmailTemplate(templateType string) (*template.Template, error) {
	templatesOnce.Do(func() {
		templates = make(map[string]*template.Template, len(subjects))
		for name := range subjects {
			path := fmt.Sprintf("templates/%s.tmpl", name)
			t, err := template.New(name + ".tmpl").ParseFS(emailTemplates, path)
			if err != nil {
				templatesErr = err
				return
			}
			templates[name] = t
		}
	})
	if templatesErr != nil {
		return nil, templatesErr
	}
	t, ok := templates[templateType]
	if !ok {
		return nil, ErrUnknownTemplate
	}
	return t, nil
}

// Return email subject
func getEmailSubject(templateType string, data any) (string, error) {
	src, ok := subjects[templateType]
	if !ok {
		return "", ErrUnknownTemplate
	}
	t, err := textTemplate.New(templateType).Parse(src)
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	if err := t.Execute(&out, data); err != nil {
		return "", err
	}
	return out.String(), nil
}
