package email

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	SenderPhone string
	Message     string
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML replaces & < > " ' with entities in a single pass.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// contactEmailTemplate is rendered with text/template; every user value goes
// through esc, so nothing reaches the markup unescaped.
const contactEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #1a3c34;">New Contact Form Submission</h2>
        <p><strong>Name:</strong> {{esc .SenderName}}</p>
        <p><strong>Email:</strong> <a href="mailto:{{esc .SenderEmail}}">{{esc .SenderEmail}}</a></p>
{{- if .SenderPhone}}
        <p><strong>Phone:</strong> <a href="tel:{{esc .SenderPhone}}">{{esc .SenderPhone}}</a></p>
{{- end}}
        <p><strong>Message:</strong></p>
        <div style="white-space: pre-wrap; background: #f9f9f9; padding: 15px; border-left: 4px solid #1a3c34;">{{esc .Message}}</div>
        <p style="color: #888; font-size: 12px;">Sent from the website contact form. Reply to this email to answer {{esc .SenderName}}.</p>
    </div>
</body>
</html>`

var contactTmpl = template.Must(template.New("contact").
	Funcs(template.FuncMap{"esc": EscapeHTML}).
	Parse(contactEmailTemplate))

// RenderContactNotification renders the staff notification for one submission.
func RenderContactNotification(data ContactEmailData) (string, error) {
	var body bytes.Buffer
	if err := contactTmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}
