package email

import (
	"bytes"
	"fmt"
	"html/template"
)

const (
	subjectBookingConfirmation = "Your appointment is confirmed"
	subjectBookingCancelled    = "Your appointment has been cancelled"
)

type bookingConfirmationData struct {
	CustomerName string
	EventID      string
	SlotStart    string
	SlotEnd      string
}

type bookingCancelledData struct {
	EventID string
}

const bookingConfirmationTemplate = `<html><body>
<h2>Appointment confirmed</h2>
<p>Hi {{if .CustomerName}}{{.CustomerName}}{{else}}there{{end}},</p>
<p>Your appointment is confirmed.</p>
<p><strong>From:</strong> {{.SlotStart}}<br>
<strong>Until:</strong> {{.SlotEnd}}<br>
<strong>Reference:</strong> {{.EventID}}</p>
</body></html>`

const bookingCancelledTemplate = `<html><body>
<h2>Appointment cancelled</h2>
<p>Your appointment with reference {{.EventID}} has been cancelled. Any
refund will be processed separately.</p>
</body></html>`

func renderEmailTemplate(tmpl string, data any) (string, error) {
	t, err := template.New("email").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse email template: %w", err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render email template: %w", err)
	}
	return buf.String(), nil
}
