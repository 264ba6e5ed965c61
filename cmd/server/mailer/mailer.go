// Package mailer sends transactional notification emails through Resend.
// All sends are best-effort: callers log failures and never fail the
// triggering request over them.
package mailer

import (
	"fmt"
	"html"

	"github.com/resend/resend-go/v2"
	"northlinktelecom.com/cmd/server/models"
)

// Mailer sends application notifications to the careers mailbox
type Mailer struct {
	client  *resend.Client
	from    string
	mailbox string
}

// New creates a Mailer. Returns nil when the API key or mailbox is not
// configured; a nil Mailer ignores all sends.
func New(apiKey, from, mailbox string) *Mailer {
	if apiKey == "" || mailbox == "" {
		return nil
	}
	return &Mailer{
		client:  resend.NewClient(apiKey),
		from:    from,
		mailbox: mailbox,
	}
}

// NotifyApplication emails the careers mailbox about a new application
func (m *Mailer) NotifyApplication(app *models.Application, job *models.Job) error {
	if m == nil {
		return nil
	}

	jobTitle := "unknown position"
	if job != nil {
		jobTitle = job.Title
	}

	body := fmt.Sprintf(
		"<p><strong>%s</strong> applied for <strong>%s</strong>.</p>"+
			"<p>Email: %s</p>"+
			"<p>Resume: <a href=\"%s\">%s</a></p>",
		html.EscapeString(app.Name),
		html.EscapeString(jobTitle),
		html.EscapeString(app.Email),
		app.Resume,
		app.Resume,
	)

	_, err := m.client.Emails.Send(&resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.mailbox},
		Subject: fmt.Sprintf("New application: %s - %s", jobTitle, app.Name),
		Html:    body,
	})
	if err != nil {
		return fmt.Errorf("failed to send application notification: %w", err)
	}

	return nil
}
