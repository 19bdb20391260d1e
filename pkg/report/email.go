package report

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/smtp"
	"strings"
	"text/template"
)

// emailTemplate renders the digest body, grouped by state in fixed order.
var emailTemplate = template.Must(template.New("email").Parse(
	`CI report for job {{.Job.Name}}
{{range .Groups}}
{{.State}} ({{len .Tasks}}):
{{- range .Tasks}}
  {{.Name}} [{{.Provider}}] artifacts {{.UploadedArtifacts}}/{{len .Artifacts}}
{{- end}}
{{end}}`))

// emailGroup is one state section of the digest.
type emailGroup struct {
	State State
	Tasks []Task
}

// EmailReporter renders a job digest and delivers it over SMTP.
type EmailReporter struct {
	// No fields needed for email rendering
}

// NewEmailReporter creates a new email reporter.
func NewEmailReporter() *EmailReporter {
	return &EmailReporter{}
}

// Render writes the digest, grouped by state in the order failure, error,
// pending, success. Empty groups are skipped.
func (r *EmailReporter) Render(w io.Writer, job Job) error {
	grouped := job.TasksByState()

	var groups []emailGroup
	for _, state := range StateOrder {
		if len(grouped[state]) == 0 {
			continue
		}
		groups = append(groups, emailGroup{State: state, Tasks: grouped[state]})
	}

	return emailTemplate.Execute(w, struct {
		Job    Job
		Groups []emailGroup
	}{Job: job, Groups: groups})
}

// SendParams contains parameters for delivering a digest.
type SendParams struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       []string
	Subject  string
	Job      Job
}

// Send delivers one digest message over SMTP with STARTTLS. The session is
// fire-and-forget: one message per invocation, no retries.
func (r *EmailReporter) Send(params SendParams) error {
	var body strings.Builder
	if err := r.Render(&body, params.Job); err != nil {
		return err
	}

	var message strings.Builder
	fmt.Fprintf(&message, "From: %s\r\n", params.From)
	fmt.Fprintf(&message, "To: %s\r\n", strings.Join(params.To, ", "))
	fmt.Fprintf(&message, "Subject: %s\r\n", params.Subject)
	fmt.Fprintf(&message, "\r\n%s", body.String())

	address := fmt.Sprintf("%s:%d", params.Host, params.Port)
	client, err := smtp.Dial(address)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer func() { _ = client.Close() }()

	if err := client.StartTLS(&tls.Config{ServerName: params.Host}); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	auth := smtp.PlainAuth("", params.Username, params.Password, params.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	if err := client.Mail(params.From); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	for _, recipient := range params.To {
		if err := client.Rcpt(recipient); err != nil {
			return fmt.Errorf("failed to set recipient %s: %w", recipient, err)
		}
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open message body: %w", err)
	}
	if _, err := writer.Write([]byte(message.String())); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish message: %w", err)
	}

	return client.Quit()
}
