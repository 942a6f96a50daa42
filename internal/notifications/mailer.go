package notifications

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	htmltemplate "html/template"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	texttemplate "text/template"
	"time"

	"festtix/internal/shared/config"
	"festtix/pkg/logger"
)

// EmailMessage is a rendered multipart email.
type EmailMessage struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

type Mailer interface {
	Send(ctx context.Context, msg *EmailMessage) error
}

// SMTPMailer delivers mail over SMTP, upgrading with STARTTLS when configured.
type SMTPMailer struct {
	config config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) (*SMTPMailer, error) {
	if err := validateSMTPConfig(cfg); err != nil {
		return nil, err
	}
	return &SMTPMailer{config: cfg}, nil
}

func validateSMTPConfig(cfg config.SMTPConfig) error {
	if cfg.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("SMTP port must be between 1 and 65535")
	}
	if cfg.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg *EmailMessage) error {
	addr := net.JoinHostPort(m.config.Host, strconv.Itoa(m.config.Port))

	var auth smtp.Auth
	if m.config.Username != "" {
		auth = smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	}

	dialer := net.Dialer{Timeout: m.config.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	} else if m.config.Timeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(m.config.Timeout))
	}

	client, err := smtp.NewClient(conn, m.config.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open SMTP session: %w", err)
	}
	defer client.Quit()

	if m.config.UseTLS {
		if err = client.StartTLS(&tls.Config{ServerName: m.config.Host}); err != nil {
			return fmt.Errorf("failed to start TLS: %w", err)
		}
	}
	if auth != nil {
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("failed to authenticate: %w", err)
		}
	}
	if err = client.Mail(m.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err = w.Write(buildMessage(m.config.FromName, m.config.FromEmail, msg, time.Now())); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return w.Close()
}

// buildMessage renders headers and a multipart/alternative body.
func buildMessage(fromName, fromEmail string, msg *EmailMessage, now time.Time) []byte {
	boundary := "festtix_" + strconv.FormatInt(now.UnixNano(), 10)

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", fromName, fromEmail)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	fmt.Fprintf(&b, "Date: %s\r\n", now.Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", boundary)

	if msg.Text != "" {
		fmt.Fprintf(&b, "--%s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n", boundary, msg.Text)
	}
	if msg.HTML != "" {
		fmt.Fprintf(&b, "--%s\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s\r\n", boundary, msg.HTML)
	}
	fmt.Fprintf(&b, "--%s--\r\n", boundary)

	return []byte(b.String())
}

// LogMailer only logs. Used when SMTP is not configured.
type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, msg *EmailMessage) error {
	logger.GetDefault().InfoWithContext(ctx, "Email not sent, SMTP disabled", map[string]interface{}{
		"to":      msg.To,
		"subject": msg.Subject,
	})
	return nil
}

const ticketEmailHTML = `<h2>Your tickets for {{.Festival}}</h2>
<p>Hi {{.Name}},</p>
{{if .Resend}}<p>As requested, here are your tickets again.</p>{{else}}<p>Thanks for your order {{.Reference}}. Your payment was received.</p>{{end}}
<table>
<tr><th>Ticket</th><th>Days</th><th>Code</th></tr>
{{range .Tickets}}<tr><td>{{.ProductLabel}}</td><td>{{join .Days ", "}}</td><td><code>{{.Code}}</code></td></tr>
{{end}}</table>
<p>Show the code at the entrance. Each code admits one person on each listed day.</p>
<p>See you there,<br>{{.Festival}}</p>`

const ticketEmailText = `Hi {{.Name}},
{{if .Resend}}
As requested, here are your tickets again.
{{else}}
Thanks for your order {{.Reference}}. Your payment was received.
{{end}}
{{range .Tickets}}- {{.ProductLabel}} ({{join .Days ", "}}): {{.Code}}
{{end}}
Show the code at the entrance. Each code admits one person on each listed day.

See you there,
{{.Festival}}
`

// TicketEmailRenderer turns a TicketEmailRequest into an EmailMessage.
type TicketEmailRenderer struct {
	festival string
	html     *htmltemplate.Template
	text     *texttemplate.Template
}

func NewTicketEmailRenderer(festival string) *TicketEmailRenderer {
	funcs := map[string]interface{}{"join": strings.Join}
	return &TicketEmailRenderer{
		festival: festival,
		html:     htmltemplate.Must(htmltemplate.New("ticket_html").Funcs(funcs).Parse(ticketEmailHTML)),
		text:     texttemplate.Must(texttemplate.New("ticket_text").Funcs(funcs).Parse(ticketEmailText)),
	}
}

func (r *TicketEmailRenderer) Render(req *TicketEmailRequest) (*EmailMessage, error) {
	name := req.FullName
	if name == "" {
		name = "there"
	}
	data := map[string]interface{}{
		"Festival":  r.festival,
		"Name":      name,
		"Reference": req.Reference,
		"Resend":    req.Reason == ReasonResend,
		"Tickets":   req.Tickets,
	}

	var htmlBuf, textBuf bytes.Buffer
	if err := r.html.Execute(&htmlBuf, data); err != nil {
		return nil, fmt.Errorf("failed to render HTML email: %w", err)
	}
	if err := r.text.Execute(&textBuf, data); err != nil {
		return nil, fmt.Errorf("failed to render text email: %w", err)
	}

	subject := fmt.Sprintf("Your %s tickets (%s)", r.festival, req.Reference)
	if req.Reason == ReasonResend {
		subject = fmt.Sprintf("Your %s tickets, resent (%s)", r.festival, req.Reference)
	}

	return &EmailMessage{
		To:      req.Email,
		Subject: subject,
		HTML:    htmlBuf.String(),
		Text:    textBuf.String(),
	}, nil
}
