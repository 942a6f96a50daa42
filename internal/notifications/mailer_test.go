package notifications

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"festtix/internal/shared/config"

	"github.com/stretchr/testify/require"
)

func TestTicketEmailRenderer(t *testing.T) {
	r := NewTicketEmailRenderer("Festtix Open Air")

	msg, err := r.Render(sampleRequest(ReasonOrderPaid))
	require.NoError(t, err)
	require.Equal(t, "fan@example.org", msg.To)
	require.Equal(t, "Your Festtix Open Air tickets (FT-20260717-ABCDEF)", msg.Subject)
	require.Contains(t, msg.HTML, "<code>c-1</code>")
	require.Contains(t, msg.HTML, "FRI, SAT, SUN, MON")
	require.Contains(t, msg.Text, "- General Admission 1-Day Pass (SAT): c-2")
	require.Contains(t, msg.Text, "payment was received")

	msg, err = r.Render(sampleRequest(ReasonResend))
	require.NoError(t, err)
	require.Contains(t, msg.Subject, "resent")
	require.Contains(t, msg.Text, "here are your tickets again")
}

func TestTicketEmailRenderer_EscapesHTML(t *testing.T) {
	req := sampleRequest(ReasonOrderPaid)
	req.FullName = "<b>Mallory</b>"
	msg, err := NewTicketEmailRenderer("Fest").Render(req)
	require.NoError(t, err)
	require.NotContains(t, msg.HTML, "<b>Mallory</b>")
	require.Contains(t, msg.Text, "<b>Mallory</b>")
}

func TestBuildMessage(t *testing.T) {
	now := time.Date(2026, 7, 17, 10, 0, 0, 0, time.UTC)
	raw := string(buildMessage("Festtix", "tickets@example.org", &EmailMessage{
		To: "fan@example.org", Subject: "Hi", HTML: "<p>x</p>", Text: "x",
	}, now))

	require.True(t, strings.HasPrefix(raw, "From: Festtix <tickets@example.org>\r\n"))
	require.Contains(t, raw, "Content-Type: multipart/alternative; boundary=festtix_")
	require.Contains(t, raw, "Content-Type: text/plain; charset=UTF-8")
	require.Contains(t, raw, "Content-Type: text/html; charset=UTF-8")
	require.True(t, strings.HasSuffix(raw, "--\r\n"))
}

func TestNewSMTPMailer_Validation(t *testing.T) {
	_, err := NewSMTPMailer(config.SMTPConfig{})
	require.Error(t, err)

	_, err = NewSMTPMailer(config.SMTPConfig{Host: "smtp.example.org", Port: 70000, FromEmail: "a@b.c"})
	require.Error(t, err)

	m, err := NewSMTPMailer(config.SMTPConfig{Host: "smtp.example.org", Port: 587, FromEmail: "a@b.c"})
	require.NoError(t, err)
	require.NotNil(t, m)
}

type recordingMailer struct {
	failures int
	sent     []*EmailMessage
}

func (m *recordingMailer) Send(_ context.Context, msg *EmailMessage) error {
	if m.failures > 0 {
		m.failures--
		return errors.New("smtp busy")
	}
	m.sent = append(m.sent, msg)
	return nil
}
