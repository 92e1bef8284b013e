// Package mailer sends the plain-text booking confirmation mail.
// Delivery goes straight over SMTP; a send failure is returned to the
// caller unwrapped so the finalizer can surface it instead of
// swallowing it.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"
)

// Confirmation carries everything the confirmation message mentions.
type Confirmation struct {
	MovieName   string
	TheaterName string
	ShowTime    time.Time
	SeatNumbers []string
}

// Mailer is the interface handlers depend on. SMTPMailer is the
// production implementation; tests substitute a fake.
type Mailer interface {
	SendConfirmation(to string, conf Confirmation) error
}

// SMTPMailer delivers mail through a single SMTP endpoint using
// PLAIN auth. Host and port come from configuration.
type SMTPMailer struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

// NewSMTPMailer builds a mailer for the given endpoint.
func NewSMTPMailer(host, port, user, pass, from string) *SMTPMailer {
	return &SMTPMailer{Host: host, Port: port, User: user, Pass: pass, From: from}
}

// ConfirmationBody renders the message text. Kept as a separate
// function so the content can be tested without an SMTP server.
func ConfirmationBody(conf Confirmation) string {
	return fmt.Sprintf(`Booking Confirmed
Movie: %s
Theatre: %s
Show Time: %s
Seats: %s

Enjoy Your Movie
`, conf.MovieName, conf.TheaterName, conf.ShowTime.Format("Mon, 02 Jan 2006 15:04"), strings.Join(conf.SeatNumbers, ","))
}

// SendConfirmation sends one confirmation message to the recipient.
func (m *SMTPMailer) SendConfirmation(to string, conf Confirmation) error {
	body := ConfirmationBody(conf)
	msg := strings.Join([]string{
		"From: " + m.From,
		"To: " + to,
		"Subject: Movie Ticket Confirmation",
		"",
		body,
	}, "\r\n")
	var auth smtp.Auth
	if m.User != "" {
		auth = smtp.PlainAuth("", m.User, m.Pass, m.Host)
	}
	addr := m.Host + ":" + m.Port
	if err := smtp.SendMail(addr, auth, m.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send confirmation mail: %w", err)
	}
	return nil
}
