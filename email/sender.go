// Package email dispatches rendered notifications over SMTP.
package email

import (
	"fmt"
	"log"
	"net/smtp"

	"taskflow/model"
	"taskflow/notify"
)

// NewSender returns an SMTP-backed dispatcher, or a logging no-op when the
// SMTP configuration is incomplete so the rest of the system keeps working
// without transport credentials.
func NewSender(cfg model.EmailConfig) notify.Dispatcher {
	if !cfg.Complete() {
		log.Println("email: SMTP configuration incomplete, notifications will be logged only")
		return noopSender{}
	}
	return &Sender{cfg: cfg}
}

type Sender struct {
	cfg model.EmailConfig
}

// Send delivers one message. The configured SMTP username is always the
// envelope sender; msg.From only shapes the From header.
func (s *Sender) Send(msg model.EmailMessage) error {
	addr := s.cfg.Host + ":" + s.cfg.Port
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	from := msg.From
	if from == "" {
		from = s.cfg.Username
	}

	contentType := "text/plain"
	if msg.IsHTML {
		contentType = "text/html"
	}
	message := "From: " + from + "\r\n" +
		"To: " + msg.To + "\r\n" +
		"Subject: " + msg.Subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: " + contentType + "; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		msg.Body

	if err := smtp.SendMail(addr, auth, s.cfg.Username, []string{msg.To}, []byte(message)); err != nil {
		return fmt.Errorf("smtp send to %s: %w", msg.To, err)
	}
	return nil
}

type noopSender struct{}

func (noopSender) Send(msg model.EmailMessage) error {
	log.Printf("email: would send %q to %s", msg.Subject, msg.To)
	return nil
}
