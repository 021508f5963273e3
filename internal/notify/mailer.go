// Package notify delivers outbound mail. The only message this service
// sends is the registration one-time code.
package notify

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/iliyamo/business-insights/internal/config"
)

// Mailer sends plain-text mail over SMTP with STARTTLS. When no SMTP
// host is configured (local development), SendOTP logs the code instead
// of failing, so the registration flow stays usable without a mail
// server.
type Mailer struct {
	host string
	port string
	user string
	pass string
}

func NewMailer(cfg config.Config) *Mailer {
	return &Mailer{host: cfg.SMTPHost, port: cfg.SMTPPort, user: cfg.SMTPUser, pass: cfg.SMTPPass}
}

// SendOTP delivers the one-time code to the given address.
func (m *Mailer) SendOTP(to, code string) error {
	if m.host == "" {
		log.Printf("mailer: SMTP not configured; OTP for %s is %s", to, code)
		return nil
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Your OTP Code\r\n\r\nYour OTP code is: %s\r\n",
		m.user, to, code)

	addr := m.host + ":" + m.port
	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	if err := smtp.SendMail(addr, auth, m.user, []string{to}, []byte(msg)); err != nil {
		return err
	}
	log.Printf("mailer: OTP sent to %s", to)
	return nil
}
