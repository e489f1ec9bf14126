// Package mail provides a fluent SMTP mailer.
//
// The Mailer is an explicitly constructed collaborator: build one at startup
// from configuration and pass it to whatever needs to send mail. There is no
// package-global transport.
//
//	mailer := mail.New(mail.SMTP{...})
//	err := mailer.Compose().
//	    To("user@example.com").
//	    Subject("Order Confirmation").
//	    Body("<h1>Thanks!</h1>").
//	    Send()
package mail

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTP holds connection credentials.
type SMTP struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	FromName string
}

// Mailer sends messages through one SMTP endpoint.
type Mailer struct {
	cfg SMTP
}

// New builds a Mailer from the given SMTP settings.
func New(cfg SMTP) *Mailer {
	return &Mailer{cfg: cfg}
}

// Configured reports whether the mailer has credentials to send with.
func (m *Mailer) Configured() bool {
	return m.cfg.Host != "" && m.cfg.Username != "" && m.cfg.Password != ""
}

// Message is a fluent builder for one email.
type Message struct {
	mailer  *Mailer
	to      []string
	subject string
	body    string
	isHTML  bool
}

// Compose starts a new message on this mailer.
func (m *Mailer) Compose() *Message {
	return &Message{mailer: m, isHTML: true}
}

// To sets the primary recipients.
func (msg *Message) To(addresses ...string) *Message {
	msg.to = append(msg.to, addresses...)
	return msg
}

// Subject sets the email subject.
func (msg *Message) Subject(s string) *Message {
	msg.subject = s
	return msg
}

// Body sets an HTML body.
func (msg *Message) Body(html string) *Message {
	msg.body = html
	msg.isHTML = true
	return msg
}

// Text sets a plain-text body.
func (msg *Message) Text(text string) *Message {
	msg.body = text
	msg.isHTML = false
	return msg
}

// Send delivers the email via SMTP.
func (msg *Message) Send() error {
	cfg := msg.mailer.cfg
	if !msg.mailer.Configured() {
		return fmt.Errorf("mail: SMTP credentials not configured")
	}
	if len(msg.to) == 0 {
		return fmt.Errorf("mail: no recipients")
	}

	from := fmt.Sprintf("%s <%s>", cfg.FromName, cfg.From)
	raw := msg.buildRaw(from)

	addr := cfg.Host + ":" + cfg.Port
	auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)

	// Implicit TLS for port 465, STARTTLS for 587/25.
	if cfg.Port == "465" {
		return sendTLS(addr, auth, cfg.From, msg.to, raw, cfg.Host)
	}
	return smtp.SendMail(addr, auth, cfg.From, msg.to, raw)
}

func sendTLS(addr string, auth smtp.Auth, from string, to []string, raw []byte, host string) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: host})
	if err != nil {
		return fmt.Errorf("mail: TLS dial: %w", err)
	}
	client, err := smtp.NewClient(conn, host)
	if err != nil {
		return err
	}
	defer client.Quit()

	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	defer w.Close()
	_, err = w.Write(raw)
	return err
}

func (msg *Message) buildRaw(from string) []byte {
	contentType := "text/plain"
	if msg.isHTML {
		contentType = "text/html"
	}

	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + strings.Join(msg.to, ", ") + "\r\n")
	b.WriteString("Subject: " + msg.subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString(fmt.Sprintf("Content-Type: %s; charset=\"UTF-8\"\r\n", contentType))
	b.WriteString("\r\n")
	b.WriteString(msg.body)
	return []byte(b.String())
}
