package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPProvider delivers mail through a plain SMTP relay.
type SMTPProvider struct {
	host string
	port string
	user string
	pass string
	from string
}

func NewSMTPProvider(host, port, user, pass, from string) *SMTPProvider {
	return &SMTPProvider{host: host, port: port, user: user, pass: pass, from: from}
}

func (p *SMTPProvider) Send(ctx context.Context, msg Message) error {
	if p.host == "" {
		return fmt.Errorf("smtp host not configured")
	}

	contentType := "text/plain; charset=\"UTF-8\""
	if msg.HTML {
		contentType = "text/html; charset=\"UTF-8\""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", p.from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(msg.To, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	fmt.Fprintf(&b, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: %s\r\n", contentType)
	fmt.Fprintf(&b, "\r\n%s\r\n", msg.Body)

	var auth smtp.Auth
	if p.user != "" {
		auth = smtp.PlainAuth("", p.user, p.pass, p.host)
	}

	addr := p.host + ":" + p.port
	return smtp.SendMail(addr, auth, p.from, msg.To, []byte(b.String()))
}
