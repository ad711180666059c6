package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"gamediary/config"
)

type EmailService struct {
    host     string
    port     string
    username string
    password string
}

func NewEmailService() *EmailService {
    return &EmailService{
        host:     config.MailHost,
        port:     config.MailPort,
        username: config.MailUsername,
        password: config.MailPassword,
    }
}

// SendRequestNotification notifies the support address that a player
// filed a new request. Delivery is best effort: callers log failures
// and carry on, nothing depends on the email arriving.
func (s *EmailService) SendRequestNotification(username, text string) error {
    if s.host == "" || config.SupportEmail == "" {
        return fmt.Errorf("mail configuration missing")
    }
    auth := smtp.PlainAuth("", s.username, s.password, s.host)

    template := strings.TrimSpace(`
To: %s
MIME-version: 1.0
Content-Type: text/html; charset="UTF-8"
Subject: New support request from %s

<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
    <h2>New support request</h2>
    <p><strong>%s</strong> wrote:</p>
    <blockquote>%s</blockquote>
    <p>Review it in the request list.</p>
</body>
</html>
`)

    msg := []byte(fmt.Sprintf(template, config.SupportEmail, username, username, text))
    return smtp.SendMail(s.host+":"+s.port, auth, s.username, []string{config.SupportEmail}, msg)
}
