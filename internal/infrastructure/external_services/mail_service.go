package external_services

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/cowryhub/cowry-backend/internal/domain/contract"
	usecasecontract "github.com/cowryhub/cowry-backend/internal/usecase/contract"
)

// EmailService sends transactional mail over SMTP.
type EmailService struct {
	Host        string
	Port        string
	Username    string
	AppPassword string
	From        string
}

func NewEmailService(host, port, username, appPassword, from string) *EmailService {
	return &EmailService{
		Host:        host,
		Port:        port,
		Username:    username,
		AppPassword: appPassword,
		From:        from,
	}
}

var _ contract.IMailSender = (*EmailService)(nil)

// Send delivers a single message.
func (es *EmailService) Send(ctx context.Context, to, subject, body string) error {
	msg := []byte(
		fmt.Sprintf(
			"To: %s\r\n"+
				"From: %s\r\n"+
				"Subject: %s\r\n"+
				"\r\n"+
				"%s\r\n",
			to, es.From, subject, body,
		),
	)
	auth := smtp.PlainAuth("", es.Username, es.AppPassword, es.Host)
	addr := fmt.Sprintf("%s:%s", es.Host, es.Port)
	if err := smtp.SendMail(addr, auth, es.From, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}
	return nil
}

// NoopMailer logs mail instead of delivering it. Used when SMTP is not
// configured.
type NoopMailer struct {
	logger usecasecontract.IAppLogger
}

func NewNoopMailer(logger usecasecontract.IAppLogger) *NoopMailer {
	return &NoopMailer{logger: logger}
}

var _ contract.IMailSender = (*NoopMailer)(nil)

// Send logs the message and returns nil.
func (n *NoopMailer) Send(_ context.Context, to, subject, body string) error {
	n.logger.Infof("email (noop, not sent): to=%s subject=%q body=%q", to, subject, body)
	return nil
}
