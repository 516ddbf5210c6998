package email

import (
	"context"
	"fmt"
	"net/smtp"

	"bookstore-backoffice/pkg/logger"
)

// OrderConfirmationData is everything the confirmation mail template needs.
type OrderConfirmationData struct {
	Email       string
	OrderNumber string
	Total       string
	ItemCount   int
}

type EmailService interface {
	SendOrderConfirmation(ctx context.Context, data OrderConfirmationData) error
}

type smtpEmailService struct {
	smtpAddr string
	smtpFrom string
}

// NewSMTPEmailService talks plain SMTP; in development that is usually a
// local Mailpit/MailHog instance.
func NewSMTPEmailService(host, port, from string) EmailService {
	return &smtpEmailService{
		smtpAddr: host + ":" + port,
		smtpFrom: from,
	}
}

func (s *smtpEmailService) SendOrderConfirmation(ctx context.Context, data OrderConfirmationData) error {
	subject := fmt.Sprintf("Order %s confirmed", data.OrderNumber)
	body := fmt.Sprintf(`Hello,

Thank you for your order %s.

Items: %d
Total: %s

We will contact you when the order ships.`, data.OrderNumber, data.ItemCount, data.Total)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, data.Email, subject, body))

	if err := smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, []string{data.Email}, msg); err != nil {
		logger.Info("Failed to send email", map[string]interface{}{
			"error":     err.Error(),
			"to":        data.Email,
			"smtp_addr": s.smtpAddr,
		})
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
