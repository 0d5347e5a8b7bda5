package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendEscalationNotice(toEmail, referenceCode, escalationType, queryText string) error
	SendResolutionNotice(toEmail, referenceCode, resolutionNote string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendEscalationNotice(toEmail, referenceCode, escalationType, queryText string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("New HR escalation [%s]", referenceCode))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New escalation requires attention</h2>
			<p><strong>Reference ID:</strong> %s</p>
			<p><strong>Type:</strong> %s</p>
			<p><strong>Employee query:</strong></p>
			<blockquote style="border-left: 3px solid #ccc; padding-left: 10px;">%s</blockquote>
			<p>Please follow up within 1-2 business days.</p>
		</div>
	`, referenceCode, escalationType, queryText)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send escalation notice to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Escalation notice sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendResolutionNotice(toEmail, referenceCode, resolutionNote string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Your HR request %s has been resolved", referenceCode))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Your request has been resolved</h2>
			<p><strong>Reference ID:</strong> %s</p>
			<p>%s</p>
			<p>If you have further questions, reply to this email or submit a new query.</p>
		</div>
	`, referenceCode, resolutionNote)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send resolution notice to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Resolution notice sent to %s\n", toEmail)
	return nil
}
