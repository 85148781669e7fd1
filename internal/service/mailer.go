package service

import (
	"fmt"

	"taskboard/internal/domain"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer delivers a deadline reminder to a user address.
type Mailer interface {
	SendReminder(to string, task *domain.Task) error
}

// SendGridMailer sends reminders through the SendGrid API.
type SendGridMailer struct {
	client *sendgrid.Client
	from   string
}

func NewSendGridMailer(apiKey, from string) *SendGridMailer {
	return &SendGridMailer{
		client: sendgrid.NewSendClient(apiKey),
		from:   from,
	}
}

func (m *SendGridMailer) SendReminder(to string, task *domain.Task) error {
	from := mail.NewEmail("taskboard", m.from)
	rcpt := mail.NewEmail(to, to)
	subject := "Task deadline reached: " + task.Description
	body := fmt.Sprintf("Your task %q was due on %s.", task.Description, task.Deadline)
	message := mail.NewSingleEmail(from, subject, rcpt, body, "<p>"+body+"</p>")

	response, err := m.client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid: unexpected status %d", response.StatusCode)
	}
	return nil
}
