package core

import (
	"fmt"
	"net/mail"
)

type (
	EmailMessage struct {
		To      []mail.Address
		Subject string
		Body    string
	}

	// EmailService is any service that can send emails
	EmailService interface {
		// SendMessages sends messages concurrently
		SendMessages(messages ...*EmailMessage)
	}
)

func (m *EmailMessage) HasRecipients() bool {
	return len(m.To) > 0
}

// NewWelcomeEmail composes the message sent to a freshly registered account.
func NewWelcomeEmail(name, email string) *EmailMessage {
	return &EmailMessage{
		To:      []mail.Address{{Name: name, Address: email}},
		Subject: "Welcome to " + Conf.AppName,
		Body: fmt.Sprintf(
			"Hi %s,\n\nYour account has been created. Log in at %s to see your homework.\n",
			name, Conf.FrontendBaseURL,
		),
	}
}
