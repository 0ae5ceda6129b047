package email

import (
	"context"
	"fmt"
	"strings"
)

// ContactData is the template data for a contact form notification.
type ContactData struct {
	ContactID    string
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	Message      string
	MessageLines []string
}

// NewContactData builds template data, splitting the message into lines
// so the HTML template can render line breaks.
func NewContactData(contactID, firstName, lastName, email, phoneNumber, message string) ContactData {
	return ContactData{
		ContactID:    contactID,
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PhoneNumber:  phoneNumber,
		Message:      message,
		MessageLines: strings.Split(message, "\n"),
	}
}

// SendContactNotification relays a contact form submission to the site owner.
// Replies go straight to the person who filled in the form.
func (c *Client) SendContactNotification(ctx context.Context, data ContactData) (string, error) {
	replyTo := Address{
		Name:  strings.TrimSpace(data.FirstName + " " + data.LastName),
		Email: data.Email,
	}

	return c.SendEmail(
		ctx,
		c.recipient,
		&replyTo,
		fmt.Sprintf("New Contact Form Submission from %s %s", data.FirstName, data.LastName),
		TemplateContact,
		data,
	)
}
