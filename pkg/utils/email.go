package utils

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

func SendEmail(message *gomail.Message, sender string, password string, smtpServer string, smtpPort int) error {
	d := gomail.NewDialer(smtpServer, smtpPort, sender, password)

	if err := d.DialAndSend(message); err != nil {
		return err
	}

	return nil
}

// ComposeOrderStatusEmail builds the notification sent to a customer when an
// admin moves their order to a new status.
func ComposeOrderStatusEmail(sender string, recipient string, orderNumber string, status string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", sender)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", fmt.Sprintf("Your order %s has been %s", orderNumber, status))
	m.SetBody("text/plain", fmt.Sprintf("Hi,\n\nYour order %s is now %s.\n\nThank you for shopping with us.", orderNumber, status))

	return m
}
