package utils

import (
	"errors"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendEmail sends a plain-text mail through the SMTP server configured via
// SMTP_HOST, SMTP_PORT, SMTP_USER and SMTP_PASSWORD.
func SendEmail(to, subject, body string) error {
	host := os.Getenv("SMTP_HOST")
	user := os.Getenv("SMTP_USER")
	password := os.Getenv("SMTP_PASSWORD")
	if host == "" || user == "" {
		return errors.New("SMTP is not configured")
	}
	port := 465
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	m := gomail.NewMessage()
	m.SetHeader("From", user)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(host, port, user, password)

	return d.DialAndSend(m)
}
