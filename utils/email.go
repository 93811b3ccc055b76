package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/gomail.v2"
)

func SendEmail(to, subject, body string) error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("EMAIL_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}

// SendVerificationEmail mails the account-verification link.
func SendVerificationEmail(to, name, token string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", os.Getenv("APP_URL"), token)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your clinic account has been created. Please verify your email address
		by clicking the link below:</p>
		<p><a href="%s">Verify Email</a></p>
		<p>The link expires in 24 hours.</p>
		<p>Best regards,</p>
		<p>Clinic Administration</p>
	`, name, link)
	return SendEmail(to, "Verify your clinic account", body)
}

// SendResetPasswordEmail mails the password-reset link.
func SendResetPasswordEmail(to, name, token string) error {
	link := fmt.Sprintf("%s/reset-password/%s", os.Getenv("APP_URL"), token)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>A password reset was requested for your clinic account. Click the link
		below to choose a new password:</p>
		<p><a href="%s">Reset Password</a></p>
		<p>The link expires in one hour. If you did not request this, you can
		ignore this email.</p>
		<p>Best regards,</p>
		<p>Clinic Administration</p>
	`, name, link)
	return SendEmail(to, "Reset your clinic account password", body)
}
