package services

import (
	"fmt"
	"net/smtp"

	"github.com/BijinVijayan/food-store/config"
	"github.com/BijinVijayan/food-store/utils"
)

// OTPSender delivers a one-time login code. Delivery is opaque to the auth
// flow; there is no retry on failure.
type OTPSender interface {
	SendOTP(to, code string) error
}

// Mailer sends the code over SMTP as an HTML email.
type Mailer struct {
	cfg config.SMTPConfig
}

func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) SendOTP(to, code string) error {
	headers := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Your Login Code\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n",
		m.cfg.From, to)
	msg := headers + BuildOTPEmailBody(code, 10)

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := fmt.Sprintf("%s:%s", m.cfg.Host, m.cfg.Port)

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send otp email: %w", err)
	}
	return nil
}

func BuildOTPEmailBody(code string, expiryMinutes int) string {
	return fmt.Sprintf(`<div style="font-family: sans-serif; padding: 20px;">
  <h2>Welcome to RestoAdmin</h2>
  <p>Your login verification code is:</p>
  <h1 style="color: #E51D29; letter-spacing: 2px;">%s</h1>
  <p>This code will expire in %d minutes.</p>
</div>`, code, expiryMinutes)
}

// LogOTPSender is the development fallback when SMTP is not configured: the
// code is only written to the info log.
type LogOTPSender struct{}

func (LogOTPSender) SendOTP(to, code string) error {
	utils.InfoLogger.Printf("OTP for %s: %s (smtp not configured)", to, code)
	return nil
}
