package services

import (
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/smartlink-edu/campus-payments/config"
	"github.com/smartlink-edu/campus-payments/models"
)

// Mailer notifies the finance office when a payment completes. Like the
// event publisher it is best-effort and disabled when SMTP is unconfigured.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	to       string
}

// NewMailer returns nil when SMTP host or finance address are missing.
func NewMailer(cfg *config.Config) *Mailer {
	if cfg.SMTPHost == "" || cfg.FinanceEmail == "" {
		return nil
	}
	port := 587
	if p, err := strconv.Atoi(cfg.SMTPPort); err == nil && p > 0 {
		port = p
	}
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     port,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
		to:       cfg.FinanceEmail,
	}
}

// SendPaymentReceived mails a completed-payment summary to the finance office.
func (m *Mailer) SendPaymentReceived(payment *models.Payment) error {
	if m == nil {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", fmt.Sprintf("Fee payment received - %s", payment.StudentName))

	body := fmt.Sprintf(`
		<h2>Fee Payment Received</h2>
		<p><b>Student:</b> %s</p>
		<p><b>Description:</b> %s</p>
		<p><b>Amount:</b> %s %.2f</p>
		<p><b>Payment ID:</b> %s</p>
		<p><b>Razorpay Order:</b> %s</p>
	`, payment.StudentName, payment.Description, payment.Currency, payment.Amount,
		payment.ID, payment.RazorpayOrderID)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.host, m.port, m.username, m.password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}
