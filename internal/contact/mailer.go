// Package contact sends the contact-form notification mails: one to the
// configured admin address and an auto-reply to the sender.
package contact

import (
	"context"
	"fmt"
	"html"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"puramente/internal/config"
	"puramente/internal/domain"
	"puramente/internal/dto"
)

type Mailer struct {
	cfg    config.SMTPConfig
	logger *zap.Logger
}

func NewMailer(cfg config.SMTPConfig, logger *zap.Logger) *Mailer {
	return &Mailer{cfg: cfg, logger: logger}
}

func (m *Mailer) Enabled() bool {
	return m.cfg.Host != "" && m.cfg.AdminEmail != ""
}

// Send delivers the admin notification and the auto-reply in one SMTP session.
func (m *Mailer) Send(ctx context.Context, req dto.ContactRequest) error {
	admin, err := m.adminMessage(req)
	if err != nil {
		return err
	}
	reply, err := m.autoReplyMessage(req)
	if err != nil {
		return err
	}

	return m.deliver(ctx, admin, reply)
}

// NotifyOrderPlaced mails the admin after a cart checkout. Checkout treats a
// failure here as non-fatal.
func (m *Mailer) NotifyOrderPlaced(ctx context.Context, order domain.Order) error {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.FromEmail); err != nil {
		return fmt.Errorf("setting sender: %w", err)
	}
	if err := msg.To(m.cfg.AdminEmail); err != nil {
		return fmt.Errorf("setting recipient: %w", err)
	}

	msg.Subject(fmt.Sprintf("New order #%d from %s", order.ID, order.FirstName))
	msg.SetBodyString(mail.TypeTextHTML, fmt.Sprintf(`
		<h3>New Order Placed</h3>
		<p><strong>Order ID:</strong> %d</p>
		<p><strong>Name:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Country:</strong> %s</p>
		<p><strong>Status:</strong> %s</p>`,
		order.ID,
		html.EscapeString(order.FirstName),
		html.EscapeString(order.Email),
		html.EscapeString(order.Country),
		html.EscapeString(order.Status),
	))

	return m.deliver(ctx, msg)
}

func (m *Mailer) adminMessage(req dto.ContactRequest) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.FromEmail); err != nil {
		return nil, fmt.Errorf("setting sender: %w", err)
	}
	if err := msg.To(m.cfg.AdminEmail); err != nil {
		return nil, fmt.Errorf("setting recipient: %w", err)
	}

	msg.Subject(fmt.Sprintf("New Contact from %s", req.Name))
	msg.SetBodyString(mail.TypeTextHTML, fmt.Sprintf(`
		<h3>Contact Form Submission</h3>
		<p><strong>Name:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Contact Number:</strong> %s</p>
		<p><strong>Company Name:</strong> %s</p>
		<p><strong>Country:</strong> %s</p>
		<p><strong>Company Website:</strong> %s</p>
		<p><strong>Message:</strong> %s</p>`,
		html.EscapeString(req.Name),
		html.EscapeString(req.Email),
		html.EscapeString(req.ContactNumber),
		html.EscapeString(req.CompanyName),
		html.EscapeString(req.Country),
		html.EscapeString(req.CompanyWebsite),
		html.EscapeString(req.Message),
	))

	return msg, nil
}

func (m *Mailer) autoReplyMessage(req dto.ContactRequest) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.FromEmail); err != nil {
		return nil, fmt.Errorf("setting sender: %w", err)
	}
	if err := msg.To(req.Email); err != nil {
		return nil, fmt.Errorf("setting recipient: %w", err)
	}

	msg.Subject("Thanks for contacting us")
	msg.SetBodyString(mail.TypeTextHTML, fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Thank you for reaching out to us. We have received your message and will get back to you as soon as possible.</p>
		<p>Best regards,<br/>Puramente International Team</p>`,
		html.EscapeString(req.Name),
	))

	return msg, nil
}

func (m *Mailer) deliver(ctx context.Context, msgs ...*mail.Msg) error {
	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("creating smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msgs...); err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}

	m.logger.Info("mail sent", zap.Int("messages", len(msgs)))
	return nil
}
