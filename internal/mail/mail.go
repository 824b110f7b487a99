// AngelaMos | 2026
// mail.go

package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/cricketacademy/academy-api/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

// Sender puts a rendered message on the wire.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type Mailer struct {
	sender    Sender
	templates *template.Template
	appName   string
	logger    *slog.Logger
}

// New returns a Mailer over SMTP when the config has a host, otherwise one
// that only logs what it would have sent.
func New(cfg config.SMTPConfig, appName string, logger *slog.Logger) (*Mailer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "mail")

	var sender Sender = &LogSender{logger: logger}
	if cfg.Enabled() {
		sender = &SMTPSender{cfg: cfg}
	}

	return NewWithSender(sender, appName, logger)
}

func NewWithSender(sender Sender, appName string, logger *slog.Logger) (*Mailer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Mailer{
		sender:    sender,
		templates: tmpl,
		appName:   appName,
		logger:    logger,
	}, nil
}

type verificationData struct {
	AppName   string
	Name      string
	Code      string
	ExpiresIn string
}

type resetData struct {
	AppName string
	Name    string
	Link    string
}

func (m *Mailer) SendVerificationOTP(
	ctx context.Context,
	to, name, otp string,
	expires time.Duration,
) error {
	body, err := m.render("verification", verificationData{
		AppName:   m.appName,
		Name:      name,
		Code:      otp,
		ExpiresIn: humanDuration(expires),
	})
	if err != nil {
		return err
	}

	return m.sender.Send(ctx, to, "Your verification code", body)
}

func (m *Mailer) SendPasswordReset(ctx context.Context, to, name, link string) error {
	body, err := m.render("password_reset", resetData{AppName: m.appName, Name: name, Link: link})
	if err != nil {
		return err
	}

	return m.sender.Send(ctx, to, "Reset your password", body)
}

type BookingNotice struct {
	Subject      string
	Headline     string
	CustomerName string
	BookingID    string
	ResourceName string
	Date         string
	StartTime    string
	EndTime      string
	Currency     string
	Amount       float64
	RefundAmount float64
	Note         string
}

func (m *Mailer) SendBookingNotice(ctx context.Context, to string, n BookingNotice) error {
	body, err := m.render("booking", struct {
		AppName string
		BookingNotice
	}{m.appName, n})
	if err != nil {
		return err
	}

	return m.sender.Send(ctx, to, n.Subject, body)
}

type PaymentNotice struct {
	Subject      string
	Headline     string
	CustomerName string
	PaymentID    string
	BookingID    string
	Currency     string
	Amount       float64
	Reason       string
}

func (m *Mailer) SendPaymentNotice(ctx context.Context, to string, n PaymentNotice) error {
	body, err := m.render("payment", struct {
		AppName string
		PaymentNotice
	}{m.appName, n})
	if err != nil {
		return err
	}

	return m.sender.Send(ctx, to, n.Subject, body)
}

func (m *Mailer) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := m.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s template: %w", name, err)
	}
	return buf.String(), nil
}

func humanDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return "a few minutes"
	case d%time.Hour == 0:
		h := int(d / time.Hour)
		if h == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", h)
	default:
		return fmt.Sprintf("%d minutes", int(d/time.Minute))
	}
}

// LogSender is used when SMTP is not configured.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, to, subject, _ string) error {
	s.logger.InfoContext(ctx, "smtp disabled, mail not sent", "to", to, "subject", subject)
	return nil
}

type SMTPSender struct {
	cfg config.SMTPConfig
}

func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg := buildMessage(s.from(), to, subject, htmlBody)

	timeout := s.cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := s.dial(ctx)
	if err != nil {
		return err
	}

	if deadline, ok := ctx.Deadline(); ok {
		//nolint:errcheck // deadline is advisory
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		_ = conn.Close() //nolint:errcheck // already failing
		return fmt.Errorf("create smtp client: %w", err)
	}
	defer client.Close() //nolint:errcheck // Quit already closed it on success

	if err := client.Hello("localhost"); err != nil {
		return fmt.Errorf("smtp hello: %w", err)
	}

	if !s.cfg.UseSSL {
		if err := client.StartTLS(&tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}); err != nil {
			return fmt.Errorf("smtp starttls: %w", err)
		}
	}

	if s.cfg.Username != "" && s.cfg.Password != "" {
		if err := client.Auth(smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)); err != nil {
			return fmt.Errorf("smtp auth (user: %s): %w", s.cfg.Username, err)
		}
	}

	if err := client.Mail(s.cfg.From); err != nil {
		return fmt.Errorf("smtp sender %s: %w", s.cfg.From, err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp recipient %s: %w", to, err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close data writer: %w", err)
	}

	return client.Quit()
}

// dial opens a plain TCP connection for STARTTLS (587) or an implicit TLS
// one for SSL (465).
func (s *SMTPSender) dial(ctx context.Context) (net.Conn, error) {
	dialer := &net.Dialer{KeepAlive: 30 * time.Second}
	addr := s.cfg.Addr()

	if s.cfg.UseSSL {
		td := &tls.Dialer{
			NetDialer: dialer,
			Config:    &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12},
		}
		conn, err := td.DialContext(ctx, "tcp", addr)
		if err != nil {
			return nil, fmt.Errorf("dial smtp (ssl) %s: %w", addr, err)
		}
		return conn, nil
	}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial smtp %s: %w", addr, err)
	}
	return conn, nil
}

func (s *SMTPSender) from() string {
	if s.cfg.FromName == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", s.cfg.FromName), s.cfg.From)
}

func buildMessage(from, to, subject, htmlBody string) []byte {
	var b strings.Builder
	headers := [][2]string{
		{"From", from},
		{"To", to},
		{"Subject", mime.QEncoding.Encode("utf-8", subject)},
		{"Date", time.Now().Format(time.RFC1123Z)},
		{"MIME-Version", "1.0"},
		{"Content-Type", "text/html; charset=UTF-8"},
	}
	for _, h := range headers {
		b.WriteString(h[0])
		b.WriteString(": ")
		b.WriteString(h[1])
		b.WriteString("\r\n")
	}
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return []byte(b.String())
}
