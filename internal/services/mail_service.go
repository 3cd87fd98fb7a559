package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net/smtp"
	"net/url"
	"strings"
	"time"
)

type MailServiceInterface interface {
	// SendRecoveryMail delivers the password-recovery link. The link lands
	// back on the app root with a recovery marker the front door picks up.
	SendRecoveryMail(to, token string) error

	SendReceiptMail(to, quizTitle string, amountMinor int64) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	UseSSL   bool // SMTPS on 465; otherwise STARTTLS

	AppName    string
	AppBaseURL string
}

type smtpMailService struct {
	cfg SMTPConfig
	tpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) MailServiceInterface {
	return &smtpMailService{
		cfg: cfg,
		tpl: template.Must(template.New("mail").Parse(mailTemplate)),
	}
}

type mailData struct {
	Title     string
	Intro     string
	ButtonURL string
	ButtonTxt string
	AppName   string
	Year      int
}

func (s *smtpMailService) SendRecoveryMail(to, token string) error {
	link := fmt.Sprintf("%s/?token=%s#type=recovery",
		strings.TrimRight(s.cfg.AppBaseURL, "/"), url.QueryEscape(token))

	return s.send(to, "Reset your password", mailData{
		Title:     "Reset your password",
		Intro:     "We received a request to reset your password. Use the button below to continue. If this was not you, ignore this mail.",
		ButtonURL: link,
		ButtonTxt: "Reset password",
	})
}

func (s *smtpMailService) SendReceiptMail(to, quizTitle string, amountMinor int64) error {
	return s.send(to, "Purchase confirmed", mailData{
		Title:     "Purchase confirmed",
		Intro:     fmt.Sprintf("Thanks for unlocking %q (¥%d). The paid features are now available from your dashboard.", quizTitle, amountMinor),
		ButtonURL: strings.TrimRight(s.cfg.AppBaseURL, "/") + "/dashboard",
		ButtonTxt: "Open dashboard",
	})
}

func (s *smtpMailService) send(to, subject string, data mailData) error {
	data.AppName = s.cfg.AppName
	data.Year = time.Now().Year()

	var body bytes.Buffer
	if err := s.tpl.Execute(&body, data); err != nil {
		return err
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if s.cfg.UseSSL {
		return s.sendSMTPS(addr, auth, to, msg.Bytes())
	}
	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg.Bytes())
}

// sendSMTPS handles implicit-TLS servers, which net/smtp.SendMail cannot.
func (s *smtpMailService) sendSMTPS(addr string, auth smtp.Auth, to string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12})
	if err != nil {
		return err
	}
	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.Auth(auth); err != nil {
		return err
	}
	if err := c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}

const mailTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>{{.Title}}</title>
</head>
<body style="margin:0;padding:0;background:#f4f4f7;font-family:-apple-system,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;">
  <table role="presentation" width="100%" cellpadding="0" cellspacing="0">
    <tr><td align="center" style="padding:32px 16px;">
      <table role="presentation" width="520" cellpadding="0" cellspacing="0" style="background:#ffffff;border-radius:12px;overflow:hidden;">
        <tr><td style="background:#4f46e5;padding:20px 32px;color:#ffffff;font-size:18px;font-weight:700;">{{.AppName}}</td></tr>
        <tr><td style="padding:32px;">
          <h1 style="margin:0 0 16px;font-size:20px;color:#111827;">{{.Title}}</h1>
          <p style="margin:0 0 24px;font-size:14px;line-height:1.6;color:#374151;">{{.Intro}}</p>
          {{if .ButtonURL}}
          <a href="{{.ButtonURL}}" style="display:inline-block;background:#4f46e5;color:#ffffff;text-decoration:none;padding:12px 24px;border-radius:8px;font-size:14px;font-weight:600;">{{.ButtonTxt}}</a>
          {{end}}
        </td></tr>
        <tr><td style="padding:16px 32px;border-top:1px solid #e5e7eb;font-size:12px;color:#9ca3af;">
          &copy; {{.Year}} {{.AppName}}
        </td></tr>
      </table>
    </td></tr>
  </table>
</body>
</html>`
