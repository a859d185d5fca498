package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/resendlabs/resend-go"
	"github.com/sefazor/pricing-web/internal/models"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// sendFunc delivers one email and returns the provider's message id.
type sendFunc func(params *resend.SendEmailRequest) (string, error)

// ContactMailer forwards contact form submissions to the sales inbox.
type ContactMailer struct {
	send     sendFunc
	from     string
	fromName string
	to       string
	logger   *zap.Logger
}

func NewContactMailer(apiKey, from, fromName, to string, logger *zap.Logger) *ContactMailer {
	client := resend.NewClient(apiKey)
	return &ContactMailer{
		send: func(params *resend.SendEmailRequest) (string, error) {
			resp, err := client.Emails.Send(params)
			if err != nil {
				return "", err
			}
			return resp.Id, nil
		},
		from:     from,
		fromName: fromName,
		to:       to,
		logger:   logger.Named("email"),
	}
}

func (m *ContactMailer) SendContactRequest(req models.ContactRequest) error {
	m.logger.Info("Sending contact request", zap.String("email", req.Email), zap.String("plan", req.Plan))

	html, err := renderContact(req)
	if err != nil {
		m.logger.Error("Error parsing contact template", zap.Error(err))
		return err
	}

	params := &resend.SendEmailRequest{
		From:    m.fromName + " <" + m.from + ">",
		To:      []string{m.to},
		Subject: subject(req),
		Html:    html,
	}

	id, err := m.send(params)
	if err != nil {
		m.logger.Error("Failed to send contact request", zap.String("email", req.Email), zap.Error(err))
		return fmt.Errorf("failed to send contact request: %w", err)
	}

	m.logger.Info("Successfully sent contact request", zap.String("id", id))
	return nil
}

// LogMailer stands in when no mail provider is configured.
type LogMailer struct {
	logger *zap.Logger
}

func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger.Named("email")}
}

func (m *LogMailer) SendContactRequest(req models.ContactRequest) error {
	m.logger.Warn("mail provider not configured, contact request logged only",
		zap.String("name", req.Name),
		zap.String("email", req.Email),
		zap.String("company", req.Company),
		zap.String("plan", req.Plan),
		zap.String("message", req.Message),
	)
	return nil
}

func subject(req models.ContactRequest) string {
	if req.Company != "" {
		return fmt.Sprintf("Sales inquiry from %s (%s)", req.Name, req.Company)
	}
	return "Sales inquiry from " + req.Name
}

func renderContact(req models.ContactRequest) (string, error) {
	data := struct {
		models.ContactRequest
		Year int
	}{
		ContactRequest: req,
		Year:           time.Now().Year(),
	}

	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, "contact.html", data); err != nil {
		return "", err
	}
	return body.String(), nil
}
