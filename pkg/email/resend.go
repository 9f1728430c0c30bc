package email

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"path/filepath"

	"github.com/resendlabs/resend-go"

	"github.com/jayisaacai/checkout-backend/internal/models"
)

type EmailService struct {
	client       *resend.Client
	from         string
	fromName     string
	templatesDir string
	logger       *log.Logger
}

func NewEmailService() *EmailService {
	return &EmailService{
		client:       resend.NewClient(os.Getenv("RESEND_API_KEY")),
		from:         os.Getenv("EMAIL_FROM_ADDRESS"),
		fromName:     os.Getenv("EMAIL_FROM_NAME"),
		templatesDir: "pkg/email/templates",
		logger:       log.New(os.Stdout, "EMAIL: ", log.LstdFlags),
	}
}

// SendReceiptEmail mails the purchase receipt to the customer.
func (s *EmailService) SendReceiptEmail(receipt models.Receipt) error {
	to := receipt.Customer.Email
	s.logger.Printf("Sending receipt email to: %s (transaction %s)", to, receipt.Transaction.ID)

	html, err := s.parseTemplate("receipt.html", receipt)
	if err != nil {
		s.logger.Printf("Error parsing receipt template for %s: %v", to, err)
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{to},
		Subject: "Your Receipt - " + receipt.Company.Name,
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Printf("Failed to send receipt email to %s: %v", to, err)
		return err
	}

	s.logger.Printf("Successfully sent receipt email to %s (ID: %s)", to, resp.Id)
	return nil
}

func (s *EmailService) parseTemplate(templateName string, data interface{}) (string, error) {
	templatePath := filepath.Join(s.templatesDir, templateName)

	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		s.logger.Printf("Error parsing template %s: %v", templateName, err)
		return "", err
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		s.logger.Printf("Error executing template %s: %v", templateName, err)
		return "", err
	}

	return body.String(), nil
}
