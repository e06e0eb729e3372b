package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/fleetra/site/config"
)

// EmailService handles sending emails via Twilio SendGrid
type EmailService struct {
	apiKey   string
	from     string
	endpoint string
	client   *http.Client
}

// Email is the SendGrid v3 mail/send payload
type Email struct {
	Personalizations []Personalization `json:"personalizations"`
	From             Address           `json:"from"`
	Subject          string            `json:"subject"`
	Content          []Content         `json:"content"`
}

type Personalization struct {
	To []Address `json:"to"`
}

type Address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Content represents the content of an email
type Content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// NewEmailService creates a new email service instance
func NewEmailService() (*EmailService, error) {
	return newEmailService(config.SendGridAPIKey, config.EmailFrom, config.EmailAPIURL, config.UpstreamTimeout)
}

func newEmailService(apiKey, from, endpoint string, timeout time.Duration) (*EmailService, error) {
	if apiKey == "" || from == "" || endpoint == "" {
		return nil, fmt.Errorf("missing SendGrid configuration")
	}

	return &EmailService{
		apiKey:   apiKey,
		from:     from,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}, nil
}

// SendEmail sends an email via SendGrid
func (s *EmailService) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	email := Email{
		Personalizations: []Personalization{{To: []Address{{Email: to}}}},
		From:             Address{Email: s.from, Name: config.SiteName},
		Subject:          subject,
		Content: []Content{
			{
				Type:  "text/html",
				Value: htmlBody,
			},
		},
	}

	jsonData, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("failed to marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("SendGrid API error: %d %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	log.Printf("[EMAIL] Email sent successfully to %s", to)
	return nil
}

// SentEmail is one message captured by MockEmailService
type SentEmail struct {
	To      string
	Subject string
	Body    string
}

// MockEmailService is used for testing without sending actual emails
type MockEmailService struct {
	mu         sync.Mutex
	sentEmails []SentEmail
	err        error
}

func NewMockEmailService() *MockEmailService {
	return &MockEmailService{}
}

// FailWith makes every following SendEmail return err.
func (m *MockEmailService) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MockEmailService) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sentEmails = append(m.sentEmails, SentEmail{To: to, Subject: subject, Body: htmlBody})
	log.Printf("[MOCK EMAIL] Email sent to %s: %s", to, subject)
	return nil
}

func (m *MockEmailService) GetSentEmails() []SentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SentEmail(nil), m.sentEmails...)
}
