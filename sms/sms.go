package sms

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/fleetra/site/config"
	"github.com/twilio/twilio-go"
	Api "github.com/twilio/twilio-go/rest/api/v2010"
)

// maxBody keeps alerts to a single SMS segment.
const maxBody = 160

type SMSService struct {
	client *twilio.RestClient
	from   string
}

// NewSMSService creates a new SMS service instance
func NewSMSService() (*SMSService, error) {
	accountSid := config.TwilioAccountSID
	authToken := config.TwilioAuthToken
	fromNumber := config.TwilioFromNumber

	if accountSid == "" || authToken == "" || fromNumber == "" {
		return nil, fmt.Errorf("missing Twilio configuration")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})
	// Bounds the request goroutine SendAlert leaves behind on cancellation.
	client.SetTimeout(config.SMSTimeout)

	return &SMSService{
		client: client,
		from:   fromNumber,
	}, nil
}

type sendResult struct {
	resp *Api.ApiV2010Message
	err  error
}

// SendAlert sends a short operator alert, e.g. a new beta signup. It returns
// when ctx is done even if Twilio has not answered yet.
func (s *SMSService) SendAlert(ctx context.Context, phoneNumber, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &Api.CreateMessageParams{}
	params.SetTo(phoneNumber)
	params.SetFrom(s.from)
	params.SetBody(Truncate(body))

	done := make(chan sendResult, 1)
	go func() {
		resp, err := s.client.Api.CreateMessage(params)
		done <- sendResult{resp: resp, err: err}
	}()

	select {
	case <-ctx.Done():
		log.Printf("[SMS] Gave up waiting on alert to %s: %v", phoneNumber, ctx.Err())
		return fmt.Errorf("failed to send SMS: %w", ctx.Err())
	case r := <-done:
		if r.err != nil {
			log.Printf("[SMS] Failed to send alert to %s: %v", phoneNumber, r.err)
			return fmt.Errorf("failed to send SMS: %w", r.err)
		}
		sid := ""
		if r.resp != nil && r.resp.Sid != nil {
			sid = *r.resp.Sid
		}
		log.Printf("[SMS] Alert sent to %s (sid %s)", phoneNumber, sid)
		return nil
	}
}

// Truncate shortens body to one SMS segment, marking the cut with "...".
func Truncate(body string) string {
	r := []rune(body)
	if len(r) <= maxBody {
		return body
	}
	return string(r[:maxBody-3]) + "..."
}

// MockSMSService is used for testing without sending actual SMS
type MockSMSService struct {
	mu   sync.Mutex
	sent map[string][]string
	err  error
}

func NewMockSMSService() *MockSMSService {
	return &MockSMSService{
		sent: make(map[string][]string),
	}
}

func (m *MockSMSService) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MockSMSService) SendAlert(ctx context.Context, phoneNumber, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent[phoneNumber] = append(m.sent[phoneNumber], Truncate(body))
	log.Printf("[MOCK SMS] Alert sent to %s", phoneNumber)
	return nil
}

func (m *MockSMSService) GetSent(phoneNumber string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.sent[phoneNumber]...)
}
