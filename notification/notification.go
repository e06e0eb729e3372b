package notification

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fleetra/site/config"
)

// Alert is one internal notification about a form submission.
type Alert struct {
	Subject string
	HTML    string
	Text    string
}

type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, htmlBody string) error
}

type SMSSender interface {
	SendAlert(ctx context.Context, phoneNumber, body string) error
}

// NotificationService sends submission alerts to the team
type NotificationService struct {
	email   EmailSender
	emailTo string
	sms     SMSSender
	smsTo   string
	// smsWait caps how long Notify waits on the SMS leg.
	smsWait time.Duration
}

// NewNotificationService creates a notification service. Email is the
// required channel; SMS can be added with WithSMS.
func NewNotificationService(email EmailSender, emailTo string) (*NotificationService, error) {
	if email == nil {
		return nil, fmt.Errorf("email service not available")
	}
	if emailTo == "" {
		return nil, fmt.Errorf("missing notification recipient")
	}
	return &NotificationService{email: email, emailTo: emailTo, smsWait: config.SMSTimeout}, nil
}

// WithSMS enables best effort SMS alerts to phoneNumber.
func (n *NotificationService) WithSMS(sms SMSSender, phoneNumber string) *NotificationService {
	if sms == nil || phoneNumber == "" {
		return n
	}
	n.sms = sms
	n.smsTo = phoneNumber
	return n
}

// WithSMSTimeout overrides how long Notify waits for the SMS alert.
func (n *NotificationService) WithSMSTimeout(d time.Duration) *NotificationService {
	if d > 0 {
		n.smsWait = d
	}
	return n
}

// Notify sends the email and, when configured, the SMS alert concurrently.
// Only an email failure is returned. The SMS leg is abandoned after smsWait
// or when ctx is done, whichever comes first.
func (n *NotificationService) Notify(ctx context.Context, a Alert) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := n.email.SendEmail(ctx, n.emailTo, a.Subject, a.HTML); err != nil {
			return fmt.Errorf("email notification failed: %w", err)
		}
		return nil
	})

	if n.sms != nil {
		g.Go(func() error {
			text := a.Text
			if text == "" {
				text = a.Subject
			}
			smsCtx, cancel := context.WithTimeout(ctx, n.smsWait)
			defer cancel()
			if err := n.sms.SendAlert(smsCtx, n.smsTo, text); err != nil {
				log.Printf("[SMS] Notification failed for %s: %v", n.smsTo, err)
			}
			return nil
		})
	}

	return g.Wait()
}
