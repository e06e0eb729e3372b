package submission

import (
	"context"
	"log"
	"time"

	"github.com/fleetra/site/notification"
	"github.com/fleetra/site/store"
	"github.com/google/uuid"
)

type Appender interface {
	AppendRow(ctx context.Context, sheet string, row []any) error
}

type Notifier interface {
	Notify(ctx context.Context, a notification.Alert) error
}

type Recorder interface {
	SaveSubmission(ctx context.Context, r store.Record) error
	UpdateStatus(ctx context.Context, id, status, errMsg string) error
}

// Service relays validated submissions to the spreadsheet and notifies the
// team. It does not retry; the first failing call is reported.
type Service struct {
	sheet    Appender
	notifier Notifier
	recorder Recorder
	now      func() time.Time
}

func NewService(sheet Appender, notifier Notifier) *Service {
	return &Service{sheet: sheet, notifier: notifier, now: time.Now}
}

// WithRecorder keeps a local log of every submission and its outcome.
func (s *Service) WithRecorder(r Recorder) *Service {
	s.recorder = r
	return s
}

// Ready reports whether both downstream APIs are wired.
func (s *Service) Ready() bool {
	return s != nil && s.sheet != nil && s.notifier != nil
}

func (s *Service) Submit(ctx context.Context, sub Submission) (Response, error) {
	if !s.Ready() {
		return Response{}, &UpstreamError{Service: "relay", Err: errNotConfigured}
	}

	ts := s.now().UTC()
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	s.record(ctx, sub, ts)

	if err := s.sheet.AppendRow(ctx, sub.SheetName(), sub.Row(ts)); err != nil {
		return Response{}, s.fail(ctx, sub, &UpstreamError{Service: "spreadsheet", Err: err})
	}

	body, err := sub.EmailBody(ts)
	if err != nil {
		return Response{}, s.fail(ctx, sub, &UpstreamError{Service: "email", Err: err})
	}
	alert := notification.Alert{
		Subject: sub.EmailSubject(),
		HTML:    body,
		Text:    sub.Summary(),
	}
	if err := s.notifier.Notify(ctx, alert); err != nil {
		return Response{}, s.fail(ctx, sub, &UpstreamError{Service: "email", Err: err})
	}

	s.mark(ctx, sub.ID, store.StatusRelayed, "")
	log.Printf("[RELAY] %s submission %s relayed", sub.Type, sub.ID)

	return Response{
		Success:   true,
		Message:   sub.SuccessMessage(),
		Timestamp: ts.Format(time.RFC3339),
	}, nil
}

func (s *Service) fail(ctx context.Context, sub Submission, err *UpstreamError) error {
	log.Printf("[RELAY] %s submission %s failed: %v", sub.Type, sub.ID, err)
	s.mark(ctx, sub.ID, store.StatusFailed, err.Error())
	return err
}

// record and mark never fail the request; the log is secondary to the relay.
func (s *Service) record(ctx context.Context, sub Submission, ts time.Time) {
	if s.recorder == nil {
		return
	}
	err := s.recorder.SaveSubmission(ctx, store.Record{
		ID:        sub.ID,
		FormType:  string(sub.Type),
		Name:      sub.Name(),
		Email:     sub.Email(),
		Status:    store.StatusPending,
		CreatedAt: ts,
	})
	if err != nil {
		log.Printf("[RELAY] Failed to record submission %s: %v", sub.ID, err)
	}
}

func (s *Service) mark(ctx context.Context, id, status, errMsg string) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.UpdateStatus(ctx, id, status, errMsg); err != nil {
		log.Printf("[RELAY] Failed to update submission %s: %v", id, err)
	}
}
