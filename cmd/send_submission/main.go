// Command send_submission posts sample beta or contact submissions to a
// running relay, for smoke-testing a deployment end to end.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fleetra/site/submission"
)

func sampleForm(formType submission.FormType, n int) map[string]any {
	email := fmt.Sprintf("smoke+%d@fleetra.io", n)
	if formType == submission.TypeContact {
		return map[string]any{
			"name":    fmt.Sprintf("Smoke Test %d", n),
			"email":   email,
			"subject": "Relay smoke test",
			"inquiry": "general",
			"message": "Sent by cmd/send_submission. Safe to ignore.",
		}
	}
	return map[string]any{
		"name":       fmt.Sprintf("Smoke Test %d", n),
		"email":      email,
		"company":    "Fleetra QA",
		"fleetSize":  "11-50",
		"role":       "Fleet manager",
		"vehicles":   []string{"Vans", "Light trucks"},
		"challenges": []string{"Fuel costs"},
		"message":    "Sent by cmd/send_submission. Safe to ignore.",
	}
}

func send(ctx context.Context, client *http.Client, url string, formType submission.FormType, n int) (submission.Response, int, error) {
	data, err := json.Marshal(sampleForm(formType, n))
	if err != nil {
		return submission.Response{}, 0, err
	}
	body, err := json.Marshal(submission.Request{Type: formType, FormData: data})
	if err != nil {
		return submission.Response{}, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return submission.Response{}, 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return submission.Response{}, 0, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return submission.Response{}, resp.StatusCode, err
	}
	var out submission.Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return submission.Response{}, resp.StatusCode, fmt.Errorf("unexpected response %q: %w", raw, err)
	}
	return out, resp.StatusCode, nil
}

func main() {
	var (
		url      = flag.String("url", "http://localhost:8000/api/submit-form", "Relay endpoint")
		formType = flag.String("type", "beta", "Form type: beta or contact")
		count    = flag.Int("count", 1, "Number of submissions to send")
		workers  = flag.Int("workers", 2, "Number of parallel senders")
		timeout  = flag.Duration("timeout", 30*time.Second, "Per-request timeout")
	)
	flag.Parse()

	ft := submission.FormType(*formType)
	if ft != submission.TypeBeta && ft != submission.TypeContact {
		log.Fatalf("unknown form type %q", *formType)
	}
	if *workers < 1 {
		*workers = 1
	}

	client := &http.Client{Timeout: *timeout}
	var failed atomic.Int32

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*workers)
	for i := 1; i <= *count; i++ {
		n := i
		g.Go(func() error {
			resp, status, err := send(ctx, client, *url, ft, n)
			switch {
			case err != nil:
				failed.Add(1)
				log.Printf("#%d: %v", n, err)
			case !resp.Success:
				failed.Add(1)
				log.Printf("#%d: %d %s", n, status, resp.Error)
			default:
				log.Printf("#%d: %d %s (%s)", n, status, resp.Message, resp.Timestamp)
			}
			return nil
		})
	}
	_ = g.Wait()

	if f := failed.Load(); f > 0 {
		log.Fatalf("%d of %d submissions failed", f, *count)
	}
	fmt.Printf("Sent %d %s submissions\n", *count, ft)
}
