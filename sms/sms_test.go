package sms

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fleetra/site/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLen int
		suffix  bool
	}{
		{name: "short", input: "hello", wantLen: 5},
		{name: "exact", input: strings.Repeat("a", 160), wantLen: 160},
		{name: "long", input: strings.Repeat("a", 200), wantLen: 160, suffix: true},
		{name: "multibyte", input: strings.Repeat("é", 200), wantLen: 160, suffix: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input)
			assert.Equal(t, tt.wantLen, utf8.RuneCountInString(got))
			assert.Equal(t, tt.suffix, strings.HasSuffix(got, "..."))
		})
	}
}

func TestMockSMSService(t *testing.T) {
	ctx := context.Background()
	m := NewMockSMSService()
	require.NoError(t, m.SendAlert(ctx, "+15035550100", "New signup"))
	assert.Equal(t, []string{"New signup"}, m.GetSent("+15035550100"))

	m.FailWith(errors.New("twilio down"))
	assert.Error(t, m.SendAlert(ctx, "+15035550100", "Another"))
	assert.Len(t, m.GetSent("+15035550100"), 1)
}

func TestMockSMSService_CanceledContext(t *testing.T) {
	m := NewMockSMSService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, m.SendAlert(ctx, "+15035550100", "New signup"), context.Canceled)
	assert.Empty(t, m.GetSent("+15035550100"))
}

func TestSendAlert_CanceledContextSkipsRequest(t *testing.T) {
	sid, token, from := config.TwilioAccountSID, config.TwilioAuthToken, config.TwilioFromNumber
	t.Cleanup(func() {
		config.TwilioAccountSID, config.TwilioAuthToken, config.TwilioFromNumber = sid, token, from
	})
	config.TwilioAccountSID = "AC00000000000000000000000000000000"
	config.TwilioAuthToken = "token"
	config.TwilioFromNumber = "+15035550199"

	s, err := NewSMSService()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.SendAlert(ctx, "+15035550100", "New signup"), context.Canceled)
}
