package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedContent(t *testing.T) {
	require.NoError(t, Init())
	s := Get()

	assert.Equal(t, "Fleetra", s.Name)
	assert.NotEmpty(t, s.Hero.Title)
	assert.NotEmpty(t, s.Features)
	assert.NotEmpty(t, s.About.Team)
	assert.NotEmpty(t, s.Investors.Highlights)
	assert.NotEmpty(t, s.Survey.FleetSizes)
	for _, f := range s.Features {
		assert.NotEmpty(t, f.Title)
		assert.NotEmpty(t, f.Summary)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "minimal", input: "name: X\nfeatures:\n  - title: A\n"},
		{name: "missing name", input: "features:\n  - title: A\n", wantErr: true},
		{name: "no features", input: "name: X\n", wantErr: true},
		{name: "invalid yaml", input: "name: [", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "X", s.Name)
		})
	}
}
