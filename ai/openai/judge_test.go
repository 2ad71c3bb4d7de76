package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  float64
	}{
		{name: "bare number", reply: "0.85", want: 0.85},
		{name: "number with prose", reply: "The relevance score is 0.7.", want: 0.7},
		{name: "fenced", reply: "```\n0.4\n```", want: 0.4},
		{name: "zero", reply: "0", want: 0},
		{name: "one", reply: "1", want: 1},
		{name: "percentage scaled", reply: "85", want: 0.85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseScore(tt.reply)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseScore_Unparseable(t *testing.T) {
	for _, reply := range []string{"", "no score here", "N/A"} {
		_, err := parseScore(reply)
		assert.ErrorIs(t, err, ErrUnparseableScore, "reply %q", reply)
	}
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"topics":[]}`, stripFences("```json\n{\"topics\":[]}\n```"))
	assert.Equal(t, "plain", stripFences("  plain  "))
}

func TestRepairJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "missing opening quote on key",
			in:   `{ topics": ["Forms"]}`,
			want: `{ "topics": ["Forms"]}`,
		},
		{
			name: "trailing comma in array",
			in:   `{"topics": ["Forms", ]}`,
			want: `{"topics": ["Forms" ]}`,
		},
		{
			name: "well-formed input untouched",
			in:   `{"topics": ["Forms", "Sharing"]}`,
			want: `{"topics": ["Forms", "Sharing"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repairJSON(tt.in))
		})
	}
}

func TestTruncateInput(t *testing.T) {
	assert.Equal(t, "short text", truncateInput("short text", 100))

	long := "alpha beta gamma delta"
	got := truncateInput(long, 12)
	assert.LessOrEqual(t, len(got), 12)
	assert.Equal(t, "alpha beta", got) // cut at a word boundary
}
