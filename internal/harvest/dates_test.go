package harvest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUTC(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "rfc3339",
			input: "2024-03-15T10:00:00Z",
			want:  time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "naive timestamp interpreted as UTC",
			input: "2024-03-15 10:00:00",
			want:  time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "zone-aware timestamp converted to UTC",
			input: "2024-03-15T12:00:00+02:00",
			want:  time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "date only",
			input: "2024-03-15",
			want:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUTC(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseUTCEmpty(t *testing.T) {
	_, err := ParseUTC("")
	require.ErrorIs(t, err, ErrEmptyDate)

	_, err = ParseUTC("   ")
	require.ErrorIs(t, err, ErrEmptyDate)
}

func TestParseUTCUnparseable(t *testing.T) {
	_, err := ParseUTC("not a date")
	require.Error(t, err)
}

func TestReportDate(t *testing.T) {
	assert.Equal(t, "05/03/2024", ReportDate("2024-03-05T00:00:00Z"))
	assert.Equal(t, "", ReportDate(""))
	assert.Equal(t, "", ReportDate("not a date"))
}
