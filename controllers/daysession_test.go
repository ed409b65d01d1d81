package controllers

import (
	"testing"
	"time"

	"burgerpos/models"

	"github.com/stretchr/testify/assert"
)

func TestOrderOnDay(t *testing.T) {
	ts := func(value string) time.Time {
		parsed, err := time.Parse(time.RFC3339, value)
		if err != nil {
			t.Fatalf("bad timestamp %q: %v", value, err)
		}
		return parsed
	}

	tests := []struct {
		name  string
		order models.Order
		date  string
		want  bool
	}{
		{
			name:  "sessionDay match",
			order: models.Order{SessionDay: "2026-08-31"},
			date:  "2026-08-31",
			want:  true,
		},
		{
			name:  "sessionDay mismatch",
			order: models.Order{SessionDay: "2026-08-30"},
			date:  "2026-08-31",
			want:  false,
		},
		{
			name: "sessionDay wins over timestamp",
			order: models.Order{
				SessionDay: "2026-08-31",
				Timestamp:  ts("2026-09-01T01:30:00Z"),
			},
			date: "2026-08-31",
			want: true,
		},
		{
			name:  "legacy order falls back to timestamp date",
			order: models.Order{Timestamp: ts("2026-08-31T18:45:00Z")},
			date:  "2026-08-31",
			want:  true,
		},
		{
			name:  "legacy order on another day",
			order: models.Order{Timestamp: ts("2026-08-30T12:00:00Z")},
			date:  "2026-08-31",
			want:  false,
		},
		{
			// Warsaw is UTC+2 in August: late UTC evening is already the
			// next local calendar day.
			name:  "legacy order counts for the local day, not UTC",
			order: models.Order{Timestamp: ts("2026-08-30T22:30:00Z")},
			date:  "2026-08-31",
			want:  true,
		},
		{
			name:  "no sessionDay and no timestamp",
			order: models.Order{},
			date:  "2026-08-31",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OrderOnDay(tt.order, tt.date))
		})
	}
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2026-08-31", true},
		{"2026-02-29", false},
		{"2024-02-29", true},
		{"31-08-2026", false},
		{"2026-8-31", false},
		{"", false},
		{"not-a-date", false},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, validDate(tt.date))
		})
	}
}

func TestResetTokenIsSingleUse(t *testing.T) {
	resetTokensMu.Lock()
	resetTokens["2026-08-31"] = "token-a"
	resetTokensMu.Unlock()

	assert.False(t, consumeResetToken("2026-08-31", "wrong"))
	assert.True(t, consumeResetToken("2026-08-31", "token-a"))
	assert.False(t, consumeResetToken("2026-08-31", "token-a"))
	assert.False(t, consumeResetToken("2026-09-01", "token-a"))
}
