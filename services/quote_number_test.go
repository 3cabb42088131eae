package services

import (
	"testing"
	"time"
)

func TestFormatQuoteNumber(t *testing.T) {
	issued := time.Date(2026, time.January, 28, 9, 5, 7, 0, time.UTC)

	tests := []struct {
		name string
		id   string
		want string
	}{
		{"dotted part number", "1.280-170.0", "KH-Q-12801700-20260128-090507"},
		{"plain id", "HD410", "KH-Q-HD410-20260128-090507"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatQuoteNumber(tt.id, issued); got != tt.want {
				t.Errorf("FormatQuoteNumber(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}
