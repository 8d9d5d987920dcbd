package logger

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"AAPL", "AAPL"},
		{"weekly report: NVDA", "weekly_report__NVDA"},
		{"", "run"},
		{"///", "run"},
	}

	for _, tt := range tests {
		if got := sanitize(tt.in); got != tt.want {
			t.Errorf("sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitize_TruncatesLongNames(t *testing.T) {
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'a'
	}

	if got := sanitize(string(long)); len(got) != 60 {
		t.Errorf("Expected 60 chars, got %d", len(got))
	}
}
