package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{4.5, "$4.50"},
		{1234.5, "$1,234.50"},
		{1234567.89, "$1,234,567.89"},
		{-20, "-$20.00"},
		{0.994, "$0.99"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.amount); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatSigned(t *testing.T) {
	if got := FormatSigned(4.5, true); got != "+$4.50" {
		t.Errorf("inflow = %q, want +$4.50", got)
	}
	if got := FormatSigned(4.5, false); got != "-$4.50" {
		t.Errorf("outflow = %q, want -$4.50", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45000, "-45,000"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate(short, 10) = %q", got)
	}
	if got := Truncate("a longer description", 9); got != "a longer…" {
		t.Errorf("Truncate = %q, want %q", got, "a longer…")
	}
	if got := Truncate("héllo wörld", 6); got != "héllo…" {
		t.Errorf("rune-aware Truncate = %q, want %q", got, "héllo…")
	}
	if got := Truncate("anything", 0); got != "" {
		t.Errorf("Truncate with zero limit = %q, want empty", got)
	}
}
