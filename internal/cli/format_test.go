package cli

import (
	"strings"
	"testing"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{1.5, "$1.50"},
		{100, "$100.00"},
		{1234.567, "$1,234.57"},
		{1000000, "$1,000,000.00"},
		{-20, "-$20.00"},
		{-0.001, "$0.00"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatSignedMoney(t *testing.T) {
	if got := FormatSignedMoney(50); got != "+$50.00" {
		t.Errorf("got %q", got)
	}
	if got := FormatSignedMoney(-5); got != "-$5.00" {
		t.Errorf("got %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-4500:    "-4,500",
		10000000: "10,000,000",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(100); got != "100.0%" {
		t.Errorf("got %q", got)
	}
	if got := FormatPercent(33.333); got != "33.3%" {
		t.Errorf("got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("groceries", 20); got != "groceries" {
		t.Errorf("got %q", got)
	}
	if got := Truncate("groceries", 5); got != "groc…" {
		t.Errorf("got %q", got)
	}
}

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Category", "Amount"},
		Rows: [][]string{
			{"Food", "$1.00"},
			{"---"},
			{"Total", "$100.00"},
		},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected 7 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[3], "   $1.00") {
		t.Errorf("amount not right-aligned: %q", lines[3])
	}
	if !strings.Contains(lines[3], "Food    ") {
		t.Errorf("category not left-aligned: %q", lines[3])
	}
}

func TestRenderShareBar(t *testing.T) {
	if got := RenderShareBar(50, 10); got != "█████░░░░░" {
		t.Errorf("got %q", got)
	}
	if got := RenderShareBar(150, 4); got != "████" {
		t.Errorf("got %q", got)
	}
	if got := RenderShareBar(10, 0); got != "" {
		t.Errorf("got %q", got)
	}
}
