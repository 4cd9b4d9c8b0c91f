package validation

import (
	"testing"

	"github.com/BrettAtwell/Movie-theatre-project/internal/model"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    model.Cents
		wantErr bool
	}{
		{in: "9.50", want: 950},
		{in: "10.00", want: 1000},
		{in: "$4.50", want: 450},
		{in: "12", want: 1200},
		{in: "12.5", want: 1250},
		{in: "0.05", want: 5},
		{in: " 3.00 ", want: 300},
		{in: "0", want: 0},
		{in: "", wantErr: true},
		{in: ".", wantErr: true},
		{in: ".50", wantErr: true},
		{in: "1.234", wantErr: true},
		{in: "-5.00", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "1,50", wantErr: true},
		{in: "9.+5", wantErr: true},
		{in: "9.-5", wantErr: true},
		{in: "+9.50", wantErr: true},
		{in: "9. 5", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParsePrice(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParsePrice(%q) expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParsePrice(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParsePrice(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseCount(t *testing.T) {
	if n, err := ParseCount(" 42 "); err != nil || n != 42 {
		t.Fatalf("ParseCount(42) = %d, %v", n, err)
	}
	if n, err := ParseCount("0"); err != nil || n != 0 {
		t.Fatalf("ParseCount(0) = %d, %v", n, err)
	}
	if _, err := ParseCount("-1"); err == nil {
		t.Fatalf("negative count must be rejected")
	}
	if _, err := ParseCount("two"); err == nil {
		t.Fatalf("non-numeric count must be rejected")
	}
	if _, err := ParseCount(""); err == nil {
		t.Fatalf("empty count must be rejected")
	}
}

func TestIsYes(t *testing.T) {
	for _, s := range []string{"yes", "YES", " Yes "} {
		if !IsYes(s) {
			t.Fatalf("IsYes(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"no", "y", "yeah", ""} {
		if IsYes(s) {
			t.Fatalf("IsYes(%q) = true, want false", s)
		}
	}
}
