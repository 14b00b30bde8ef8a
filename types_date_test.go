package finbook

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2024-01-15", NewDate(2024, time.January, 15), false},
		{"2024-1-5", NewDate(2024, time.January, 5), false},
		{"invalid-date", Date{}, true},
		{"2024-13-40", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDate_String(t *testing.T) {
	d := NewDate(2024, time.January, 5)
	if got := d.String(); got != "2024-01-05" {
		t.Errorf("String() = %q, want %q", got, "2024-01-05")
	}
}

func TestDate_Ordering(t *testing.T) {
	early := NewDate(2024, time.January, 1)
	late := NewDate(2024, time.March, 1)

	if !early.Before(late) {
		t.Errorf("expected %v to be before %v", early, late)
	}
	if !late.After(early) {
		t.Errorf("expected %v to be after %v", late, early)
	}
	if early.Before(early) || early.After(early) {
		t.Errorf("a date must not be before or after itself")
	}
}

func TestDate_Add_Normalizes(t *testing.T) {
	d := NewDate(2024, time.January, 31).Add(1)
	if d != NewDate(2024, time.February, 1) {
		t.Errorf("Add(1) = %v, want 2024-02-01", d)
	}
}
