package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "08:30", "15:04", "23:59"}
	invalid := []string{"24:00", "8:30", "12:60", "12.30", "", "noon"}
	for _, clock := range valid {
		if !IsValidClock(clock) {
			t.Errorf("IsValidClock(%q) = false, want true", clock)
		}
	}
	for _, clock := range invalid {
		if IsValidClock(clock) {
			t.Errorf("IsValidClock(%q) = true, want false", clock)
		}
	}
}

func TestClockMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"01:00", 60},
		{"08:30", 510},
		{"23:59", 1439},
	}
	for _, c := range cases {
		got := ClockMinutes(c.input)
		if got != c.want {
			t.Errorf("ClockMinutes(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2026-01-15"); !ok {
		t.Error("IsValidDate(\"2026-01-15\") = false, want true")
	}
	if _, ok := IsValidDate("15/01/2026"); ok {
		t.Error("IsValidDate(\"15/01/2026\") = true, want false")
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "rate", Message: "must be positive"},
		{Field: "miles", Message: "must be non-negative"},
	}
	m := errs.ToMap()
	if m["rate"] != "must be positive" || m["miles"] != "must be non-negative" {
		t.Errorf("ToMap() = %v", m)
	}
	if errs.Error() != "rate: must be positive; miles: must be non-negative" {
		t.Errorf("Error() = %q", errs.Error())
	}
}
