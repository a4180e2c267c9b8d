package networth

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2025, 7, 31)
	d2 := NewDate(2025, 7, 31)

	if d1.time() != d2.time() {
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParseDate(t *testing.T) {
	today := Today()
	currentYear := today.Year()
	currentMonth := today.Month()

	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		// Standard ISO Format (Fallback)
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},

		// Relative Duration Format
		{"-1d", today.Add(-1), false},
		{"+1d", today.Add(1), false},
		{"1d", Date{}, true},
		{"-0d", today, false},
		{"+0d", today, false},
		{"-2w", today.Add(-14), false},
		{"+1m", today.AddMonth(1), false},
		{"-1m", today.AddMonth(-1), false},
		{"+1y", today.AddYear(1), false},
		{"-1y", today.AddYear(-1), false},

		// [MM-]DD Format
		{"27", NewDate(currentYear, currentMonth, 27), false},
		{fmt.Sprintf("%d-27", currentMonth), NewDate(currentYear, currentMonth, 27), false},
		{"0", NewDate(currentYear, currentMonth, 0), false}, // Last day of previous month
		{"1-15", NewDate(currentYear, time.January, 15), false},
		{"0-15", NewDate(currentYear-1, time.December, 15), false},
		{"1-0", NewDate(currentYear-1, time.December, 31), false}, // Last day of previous year
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

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		from, to Date
		want     int
	}{
		{jan(1), jan(31), 30},
		{jan(31), jan(1), -30},
		{jan(1), feb(1), 31},
		{jan(1), jan(1), 0},
		{NewDate(2024, time.January, 1), NewDate(2025, time.January, 1), 366}, // leap year
	}
	for _, tt := range tests {
		if got := tt.from.DaysBetween(tt.to); got != tt.want {
			t.Errorf("DaysBetween(%v, %v) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
	if got := jan(31).AbsDaysBetween(jan(1)); got != 30 {
		t.Errorf("AbsDaysBetween = %d, want 30", got)
	}
}

func TestAddMonthNormalizes(t *testing.T) {
	// Dec + 1 month crosses the year boundary.
	if got, want := NewDate(2024, time.December, 15).AddMonth(1), NewDate(2025, time.January, 15); got != want {
		t.Errorf("AddMonth(1) = %v, want %v", got, want)
	}
	if got, want := NewDate(2024, time.January, 15).AddMonth(-1), NewDate(2023, time.December, 15); got != want {
		t.Errorf("AddMonth(-1) = %v, want %v", got, want)
	}
}

func TestMonthYear(t *testing.T) {
	if got, want := jan(15).MonthYear(), "Jan 2024"; got != want {
		t.Errorf("MonthYear() = %q, want %q", got, want)
	}
}

func TestDate_JSON(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected Date
		wantErr  bool
	}{
		{"iso", `"2024-01-15"`, NewDate(2024, time.January, 15), false},
		{"lenient", `"2024-1-5"`, NewDate(2024, time.January, 5), false},
		{"empty is zero", `""`, Date{}, false},
		{"garbage", `"not-a-date"`, Date{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Date
			err := json.Unmarshal([]byte(tt.json), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.json, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.expected {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.json, got, tt.expected)
			}
		})
	}

	t.Run("round trip", func(t *testing.T) {
		d := NewDate(2024, time.March, 3)
		data, err := json.Marshal(d)
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if want := `"2024-03-03"`; string(data) != want {
			t.Errorf("Marshal() = %s, want %s", data, want)
		}
		var back Date
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if back != d {
			t.Errorf("round trip = %v, want %v", back, d)
		}
	})

	t.Run("zero marshals to empty", func(t *testing.T) {
		data, err := json.Marshal(Date{})
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if want := `""`; string(data) != want {
			t.Errorf("Marshal(zero) = %s, want %s", data, want)
		}
	})
}
