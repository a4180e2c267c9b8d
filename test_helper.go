package networth

import (
	"math"
	"testing"
	"time"
)

// helpers shared by the package tests.

func jan(day int) Date { return NewDate(2024, time.January, day) }
func feb(day int) Date { return NewDate(2024, time.February, day) }
func mar(day int) Date { return NewDate(2024, time.March, day) }

// approx fails the test unless got is within tolerance of want.
func approx(t *testing.T, name string, got, want, tolerance float64) {
	t.Helper()
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("%s = %v, want a finite number", name, got)
	}
	if math.Abs(got-want) > tolerance {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}
