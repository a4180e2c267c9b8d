package networth

import (
	"slices"
	"testing"
)

func TestLedger_AppendKeepsChronologicalOrder(t *testing.T) {
	l := NewLedger()
	l.Append(
		NewEntry(mar(1), "A", 3, 0),
		NewEntry(jan(1), "A", 1, 0),
		NewEntry(feb(1), "A", 2, 0),
	)

	var got []Date
	for _, e := range l.All() {
		got = append(got, e.Date())
	}
	want := []Date{jan(1), feb(1), mar(1)}
	if !slices.Equal(got, want) {
		t.Errorf("dates = %v, want %v", got, want)
	}
}

func TestLedger_StableWithinDay(t *testing.T) {
	l := NewLedger()
	l.Append(NewEntry(jan(1), "first", 1, 0))
	l.Append(NewEntry(jan(1), "second", 2, 0))

	entries := l.Entries()
	if entries[0].Platform() != "first" || entries[1].Platform() != "second" {
		t.Errorf("same-day order not preserved: %v, %v", entries[0], entries[1])
	}
}

func TestLedger_On(t *testing.T) {
	l := NewLedger()
	l.Append(
		NewEntry(jan(1), "A", 1, 0),
		NewEntry(feb(1), "A", 2, 0),
		NewEntry(feb(1), "B", 3, 0),
		NewEntry(mar(1), "A", 4, 0),
	)
	if got := l.On(feb(1)); len(got) != 2 {
		t.Errorf("On(%v) = %d entries, want 2", feb(1), len(got))
	}
	if got := l.On(feb(2)); len(got) != 0 {
		t.Errorf("On(%v) = %d entries, want 0", feb(2), len(got))
	}
}

func TestLedger_Dates(t *testing.T) {
	l := NewLedger()
	l.Append(
		NewEntry(jan(1), "A", 1, 0),
		NewEntry(feb(1), "A", 2, 0),
		NewEntry(feb(1), "B", 3, 0),
	)
	got := l.Dates()
	want := []Date{feb(1), jan(1)}
	if !slices.Equal(got, want) {
		t.Errorf("Dates() = %v, want %v", got, want)
	}
}

func TestLedger_Platforms(t *testing.T) {
	l := NewLedger()
	l.Append(
		NewEntry(jan(1), "Zeta", 1, 0),
		NewEntry(jan(1), "Alpha", 2, 0),
		NewEntry(feb(1), "Zeta", 3, 0),
	)
	got := slices.Collect(l.Platforms())
	want := []string{"Alpha", "Zeta"}
	if !slices.Equal(got, want) {
		t.Errorf("Platforms() = %v, want %v", got, want)
	}
}

func TestLedger_Tags(t *testing.T) {
	l := NewLedger()
	l.SetTag("Broker", "investments")
	if got := l.Tag("Broker"); got != "investments" {
		t.Errorf("Tag() = %q, want %q", got, "investments")
	}
	l.SetTag("Broker", "")
	if got := l.Tag("Broker"); got != "" {
		t.Errorf("Tag() after clear = %q, want empty", got)
	}
}

func TestLedger_Filter(t *testing.T) {
	l := NewLedger()
	l.Append(
		NewEntry(jan(1), "A", 1, 0),
		NewEntry(feb(1), "B", 2, 0),
		NewEntry(mar(1), "A", 3, 0),
	)
	got := l.Filter(ByPlatform("A"))
	if len(got) != 2 {
		t.Fatalf("Filter(ByPlatform) = %d entries, want 2", len(got))
	}
	if got[0].Date() != jan(1) || got[1].Date() != mar(1) {
		t.Errorf("filtered order = %v, %v", got[0].Date(), got[1].Date())
	}
}

func TestLedger_BoundaryDates(t *testing.T) {
	l := NewLedger()
	if !l.OldestEntryDate().IsZero() || !l.NewestEntryDate().IsZero() {
		t.Errorf("empty ledger boundary dates should be zero")
	}
	l.Append(NewEntry(feb(1), "A", 1, 0), NewEntry(jan(1), "A", 1, 0))
	if l.OldestEntryDate() != jan(1) || l.NewestEntryDate() != feb(1) {
		t.Errorf("boundary dates = %v/%v, want %v/%v", l.OldestEntryDate(), l.NewestEntryDate(), jan(1), feb(1))
	}
}
