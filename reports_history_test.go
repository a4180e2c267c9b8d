package networth

import "testing"

func TestNewHistory(t *testing.T) {
	entries := []Entry{
		NewEntry(jan(1), "A", 500, 0),
		NewEntry(jan(1), "B", 500, 0),
		NewContribution(feb(1), "A", 1300, 0, 100),
	}
	h := NewHistory(entries)
	if len(h.Points) != 2 {
		t.Fatalf("len(Points) = %d, want 2", len(h.Points))
	}

	first := h.Points[0]
	if first.Value != 1000 || first.Change != 0 || first.PercentChange != 0 {
		t.Errorf("first point = %+v, want value 1000 and no change", first)
	}

	second := h.Points[1]
	approx(t, "Change", second.Change, 300, 1e-9)
	approx(t, "PercentChange", float64(second.PercentChange), 30, 1e-9)
	if !second.HasContributions || second.Contributions != 100 {
		t.Errorf("second point contributions = %v,%v, want 100,true", second.Contributions, second.HasContributions)
	}

	latest, ok := h.Latest()
	if !ok || latest.Date != feb(1) {
		t.Errorf("Latest() = %+v,%v, want the February point", latest, ok)
	}
}

func TestNewHistory_Empty(t *testing.T) {
	h := NewHistory(nil)
	if len(h.Points) != 0 {
		t.Errorf("len(Points) = %d, want 0", len(h.Points))
	}
	if _, ok := h.Latest(); ok {
		t.Error("Latest() on empty history should report false")
	}
}
