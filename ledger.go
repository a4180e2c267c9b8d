package networth

import (
	"iter"
	"maps"
	"slices"
	"sort"
)

// Ledger represents the full entry history of the tracker, plus the
// user-assigned platform tags used for display grouping.
//
// In a Ledger entries are always in chronological order.
type Ledger struct {
	entries []Entry
	tags    map[string]string // platform name -> display tag
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		entries: make([]Entry, 0),
		tags:    make(map[string]string),
	}
}

// Append appends entries to this ledger and maintains the chronological order.
func (l *Ledger) Append(entries ...Entry) {
	l.entries = append(l.entries, entries...)
	l.stableSort()
}

// stableSort sorts the ledger by entry date. The sort is stable, meaning
// entries on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].Date().Before(l.entries[j].Date())
	})
}

// Len returns the number of entries in the ledger.
func (l *Ledger) Len() int { return len(l.entries) }

// Entries returns a copy of all entries in chronological order.
// The engine borrows this slice read-only; callers own the copy.
func (l *Ledger) Entries() []Entry {
	return slices.Clone(l.entries)
}

// All returns an iterator over entries in chronological order.
func (l *Ledger) All() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, e := range l.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// On returns all entries recorded on the given date: the snapshot for that day.
func (l *Ledger) On(d Date) []Entry {
	var snapshot []Entry
	for _, e := range l.entries {
		if e.Date() == d {
			snapshot = append(snapshot, e)
		}
		if e.Date().After(d) {
			// The ledger is sorted by date, so it's safe to break.
			break
		}
	}
	return snapshot
}

// Dates returns the distinct entry dates, newest first. This is the order the
// snapshot-location helpers in series.go expect.
func (l *Ledger) Dates() []Date {
	seen := make(map[Date]struct{})
	var dates []Date
	for _, e := range l.entries {
		if _, ok := seen[e.Date()]; !ok {
			seen[e.Date()] = struct{}{}
			dates = append(dates, e.Date())
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
	return dates
}

// Platforms iterates over all platform names that appear in the ledger,
// in alphabetical order.
func (l *Ledger) Platforms() iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{})
		for _, e := range l.entries {
			seen[e.Platform()] = struct{}{}
		}
		names := slices.Collect(maps.Keys(seen))
		slices.Sort(names)
		for _, name := range names {
			if !yield(name) {
				return
			}
		}
	}
}

// OldestEntryDate returns the date of the earliest entry in the ledger,
// or the zero Date if the ledger is empty.
func (l *Ledger) OldestEntryDate() Date {
	if len(l.entries) == 0 {
		return Date{}
	}
	return l.entries[0].Date()
}

// NewestEntryDate returns the date of the latest entry in the ledger,
// or the zero Date if the ledger is empty.
func (l *Ledger) NewestEntryDate() Date {
	if len(l.entries) == 0 {
		return Date{}
	}
	return l.entries[len(l.entries)-1].Date()
}

// SetTag assigns a display tag to a platform. Tags group platforms in
// rendered reports and have no effect on any calculation.
func (l *Ledger) SetTag(platform, tag string) {
	if tag == "" {
		delete(l.tags, platform)
		return
	}
	l.tags[platform] = tag
}

// Tag returns the display tag assigned to a platform, or "" if none.
func (l *Ledger) Tag(platform string) string { return l.tags[platform] }

// Tags returns a copy of the platform tag mapping.
func (l *Ledger) Tags() map[string]string { return maps.Clone(l.tags) }

// ByPlatform returns a predicate that filters entries by platform name.
func ByPlatform(platform string) func(Entry) bool {
	return func(e Entry) bool { return e.Platform() == platform }
}

// Filter returns the entries accepted by any of the given predicates,
// preserving chronological order.
func (l *Ledger) Filter(predicates ...func(Entry) bool) []Entry {
	var out []Entry
	for _, e := range l.entries {
		for _, p := range predicates {
			if p(e) {
				out = append(out, e)
				break
			}
		}
	}
	return out
}
