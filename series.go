package networth

import "sort"

// This file holds the time-series utilities everything else builds on:
// partitioning entries, totalling snapshots, locating comparison snapshots,
// and detecting the sampling frequency of a history.

// Comparison selects how a previous snapshot is located relative to the
// current one.
type Comparison int

const (
	// PreviousEntry compares against the snapshot immediately older than the
	// current one.
	PreviousEntry Comparison = iota
	// MonthOverMonth compares against the snapshot closest to one month ago.
	MonthOverMonth
	// YearOverYear compares against the snapshot closest to one year ago.
	YearOverYear
	// YearToDate compares against the earliest snapshot of the current
	// calendar year.
	YearToDate
)

func (c Comparison) String() string {
	switch c {
	case PreviousEntry:
		return "prev"
	case MonthOverMonth:
		return "mom"
	case YearOverYear:
		return "yoy"
	case YearToDate:
		return "ytd"
	default:
		return "unknown"
	}
}

// ParseComparison parses a string into a Comparison.
func ParseComparison(s string) (Comparison, bool) {
	switch s {
	case "prev", "":
		return PreviousEntry, true
	case "mom":
		return MonthOverMonth, true
	case "yoy":
		return YearOverYear, true
	case "ytd":
		return YearToDate, true
	default:
		return PreviousEntry, false
	}
}

// GroupByDate partitions entries by date. Within a group the input order
// is preserved.
func GroupByDate(entries []Entry) map[Date][]Entry {
	byDate := make(map[Date][]Entry)
	for _, e := range entries {
		byDate[e.Date()] = append(byDate[e.Date()], e)
	}
	return byDate
}

// GroupByPlatform partitions entries by platform. Within a group the input
// order is preserved.
func GroupByPlatform(entries []Entry) map[string][]Entry {
	byPlatform := make(map[string][]Entry)
	for _, e := range entries {
		byPlatform[e.Platform()] = append(byPlatform[e.Platform()], e)
	}
	return byPlatform
}

// TotalForDate sums the amounts of a snapshot. Empty input totals 0.
func TotalForDate(entries []Entry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Amount()
	}
	return total
}

// SortedDatesDesc returns the keys of a by-date partition, newest first.
func SortedDatesDesc(byDate map[Date][]Entry) []Date {
	dates := make([]Date, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
	return dates
}

// PreviousSnapshot returns the snapshot immediately older than current.
// dates must be sorted newest first. If current is the newest date the
// second-newest is used; if it is the oldest or unknown, any strictly older
// date is searched for; with none, the result is empty.
func PreviousSnapshot(current Date, dates []Date, byDate map[Date][]Entry) []Entry {
	for i, d := range dates {
		if d == current {
			if i+1 < len(dates) {
				return byDate[dates[i+1]]
			}
			break
		}
	}
	// current not found in the list (or found last): fall back to the first
	// strictly older date.
	for _, d := range dates {
		if d.Before(current) {
			return byDate[d]
		}
	}
	return []Entry{}
}

// HistoricalSnapshot returns the snapshot closest to the naive target date
// (current minus one month or one year). This is an approximation by design:
// "a month ago" means the nearest available snapshot, not exactly 30 days.
// Ties are broken by first-encountered in the newest-first date list.
func HistoricalSnapshot(current Date, c Comparison, dates []Date, byDate map[Date][]Entry) []Entry {
	var target Date
	switch c {
	case MonthOverMonth:
		target = current.AddMonth(-1)
	case YearOverYear:
		target = current.AddYear(-1)
	case YearToDate:
		return YearStartSnapshot(current, dates, byDate)
	default:
		return PreviousSnapshot(current, dates, byDate)
	}

	// With one or two distinct dates there is nothing to search: use whatever
	// exists rather than returning empty.
	if len(dates) == 1 {
		return byDate[dates[0]]
	}
	if len(dates) == 2 {
		if dates[0] == current {
			return byDate[dates[1]]
		}
		return byDate[dates[0]]
	}

	best := -1
	bestDist := 0
	for i, d := range dates {
		if d == current {
			continue
		}
		dist := target.AbsDaysBetween(d)
		if best == -1 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best >= 0 {
		return byDate[dates[best]]
	}

	// Nothing found by distance (every date equals current): fall back to the
	// date adjacent to current in the sorted list.
	return adjacentSnapshot(current, dates, byDate)
}

// YearStartSnapshot returns the earliest snapshot within the same calendar
// year as current, scanning from current toward older dates and stopping at
// the first year boundary crossed. When no same-year snapshot exists it
// falls back to the date adjacent to current.
func YearStartSnapshot(current Date, dates []Date, byDate map[Date][]Entry) []Entry {
	var yearStart Date
	found := false
	for _, d := range dates {
		if d.After(current) {
			continue
		}
		if d.Year() != current.Year() {
			break // crossed into the previous year
		}
		yearStart = d
		found = true
	}
	if found && yearStart != current {
		return byDate[yearStart]
	}
	if found && len(dates) == 1 {
		return byDate[yearStart]
	}
	return adjacentSnapshot(current, dates, byDate)
}

// adjacentSnapshot returns the snapshot at the date next to current in the
// newest-first list: the older neighbor when it exists, otherwise the newer.
func adjacentSnapshot(current Date, dates []Date, byDate map[Date][]Entry) []Entry {
	for i, d := range dates {
		if d == current {
			if i+1 < len(dates) {
				return byDate[dates[i+1]]
			}
			if i > 0 {
				return byDate[dates[i-1]]
			}
			return byDate[d]
		}
	}
	if len(dates) > 0 {
		return byDate[dates[0]]
	}
	return []Entry{}
}

// SeriesPoint is one aggregated value per date, summed across the platforms
// present that day, with the summed contribution when any entry carried one.
type SeriesPoint struct {
	Date             Date
	Value            float64
	Contributions    float64
	HasContributions bool
}

// BuildSeries aggregates entries into one SeriesPoint per distinct date,
// oldest first.
func BuildSeries(entries []Entry) []SeriesPoint {
	byDate := GroupByDate(entries)
	dates := SortedDatesDesc(byDate)
	points := make([]SeriesPoint, 0, len(dates))
	for i := len(dates) - 1; i >= 0; i-- {
		d := dates[i]
		p := SeriesPoint{Date: d, Value: TotalForDate(byDate[d])}
		for _, e := range byDate[d] {
			if c, ok := e.Contribution(); ok {
				p.Contributions += c
				p.HasContributions = true
			}
		}
		points = append(points, p)
	}
	return points
}

// meanDaysBetween returns the average number of calendar days between
// consecutive series points, or 0 with fewer than 2 points.
func meanDaysBetween(points []SeriesPoint) float64 {
	if len(points) < 2 {
		return 0
	}
	days := points[0].Date.DaysBetween(points[len(points)-1].Date)
	return float64(days) / float64(len(points)-1)
}

// periodsPerYear detects the sampling frequency of a series: 365 divided by
// the mean gap between observations. Both the performance and risk engines
// annualize through this single function so they always agree.
func periodsPerYear(points []SeriesPoint) float64 {
	mean := meanDaysBetween(points)
	if mean <= 0 {
		return 0
	}
	return 365.0 / mean
}
