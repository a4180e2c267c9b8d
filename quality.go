package networth

import (
	"fmt"
	"sort"
)

// DataQuality classifies an entry history by how much contribution data it
// carries. The classification gates which downstream metrics are computed:
// time-weighted figures and investment risk metrics need Enhanced data.
type DataQuality int

const (
	// SnapshotOnly histories carry balances but (almost) no cash-flow data.
	SnapshotOnly DataQuality = iota
	// Mixed histories carry contribution data for some entries only.
	Mixed
	// Enhanced histories carry contribution data for most entries.
	Enhanced
)

// Classification thresholds over the enhanced-entry ratio.
const (
	enhancedThreshold = 0.8
	mixedThreshold    = 0.3
)

func (q DataQuality) String() string {
	switch q {
	case Enhanced:
		return "enhanced"
	case Mixed:
		return "mixed"
	case SnapshotOnly:
		return "snapshot_only"
	default:
		return "unknown"
	}
}

// ParseDataQuality parses a string into a DataQuality.
func ParseDataQuality(s string) (DataQuality, error) {
	switch s {
	case "enhanced":
		return Enhanced, nil
	case "mixed":
		return Mixed, nil
	case "snapshot_only":
		return SnapshotOnly, nil
	default:
		return SnapshotOnly, fmt.Errorf("unknown data quality: %q", s)
	}
}

// QualityReport is the classification of a full entry history. It is computed
// once per history and passed along, so every report gates on the same answer.
type QualityReport struct {
	Quality             DataQuality
	TotalEntries        int
	EnhancedEntries     int
	SnapshotOnlyEntries int
	CoveragePeriod      string // "Jan 2024 to Mar 2025", or a single month
}

// Classify inspects a full entry history and classifies it as Enhanced,
// Mixed, or SnapshotOnly from the fraction of entries carrying the
// enhancement signal. An empty history is SnapshotOnly with zero counts.
func Classify(entries []Entry) QualityReport {
	report := QualityReport{Quality: SnapshotOnly}
	if len(entries) == 0 {
		return report
	}

	for _, e := range entries {
		if e.Enhanced() {
			report.EnhancedEntries++
		} else {
			report.SnapshotOnlyEntries++
		}
	}
	report.TotalEntries = len(entries)

	ratio := float64(report.EnhancedEntries) / float64(report.TotalEntries)
	switch {
	case ratio >= enhancedThreshold:
		report.Quality = Enhanced
	case ratio >= mixedThreshold:
		report.Quality = Mixed
	}

	report.CoveragePeriod = coveragePeriod(entries)
	return report
}

// coveragePeriod renders the date span of a history as a human string.
func coveragePeriod(entries []Entry) string {
	dates := make([]Date, 0, len(entries))
	for _, e := range entries {
		dates = append(dates, e.Date())
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	start := dates[0].MonthYear()
	end := dates[len(dates)-1].MonthYear()
	if start == end {
		return start
	}
	return start + " to " + end
}
