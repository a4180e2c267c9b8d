package networth

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ConfidenceLevel annotates how much a performance figure can be trusted,
// so callers can caveat the numbers.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// Methodology tags which calculation path produced a performance report.
type Methodology string

const (
	// MethodTimeWeighted is the contribution-adjusted path over enhanced data.
	MethodTimeWeighted Methodology = "time_weighted"
	// MethodHybrid mixes the time-weighted path for the contribution-bearing
	// subset with the simple path for the rest.
	MethodHybrid Methodology = "hybrid"
	// MethodSimple is the raw-value path: no cash-flow separation possible.
	MethodSimple Methodology = "simple"
	// MethodInsufficient marks a history too short to compute anything.
	MethodInsufficient Methodology = "insufficient_data"
)

// PerformanceMetrics are the headline return figures, all scaled ×100.
type PerformanceMetrics struct {
	TimeWeightedReturn  Percent
	MoneyWeightedReturn Percent // simplified approximation, not a true IRR
	CAGR                Percent
	TotalReturn         Percent
	Volatility          Percent // annualized
}

// PerformanceReport is a PerformanceMetrics with its data-quality annotation.
type PerformanceReport struct {
	PerformanceMetrics
	Confidence  ConfidenceLevel
	Methodology Methodology
}

// NewPerformance computes the performance report for a full entry history.
//
// The method is selected by the fraction of contribution-bearing entries:
// above 0.8 the contribution-adjusted path runs on the whole series; between
// 0.3 and 0.8 the two paths are combined; at or below 0.3 time-weighted
// figures are deliberately zero, because without cash-flow separation they
// would be misleading. These cut points intentionally mirror, but are not
// shared with, the classifier in quality.go (see Classify): the classifier
// counts any enhancement signal, this ratio counts contribution-bearing
// entries specifically.
func NewPerformance(entries []Entry) *PerformanceReport {
	points := BuildSeries(entries)
	if len(entries) < 2 || len(points) < 2 {
		return &PerformanceReport{
			Confidence:  ConfidenceLow,
			Methodology: MethodInsufficient,
		}
	}

	ratio := contributionRatio(entries)
	switch {
	case ratio > enhancedThreshold:
		return &PerformanceReport{
			PerformanceMetrics: enhancedMetrics(points),
			Confidence:         ConfidenceHigh,
			Methodology:        MethodTimeWeighted,
		}
	case ratio > mixedThreshold:
		return hybridReport(entries, points)
	default:
		return &PerformanceReport{
			PerformanceMetrics: legacyMetrics(points),
			Confidence:         ConfidenceLow,
			Methodology:        MethodSimple,
		}
	}
}

// contributionRatio is the fraction of entries carrying contribution data
// (an amount or a contribution transaction type). Unlike Entry.Enhanced it
// ignores the bare quality hint: a hint alone brings no cash-flow numbers.
func contributionRatio(entries []Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	n := 0
	for _, e := range entries {
		if _, ok := e.Contribution(); ok || e.TransactionType() == Contribution {
			n++
		}
	}
	return float64(n) / float64(len(entries))
}

// enhancedMetrics computes the full metric set from a series whose
// contributions are known (missing ones count as zero).
func enhancedMetrics(points []SeriesPoint) PerformanceMetrics {
	m := PerformanceMetrics{
		TimeWeightedReturn: chainedTWR(points),
		TotalReturn:        totalReturn(points),
		CAGR:               cagr(points),
		Volatility:         annualizedVolatility(points),
	}

	// Simplified money-weighted return: gain over total contributions.
	// Not a true IRR; accuracy degrades with irregular contribution timing.
	var contributions float64
	for _, p := range points {
		contributions += p.Contributions
	}
	if contributions > 0 {
		gain := points[len(points)-1].Value - points[0].Value
		m.MoneyWeightedReturn = Percent(gain / contributions * 100)
	}
	return m
}

// legacyMetrics computes what raw values can support. Time-weighted and
// money-weighted returns need cash-flow separation, and a CAGR over raw
// values would count deposits as growth: all three stay zero rather than
// showing a misleading figure.
func legacyMetrics(points []SeriesPoint) PerformanceMetrics {
	return PerformanceMetrics{
		TotalReturn: totalReturn(points),
		Volatility:  annualizedVolatility(points),
	}
}

// hybridReport applies the enhanced method to the contribution-bearing
// subset and reports best-effort combined figures: the headline numbers come
// from the full series (unknown contributions count as zero), the
// money-weighted return only from the subset that can support it.
func hybridReport(entries []Entry, points []SeriesPoint) *PerformanceReport {
	var enhanced []Entry
	for _, e := range entries {
		if _, ok := e.Contribution(); ok || e.TransactionType() == Contribution {
			enhanced = append(enhanced, e)
		}
	}

	report := &PerformanceReport{
		PerformanceMetrics: enhancedMetrics(points),
		Confidence:         ConfidenceMedium,
		Methodology:        MethodHybrid,
	}

	report.MoneyWeightedReturn = 0
	if sub := BuildSeries(enhanced); len(sub) >= 2 {
		report.MoneyWeightedReturn = enhancedMetrics(sub).MoneyWeightedReturn
	}
	return report
}

// twrPeriodReturns derives the contribution-adjusted period returns of a
// series, as 0-1 fractions: each period's start value is grown by that
// period's contributions before dividing, so injected cash never registers
// as gain. Unusable periods (non-positive adjusted start) return 0.
func twrPeriodReturns(points []SeriesPoint) []float64 {
	if len(points) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		adjustedStart := points[i-1].Value + points[i].Contributions
		if adjustedStart <= 0 {
			returns = append(returns, 0)
			continue
		}
		returns = append(returns, points[i].Value/adjustedStart-1)
	}
	return returns
}

// chainedTWR geometrically links the period returns, ×100.
func chainedTWR(points []SeriesPoint) Percent {
	returns := twrPeriodReturns(points)
	if len(returns) == 0 {
		return 0
	}
	cumulative := 1.0
	for _, r := range returns {
		cumulative *= 1 + r
	}
	return Percent((cumulative - 1) * 100)
}

// totalReturn is the simple end-over-start change, ×100.
func totalReturn(points []SeriesPoint) Percent {
	start := points[0].Value
	if start == 0 {
		return 0
	}
	end := points[len(points)-1].Value
	return Percent((end - start) / start * 100)
}

// cagr is the compound annual growth rate between the first and last points,
// ×100. Zero when the span or the start value cannot support it.
func cagr(points []SeriesPoint) Percent {
	start := points[0].Value
	end := points[len(points)-1].Value
	days := points[0].Date.DaysBetween(points[len(points)-1].Date)
	if days <= 0 || start <= 0 || end <= 0 {
		return 0
	}
	return Percent((math.Pow(end/start, 365.25/float64(days)) - 1) * 100)
}

// annualizedVolatility is the sample standard deviation of period-over-period
// value changes, annualized by the detected sampling frequency, ×100.
func annualizedVolatility(points []SeriesPoint) Percent {
	if len(points) < 3 {
		// a single period return has no deviation
		return 0
	}
	returns := make([]float64, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		prev := points[i-1].Value
		if prev == 0 {
			continue
		}
		returns = append(returns, (points[i].Value-prev)/prev)
	}
	if len(returns) < 2 {
		return 0
	}
	sd := stat.StdDev(returns, nil)
	return Percent(sd * math.Sqrt(periodsPerYear(points)) * 100)
}
