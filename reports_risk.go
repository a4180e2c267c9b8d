package networth

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Annualized risk-free rate assumed for Sharpe and Sortino ratios, and its
// conversion to a per-period (roughly monthly) rate.
const (
	riskFreeRate       = 0.03
	periodRiskFreeRate = riskFreeRate / (365.0 / 30.0)
)

// Single-period returns larger than this magnitude are treated as data errors
// (a typo in an amount, a missed decimal point) and excluded from risk
// statistics.
const outlierReturnThreshold = 2.0

// RiskReport combines a diversification analysis, which any history can
// support, with investment risk metrics, which only contribution-tracked
// (Enhanced) histories can support.
//
// Investment is nil whenever the history is not Enhanced. Callers must render
// that as unavailable, never as zero: a zero volatility is a claim, not an
// absence.
type RiskReport struct {
	Quality         QualityReport
	Diversification Diversification
	Investment      *InvestmentRisk
	Limitations     []string
	Improvements    []string
}

// Diversification describes how the portfolio is spread across platforms.
type Diversification struct {
	PlatformCount         int
	ConcentrationRisk     float64 // Herfindahl index over platform weights
	LargestPlatformWeight float64
	Score                 float64 // composite 0-100, higher is better
}

// InvestmentRisk holds the statistics derived from contribution-adjusted
// period returns. All Percent fields are scaled ×100.
type InvestmentRisk struct {
	AnnualizedVolatility Percent
	DownsideDeviation    Percent
	MaxDrawdown          Percent
	MaxDrawdownDays      int
	CurrentDrawdown      Percent
	ValueAtRisk95        Percent
	ValueAtRisk99        Percent
	SharpeRatio          float64
	SortinoRatio         float64
}

// NewRisk analyzes the risk profile of a full entry history.
func NewRisk(entries []Entry) *RiskReport {
	r := &RiskReport{
		Quality:         Classify(entries),
		Diversification: diversification(entries),
	}
	if r.Quality.Quality == Enhanced {
		r.Investment = investmentRisk(BuildSeries(entries))
	}
	r.Limitations, r.Improvements = riskNotes(r.Quality)
	return r
}

// diversification computes platform weights from total absolute exposure and
// scores the spread. The score rewards platform count (8 points each, capped
// at 40), penalizes holding more than half the portfolio on one platform, and
// rewards balance toward equal weighting; it is clamped to [0, 100].
func diversification(entries []Entry) Diversification {
	exposure := make(map[string]float64)
	var total float64
	for _, e := range entries {
		a := math.Abs(e.Amount())
		exposure[e.Platform()] += a
		total += a
	}

	d := Diversification{PlatformCount: len(exposure)}
	if total == 0 || len(exposure) == 0 {
		return d
	}

	n := float64(len(exposure))
	var balancePenalty float64
	for _, x := range exposure {
		w := x / total
		d.ConcentrationRisk += w * w
		if w > d.LargestPlatformWeight {
			d.LargestPlatformWeight = w
		}
		balancePenalty += (w - 1/n) * (w - 1/n)
	}

	score := math.Min(40, n*8)
	if d.LargestPlatformWeight > 0.5 {
		score -= (d.LargestPlatformWeight - 0.5) * 60
	}
	score += math.Max(0, 10-100*balancePenalty)
	d.Score = math.Min(100, math.Max(0, score))
	return d
}

// investmentRisk derives risk statistics from the contribution-adjusted
// period returns of a series. The result is always defined for an Enhanced
// history: statistics the series is too short to support stay zero instead
// of turning into NaN, and only the outlier filter shrinks the return set.
func investmentRisk(points []SeriesPoint) *InvestmentRisk {
	raw := twrPeriodReturns(points)
	returns := make([]float64, 0, len(raw))
	for _, r := range raw {
		if math.Abs(r) > outlierReturnThreshold {
			continue
		}
		returns = append(returns, r)
	}

	ir := &InvestmentRisk{}

	maxDD, currentDD, ddDays := drawdowns(points)
	ir.MaxDrawdown = Percent(maxDD * 100)
	ir.CurrentDrawdown = Percent(currentDD * 100)
	ir.MaxDrawdownDays = ddDays

	if len(returns) == 0 {
		return ir
	}

	ir.ValueAtRisk95 = Percent(valueAtRisk(returns, 0.95) * 100)
	ir.ValueAtRisk99 = Percent(valueAtRisk(returns, 0.99) * 100)

	// The deviation-based statistics need at least two returns.
	if len(returns) < 2 {
		return ir
	}

	ppy := periodsPerYear(points)

	sd := stat.StdDev(returns, nil)
	ir.AnnualizedVolatility = Percent(sd * math.Sqrt(ppy) * 100)

	var negatives []float64
	for _, r := range returns {
		if r < 0 {
			negatives = append(negatives, r)
		}
	}
	var downSD float64
	if len(negatives) >= 2 {
		downSD = stat.StdDev(negatives, nil)
		ir.DownsideDeviation = Percent(downSD * math.Sqrt(ppy) * 100)
	}

	mean := stat.Mean(returns, nil)
	if sd > 0 {
		ir.SharpeRatio = (mean - periodRiskFreeRate) / sd
	}
	if downSD > 0 {
		ir.SortinoRatio = (mean - periodRiskFreeRate) / downSD
	}
	return ir
}

// drawdowns walks the value series tracking the running peak. It returns the
// deepest peak-to-trough fractional decline, the decline from the all-time
// peak to the latest value, and the longest day-span spent below a peak.
func drawdowns(points []SeriesPoint) (maxDD, currentDD float64, maxDays int) {
	if len(points) == 0 {
		return 0, 0, 0
	}
	peak := points[0].Value
	peakDate := points[0].Date
	for _, p := range points {
		if p.Value >= peak {
			peak = p.Value
			peakDate = p.Date
			continue
		}
		if peak > 0 {
			dd := (peak - p.Value) / peak
			if dd > maxDD {
				maxDD = dd
			}
		}
		if days := peakDate.DaysBetween(p.Date); days > maxDays {
			maxDays = days
		}
	}
	last := points[len(points)-1].Value
	if peak > 0 && last < peak {
		currentDD = (peak - last) / peak
	}
	return maxDD, currentDD, maxDays
}

// valueAtRisk is the historical-percentile VaR: the magnitude of the return
// at the (1-confidence) percentile of the ascending-sorted period returns.
func valueAtRisk(returns []float64, confidence float64) float64 {
	sorted := make([]float64, len(returns))
	copy(sorted, returns)
	sort.Float64s(sorted)

	idx := int(math.Floor((1 - confidence) * float64(len(sorted))))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return math.Abs(sorted[idx])
}

// riskNotes lists what the current data quality cannot support and what
// recording habit would unlock it.
func riskNotes(q QualityReport) (limitations, improvements []string) {
	switch q.Quality {
	case Enhanced:
		// nothing structural to flag
	case Mixed:
		limitations = append(limitations,
			"investment risk metrics are locked: only part of the history carries contribution data")
		improvements = append(improvements,
			"record the contribution amount on every update to unlock volatility, drawdown, and value-at-risk")
	default:
		limitations = append(limitations,
			"investment risk metrics are locked: the history carries no contribution data")
		improvements = append(improvements,
			"start recording contribution amounts alongside balances to unlock investment risk metrics")
	}
	if q.TotalEntries < 6 {
		limitations = append(limitations,
			"fewer than 6 entries: every statistic has a large sampling error")
		improvements = append(improvements,
			"keep recording regular snapshots; statistics firm up from around 6 entries")
	}
	return limitations, improvements
}
