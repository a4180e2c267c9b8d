package networth

import (
	"math"
	"testing"
)

func TestDiversification_TwoEqualPlatforms(t *testing.T) {
	entries := []Entry{
		NewEntry(jan(1), "A", 500, 0),
		NewEntry(jan(1), "B", 500, 0),
	}
	d := diversification(entries)

	if d.PlatformCount != 2 {
		t.Errorf("PlatformCount = %d, want 2", d.PlatformCount)
	}
	approx(t, "ConcentrationRisk", d.ConcentrationRisk, 0.5, 1e-9)
	approx(t, "LargestPlatformWeight", d.LargestPlatformWeight, 0.5, 1e-9)
	// 2 platforms × 8 = 16, no concentration penalty (weight not > 0.5),
	// full balance bonus of 10 for perfectly equal weights.
	approx(t, "Score", d.Score, 26, 1e-9)
}

func TestDiversification_Concentrated(t *testing.T) {
	entries := []Entry{
		NewEntry(jan(1), "A", 900, 0),
		NewEntry(jan(1), "B", 100, 0),
	}
	d := diversification(entries)
	approx(t, "LargestPlatformWeight", d.LargestPlatformWeight, 0.9, 1e-9)
	// 16 − (0.9−0.5)×60 + max(0, 10−100×(0.4²+0.4²)) = 16 − 24 + 0, clamped at 0
	approx(t, "Score", d.Score, 0, 1e-9)
}

func TestDiversification_Empty(t *testing.T) {
	d := diversification(nil)
	if d.PlatformCount != 0 || d.Score != 0 || d.ConcentrationRisk != 0 {
		t.Errorf("empty diversification = %+v, want zeroed", d)
	}
}

func TestValueAtRisk(t *testing.T) {
	returns := []float64{0.02, -0.1, 0.08, -0.05, 0}

	// ascending sort is [-0.1, -0.05, 0, 0.02, 0.08]; index floor(0.05×5)=0
	approx(t, "VaR95", valueAtRisk(returns, 0.95), 0.1, 1e-9)
	approx(t, "VaR99", valueAtRisk(returns, 0.99), 0.1, 1e-9)
}

func TestNewRisk_GateEnforcement(t *testing.T) {
	t.Run("snapshot only locks investment metrics", func(t *testing.T) {
		entries := []Entry{
			NewEntry(jan(1), "P", 1000, 0),
			NewEntry(feb(1), "P", 1100, 0),
			NewEntry(mar(1), "P", 1050, 0),
		}
		r := NewRisk(entries)
		if r.Quality.Quality != SnapshotOnly {
			t.Fatalf("Quality = %v, want %v", r.Quality.Quality, SnapshotOnly)
		}
		if r.Investment != nil {
			t.Errorf("Investment = %+v, want nil", r.Investment)
		}
		if len(r.Limitations) == 0 || len(r.Improvements) == 0 {
			t.Errorf("expected limitations and improvements for locked metrics")
		}
	})

	t.Run("enhanced unlocks finite investment metrics", func(t *testing.T) {
		entries := []Entry{
			NewContribution(jan(1), "P", 1000, 0, 1000),
			NewContribution(feb(1), "P", 1150, 0, 100),
			NewContribution(mar(1), "P", 1100, 0, 0),
			NewContribution(mar(31), "P", 1250, 0, 100),
		}
		r := NewRisk(entries)
		if r.Quality.Quality != Enhanced {
			t.Fatalf("Quality = %v, want %v", r.Quality.Quality, Enhanced)
		}
		if r.Investment == nil {
			t.Fatal("Investment = nil, want defined")
		}
		for name, v := range map[string]float64{
			"AnnualizedVolatility": float64(r.Investment.AnnualizedVolatility),
			"DownsideDeviation":    float64(r.Investment.DownsideDeviation),
			"MaxDrawdown":          float64(r.Investment.MaxDrawdown),
			"CurrentDrawdown":      float64(r.Investment.CurrentDrawdown),
			"ValueAtRisk95":        float64(r.Investment.ValueAtRisk95),
			"ValueAtRisk99":        float64(r.Investment.ValueAtRisk99),
			"SharpeRatio":          r.Investment.SharpeRatio,
			"SortinoRatio":         r.Investment.SortinoRatio,
		} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("%s = %v, want finite", name, v)
			}
		}
	})

	t.Run("two-point enhanced history stays defined", func(t *testing.T) {
		// The minimum history the gate promises metrics for: two dated points.
		// Only one period return exists, so the deviation-based statistics
		// stay zero, but the result must be defined, not nil.
		entries := []Entry{
			NewContribution(jan(1), "P", 1000, 0, 1000),
			NewContribution(feb(1), "P", 1100, 0, 0),
		}
		r := NewRisk(entries)
		if r.Quality.Quality != Enhanced {
			t.Fatalf("Quality = %v, want %v", r.Quality.Quality, Enhanced)
		}
		if r.Investment == nil {
			t.Fatal("Investment = nil, want defined for an enhanced two-point history")
		}
		// single return 1100/1000−1 = 0.1
		if got, want := r.Investment.ValueAtRisk95, Percent(10); !got.Equal(want) {
			t.Errorf("ValueAtRisk95 = %v, want %v", got, want)
		}
		if got := r.Investment.AnnualizedVolatility; got != 0 {
			t.Errorf("AnnualizedVolatility = %v, want 0 with a single return", got)
		}
		for name, v := range map[string]float64{
			"ValueAtRisk95": float64(r.Investment.ValueAtRisk95),
			"ValueAtRisk99": float64(r.Investment.ValueAtRisk99),
			"SharpeRatio":   r.Investment.SharpeRatio,
			"SortinoRatio":  r.Investment.SortinoRatio,
		} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("%s = %v, want finite", name, v)
			}
		}
	})

	t.Run("outlier filtering cannot lock the metrics", func(t *testing.T) {
		// The middle step is a data error (+300%), filtered from the return
		// set; a single return survives and the metrics stay defined.
		entries := []Entry{
			NewContribution(jan(1), "P", 1000, 0, 1000),
			NewContribution(feb(1), "P", 4000, 0, 0),
			NewContribution(mar(1), "P", 4400, 0, 0),
		}
		r := NewRisk(entries)
		if r.Quality.Quality != Enhanced {
			t.Fatalf("Quality = %v, want %v", r.Quality.Quality, Enhanced)
		}
		if r.Investment == nil {
			t.Fatal("Investment = nil, want defined when outliers shrink the return set")
		}
		// surviving return is 4400/4000−1 = 0.1
		if got, want := r.Investment.ValueAtRisk95, Percent(10); !got.Equal(want) {
			t.Errorf("ValueAtRisk95 = %v, want %v", got, want)
		}
	})
}

func TestDrawdowns(t *testing.T) {
	points := []SeriesPoint{
		{Date: jan(1), Value: 1000},
		{Date: jan(31), Value: 1200}, // peak
		{Date: feb(15), Value: 900},  // 25% below peak
		{Date: mar(1), Value: 1100},  // still 8.33% below
	}
	maxDD, currentDD, days := drawdowns(points)
	approx(t, "maxDD", maxDD, 0.25, 1e-9)
	approx(t, "currentDD", currentDD, (1200.0-1100.0)/1200.0, 1e-9)
	// peak on Jan 31, still below it on Mar 1
	if want := jan(31).DaysBetween(mar(1)); days != want {
		t.Errorf("days = %d, want %d", days, want)
	}
}

func TestDrawdowns_MonotonicSeries(t *testing.T) {
	points := []SeriesPoint{
		{Date: jan(1), Value: 100},
		{Date: feb(1), Value: 200},
		{Date: mar(1), Value: 300},
	}
	maxDD, currentDD, days := drawdowns(points)
	if maxDD != 0 || currentDD != 0 || days != 0 {
		t.Errorf("drawdowns = %v/%v/%d, want 0/0/0", maxDD, currentDD, days)
	}
}

func TestInvestmentRisk_OutlierFiltering(t *testing.T) {
	// The middle step triples the value (+200%+): a likely misplaced decimal,
	// excluded from the statistics.
	points := []SeriesPoint{
		{Date: jan(1), Value: 1000},
		{Date: jan(15), Value: 1050},
		{Date: feb(1), Value: 10500},
		{Date: feb(15), Value: 1100},
		{Date: mar(1), Value: 1080},
	}
	raw := twrPeriodReturns(points)
	kept := 0
	for _, r := range raw {
		if math.Abs(r) <= outlierReturnThreshold {
			kept++
		}
	}
	if kept >= len(raw) {
		t.Fatalf("expected at least one filtered outlier in %v", raw)
	}
	ir := investmentRisk(points)
	if ir == nil {
		t.Fatal("investmentRisk = nil, want defined")
	}
	// with the +900% step included the annualized figure would exceed 2000%
	if ir.AnnualizedVolatility > 1000 {
		t.Errorf("AnnualizedVolatility = %v, outliers not filtered", ir.AnnualizedVolatility)
	}
}

func TestNewRisk_LowSampleWarning(t *testing.T) {
	r := NewRisk([]Entry{NewEntry(jan(1), "P", 1000, 0)})
	found := false
	for _, l := range r.Limitations {
		if l == "fewer than 6 entries: every statistic has a large sampling error" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing low-sample-size limitation in %v", r.Limitations)
	}
}
