package networth

import "testing"

func TestNewCashFlow(t *testing.T) {
	entries := []Entry{
		NewContribution(jan(1), "P", 1000, 0, 1000),
		NewContribution(feb(1), "P", 1400, 0, 500),
		NewContribution(mar(1), "P", 1300, 0, -200), // withdrawal
	}
	r := NewCashFlow(entries)

	if !r.HasAnyContributionData {
		t.Fatal("HasAnyContributionData = false, want true")
	}
	approx(t, "TotalContributions", r.TotalContributions, 1500, 1e-9)
	approx(t, "TotalWithdrawals", r.TotalWithdrawals, 200, 1e-9)
	approx(t, "NetContributions", r.NetContributions, 1300, 1e-9)
	// current value 1300, net contributions 1300: the market did nothing
	approx(t, "InvestmentGains", r.InvestmentGains, 0, 1e-9)
	approx(t, "ContributionGains", r.ContributionGains, 1300, 1e-9)
	approx(t, "AverageContribution", r.AverageContribution, 750, 1e-9)
}

func TestNewCashFlow_NoContributionTracking(t *testing.T) {
	entries := []Entry{
		NewEntry(jan(1), "P", 1000, 0),
		NewEntry(feb(1), "P", 1500, 0),
	}
	r := NewCashFlow(entries)

	if r.HasAnyContributionData {
		t.Fatal("HasAnyContributionData = true, want false")
	}
	// Without contribution tracking the gains split cannot be computed:
	// both sides stay zero rather than counting deposits as market gains.
	if r.InvestmentGains != 0 || r.ContributionGains != 0 {
		t.Errorf("gains = %v/%v, want 0/0", r.InvestmentGains, r.ContributionGains)
	}
}

func TestNewCashFlow_RecordedZeroIsStillTracked(t *testing.T) {
	entries := []Entry{
		NewContribution(jan(1), "P", 1000, 0, 0),
		NewContribution(feb(1), "P", 1500, 0, 0),
	}
	r := NewCashFlow(entries)
	if !r.HasAnyContributionData {
		t.Fatal("HasAnyContributionData = false, want true")
	}
	// net contributions 0: the whole value change is investment gains
	approx(t, "InvestmentGains", r.InvestmentGains, 1500, 1e-9)
}

func TestNewCashFlow_Frequency(t *testing.T) {
	entries := []Entry{
		NewContribution(NewDate(2024, 1, 1), "P", 1000, 0, 500),
		NewContribution(NewDate(2025, 1, 1), "P", 2000, 0, 500), // 366 days apart
	}
	r := NewCashFlow(entries)
	approx(t, "ContributionsPerYear", r.ContributionsPerYear, 2.0/(366.0/365.0), 0.001)

	t.Run("single contribution has no frequency", func(t *testing.T) {
		r := NewCashFlow([]Entry{NewContribution(jan(1), "P", 1000, 0, 500)})
		if r.ContributionsPerYear != 0 {
			t.Errorf("ContributionsPerYear = %v, want 0", r.ContributionsPerYear)
		}
	})
}

func TestNewCashFlow_Empty(t *testing.T) {
	r := NewCashFlow(nil)
	if *r != (CashFlowReport{}) {
		t.Errorf("empty cash flow = %+v, want zeroed", r)
	}
}
