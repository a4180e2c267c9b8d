package networth

// CashFlowReport separates the cash a user moved in and out of the portfolio
// from the value the market produced.
type CashFlowReport struct {
	TotalContributions     float64
	TotalWithdrawals       float64 // absolute value
	NetContributions       float64
	InvestmentGains        float64
	ContributionGains      float64
	AverageContribution    float64 // mean of positive contributions only
	ContributionsPerYear   float64
	HasAnyContributionData bool
}

// NewCashFlow attributes the current portfolio value between contributed cash
// and investment gains across the full entry history.
//
// When no entry ever carried a contribution field, InvestmentGains and
// ContributionGains are both forced to zero: the split cannot be computed
// without contribution tracking, and a number that counts deposits as market
// gains would be worse than no number. HasAnyContributionData distinguishes
// that case from a history whose recorded contributions genuinely sum to zero.
func NewCashFlow(entries []Entry) *CashFlowReport {
	r := &CashFlowReport{}
	if len(entries) == 0 {
		return r
	}

	var firstContribution, lastContribution Date
	positives := 0
	for _, e := range entries {
		c, ok := e.Contribution()
		if !ok {
			continue
		}
		r.HasAnyContributionData = true
		if c > 0 {
			r.TotalContributions += c
			r.AverageContribution += c
			positives++
			if firstContribution.IsZero() || e.Date().Before(firstContribution) {
				firstContribution = e.Date()
			}
			if lastContribution.IsZero() || e.Date().After(lastContribution) {
				lastContribution = e.Date()
			}
		} else if c < 0 {
			r.TotalWithdrawals += -c
		}
	}
	r.NetContributions = r.TotalContributions - r.TotalWithdrawals
	if positives > 0 {
		r.AverageContribution /= float64(positives)
	}

	if r.HasAnyContributionData {
		points := BuildSeries(entries)
		currentValue := points[len(points)-1].Value
		r.InvestmentGains = currentValue - r.NetContributions
		r.ContributionGains = r.NetContributions
	}

	// Frequency needs at least two contribution dates to define a span.
	if positives >= 2 {
		days := firstContribution.DaysBetween(lastContribution)
		if days > 0 {
			r.ContributionsPerYear = float64(positives) / (float64(days) / 365.0)
		}
	}
	return r
}
