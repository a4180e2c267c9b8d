package networth

// Summary provides an at-a-glance overview of the portfolio for one
// (current, previous) snapshot pair: totals, per-platform breakdown,
// weighted expected rate, and the largest holding.
type Summary struct {
	Date               Date
	TotalValue         float64
	TotalPreviousValue float64
	AbsoluteChange     float64
	PercentChange      Percent
	AvgRate            Percent // value-weighted expected annual rate
	LargestHolding     string
	Platforms          []PlatformSummary
}

// PlatformSummary is the per-platform breakdown line of a Summary.
type PlatformSummary struct {
	Platform       string
	Amount         float64
	PreviousAmount float64
	AbsoluteChange float64
	PercentChange  Percent
	Percentage     Percent // share of the current total value
	Rate           Percent
}

// NewSummary compares a current snapshot against a previous one. An empty
// current snapshot yields a zeroed summary; it never fails.
//
// Division hazards are pre-guarded: a platform with no previous amount shows
// a 0% change (a first appearance is not a gain), and a zero total value
// yields 0% shares and a 0 average rate.
func NewSummary(current, previous []Entry) *Summary {
	s := &Summary{Platforms: []PlatformSummary{}}
	if len(current) == 0 {
		return s
	}
	s.Date = current[0].Date()

	s.TotalValue = TotalForDate(current)
	s.TotalPreviousValue = TotalForDate(previous)
	s.AbsoluteChange = s.TotalValue - s.TotalPreviousValue
	if s.TotalPreviousValue != 0 {
		s.PercentChange = Percent(s.AbsoluteChange / s.TotalPreviousValue * 100)
	}

	prevByPlatform := make(map[string]float64)
	prevOrder := make([]string, 0, len(previous))
	for _, e := range previous {
		if _, ok := prevByPlatform[e.Platform()]; !ok {
			prevOrder = append(prevOrder, e.Platform())
		}
		prevByPlatform[e.Platform()] += e.Amount()
	}

	// One line per current platform, in first-encountered entry order so that
	// largest-holding ties resolve deterministically.
	var weightedRate float64
	seen := make(map[string]int) // platform -> index into s.Platforms
	largest := 0.0
	for _, e := range current {
		idx, ok := seen[e.Platform()]
		if !ok {
			idx = len(s.Platforms)
			seen[e.Platform()] = idx
			s.Platforms = append(s.Platforms, PlatformSummary{
				Platform: e.Platform(),
				Rate:     e.Rate(),
			})
		}
		s.Platforms[idx].Amount += e.Amount()
		weightedRate += e.Amount() * float64(e.Rate())
	}
	for i := range s.Platforms {
		p := &s.Platforms[i]
		p.PreviousAmount = prevByPlatform[p.Platform]
		p.AbsoluteChange = p.Amount - p.PreviousAmount
		if p.PreviousAmount != 0 {
			p.PercentChange = Percent(p.AbsoluteChange / p.PreviousAmount * 100)
		}
		if s.TotalValue != 0 {
			p.Percentage = Percent(p.Amount / s.TotalValue * 100)
		}
		if s.LargestHolding == "" || p.Amount > largest {
			s.LargestHolding = p.Platform
			largest = p.Amount
		}
	}

	// Platforms present only in the previous snapshot were fully liquidated:
	// they appear with a zero amount and a -100% change.
	for _, name := range prevOrder {
		if _, ok := seen[name]; ok {
			continue
		}
		s.Platforms = append(s.Platforms, PlatformSummary{
			Platform:       name,
			PreviousAmount: prevByPlatform[name],
			AbsoluteChange: -prevByPlatform[name],
			PercentChange:  -100,
		})
	}

	if s.TotalValue != 0 {
		s.AvgRate = Percent(weightedRate / s.TotalValue)
	}
	return s
}

// Platform returns the breakdown line for the named platform.
func (s *Summary) Platform(name string) (PlatformSummary, bool) {
	for _, p := range s.Platforms {
		if p.Platform == name {
			return p, true
		}
	}
	return PlatformSummary{}, false
}
