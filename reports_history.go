package networth

// History is the dated total-value series of the portfolio, enriched with
// period-over-period changes. It feeds the history table and the chart.
type History struct {
	Points []HistoryPoint
}

// HistoryPoint is one dated observation of the portfolio.
type HistoryPoint struct {
	Date             Date
	Value            float64
	Change           float64 // vs the previous point
	PercentChange    Percent
	Contributions    float64
	HasContributions bool
}

// NewHistory builds the dated total-value series of an entry history,
// oldest first. The first point has no previous observation and reports a
// zero change.
func NewHistory(entries []Entry) *History {
	series := BuildSeries(entries)
	h := &History{Points: make([]HistoryPoint, 0, len(series))}
	for i, p := range series {
		hp := HistoryPoint{
			Date:             p.Date,
			Value:            p.Value,
			Contributions:    p.Contributions,
			HasContributions: p.HasContributions,
		}
		if i > 0 {
			prev := series[i-1].Value
			hp.Change = p.Value - prev
			if prev != 0 {
				hp.PercentChange = Percent(hp.Change / prev * 100)
			}
		}
		h.Points = append(h.Points, hp)
	}
	return h
}

// Latest returns the newest point, or false when the history is empty.
func (h *History) Latest() (HistoryPoint, bool) {
	if len(h.Points) == 0 {
		return HistoryPoint{}, false
	}
	return h.Points[len(h.Points)-1], true
}
