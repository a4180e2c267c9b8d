package renderer

import (
	"fmt"

	"github.com/oxal/networth"
	"github.com/vicanso/go-charts/v2"
)

// HistoryChartPNG renders the total-value series as a PNG line chart.
func HistoryChartPNG(h *networth.History) ([]byte, error) {
	if len(h.Points) < 2 {
		return nil, fmt.Errorf("not enough history to chart: need at least 2 dated entries, have %d", len(h.Points))
	}

	xLabels := make([]string, 0, len(h.Points))
	values := make([]float64, 0, len(h.Points))
	for _, p := range h.Points {
		xLabels = append(xLabels, p.Date.Format("Jan 02"))
		values = append(values, p.Value)
	}

	// Y-axis range with padding, so the line does not hug the frame.
	minVal, maxVal := values[0], values[0]
	for _, v := range values {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	padding := (maxVal - minVal) * 0.05
	if padding == 0 {
		padding = maxVal * 0.05
	}
	yMin := minVal - padding
	yMax := maxVal + padding

	splitNum := 6
	if len(xLabels) <= 30 {
		splitNum = len(xLabels) / 3
		if splitNum < 3 {
			splitNum = 3
		}
	}

	p, err := charts.LineRender(
		[][]float64{values},
		charts.TitleTextOptionFunc("Net Worth"),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        xLabels,
			SplitNumber: splitNum,
			BoundaryGap: charts.FalseFlag(),
		}),
		charts.YAxisOptionFunc(charts.YAxisOption{
			Min:         &yMin,
			Max:         &yMax,
			DivideCount: 5,
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to generate chart bytes: %w", err)
	}
	return buf, nil
}
