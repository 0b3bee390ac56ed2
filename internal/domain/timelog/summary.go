package timelog

import "github.com/shopspring/decimal"

// DayTotal is the sum of all hours logged on one date.
type DayTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// CategorySeries holds one label's hours per day, aligned with Summary.Days.
type CategorySeries struct {
	Label string    `json:"label"`
	Hours []float64 `json:"hours"`
	Total float64   `json:"total"`
}

// Summary is the chart-ready aggregate of a log collection.
type Summary struct {
	Days       []DayTotal       `json:"days"`
	Categories []CategorySeries `json:"categories"`
	Total      float64          `json:"total"`
}

// SumHours adds up the hours of entries without float drift.
func SumHours(entries []Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(decimal.NewFromFloat(e.Hours))
	}
	return total
}

// Summarize computes per-day totals and per-category series. Labels appear in
// the order they are first seen; a day without a label contributes 0.
func Summarize(logs []LogEntry) Summary {
	sorted := CloneLogs(logs)
	SortByDate(sorted)

	var labels []string
	index := map[string]int{}
	for _, l := range sorted {
		for _, e := range l.Entries {
			if _, ok := index[e.Label]; !ok {
				index[e.Label] = len(labels)
				labels = append(labels, e.Label)
			}
		}
	}

	perLabel := make([][]decimal.Decimal, len(labels))
	for i := range perLabel {
		perLabel[i] = make([]decimal.Decimal, len(sorted))
	}

	summary := Summary{
		Days:       make([]DayTotal, 0, len(sorted)),
		Categories: make([]CategorySeries, 0, len(labels)),
	}
	grand := decimal.Zero
	for d, l := range sorted {
		day := SumHours(l.Entries)
		grand = grand.Add(day)
		summary.Days = append(summary.Days, DayTotal{Date: l.Date, Total: day.InexactFloat64()})
		for _, e := range l.Entries {
			i := index[e.Label]
			perLabel[i][d] = perLabel[i][d].Add(decimal.NewFromFloat(e.Hours))
		}
	}

	for i, label := range labels {
		series := CategorySeries{Label: label, Hours: make([]float64, len(sorted))}
		total := decimal.Zero
		for d, h := range perLabel[i] {
			series.Hours[d] = h.InexactFloat64()
			total = total.Add(h)
		}
		series.Total = total.InexactFloat64()
		summary.Categories = append(summary.Categories, series)
	}
	summary.Total = grand.InexactFloat64()
	return summary
}
