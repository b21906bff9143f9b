package output

import (
	"math"
	"sort"

	"gowfm/workflowmax"
)

type DailySummary struct {
	Date            string
	Minutes         int
	BillableMinutes int
	Hours           float64
	BillableHours   float64
	EntryCount      int
}

// BuildDailySummaries totals booked minutes per YYYYMMDD day in ascending order.
func BuildDailySummaries(entries []workflowmax.TimeEntry) []DailySummary {
	if len(entries) == 0 {
		return []DailySummary{}
	}

	byDay := make(map[string]*DailySummary)
	for _, entry := range entries {
		summary, ok := byDay[entry.Date]
		if !ok {
			summary = &DailySummary{Date: entry.Date}
			byDay[entry.Date] = summary
		}
		summary.Minutes += entry.Minutes
		if entry.Billable {
			summary.BillableMinutes += entry.Minutes
		}
		summary.EntryCount++
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	summaries := make([]DailySummary, 0, len(days))
	for _, day := range days {
		summary := *byDay[day]
		summary.Hours = roundHours(float64(summary.Minutes) / 60.0)
		summary.BillableHours = roundHours(float64(summary.BillableMinutes) / 60.0)
		summaries = append(summaries, summary)
	}
	return summaries
}

func roundHours(value float64) float64 {
	return math.Round(value*100) / 100
}
