package models

// ChartPeriod selects the bucket granularity for behavior chart data.
type ChartPeriod string

const (
	PeriodDaily   ChartPeriod = "daily"
	PeriodMonthly ChartPeriod = "monthly"
	PeriodYearly  ChartPeriod = "yearly"
)

// BehaviorChart holds four parallel sequences consumed as-is by the charting
// client. Empty slices, not null, when the student has no logs.
type BehaviorChart struct {
	Labels []string  `json:"labels"`
	Mood   []float64 `json:"mood"`
	Focus  []float64 `json:"focus"`
	Social []float64 `json:"social"`
}

// DashboardSummary carries the counters shown on the landing page.
type DashboardSummary struct {
	StudentCount  int `json:"student_count"`
	ActivityCount int `json:"activity_count"`
	TodayLogCount int `json:"today_log_count"`
}
