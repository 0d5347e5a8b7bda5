package dto

type CategoryStat struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type FAQItem struct {
	Category      string  `json:"category"`
	QueryPattern  string  `json:"query_pattern"`
	HitCount      int     `json:"hit_count"`
	AvgConfidence float64 `json:"avg_confidence"`
}

type DailyTrend struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type AnalyticsSummary struct {
	WindowDays         int            `json:"window_days"`
	TotalQueries       int64          `json:"total_queries"`
	EscalatedQueries   int64          `json:"escalated_queries"`
	EscalationRate     float64        `json:"escalation_rate"`
	AvgConfidence      float64        `json:"avg_confidence"`
	AvgResponseTimeMs  float64        `json:"avg_response_time_ms"`
	PendingEscalations int64          `json:"pending_escalations"`
	FeedbackCount      int64          `json:"feedback_count"`
	HelpfulRate        float64        `json:"helpful_rate"`
	Categories         []CategoryStat `json:"categories"`
	DailyTrends        []DailyTrend   `json:"daily_trends"`
	TopFAQs            []FAQItem      `json:"top_faqs"`
}
