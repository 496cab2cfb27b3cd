package models

// Activity is a single touch recorded against a lead.
type Activity struct {
	Type string `json:"type"`
}

// LeadRecord is the scoring input shape handed over by the CRM layer. Any
// field may be absent; every extraction rule has a documented default.
//
// Budget keeps the upstream CRM contract where a zero budget is
// indistinguishable from a missing one. DaysSinceLastActivity and
// AvgResponseTimeHours are pointers because zero is a meaningful value for
// both; nil means "unknown" and defaults to 999.
type LeadRecord struct {
	Email    string  `json:"email,omitempty"`
	Phone    string  `json:"phone,omitempty"`
	Company  string  `json:"company,omitempty"`
	JobTitle string  `json:"job_title,omitempty"`
	Source   string  `json:"source,omitempty"`
	Budget   float64 `json:"budget,omitempty"`
	Timeline string  `json:"timeline,omitempty"`

	// Status carries the lead status taxonomy; only training reads it.
	Status string `json:"status,omitempty"`

	Activities            []Activity `json:"activities,omitempty"`
	ActivityCount         float64    `json:"activity_count,omitempty"`
	DaysSinceLastActivity *float64   `json:"days_since_last_activity,omitempty"`
	AvgResponseTimeHours  *float64   `json:"avg_response_time_hours,omitempty"`
}
