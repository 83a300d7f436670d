package dashboard

// MonthRevenue is the completed-consultation revenue of one calendar month.
type MonthRevenue struct {
	Month int     `json:"month"` // 1..12
	Total float64 `json:"total"`
}

// Summary is the practice revenue dashboard. Only Completed consultations
// count toward revenue; the status counts cover everything.
type Summary struct {
	Today          float64        `json:"today"`
	ThisMonth      float64        `json:"this_month"`
	ThisYear       float64        `json:"this_year"`
	AllTime        float64        `json:"all_time"`
	ByMonth        []MonthRevenue `json:"by_month"`
	Year           int            `json:"year"`
	CountsByStatus map[string]int `json:"counts_by_status"`
}
