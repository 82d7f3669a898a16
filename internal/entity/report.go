package entity

// Server-computed report payloads. The console never mutates these,
// it only fetches and renders them.

type WeeklyLeadCount struct {
	Week  string `json:"week"`
	Count int    `json:"count"`
}

type StageCount struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
}

type ConversionPoint struct {
	Month     string  `json:"month"`
	Leads     int     `json:"leads"`
	Converted int     `json:"converted"`
	Rate      float64 `json:"rate"`
}

type SourcePerformance struct {
	Source    string  `json:"source"`
	Leads     int     `json:"leads"`
	Converted int     `json:"converted"`
	Rate      float64 `json:"rate"`
}

type ConversionRate struct {
	Rate float64 `json:"rate"`
}
