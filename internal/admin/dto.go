package admin

import "time"

type BoardStats struct {
	Board  string `json:"board"`
	Name   string `json:"name"`
	Open   int64  `json:"open"`
	Closed int64  `json:"closed"`
	Total  int64  `json:"total"`
}

type FeedbackStats struct {
	NotAsked int64 `json:"notAsked"`
	Skipped  int64 `json:"skipped"`
	Yes      int64 `json:"yes"`
	No       int64 `json:"no"`
}

type StatsResponse struct {
	Boards   []BoardStats  `json:"boards"`
	Feedback FeedbackStats `json:"feedback"`
	// Yes / (Yes + No); null until someone answered
	MatchRate   *float64  `json:"matchRate"`
	GeneratedAt time.Time `json:"generatedAt"`
}

type PurgeRequest struct {
	Retention string `json:"retention"` // Go duration, 비어 있으면 설정값
}

type PurgeResponse struct {
	Deleted   int64     `json:"deleted"`
	Cutoff    time.Time `json:"cutoff"`
	Retention string    `json:"retention"`
}
