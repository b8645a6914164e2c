package model

import "time"

type SearchType string

const (
	SearchTypeSymptom  SearchType = "symptom"
	SearchTypeMedicine SearchType = "medicine"
	SearchTypeGeneral  SearchType = "general"
)

func (t SearchType) Valid() bool {
	switch t {
	case SearchTypeSymptom, SearchTypeMedicine, SearchTypeGeneral:
		return true
	}
	return false
}

type SearchHistory struct {
	ID         int64      `json:"id"`
	UserID     *int64     `json:"user_id,omitempty"`
	UserName   *string    `json:"user_name,omitempty"`
	Query      string     `json:"query"`
	SearchType SearchType `json:"search_type"`
	CreatedAt  time.Time  `json:"created_at"`
}

type SearchHistoryListParams struct {
	ListParams
	UserID     int64  `form:"user_id"`
	SearchType string `form:"search_type"`
}

type TopQuery struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}

type DashboardStats struct {
	Users          int64 `json:"users"`
	ActiveUsers    int64 `json:"active_users"`
	Medicines      int64 `json:"medicines"`
	Reviews        int64 `json:"reviews"`
	PendingReviews int64 `json:"pending_reviews"`
	Searches       int64 `json:"searches"`
	SearchesToday  int64 `json:"searches_last_24h"`
}
