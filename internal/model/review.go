package model

import "time"

type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

func (s ReviewStatus) Valid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected:
		return true
	}
	return false
}

type Review struct {
	ID           int64        `json:"id"`
	UserID       int64        `json:"user_id"`
	UserName     string       `json:"user_name"`
	MedicineID   int64        `json:"medicine_id"`
	MedicineName string       `json:"medicine_name"`
	Rating       int          `json:"rating"`
	Comment      string       `json:"comment"`
	Status       ReviewStatus `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
}

type ReviewListParams struct {
	ListParams
	Status     string `form:"status"`
	MedicineID int64  `form:"medicine_id"`
}
