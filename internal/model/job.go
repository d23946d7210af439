package model

import (
	"time"
)

const (
	JobStatusApplied   = "Applied"
	JobStatusInterview = "Interview"
	JobStatusOffer     = "Offer"
	JobStatusRejected  = "Rejected"
)

// JobStatuses lists the allowed application states in display order.
var JobStatuses = []string{
	JobStatusApplied,
	JobStatusInterview,
	JobStatusOffer,
	JobStatusRejected,
}

func ValidJobStatus(status string) bool {
	for _, s := range JobStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Job struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId,omitempty"`
	Company   string    `db:"company" json:"company"`
	Role      string    `db:"role" json:"role"`
	Status    string    `db:"status" json:"status"`
	Date      time.Time `db:"date" json:"date"`
	Link      string    `db:"link" json:"link,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
