package models

import "time"

// Application statuses. New applications always start as StatusApplied.
const (
	StatusApplied   = "applied"
	StatusScreening = "screening"
	StatusInterview = "interview"
	StatusOffer     = "offer"
	StatusRejected  = "rejected"
	StatusWithdrawn = "withdrawn"
)

// Application represents a job application from the database.
// Rows are immutable after creation except Status, which changes only
// through the dedicated status endpoint.
type Application struct {
	ID             string    `json:"id"`
	JobID          string    `json:"job_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          *string   `json:"phone"`
	Resume         string    `json:"resume"`
	CoverLetter    *string   `json:"cover_letter"`
	LinkedInURL    *string   `json:"linkedin_url"`
	PortfolioURL   *string   `json:"portfolio_url"`
	ReferralSource *string   `json:"referral_source"`
	Skills         []string  `json:"skills"`
	Notes          *string   `json:"notes"`
	Status         string    `json:"status"`
	AppliedAt      time.Time `json:"applied_at"`
}

// ValidStatus reports whether s is one of the accepted application statuses
func ValidStatus(s string) bool {
	switch s {
	case StatusApplied, StatusScreening, StatusInterview, StatusOffer, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// CanTransition is the declared status-transition policy. Recruiters may
// move an application between any two statuses, including reverting, so
// every transition between valid statuses is allowed. Tighten here if
// product requirements ever restrict the flow.
func CanTransition(from, to string) bool {
	return ValidStatus(from) && ValidStatus(to)
}
