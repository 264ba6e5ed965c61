package models

import "time"

// Employment types accepted for Job.EmploymentType
const (
	EmploymentFullTime   = "full-time"
	EmploymentPartTime   = "part-time"
	EmploymentContract   = "contract"
	EmploymentInternship = "internship"
)

// Experience levels accepted for Job.ExperienceLevel
const (
	ExperienceEntry     = "entry"
	ExperienceMid       = "mid"
	ExperienceSenior    = "senior"
	ExperienceExecutive = "executive"
)

// Job represents an open position from the database
type Job struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Location            string     `json:"location"`
	Department          string     `json:"department"`
	PostedAt            time.Time  `json:"posted_at"`
	EmploymentType      string     `json:"employment_type"`
	IsRemote            bool       `json:"is_remote"`
	Requirements        []string   `json:"requirements"`
	Benefits            []string   `json:"benefits"`
	ExperienceLevel     *string    `json:"experience_level"`
	SalaryMin           *int       `json:"salary_min"`
	SalaryMax           *int       `json:"salary_max"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
}

// ValidEmploymentType reports whether t is one of the accepted employment types
func ValidEmploymentType(t string) bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentInternship:
		return true
	}
	return false
}

// ValidExperienceLevel reports whether l is one of the accepted experience levels
func ValidExperienceLevel(l string) bool {
	switch l {
	case ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceExecutive:
		return true
	}
	return false
}
