package model

import "time"

// Review is a student review of a university. ID is zero until the backend
// assigns one on submission.
type Review struct {
	ID           int       `json:"id"`
	UniversityID int       `json:"universityId" validate:"required,gt=0"`
	Author       string    `json:"author" validate:"required"`
	Date         time.Time `json:"date"`
	Rating       float64   `json:"rating" validate:"gte=1,lte=5"`
	Content      string    `json:"content" validate:"required"`

	// Pros and Cons arrive from forms as comma-joined text and from the
	// backend as either arrays or strings; after normalization they are
	// always non-nil slices of trimmed non-empty tokens.
	Pros []string `json:"pros"`
	Cons []string `json:"cons"`

	ProgramStudied  string `json:"programStudied,omitempty"`
	YearOfStudy     string `json:"yearOfStudy,omitempty"`
	IsInternational bool   `json:"isInternational,omitempty"`
}

// Request moderation states.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// UniversityRequest is a user-submitted candidate university awaiting
// moderation. Status and SubmittedDate are assigned at submission time.
type UniversityRequest struct {
	ID             int       `json:"id"`
	Name           string    `json:"name" validate:"required"`
	NameKorean     string    `json:"nameKorean,omitempty"`
	Location       string    `json:"location" validate:"required"`
	Website        string    `json:"website,omitempty"`
	Description    string    `json:"description,omitempty"`
	RequesterName  string    `json:"requesterName" validate:"required"`
	RequesterEmail string    `json:"requesterEmail" validate:"required,email"`
	AdditionalInfo string    `json:"additionalInfo,omitempty"`
	Status         string    `json:"status"`
	SubmittedDate  time.Time `json:"submittedDate"`
}
