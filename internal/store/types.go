package store

import "time"

// Status is the lifecycle state of a complaint.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
	StatusRejected   Status = "Rejected"
)

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed from s.
func (s Status) Terminal() bool {
	return s == StatusResolved || s == StatusRejected
}

// Priority is the urgency assigned to a complaint at creation time. Status
// transitions never change it.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// VerificationDocument describes the optional supporting document attached to
// a complaint. At most one per complaint.
type VerificationDocument struct {
	Filename   string    `json:"filename"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
	URL        string    `json:"url"`
}

// Complaint is a single reported issue tracked through the four-state
// lifecycle. SubmittedBy and Email are retained even for anonymous complaints
// so that notification routing keeps working; the API layer is responsible
// for withholding them from display.
type Complaint struct {
	ID                   int                   `json:"id"`
	Subject              string                `json:"subject"`
	Category             string                `json:"category"`
	Location             string                `json:"location"`
	Status               Status                `json:"status"`
	Priority             Priority              `json:"priority"`
	SubmittedBy          string                `json:"submittedBy"`
	Email                string                `json:"email"`
	IsAnonymous          bool                  `json:"isAnonymous"`
	SubmittedAt          time.Time             `json:"submittedAt"`
	UpdatedAt            time.Time             `json:"updatedAt"`
	Description          string                `json:"description"`
	AdminRemarks         string                `json:"adminRemarks"`
	AssignedTo           string                `json:"assignedTo"`
	Images               []string              `json:"images"`
	VerificationDocument *VerificationDocument `json:"verificationDocument"`
}

// NewComplaint carries the fields a submitter provides when filing a complaint.
type NewComplaint struct {
	Subject              string
	Category             string
	Location             string
	Priority             Priority
	SubmittedBy          string
	Email                string
	IsAnonymous          bool
	Description          string
	Images               []string
	VerificationDocument *VerificationDocument
}

// Date range selectors accepted by FilterCriteria.
const (
	RangeAll   = "all"
	RangeToday = "today"
	RangeWeek  = "week"
	RangeMonth = "month"
)

// FilterCriteria narrows the complaint list. Zero values mean "no filtering";
// the literal "all" sentinel is also accepted for Status and DateRange since
// that is what the admin UI's select boxes produce.
type FilterCriteria struct {
	Status    string `form:"status"`
	Search    string `form:"search"`
	DateRange string `form:"date_range"`
}

// DayCount is one point of the 7-day submission trend.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Stats summarizes the full complaint set for the dashboard cards.
type Stats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Resolved   int `json:"resolved"`
	Rejected   int `json:"rejected"`
}
