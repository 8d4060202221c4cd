package submission

import (
	"time"

	"github.com/wanjohi/darasa/core"
)

// Submission statuses.
const (
	StatusSubmitted = "Submitted"
	StatusGraded    = "Graded"
	StatusLate      = "Late"
)

var AllStatuses = []string{StatusSubmitted, StatusGraded, StatusLate}

type Submission struct {
	ID              int       `json:"id"`
	AssignmentID    int       `json:"assignment_id"`     // soft reference to Assignment.ID, unenforced
	StudentUsername string    `json:"student_username"`  // soft reference to User.Username, unenforced
	SubmittedAt     time.Time `json:"submission_date"`
	Status          string    `json:"status"`
	Grade           string    `json:"grade"`    // null until graded
	Feedback        string    `json:"feedback"` // null until graded
}

// NewSubmission contains information needed to record a new Submission.
type NewSubmission struct {
	AssignmentID    int    `json:"assignment_id" validate:"required,min=1"`
	StudentUsername string `json:"student_username" validate:"required"`
	Status          string `json:"status" validate:"required,substatus"`
	Grade           string `json:"grade"`
	Feedback        string `json:"feedback"`
}

func (ns *NewSubmission) Validate() error {
	ns.StudentUsername = core.CleanString(ns.StudentUsername, true /* lower */)
	ns.Status = core.CleanString(ns.Status)
	ns.Grade = core.CleanString(ns.Grade)
	ns.Feedback = core.CleanString(ns.Feedback)

	return core.Validate.Struct(ns)
}
