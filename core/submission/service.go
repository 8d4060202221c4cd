package submission

import (
	"time"

	"github.com/pkg/errors"

	"github.com/wanjohi/darasa/core"
)

var ErrNotFound = errors.New("submission not found")

type (
	Repository interface {
		CreateSubmission(sub Submission) (Submission, error)
		QueryAllSubmissions() ([]Submission, error)
		FilterSubmissionsByAssignment(assignmentID int) ([]Submission, error)
		FilterSubmissionsByStudent(username string) ([]Submission, error)
	}

	Service struct {
		repo Repository
		log  core.Logger
	}
)

func NewService(repo Repository, log core.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (svc *Service) Create(ns NewSubmission) (Submission, error) {
	if err := ns.Validate(); err != nil {
		return Submission{}, err
	}
	sub := Submission{
		AssignmentID:    ns.AssignmentID,
		StudentUsername: ns.StudentUsername,
		SubmittedAt:     time.Now(),
		Status:          ns.Status,
		Grade:           ns.Grade,
		Feedback:        ns.Feedback,
	}
	return svc.repo.CreateSubmission(sub)
}

func (svc *Service) QueryAll() ([]Submission, error) {
	return svc.repo.QueryAllSubmissions()
}

func (svc *Service) FilterByAssignment(assignmentID int) ([]Submission, error) {
	return svc.repo.FilterSubmissionsByAssignment(assignmentID)
}

func (svc *Service) FilterByStudent(username string) ([]Submission, error) {
	return svc.repo.FilterSubmissionsByStudent(core.CleanString(username, true /* lower */))
}
