package csvdb

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/wanjohi/darasa/core"
	"github.com/wanjohi/darasa/core/submission"
)

type submissionRepository struct {
	db *DB
}

func NewSubmissionRepository(db *DB) submission.Repository {
	return &submissionRepository{db: db}
}

func marshalSubmission(sub submission.Submission) Record {
	return Record{
		"submission_id":    strconv.Itoa(sub.ID),
		"assignment_id":    strconv.Itoa(sub.AssignmentID),
		"student_username": sub.StudentUsername,
		"submission_date":  core.FormatTime(sub.SubmittedAt),
		"status":           sub.Status,
		"grade":            sub.Grade,
		"feedback":         sub.Feedback,
	}
}

func unmarshalSubmission(rec Record) (submission.Submission, error) {
	id, err := strconv.Atoi(strings.TrimSpace(rec["submission_id"]))
	if err != nil {
		return submission.Submission{}, &ReadError{
			Table: SubmissionsTable,
			Err:   errors.Errorf("non-integer submission_id value %q", rec["submission_id"]),
		}
	}
	assignmentID, _ := strconv.Atoi(strings.TrimSpace(rec["assignment_id"]))
	return submission.Submission{
		ID:              id,
		AssignmentID:    assignmentID,
		StudentUsername: rec["student_username"],
		SubmittedAt:     core.ParseTime(rec["submission_date"]),
		Status:          rec["status"],
		Grade:           rec["grade"],
		Feedback:        rec["feedback"],
	}, nil
}

func (repo *submissionRepository) query() ([]submission.Submission, error) {
	rows, err := repo.db.ReadAll(SubmissionsTable)
	if err != nil {
		return nil, err
	}
	subs := make([]submission.Submission, 0, len(rows))
	for _, rec := range rows {
		sub, err := unmarshalSubmission(rec)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

func (repo *submissionRepository) CreateSubmission(sub submission.Submission) (submission.Submission, error) {
	id, err := repo.db.NextID(SubmissionsTable, KeyColumn(SubmissionsTable))
	if err != nil {
		return submission.Submission{}, err
	}
	sub.ID = id
	if err := repo.db.Append(SubmissionsTable, marshalSubmission(sub)); err != nil {
		return submission.Submission{}, err
	}
	return sub, nil
}

func (repo *submissionRepository) QueryAllSubmissions() ([]submission.Submission, error) {
	return repo.query()
}

func (repo *submissionRepository) FilterSubmissionsByAssignment(assignmentID int) ([]submission.Submission, error) {
	subs, err := repo.query()
	if err != nil {
		return nil, err
	}
	matched := make([]submission.Submission, 0, len(subs))
	for _, sub := range subs {
		if sub.AssignmentID == assignmentID {
			matched = append(matched, sub)
		}
	}
	return matched, nil
}

func (repo *submissionRepository) FilterSubmissionsByStudent(username string) ([]submission.Submission, error) {
	subs, err := repo.query()
	if err != nil {
		return nil, err
	}
	uname := core.CleanString(username, true /* lower */)
	matched := make([]submission.Submission, 0, len(subs))
	for _, sub := range subs {
		if core.CleanString(sub.StudentUsername, true) == uname {
			matched = append(matched, sub)
		}
	}
	return matched, nil
}
