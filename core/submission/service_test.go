package submission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wanjohi/darasa/core/submission"
	csvdb "github.com/wanjohi/darasa/storage/database/csv"
	testutil "github.com/wanjohi/darasa/tests"
)

func setup(t *testing.T) (*submission.Service, submission.Repository) {
	db := testutil.InitDB(t)
	repo := csvdb.NewSubmissionRepository(db)
	return submission.NewService(repo, nil), repo
}

func TestService_Create(t *testing.T) {
	svc, _ := setup(t)

	sub, err := svc.Create(submission.NewSubmission{
		AssignmentID:    1,
		StudentUsername: " JDoe ",
		Status:          submission.StatusSubmitted,
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	assert.Equal(t, 1, sub.ID)
	assert.Equal(t, "jdoe", sub.StudentUsername) // normalized like authentication
	assert.Empty(t, sub.Grade)                   // null until graded
	assert.False(t, sub.SubmittedAt.IsZero())

	sub2, err := svc.Create(submission.NewSubmission{
		AssignmentID:    1,
		StudentUsername: "asha",
		Status:          submission.StatusGraded,
		Grade:           "87",
		Feedback:        "good work",
	})
	if err != nil {
		t.Fatalf("Create() #2 failed: %v", err)
	}
	assert.Equal(t, 2, sub2.ID)
	assert.Equal(t, "87", sub2.Grade)
}

func TestService_Create_validation(t *testing.T) {
	svc, repo := setup(t)

	tests := []struct {
		name string
		ns   submission.NewSubmission
	}{
		{name: "missing assignment", ns: submission.NewSubmission{StudentUsername: "jdoe", Status: submission.StatusSubmitted}},
		{name: "missing student", ns: submission.NewSubmission{AssignmentID: 1, Status: submission.StatusSubmitted}},
		{name: "unknown status", ns: submission.NewSubmission{AssignmentID: 1, StudentUsername: "jdoe", Status: "Pending"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(tt.ns); err == nil {
				t.Error("Create() expected a validation error")
			}
			subs, err := repo.QueryAllSubmissions()
			if err != nil {
				t.Fatalf("QueryAllSubmissions() failed: %v", err)
			}
			assert.Empty(t, subs)
		})
	}
}

func TestService_Filters(t *testing.T) {
	svc, _ := setup(t)

	mustCreate := func(assignmentID int, uname string) {
		_, err := svc.Create(submission.NewSubmission{
			AssignmentID:    assignmentID,
			StudentUsername: uname,
			Status:          submission.StatusSubmitted,
		})
		if err != nil {
			t.Fatalf("Create() failed: %v", err)
		}
	}
	mustCreate(1, "jdoe")
	mustCreate(1, "asha")
	mustCreate(2, "jdoe")

	byAssignment, err := svc.FilterByAssignment(1)
	if err != nil {
		t.Fatalf("FilterByAssignment() failed: %v", err)
	}
	assert.Len(t, byAssignment, 2)

	byStudent, err := svc.FilterByStudent(" JDoe ")
	if err != nil {
		t.Fatalf("FilterByStudent() failed: %v", err)
	}
	assert.Len(t, byStudent, 2)
	for _, sub := range byStudent {
		assert.Equal(t, "jdoe", sub.StudentUsername)
	}
}
