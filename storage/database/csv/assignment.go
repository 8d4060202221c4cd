package csvdb

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/wanjohi/darasa/core"
	"github.com/wanjohi/darasa/core/assignment"
)

type assignmentRepository struct {
	db *DB
}

func NewAssignmentRepository(db *DB) assignment.Repository {
	return &assignmentRepository{db: db}
}

func marshalAssignment(asg assignment.Assignment) Record {
	return Record{
		"assignment_id": strconv.Itoa(asg.ID),
		"course_id":     strconv.Itoa(asg.CourseID),
		"title":         asg.Title,
		"description":   asg.Description,
		"due_date":      asg.DueDate,
		"max_points":    strconv.Itoa(asg.MaxPoints),
		"created_at":    core.FormatTime(asg.CreatedAt),
	}
}

func unmarshalAssignment(rec Record) (assignment.Assignment, error) {
	id, err := strconv.Atoi(strings.TrimSpace(rec["assignment_id"]))
	if err != nil {
		return assignment.Assignment{}, &ReadError{
			Table: AssignmentsTable,
			Err:   errors.Errorf("non-integer assignment_id value %q", rec["assignment_id"]),
		}
	}
	// soft references and points may be null on migrated rows
	courseID, _ := strconv.Atoi(strings.TrimSpace(rec["course_id"]))
	maxPoints, _ := strconv.Atoi(strings.TrimSpace(rec["max_points"]))
	return assignment.Assignment{
		ID:          id,
		CourseID:    courseID,
		Title:       rec["title"],
		Description: rec["description"],
		DueDate:     rec["due_date"],
		MaxPoints:   maxPoints,
		CreatedAt:   core.ParseTime(rec["created_at"]),
	}, nil
}

func (repo *assignmentRepository) query() ([]assignment.Assignment, error) {
	rows, err := repo.db.ReadAll(AssignmentsTable)
	if err != nil {
		return nil, err
	}
	asgs := make([]assignment.Assignment, 0, len(rows))
	for _, rec := range rows {
		asg, err := unmarshalAssignment(rec)
		if err != nil {
			return nil, err
		}
		asgs = append(asgs, asg)
	}
	return asgs, nil
}

func (repo *assignmentRepository) CreateAssignment(asg assignment.Assignment) (assignment.Assignment, error) {
	id, err := repo.db.NextID(AssignmentsTable, KeyColumn(AssignmentsTable))
	if err != nil {
		return assignment.Assignment{}, err
	}
	asg.ID = id
	if err := repo.db.Append(AssignmentsTable, marshalAssignment(asg)); err != nil {
		return assignment.Assignment{}, err
	}
	return asg, nil
}

func (repo *assignmentRepository) QueryAllAssignments() ([]assignment.Assignment, error) {
	return repo.query()
}

func (repo *assignmentRepository) GetAssignmentByID(id int) (assignment.Assignment, error) {
	asgs, err := repo.query()
	if err != nil {
		return assignment.Assignment{}, err
	}
	for _, asg := range asgs {
		if asg.ID == id {
			return asg, nil
		}
	}
	return assignment.Assignment{}, assignment.ErrNotFound
}

func (repo *assignmentRepository) FilterAssignmentsByCourse(courseID int) ([]assignment.Assignment, error) {
	asgs, err := repo.query()
	if err != nil {
		return nil, err
	}
	matched := make([]assignment.Assignment, 0, len(asgs))
	for _, asg := range asgs {
		if asg.CourseID == courseID {
			matched = append(matched, asg)
		}
	}
	return matched, nil
}
