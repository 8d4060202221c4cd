package assignment

import (
	"time"

	"github.com/wanjohi/darasa/core"
)

type Assignment struct {
	ID          int       `json:"id"`
	CourseID    int       `json:"course_id"` // soft reference to Course.ID, unenforced
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     string    `json:"due_date"` // free-form, as entered by the teacher
	MaxPoints   int       `json:"max_points"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewAssignment contains information needed to create a new Assignment.
type NewAssignment struct {
	CourseID    int    `json:"course_id" validate:"required,min=1"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	DueDate     string `json:"due_date" validate:"required"`
	MaxPoints   int    `json:"max_points" validate:"required,min=1"`
}

func (na *NewAssignment) Validate() error {
	na.Title = core.CleanString(na.Title)
	na.Description = core.CleanString(na.Description)
	na.DueDate = core.CleanString(na.DueDate)

	return core.Validate.Struct(na)
}
