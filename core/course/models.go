package course

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/wanjohi/darasa/core"
)

// Enrollment statuses.
const (
	StatusOpen   = "Open"
	StatusClosed = "Closed"
)

var AllStatuses = []string{StatusOpen, StatusClosed}

type Course struct {
	ID          int       `json:"id"`
	Name        string    `json:"course_name"`
	Description string    `json:"description"`
	Instructor  string    `json:"instructor"` // soft reference to User.Username, unenforced
	Schedule    string    `json:"schedule"`
	CreatedAt   time.Time `json:"created_at"`
	Status      string    `json:"enrollment_status"`
	ImagePath   string    `json:"image_path"` // empty when no thumbnail was uploaded
	YoutubeLink string    `json:"youtube_link"`
}

func (c Course) IsOpen() bool {
	return c.Status == StatusOpen
}

// NewCourse contains information needed to publish a new Course.
type NewCourse struct {
	Name        string `json:"course_name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Instructor  string `json:"instructor" validate:"required"`
	Schedule    string `json:"schedule" validate:"required"`
	Status      string `json:"enrollment_status" validate:"required,enrollment"`
	YoutubeLink string `json:"youtube_link" validate:"omitempty,url"`

	// ImageFilename is the original name of an uploaded thumbnail, if any.
	// The caller writes the file itself; the course row only records the path.
	ImageFilename string `json:"image_filename"`
}

func (nc *NewCourse) Validate() error {
	nc.Name = core.CleanString(nc.Name)
	nc.Description = core.CleanString(nc.Description)
	nc.Instructor = core.CleanString(nc.Instructor)
	nc.Schedule = core.CleanString(nc.Schedule)
	nc.Status = core.CleanString(nc.Status)
	nc.YoutubeLink = core.CleanString(nc.YoutubeLink)
	nc.ImageFilename = core.CleanString(nc.ImageFilename)

	return core.Validate.Struct(nc)
}

// ImageUploadPath returns where the presentation layer must store an uploaded
// course thumbnail: <uploadDir>/<course id>_<original filename>. The ID comes
// from the store's ID allocation, so the path is only valid once the course
// row carrying it has been appended.
func ImageUploadPath(id int, filename string) string {
	return filepath.Join(core.Conf.GetString("uploadDir"), fmt.Sprintf("%d_%s", id, filename))
}

type QueryFilter struct {
	Instructor string `query:"instructor"`
	Status     string `query:"enrollment_status"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Instructor == "" && qf.Status == ""
}

func (qf *QueryFilter) Clean() {
	qf.Instructor = core.CleanString(qf.Instructor)
	qf.Status = core.CleanString(qf.Status)
}
