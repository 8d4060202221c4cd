package course

import (
	"time"

	"github.com/pkg/errors"

	"github.com/wanjohi/darasa/core"
)

var ErrNotFound = errors.New("course not found")

type (
	Repository interface {
		NextCourseID() (int, error)
		// CreateCourse appends crs as a new row. crs.ID must have been
		// allocated by NextCourseID; a zero ID lets the repository allocate.
		CreateCourse(crs Course) (Course, error)
		QueryAllCourses() ([]Course, error)
		GetCourseByID(id int) (Course, error)
		// FilterCourses applies AND operation on available QueryFilter fields.
		FilterCourses(filter QueryFilter) ([]Course, error)
	}

	Service struct {
		repo Repository
		log  core.Logger
	}
)

func NewService(repo Repository, log core.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Create validates nc and appends a new Course row. The course ID is
// allocated first so that an uploaded thumbnail path ({id}_{filename}) can be
// recorded on the same row.
func (svc *Service) Create(nc NewCourse) (Course, error) {
	if err := nc.Validate(); err != nil {
		return Course{}, err
	}

	id, err := svc.repo.NextCourseID()
	if err != nil {
		return Course{}, err
	}
	crs := Course{
		ID:          id,
		Name:        nc.Name,
		Description: nc.Description,
		Instructor:  nc.Instructor,
		Schedule:    nc.Schedule,
		CreatedAt:   time.Now(),
		Status:      nc.Status,
		YoutubeLink: nc.YoutubeLink,
	}
	if nc.ImageFilename != "" {
		crs.ImagePath = ImageUploadPath(id, nc.ImageFilename)
	}
	return svc.repo.CreateCourse(crs)
}

func (svc *Service) QueryAll() ([]Course, error) {
	return svc.repo.QueryAllCourses()
}

func (svc *Service) GetByID(id int) (Course, error) {
	return svc.repo.GetCourseByID(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]Course, error) {
	filter.Clean()
	return svc.repo.FilterCourses(filter)
}

// FilterOpen returns the courses students may enroll in.
func (svc *Service) FilterOpen() ([]Course, error) {
	return svc.repo.FilterCourses(QueryFilter{Status: StatusOpen})
}

// FilterByInstructor returns the courses published by the given instructor.
func (svc *Service) FilterByInstructor(username string) ([]Course, error) {
	return svc.repo.FilterCourses(QueryFilter{Instructor: core.CleanString(username)})
}
