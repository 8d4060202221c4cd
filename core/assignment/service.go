package assignment

import (
	"time"

	"github.com/pkg/errors"

	"github.com/wanjohi/darasa/core"
)

var ErrNotFound = errors.New("assignment not found")

type (
	Repository interface {
		CreateAssignment(asg Assignment) (Assignment, error)
		QueryAllAssignments() ([]Assignment, error)
		GetAssignmentByID(id int) (Assignment, error)
		FilterAssignmentsByCourse(courseID int) ([]Assignment, error)
	}

	Service struct {
		repo Repository
		log  core.Logger
	}
)

func NewService(repo Repository, log core.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (svc *Service) Create(na NewAssignment) (Assignment, error) {
	if err := na.Validate(); err != nil {
		return Assignment{}, err
	}
	asg := Assignment{
		CourseID:    na.CourseID,
		Title:       na.Title,
		Description: na.Description,
		DueDate:     na.DueDate,
		MaxPoints:   na.MaxPoints,
		CreatedAt:   time.Now(),
	}
	return svc.repo.CreateAssignment(asg)
}

func (svc *Service) QueryAll() ([]Assignment, error) {
	return svc.repo.QueryAllAssignments()
}

func (svc *Service) GetByID(id int) (Assignment, error) {
	return svc.repo.GetAssignmentByID(id)
}

func (svc *Service) FilterByCourse(courseID int) ([]Assignment, error) {
	return svc.repo.FilterAssignmentsByCourse(courseID)
}
