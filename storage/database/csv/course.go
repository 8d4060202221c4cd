package csvdb

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/wanjohi/darasa/core"
	"github.com/wanjohi/darasa/core/course"
)

type courseRepository struct {
	db *DB
}

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{db: db}
}

func marshalCourse(crs course.Course) Record {
	return Record{
		"course_id":         strconv.Itoa(crs.ID),
		"course_name":       crs.Name,
		"description":       crs.Description,
		"instructor":        crs.Instructor,
		"schedule":          crs.Schedule,
		"created_at":        core.FormatTime(crs.CreatedAt),
		"enrollment_status": crs.Status,
		"image_path":        crs.ImagePath,
		"youtube_link":      crs.YoutubeLink,
	}
}

func unmarshalCourse(rec Record) (course.Course, error) {
	id, err := strconv.Atoi(strings.TrimSpace(rec["course_id"]))
	if err != nil {
		return course.Course{}, &ReadError{
			Table: CoursesTable,
			Err:   errors.Errorf("non-integer course_id value %q", rec["course_id"]),
		}
	}
	return course.Course{
		ID:          id,
		Name:        rec["course_name"],
		Description: rec["description"],
		Instructor:  rec["instructor"],
		Schedule:    rec["schedule"],
		CreatedAt:   core.ParseTime(rec["created_at"]),
		Status:      rec["enrollment_status"],
		ImagePath:   rec["image_path"],
		YoutubeLink: rec["youtube_link"],
	}, nil
}

func (repo *courseRepository) query() ([]course.Course, error) {
	rows, err := repo.db.ReadAll(CoursesTable)
	if err != nil {
		return nil, err
	}
	courses := make([]course.Course, 0, len(rows))
	for _, rec := range rows {
		crs, err := unmarshalCourse(rec)
		if err != nil {
			return nil, err
		}
		courses = append(courses, crs)
	}
	return courses, nil
}

func (repo *courseRepository) NextCourseID() (int, error) {
	return repo.db.NextID(CoursesTable, KeyColumn(CoursesTable))
}

func (repo *courseRepository) CreateCourse(crs course.Course) (course.Course, error) {
	if crs.ID == 0 {
		id, err := repo.NextCourseID()
		if err != nil {
			return course.Course{}, err
		}
		crs.ID = id
	}
	if err := repo.db.Append(CoursesTable, marshalCourse(crs)); err != nil {
		return course.Course{}, err
	}
	return crs, nil
}

func (repo *courseRepository) QueryAllCourses() ([]course.Course, error) {
	return repo.query()
}

func (repo *courseRepository) GetCourseByID(id int) (course.Course, error) {
	courses, err := repo.query()
	if err != nil {
		return course.Course{}, err
	}
	for _, crs := range courses {
		if crs.ID == id {
			return crs, nil
		}
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) FilterCourses(filter course.QueryFilter) ([]course.Course, error) {
	courses, err := repo.query()
	if err != nil {
		return nil, err
	}
	if filter.IsEmpty() {
		return courses, nil
	}

	matched := make([]course.Course, 0, len(courses))
	for _, crs := range courses {
		if filter.Instructor != "" && crs.Instructor != filter.Instructor {
			continue
		}
		if filter.Status != "" && crs.Status != filter.Status {
			continue
		}
		matched = append(matched, crs)
	}
	return matched, nil
}
