package course_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wanjohi/darasa/core/course"
	csvdb "github.com/wanjohi/darasa/storage/database/csv"
	testutil "github.com/wanjohi/darasa/tests"
)

func setup(t *testing.T) (*course.Service, course.Repository) {
	db := testutil.InitDB(t)
	repo := csvdb.NewCourseRepository(db)
	return course.NewService(repo, nil), repo
}

func newCourse(name, instructor, status string) course.NewCourse {
	return course.NewCourse{
		Name:        name,
		Description: "about " + name,
		Instructor:  instructor,
		Schedule:    "Mon 10-11",
		Status:      status,
	}
}

func TestService_Create(t *testing.T) {
	svc, _ := setup(t)

	crs, err := svc.Create(newCourse("Intro", "asha", course.StatusOpen))
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	assert.Equal(t, 1, crs.ID)
	assert.Equal(t, course.StatusOpen, crs.Status)
	assert.Empty(t, crs.ImagePath)
	assert.False(t, crs.CreatedAt.IsZero())

	crs2, err := svc.Create(newCourse("Advanced", "asha", course.StatusClosed))
	if err != nil {
		t.Fatalf("Create() #2 failed: %v", err)
	}
	assert.Equal(t, 2, crs2.ID)
}

func TestService_Create_recordsThumbnailPath(t *testing.T) {
	svc, _ := setup(t)

	nc := newCourse("Intro", "asha", course.StatusOpen)
	nc.ImageFilename = "banner.png"

	crs, err := svc.Create(nc)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	// the path embeds the id allocated for this very row
	assert.Equal(t, course.ImageUploadPath(crs.ID, "banner.png"), crs.ImagePath)
	assert.Equal(t, "1_banner.png", filepath.Base(crs.ImagePath))
}

func TestService_Create_validation(t *testing.T) {
	svc, repo := setup(t)

	tests := []struct {
		name string
		nc   course.NewCourse
	}{
		{name: "missing name", nc: course.NewCourse{Description: "d", Instructor: "asha", Schedule: "s", Status: course.StatusOpen}},
		{name: "missing schedule", nc: course.NewCourse{Name: "Intro", Description: "d", Instructor: "asha", Status: course.StatusOpen}},
		{name: "bad status", nc: newCourse("Intro", "asha", "Pending")},
		{name: "lowercase status rejected", nc: newCourse("Intro", "asha", "open")},
		{name: "bad youtube link", nc: func() course.NewCourse {
			nc := newCourse("Intro", "asha", course.StatusOpen)
			nc.YoutubeLink = "not a url"
			return nc
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(tt.nc); err == nil {
				t.Error("Create() expected a validation error")
			}
			courses, err := repo.QueryAllCourses()
			if err != nil {
				t.Fatalf("QueryAllCourses() failed: %v", err)
			}
			assert.Empty(t, courses) // no partial write
		})
	}
}

func TestService_GetByID(t *testing.T) {
	svc, _ := setup(t)

	created, err := svc.Create(newCourse("Intro", "asha", course.StatusOpen))
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	crs, err := svc.GetByID(created.ID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	assert.Equal(t, "Intro", crs.Name)

	if _, err := svc.GetByID(99); err != course.ErrNotFound {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestService_Filters(t *testing.T) {
	svc, _ := setup(t)

	mustCreate := func(nc course.NewCourse) {
		if _, err := svc.Create(nc); err != nil {
			t.Fatalf("Create() failed: %v", err)
		}
	}
	mustCreate(newCourse("Intro", "asha", course.StatusOpen))
	mustCreate(newCourse("Advanced", "asha", course.StatusClosed))
	mustCreate(newCourse("Geometry", "jabari", course.StatusOpen))

	open, err := svc.FilterOpen()
	if err != nil {
		t.Fatalf("FilterOpen() failed: %v", err)
	}
	assert.Len(t, open, 2)
	for _, crs := range open {
		assert.True(t, crs.IsOpen())
	}

	byInstructor, err := svc.FilterByInstructor(" asha ")
	if err != nil {
		t.Fatalf("FilterByInstructor() failed: %v", err)
	}
	assert.Len(t, byInstructor, 2)

	both, err := svc.Filter(course.QueryFilter{Instructor: "asha", Status: course.StatusOpen})
	if err != nil {
		t.Fatalf("Filter() failed: %v", err)
	}
	if assert.Len(t, both, 1) {
		assert.Equal(t, "Intro", both[0].Name)
	}
}

func TestImageUploadPath(t *testing.T) {
	got := course.ImageUploadPath(7, "photo 1.png")
	assert.Equal(t, filepath.Join("uploads", "course_images", "7_photo 1.png"), got)
}
