package testutil

import (
	"io/ioutil"
	"testing"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/wanjohi/darasa/core/user"
	csvdb "github.com/wanjohi/darasa/storage/database/csv"
)

// OpenDB opens a store on a fresh temp directory without migrating it.
func OpenDB(t *testing.T) *csvdb.DB {
	db, err := csvdb.Open(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("OpenDB() failed: %v", err)
	}
	return db
}

// InitDB opens and fully initializes a store (tables migrated, default
// admin seeded).
func InitDB(t *testing.T) *csvdb.DB {
	db := OpenDB(t)
	if err := db.Init(); err != nil {
		t.Fatalf("InitDB() failed: %v", err)
	}
	return db
}

func CreateUser(
	t *testing.T,
	repo user.Repository,
	uname, pwd, role string,
	createdAt ...time.Time,
) user.User {
	tstamp := time.Now()
	if len(createdAt) > 0 {
		tstamp = createdAt[0]
	}
	usr := user.User{
		Username:  uname,
		Password:  pwd,
		Role:      role,
		CreatedAt: tstamp,
	}
	usr, err := repo.CreateUser(usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

// ReadFile returns the raw contents of a table file.
func ReadFile(t *testing.T, path string) string {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s) failed: %v", path, err)
	}
	return string(data)
}

// AssertFileEqual fails with a unified diff when the file's contents differ
// from want.
func AssertFileEqual(t *testing.T, path, want string) {
	t.Helper()
	got := ReadFile(t, path)
	if got != want {
		diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(want),
			B:        difflib.SplitLines(got),
			FromFile: "want",
			ToFile:   path,
			Context:  3,
		})
		t.Errorf("file contents mismatch:\n%s", diff)
	}
}
