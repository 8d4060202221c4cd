package user_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wanjohi/darasa/core"
	"github.com/wanjohi/darasa/core/user"
	csvdb "github.com/wanjohi/darasa/storage/database/csv"
	testutil "github.com/wanjohi/darasa/tests"
)

func setup(t *testing.T) (*user.Service, user.Repository) {
	db := testutil.InitDB(t)
	repo := csvdb.NewUserRepository(db)
	return user.NewService(repo, nil), repo
}

func TestService_Create(t *testing.T) {
	svc, _ := setup(t)

	// bootstrap admin holds id 1
	usr, err := svc.Create(user.NewUser{
		Username:        " JDoe ",
		Password:        "secret",
		PasswordConfirm: "secret",
		Role:            "Student",
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	assert.Equal(t, 2, usr.ID)
	assert.Equal(t, "JDoe", usr.Username) // trimmed, case preserved
	assert.Equal(t, user.RoleStudent, usr.Role)
	assert.False(t, usr.CreatedAt.IsZero())

	usr2, err := svc.Create(user.NewUser{
		Username:        "asha",
		Password:        "letmein",
		PasswordConfirm: "letmein",
		Role:            user.RoleTeacher,
	})
	if err != nil {
		t.Fatalf("Create() #2 failed: %v", err)
	}
	assert.Equal(t, 3, usr2.ID)
}

func TestService_Create_validation(t *testing.T) {
	svc, repo := setup(t)

	tests := []struct {
		name string
		nu   user.NewUser
	}{
		{name: "missing username", nu: user.NewUser{Password: "secret", PasswordConfirm: "secret", Role: "student"}},
		{name: "missing password", nu: user.NewUser{Username: "jdoe", Role: "student"}},
		{name: "password confirm mismatch", nu: user.NewUser{Username: "jdoe", Password: "secret", PasswordConfirm: "secret2", Role: "student"}},
		{name: "unknown role", nu: user.NewUser{Username: "jdoe", Password: "secret", PasswordConfirm: "secret", Role: "principal"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(tt.nu); err == nil {
				t.Error("Create() expected a validation error")
			}
			// no partial write: only the bootstrap admin exists
			users, err := repo.QueryAllUsers()
			if err != nil {
				t.Fatalf("QueryAllUsers() failed: %v", err)
			}
			assert.Len(t, users, 1)
		})
	}
}

func TestService_Create_duplicateUsername(t *testing.T) {
	svc, repo := setup(t)

	testutil.CreateUser(t, repo, "JDoe", "secret", user.RoleStudent)

	// duplicate check is case-insensitive
	_, err := svc.Create(user.NewUser{
		Username:        "jdoe",
		Password:        "other",
		PasswordConfirm: "other",
		Role:            "teacher",
	})
	vErr, ok := err.(*core.ValidationError)
	if !ok {
		t.Fatalf("Create() error = %v, want *core.ValidationError", err)
	}
	if assert.Len(t, vErr.Fields, 1) {
		assert.Equal(t, "username", vErr.Fields[0].Field)
	}

	users, err := repo.QueryAllUsers()
	if err != nil {
		t.Fatalf("QueryAllUsers() failed: %v", err)
	}
	assert.Len(t, users, 2) // admin + JDoe, row count unchanged
}

func TestService_Authenticate(t *testing.T) {
	svc, _ := setup(t)
	// stored row: ("admin", "admin123", "admin") seeded by bootstrap

	tests := []struct {
		name             string
		uname, pwd, role string
		want             bool
	}{
		{name: "exact match", uname: "admin", pwd: "admin123", role: "admin", want: true},
		{name: "username and role normalized", uname: " Admin ", pwd: "admin123", role: "Admin", want: true},
		{name: "password trimmed", uname: "admin", pwd: " admin123 ", role: "admin", want: true},
		{name: "role mismatch", uname: "admin", pwd: "admin123", role: "student", want: false},
		{name: "password mismatch after trim", uname: "admin", pwd: " admin124", role: "admin", want: false},
		{name: "password case matters", uname: "admin", pwd: "Admin123", role: "admin", want: false},
		{name: "unknown user", uname: "ghost", pwd: "admin123", role: "admin", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := svc.Authenticate(tt.uname, tt.pwd, tt.role)
			if err != nil {
				t.Fatalf("Authenticate() failed: %v", err)
			}
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestService_Authenticate_emptyTable(t *testing.T) {
	db := testutil.OpenDB(t)
	if err := db.EnsureSchema(csvdb.UsersTable); err != nil {
		t.Fatalf("EnsureSchema() failed: %v", err)
	}
	svc := user.NewService(csvdb.NewUserRepository(db), nil)

	ok, err := svc.Authenticate("admin", "admin123", "admin")
	if err != nil {
		t.Fatalf("Authenticate() failed: %v", err)
	}
	assert.False(t, ok)
}

func TestService_Authenticate_failsClosedOnReadError(t *testing.T) {
	db := testutil.OpenDB(t) // users table never created
	svc := user.NewService(csvdb.NewUserRepository(db), nil)

	ok, err := svc.Authenticate("admin", "admin123", "admin")
	assert.False(t, ok)
	if err == nil {
		t.Error("Authenticate() expected a surfaced read error")
	}
}

func TestService_GetByUsername(t *testing.T) {
	svc, repo := setup(t)

	testutil.CreateUser(t, repo, "JDoe", "secret", user.RoleStudent)

	usr, err := svc.GetByUsername(" jdoe ")
	if err != nil {
		t.Fatalf("GetByUsername() failed: %v", err)
	}
	assert.Equal(t, "JDoe", usr.Username)

	if _, err := svc.GetByUsername("ghost"); err != user.ErrNotFound {
		t.Errorf("GetByUsername() error = %v, want ErrNotFound", err)
	}
}

func TestService_Filter(t *testing.T) {
	svc, repo := setup(t)

	old := time.Date(2023, 5, 1, 9, 0, 0, 0, time.UTC)
	testutil.CreateUser(t, repo, "jdoe", "secret", user.RoleStudent, old)
	testutil.CreateUser(t, repo, "asha", "letmein", user.RoleTeacher)
	testutil.CreateUser(t, repo, "jdot", "secret", user.RoleStudent)

	tests := []struct {
		name   string
		filter user.QueryFilter
		want   []string
	}{
		{name: "by role", filter: user.QueryFilter{Role: "Student"}, want: []string{"jdoe", "jdot"}},
		{name: "by search", filter: user.QueryFilter{Search: "JDO"}, want: []string{"jdoe", "jdot"}},
		{name: "search and role", filter: user.QueryFilter{Search: "jdoe", Role: "student"}, want: []string{"jdoe"}},
		{name: "created from", filter: user.QueryFilter{CreatedFrom: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Role: "student"}, want: []string{"jdot"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := svc.Filter(tt.filter)
			if err != nil {
				t.Fatalf("Filter() failed: %v", err)
			}
			unames := make([]string, 0, len(users))
			for _, usr := range users {
				unames = append(unames, usr.Username)
			}
			assert.ElementsMatch(t, tt.want, unames)
		})
	}
}
