package session

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/wanjohi/darasa/core"
	"github.com/wanjohi/darasa/core/user"
)

var (
	// errors
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrUnknownRole      = errors.New("unknown role")
)

// View identifies the role-scoped view controller a session is routed to.
type View int

const (
	ViewNone View = iota
	ViewStudent
	ViewTeacher
	ViewAdmin
)

func (v View) String() string {
	switch v {
	case ViewStudent:
		return "student"
	case ViewTeacher:
		return "teacher"
	case ViewAdmin:
		return "admin"
	}
	return "none"
}

// Session holds one logged-in identity. It is created per logical connection
// and passed explicitly by the caller; there is no ambient global, no token
// and no timeout — identity lives as long as the Session value does.
type Session struct {
	Key      string `json:"key"`
	LoggedIn bool   `json:"logged_in"`
	Role     string `json:"role"`
	Username string `json:"username"`
}

func New() *Session {
	return &Session{Key: uuid.New().String()}
}

// Login records an authenticated identity. The caller must have verified the
// credentials via user.Service.Authenticate first.
func (s *Session) Login(username, role string) {
	s.LoggedIn = true
	s.Username = core.CleanString(username)
	s.Role = core.CleanString(role, true /* lower */)
}

func (s *Session) Logout() {
	s.LoggedIn = false
	s.Role = ""
	s.Username = ""
}

// Route returns the single view the session's role grants access to.
// An unauthenticated session gets ErrNotAuthenticated; a role outside
// user.AllRoles gets ErrUnknownRole instead of a silent dead end.
func Route(s *Session) (View, error) {
	if s == nil || !s.LoggedIn {
		return ViewNone, ErrNotAuthenticated
	}
	switch core.CleanString(s.Role, true /* lower */) {
	case user.RoleStudent:
		return ViewStudent, nil
	case user.RoleTeacher:
		return ViewTeacher, nil
	case user.RoleAdmin:
		return ViewAdmin, nil
	}
	return ViewNone, errors.Wrapf(ErrUnknownRole, "role %q", s.Role)
}
