package session

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestSession_transitions(t *testing.T) {
	sess := New()
	assert.NotEmpty(t, sess.Key)
	assert.False(t, sess.LoggedIn)

	sess.Login(" JDoe ", "Student")
	assert.True(t, sess.LoggedIn)
	assert.Equal(t, "JDoe", sess.Username)
	assert.Equal(t, "student", sess.Role) // role is stored lower-case

	sess.Logout()
	assert.False(t, sess.LoggedIn)
	assert.Empty(t, sess.Role)
	assert.Empty(t, sess.Username)
}

func TestRoute(t *testing.T) {
	login := func(uname, role string) *Session {
		sess := New()
		sess.Login(uname, role)
		return sess
	}

	tests := []struct {
		name    string
		sess    *Session
		want    View
		wantErr error
	}{
		{name: "nil session", sess: nil, want: ViewNone, wantErr: ErrNotAuthenticated},
		{name: "not logged in", sess: New(), want: ViewNone, wantErr: ErrNotAuthenticated},
		{name: "student", sess: login("jdoe", "student"), want: ViewStudent},
		{name: "teacher", sess: login("asha", "Teacher"), want: ViewTeacher},
		{name: "admin", sess: login("admin", "ADMIN"), want: ViewAdmin},
		{name: "unknown role", sess: login("jdoe", "principal"), want: ViewNone, wantErr: ErrUnknownRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := Route(tt.sess)
			assert.Equal(t, tt.want, view)
			if tt.wantErr != nil {
				if errors.Cause(err) != tt.wantErr {
					t.Errorf("Route() error = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Errorf("Route() unexpected error = %v", err)
			}
		})
	}
}

func TestRoute_afterLogout(t *testing.T) {
	sess := New()
	sess.Login("jdoe", "student")
	sess.Logout()

	if _, err := Route(sess); err != ErrNotAuthenticated {
		t.Errorf("Route() error = %v, want ErrNotAuthenticated", err)
	}
}
