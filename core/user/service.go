package user

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/wanjohi/darasa/core"
)

var (
	// errors
	ErrNotFound       = errors.New("user not found")
	ErrUsernameExists = errors.New("a user with this username already exists")
)

type (
	// Repository is the persistence contract for users.
	//
	// The backing store is append-only and assumes a single logical writer;
	// see the storage package for the concurrency precondition.
	Repository interface {
		CheckUsernameUniqueness(username string) error
		CreateUser(user User) (User, error)
		QueryAllUsers() ([]User, error)
		GetUserByUsername(username string) (User, error)
		// FilterUsers applies AND operation on available QueryFilter fields.
		// QueryFilter.Search does a case-insensitive match on User.Username.
		FilterUsers(filter QueryFilter) ([]User, error)
	}

	Service struct {
		repo Repository
		log  core.Logger
	}
)

func NewService(repo Repository, log core.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (svc *Service) checkUniqueness(uname string) error {
	if err := svc.repo.CheckUsernameUniqueness(uname); err != nil {
		if err == ErrUsernameExists {
			return core.NewValidationError(err, core.FieldError{Field: "username", Error: err.Error()})
		}
		return err
	}
	return nil
}

// Create validates nu and appends a new User row. No row is written when
// validation fails.
func (svc *Service) Create(nu NewUser) (User, error) {
	if err := nu.Validate(svc); err != nil {
		return User{}, err
	}
	usr := User{
		Username:  nu.Username,
		Password:  nu.Password,
		Role:      nu.Role,
		CreatedAt: time.Now(),
	}
	return svc.repo.CreateUser(usr)
}

func (svc *Service) QueryAll() ([]User, error) {
	return svc.repo.QueryAllUsers()
}

func (svc *Service) GetByUsername(uname string) (User, error) {
	return svc.repo.GetUserByUsername(core.CleanString(uname, true /* lower */))
}

func (svc *Service) Filter(filter QueryFilter) ([]User, error) {
	filter.Clean()
	return svc.repo.FilterUsers(filter)
}

// Authenticate reports whether a user row matches the given credentials.
// Username and role are matched after trimming and lowering; the password is
// compared byte-for-byte after trimming. A read failure fails closed: the
// caller gets false plus the error for logging, never a panic.
func (svc *Service) Authenticate(uname, pwd, role string) (bool, error) {
	users, err := svc.repo.QueryAllUsers()
	if err != nil {
		if svc.log != nil {
			svc.log.Error("authentication: loading users failed", err)
		}
		return false, err
	}

	uname = core.CleanString(uname, true /* lower */)
	pwd = strings.TrimSpace(pwd)
	role = core.CleanString(role, true /* lower */)
	for _, usr := range users {
		if core.CleanString(usr.Username, true) == uname &&
			strings.TrimSpace(usr.Password) == pwd &&
			core.CleanString(usr.Role, true) == role {
			return true, nil
		}
	}
	return false, nil
}
