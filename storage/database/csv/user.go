package csvdb

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/wanjohi/darasa/core"
	"github.com/wanjohi/darasa/core/user"
)

type userRepository struct {
	db *DB
}

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db}
}

func marshalUser(usr user.User) Record {
	return Record{
		"user_id":    strconv.Itoa(usr.ID),
		"username":   usr.Username,
		"password":   usr.Password,
		"role":       usr.Role,
		"created_at": core.FormatTime(usr.CreatedAt),
	}
}

func unmarshalUser(rec Record) (user.User, error) {
	id, err := strconv.Atoi(strings.TrimSpace(rec["user_id"]))
	if err != nil {
		return user.User{}, &ReadError{
			Table: UsersTable,
			Err:   errors.Errorf("non-integer user_id value %q", rec["user_id"]),
		}
	}
	return user.User{
		ID:        id,
		Username:  rec["username"],
		Password:  rec["password"],
		Role:      rec["role"],
		CreatedAt: core.ParseTime(rec["created_at"]),
	}, nil
}

func (repo *userRepository) query() ([]user.User, error) {
	rows, err := repo.db.ReadAll(UsersTable)
	if err != nil {
		return nil, err
	}
	users := make([]user.User, 0, len(rows))
	for _, rec := range rows {
		usr, err := unmarshalUser(rec)
		if err != nil {
			return nil, err
		}
		users = append(users, usr)
	}
	return users, nil
}

func (repo *userRepository) CheckUsernameUniqueness(username string) error {
	users, err := repo.query()
	if err != nil {
		return err
	}
	uname := core.CleanString(username, true /* lower */)
	for _, usr := range users {
		if core.CleanString(usr.Username, true) == uname {
			return user.ErrUsernameExists
		}
	}
	return nil
}

func (repo *userRepository) CreateUser(usr user.User) (user.User, error) {
	id, err := repo.db.NextID(UsersTable, KeyColumn(UsersTable))
	if err != nil {
		return user.User{}, err
	}
	usr.ID = id
	if usr.CreatedAt.IsZero() {
		usr.CreatedAt = time.Now()
	}
	if err := repo.db.Append(UsersTable, marshalUser(usr)); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (repo *userRepository) QueryAllUsers() ([]user.User, error) {
	return repo.query()
}

func (repo *userRepository) GetUserByUsername(username string) (user.User, error) {
	users, err := repo.query()
	if err != nil {
		return user.User{}, err
	}
	uname := core.CleanString(username, true /* lower */)
	for _, usr := range users {
		if core.CleanString(usr.Username, true) == uname {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) FilterUsers(filter user.QueryFilter) ([]user.User, error) {
	users, err := repo.query()
	if err != nil {
		return nil, err
	}
	if filter.IsEmpty() {
		return users, nil
	}

	matched := make([]user.User, 0, len(users))
	for _, usr := range users {
		if filter.Search != "" && !strings.Contains(core.CleanString(usr.Username, true), filter.Search) {
			continue
		}
		if filter.Role != "" && core.CleanString(usr.Role, true) != filter.Role {
			continue
		}
		if !filter.CreatedFrom.IsZero() && usr.CreatedAt.Before(filter.CreatedFrom) {
			continue
		}
		if !filter.CreatedTo.IsZero() && usr.CreatedAt.After(filter.CreatedTo) {
			continue
		}
		matched = append(matched, usr)
	}
	return matched, nil
}
