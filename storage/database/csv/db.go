// Package csvdb implements the flat-file table store: one CSV file per
// entity, header row first, append-only data rows.
//
// Concurrency precondition: the store serves one interactive user per
// process. A DB-level RWMutex serializes access within a process, but there
// is no file locking across processes and no transaction isolation; two
// writers racing NextID/Append can allocate duplicate keys. Concurrent
// multi-writer use is out of scope, not silently tolerated.
package csvdb

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/wanjohi/darasa/core"
	"github.com/wanjohi/darasa/core/user"
)

type DB struct {
	dir string
	mu  sync.RWMutex
	log core.Logger
}

// Open ensures the data directory exists and returns a handle on it. It does
// not migrate tables; call Init before serving.
func Open(dir string, log core.Logger) (*DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, core.NewInitializationError(err, "creating data directory "+dir)
	}
	return &DB{dir: dir, log: log}, nil
}

// Dir returns the data directory backing this store.
func (db *DB) Dir() string { return db.dir }

func (db *DB) path(table string) string {
	return filepath.Join(db.dir, table+".csv")
}

// Init runs the one-time startup procedure: migrate every table to the
// registry schema, then guarantee an admin account exists. Idempotent,
// except that an admin deleted out-of-band is deliberately re-created on
// the next boot. Any failure is fatal; the process must not serve requests
// over an unmigrated store.
func (db *DB) Init() error {
	for _, table := range AllTables {
		if err := db.EnsureSchema(table); err != nil {
			return err
		}
	}
	return db.ensureDefaultAdmin()
}

// ensureDefaultAdmin appends a well-known admin account when no user row has
// role admin. It only ever appends; existing rows are never altered.
func (db *DB) ensureDefaultAdmin() error {
	rows, err := db.ReadAll(UsersTable)
	if err != nil {
		return core.NewInitializationError(err, "checking for admin account")
	}
	for _, rec := range rows {
		if core.CleanString(rec["role"], true /* lower */) == user.RoleAdmin {
			return nil
		}
	}

	id, err := db.NextID(UsersTable, KeyColumn(UsersTable))
	if err != nil {
		return core.NewInitializationError(err, "allocating admin user_id")
	}
	rec := Record{
		"user_id":    strconv.Itoa(id),
		"username":   core.Conf.GetString("defaultAdminUsername"),
		"password":   core.Conf.GetString("defaultAdminPassword"),
		"role":       user.RoleAdmin,
		"created_at": core.FormatTime(time.Now()),
	}
	if err := db.Append(UsersTable, rec); err != nil {
		return core.NewInitializationError(err, "seeding default admin account")
	}
	if db.log != nil {
		db.log.Warn("no admin account found; created default admin", rec["username"])
	}
	return nil
}
