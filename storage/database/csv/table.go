package csvdb

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/wanjohi/darasa/core"
)

// Record is one table row, keyed by column name. A null cell is the empty
// string.
type Record map[string]string

// readTable loads a whole table file. A missing file yields a nil header and
// no error (transient pre-bootstrap state). Callers must hold db.mu.
func (db *DB) readTable(table string) (header []string, rows []Record, err error) {
	f, err := os.Open(db.path(table))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, &ReadError{Table: table, Err: err}
	}
	defer f.Close()

	// csv.Reader rejects rows whose field count mismatches the header.
	lines, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, &ReadError{Table: table, Err: err}
	}
	if len(lines) == 0 {
		return nil, nil, nil
	}

	header = lines[0]
	rows = make([]Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rec := make(Record, len(header))
		for i, col := range header {
			rec[col] = line[i]
		}
		rows = append(rows, rec)
	}
	return header, rows, nil
}

// writeTable rewrites a whole table through a temp file + rename so a crash
// never leaves a half-written table behind. Callers must hold db.mu.
func (db *DB) writeTable(table string, header []string, rows []Record) error {
	tmp, err := os.CreateTemp(db.dir, table+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return err
	}
	line := make([]string, len(header))
	for _, rec := range rows {
		for i, col := range header {
			line[i] = rec[col] // missing columns back-fill as null
		}
		if err := w.Write(line); err != nil {
			tmp.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), db.path(table))
}

// EnsureSchema guarantees the table's header is a superset of the registry's
// required columns. A missing file is created with exactly the required
// header and zero rows. An existing file is rewritten only when columns are
// missing: existing column order is preserved, missing columns are appended
// at the end and back-filled with null in every row. Cell values are never
// modified or reordered. Running it twice with no structural change is a
// no-op.
func (db *DB) EnsureSchema(table string) error {
	required, ok := Schema[table]
	if !ok {
		return core.NewInitializationError(nil, "unknown table "+table)
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	header, rows, err := db.readTable(table)
	if err != nil {
		return core.NewInitializationError(err, "migrating table "+table)
	}
	if header == nil {
		if err := db.writeTable(table, required, nil); err != nil {
			return core.NewInitializationError(err, "creating table "+table)
		}
		return nil
	}

	existing := make(map[string]bool, len(header))
	for _, col := range header {
		existing[col] = true
	}
	var missing []string
	for _, col := range required {
		if !existing[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	if err := db.writeTable(table, append(header, missing...), rows); err != nil {
		return core.NewInitializationError(err, "migrating table "+table)
	}
	return nil
}

// ReadAll loads the full table into memory. The file must exist (bootstrap
// guarantees it); table sizes are expected to stay small enough that
// whole-file reads are the simplest correct access model.
func (db *DB) ReadAll(table string) ([]Record, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	header, rows, err := db.readTable(table)
	if err != nil {
		return nil, err
	}
	if header == nil {
		return nil, &ReadError{Table: table, Err: os.ErrNotExist}
	}
	return rows, nil
}

// Filter returns the records matching pred, evaluated in memory over ReadAll.
func (db *DB) Filter(table string, pred func(Record) bool) ([]Record, error) {
	rows, err := db.ReadAll(table)
	if err != nil {
		return nil, err
	}
	var matched []Record
	for _, rec := range rows {
		if pred(rec) {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

// NextID returns 1 for an empty table, otherwise max(key)+1. A key cell that
// does not parse as an integer means the table is corrupt.
func (db *DB) NextID(table, keyColumn string) (int, error) {
	rows, err := db.ReadAll(table)
	if err != nil {
		return 0, err
	}
	max := 0
	for _, rec := range rows {
		id, err := strconv.Atoi(strings.TrimSpace(rec[keyColumn]))
		if err != nil {
			return 0, &ReadError{
				Table: table,
				Err:   errors.Errorf("non-integer %s value %q", keyColumn, rec[keyColumn]),
			}
		}
		if id > max {
			max = id
		}
	}
	return max + 1, nil
}

// Append validates that rec's column set matches the table's current header
// exactly, then writes one row at the end of the file. Not transactional: a
// crash before the write lands leaves the table unmodified; see the package
// comment for the multi-writer hazard.
func (db *DB) Append(table string, rec Record) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	header, _, err := db.readTable(table)
	if err != nil {
		return err
	}
	if header == nil {
		return &WriteError{Table: table, Err: os.ErrNotExist}
	}

	line := make([]string, len(header))
	for i, col := range header {
		v, ok := rec[col]
		if !ok {
			return &WriteError{Table: table, Err: errors.Errorf("record is missing column %q", col)}
		}
		line[i] = v
	}
	if len(rec) != len(header) {
		return &WriteError{Table: table, Err: errors.Errorf("record has %d columns, table has %d", len(rec), len(header))}
	}

	f, err := os.OpenFile(db.path(table), os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return &WriteError{Table: table, Err: err}
	}
	w := csv.NewWriter(f)
	if err := w.Write(line); err != nil {
		f.Close()
		return &WriteError{Table: table, Err: err}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return &WriteError{Table: table, Err: err}
	}
	if err := f.Close(); err != nil {
		return &WriteError{Table: table, Err: err}
	}
	return nil
}
