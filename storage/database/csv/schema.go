package csvdb

// Table names; each table is one CSV file under the data directory.
const (
	UsersTable       = "users"
	CoursesTable     = "courses"
	AssignmentsTable = "assignments"
	SubmissionsTable = "submissions"
)

// AllTables lists every table Init must migrate, in creation order.
var AllTables = []string{UsersTable, CoursesTable, AssignmentsTable, SubmissionsTable}

// Schema is the authoritative required-column list per table, in header
// order. Migration and bootstrap consult it; no other code redeclares a
// table's column set. Files may carry extra columns (forward-compatible);
// those are preserved but never relied upon.
var Schema = map[string][]string{
	UsersTable: {"user_id", "username", "password", "role", "created_at"},
	CoursesTable: {
		"course_id", "course_name", "description", "instructor",
		"schedule", "created_at", "enrollment_status",
		"image_path", "youtube_link",
	},
	AssignmentsTable: {
		"assignment_id", "course_id", "title", "description",
		"due_date", "max_points", "created_at",
	},
	SubmissionsTable: {
		"submission_id", "assignment_id", "student_username",
		"submission_date", "status", "grade", "feedback",
	},
}

// KeyColumn returns the primary-key column of a table (first schema column).
func KeyColumn(table string) string {
	return Schema[table][0]
}
