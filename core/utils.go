package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Timestamp is the layout used for every timestamp cell in the table files.
const Timestamp = "2006-01-02 15:04:05"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// FormatTime renders `t` as a timestamp cell; the zero time becomes a null cell.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(Timestamp)
}

// ParseTime parses a timestamp cell; null or unparseable cells yield the zero time.
// Migrated rows may legitimately carry null timestamps.
func ParseTime(s string) time.Time {
	t, _ := time.Parse(Timestamp, strings.TrimSpace(s))
	return t
}

// Getwd tries to find the project root.
// go-test changes the working directory to the test package being run during tests... this breaks our code...
// see: https://stackoverflow.com/questions/23847003/golang-tests-and-working-directory
// falls back to the current directory when the root is not an ancestor.
func Getwd() string {
	root := "darasa"
	wd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	currDir := wd
	for {
		if fi, err := os.Stat(currDir); err == nil {
			dirBase := filepath.Base(currDir)
			if dirBase == root && fi.IsDir() {
				return currDir
			}
		}
		newDir := filepath.Dir(currDir)
		if newDir == string(os.PathSeparator) || newDir == currDir {
			return wd
		}
		currDir = newDir
	}
}
