package fs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrNotFound is returned by ReadText when the path does not resolve to a
// regular file.
var ErrNotFound = errors.New("file not found")

// ReadError wraps any failure to read a script other than it being missing.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

var errInvalidUTF8 = errors.New("content is not valid UTF-8")

// Predicate decides whether a directory entry is listed.
type Predicate func(entry fs.DirEntry) bool

// IsDir keeps subdirectories whose name is not in ignore.
func IsDir(ignore ...string) Predicate {
	return func(entry fs.DirEntry) bool {
		return entry.IsDir() && !isIgnoredDir(entry.Name(), ignore)
	}
}

// HasSuffix keeps files whose name ends with suffix.
func HasSuffix(suffix string) Predicate {
	return func(entry fs.DirEntry) bool {
		if entry.IsDir() {
			return false
		}
		return strings.HasSuffix(entry.Name(), suffix)
	}
}

// ListEntries returns the names of the entries in path accepted by keep,
// sorted by name. Hidden entries are never listed. A missing directory
// yields an empty list.
func ListEntries(path string, keep Predicate) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("list %s: %w", path, err)
	}

	names := []string{}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if keep(entry) {
			names = append(names, entry.Name())
		}
	}

	return names, nil
}

// ReadText returns the full UTF-8 content of the file at path.
func ReadText(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", &ReadError{Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return "", ErrNotFound
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", &ReadError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &ReadError{Path: path, Err: errInvalidUTF8}
	}

	return string(data), nil
}

func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
