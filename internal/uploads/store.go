// Package uploads manages the flat directory that holds generated order
// workbooks and uploaded blog images. The directory is also served as static
// content, so stored names are always bare file names.
package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	apperrors "puramente/internal/errors"
)

const URLPrefix = "/uploads"

type Store struct {
	dir string
}

// NewStore creates the uploads directory if it does not exist yet.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating uploads directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Path resolves a bare file name inside the uploads directory. Names carrying
// path separators or parent references are rejected so a download request can
// never escape the directory.
func (s *Store) Path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", apperrors.NewValidationError("invalid file name", apperrors.ValidationDetail{
			Field:   "filename",
			Message: "file name must not contain path elements",
		})
	}
	return filepath.Join(s.dir, name), nil
}

// RelativePath returns the client-facing path stored on order records,
// e.g. /uploads/Order_12.xlsx.
func (s *Store) RelativePath(name string) string {
	return URLPrefix + "/" + name
}

// Open opens a previously stored file. A missing file is a NotFoundError; any
// other failure surfaces as-is so callers can report a server error instead.
func (s *Store) Open(name string) (*os.File, os.FileInfo, error) {
	path, err := s.Path(name)
	if err != nil {
		return nil, nil, err
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, nil, apperrors.NewNotFoundError("file not found")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("checking file: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening file: %w", err)
	}

	return f, info, nil
}

// Save writes the reader's content under the given name and returns the
// relative path for persistence.
func (s *Store) Save(name string, r io.Reader) (string, error) {
	path, err := s.Path(name)
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}

	return s.RelativePath(name), nil
}
