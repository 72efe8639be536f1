package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"imageshare/internal/models"
)

type Storage interface {
	// Save writes the file bytes under a sanitized version of fileName and
	// returns the stored name. An existing file with the same name is
	// overwritten.
	Save(fileName string, file io.Reader) (string, error)
	// Remove deletes the stored file. A file that is already absent is not
	// an error.
	Remove(fileName string) error
	Open(fileName string) (io.ReadCloser, error)
}

type DiskStorage struct {
	dir string
}

func NewDiskStorage(dir string) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return nil, fmt.Errorf("could not create upload dir: %w", err)
	}

	return &DiskStorage{dir: dir}, nil
}

// SanitizeFilename strips path separators and traversal sequences so the
// result is always a plain name usable as a key inside the upload dir.
func SanitizeFilename(fileName string) string {
	fileName = strings.ReplaceAll(fileName, "\\", "/")
	fileName = filepath.Base(fileName)
	fileName = strings.ReplaceAll(fileName, "..", "")
	fileName = strings.Trim(fileName, ". ")
	return fileName
}

func (s *DiskStorage) Save(fileName string, file io.Reader) (string, error) {
	name := SanitizeFilename(fileName)
	if name == "" {
		return "", fmt.Errorf("empty filename: %w", models.ErrBadRequest)
	}

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("could not create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, file); err != nil {
		return "", fmt.Errorf("could not write file: %w", err)
	}

	return name, nil
}

func (s *DiskStorage) Remove(fileName string) error {
	name := SanitizeFilename(fileName)
	if name == "" {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not remove file: %w", err)
	}

	return nil
}

func (s *DiskStorage) Open(fileName string) (io.ReadCloser, error) {
	name := SanitizeFilename(fileName)
	if name == "" {
		return nil, fmt.Errorf("file: %w", models.ErrNotFound)
	}

	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file %s: %w", name, models.ErrNotFound)
		}
		return nil, fmt.Errorf("could not open file: %w", err)
	}

	return f, nil
}
