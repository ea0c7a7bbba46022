package infrastructure

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"weatherdesk.app/internal/ports"
	"weatherdesk.app/pkg/errors"
)

// FileFavouritesRepository stores favourites as a text file with one city per line
type FileFavouritesRepository struct {
	path string
	mu   sync.Mutex
}

// NewFileFavouritesRepository creates a repository backed by the file at path
func NewFileFavouritesRepository(path string) (*FileFavouritesRepository, error) {
	if path == "" {
		return nil, errors.NewConfigurationError("favourites file path cannot be empty", nil)
	}
	return &FileFavouritesRepository{path: path}, nil
}

// Path returns the location of the backing file
func (r *FileFavouritesRepository) Path() string {
	return r.path
}

// Append adds a line to the end of the file, creating it when needed
func (r *FileFavouritesRepository) Append(ctx context.Context, city string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return errors.NewStorageError("failed to create favourites directory", err)
	}

	file, err := os.OpenFile(r.path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0644)
	if err != nil {
		return errors.NewStorageError("failed to open favourites file", err)
	}
	defer file.Close()

	line := city + "\n"
	terminated, err := endsWithNewline(file)
	if err != nil {
		return errors.NewStorageError("failed to read favourites file", err)
	}
	if !terminated {
		line = "\n" + line
	}

	if _, err := file.WriteString(line); err != nil {
		return errors.NewStorageError("failed to write favourites file", err)
	}
	return nil
}

// List returns every line in file order; a missing file is an empty list
func (r *FileFavouritesRepository) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, errors.NewStorageError("failed to read favourites file", err)
	}

	return splitLines(string(data)), nil
}

// Seed writes defaults only when the file does not exist yet
func (r *FileFavouritesRepository) Seed(ctx context.Context, defaults []string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return false, errors.NewStorageError("failed to create favourites directory", err)
	}

	file, err := os.OpenFile(r.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if os.IsExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.NewStorageError("failed to create favourites file", err)
	}
	defer file.Close()

	var buf strings.Builder
	for _, city := range defaults {
		buf.WriteString(city)
		buf.WriteByte('\n')
	}
	if _, err := file.WriteString(buf.String()); err != nil {
		return false, errors.NewStorageError("failed to write favourites file", err)
	}
	return true, nil
}

// splitLines returns the lines of content without terminators; a final newline does not start a new line
func splitLines(content string) []string {
	lines := []string{}
	if content == "" {
		return lines
	}
	for _, line := range strings.Split(strings.TrimSuffix(content, "\n"), "\n") {
		lines = append(lines, strings.TrimSuffix(line, "\r"))
	}
	return lines
}

func endsWithNewline(file *os.File) (bool, error) {
	info, err := file.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return true, nil
	}

	last := make([]byte, 1)
	if _, err := file.ReadAt(last, info.Size()-1); err != nil && err != io.EOF {
		return false, err
	}
	return last[0] == '\n', nil
}

var _ ports.FavouritesRepository = (*FileFavouritesRepository)(nil)
