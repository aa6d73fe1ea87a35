package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var ErrInvalidFilename = errors.New("upload: invalid filename")

// SafeName reduces name to its base component so uploads cannot escape the
// upload directory.
func SafeName(name string) (string, error) {
	base := filepath.Base(filepath.Clean("/" + strings.ReplaceAll(name, `\`, "/")))
	if base == "/" || base == "." || base == ".." || strings.TrimSpace(base) == "" {
		return "", ErrInvalidFilename
	}
	return base, nil
}

// Save writes r to dir/name atomically and returns the final path. An
// existing file with the same name is replaced.
func Save(dir, name string, r io.Reader) (string, error) {
	staged, err := Stage(dir, name, r)
	if err != nil {
		return "", err
	}
	return Promote(staged, dir, name)
}

// Stage writes r to a hidden file in dir that Scan ignores and returns its
// path. Each call gets its own file, so concurrent uploads of one name never
// share a path until one of them is promoted.
func Stage(dir, name string, r io.Reader) (string, error) {
	base, err := SafeName(name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("upload: create dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.part")
	if err != nil {
		return "", fmt.Errorf("upload: create temp: %w", err)
	}

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("upload: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("upload: close: %w", err)
	}
	return tmp.Name(), nil
}

// Promote renames a staged file to dir/name and returns the final path. The
// staged file is removed if the rename fails.
func Promote(staged, dir, name string) (string, error) {
	base, err := SafeName(name)
	if err != nil {
		os.Remove(staged)
		return "", err
	}

	dest := filepath.Join(dir, base)
	if err := os.Rename(staged, dest); err != nil {
		os.Remove(staged)
		return "", fmt.Errorf("upload: rename: %w", err)
	}
	return dest, nil
}

// Scan lists the statement files (*.csv, any case) directly inside dir,
// sorted by name. A missing directory yields no files.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("upload: read dir: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
