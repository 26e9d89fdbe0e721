package logging

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrEmptyLogDirectory = errors.New("log directory cannot be empty")
	ErrNotADirectory     = errors.New("log directory path is not a directory")
)

// File permission constants
const (
	logDirPerm  os.FileMode = 0o750
	logFilePerm os.FileMode = 0o600
)

// GenerateRunID returns a new UUID v4 identifying one demo run.
func GenerateRunID() string {
	return uuid.New().String()
}

// ValidateLogDir checks that dir is usable as a log directory. A missing
// directory is fine; it is created when the log file is opened.
func ValidateLogDir(dir string) error {
	if dir == "" {
		return ErrEmptyLogDirectory
	}

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("cannot stat log directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}
	return nil
}

// OpenRunLog creates the per-run log file under dir, auto-named
// <hostname>_<timestamp>_<runID>.json, and returns the open file and its
// path.
func OpenRunLog(dir, runID string) (*os.File, string, error) {
	if err := ValidateLogDir(dir); err != nil {
		return nil, "", err
	}

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	timestamp := time.Now().Format("20060102T150405Z")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s_%s.json", hostname, timestamp, runID))

	if err := os.MkdirAll(dir, logDirPerm); err != nil {
		return nil, "", fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, logFilePerm)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return file, path, nil
}
