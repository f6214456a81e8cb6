package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/penwyp/go-shealth-tcx/internal/core/constants"
	"github.com/penwyp/go-shealth-tcx/internal/util"
)

// ErrNoExportFiles is returned when no summary export matches the naming pattern.
var ErrNoExportFiles = errors.New("no summary export files found")

// FileScanner finds summary export files in the specified directory
type FileScanner struct {
	baseDir string
	prefix  string
	suffix  string
}

// NewFileScanner creates a new FileScanner instance
func NewFileScanner(baseDir string) *FileScanner {
	return &FileScanner{
		baseDir: baseDir,
		prefix:  constants.ExportFilePrefix,
		suffix:  constants.ExportFileSuffix,
	}
}

// Scan returns the paths of all export files directly inside the base directory
func (s *FileScanner) Scan() ([]string, error) {
	start := time.Now()
	util.LogDebug(fmt.Sprintf("Start scanning directory: %s", s.baseDir))

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read export directory %s: %w", s.baseDir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if s.matches(entry.Name()) {
			files = append(files, filepath.Join(s.baseDir, entry.Name()))
		}
	}

	util.LogDebug(fmt.Sprintf("File scan completed: duration %v, scanned %d entries, found %d export files",
		time.Since(start), len(entries), len(files)))

	return files, nil
}

// matches accepts <prefix><digits><suffix>. Sibling exports such as
// com.samsung.shealth.exercise.weather.<id>.csv are rejected.
func (s *FileScanner) matches(name string) bool {
	if !strings.HasPrefix(name, s.prefix) || !strings.HasSuffix(name, s.suffix) {
		return false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(name, s.prefix), s.suffix)
	if id == "" {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Latest returns the export file with the highest embedded identifier
func (s *FileScanner) Latest() (string, error) {
	files, err := s.Scan()
	if err != nil {
		return "", err
	}
	latest, err := SelectLatest(files)
	if err != nil {
		return "", fmt.Errorf("%w in %s", err, s.baseDir)
	}
	util.LogInfo(fmt.Sprintf("Selected export file %s out of %d candidates", filepath.Base(latest), len(files)))
	return latest, nil
}

// SelectLatest picks the name whose numeric identifier is largest.
// "export.12.csv" beats "export.5.csv". Names without an identifier are ignored.
func SelectLatest(names []string) (string, error) {
	best := ""
	var bestID int64 = -1
	for _, name := range names {
		id, ok := ExportID(name)
		if !ok {
			util.LogWarn(fmt.Sprintf("Skip export candidate without numeric id: %s", name))
			continue
		}
		if id > bestID {
			best, bestID = name, id
		}
	}
	if best == "" {
		return "", ErrNoExportFiles
	}
	return best, nil
}

// ExportID extracts the dot-separated field right before the extension,
// e.g. 202306011200 from com.samsung.shealth.exercise.202306011200.csv.
func ExportID(name string) (int64, bool) {
	parts := strings.Split(filepath.Base(name), ".")
	if len(parts) < 3 {
		return 0, false
	}
	id, err := strconv.ParseInt(parts[len(parts)-2], 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
