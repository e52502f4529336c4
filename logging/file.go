package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// RotatingFile is an io.Writer that appends to dir/name and rotates the file
// once it would exceed maxSize bytes or is a day old. Rotated files are
// gzipped and only the newest maxFiles are kept.
type RotatingFile struct {
	mu          sync.Mutex
	dir         string
	name        string
	maxSize     int64
	maxFiles    int
	now         func() time.Time
	file        *os.File
	size        int64
	openedAt    time.Time
	rotateAfter time.Duration
}

// OpenRotatingFile creates dir if needed and opens the active log file.
func OpenRotatingFile(dir, name string, maxSizeMB, maxFiles int) (*RotatingFile, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	if maxFiles <= 0 {
		maxFiles = 5
	}
	rf := &RotatingFile{
		dir:         dir,
		name:        name,
		maxSize:     int64(maxSizeMB) * 1024 * 1024,
		maxFiles:    maxFiles,
		now:         time.Now,
		rotateAfter: 24 * time.Hour,
	}
	if err := rf.open(); err != nil {
		return nil, err
	}
	return rf, nil
}

// Path returns the active log file path.
func (rf *RotatingFile) Path() string {
	return filepath.Join(rf.dir, rf.name)
}

func (rf *RotatingFile) open() error {
	f, err := os.OpenFile(rf.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	rf.file = f
	rf.size = info.Size()
	rf.openedAt = rf.now()
	return nil
}

func (rf *RotatingFile) Write(p []byte) (int, error) {
	rf.mu.Lock()
	defer rf.mu.Unlock()

	if rf.file == nil {
		return 0, os.ErrClosed
	}
	if rf.shouldRotate(int64(len(p))) {
		if err := rf.rotate(); err != nil {
			return 0, err
		}
	}
	n, err := rf.file.Write(p)
	rf.size += int64(n)
	return n, err
}

func (rf *RotatingFile) shouldRotate(incoming int64) bool {
	if rf.size > 0 && rf.size+incoming > rf.maxSize {
		return true
	}
	return rf.now().Sub(rf.openedAt) > rf.rotateAfter
}

func (rf *RotatingFile) rotate() error {
	if err := rf.file.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	rotated := fmt.Sprintf("%s.%s", rf.Path(), rf.now().Format("20060102-150405.000000000"))
	if err := os.Rename(rf.Path(), rotated); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("rename log file: %w", err)
	}
	if err := compressFile(rotated); err != nil {
		return err
	}
	rf.prune()
	return rf.open()
}

func compressFile(path string) error {
	in, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open rotated log: %w", err)
	}
	defer in.Close()

	out, err := os.Create(path + ".gz")
	if err != nil {
		return fmt.Errorf("create compressed log: %w", err)
	}
	gz := gzip.NewWriter(out)
	if _, err := io.Copy(gz, in); err != nil {
		gz.Close()
		out.Close()
		os.Remove(path + ".gz")
		return fmt.Errorf("compress rotated log: %w", err)
	}
	if err := gz.Close(); err != nil {
		out.Close()
		return fmt.Errorf("flush compressed log: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close compressed log: %w", err)
	}
	return os.Remove(path)
}

func (rf *RotatingFile) prune() {
	matches, err := filepath.Glob(rf.Path() + ".*.gz")
	if err != nil || len(matches) <= rf.maxFiles {
		return
	}
	// Rotation stamps sort chronologically.
	sort.Strings(matches)
	for _, path := range matches[:len(matches)-rf.maxFiles] {
		os.Remove(path)
	}
}

// Close closes the active file.
func (rf *RotatingFile) Close() error {
	rf.mu.Lock()
	defer rf.mu.Unlock()
	if rf.file == nil {
		return nil
	}
	err := rf.file.Close()
	rf.file = nil
	return err
}
