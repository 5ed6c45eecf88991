package snapshots

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/cfu288/boinc-statistics-image-generator/internal/domain/stats"
)

const (
	defaultLockTimeout = 5 * time.Second
	lockRetryDelay     = 50 * time.Millisecond
)

// writeTmp is a var so tests can simulate a failed partial write.
var writeTmp = os.WriteFile

// Snapshot is the JSON document written next to the image when enabled.
type Snapshot struct {
	Records []stats.UserStat `json:"records"`
}

// Writer persists run outputs atomically. Each target is guarded by an
// advisory <path>.lock so concurrent runs never interleave writes.
type Writer struct {
	lockTimeout time.Duration
}

// NewWriter constructs a writer; a non-positive lockTimeout uses the default.
func NewWriter(lockTimeout time.Duration) *Writer {
	if lockTimeout <= 0 {
		lockTimeout = defaultLockTimeout
	}
	return &Writer{lockTimeout: lockTimeout}
}

// WriteImage writes encoded image bytes to path. It reports whether the file changed.
func (w *Writer) WriteImage(ctx context.Context, path string, data []byte) (bool, error) {
	if len(data) == 0 {
		return false, errors.New("image data required")
	}
	return w.writeFile(ctx, path, data)
}

// WriteSnapshot writes the records as indented JSON to path. It reports whether the file changed.
func (w *Writer) WriteSnapshot(ctx context.Context, path string, records []stats.UserStat) (bool, error) {
	if records == nil {
		records = []stats.UserStat{}
	}
	data, err := json.MarshalIndent(Snapshot{Records: records}, "", "  ")
	if err != nil {
		return false, err
	}
	return w.writeFile(ctx, path, append(data, '\n'))
}

func (w *Writer) writeFile(ctx context.Context, target string, data []byte) (bool, error) {
	if w == nil {
		return false, errors.New("writer not configured")
	}
	if target == "" {
		return false, errors.New("output path required")
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return false, err
	}

	unlock, err := w.lock(ctx, target)
	if err != nil {
		return false, err
	}
	defer unlock()

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return false, nil
	}

	tmp := target + ".tmp"
	if err := writeTmp(tmp, data, 0o644); err != nil {
		_ = os.Remove(tmp)
		return false, err
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return false, err
	}
	return true, nil
}

func (w *Writer) lock(ctx context.Context, target string) (func(), error) {
	lockCtx, cancel := context.WithTimeout(ctx, w.lockTimeout)
	defer cancel()

	fl := flock.New(target + ".lock")
	locked, err := fl.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", target, err)
	}
	if !locked {
		return nil, fmt.Errorf("lock %s: held by another process", target)
	}
	return func() { _ = fl.Unlock() }, nil
}
