package testutil

import (
	"testing"

	"github.com/laurenhamel/plugin-node-tab/pkg/logging"
)

// ExitRecorder records calls to the replaced exit function
type ExitRecorder struct {
	Codes []int
}

// Called reports whether exit was requested at least once
func (r *ExitRecorder) Called() bool {
	return len(r.Codes) > 0
}

// Reset forgets recorded calls
func (r *ExitRecorder) Reset() {
	r.Codes = nil
}

// CaptureExit replaces logging.OsExit for the duration of the test
func CaptureExit(t *testing.T) *ExitRecorder {
	t.Helper()
	rec := &ExitRecorder{}
	orig := logging.OsExit
	logging.OsExit = func(code int) { rec.Codes = append(rec.Codes, code) }
	t.Cleanup(func() { logging.OsExit = orig })
	return rec
}
