// Package iotrack provides a minimal io.Writer wrapper that latches the
// first write error it sees, so repeated writes after a failure don't
// need their own error checks.
package iotrack

import (
	"io"

	"github.com/pkg/errors"
)

// ErrWriter wraps an io.Writer and remembers the first error any Write
// call returned. Once set, Err is returned by every subsequent Write
// without touching the underlying writer again.
type ErrWriter struct {
	w   io.Writer
	Err error
}

// NewErrWriter wraps w.
func NewErrWriter(w io.Writer) *ErrWriter {
	return &ErrWriter{w: w}
}

func (e *ErrWriter) Write(p []byte) (int, error) {
	if e.Err != nil {
		return 0, e.Err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.Err = errors.Wrap(err, "write failed")
	}
	return n, e.Err
}
