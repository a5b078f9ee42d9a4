package vm

import "github.com/pkg/errors"

// ErrUnexpectedEOF is returned by Run when an Input instruction finds
// the input reader exhausted. It is distinguished from a generic I/O
// failure so callers can present a different message for "ran out of
// input" versus "the input stream broke".
var ErrUnexpectedEOF = errors.New("brainfuck: unexpected end of input")

// RuntimeError wraps a failure that aborted a Run, together with the
// machine state at the point of failure. The tape and registers are
// left exactly as they were when the error occurred, but Tape/Cell are
// still reachable through the Machine itself if a caller wants them;
// RuntimeError only carries the two fields useful in an error message.
type RuntimeError struct {
	PC   int
	Head int
	Err  error
}

func (e *RuntimeError) Error() string {
	return errors.Wrapf(e.Err, "brainfuck: run failed at pc=%d head=%d", e.PC, e.Head).Error()
}

func (e *RuntimeError) Unwrap() error { return e.Err }
