package vm

import (
	"io"

	"github.com/pkg/errors"

	"github.com/remind-me-later/brainfuck/internal/iotrack"
	"github.com/remind-me-later/brainfuck/ir"
)

// flusher is implemented by output writers that buffer internally
// (e.g. bufio.Writer). Run flushes out before every blocking read so
// prompts written before an Input instruction are visible to the user
// before they're asked to supply a byte.
type flusher interface {
	Flush() error
}

// Run executes the Machine's program to completion against out and in.
// It returns nil on normal termination (pc reaches the end of the
// program) or a *RuntimeError wrapping the failure: an I/O error from
// out, an I/O error from in, or ErrUnexpectedEOF if in is exhausted
// during an Input instruction.
//
// Run panics recovered from the dispatch loop (e.g. a jump target out
// of range, which should never happen for a program produced by
// parser.Parse) are also reported as a *RuntimeError rather than
// propagated, so a parser bug never crashes a caller that only trusts
// well-formed programs.
func (m *Machine) Run(out io.Writer, in io.Reader) (err error) {
	ew := iotrack.NewErrWriter(out)

	defer func() {
		if e := recover(); e != nil {
			if re, ok := e.(error); ok {
				err = &RuntimeError{PC: m.pc, Head: m.head, Err: errors.Wrap(re, "recovered")}
			} else {
				err = &RuntimeError{PC: m.pc, Head: m.head, Err: errors.Errorf("recovered: %v", e)}
			}
		}
	}()

	m.steps = 0
	prog := m.program
	for m.pc < len(prog) {
		inst := prog[m.pc]
		switch inst.Kind {
		case ir.Nop:
			// no-op

		case ir.Left:
			a := inst.Payload
			if a > m.head {
				m.head = TapeLen - (a - m.head)
			} else {
				m.head -= a
			}

		case ir.Right:
			m.head = (m.head + inst.Payload) % TapeLen

		case ir.Add:
			m.tape[m.head] += byte(inst.Payload)

		case ir.Sub:
			m.tape[m.head] -= byte(inst.Payload)

		case ir.Zero:
			m.tape[m.head] = 0

		case ir.Input:
			for k := 0; k < inst.Payload; k++ {
				if f, ok := out.(flusher); ok {
					if ferr := f.Flush(); ferr != nil {
						return &RuntimeError{PC: m.pc, Head: m.head, Err: errors.Wrap(ferr, "output flush before read failed")}
					}
				}
				var b [1]byte
				if _, rerr := io.ReadFull(in, b[:]); rerr != nil {
					if rerr == io.EOF || rerr == io.ErrUnexpectedEOF {
						return &RuntimeError{PC: m.pc, Head: m.head, Err: ErrUnexpectedEOF}
					}
					return &RuntimeError{PC: m.pc, Head: m.head, Err: errors.Wrap(rerr, "input read failed")}
				}
				m.tape[m.head] = b[0]
			}

		case ir.Output:
			for k := 0; k < inst.Payload; k++ {
				if _, werr := ew.Write([]byte{m.tape[m.head]}); werr != nil {
					return &RuntimeError{PC: m.pc, Head: m.head, Err: werr}
				}
			}

		case ir.Open:
			if m.tape[m.head] == 0 {
				m.pc = inst.Payload - 1
			}

		case ir.Close:
			if m.tape[m.head] != 0 {
				m.pc = inst.Payload
			}
		}
		m.pc++
		m.steps++
	}

	if f, ok := out.(flusher); ok {
		if ferr := f.Flush(); ferr != nil {
			return &RuntimeError{PC: m.pc, Head: m.head, Err: errors.Wrap(ferr, "final output flush failed")}
		}
	}

	return nil
}
