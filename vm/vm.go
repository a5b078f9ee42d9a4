package vm

import "github.com/remind-me-later/brainfuck/ir"

// TapeLen is the fixed number of cells on the tape.
const TapeLen = ir.TapeLen

// Machine is a brainfuck virtual machine instance: a program counter,
// a head pointer, and a 30,000-byte tape. Construct one with New for
// each run; a Machine is single-use.
type Machine struct {
	program ir.Program
	pc      int
	head    int
	tape    [TapeLen]byte
	steps   int64
}

// New creates a Machine ready to execute program from its first
// instruction, with a zeroed tape and the head at cell 0.
func New(program ir.Program) *Machine {
	return &Machine{program: program}
}

// PC returns the current program counter (IR index of the next
// instruction to execute).
func (m *Machine) PC() int { return m.pc }

// Head returns the current tape head position.
func (m *Machine) Head() int { return m.head }

// Cell returns the byte currently under the head.
func (m *Machine) Cell() byte { return m.tape[m.head] }

// Steps returns the number of instructions executed so far by the most
// recent call to Run.
func (m *Machine) Steps() int64 { return m.steps }

// Tape returns the full tape contents. The returned slice aliases the
// Machine's internal tape; callers must not mutate it.
func (m *Machine) Tape() []byte { return m.tape[:] }
