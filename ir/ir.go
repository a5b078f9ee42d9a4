// Package ir defines the intermediate representation produced by the
// parser and consumed by the vm package: a flat, tagged instruction
// sequence with integer payloads, plus the byte-level token classifier
// the parser's run fuser drives.
package ir

import "strconv"

// TapeLen is the fixed size of the vm tape in bytes. Left/Right payloads
// are reduced modulo this value.
const TapeLen = 30000

// CellMod is the modulus for Add/Sub payloads (an 8-bit tape cell).
const CellMod = 256

// Kind tags an Instruction.
type Kind uint8

const (
	// Nop performs no action. Emitted by the fuser for a canceling run
	// of counted operators, and never carries a payload.
	Nop Kind = iota
	// Left moves the head left by Payload cells, with wraparound.
	Left
	// Right moves the head right by Payload cells, with wraparound.
	Right
	// Add adds Payload to the current cell, modulo 256.
	Add
	// Sub subtracts Payload from the current cell, modulo 256.
	Sub
	// Input reads Payload bytes from the input stream into the current cell.
	Input
	// Output writes the current cell to the output stream Payload times.
	Output
	// Open is a loop start; Payload is the IR index of the matching Close.
	Open
	// Close is a loop end; Payload is the IR index of the matching Open.
	Close
	// Zero sets the current cell to 0. Replaces the idiom [-].
	Zero
)

var kindNames = [...]string{
	Nop:    "nop",
	Left:   "<",
	Right:  ">",
	Add:    "+",
	Sub:    "-",
	Input:  ",",
	Output: ".",
	Open:   "[",
	Close:  "]",
	Zero:   "zero",
}

// String returns the source character associated with a Kind, or a
// descriptive name for kinds that have no single-character source form.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Counted reports whether a Kind carries a "how many times" payload that
// the run fuser may fold adjacent occurrences into.
func (k Kind) Counted() bool {
	switch k {
	case Left, Right, Add, Sub, Input, Output:
		return true
	default:
		return false
	}
}

// Instruction is one IR record: a Kind plus its integer payload. For
// Nop and Zero the payload is unused and always 0.
type Instruction struct {
	Kind    Kind
	Payload int
}

// String renders an Instruction as "kind(payload)", or bare "kind" for
// Nop and Zero which carry no meaningful payload. Used in test failure
// messages, never by the vm dispatch loop.
func (inst Instruction) String() string {
	switch inst.Kind {
	case Nop, Zero:
		return inst.Kind.String()
	default:
		return inst.Kind.String() + "(" + strconv.Itoa(inst.Payload) + ")"
	}
}

// Program is the parsed, immutable (post-parse) instruction sequence
// the vm package executes.
type Program []Instruction

// Classify maps a source byte to its instruction Kind. The second return
// value is false when b is not one of the eight instruction characters,
// in which case it is a comment and the Kind is meaningless.
//
// Open and Close are classified with Payload 0; their real jump targets
// are computed by the parser once the matching bracket is found.
func Classify(b byte) (Instruction, bool) {
	switch b {
	case '<':
		return Instruction{Kind: Left, Payload: 1}, true
	case '>':
		return Instruction{Kind: Right, Payload: 1}, true
	case '+':
		return Instruction{Kind: Add, Payload: 1}, true
	case '-':
		return Instruction{Kind: Sub, Payload: 1}, true
	case ',':
		return Instruction{Kind: Input, Payload: 1}, true
	case '.':
		return Instruction{Kind: Output, Payload: 1}, true
	case '[':
		return Instruction{Kind: Open, Payload: 0}, true
	case ']':
		return Instruction{Kind: Close, Payload: 0}, true
	default:
		return Instruction{}, false
	}
}
