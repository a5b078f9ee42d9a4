package parser

import "github.com/remind-me-later/brainfuck/ir"

// bracketFrame records where an open bracket lives: its IR index (so
// the matching Close can be backpatched) and its byte offset (so an
// unmatched '[' can be reported against the right character).
type bracketFrame struct {
	irIndex int
	offset  int
}

// Result is a successful parse: a runnable program plus every
// no-operation warning collected along the way, in source order.
type Result struct {
	Program  ir.Program
	Warnings []Warning
}

// Parse assembles source into a Result, or returns a FatalError if the
// brackets in source are not balanced. Parse never returns a partial
// program alongside an error.
func Parse(source string) (*Result, error) {
	var prog ir.Program
	var warnings []Warning
	var stack []bracketFrame

	fz := newFuser(source)
	for {
		tok, ok := fz.next()
		if !ok {
			break
		}

		switch tok.kind {
		case ir.Open:
			stack = append(stack, bracketFrame{irIndex: len(prog), offset: tok.begin})
			prog = append(prog, ir.Instruction{Kind: ir.Open})

		case ir.Close:
			if len(stack) == 0 {
				return nil, &FatalError{Bracket: CloseBracket, Offset: tok.begin}
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if isZeroIdiom(prog[top.irIndex+1:]) {
				prog = append(prog[:top.irIndex], ir.Instruction{Kind: ir.Zero})
			} else {
				closeIdx := len(prog)
				prog[top.irIndex].Payload = closeIdx
				prog = append(prog, ir.Instruction{Kind: ir.Close, Payload: top.irIndex})
			}

		case ir.Nop:
			prog = append(prog, ir.Instruction{Kind: ir.Nop})
			warnings = append(warnings, newWarning(source, tok))

		default:
			payload := normalize(tok.kind, tok.payload)
			if payload == 0 {
				prog = append(prog, ir.Instruction{Kind: ir.Nop})
				warnings = append(warnings, newWarning(source, tok))
				continue
			}
			prog = append(prog, ir.Instruction{Kind: tok.kind, Payload: payload})
		}
	}

	if len(stack) > 0 {
		bottom := stack[0]
		return nil, &FatalError{Bracket: OpenBracket, Offset: bottom.offset}
	}

	return &Result{Program: prog, Warnings: warnings}, nil
}

// normalize reduces a counted instruction's payload into its defined
// range: Add/Sub modulo the cell width, Left/Right modulo the tape
// length. Input and Output payloads pass through unchanged — they have
// no modulus, only a lower bound of 1 enforced by the caller.
func normalize(kind ir.Kind, payload int) int {
	switch kind {
	case ir.Add, ir.Sub:
		return payload % ir.CellMod
	case ir.Left, ir.Right:
		return payload % ir.TapeLen
	default:
		return payload
	}
}

// isZeroIdiom reports whether body is exactly the single instruction
// Sub(1), the only loop body the peephole optimizer recognizes as the
// `[-]` zero-cell idiom.
func isZeroIdiom(body ir.Program) bool {
	return len(body) == 1 && body[0].Kind == ir.Sub && body[0].Payload == 1
}

func newWarning(source string, tok groupedToken) Warning {
	return Warning{
		Kind:        NoOp,
		Begin:       tok.begin,
		End:         tok.end,
		SourceBytes: source[tok.begin : tok.end+1],
	}
}
