package parser_test

import (
	"github.com/remind-me-later/brainfuck/ir"
)

// baselineParse builds one IR instruction per source instruction
// character, with no run fusion and no peephole rewriting. It still
// resolves bracket pairs into direct jump offsets, since the vm
// package requires valid jump targets to execute a program at all.
//
// It exists purely to give the fusion- and peephole-equivalence tests
// something unoptimized to compare parser.Parse's output against; it
// is not a second production code path.
func baselineParse(source string) (ir.Program, error) {
	var prog ir.Program
	var stack []int

	for i := 0; i < len(source); i++ {
		tok, ok := ir.Classify(source[i])
		if !ok {
			continue
		}
		switch tok.Kind {
		case ir.Open:
			stack = append(stack, len(prog))
			prog = append(prog, ir.Instruction{Kind: ir.Open})
		case ir.Close:
			if len(stack) == 0 {
				return nil, errUnbalanced
			}
			openIdx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			closeIdx := len(prog)
			prog[openIdx].Payload = closeIdx
			prog = append(prog, ir.Instruction{Kind: ir.Close, Payload: openIdx})
		default:
			prog = append(prog, ir.Instruction{Kind: tok.Kind, Payload: 1})
		}
	}
	if len(stack) > 0 {
		return nil, errUnbalanced
	}
	return prog, nil
}

var errUnbalanced = baselineError("unbalanced brackets")

type baselineError string

func (e baselineError) Error() string { return string(e) }
