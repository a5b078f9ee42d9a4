package parser

import "github.com/remind-me-later/brainfuck/ir"

// groupedToken is the transient record produced by the fuser: an
// instruction kind, its net payload, and the byte range in the source
// that was folded into it. It does not survive past Parse.
type groupedToken struct {
	kind       ir.Kind
	payload    int
	begin, end int
}

// fuser walks source byte by byte, skipping comments and folding runs
// of adjacent combinable operators into a single groupedToken per call
// to next. It is lazy: callers drive it one token at a time.
type fuser struct {
	src string
	pos int
}

func newFuser(src string) *fuser {
	return &fuser{src: src}
}

// next returns the next grouped token, or ok=false once the source is
// exhausted.
func (f *fuser) next() (tok groupedToken, ok bool) {
	n := len(f.src)
	for f.pos < n {
		if _, isInst := ir.Classify(f.src[f.pos]); isInst {
			break
		}
		f.pos++
	}
	if f.pos >= n {
		return groupedToken{}, false
	}

	begin := f.pos
	cur, _ := ir.Classify(f.src[f.pos])
	end := f.pos
	f.pos++

	kind, payload := cur.Kind, cur.Payload

	// Open and Close never fuse; they terminate any in-progress group
	// immediately (and never start one that extends past themselves).
	if kind != ir.Open && kind != ir.Close {
		for f.pos < n {
			next, isInst := ir.Classify(f.src[f.pos])
			if !isInst {
				break
			}
			newKind, newPayload, combined := combine(kind, payload, next.Kind, next.Payload)
			if !combined {
				break
			}
			kind, payload = newKind, newPayload
			end = f.pos
			f.pos++
		}
	}

	return groupedToken{kind: kind, payload: payload, begin: begin, end: end}, true
}

// combine implements the fusion table from the run fuser's
// specification. It returns ok=false for any pair that does not fuse,
// including any pair involving the running token once it has already
// collapsed to Nop (a canceled run never resumes accumulating).
func combine(aKind ir.Kind, aPayload int, bKind ir.Kind, bPayload int) (ir.Kind, int, bool) {
	switch {
	case aKind == ir.Left && bKind == ir.Left:
		return degenerate(ir.Left, aPayload+bPayload), true
	case aKind == ir.Right && bKind == ir.Right:
		return degenerate(ir.Right, aPayload+bPayload), true
	case aKind == ir.Left && bKind == ir.Right:
		return netMove(aPayload, bPayload), true
	case aKind == ir.Right && bKind == ir.Left:
		return netMove(bPayload, aPayload), true

	case aKind == ir.Add && bKind == ir.Add:
		return degenerate(ir.Add, aPayload+bPayload), true
	case aKind == ir.Sub && bKind == ir.Sub:
		return degenerate(ir.Sub, aPayload+bPayload), true
	case aKind == ir.Add && bKind == ir.Sub:
		return netArith(aPayload, bPayload), true
	case aKind == ir.Sub && bKind == ir.Add:
		return netArith(bPayload, aPayload), true

	case aKind == ir.Input && bKind == ir.Input:
		return ir.Input, aPayload + bPayload, true
	case aKind == ir.Output && bKind == ir.Output:
		return ir.Output, aPayload + bPayload, true

	default:
		return 0, 0, false
	}
}

// netMove folds a Left(l) and a Right(r) into their net displacement.
func netMove(l, r int) (ir.Kind, int) {
	switch {
	case r > l:
		return ir.Right, r - l
	default:
		return degenerate(ir.Left, l-r)
	}
}

// netArith folds an Add(a) and a Sub(s) into their net effect.
func netArith(a, s int) (ir.Kind, int) {
	switch {
	case a > s:
		return ir.Add, a - s
	default:
		return degenerate(ir.Sub, s-a)
	}
}

// degenerate maps a zero payload to Nop, the only way a groupedToken's
// kind differs from the kind passed in.
func degenerate(k ir.Kind, payload int) (ir.Kind, int) {
	if payload == 0 {
		return ir.Nop, 0
	}
	return k, payload
}
