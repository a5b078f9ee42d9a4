package parser

import "fmt"

// WarningKind identifies the kind of a non-fatal parse diagnostic.
// No-operation is currently the only kind the assembler produces.
type WarningKind uint8

const (
	// NoOp marks a fused run of counted operators whose net effect is
	// zero — it compiles to a Nop and has no observable effect.
	NoOp WarningKind = iota
)

// Warning is a non-fatal parse diagnostic. It never aborts a parse; a
// Result with warnings is still a fully runnable program.
type Warning struct {
	Kind        WarningKind
	Begin, End  int
	SourceBytes string
}

func (w Warning) String() string {
	return fmt.Sprintf("no-op %q at bytes [%d,%d]", w.SourceBytes, w.Begin, w.End)
}
