// Package parser turns brainfuck source text into an ir.Program.
//
// Parsing happens in two layers. The unexported fuser walks the source
// byte by byte and folds runs of adjacent, identical or canceling
// operators into a single grouped token (see fuser.go). Parse then
// drives the fuser to exhaustion, matches bracket pairs into direct
// jump offsets, recognizes the `[-]` peephole idiom, and collects
// no-operation warnings for fused runs whose net effect is zero.
//
// Parsing is single-pass: when `[` is seen its IR slot is reserved with
// a placeholder jump target; the target is backpatched once the
// matching `]` is found. There is no second scan over the program.
//
// The only fatal error Parse returns is an unbalanced bracket. A
// successful parse never discards a partial program: Parse returns
// either a complete Result or no Result at all.
package parser
