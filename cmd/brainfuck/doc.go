// Command brainfuck parses and executes brainfuck source files.
//
// Usage:
//
//	brainfuck run <file>
//	brainfuck check <file>
//
// run parses the file and executes it against stdin/stdout. check
// parses the file, reports any no-op warnings with their line:column
// position, and exits nonzero without running anything if the source
// contains an unbalanced bracket.
//
// --debug enables verbose diagnostics: no-op warnings are logged as
// they're found. A runtime error is printed with its wrapped cause
// chain whether or not --debug is set.
//
// run --stats prints the instruction count and elapsed wall time on
// exit. run --dump writes the tape contents to stderr on exit.
package main
