// Package vm implements the brainfuck virtual machine: a fixed
// 30,000-cell byte tape, a program counter and head pointer, and a
// tight dispatch loop over an ir.Program.
//
// A Machine is single-use: construct one with New for each run of a
// program. Its tape and registers are not safe for concurrent use, but
// multiple independent Machines may run the same ir.Program
// concurrently since the program is read-only during execution.
//
// The dispatch loop trusts its jump targets rather than bounds-checking
// every step: Run wraps its body in a recover so a parser bug that
// produces an out-of-range jump target surfaces as an error instead of
// a crash.
package vm
