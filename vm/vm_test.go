package vm_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/remind-me-later/brainfuck/ir"
	"github.com/remind-me-later/brainfuck/parser"
	"github.com/remind-me-later/brainfuck/vm"
)

func mustParse(t *testing.T, src string) ir.Program {
	t.Helper()
	res, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) = %v", src, err)
	}
	return res.Program
}

func runBF(t *testing.T, src, input string) string {
	t.Helper()
	prog := mustParse(t, src)
	var out bytes.Buffer
	m := vm.New(prog)
	if err := m.Run(&out, strings.NewReader(input)); err != nil {
		t.Fatalf("Run(%q) = %v", src, err)
	}
	return out.String()
}

func TestHelloWorld(t *testing.T) {
	const src = "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."
	got := runBF(t, src, "")
	want := "Hello World!\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEchoOne(t *testing.T) {
	got := runBF(t, ",.", "A")
	if got != "A" {
		t.Errorf("got %q, want %q", got, "A")
	}
}

func TestCellWrapToFF(t *testing.T) {
	got := runBF(t, "-.", "")
	if len(got) != 1 || got[0] != 0xFF {
		t.Errorf("got %v, want [0xFF]", []byte(got))
	}
}

func TestPeepholeZero(t *testing.T) {
	got := runBF(t, "+++++[-]+.", "")
	if len(got) != 1 || got[0] != 0x01 {
		t.Errorf("got %v, want [0x01]", []byte(got))
	}
}

func TestFusionCancel(t *testing.T) {
	got := runBF(t, "+++---.", "")
	if len(got) != 1 || got[0] != 0x00 {
		t.Errorf("got %v, want [0x00]", []byte(got))
	}
}

func TestUnexpectedEOF(t *testing.T) {
	prog := mustParse(t, ",.")
	var out bytes.Buffer
	m := vm.New(prog)
	err := m.Run(&out, strings.NewReader(""))
	if err == nil {
		t.Fatal("Run returned nil error, want ErrUnexpectedEOF")
	}
	re, ok := err.(*vm.RuntimeError)
	if !ok {
		t.Fatalf("err = %T, want *vm.RuntimeError", err)
	}
	if re.Unwrap() != vm.ErrUnexpectedEOF {
		t.Errorf("Unwrap() = %v, want ErrUnexpectedEOF", re.Unwrap())
	}
}

func TestHeadWraparound(t *testing.T) {
	// Move left from cell 0 by 1, should wrap to the last cell, then
	// increment it and confirm the head and that cell's value.
	prog := mustParse(t, "<+")
	m := vm.New(prog)
	var out bytes.Buffer
	if err := m.Run(&out, strings.NewReader("")); err != nil {
		t.Fatal(err)
	}
	if got := m.Head(); got != vm.TapeLen-1 {
		t.Errorf("Head() = %d, want %d", got, vm.TapeLen-1)
	}
	if got := m.Cell(); got != 1 {
		t.Errorf("Cell() = %d, want 1", got)
	}
}

func TestOutputWriteFailure(t *testing.T) {
	prog := mustParse(t, ".")
	m := vm.New(prog)
	err := m.Run(failingWriter{}, strings.NewReader(""))
	if err == nil {
		t.Fatal("Run returned nil error, want a write failure")
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errWriteFailed
}

var errWriteFailed = errors.New("simulated write failure")
