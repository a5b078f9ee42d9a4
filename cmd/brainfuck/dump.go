package main

import (
	"bufio"
	"io"
	"strconv"

	"github.com/remind-me-later/brainfuck/vm"
)

// dumpTape writes the tape contents as space-separated decimal byte
// values, trimmed of trailing zero cells, for -dump diagnostics.
func dumpTape(w io.Writer, m *vm.Machine) {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	tape := m.Tape()
	end := len(tape)
	for end > 0 && tape[end-1] == 0 {
		end--
	}

	b := make([]byte, 0, 16)
	for i := 0; i < end; i++ {
		if i > 0 {
			b = append(b, ' ')
		}
		b = strconv.AppendInt(b, int64(tape[i]), 10)
		bw.Write(b)
		b = b[:0]
	}
	bw.Write([]byte{'\n'})
}
