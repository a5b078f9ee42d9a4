package main

import (
	"strconv"
	"strings"
)

// position renders a byte offset into source as a 1-based "line:column"
// string. This mapping is deliberately kept here, outside parser and
// vm: those packages only ever deal in byte offsets.
func position(source string, offset int) string {
	if offset < 0 {
		offset = 0
	}
	if offset > len(source) {
		offset = len(source)
	}
	line := 1 + strings.Count(source[:offset], "\n")
	col := offset - strings.LastIndex(source[:offset], "\n")
	return strconv.Itoa(line) + ":" + strconv.Itoa(col)
}
