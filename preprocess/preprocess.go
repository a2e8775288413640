// Package preprocess expands paired absolute-value bars into abs(...)
// function calls, spec §4.2, before the expression ever reaches the
// lexer.
package preprocess

import (
	"strings"

	"github.com/evallang/numexpr/numerr"
)

// Expand replaces every '|' with 'abs(' on odd occurrences (1st, 3rd,
// 5th, ...) and ')' on even occurrences. Nesting bars inside other bars
// is not supported, per spec §4.2 — every '|' just toggles the
// alternation; callers needing nested absolute value must write
// abs(...) explicitly.
//
// Expand panics with a *numerr.Error (Kind Parse) on an odd bar count,
// following the panic/recover discipline the rest of the pipeline uses
// (see numerr's package doc); the top-level Evaluate recovers it.
func Expand(expr string) string {
	count := strings.Count(expr, "|")
	if count%2 != 0 {
		numerr.Raise(numerr.Parse, strings.LastIndex(expr, "|"), "odd number of absolute-value bars")
	}
	var b strings.Builder
	b.Grow(len(expr) + count*3)
	open := true
	for _, r := range expr {
		if r != '|' {
			b.WriteRune(r)
			continue
		}
		if open {
			b.WriteString("abs(")
		} else {
			b.WriteByte(')')
		}
		open = !open
	}
	return b.String()
}
