package updateversions

import (
	"fmt"
	"strconv"
)

// Replacements holds the new value for each version component. A nil entry
// leaves that component untouched, wildcards included.
type Replacements struct {
	Major    *int
	Minor    *int
	Build    *int
	Revision *int
}

func (r Replacements) byComponent() [4]*int {
	return [4]*int{r.Major, r.Minor, r.Build, r.Revision}
}

// Substitute returns a copy of content with the targeted components of each
// declaration replaced. Everything outside the targeted component spans is
// copied byte-for-byte. Declarations are applied back-to-front so that a
// replacement of different length never shifts a span that is still
// pending.
func Substitute(content []byte, decls []VersionDeclaration, repl Replacements) []byte {
	values := repl.byComponent()
	out := append([]byte(nil), content...)

	for i := len(decls) - 1; i >= 0; i-- {
		for c := ComponentRevision; c >= ComponentMajor; c-- {
			if values[c] == nil {
				continue
			}
			span := decls[i].ComponentSpans[c]
			formatted := formatComponent(decls[i].Components[c], *values[c])
			out = splice(out, span[0], span[1], formatted)
		}
	}
	return out
}

// formatComponent renders value as minimal decimal, except that a
// zero-padded original keeps its digit width ("007" with value 42 becomes
// "042", with value 7434 becomes "7434").
func formatComponent(original string, value int) string {
	if len(original) > 1 && original[0] == '0' {
		return fmt.Sprintf("%0*d", len(original), value)
	}
	return strconv.Itoa(value)
}

func splice(b []byte, lo, hi int, repl string) []byte {
	out := make([]byte, 0, len(b)-(hi-lo)+len(repl))
	out = append(out, b[:lo]...)
	out = append(out, repl...)
	out = append(out, b[hi:]...)
	return out
}
