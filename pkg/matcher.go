package updateversions

import (
	"regexp"
	"strings"
)

// Attribute identifiers recognized in version declarations. C# identifiers
// are case-sensitive, so these are matched exactly.
const (
	AttrAssemblyVersion     = "AssemblyVersion"
	AttrAssemblyFileVersion = "AssemblyFileVersion"
)

// AttributeSelection picks which declaration kinds a Matcher accepts.
type AttributeSelection int

const (
	// BothAttributes matches AssemblyVersion and AssemblyFileVersion.
	BothAttributes AttributeSelection = iota
	// AssemblyVersionOnly matches only AssemblyVersion.
	AssemblyVersionOnly
	// AssemblyFileVersionOnly matches only AssemblyFileVersion.
	AssemblyFileVersionOnly
)

func (s AttributeSelection) names() []string {
	switch s {
	case AssemblyVersionOnly:
		return []string{AttrAssemblyVersion}
	case AssemblyFileVersionOnly:
		return []string{AttrAssemblyFileVersion}
	default:
		return []string{AttrAssemblyVersion, AttrAssemblyFileVersion}
	}
}

// Component indices within a four-part version.
const (
	ComponentMajor = iota
	ComponentMinor
	ComponentBuild
	ComponentRevision
)

// Wildcard is the placeholder accepted in place of a numeric component.
const Wildcard = "*"

// VersionDeclaration is one matched version statement. Spans are byte
// offsets into the content the declaration was found in. It lives only for
// the duration of one file's processing.
type VersionDeclaration struct {
	Attribute  string    // AttrAssemblyVersion or AttrAssemblyFileVersion
	Components [4]string // major, minor, build, revision; digits or "*"

	Start, End     int       // span of the whole statement
	ComponentSpans [4][2]int // span of each component
}

// Matcher locates version declarations of the shape
//
//	AssemblyVersion("1.2.3.4")
//
// where each component is a non-negative integer or the wildcard "*".
// Whitespace around the parentheses and the string literal is tolerated;
// only the canonical double-quote form matches. Near-misses such as
// three-component versions are silently ignored.
//
// The regexp is compiled once at construction; a Matcher is immutable and
// safe to reuse across files.
type Matcher struct {
	re *regexp.Regexp
}

// NewMatcher builds a Matcher for the selected attribute kinds.
func NewMatcher(sel AttributeSelection) *Matcher {
	component := `(\d+|\*)`
	pattern := `\b(` + strings.Join(sel.names(), "|") + `)\s*\(\s*"` +
		component + `\.` + component + `\.` + component + `\.` + component +
		`"\s*\)`
	return &Matcher{re: regexp.MustCompile(pattern)}
}

// Find returns every declaration in content, in document order. An empty
// result is a legitimate outcome, not an error.
func (m *Matcher) Find(content []byte) []VersionDeclaration {
	idx := m.re.FindAllSubmatchIndex(content, -1)
	if len(idx) == 0 {
		return nil
	}

	decls := make([]VersionDeclaration, 0, len(idx))
	for _, match := range idx {
		d := VersionDeclaration{
			Attribute: string(content[match[2]:match[3]]),
			Start:     match[0],
			End:       match[1],
		}
		for c := 0; c < 4; c++ {
			lo, hi := match[4+2*c], match[5+2*c]
			d.Components[c] = string(content[lo:hi])
			d.ComponentSpans[c] = [2]int{lo, hi}
		}
		decls = append(decls, d)
	}
	return decls
}
