package token

import "fmt"

// A Position identifies a single code point in a source file.
type Position struct {
	Path   string
	Line   int // 1-based
	Column int // 1-based, in code points
	Offset int // 0-based code point offset
}

func (p Position) String() string {
	if p.Path == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Path, p.Line, p.Column)
}
