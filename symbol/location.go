package symbol

import (
	"fmt"
	"strconv"
)

// Location points at a position in a source file
type Location struct {
	Path   string // Source file path as reported by the host
	Line   int    // 1-based line number
	Column int    // 1-based column number
}

// IsZero reports whether the location carries no position at all
func (l Location) IsZero() bool {
	return l.Path == "" && l.Line == 0 && l.Column == 0
}

// String formats the location as path:line:column, omitting unset parts
func (l Location) String() string {
	if l.Path == "" {
		if l.Line == 0 {
			return ""
		}
		return strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Column)
	}
	if l.Line == 0 {
		return l.Path
	}
	return fmt.Sprintf("%s:%d:%d", l.Path, l.Line, l.Column)
}
