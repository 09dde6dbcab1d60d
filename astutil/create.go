package astutil

import (
	"go/ast"
	"strings"
)

// CreateNoop builds a no-op assignment statement out of the identifiers that
// appear as direct arguments of the given calls, in source order and without
// duplicates: `_ = x` or `_, _ = x, y`. The assignment keeps those variables
// referenced when the statements using them are removed from a block. It
// returns the empty string when the calls carry no usable identifiers, in
// which case nothing needs to be kept alive.
func CreateNoop(calls []*ast.CallExpr) string {
	var names []string
	seen := make(map[string]struct{})

	for _, call := range calls {
		for _, arg := range call.Args {
			ident, ok := arg.(*ast.Ident)
			if !ok || !keepAlive(ident.Name) {
				continue
			}
			if _, dup := seen[ident.Name]; dup {
				continue
			}
			seen[ident.Name] = struct{}{}
			names = append(names, ident.Name)
		}
	}

	if len(names) == 0 {
		return ""
	}

	blanks := make([]string, len(names))
	for i := range blanks {
		blanks[i] = "_"
	}

	return strings.Join(blanks, ", ") + " = " + strings.Join(names, ", ")
}

// keepAlive reports whether assigning the named identifier to the blank
// identifier is both valid and useful. The predeclared constants need no
// keeping alive and `_ = nil` would not even compile.
func keepAlive(name string) bool {
	switch name {
	case "_", "nil", "true", "false", "iota":
		return false
	}
	return true
}
