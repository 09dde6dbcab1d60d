package astutil

import (
	"go/ast"
)

// CalleeName returns the name a call expression is spelled with: "println"
// for builtin calls, "fmt.Println" for package-qualified calls. It returns
// the empty string for every other callee shape (method values, chained
// selectors, closures, parenthesized expressions), which can therefore never
// match a configured print name.
//
// The name is purely syntactic. A local identifier shadowing a builtin or a
// renamed package import is not seen through; this mirrors how the matching
// set itself is just a list of spelled-out names.
func CalleeName(call *ast.CallExpr) string {
	switch fun := call.Fun.(type) {
	case *ast.Ident:
		return fun.Name
	case *ast.SelectorExpr:
		if pkg, ok := fun.X.(*ast.Ident); ok {
			return pkg.Name + "." + fun.Sel.Name
		}
	}

	return ""
}
