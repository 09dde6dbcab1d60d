package astutil

import (
	"go/ast"
)

// CallSite is a statement whose entire content is a single matched call,
// together with the node holding that statement.
type CallSite struct {
	Stmt   *ast.ExprStmt
	Call   *ast.CallExpr
	Parent ast.Node
}

// LocateCalls walks the whole tree, nested scopes and function literals
// included, and collects every statement that consists of nothing but a call
// accepted by matches. Sites come back in source order. A matched call
// appearing inside a larger statement or expression is not a statement of
// its own and is skipped; deciding what to do with a site based on its
// Parent is up to the caller.
func LocateCalls(file *ast.File, matches func(*ast.CallExpr) bool) []CallSite {
	var sites []CallSite
	var stack []ast.Node

	ast.Inspect(file, func(n ast.Node) bool {
		if n == nil {
			stack = stack[:len(stack)-1]
			return true
		}

		if stmt, ok := n.(*ast.ExprStmt); ok && len(stack) > 0 {
			if call, ok := stmt.X.(*ast.CallExpr); ok && matches(call) {
				sites = append(sites, CallSite{Stmt: stmt, Call: call, Parent: stack[len(stack)-1]})
			}
		}

		stack = append(stack, n)
		return true
	})

	return sites
}
