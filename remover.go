package rmprint

import (
	"go/ast"
	"go/token"

	"github.com/dhruvmanila/remove-print-statements/astutil"
)

// CallContext classifies how a matched print call is used at its call site.
// The distinction drives the removal strategy: a call that is a whole
// statement can be deleted outright, anything else is left alone rather than
// inventing a replacement value for it.
type CallContext int

const (
	// CallStatement is a call making up the entire content of a statement
	// held by a statement list.
	CallStatement CallContext = iota

	// CallEmbedded is a call nested inside a larger expression or
	// statement: an assignment, a condition, an argument, a defer.
	CallEmbedded
)

// Classify reports the context of an expression statement from the node
// holding it. Only statement lists can lose an entry without restructuring;
// labeled statements and the init clauses of if/for/switch hold their
// statement in a fixed slot.
func Classify(parent ast.Node) CallContext {
	switch parent.(type) {
	case *ast.BlockStmt, *ast.CaseClause, *ast.CommClause:
		return CallStatement
	default:
		return CallEmbedded
	}
}

// RemovedCall describes a single removed print statement.
type RemovedCall struct {
	Line int    // 1-based line of the call expression
	Col  int    // 0-based column of the call expression
	Text string // original source text of the call expression
}

// DefaultTargets is the set of call names treated as print statements when
// no explicit configuration is given: the spelled-out builtins and the fmt
// standard output family.
var DefaultTargets = []string{
	"print",
	"println",
	"fmt.Print",
	"fmt.Printf",
	"fmt.Println",
}

// Remover deletes print statements from Go source. A single Remover may be
// used for any number of files, concurrently if need be; Process keeps all
// state on its own stack.
type Remover struct {
	targets map[string]struct{}
}

// New returns a Remover matching the given call names, each spelled either
// as a bare builtin ("println") or package-qualified ("fmt.Println"). An
// empty list falls back to DefaultTargets.
func New(targets []string) *Remover {
	if len(targets) == 0 {
		targets = DefaultTargets
	}

	set := make(map[string]struct{}, len(targets))
	for _, name := range targets {
		set[name] = struct{}{}
	}

	return &Remover{targets: set}
}

func (r *Remover) matches(call *ast.CallExpr) bool {
	name := astutil.CalleeName(call)
	if name == "" {
		return false
	}
	_, ok := r.targets[name]
	return ok
}

// printStmt is one removable occurrence: a statement-list entry whose entire
// content is a matched call.
type printStmt struct {
	stmt  *ast.ExprStmt
	call  *ast.CallExpr
	owner ast.Node // the *ast.BlockStmt, *ast.CaseClause or *ast.CommClause holding stmt
}

// blockInfo tracks removals per statement list so that a fully emptied block
// can be given a placeholder.
type blockInfo struct {
	total   int
	removed int
	first   placement
	calls   []*ast.CallExpr
}

// Process parses src, removes every statement that consists of nothing but a
// matched print call and returns the rewritten source together with one
// record per removed statement, in source order. Untouched regions are kept
// byte for byte; when nothing matches, out is src itself. The filename is
// used in positions and error messages only, Process performs no I/O.
//
// Running Process on its own output is a no-op: all removable statements are
// gone after the first pass.
func (r *Remover) Process(filename string, src []byte) (out []byte, removed []RemovedCall, err error) {
	file, fset, err := ParseSource(filename, src)
	if err != nil {
		return nil, nil, err
	}

	found := r.locate(file)
	if len(found) == 0 {
		return src, nil, nil
	}

	editor := newSourceEditor(fset, file, src)
	blocks := make(map[ast.Node]*blockInfo)
	refs := make(map[string]struct{})

	lastEnd := token.NoPos
	for _, ps := range found {
		// A match nested inside an already removed statement (a print call
		// in a function literal passed to another print call) vanishes with
		// its host and is not counted on its own.
		if ps.stmt.Pos() < lastEnd {
			continue
		}
		lastEnd = ps.stmt.End()

		pos := fset.Position(ps.call.Pos())
		removed = append(removed, RemovedCall{
			Line: pos.Line,
			Col:  pos.Column - 1,
			Text: string(src[editor.offset(ps.call.Pos()):editor.offset(ps.call.End())]),
		})

		at := editor.deleteNode(ps.stmt)
		packageRefs(ps.stmt, refs)

		info := blocks[ps.owner]
		if info == nil {
			info = &blockInfo{total: len(stmtList(ps.owner)), first: at}
			blocks[ps.owner] = info
		}
		info.removed++
		info.calls = append(info.calls, ps.call)
	}

	// A block emptied by the removals gets a no-op placeholder so that
	// variables referenced only by the removed calls stay used.
	for _, info := range blocks {
		if info.removed != info.total {
			continue
		}
		if noop := astutil.CreateNoop(info.calls); noop != "" {
			editor.insertStmt(info.first, noop)
		}
	}

	out, err = pruneImports(filename, editor.bytes(), refs)
	if err != nil {
		return nil, nil, err
	}

	return out, removed, nil
}

// locate collects the removable print statements of the file in source
// order: the matched call sites held by a statement list. Matched calls in
// any other position are deliberately left where they are.
func (r *Remover) locate(file *ast.File) []printStmt {
	var found []printStmt

	for _, site := range astutil.LocateCalls(file, r.matches) {
		if Classify(site.Parent) != CallStatement {
			continue
		}
		found = append(found, printStmt{stmt: site.Stmt, call: site.Call, owner: site.Parent})
	}

	return found
}

// stmtList returns the statement list held by the given owner node.
func stmtList(owner ast.Node) []ast.Stmt {
	switch n := owner.(type) {
	case *ast.BlockStmt:
		return n.List
	case *ast.CaseClause:
		return n.Body
	case *ast.CommClause:
		return n.Body
	}
	return nil
}

// packageRefs records every identifier qualifying a selector inside the
// removed statement. The set over-approximates package usage; whether an
// import actually became unused is decided later against the rewritten file.
func packageRefs(stmt ast.Stmt, refs map[string]struct{}) {
	ast.Inspect(stmt, func(n ast.Node) bool {
		if sel, ok := n.(*ast.SelectorExpr); ok {
			if x, ok := sel.X.(*ast.Ident); ok {
				refs[x.Name] = struct{}{}
			}
		}
		return true
	})
}
