package rmprint

import (
	"fmt"
	"go/ast"
	"go/token"
	"strconv"
	"strings"

	"golang.org/x/tools/go/ast/astutil"
)

// pruneImports deletes import specs that lost their last use to a removed
// statement. Only packages named by the removed statements are candidates;
// whether one is still used is decided against the rewritten file, so the
// over-approximated candidate set stays safe. Parsing the rewritten source
// here doubles as a check that the edits preserved syntactic validity.
func pruneImports(filename string, src []byte, candidates map[string]struct{}) ([]byte, error) {
	if len(candidates) == 0 {
		return src, nil
	}

	file, fset, err := ParseSource(filename, src)
	if err != nil {
		return nil, fmt.Errorf("rewritten source for %q does not parse: %v", filename, err)
	}

	editor := newSourceEditor(fset, file, src)
	changed := false

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.IMPORT {
			continue
		}

		for _, spec := range gen.Specs {
			imp := spec.(*ast.ImportSpec)
			name, path := importName(imp)
			if name == "" {
				continue
			}
			if _, ok := candidates[name]; !ok {
				continue
			}
			if astutil.UsesImport(file, path) {
				continue
			}

			// A lone spec goes together with its import keyword.
			if len(gen.Specs) == 1 {
				editor.deleteNode(gen)
			} else {
				editor.deleteNode(imp)
			}
			changed = true
		}
	}

	if !changed {
		return src, nil
	}

	return editor.bytes(), nil
}

// importName resolves the name an import is referenced by in source, along
// with its unquoted path. Blank and dot imports return no name; they are
// never prunable.
func importName(spec *ast.ImportSpec) (name, path string) {
	path, err := strconv.Unquote(spec.Path.Value)
	if err != nil {
		return "", ""
	}

	if spec.Name != nil {
		switch spec.Name.Name {
		case "_", ".":
			return "", ""
		}
		return spec.Name.Name, path
	}

	// Without an explicit name the last path element is the reference name,
	// the same convention UsesImport applies.
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:], path
	}
	return path, path
}
