package rmprint

import (
	"go/ast"
	"go/parser"
	"go/token"

	"github.com/spf13/afero"
)

// Version of the tool. Reported by the --version flag of the command.
const Version = "0.1.0"

var fs = afero.NewOsFs()
var afs = &afero.Afero{Fs: fs}

// ParseFile parses the content of the given file and returns the corresponding
// ast.File node and its file set for positional information.
// If a fatal error is encountered the error return argument is not nil.
func ParseFile(file string) (*ast.File, *token.FileSet, error) {
	data, err := afs.ReadFile(file)
	if err != nil {
		return nil, nil, err
	}

	return ParseSource(file, data)
}

// LoadFile returns the content of the given file.
func LoadFile(file string) (data []byte, err error) {
	return afs.ReadFile(file)
}

// ParseSource parses the given source and returns the corresponding ast.File
// node and its file set for positional information. The filename is used for
// positions and error messages only.
// If a fatal error is encountered the error return argument is not nil.
func ParseSource(filename string, src []byte) (*ast.File, *token.FileSet, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.AllErrors)
	if err != nil {
		return nil, nil, err
	}

	return file, fset, nil
}
