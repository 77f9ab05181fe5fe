package discovery

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"strings"
)

// errNoDeclaration marks a unit without a package clause or type
// declaration. It is an expected skip, not a failure.
var errNoDeclaration = errors.New("no type declaration")

// declarations reads the Go source unit at path and returns the
// package-qualified names of its top-level, non-generic type declarations
// in source order. Generic declarations cannot be instantiated without
// type arguments and are left out.
func declarations(fsys fs.FS, path string) ([]string, error) {
	src, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}
	if file.Name == nil || file.Name.Name == "" {
		return nil, errNoDeclaration
	}

	pkg := file.Name.Name
	var names []string
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok || ts.TypeParams != nil || ts.Assign.IsValid() {
				continue
			}
			names = append(names, pkg+"."+ts.Name.Name)
		}
	}
	if len(names) == 0 {
		return nil, errNoDeclaration
	}
	return names, nil
}

// isSourceUnit reports whether path names a Go source file.
func isSourceUnit(path string) bool {
	return strings.HasSuffix(path, ".go")
}
