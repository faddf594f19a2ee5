package analyze

import (
	"go/ast"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/go/packages"

	"numconv-generator/internal/derive"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes

// Target is one annotated type declaration discovered in a loaded package,
// together with the capabilities its directive requests.
type Target struct {
	// PkgName is the declaring package's name, reused as the generated
	// file's package clause.
	PkgName string
	// PkgPath is the declaring package's import path.
	PkgPath string
	// Dir is the directory of the declaring file; generated files are
	// written next to it.
	Dir string
	// File is the syntax tree of the declaring file.
	File *ast.File
	// Spec is the annotated type spec.
	Spec *ast.TypeSpec
	// TypeName is the declared type name.
	TypeName string
	// Capabilities are the derivations the directive requests, in
	// directive order.
	Capabilities []derive.Capability
}

// LoadTargets loads the packages matching the given patterns and returns
// every annotated type declaration found in them, in source order.
func LoadTargets(patterns ...string) ([]Target, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "loading packages")
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Newf("package errors: %v", errs)
	}

	var targets []Target

	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			found, err := FindTargets(file)
			if err != nil {
				return nil, errors.Wrapf(err, "scanning %s", pkg.PkgPath)
			}

			dir := ""
			if pos := pkg.Fset.Position(file.Pos()); pos.Filename != "" {
				dir = filepath.Dir(pos.Filename)
			}

			for _, ft := range found {
				targets = append(targets, Target{
					PkgName:      pkg.Name,
					PkgPath:      pkg.PkgPath,
					Dir:          dir,
					File:         file,
					Spec:         ft.Spec,
					TypeName:     ft.Spec.Name.Name,
					Capabilities: ft.Capabilities,
				})
			}
		}
	}

	return targets, nil
}
