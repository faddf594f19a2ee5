package derive

import (
	"bytes"
	"fmt"
	"go/format"
	"go/printer"
	"go/token"

	"github.com/cockroachdb/errors"
)

// GeneratedFile is one emitted Go source file.
type GeneratedFile struct {
	// Filename is the basename the file should be written as.
	Filename string
	// Content is the formatted source.
	Content []byte
}

// Emit serializes one module into a standalone file of package pkgName.
//
// The file is the module's hygienic scope: it lives in the annotated type's
// own package, so generated code resolves unexported siblings exactly as if
// written at the declaration site, while the support-package alias and the
// guard identifier stay out of every other file's way.
//
// On a formatting failure Emit returns the unformatted source together with
// the error so callers can inspect what the printer produced.
func Emit(pkgName string, mod *Module) (*GeneratedFile, error) {
	var buf bytes.Buffer

	buf.WriteString("// Code generated by numconv-generator. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkgName)
	fmt.Fprintf(&buf, "import (\n\t%s %q\n)\n\n", supportAlias, SupportPath)

	fset := token.NewFileSet()

	for _, d := range mod.Decls {
		if d.Doc != "" {
			buf.WriteString("// " + d.Doc + "\n")
		}

		if err := printer.Fprint(&buf, fset, d.Node); err != nil {
			return nil, errors.Wrapf(err, "printing %s declaration for %s", mod.Capability, mod.TypeName)
		}

		buf.WriteString("\n\n")
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Hand back the raw print so the caller can see what the
		// formatter refused.
		return &GeneratedFile{Filename: mod.Filename, Content: buf.Bytes()},
			errors.Wrapf(err, "formatting %s for %s", mod.Filename, mod.TypeName)
	}

	return &GeneratedFile{Filename: mod.Filename, Content: formatted}, nil
}
