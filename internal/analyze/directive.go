package analyze

import (
	"go/ast"
	"go/token"
	"strings"

	"github.com/cockroachdb/errors"

	"numconv-generator/internal/derive"
)

// DirectivePrefix marks a type declaration for derivation, e.g.
//
//	//numconv:derive FromInt64,Int64
//	type Color int
//
// The directive sits in the doc comment of the type declaration (or of the
// individual spec inside a grouped declaration).
const DirectivePrefix = "//numconv:derive"

// FileTarget is an annotated type spec found inside a single file.
type FileTarget struct {
	Spec         *ast.TypeSpec
	Capabilities []derive.Capability
}

// FindTargets scans one file's declarations for derive directives. It is
// pure syntax inspection, so tests can drive it with go/parser alone.
func FindTargets(file *ast.File) ([]FileTarget, error) {
	var targets []FileTarget

	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}

		for _, s := range gd.Specs {
			spec, ok := s.(*ast.TypeSpec)
			if !ok {
				continue
			}

			doc := spec.Doc
			if doc == nil {
				doc = gd.Doc
			}

			caps, ok, err := ParseDirective(doc)
			if err != nil {
				return nil, errors.Wrapf(err, "directive on %s", spec.Name.Name)
			}

			if !ok {
				continue
			}

			targets = append(targets, FileTarget{Spec: spec, Capabilities: caps})
		}
	}

	return targets, nil
}

// ParseDirective extracts the requested capabilities from a doc comment.
// The second result reports whether a directive was present at all.
func ParseDirective(doc *ast.CommentGroup) ([]derive.Capability, bool, error) {
	if doc == nil {
		return nil, false, nil
	}

	for _, c := range doc.List {
		rest, ok := strings.CutPrefix(c.Text, DirectivePrefix)
		if !ok {
			continue
		}

		caps, err := parseCapabilityList(rest)
		if err != nil {
			return nil, true, err
		}

		return caps, true, nil
	}

	return nil, false, nil
}

func parseCapabilityList(args string) ([]derive.Capability, error) {
	args = strings.TrimSpace(args)
	if args == "" {
		return nil, errors.New("directive names no capabilities (want FromInt64, Int64, or both)")
	}

	var caps []derive.Capability
	seen := make(map[derive.Capability]bool)

	for _, arg := range strings.Split(args, ",") {
		c, err := derive.ParseCapability(strings.TrimSpace(arg))
		if err != nil {
			return nil, err
		}

		if seen[c] {
			return nil, errors.Newf("capability %s requested twice", c)
		}

		seen[c] = true
		caps = append(caps, c)
	}

	return caps, nil
}
