package derive

import (
	"fmt"
	"go/ast"
	"go/token"
)

// Small go/ast construction helpers shared by the two generators. All nodes
// are synthesized with zero positions; the emitter's printer handles that.

func ident(name string) *ast.Ident { return ast.NewIdent(name) }

func conv(typeName string, x ast.Expr) *ast.CallExpr {
	return &ast.CallExpr{Fun: ident(typeName), Args: []ast.Expr{x}}
}

func returnStmt(results ...ast.Expr) *ast.ReturnStmt {
	return &ast.ReturnStmt{Results: results}
}

func field(name string, typ ast.Expr) *ast.Field {
	f := &ast.Field{Type: typ}
	if name != "" {
		f.Names = []*ast.Ident{ident(name)}
	}

	return f
}

func fieldList(fields ...*ast.Field) *ast.FieldList {
	return &ast.FieldList{List: fields}
}

func intLit(v int64) *ast.BasicLit {
	return &ast.BasicLit{Kind: token.INT, Value: fmt.Sprintf("%d", v)}
}

func supportRef(name string) *ast.SelectorExpr {
	return &ast.SelectorExpr{X: ident(supportAlias), Sel: ident(name)}
}

// supportFuncType instantiates a generic constructor signature from the
// support package, e.g. _numconv.FromInt64Func[Color].
func supportFuncType(name, typeName string) *ast.IndexExpr {
	return &ast.IndexExpr{X: supportRef(name), Index: ident(typeName)}
}

// conformanceVar builds `var _ <typ> = <value>`, the compile-time assertion
// tying generated code to the support package's contracts.
func conformanceVar(typ, value ast.Expr) *ast.GenDecl {
	return &ast.GenDecl{
		Tok: token.VAR,
		Specs: []ast.Spec{&ast.ValueSpec{
			Names:  []*ast.Ident{ident("_")},
			Type:   typ,
			Values: []ast.Expr{value},
		}},
	}
}

// guardDecl emits the module scope marker. Deriving the same capability for
// the same type twice collides on this name, so the compiler rejects the
// duplicate instead of the generator tracking state.
func guardDecl(scope string, capability Capability, typeName string) Decl {
	return Decl{
		Doc: fmt.Sprintf("%s marks the %s derivation for %s.", scope, capability, typeName),
		Node: &ast.GenDecl{
			Tok: token.CONST,
			Specs: []ast.Spec{&ast.ValueSpec{
				Names:  []*ast.Ident{ident(scope)},
				Values: []ast.Expr{ident("true")},
			}},
		},
	}
}

// discriminantExpr builds the int64 expression for one variant's value. The
// usual form converts the variant constant itself, keeping the host compiler
// authoritative; for a wrapped uint64-range constant that conversion would be
// a constant overflow, so the resolver's reinterpreted value is emitted as a
// literal instead.
func discriminantExpr(v ResolvedVariant) ast.Expr {
	if v.Wrapped {
		return intLit(v.Value)
	}

	return conv("int64", ident(v.Name))
}

// namedVariants drops blank numbering slots.
func namedVariants(variants []ResolvedVariant) []ResolvedVariant {
	named := make([]ResolvedVariant, 0, len(variants))
	for _, v := range variants {
		if !v.Blank {
			named = append(named, v)
		}
	}

	return named
}
