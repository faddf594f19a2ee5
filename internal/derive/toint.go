package derive

import (
	"fmt"
	"go/ast"
	"go/token"

	"numconv-generator/internal/common"
)

// genInt64 builds the value-to-integer accessor methods.
//
// Int64 is a tagless switch comparing the receiver against each variant in
// declaration order, recomputing the discriminant per case from the variant
// constant itself rather than converting the receiver, so the host compiler
// stays the single authority on constant values. A receiver holding no
// declared variant reports false. Uint64 maps the signed result through a
// reinterpreting cast, so negative discriminants surface as large unsigned
// values.
func genInt64(typeName string, variants []ResolvedVariant) []Decl {
	named := namedVariants(variants)

	recv := "v"
	var body []ast.Stmt

	if common.IsEmpty(named) {
		// An empty enum means no case analysis at all, just the miss
		// result.
		recv = ""
	} else {
		clauses := make([]ast.Stmt, 0, len(named))
		for _, v := range named {
			clauses = append(clauses, &ast.CaseClause{
				List: []ast.Expr{&ast.BinaryExpr{
					X:  ident("v"),
					Op: token.EQL,
					Y:  ident(v.Name),
				}},
				Body: []ast.Stmt{
					returnStmt(discriminantExpr(v), ident("true")),
				},
			})
		}

		body = append(body, &ast.SwitchStmt{Body: &ast.BlockStmt{List: clauses}})
	}

	body = append(body, returnStmt(intLit(0), ident("false")))

	int64Doc := "Int64 returns v's discriminant, reporting whether v matches a declared variant."
	if common.IsEmpty(named) {
		int64Doc = fmt.Sprintf("Int64 always reports false; %s declares no variants.", typeName)
	}

	int64Method := &ast.FuncDecl{
		Recv: fieldList(field(recv, ident(typeName))),
		Name: ident("Int64"),
		Type: &ast.FuncType{
			Params:  fieldList(),
			Results: fieldList(field("", ident("int64")), field("", ident("bool"))),
		},
		Body: &ast.BlockStmt{List: body},
	}

	uint64Method := &ast.FuncDecl{
		Recv: fieldList(field("v", ident(typeName))),
		Name: ident("Uint64"),
		Type: &ast.FuncType{
			Params:  fieldList(),
			Results: fieldList(field("", ident("uint64")), field("", ident("bool"))),
		},
		Body: &ast.BlockStmt{List: []ast.Stmt{
			&ast.AssignStmt{
				Lhs: []ast.Expr{ident("n"), ident("ok")},
				Tok: token.DEFINE,
				Rhs: []ast.Expr{&ast.CallExpr{
					Fun: &ast.SelectorExpr{X: ident("v"), Sel: ident("Int64")},
				}},
			},
			returnStmt(conv("uint64", ident("n")), ident("ok")),
		}},
	}

	conformance := conformanceVar(
		supportRef("Int64Extractor"),
		conv(typeName, intLit(0)),
	)

	return []Decl{
		{Doc: int64Doc, Node: int64Method},
		{
			Doc:  "Uint64 reinterprets the discriminant's bit pattern as unsigned; negative discriminants wrap.",
			Node: uint64Method,
		},
		{Node: conformance},
	}
}
