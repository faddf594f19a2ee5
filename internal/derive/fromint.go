package derive

import (
	"fmt"
	"go/ast"
	"go/token"

	"numconv-generator/internal/common"
)

// genFromInt64 builds the fallible integer-to-value constructors.
//
// <T>FromInt64 is a sequential equality chain over the variants in
// declaration order, so when two variants share a discriminant the
// first-declared one wins and the later one is simply unreachable from this
// direction. <T>FromUint64 reinterprets its argument's bit pattern as signed
// and delegates; out-of-range magnitudes wrap instead of failing.
func genFromInt64(typeName string, variants []ResolvedVariant) []Decl {
	named := namedVariants(variants)

	param := "n"
	var body []ast.Stmt

	if common.IsEmpty(named) {
		// No comparison is meaningful, so don't bind a candidate
		// variable at all.
		param = "_"
	} else {
		body = append(body, fromChain(named))
	}

	body = append(body,
		&ast.DeclStmt{Decl: &ast.GenDecl{
			Tok: token.VAR,
			Specs: []ast.Spec{&ast.ValueSpec{
				Names: []*ast.Ident{ident("zero")},
				Type:  ident(typeName),
			}},
		}},
		returnStmt(ident("zero"), ident("false")),
	)

	fromInt64 := &ast.FuncDecl{
		Name: ident(typeName + "FromInt64"),
		Type: &ast.FuncType{
			Params:  fieldList(field(param, ident("int64"))),
			Results: fieldList(field("", ident(typeName)), field("", ident("bool"))),
		},
		Body: &ast.BlockStmt{List: body},
	}

	fromUint64 := &ast.FuncDecl{
		Name: ident(typeName + "FromUint64"),
		Type: &ast.FuncType{
			Params:  fieldList(field("n", ident("uint64"))),
			Results: fieldList(field("", ident(typeName)), field("", ident("bool"))),
		},
		Body: &ast.BlockStmt{List: []ast.Stmt{
			returnStmt(&ast.CallExpr{
				Fun:  ident(typeName + "FromInt64"),
				Args: []ast.Expr{conv("int64", ident("n"))},
			}),
		}},
	}

	conformance := &ast.GenDecl{
		Tok:    token.VAR,
		Lparen: 1,
		Rparen: 2,
		Specs: []ast.Spec{
			&ast.ValueSpec{
				Names:  []*ast.Ident{ident("_")},
				Type:   supportFuncType("FromInt64Func", typeName),
				Values: []ast.Expr{ident(typeName + "FromInt64")},
			},
			&ast.ValueSpec{
				Names:  []*ast.Ident{ident("_")},
				Type:   supportFuncType("FromUint64Func", typeName),
				Values: []ast.Expr{ident(typeName + "FromUint64")},
			},
		},
	}

	return []Decl{
		{
			Doc:  fmt.Sprintf("%sFromInt64 returns the %s whose discriminant equals n.", typeName, typeName),
			Node: fromInt64,
		},
		{
			Doc:  fmt.Sprintf("%sFromUint64 reinterprets n as signed and delegates to %sFromInt64; values beyond the int64 range wrap.", typeName, typeName),
			Node: fromUint64,
		},
		{Node: conformance},
	}
}

// fromChain builds the first-match-wins if/else chain. Callers guarantee at
// least one variant.
func fromChain(variants []ResolvedVariant) ast.Stmt {
	var chain ast.Stmt

	for i := len(variants) - 1; i >= 0; i-- {
		v := variants[i]
		chain = &ast.IfStmt{
			Cond: &ast.BinaryExpr{
				X:  ident("n"),
				Op: token.EQL,
				Y:  discriminantExpr(v),
			},
			Body: &ast.BlockStmt{List: []ast.Stmt{
				returnStmt(ident(v.Name), ident("true")),
			}},
			Else: chain,
		}
	}

	return chain
}
