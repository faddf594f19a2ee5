package derive

import (
	"go/ast"
	"go/constant"
	"go/token"

	"github.com/cockroachdb/errors"

	"numconv-generator/internal/typedesc"
)

// ResolvedVariant is a variant paired with its numeric discriminant.
type ResolvedVariant struct {
	Name string
	// Value is the resolved discriminant. Implicit values are previous+1
	// even where Go's repeated-expression rule for a bare const spec
	// would give the previous value again; generated code references the
	// variant constants themselves, so the host compiler stays
	// authoritative and Value feeds validation, metadata, and tests.
	Value int64
	// Blank marks a "_" const spec: it advances the implicit numbering
	// but never appears in generated code.
	Blank bool
	// Wrapped marks a constant in the uint64-only range whose Value is
	// the reinterpreted (negative) bit pattern. Such a constant cannot be
	// converted to int64 in generated code, so the generators emit
	// Value's literal instead.
	Wrapped bool
}

// resolveDiscriminants computes every variant's discriminant: the explicit
// expression's value when one is declared, otherwise one greater than the
// previous variant's value, starting at 0. Declaration order is load-bearing
// here; it fixes both the implicit numbering and which variant wins when two
// share a value.
func resolveDiscriminants(enum *typedesc.EnumDefinition) ([]ResolvedVariant, error) {
	resolved := make([]ResolvedVariant, 0, len(enum.Variants))
	scope := make(map[string]int64, len(enum.Variants))
	prev := int64(-1)

	for _, v := range enum.Variants {
		value := prev + 1
		wrapped := false

		if v.Value != nil {
			cv, err := evalExpr(v.Value, v.Iota, scope)
			if err != nil {
				return nil, errors.Wrapf(err, "cannot resolve discriminant of %s.%s", enum.Name, v.Name)
			}

			if cv.Kind() != constant.Int {
				return nil, errors.Newf("discriminant of %s.%s is not an integer constant (%s)", enum.Name, v.Name, cv)
			}

			iv, exact := constant.Int64Val(cv)
			if !exact {
				// A constant in [2^63, 2^64) is legal on an
				// unsigned enum; it reinterprets to a negative
				// int64, the same wrap the generated
				// conversions apply.
				uv, uexact := constant.Uint64Val(cv)
				if !uexact {
					return nil, errors.Newf("discriminant of %s.%s does not fit in 64 bits (%s)", enum.Name, v.Name, cv)
				}

				iv = int64(uv)
				wrapped = true
			}

			value = iv
		}

		prev = value

		if !v.Blank() {
			scope[v.Name] = value
		}

		resolved = append(resolved, ResolvedVariant{Name: v.Name, Value: value, Blank: v.Blank(), Wrapped: wrapped})
	}

	return resolved, nil
}

// evalExpr evaluates a discriminant expression over untyped constants.
// iotaOrd is the variant's const-spec ordinal within its block; scope holds
// the variants resolved so far.
func evalExpr(expr ast.Expr, iotaOrd int, scope map[string]int64) (constant.Value, error) {
	switch e := expr.(type) {
	case *ast.BasicLit:
		if e.Kind != token.INT {
			return nil, errors.Newf("literal %s is not an integer", e.Value)
		}

		v := constant.MakeFromLiteral(e.Value, e.Kind, 0)
		if v.Kind() == constant.Unknown {
			return nil, errors.Newf("malformed integer literal %s", e.Value)
		}

		return v, nil

	case *ast.Ident:
		if e.Name == "iota" {
			return constant.MakeInt64(int64(iotaOrd)), nil
		}

		if v, ok := scope[e.Name]; ok {
			return constant.MakeInt64(v), nil
		}

		return nil, errors.Newf("%s does not name a previously declared variant", e.Name)

	case *ast.ParenExpr:
		return evalExpr(e.X, iotaOrd, scope)

	case *ast.UnaryExpr:
		x, err := evalExpr(e.X, iotaOrd, scope)
		if err != nil {
			return nil, err
		}

		switch e.Op {
		case token.ADD:
			return x, nil
		case token.SUB:
			return constant.UnaryOp(token.SUB, x, 0), nil
		case token.XOR:
			// Untyped-constant complement: ^x is -x-1, so ^0
			// resolves to -1 the way the host compiler does.
			return constant.UnaryOp(token.XOR, x, 0), nil
		}

		return nil, errors.Newf("unsupported unary operator %s", e.Op)

	case *ast.BinaryExpr:
		return evalBinary(e, iotaOrd, scope)
	}

	return nil, errors.New("unsupported discriminant expression")
}

func evalBinary(e *ast.BinaryExpr, iotaOrd int, scope map[string]int64) (constant.Value, error) {
	x, err := evalExpr(e.X, iotaOrd, scope)
	if err != nil {
		return nil, err
	}

	y, err := evalExpr(e.Y, iotaOrd, scope)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case token.SHL, token.SHR:
		count, exact := constant.Int64Val(y)
		if !exact || count < 0 || count > 63 {
			return nil, errors.Newf("shift count %s is out of range", y)
		}

		return constant.Shift(x, e.Op, uint(count)), nil

	case token.QUO, token.REM:
		if constant.Sign(y) == 0 {
			return nil, errors.New("division by zero")
		}

		if e.Op == token.QUO {
			// QUO_ASSIGN forces integer division of Int operands.
			return constant.BinaryOp(x, token.QUO_ASSIGN, y), nil
		}

		return constant.BinaryOp(x, token.REM, y), nil

	case token.ADD, token.SUB, token.MUL, token.AND, token.OR, token.XOR, token.AND_NOT:
		return constant.BinaryOp(x, e.Op, y), nil
	}

	return nil, errors.Newf("unsupported binary operator %s", e.Op)
}
