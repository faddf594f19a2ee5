// Package analyze discovers annotated enum declarations.
//
// It loads packages with golang.org/x/tools/go/packages and scans their
// syntax trees for numconv derive directives. Everything downstream of
// discovery (extraction, validation, generation) is handled per target by
// internal/typedesc and internal/derive.
package analyze
