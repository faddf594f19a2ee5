// Package diagnostic provides structured per-derivation reporting for the
// generator driver.
//
// A failed derivation becomes one error diagnostic naming the type and, where
// relevant, the capability. Failures are isolated: one type's diagnostic
// never stops derivations for other types in the same run.
package diagnostic
