// Package safeexpr evaluates arithmetic expressions from untrusted text.
//
// The language is numbers, the binary operators + - * / // % **, unary + and
// -, and parentheses. Nothing else parses: there are no identifiers, no
// function calls, no comparisons, and no way to name or run code. The
// expression tree has node kinds only for literals and arithmetic operators,
// so the restriction is a property of the data model rather than a filter
// applied during evaluation.
//
// Results are Numbers, which are either int64- or float64-kinded. Integer
// operands stay integer through + - * // % and ** with a non-negative
// exponent; / always produces a float, as does any float operand. // and %
// follow the floored-division convention, with the sign of % matching the
// divisor.
//
// Parsing and evaluation are pure functions of their input with no shared
// state, so they are safe to call from any number of goroutines. Nesting
// depth is bounded (see MaxDepth) so that deeply nested input returns an
// error instead of exhausting the stack.
package safeexpr
