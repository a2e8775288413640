package numexpr

import "github.com/evallang/numexpr/numerr"

// Sentinel errors a host can compare against with errors.Is, re-exported
// from numerr so callers never need to import that package directly.
var (
	ErrSyntax            = numerr.ErrSyntax
	ErrParse             = numerr.ErrParse
	ErrMismatchedParens  = numerr.ErrMismatchedParens
	ErrMalformed         = numerr.ErrMalformed
	ErrUndefinedVariable = numerr.ErrUndefinedVariable
	ErrCyclicVariable    = numerr.ErrCyclicVariable
	ErrDivisionByZero    = numerr.ErrDivisionByZero
	ErrDomain            = numerr.ErrDomain
	ErrPrecisionOverflow = numerr.ErrPrecisionOverflow
)

// Error is the concrete error type every failure is reported as; use
// errors.As to recover its Kind/Pos/Detail fields.
type Error = numerr.Error
