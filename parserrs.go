package safeexpr

import "strconv"

// OperatorError is an error indicating an operator token that is not valid at
// its position, e.g. * where a term should start. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the parser expected a unary operator at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unknown "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced parentheses in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the offending token.
	Col int
	// Left is the opening parenthesis, or the empty string if a close
	// parenthesis appeared with no matching open.
	Left string
	// Right is the closing parenthesis, or the empty string if the input
	// ended with an open parenthesis unclosed.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close paren "+err.Right+" with no open paren")
	}
	return errpos(err.Col, "open paren "+err.Left+" with no close paren")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression, e.g.
// (), 1+, or an input with no expression at all. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// TrailingError is an error indicating a token left over after a complete
// expression, e.g. the second number in "2 3". It implements InputError.
type TrailingError struct {
	// Col is the position of the leftover token.
	Col int
	// Token is the leftover token.
	Token string
}

func (err *TrailingError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Token)+" after expression")
}

func (err *TrailingError) Pos() int {
	return err.Col
}

// DepthError is an error indicating that an expression nests deeper than the
// parser's limit. It implements InputError.
type DepthError struct {
	// Col is the position at which the limit was exceeded.
	Col int
	// Limit is the nesting limit in effect.
	Limit int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "expression nests deeper than "+strconv.Itoa(err.Limit))
}

func (err *DepthError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*TrailingError)(nil)
	_ InputError = (*DepthError)(nil)
	_ InputError = (*LexError)(nil)
)
