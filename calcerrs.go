package minivac

import "strconv"

// InputError is an error with position information. Every error caused by
// the text of an input line implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based rune column of
	// the token that caused it.
	Pos() int
}

// LexError indicates input the tokeniser does not recognise.
type LexError struct {
	// Text is the leading text that matched no token pattern.
	Text string
	// Col is the rune column of the unknown text.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "unknown token "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

// StartTokenError indicates a token that cannot begin an expression.
type StartTokenError struct {
	Col   int
	Token string
}

func (err *StartTokenError) Error() string {
	return errpos(err.Col, "expression cannot start with "+strconv.Quote(err.Token))
}

func (err *StartTokenError) Pos() int {
	return err.Col
}

// InfixError indicates a token found where a binary operator was expected.
type InfixError struct {
	Col   int
	Token string
}

func (err *InfixError) Error() string {
	return errpos(err.Col, "expected an operator, found "+strconv.Quote(err.Token))
}

func (err *InfixError) Pos() int {
	return err.Col
}

// OperandError indicates an operator with no usable operand after it.
type OperandError struct {
	Col int
	// Token is the offending token, or empty if the input ended instead.
	Token string
}

func (err *OperandError) Error() string {
	if err.Token == "" {
		return errpos(err.Col, "missing operand at end of expression")
	}
	return errpos(err.Col, "missing operand, found "+strconv.Quote(err.Token))
}

func (err *OperandError) Pos() int {
	return err.Col
}

// BracketError indicates an unmatched bracket.
type BracketError struct {
	Col   int
	Token string
}

func (err *BracketError) Error() string {
	return errpos(err.Col, "unmatched brackets near "+strconv.Quote(err.Token))
}

func (err *BracketError) Pos() int {
	return err.Col
}

// CallSyntaxError indicates a call name not followed by a bracketed
// argument.
type CallSyntaxError struct {
	Col  int
	Func string
}

func (err *CallSyntaxError) Error() string {
	return errpos(err.Col, "malformed call: expected "+err.Func+"(argument)")
}

func (err *CallSyntaxError) Pos() int {
	return err.Col
}

// EmptyExpressionError indicates input with no expression in it.
type EmptyExpressionError struct {
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// AssignError indicates an "=" line whose left side is neither a variable
// name nor a function definition head.
type AssignError struct {
	// Left is the text left of the first "=".
	Left string
}

func (err *AssignError) Error() string {
	return "unknown assignment " + strconv.Quote(err.Left)
}

// NameError indicates a lookup of a symbol the table does not hold. Kind
// is "variable" or "function".
type NameError struct {
	Name string
	Kind string
}

func (err *NameError) Error() string {
	return "not a stored " + err.Kind + ": " + strconv.Quote(err.Name)
}

// MutationError indicates an assignment to a final symbol.
type MutationError struct {
	Name string
}

func (err *MutationError) Error() string {
	return "cannot modify " + err.Name
}

// DivisionError indicates a division whose divisor is within the near-zero
// guard.
type DivisionError struct{}

func (err *DivisionError) Error() string {
	return "cannot divide by zero"
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*StartTokenError)(nil)
	_ InputError = (*InfixError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*CallSyntaxError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)
