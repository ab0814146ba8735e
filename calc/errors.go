package calc

import "errors"

// MaxInputLen is the longest expression text accepted, in bytes.
const MaxInputLen = 255

var (
	ErrEmptyInput         = errors.New("empty input")
	ErrInputTooLong       = errors.New("input too long")
	ErrInvalidSyntax      = errors.New("invalid syntax")
	ErrOperator           = errors.New("misplaced operator")
	ErrUnbalancedBrackets = errors.New("unbalanced brackets")
	ErrUnknownToken       = errors.New("unknown token")
	ErrEvaluation         = errors.New("evaluation error")
)
