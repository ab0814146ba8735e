package calc

import (
	"fmt"
	"strconv"
	"strings"
)

// Insert appends tok to the expression text the way a calculator keypad
// would: implicit multiplication is added between adjacent operands, digits
// are merged into a trailing number, a new binary operator replaces a
// trailing one, and a unary minus toggles the sign of the last operand.
//
// expr is not modified on error.
func Insert(expr string, tok Token) (string, error) {
	list, err := builderTokens(expr)
	if err != nil {
		return expr, err
	}
	list, err = insertToken(list, tok)
	if err != nil {
		return expr, err
	}
	return finish(expr, list)
}

// InsertText tokenizes text and inserts each token in turn, so a key label
// such as "^2" or "sqrt" can be passed as is. A lone "." inserts a decimal
// point.
func InsertText(expr, text string) (string, error) {
	if strings.TrimSpace(text) == "." {
		return InsertDecimalPoint(expr)
	}
	toks, err := ParseTokens(text)
	if err != nil {
		return expr, err
	}
	if len(toks) == 0 {
		return expr, ErrEmptyInput
	}
	out := expr
	for _, tok := range toks {
		out, err = Insert(out, tok)
		if err != nil {
			return expr, err
		}
	}
	return out, nil
}

// InsertDecimalPoint adds a decimal point to the trailing number, or starts
// a new "0." literal (with an implicit multiplication after an operand).
// It is idempotent on a literal that already has a point.
func InsertDecimalPoint(expr string) (string, error) {
	list, err := builderTokens(expr)
	if err != nil {
		return expr, err
	}
	n := len(list)
	switch {
	case n > 0 && list[n-1].Is(KindNumber):
		if strings.ContainsAny(list[n-1].Text, ".e") {
			return expr, nil
		}
		list[n-1].Text += "."
	case n > 0 && list[n-1].ClosesOperand():
		list = append(list, MakeToken(KindMul), NumberToken("0.", 0))
	default:
		list = append(list, NumberToken("0.", 0))
	}
	return finish(expr, list)
}

// DeleteLast removes the last character of a trailing number, or the last
// token otherwise. Deleting an opening bracket that belongs to a function
// also deletes the function. Text that does not tokenize loses its last
// byte.
func DeleteLast(expr string) string {
	list, err := ParseTokens(expr)
	if err != nil {
		if expr == "" {
			return ""
		}
		return expr[:len(expr)-1]
	}
	list = FixUnaryOperators(list)
	n := len(list)
	if n == 0 {
		return ""
	}
	last := list[n-1]
	list = list[:n-1]
	switch {
	case last.Is(KindNumber):
		if lit, v, ok := shortenLiteral(last.Text); ok {
			list = append(list, NumberToken(lit, v))
		}
	case last.Is(KindLBracket):
		if n := len(list); n > 0 && list[n-1].IsFunc() {
			list = list[:n-1]
		}
	}
	return Serialize(list)
}

// Serialize renders tokens back to expression text. Unary minus is written
// as '-', and word operators are padded with spaces.
func Serialize(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		switch tok.Kind {
		case KindUnaryMinus:
			b.WriteByte('-')
		case KindMod:
			b.WriteString(" mod ")
		default:
			b.WriteString(tok.Text)
		}
	}
	return b.String()
}

func builderTokens(expr string) ([]Token, error) {
	if len(expr) > MaxInputLen {
		return nil, fmt.Errorf("%w: %d > %d", ErrInputTooLong, len(expr), MaxInputLen)
	}
	list, err := ParseTokens(expr)
	if err != nil {
		return nil, err
	}
	return FixUnaryOperators(list), nil
}

func finish(expr string, list []Token) (string, error) {
	out := Serialize(list)
	if len(out) > MaxInputLen {
		return expr, fmt.Errorf("%w: %d > %d", ErrInputTooLong, len(out), MaxInputLen)
	}
	return out, nil
}

func insertToken(list []Token, tok Token) ([]Token, error) {
	if len(list) == 0 {
		switch {
		case tok.IsBinary(), tok.IsPostfix(), tok.Is(KindRBracket):
			return nil, fmt.Errorf("%w: %q cannot start an expression", ErrOperator, tok.Text)
		case tok.IsFunc():
			return append(list, tok, MakeToken(KindLBracket)), nil
		}
		return append(list, tok), nil
	}

	n := len(list)
	last := list[n-1]
	switch {
	case tok.Is(KindUnaryMinus):
		return toggleSign(list), nil
	case tok.Is(KindUnaryPlus):
		if !prefixPosition(last) {
			return nil, fmt.Errorf("%w: '+' sign after %q", ErrOperator, last.Text)
		}
		return append(list, tok), nil
	case tok.Is(KindLBracket):
		return append(implicitMul(list), tok), nil
	case tok.Is(KindNumber) && last.Is(KindNumber):
		lit := last.Text + tok.Text
		v, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q", ErrInvalidSyntax, lit)
		}
		list[n-1] = NumberToken(lit, v)
		return list, nil
	case tok.IsConst():
		return append(implicitMul(list), tok), nil
	case tok.IsFunc():
		return append(implicitMul(list), tok, MakeToken(KindLBracket)), nil
	case tok.Is(KindRBracket):
		if last.Is(KindLBracket) || last.IsPrefix() || !hasOpenBracket(list) {
			return nil, fmt.Errorf("%w: ')' after %q", ErrOperator, last.Text)
		}
		if last.IsBinary() {
			list[n-1] = tok
			return list, nil
		}
		return append(list, tok), nil
	case tok.IsOperator():
		if last.IsPrefix() || last.Is(KindLBracket) {
			return nil, fmt.Errorf("%w: %q after %q", ErrOperator, tok.Text, last.Text)
		}
		if last.IsBinary() {
			list[n-1] = tok
			return list, nil
		}
		return append(list, tok), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownToken, tok.Text)
}

func implicitMul(list []Token) []Token {
	if n := len(list); n > 0 && list[n-1].ClosesOperand() {
		return append(list, MakeToken(KindMul))
	}
	return list
}

// toggleSign flips the sign of the trailing operand. Signs already in front
// of it are collapsed: an odd number of minuses cancels out.
func toggleSign(list []Token) []Token {
	if last := list[len(list)-1]; last.ClosesOperand() && !last.IsConst() {
		return append(list, MakeToken(KindMul), MakeToken(KindUnaryMinus))
	}
	var operand []Token
	if last := list[len(list)-1]; last.IsConst() {
		operand = append(operand, last)
		list = list[:len(list)-1]
	}
	minus := 0
	for len(list) > 0 && list[len(list)-1].IsPrefix() {
		if list[len(list)-1].Is(KindUnaryMinus) {
			minus++
		}
		list = list[:len(list)-1]
	}
	if minus%2 == 0 {
		list = append(list, MakeToken(KindUnaryMinus))
	}
	return append(list, operand...)
}

func hasOpenBracket(list []Token) bool {
	depth := 0
	for _, tok := range list {
		switch tok.Kind {
		case KindLBracket:
			depth++
		case KindRBracket:
			depth--
		}
	}
	return depth > 0
}

// shortenLiteral drops the last character of a number literal, and any
// dangling exponent marker left behind.
func shortenLiteral(lit string) (string, float64, bool) {
	for len(lit) > 0 {
		lit = lit[:len(lit)-1]
		if lit == "" {
			break
		}
		if v, err := strconv.ParseFloat(lit, 64); err == nil {
			return lit, v, true
		}
	}
	return "", 0, false
}
