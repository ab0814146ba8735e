package calc

import "math"

// Kind identifies a token. The set is closed: every switch over Kind in this
// package is exhaustive.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindNumber
	KindVariable
	KindPi
	KindE
	KindLBracket
	KindRBracket
	KindAdd
	KindSub
	KindMul
	KindDiv
	KindPow
	KindMod
	KindUnaryPlus
	KindUnaryMinus
	KindFactorial
	KindCos
	KindSin
	KindTan
	KindAcos
	KindAsin
	KindAtan
	KindSqrt
	KindLn
	KindLog
)

// Token is a single lexical unit of an expression.
//
// Value is meaningful for numbers and the named constants; it is NaN for
// every other kind.
type Token struct {
	Kind       Kind
	Text       string
	Precedence int
	LeftAssoc  bool
	Value      float64
}

type kindInfo struct {
	text  string
	prec  int
	left  bool
	value float64
}

var kinds = [...]kindInfo{
	KindUnknown:    {text: "?", value: math.NaN()},
	KindNumber:     {text: "0", value: 0},
	KindVariable:   {text: "x", value: math.NaN()},
	KindPi:         {text: "pi", value: math.Pi},
	KindE:          {text: "e", value: math.E},
	KindLBracket:   {text: "(", value: math.NaN()},
	KindRBracket:   {text: ")", value: math.NaN()},
	KindAdd:        {text: "+", prec: 1, left: true, value: math.NaN()},
	KindSub:        {text: "-", prec: 1, left: true, value: math.NaN()},
	KindMul:        {text: "*", prec: 2, left: true, value: math.NaN()},
	KindDiv:        {text: "/", prec: 2, left: true, value: math.NaN()},
	KindMod:        {text: "mod", prec: 2, left: true, value: math.NaN()},
	KindPow:        {text: "^", prec: 3, value: math.NaN()},
	KindUnaryPlus:  {text: "+", prec: 4, value: math.NaN()},
	KindUnaryMinus: {text: "~", prec: 4, value: math.NaN()},
	KindFactorial:  {text: "!", prec: 5, left: true, value: math.NaN()},
	KindCos:        {text: "cos", prec: 6, value: math.NaN()},
	KindSin:        {text: "sin", prec: 6, value: math.NaN()},
	KindTan:        {text: "tan", prec: 6, value: math.NaN()},
	KindAcos:       {text: "acos", prec: 6, value: math.NaN()},
	KindAsin:       {text: "asin", prec: 6, value: math.NaN()},
	KindAtan:       {text: "atan", prec: 6, value: math.NaN()},
	KindSqrt:       {text: "sqrt", prec: 6, value: math.NaN()},
	KindLn:         {text: "ln", prec: 6, value: math.NaN()},
	KindLog:        {text: "log", prec: 6, value: math.NaN()},
}

// MakeToken returns the canonical token for k. Numbers should be created
// with NumberToken so that the literal text is kept.
func MakeToken(k Kind) Token {
	if int(k) >= len(kinds) {
		k = KindUnknown
	}
	info := kinds[k]
	return Token{
		Kind:       k,
		Text:       info.text,
		Precedence: info.prec,
		LeftAssoc:  info.left,
		Value:      info.value,
	}
}

// NumberToken returns a number token carrying both its literal text and
// its parsed value.
func NumberToken(text string, v float64) Token {
	t := MakeToken(KindNumber)
	t.Text = text
	t.Value = v
	return t
}

func (k Kind) String() string {
	if int(k) >= len(kinds) {
		return "?"
	}
	return kinds[k].text
}

// IsConst reports whether t is a literal number, the variable or a named
// constant.
func (t Token) IsConst() bool {
	switch t.Kind {
	case KindNumber, KindVariable, KindPi, KindE:
		return true
	}
	return false
}

// IsFunc reports whether t is a one-argument named function.
func (t Token) IsFunc() bool {
	switch t.Kind {
	case KindCos, KindSin, KindTan, KindAcos, KindAsin, KindAtan, KindSqrt, KindLn, KindLog:
		return true
	}
	return false
}

// IsBinary reports whether t is an infix operator.
func (t Token) IsBinary() bool {
	switch t.Kind {
	case KindAdd, KindSub, KindMul, KindDiv, KindPow, KindMod:
		return true
	}
	return false
}

// IsPrefix reports whether t is a prefix sign.
func (t Token) IsPrefix() bool {
	switch t.Kind {
	case KindUnaryPlus, KindUnaryMinus:
		return true
	}
	return false
}

// IsPostfix reports whether t is applied to the operand on its left.
func (t Token) IsPostfix() bool {
	return t.Kind == KindFactorial
}

// IsOperator reports whether t is any operator (binary, prefix or postfix).
func (t Token) IsOperator() bool {
	return t.IsBinary() || t.IsPrefix() || t.IsPostfix()
}

// IsUnary reports whether t consumes exactly one operand when evaluated.
func (t Token) IsUnary() bool {
	return t.IsPrefix() || t.IsPostfix() || t.IsFunc()
}

// ClosesOperand reports whether an operand ends with t, so that a following
// operand needs an implicit multiplication.
func (t Token) ClosesOperand() bool {
	return t.IsConst() || t.Kind == KindRBracket || t.Kind == KindFactorial
}

// Is reports whether t has kind k.
func (t Token) Is(k Kind) bool { return t.Kind == k }
