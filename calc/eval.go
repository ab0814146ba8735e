package calc

import (
	"fmt"
	"math"
	"strings"
)

// AngleUnit selects how trigonometric function arguments are read.
type AngleUnit uint8

const (
	Radians AngleUnit = iota
	Degrees
)

// Factor is the multiplier applied to cos, sin and tan arguments.
func (u AngleUnit) Factor() float64 {
	if u == Degrees {
		return math.Pi / 180
	}
	return 1
}

func (u AngleUnit) String() string {
	if u == Degrees {
		return "degrees"
	}
	return "radians"
}

// ParseAngleUnit accepts "rad", "radians", "deg" and "degrees".
func ParseAngleUnit(s string) (AngleUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rad", "radian", "radians":
		return Radians, nil
	case "deg", "degree", "degrees":
		return Degrees, nil
	}
	return Radians, fmt.Errorf("unknown angle unit %q", s)
}

const maxFactorial = 65

var factorials = func() [maxFactorial + 1]float64 {
	var t [maxFactorial + 1]float64
	t[0] = 1
	for i := 1; i <= maxFactorial; i++ {
		t[i] = t[i-1] * float64(i)
	}
	return t
}()

// Factorial returns n! from a precomputed table. The argument is truncated
// toward zero; anything outside 0..65 yields 0.
func Factorial(v float64) float64 {
	if math.IsNaN(v) || v < 0 || v >= maxFactorial+1 {
		return 0
	}
	return factorials[int(v)]
}

// Evaluator evaluates postfix token sequences.
type Evaluator struct {
	Angle AngleUnit
}

// Evaluate evaluates postfix tokens in radians mode.
func Evaluate(tokens []Token, x float64) (float64, error) {
	return Evaluator{}.Evaluate(tokens, x)
}

// Evaluate runs a postfix token sequence with the variable bound to x.
// Domain errors follow IEEE-754 (NaN, ±Inf); only a malformed sequence is
// an error.
func (ev Evaluator) Evaluate(tokens []Token, x float64) (float64, error) {
	stack := make([]float64, 0, 16)
	pop := func() (float64, bool) {
		n := len(stack)
		if n == 0 {
			return 0, false
		}
		v := stack[n-1]
		stack = stack[:n-1]
		return v, true
	}

	for _, tok := range tokens {
		switch {
		case tok.Is(KindVariable):
			stack = append(stack, x)
		case tok.IsConst():
			stack = append(stack, tok.Value)
		case tok.IsUnary():
			a, ok := pop()
			if !ok {
				return 0, fmt.Errorf("%w: missing operand for %q", ErrEvaluation, tok.Text)
			}
			stack = append(stack, ev.unary(tok.Kind, a))
		case tok.IsBinary():
			b, ok1 := pop()
			a, ok2 := pop()
			if !ok1 || !ok2 {
				return 0, fmt.Errorf("%w: missing operand for %q", ErrEvaluation, tok.Text)
			}
			stack = append(stack, binary(tok.Kind, a, b))
		default:
			return 0, fmt.Errorf("%w: unexpected %q", ErrEvaluation, tok.Text)
		}
	}
	if len(stack) != 1 {
		return 0, fmt.Errorf("%w: %d values left", ErrEvaluation, len(stack))
	}
	return stack[0], nil
}

func (ev Evaluator) unary(k Kind, a float64) float64 {
	switch k {
	case KindUnaryPlus:
		return a
	case KindUnaryMinus:
		return -a
	case KindFactorial:
		return Factorial(a)
	case KindCos:
		return math.Cos(a * ev.Angle.Factor())
	case KindSin:
		return math.Sin(a * ev.Angle.Factor())
	case KindTan:
		return math.Tan(a * ev.Angle.Factor())
	case KindAcos:
		return math.Acos(a)
	case KindAsin:
		return math.Asin(a)
	case KindAtan:
		return math.Atan(a)
	case KindSqrt:
		return math.Sqrt(a)
	case KindLn:
		return math.Log(a)
	case KindLog:
		return math.Log10(a)
	}
	return math.NaN()
}

func binary(k Kind, a, b float64) float64 {
	switch k {
	case KindAdd:
		return a + b
	case KindSub:
		return a - b
	case KindMul:
		return a * b
	case KindDiv:
		return a / b
	case KindPow:
		return math.Pow(a, b)
	case KindMod:
		return math.Mod(a, b)
	}
	return math.NaN()
}
