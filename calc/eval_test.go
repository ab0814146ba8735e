package calc

import (
	"errors"
	"math"
	"math/big"
	"strings"
	"testing"
)

func near(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Abs(b))
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		in   string
		x    float64
		unit AngleUnit
		want float64
	}{
		{in: "2+3*4", want: 14},
		{in: "2^3^2", want: 512},
		{in: "(1+2)*3", want: 9},
		{in: "10 mod 3", want: 1},
		{in: "-7 mod 3", want: -1},
		{in: "sqrt(16)", want: 4},
		{in: "ln(e)", want: 1},
		{in: "log(1000)", want: 3},
		{in: "x^2", x: 3, want: 9},
		{in: "-x", x: 2, want: -2},
		{in: "--x", x: 2, want: 2},
		{in: "2^-1", want: 0.5},
		{in: "5!", want: 120},
		{in: "3!!", want: 720},
		{in: "cos(pi)", want: -1},
		{in: "sin(90)", unit: Degrees, want: 1},
		{in: "cos 180", unit: Degrees, want: -1},
		{in: "asin(1)", unit: Degrees, want: math.Pi / 2},
		{in: "sin(x", x: 0.5, want: math.Sin(0.5)},
		{in: "(1+2", want: 3},
		{in: "2*(3+(4", want: 14},
		{in: "sin -x+1", x: 0.5, want: math.Sin(-0.5) + 1},
		{in: "sqrt +x", x: 9, want: 3},
		{in: "sin sin sin x", x: 1, want: math.Sin(math.Sin(math.Sin(1)))},
		{in: "1/0", want: math.Inf(1)},
	}
	for _, tt := range tests {
		got, err := Calculate(tt.in, tt.x, tt.unit)
		if err != nil {
			t.Fatalf("Calculate(%q) error: %v", tt.in, err)
		}
		if !near(got, tt.want) {
			t.Fatalf("Calculate(%q)=%v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCalculate_DomainIsIEEE(t *testing.T) {
	for _, in := range []string{"sqrt(-1)", "ln(-1)", "0/0", "acos(2)"} {
		got, err := Calculate(in, 0, Radians)
		if err != nil {
			t.Fatalf("Calculate(%q) error: %v", in, err)
		}
		if !math.IsNaN(got) {
			t.Fatalf("Calculate(%q)=%v, want NaN", in, got)
		}
	}
}

func TestCalculate_Errors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{in: "", want: ErrEmptyInput},
		{in: "   ", want: ErrEmptyInput},
		{in: strings.Repeat("1", MaxInputLen+1), want: ErrInputTooLong},
		{in: "2 # 3", want: ErrInvalidSyntax},
		{in: "x))", want: ErrUnbalancedBrackets},
		{in: "2x", want: ErrEvaluation},
		{in: "2+", want: ErrEvaluation},
		{in: "+", want: ErrEvaluation},
	}
	for _, tt := range tests {
		if _, err := Calculate(tt.in, 1, Radians); !errors.Is(err, tt.want) {
			t.Fatalf("Calculate(%q) err=%v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestEvaluate_StackUnderflow(t *testing.T) {
	toks, err := ParseTokens("1 +")
	if err != nil {
		t.Fatalf("ParseTokens error: %v", err)
	}
	if _, err := Evaluate(toks, 0); !errors.Is(err, ErrEvaluation) {
		t.Fatalf("Evaluate err=%v, want %v", err, ErrEvaluation)
	}
	if _, err := Evaluate(nil, 0); !errors.Is(err, ErrEvaluation) {
		t.Fatalf("Evaluate(nil) err=%v, want %v", err, ErrEvaluation)
	}
}

func TestAngleUnit(t *testing.T) {
	if Radians.Factor() != 1 {
		t.Fatalf("radians factor=%v", Radians.Factor())
	}
	if Degrees.Factor() != math.Pi/180 {
		t.Fatalf("degrees factor=%v", Degrees.Factor())
	}
	for in, want := range map[string]AngleUnit{"deg": Degrees, "Degrees": Degrees, "rad": Radians, "": Radians} {
		got, err := ParseAngleUnit(in)
		if err != nil || got != want {
			t.Fatalf("ParseAngleUnit(%q)=%v,%v want %v", in, got, err, want)
		}
	}
	if _, err := ParseAngleUnit("grad"); err == nil {
		t.Fatalf("ParseAngleUnit(grad) want error")
	}
}

func TestFactorial(t *testing.T) {
	want := 1.0
	for i := 1; i <= 65; i++ {
		want *= float64(i)
	}
	if got := Factorial(65); got != want {
		t.Fatalf("Factorial(65)=%v, want %v", got, want)
	}
	exact, _ := new(big.Float).SetInt(new(big.Int).MulRange(1, 65)).Float64()
	if !near(Factorial(65), exact) {
		t.Fatalf("Factorial(65)=%v, exact %v", Factorial(65), exact)
	}
	if got := Factorial(66); got != 0 {
		t.Fatalf("Factorial(66)=%v, want 0", got)
	}
	if got := Factorial(-1); got != 0 {
		t.Fatalf("Factorial(-1)=%v, want 0", got)
	}
	if got := Factorial(5.7); got != 120 {
		t.Fatalf("Factorial(5.7)=%v, want 120", got)
	}
	if got := Factorial(0); got != 1 {
		t.Fatalf("Factorial(0)=%v, want 1", got)
	}
}

func TestCompile_Postfix(t *testing.T) {
	p, err := Compile("sin x + 2*x", Degrees)
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if p.Postfix() != "x sin 2 x * +" {
		t.Fatalf("Postfix=%q", p.Postfix())
	}
	if p.Angle() != Degrees {
		t.Fatalf("Angle=%v", p.Angle())
	}
	got, err := p.Eval(90)
	if err != nil || !near(got, 181) {
		t.Fatalf("Eval(90)=%v,%v want 181", got, err)
	}
}
