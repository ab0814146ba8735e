package calc

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func insertAll(t *testing.T, expr string, keys ...string) string {
	t.Helper()
	var err error
	for _, k := range keys {
		expr, err = InsertText(expr, k)
		if err != nil {
			t.Fatalf("InsertText(%q) error: %v", k, err)
		}
	}
	return expr
}

func TestInsert_Policy(t *testing.T) {
	tests := []struct {
		start string
		keys  []string
		want  string
	}{
		{start: "", keys: []string{"sin"}, want: "sin("},
		{start: "", keys: []string{"1", "2", "3"}, want: "123"},
		{start: "3", keys: []string{"("}, want: "3*("},
		{start: "(3)", keys: []string{"2"}, want: "(3)*2"},
		{start: "2", keys: []string{"x"}, want: "2*x"},
		{start: "x", keys: []string{"sin"}, want: "x*sin("},
		{start: "5!", keys: []string{"2"}, want: "5!*2"},
		{start: "2", keys: []string{"+", "*"}, want: "2*"},
		{start: "2", keys: []string{"+", "mod"}, want: "2 mod "},
		{start: "2", keys: []string{"!", "!"}, want: "2!!"},
		{start: "(2+", keys: []string{")"}, want: "(2)"},
		{start: "(2", keys: []string{")"}, want: "(2)"},
		{start: "2", keys: []string{"^2"}, want: "2^2"},
		{start: "", keys: []string{"~"}, want: "-"},
		{start: "(", keys: []string{"~", "x"}, want: "(-x"},
		{start: "(3)", keys: []string{"~"}, want: "(3)*-"},
		{start: "3*", keys: []string{"~"}, want: "3*-"},
		{start: "3*-", keys: []string{"~"}, want: "3*"},
		{start: "2-5", keys: []string{"~"}, want: "2--5"},
		{start: "2--5", keys: []string{"~"}, want: "2-5"},
		{start: "-12", keys: []string{"3"}, want: "-123"},
	}
	for _, tt := range tests {
		got := insertAll(t, tt.start, tt.keys...)
		if got != tt.want {
			t.Fatalf("insert %q into %q = %q, want %q", tt.keys, tt.start, got, tt.want)
		}
	}
}

func TestInsert_SignToggle(t *testing.T) {
	expr := "5"
	for i, want := range []string{"-5", "5", "-5"} {
		var err error
		expr, err = Insert(expr, MakeToken(KindUnaryMinus))
		if err != nil {
			t.Fatalf("toggle %d error: %v", i, err)
		}
		if expr != want {
			t.Fatalf("toggle %d = %q, want %q", i, expr, want)
		}
	}
}

func TestInsert_Rejected(t *testing.T) {
	tests := []struct {
		start string
		key   string
		want  error
	}{
		{start: "", key: "+", want: ErrOperator},
		{start: "", key: ")", want: ErrOperator},
		{start: "", key: "!", want: ErrOperator},
		{start: "(", key: ")", want: ErrOperator},
		{start: "(", key: "*", want: ErrOperator},
		{start: "2", key: ")", want: ErrOperator},
		{start: "(-", key: ")", want: ErrOperator},
		{start: "-", key: "*", want: ErrOperator},
		{start: "2 # 3", key: "1", want: ErrInvalidSyntax},
		{start: strings.Repeat("1", MaxInputLen), key: "2", want: ErrInputTooLong},
		{start: strings.Repeat("1", MaxInputLen+1), key: "+", want: ErrInputTooLong},
	}
	for _, tt := range tests {
		got, err := InsertText(tt.start, tt.key)
		if !errors.Is(err, tt.want) {
			t.Fatalf("InsertText(%q, %q) err=%v, want %v", tt.start, tt.key, err, tt.want)
		}
		if got != tt.start {
			t.Fatalf("InsertText(%q, %q) changed expression to %q", tt.start, tt.key, got)
		}
	}
}

func TestInsertText_Atomic(t *testing.T) {
	got, err := InsertText("2", "+)")
	if !errors.Is(err, ErrOperator) {
		t.Fatalf("err=%v, want %v", err, ErrOperator)
	}
	if got != "2" {
		t.Fatalf("expression=%q, want unchanged", got)
	}
	if _, err := InsertText("2", " "); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("blank key err=%v", err)
	}
}

func TestInsertDecimalPoint(t *testing.T) {
	tests := []struct {
		start string
		want  string
	}{
		{start: "", want: "0."},
		{start: "1", want: "1."},
		{start: "1.", want: "1."},
		{start: "1.5", want: "1.5"},
		{start: "x", want: "x*0."},
		{start: "(2)", want: "(2)*0."},
		{start: "2+", want: "2+0."},
	}
	for _, tt := range tests {
		got, err := InsertDecimalPoint(tt.start)
		if err != nil {
			t.Fatalf("InsertDecimalPoint(%q) error: %v", tt.start, err)
		}
		if got != tt.want {
			t.Fatalf("InsertDecimalPoint(%q)=%q, want %q", tt.start, got, tt.want)
		}
		again, _ := InsertDecimalPoint(got)
		if again != got {
			t.Fatalf("InsertDecimalPoint not idempotent: %q -> %q", got, again)
		}
	}
	if got := insertAll(t, "1", ".", "5"); got != "1.5" {
		t.Fatalf("1 . 5 = %q", got)
	}
}

func TestDeleteLast(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "12", want: "1"},
		{in: "1", want: ""},
		{in: "1.5", want: "1."},
		{in: "1e5", want: "1"},
		{in: "2+3", want: "2+"},
		{in: "sin(", want: ""},
		{in: "2*sin(", want: "2*"},
		{in: "(3)", want: "(3"},
		{in: "-5", want: "-"},
		{in: "5 mod ", want: "5"},
		{in: "2 #", want: "2 "},
	}
	for _, tt := range tests {
		if got := DeleteLast(tt.in); got != tt.want {
			t.Fatalf("DeleteLast(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuilder_RoundTrip(t *testing.T) {
	sequences := [][]string{
		{"sin", "x", ")", "+", "2", "^", "3"},
		{"~", "1", "2", ".", "5", "mod", "7"},
		{"(", "x", "-", "1", ")", "2", "!"},
		{"pi", "e", "sqrt", "~", "x"},
		{"3", "*", "~", "4", "/", "ln", "x"},
	}
	for _, seq := range sequences {
		expr := insertAll(t, "", seq...)
		toks, err := ParseTokens(expr)
		if err != nil {
			t.Fatalf("ParseTokens(%q) error: %v", expr, err)
		}
		if got := Serialize(FixUnaryOperators(toks)); got != expr {
			t.Fatalf("round trip %q -> %q", expr, got)
		}
	}
}

var builderKeys = []string{
	"0", "1", "2", "5", "9", ".",
	"+", "-", "*", "/", "^", "mod", "!", "~",
	"(", ")", "x", "pi", "e",
	"sin", "cos", "sqrt", "ln", "^2",
}

// Whatever a key sequence builds, an expression ending in an operand must
// compile and evaluate, open brackets included.
func TestBuilder_OutputEvaluates(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 5000; n++ {
		expr := ""
		var keys []string
		for k := rng.Intn(25) + 1; k > 0; k-- {
			if rng.Intn(10) == 0 {
				keys = append(keys, "<del>")
				expr = DeleteLast(expr)
				continue
			}
			key := builderKeys[rng.Intn(len(builderKeys))]
			if out, err := InsertText(expr, key); err == nil {
				keys = append(keys, key)
				expr = out
			}
		}
		toks, err := ParseTokens(expr)
		if err != nil {
			t.Fatalf("keys %q built %q that does not tokenize: %v", keys, expr, err)
		}
		toks = FixUnaryOperators(toks)
		if len(toks) == 0 || !toks[len(toks)-1].ClosesOperand() {
			continue
		}
		if _, err := Calculate(expr, 1.5, Radians); err != nil {
			t.Fatalf("keys %q built %q: %v", keys, expr, err)
		}
	}
}
