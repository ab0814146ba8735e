package calc

import (
	"errors"
	"testing"
)

func kindsOf(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func sameKinds(a, b []Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestParseTokens_Kinds(t *testing.T) {
	tests := []struct {
		in   string
		want []Kind
	}{
		{in: "2+3*4", want: []Kind{KindNumber, KindAdd, KindNumber, KindMul, KindNumber}},
		{in: "SIN(X)", want: []Kind{KindSin, KindLBracket, KindVariable, KindRBracket}},
		{in: "asin acos atan", want: []Kind{KindAsin, KindAcos, KindAtan}},
		{in: "5 mod 3", want: []Kind{KindNumber, KindMod, KindNumber}},
		{in: "5%3", want: []Kind{KindNumber, KindMod, KindNumber}},
		{in: "pi*e", want: []Kind{KindPi, KindMul, KindE}},
		{in: "~x!", want: []Kind{KindUnaryMinus, KindVariable, KindFactorial}},
		{in: "2e", want: []Kind{KindNumber, KindE}},
		{in: "ln(log(sqrt(x)))", want: []Kind{KindLn, KindLBracket, KindLog, KindLBracket, KindSqrt, KindLBracket, KindVariable, KindRBracket, KindRBracket, KindRBracket}},
		{in: " \t ", want: []Kind{}},
	}

	for _, tt := range tests {
		got, err := ParseTokens(tt.in)
		if err != nil {
			t.Fatalf("ParseTokens(%q) error: %v", tt.in, err)
		}
		if !sameKinds(kindsOf(got), tt.want) {
			t.Fatalf("ParseTokens(%q)=%v, want %v", tt.in, kindsOf(got), tt.want)
		}
	}
}

func TestParseTokens_Numbers(t *testing.T) {
	tests := []struct {
		in       string
		wantText string
		want     float64
	}{
		{in: "42", wantText: "42", want: 42},
		{in: "1.5", wantText: "1.5", want: 1.5},
		{in: "1.", wantText: "1.", want: 1},
		{in: "1.5e3", wantText: "1.5e3", want: 1500},
		{in: "2E-2", wantText: "2e-2", want: 0.02},
	}
	for _, tt := range tests {
		got, err := ParseTokens(tt.in)
		if err != nil {
			t.Fatalf("ParseTokens(%q) error: %v", tt.in, err)
		}
		if len(got) != 1 || got[0].Kind != KindNumber {
			t.Fatalf("ParseTokens(%q)=%v, want one number", tt.in, kindsOf(got))
		}
		if got[0].Text != tt.wantText || got[0].Value != tt.want {
			t.Fatalf("ParseTokens(%q)=%q/%v, want %q/%v", tt.in, got[0].Text, got[0].Value, tt.wantText, tt.want)
		}
	}
}

func TestParseTokens_Invalid(t *testing.T) {
	for _, in := range []string{"2 # 3", "1.2.3", "exp(1)", "y"} {
		if _, err := ParseTokens(in); !errors.Is(err, ErrInvalidSyntax) {
			t.Fatalf("ParseTokens(%q) err=%v, want %v", in, err, ErrInvalidSyntax)
		}
	}
}

func TestMakeToken_Canonical(t *testing.T) {
	a := MakeToken(KindPow)
	b := MakeToken(KindPow)
	if a.Text != "^" || a.Precedence != b.Precedence || a.LeftAssoc {
		t.Fatalf("pow token=%+v", a)
	}
	if p := MakeToken(KindPi); p.Value != 3.141592653589793 {
		t.Fatalf("pi=%v", p.Value)
	}
	if u := MakeToken(Kind(200)); u.Kind != KindUnknown {
		t.Fatalf("out of range kind=%v", u.Kind)
	}
}

func TestKeywords_LongestFirst(t *testing.T) {
	kws := Keywords()
	for i := 1; i < len(kws); i++ {
		if len(kws[i]) > len(kws[i-1]) {
			t.Fatalf("keywords not ordered by length: %q before %q", kws[i-1], kws[i])
		}
	}
	if k, ok := LookupKeyword("mod"); !ok || k != KindMod {
		t.Fatalf("LookupKeyword(mod)=%v,%v", k, ok)
	}
}
