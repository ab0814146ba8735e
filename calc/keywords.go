package calc

import "sort"

// keywords maps every non-numeric lexeme to its kind. It is built once and
// never modified.
var keywords = map[string]Kind{
	"(":    KindLBracket,
	")":    KindRBracket,
	"+":    KindAdd,
	"-":    KindSub,
	"*":    KindMul,
	"/":    KindDiv,
	"^":    KindPow,
	"~":    KindUnaryMinus,
	"%":    KindMod,
	"mod":  KindMod,
	"!":    KindFactorial,
	"x":    KindVariable,
	"e":    KindE,
	"pi":   KindPi,
	"cos":  KindCos,
	"sin":  KindSin,
	"tan":  KindTan,
	"acos": KindAcos,
	"asin": KindAsin,
	"atan": KindAtan,
	"sqrt": KindSqrt,
	"ln":   KindLn,
	"log":  KindLog,
}

// keywordOrder lists the keywords longest first, so that a prefix scan
// yields the longest match ("asin" before "sin", "acos" before "cos").
var keywordOrder = func() []string {
	out := make([]string, 0, len(keywords))
	for k := range keywords {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}()

// Keywords returns the recognized non-numeric lexemes, longest first.
func Keywords() []string {
	out := make([]string, len(keywordOrder))
	copy(out, keywordOrder)
	return out
}

// LookupKeyword returns the kind for an exact keyword.
func LookupKeyword(s string) (Kind, bool) {
	k, ok := keywords[s]
	return k, ok
}
