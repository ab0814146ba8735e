package calc

// FixUnaryOperators rewrites '+' and '-' that sit in prefix position into
// their unary forms. A sign is in prefix position when it is the first
// token or follows an operator or an opening bracket. The postfix factorial
// closes an operand, so a sign after it stays binary.
//
// The slice is modified in place and returned.
func FixUnaryOperators(tokens []Token) []Token {
	for i := range tokens {
		if !tokens[i].Is(KindAdd) && !tokens[i].Is(KindSub) {
			continue
		}
		if i > 0 && !prefixPosition(tokens[i-1]) {
			continue
		}
		if tokens[i].Is(KindAdd) {
			tokens[i] = MakeToken(KindUnaryPlus)
		} else {
			tokens[i] = MakeToken(KindUnaryMinus)
		}
	}
	return tokens
}

func prefixPosition(prev Token) bool {
	if prev.Is(KindLBracket) {
		return true
	}
	return prev.IsOperator() && !prev.IsPostfix()
}
