package calc

// FixBrackets inserts the opening bracket a function name is missing and
// closes every bracket left open, so that "sin sin x" reads as
// "sin(sin(x))" and "sin(x" as "sin(x)". A sign right after a function name
// becomes a prefix sign of its argument. Surplus closing brackets are kept;
// ToPostfix rejects them.
//
// Automatic brackets are closed in front of the first token that is neither
// a function nor an opening bracket and does not follow a prefix sign, once
// all user brackets opened in the meantime are closed again.
func FixBrackets(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens)+4)
	auto := 0
	depth := 0
	open := 0
	for i, tok := range tokens {
		switch tok.Kind {
		case KindLBracket:
			open++
		case KindRBracket:
			open--
		}
		if auto > 0 {
			switch tok.Kind {
			case KindLBracket:
				depth++
			case KindRBracket:
				depth--
			}
		}
		if i > 0 && tokens[i-1].IsFunc() && !tok.Is(KindLBracket) {
			switch tok.Kind {
			case KindAdd:
				tok = MakeToken(KindUnaryPlus)
			case KindSub:
				tok = MakeToken(KindUnaryMinus)
			}
			out = append(out, MakeToken(KindLBracket), tok)
			auto++
			continue
		}
		if auto > 0 && depth == 0 && !tok.IsFunc() && !tok.Is(KindLBracket) && !out[len(out)-1].IsPrefix() {
			out = closeBrackets(out, auto)
			auto = 0
		}
		out = append(out, tok)
	}
	if open > 0 {
		auto += open
	}
	return closeBrackets(out, auto)
}

func closeBrackets(out []Token, n int) []Token {
	for ; n > 0; n-- {
		out = append(out, MakeToken(KindRBracket))
	}
	return out
}
