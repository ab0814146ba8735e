package calc

import (
	"fmt"
	"strings"
)

// ToPostfix converts an infix token sequence (already passed through
// FixUnaryOperators and FixBrackets) into a space separated postfix string.
// Unary plus is dropped; unary minus is written as "~".
func ToPostfix(tokens []Token) (string, error) {
	out := make([]string, 0, len(tokens))
	var stack []Token

	for _, tok := range tokens {
		switch {
		case tok.Is(KindUnaryPlus):
			continue
		case tok.IsConst():
			out = append(out, tok.Text)
		case tok.Is(KindLBracket), tok.IsFunc():
			stack = append(stack, tok)
		case tok.Is(KindRBracket):
			for {
				if len(stack) == 0 {
					return "", fmt.Errorf("%w: unexpected ')'", ErrUnbalancedBrackets)
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Is(KindLBracket) {
					break
				}
				out = append(out, top.Text)
			}
			if n := len(stack); n > 0 && stack[n-1].IsFunc() {
				out = append(out, stack[n-1].Text)
				stack = stack[:n-1]
			}
		case tok.IsOperator():
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if !top.IsOperator() || !yields(tok, top) {
					break
				}
				out = append(out, top.Text)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		default:
			return "", fmt.Errorf("%w: %q", ErrUnknownToken, tok.Text)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Is(KindLBracket) {
			return "", fmt.Errorf("%w: missing ')'", ErrUnbalancedBrackets)
		}
		out = append(out, top.Text)
	}
	return strings.Join(out, " "), nil
}

// yields reports whether the incoming operator must let top be emitted
// first. A prefix sign has no left operand and never pops.
func yields(incoming, top Token) bool {
	if incoming.IsPrefix() {
		return false
	}
	if top.Precedence > incoming.Precedence {
		return true
	}
	return top.Precedence == incoming.Precedence && incoming.LeftAssoc
}
