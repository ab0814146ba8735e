package calc

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseTokens splits text into tokens. Input is case-insensitive and
// whitespace between tokens is ignored. Plus and minus are always returned
// as binary operators; see FixUnaryOperators.
func ParseTokens(text string) ([]Token, error) {
	s := strings.ToLower(text)
	var out []Token
	i := 0
	for {
		i = skipSpace(s, i)
		if i >= len(s) {
			return out, nil
		}
		if isDigit(s[i]) {
			start := i
			i = scanNumber(s, i)
			lit := s[start:i]
			v, err := strconv.ParseFloat(lit, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad number %q at %d", ErrInvalidSyntax, lit, start)
			}
			out = append(out, NumberToken(lit, v))
			continue
		}
		kw, ok := matchKeyword(s[i:])
		if !ok {
			return nil, fmt.Errorf("%w: unexpected %q at %d", ErrInvalidSyntax, rest(s[i:]), i)
		}
		out = append(out, MakeToken(keywords[kw]))
		i += len(kw)
	}
}

func matchKeyword(s string) (string, bool) {
	for _, kw := range keywordOrder {
		if strings.HasPrefix(s, kw) {
			return kw, true
		}
	}
	return "", false
}

func skipSpace(s string, i int) int {
	for i < len(s) && unicode.IsSpace(rune(s[i])) {
		i++
	}
	return i
}

// scanNumber returns the end of the floating literal starting at i:
// digits, an optional fraction and an exponent only when digits follow it.
func scanNumber(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && s[i] == 'e' {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func rest(s string) string {
	const max = 8
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
