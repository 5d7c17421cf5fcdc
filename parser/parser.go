// Package parser converts scheme source text into expression trees.
package parser

import (
	"strconv"
	"strings"

	"github.com/skeemlang/skeem/skeem"
)

// maxDepth bounds parser recursion over nested parentheses.
const maxDepth = 20000

// Tokenize splits source into parenthesis and atom tokens.  A ';' starts a
// comment running up to the next newline; comment text produces no tokens.
// Tokenize never fails -- malformed structure is deferred to Parse.
func Tokenize(source string) []string {
	var tokens []string
	var atom strings.Builder
	flush := func() {
		if atom.Len() > 0 {
			tokens = append(tokens, atom.String())
			atom.Reset()
		}
	}
	for i := 0; i < len(source); i++ {
		c := source[i]
		if c == ';' {
			for i < len(source) && source[i] != '\n' {
				i++
			}
			i--
			continue
		}
		switch c {
		case '(', ')':
			flush()
			tokens = append(tokens, string(c))
		case ' ', '\n':
			flush()
		default:
			atom.WriteByte(c)
		}
	}
	flush()
	return tokens
}

// Atom classifies a token as an integer, a float, or a symbol.  The integer
// parse is attempted before the float parse so "8" stays an integer; a token
// like "1.2.3.4" falls through both and remains a symbol.
func Atom(token string) *skeem.Val {
	if x, err := strconv.Atoi(token); err == nil {
		return skeem.Int(x)
	}
	if x, err := strconv.ParseFloat(token, 64); err == nil {
		return skeem.Float(x)
	}
	return skeem.Symbol(token)
}

// Parse consumes tokens as exactly one well-formed expression.  Unmatched
// parentheses, empty input, and tokens left over after one complete
// expression all produce a syntax error.
func Parse(tokens []string) (*skeem.Val, error) {
	if len(tokens) == 0 {
		return nil, skeem.SyntaxErrorf("empty input")
	}
	expr, next, err := parseExpression(tokens, 0, 0)
	if err != nil {
		return nil, err
	}
	if next != len(tokens) {
		return nil, skeem.SyntaxErrorf("unexpected token %q after expression", tokens[next])
	}
	return expr, nil
}

// ParseProgram consumes tokens as a sequence of zero or more expressions.
func ParseProgram(tokens []string) ([]*skeem.Val, error) {
	var exprs []*skeem.Val
	index := 0
	for index < len(tokens) {
		expr, next, err := parseExpression(tokens, index, 0)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
		index = next
	}
	return exprs, nil
}

func parseExpression(tokens []string, index, depth int) (*skeem.Val, int, error) {
	if depth > maxDepth {
		return nil, 0, skeem.SyntaxErrorf("expression nesting too deep")
	}
	switch tok := tokens[index]; tok {
	case "(":
		var cells []*skeem.Val
		index++
		for {
			if index >= len(tokens) {
				return nil, 0, skeem.SyntaxErrorf("unmatched (")
			}
			if tokens[index] == ")" {
				return skeem.Expr(cells), index + 1, nil
			}
			sub, next, err := parseExpression(tokens, index, depth+1)
			if err != nil {
				return nil, 0, err
			}
			cells = append(cells, sub)
			index = next
		}
	case ")":
		return nil, 0, skeem.SyntaxErrorf("unmatched )")
	default:
		return Atom(tok), index + 1, nil
	}
}
