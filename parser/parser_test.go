package parser

import (
	"strings"
	"testing"

	"github.com/skeemlang/skeem/skeem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		source string
		tokens []string
	}{
		{"", nil},
		{"   \n  ", nil},
		{"x", []string{"x"}},
		{"(+ 1 2)", []string{"(", "+", "1", "2", ")"}},
		{"(+ 3 7 2)", []string{"(", "+", "3", "7", "2", ")"}},
		{"(define (f x) (+ x 1))", []string{
			"(", "define", "(", "f", "x", ")", "(", "+", "x", "1", ")", ")",
		}},
		// comments produce no tokens
		{"; a comment", nil},
		{"; a comment\n(+ 1 2)", []string{"(", "+", "1", "2", ")"}},
		{"(+ 1 ; trailing\n2)", []string{"(", "+", "1", "2", ")"}},
		// a comment terminates an in-progress atom
		{"abc;rest of line\ndef", []string{"abc", "def"}},
		// parens split atoms without whitespace
		{"(f(g x))", []string{"(", "f", "(", "g", "x", ")", ")"}},
		// unmatched parens still tokenize; the parser rejects them
		{"((", []string{"(", "("}},
	}
	for _, test := range tests {
		assert.Equal(t, test.tokens, Tokenize(test.source), "source: %q", test.source)
	}
}

func TestAtom(t *testing.T) {
	v := Atom("8")
	assert.Equal(t, skeem.VInt, v.Type)
	assert.Equal(t, 8, v.Int)

	v = Atom("-5")
	assert.Equal(t, skeem.VInt, v.Type)
	assert.Equal(t, -5, v.Int)

	v = Atom("-5.32")
	assert.Equal(t, skeem.VFloat, v.Type)
	assert.Equal(t, -5.32, v.Float)

	v = Atom("1.2.3.4")
	assert.Equal(t, skeem.VSymbol, v.Type)
	assert.Equal(t, "1.2.3.4", v.Str)

	v = Atom("x")
	assert.Equal(t, skeem.VSymbol, v.Type)
	assert.Equal(t, "x", v.Str)

	v = Atom("+")
	assert.Equal(t, skeem.VSymbol, v.Type)
	assert.Equal(t, "+", v.Str)
}

func TestParse(t *testing.T) {
	tests := []struct {
		source string
		expr   string
	}{
		{"x", "x"},
		{"42", "42"},
		{"()", "()"},
		{"(+ 3 7 2)", "(+ 3 7 2)"},
		{"(define (f x) (+ x 1))", "(define (f x) (+ x 1))"},
		{"(f (g (h 1)))", "(f (g (h 1)))"},
	}
	for _, test := range tests {
		expr, err := Parse(Tokenize(test.source))
		require.NoError(t, err, "source: %q", test.source)
		assert.Equal(t, test.expr, expr.String(), "source: %q", test.source)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",            // empty input
		"; comments",  // no tokens remain
		"(",           // unmatched open
		"(+ 1 2",      // unmatched open
		")",           // unmatched close
		"(+ 1 2) 3",   // trailing atom
		"(+ 1 2) (",   // trailing tokens
		"(f 1) (g 2)", // one expression per parse call
	}
	for _, source := range tests {
		_, err := Parse(Tokenize(source))
		require.Error(t, err, "source: %q", source)
		assert.True(t, skeem.IsSyntaxError(err), "source: %q: %v", source, err)
	}
}

func TestParseDepth(t *testing.T) {
	tokens := make([]string, 0, 25000)
	for i := 0; i < 25000; i++ {
		tokens = append(tokens, "(")
	}
	_, err := Parse(tokens)
	require.Error(t, err)
	assert.True(t, skeem.IsSyntaxError(err))
}

func TestParseProgram(t *testing.T) {
	exprs, err := ParseProgram(Tokenize("(define x 5) (+ x 1)"))
	require.NoError(t, err)
	require.Len(t, exprs, 2)
	assert.Equal(t, "(define x 5)", exprs[0].String())
	assert.Equal(t, "(+ x 1)", exprs[1].String())

	exprs, err = ParseProgram(nil)
	require.NoError(t, err)
	assert.Len(t, exprs, 0)

	_, err = ParseProgram(Tokenize("(define x 5) ("))
	require.Error(t, err)
	assert.True(t, skeem.IsSyntaxError(err))
}

func TestTokenizeLongAtom(t *testing.T) {
	atom := strings.Repeat("a", 4096)
	assert.Equal(t, []string{atom}, Tokenize(atom))
}
