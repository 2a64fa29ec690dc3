package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCaseConsumeTokens represents a single ConsumeTokens test case: source
// text paired with the token stream it must produce.
type TestCaseConsumeTokens struct {
	Input          string
	ExpectedTokens []Token
}

func TestLexer_ConsumeTokens(t *testing.T) {
	tests := []TestCaseConsumeTokens{
		{
			Input: ` 123 + 2   31 - 12 `,
			ExpectedTokens: []Token{
				NewToken(INT, "123", 0, 0),
				NewToken(PLUS, "+", 0, 0),
				NewToken(INT, "2", 0, 0),
				NewToken(INT, "31", 0, 0),
				NewToken(MINUS, "-", 0, 0),
				NewToken(INT, "12", 0, 0),
			},
		},
		{
			Input: ` { } + []  abc - a12 `,
			ExpectedTokens: []Token{
				NewToken(LBRACE, "{", 0, 0),
				NewToken(RBRACE, "}", 0, 0),
				NewToken(PLUS, "+", 0, 0),
				NewToken(LBRACKET, "[", 0, 0),
				NewToken(RBRACKET, "]", 0, 0),
				NewToken(IDENT, "abc", 0, 0),
				NewToken(MINUS, "-", 0, 0),
				NewToken(IDENT, "a12", 0, 0),
			},
		},
		{
			Input: ` <=  + 2   {31} - 12 __a19bcd_aa90`,
			ExpectedTokens: []Token{
				NewToken(LE, "<=", 0, 0),
				NewToken(PLUS, "+", 0, 0),
				NewToken(INT, "2", 0, 0),
				NewToken(LBRACE, "{", 0, 0),
				NewToken(INT, "31", 0, 0),
				NewToken(RBRACE, "}", 0, 0),
				NewToken(MINUS, "-", 0, 0),
				NewToken(INT, "12", 0, 0),
				NewToken(IDENT, "__a19bcd_aa90", 0, 0),
			},
		},
		{
			Input: `2 ** 3 .. 5 -> x => y`,
			ExpectedTokens: []Token{
				NewToken(INT, "2", 0, 0),
				NewToken(POW, "**", 0, 0),
				NewToken(INT, "3", 0, 0),
				NewToken(RANGE, "..", 0, 0),
				NewToken(INT, "5", 0, 0),
				NewToken(ARROW, "->", 0, 0),
				NewToken(IDENT, "x", 0, 0),
				NewToken(FATARROW, "=>", 0, 0),
				NewToken(IDENT, "y", 0, 0),
			},
		},
		{
			Input: `a += 1 b -= 2 c *= 3 d /= 4`,
			ExpectedTokens: []Token{
				NewToken(IDENT, "a", 0, 0),
				NewToken(PLUS_ASSIGN, "+=", 0, 0),
				NewToken(INT, "1", 0, 0),
				NewToken(IDENT, "b", 0, 0),
				NewToken(MINUS_ASSIGN, "-=", 0, 0),
				NewToken(INT, "2", 0, 0),
				NewToken(IDENT, "c", 0, 0),
				NewToken(STAR_ASSIGN, "*=", 0, 0),
				NewToken(INT, "3", 0, 0),
				NewToken(IDENT, "d", 0, 0),
				NewToken(SLASH_ASSIGN, "/=", 0, 0),
				NewToken(INT, "4", 0, 0),
			},
		},
		{
			Input: `fn return if else while for in step reverse say take and or not true false none use break continue`,
			ExpectedTokens: []Token{
				NewToken(KEYWORD, "fn", 0, 0),
				NewToken(KEYWORD, "return", 0, 0),
				NewToken(KEYWORD, "if", 0, 0),
				NewToken(KEYWORD, "else", 0, 0),
				NewToken(KEYWORD, "while", 0, 0),
				NewToken(KEYWORD, "for", 0, 0),
				NewToken(KEYWORD, "in", 0, 0),
				NewToken(KEYWORD, "step", 0, 0),
				NewToken(KEYWORD, "reverse", 0, 0),
				NewToken(KEYWORD, "say", 0, 0),
				NewToken(KEYWORD, "take", 0, 0),
				NewToken(KEYWORD, "and", 0, 0),
				NewToken(KEYWORD, "or", 0, 0),
				NewToken(KEYWORD, "not", 0, 0),
				NewToken(KEYWORD, "true", 0, 0),
				NewToken(KEYWORD, "false", 0, 0),
				NewToken(KEYWORD, "none", 0, 0),
				NewToken(KEYWORD, "use", 0, 0),
				NewToken(KEYWORD, "break", 0, 0),
				NewToken(KEYWORD, "continue", 0, 0),
			},
		},
		{
			Input: `3.14 0.5 10 "hello"`,
			ExpectedTokens: []Token{
				NewToken(FLOAT, "3.14", 0, 0),
				NewToken(FLOAT, "0.5", 0, 0),
				NewToken(INT, "10", 0, 0),
				NewToken(STRING, "hello", 0, 0),
			},
		},
	}

	for _, test := range tests {
		lex := NewLexer(test.Input)
		gotTokens := lex.ConsumeTokens()

		assert.Equal(t, len(test.ExpectedTokens), len(gotTokens), "input: %q", test.Input)
		for i, token := range test.ExpectedTokens {
			if i >= len(gotTokens) {
				break
			}
			assert.Equal(t, token.Kind, gotTokens[i].Kind, "input: %q token %d", test.Input, i)
			assert.Equal(t, token.Literal, gotTokens[i].Literal, "input: %q token %d", test.Input, i)
		}
		assert.Empty(t, lex.Errors, "input: %q", test.Input)
	}
}

func TestLexer_StringEscapes(t *testing.T) {
	tests := []TestCaseConsumeTokens{
		{
			Input: `"hello\nworld"`,
			ExpectedTokens: []Token{
				NewToken(STRING, "hello\nworld", 0, 0),
			},
		},
		{
			Input: `"tab\there"`,
			ExpectedTokens: []Token{
				NewToken(STRING, "tab\there", 0, 0),
			},
		},
		{
			Input: `"escaped\\backslash"`,
			ExpectedTokens: []Token{
				NewToken(STRING, "escaped\\backslash", 0, 0),
			},
		},
		{
			Input: `"escaped\"quote"`,
			ExpectedTokens: []Token{
				NewToken(STRING, "escaped\"quote", 0, 0),
			},
		},
		{
			Input: `'no {interp} here'`,
			ExpectedTokens: []Token{
				NewToken(STRING, "no {interp} here", 0, 0),
			},
		},
	}
	for _, test := range tests {
		lex := NewLexer(test.Input)
		gotTokens := lex.ConsumeTokens()
		assert.Equal(t, len(test.ExpectedTokens), len(gotTokens), "input: %q", test.Input)
		for i, token := range test.ExpectedTokens {
			if i >= len(gotTokens) {
				break
			}
			assert.Equal(t, token.Kind, gotTokens[i].Kind)
			assert.Equal(t, token.Literal, gotTokens[i].Literal)
		}
	}
}

// TestLexer_Interpolation checks that a double-quoted string with a `{...}`
// segment yields a single INTERP_STRING token carrying both a literal and an
// expression segment, rather than being split across multiple tokens.
func TestLexer_Interpolation(t *testing.T) {
	lex := NewLexer(`"total: {a + b}"`)
	tokens := lex.ConsumeTokens()

	assert.Len(t, tokens, 1)
	tok := tokens[0]
	assert.Equal(t, INTERP_STRING, tok.Kind)
	assert.Empty(t, lex.Errors)
	if assert.Len(t, tok.Segments, 2) {
		assert.False(t, tok.Segments[0].IsExpr)
		assert.Equal(t, "total: ", tok.Segments[0].Text)
		assert.True(t, tok.Segments[1].IsExpr)
		assert.Equal(t, "a + b", tok.Segments[1].Text)
	}
}

func TestLexer_BlockAndLineComments(t *testing.T) {
	lex := NewLexer("1 $$ trailing comment\n/* block\ncomment */ 2")
	tokens := lex.ConsumeTokens()

	assert.Len(t, tokens, 3)
	assert.Equal(t, INT, tokens[0].Kind)
	assert.Equal(t, "1", tokens[0].Literal)
	assert.Equal(t, NEWLINE, tokens[1].Kind)
	assert.Equal(t, INT, tokens[2].Kind)
	assert.Equal(t, "2", tokens[2].Literal)
}

func TestLexer_UnrecognizedCharacterReportsHint(t *testing.T) {
	lex := NewLexer(`1 ~ 2`)
	lex.ConsumeTokens()

	if assert.Len(t, lex.Errors, 1) {
		assert.Contains(t, lex.Errors[0].Error(), "unrecognized character")
		assert.Contains(t, lex.Errors[0].Error(), "this character has no meaning in Eusha")
	}
}

func TestLexer_UnterminatedStringReportsError(t *testing.T) {
	lex := NewLexer(`"never closed`)
	lex.ConsumeTokens()

	assert.NotEmpty(t, lex.Errors)
}
