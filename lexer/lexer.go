package lexer

import (
	"strings"

	"github.com/Eusha122/Elang/errs"
)

// Lexer performs single-pass lexical analysis over Eusha source text. It
// maintains a cursor, a 1-based line counter, and a 1-based column counter,
// mirroring the scan-and-classify shape used throughout this pipeline.
type Lexer struct {
	Src       string
	Current   byte
	Position  int
	SrcLength int
	Line      int
	Column    int

	Errors []error // *errs.SyntaxError entries accumulated while scanning
}

func NewLexer(src string) *Lexer {
	lex := &Lexer{Src: src, SrcLength: len(src), Line: 1, Column: 1}
	if len(src) > 0 {
		lex.Current = src[0]
	}
	return lex
}

func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

func (lex *Lexer) Advance() {
	if lex.Current == '\n' {
		lex.Line++
		lex.Column = 1
	} else {
		lex.Column++
	}
	lex.Position++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

func (lex *Lexer) addError(line, col int, hint, format string, args ...interface{}) {
	lex.Errors = append(lex.Errors, errs.NewSyntaxError(line, col, hint, format, args...))
}

// skipInsignificant eats spaces, tabs, carriage returns, and `$$` comments.
// Newlines are NOT skipped here — they are significant tokens at statement
// level, per spec.md section 4.1.
func (lex *Lexer) skipInsignificant() {
	for {
		switch {
		case lex.Current == ' ' || lex.Current == '\t' || lex.Current == '\r':
			lex.Advance()
		case lex.Current == '$' && lex.Peek() == '$':
			for lex.Current != '\n' && lex.Current != 0 {
				lex.Advance()
			}
		case lex.Current == '/' && lex.Peek() == '*':
			lex.skipBlockComment()
		default:
			return
		}
	}
}

func (lex *Lexer) skipBlockComment() {
	lex.Advance()
	lex.Advance()
	for lex.Current != 0 {
		if lex.Current == '*' && lex.Peek() == '/' {
			lex.Advance()
			lex.Advance()
			return
		}
		lex.Advance()
	}
}

// NextToken scans and returns the next token, or an EOF token once the
// source is exhausted.
func (lex *Lexer) NextToken() Token {
	lex.skipInsignificant()

	line, col := lex.Line, lex.Column

	if lex.Current == '\n' {
		lex.Advance()
		return NewToken(NEWLINE, "\n", line, col)
	}

	switch lex.Current {
	case 0:
		return NewToken(EOF, "EOF", line, col)
	case '"':
		return lex.readString('"', line, col)
	case '\'':
		return lex.readString('\'', line, col)
	case '(':
		lex.Advance()
		return NewToken(LPAREN, "(", line, col)
	case ')':
		lex.Advance()
		return NewToken(RPAREN, ")", line, col)
	case '{':
		lex.Advance()
		return NewToken(LBRACE, "{", line, col)
	case '}':
		lex.Advance()
		return NewToken(RBRACE, "}", line, col)
	case '[':
		lex.Advance()
		return NewToken(LBRACKET, "[", line, col)
	case ']':
		lex.Advance()
		return NewToken(RBRACKET, "]", line, col)
	case ',':
		lex.Advance()
		return NewToken(COMMA, ",", line, col)
	case ':':
		lex.Advance()
		return NewToken(COLON, ":", line, col)
	case '+':
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return NewToken(PLUS_ASSIGN, "+=", line, col)
		}
		lex.Advance()
		return NewToken(PLUS, "+", line, col)
	case '-':
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return NewToken(MINUS_ASSIGN, "-=", line, col)
		}
		if lex.Peek() == '>' {
			lex.Advance()
			lex.Advance()
			return NewToken(ARROW, "->", line, col)
		}
		lex.Advance()
		return NewToken(MINUS, "-", line, col)
	case '*':
		if lex.Peek() == '*' {
			lex.Advance()
			lex.Advance()
			return NewToken(POW, "**", line, col)
		}
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return NewToken(STAR_ASSIGN, "*=", line, col)
		}
		lex.Advance()
		return NewToken(STAR, "*", line, col)
	case '/':
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return NewToken(SLASH_ASSIGN, "/=", line, col)
		}
		lex.Advance()
		return NewToken(SLASH, "/", line, col)
	case '%':
		lex.Advance()
		return NewToken(PCT, "%", line, col)
	case '=':
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return NewToken(EQ, "==", line, col)
		}
		if lex.Peek() == '>' {
			lex.Advance()
			lex.Advance()
			return NewToken(FATARROW, "=>", line, col)
		}
		lex.Advance()
		return NewToken(ASSIGN, "=", line, col)
	case '!':
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return NewToken(NEQ, "!=", line, col)
		}
		lex.addError(line, col, "", "unexpected character '!'")
		lex.Advance()
		return NewToken(INVALID, "!", line, col)
	case '<':
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return NewToken(LE, "<=", line, col)
		}
		lex.Advance()
		return NewToken(LT, "<", line, col)
	case '>':
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return NewToken(GE, ">=", line, col)
		}
		lex.Advance()
		return NewToken(GT, ">", line, col)
	case '&':
		if lex.Peek() == '&' {
			lex.Advance()
			lex.Advance()
			return NewToken(AMPAMP, "&&", line, col)
		}
		lex.addError(line, col, "", "unexpected character '&'")
		lex.Advance()
		return NewToken(INVALID, "&", line, col)
	case '.':
		if lex.Peek() == '.' {
			lex.Advance()
			lex.Advance()
			return NewToken(RANGE, "..", line, col)
		}
		lex.Advance()
		return NewToken(DOT, ".", line, col)
	}

	if isDigit(lex.Current) {
		return lex.readNumber(line, col)
	}
	if isAlpha(lex.Current) || lex.Current == '_' {
		return lex.readIdentifier(line, col)
	}

	hint := ""
	if isSpecial(lex.Current) {
		hint = "this character has no meaning in Eusha"
	}
	lex.addError(line, col, hint, "unrecognized character %q", string(lex.Current))
	lex.Advance()
	return NewToken(INVALID, "", line, col)
}

func (lex *Lexer) readNumber(line, col int) Token {
	start := lex.Position
	for isDigit(lex.Current) {
		lex.Advance()
	}
	isFloat := false
	if lex.Current == '.' && isDigit(lex.Peek()) {
		isFloat = true
		lex.Advance()
		for isDigit(lex.Current) {
			lex.Advance()
		}
	}
	literal := lex.Src[start:lex.Position]
	if isFloat {
		return NewToken(FLOAT, literal, line, col)
	}
	return NewToken(INT, literal, line, col)
}

func (lex *Lexer) readIdentifier(line, col int) Token {
	start := lex.Position
	for isAlpha(lex.Current) || isDigit(lex.Current) || lex.Current == '_' {
		lex.Advance()
	}
	literal := lex.Src[start:lex.Position]
	return NewToken(lookupIdent(literal), literal, line, col)
}

// readString scans a quoted string literal starting at the current quote
// character. Inside a double-quoted string, `{` opens an interpolation
// whose contents are captured with balanced-brace counting; single-quoted
// strings never interpolate.
func (lex *Lexer) readString(quote byte, line, col int) Token {
	allowInterp := quote == '"'
	lex.Advance() // consume opening quote

	var literal strings.Builder
	var segments []StringSegment
	hasInterp := false

	flushLiteral := func() {
		if literal.Len() > 0 {
			segments = append(segments, StringSegment{IsExpr: false, Text: literal.String()})
			literal.Reset()
		}
	}

	for {
		if lex.Current == 0 {
			lex.addError(line, col, "did you forget a closing quote?", "unterminated string literal")
			break
		}
		if lex.Current == quote {
			lex.Advance()
			break
		}
		if lex.Current == '\\' {
			lex.Advance()
			literal.WriteByte(unescape(lex.Current))
			lex.Advance()
			continue
		}
		if allowInterp && lex.Current == '{' {
			hasInterp = true
			flushLiteral()
			lex.Advance() // consume '{'
			depth := 1
			var exprText strings.Builder
			for depth > 0 {
				if lex.Current == 0 {
					lex.addError(line, col, "did you forget a closing '}'?", "unterminated interpolation")
					break
				}
				if lex.Current == '{' {
					depth++
				} else if lex.Current == '}' {
					depth--
					if depth == 0 {
						lex.Advance()
						break
					}
				}
				exprText.WriteByte(lex.Current)
				lex.Advance()
			}
			segments = append(segments, StringSegment{IsExpr: true, Text: exprText.String()})
			continue
		}
		literal.WriteByte(lex.Current)
		lex.Advance()
	}
	flushLiteral()

	if hasInterp {
		return Token{Kind: INTERP_STRING, Segments: segments, Line: line, Column: col}
	}
	plain := ""
	if len(segments) > 0 {
		plain = segments[0].Text
	}
	return NewToken(STRING, plain, line, col)
}

// unescape resolves the character following a backslash. Unknown escapes
// yield the literal character, per spec.md section 4.1.
func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '\\':
		return '\\'
	case '"':
		return '"'
	case '\'':
		return '\''
	case '{':
		return '{'
	default:
		return c
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isSpecial(c byte) bool {
	return c == '~' || c == '^' || c == '|' || c == '#' || c == '@' || c == '?' || c == ';'
}

// ConsumeTokens tokenizes the whole source and returns every token up to
// but excluding EOF. Useful for tests and debugging.
func (lex *Lexer) ConsumeTokens() []Token {
	var tokens []Token
	for {
		tok := lex.NextToken()
		if tok.Kind == EOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
