// Package parser implements a recursive-descent, precedence-climbing
// parser for Eusha. It consumes the lexer's token stream and produces a
// single root ast.Block, grounded on the teacher's Parser (parser/parser.go)
// — same two-error-kind-tolerant, error-collecting shape — generalized from
// go-mix's Pratt function-table dispatch to Eusha's fixed precedence ladder
// (spec.md section 4.2), which is easier to express as explicit recursive
// descent than as a token-type-keyed table.
package parser

import (
	"github.com/Eusha122/Elang/ast"
	"github.com/Eusha122/Elang/errs"
	"github.com/Eusha122/Elang/lexer"
)

// Parser walks a fully-tokenized source buffer. Tokenizing eagerly (rather
// than pulling one token at a time from the lexer) is what lets the
// lambda-ambiguity rule and the optional-`else` lookahead snapshot and
// rewind the cursor. The index-assignment ambiguity does not rewind: it
// parses once and converts (see parseIdentifierLed).
type Parser struct {
	tokens []lexer.Token
	pos    int

	Errors []error
}

func NewParser(src string) *Parser {
	lex := lexer.NewLexer(src)
	toks := lex.ConsumeTokens()
	toks = append(toks, lexer.NewToken(lexer.EOF, "EOF", lex.Line, lex.Column))

	p := &Parser{tokens: toks}
	for _, e := range lex.Errors {
		p.Errors = append(p.Errors, e)
	}
	return p
}

func (p *Parser) HasErrors() bool    { return len(p.Errors) > 0 }
func (p *Parser) GetErrors() []error { return p.Errors }

func (p *Parser) cur() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peek() lexer.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) advance() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

// mark/reset implement the snapshot-and-rewind speculative-parsing pattern
// used by lambda-vs-grouped-expression disambiguation.
func (p *Parser) mark() int        { return p.pos }
func (p *Parser) reset(mark int)   { p.pos = mark }

func (p *Parser) skipNewlines() {
	for p.cur().Kind == lexer.NEWLINE {
		p.advance()
	}
}

func (p *Parser) isKeyword(lit string) bool {
	return p.cur().Kind == lexer.KEYWORD && p.cur().Literal == lit
}

func (p *Parser) errorHere(hint, format string, args ...interface{}) {
	t := p.cur()
	p.Errors = append(p.Errors, errs.NewParseError(t.Line, t.Column, hint, format, args...))
}

func (p *Parser) expect(kind lexer.TokenKind, hint string) bool {
	if p.cur().Kind != kind {
		p.errorHere(hint, "expected %s, got %s (%q)", kind, p.cur().Kind, p.cur().Literal)
		return false
	}
	return true
}

func (p *Parser) expectAdvance(kind lexer.TokenKind, hint string) bool {
	if !p.expect(kind, hint) {
		return false
	}
	p.advance()
	return true
}

// Parse consumes the whole token stream and returns the program's root
// block.
func (p *Parser) Parse() *ast.Block {
	line, col := p.cur().Line, p.cur().Column
	root := &ast.Block{}
	root.Line, root.Column = line, col

	for p.cur().Kind != lexer.EOF {
		p.skipNewlines()
		if p.cur().Kind == lexer.EOF {
			break
		}
		stmt := p.parseStatement()
		if stmt != nil {
			root.Statements = append(root.Statements, stmt)
		}
		p.skipNewlines()
	}
	return root
}

// parseBlock parses `{` statements separated by newlines `}`.
func (p *Parser) parseBlock() *ast.Block {
	line, col := p.cur().Line, p.cur().Column
	if !p.expectAdvance(lexer.LBRACE, errs.HintForCloser("}")) {
		return &ast.Block{}
	}
	block := &ast.Block{}
	block.Line, block.Column = line, col

	p.skipNewlines()
	for p.cur().Kind != lexer.RBRACE {
		if p.cur().Kind == lexer.EOF {
			p.errorHere(errs.HintForCloser("}"), "unexpected end of input inside block")
			return block
		}
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.skipNewlines()
	}
	p.advance() // consume '}'
	return block
}
