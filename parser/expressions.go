package parser

import (
	"strconv"

	"github.com/Eusha122/Elang/ast"
	"github.com/Eusha122/Elang/errs"
	"github.com/Eusha122/Elang/lexer"
)

// LOWEST is the entry precedence for parseExpression. Eusha's grammar uses
// a fixed precedence ladder (spec.md section 4.2) rather than a token-type
// keyed Pratt table, so precedence values aren't threaded through every
// call — each rung has its own function and calls the next rung down.
const LOWEST = 0

// parseExpression is the single entry point into the precedence ladder:
// or -> and -> not -> comparison -> additive -> multiplicative -> power ->
// unary -> postfix -> primary.
func (p *Parser) parseExpression(precedence int) ast.Node {
	return p.parseOr()
}

func (p *Parser) parseOr() ast.Node {
	left := p.parseAnd()
	for p.isKeyword("or") {
		line, col := p.cur().Line, p.cur().Column
		p.advance()
		right := p.parseAnd()
		left = &ast.BinaryOp{Base: ast.NewBase(line, col), Left: left, Op: "or", Right: right}
	}
	return left
}

func (p *Parser) parseAnd() ast.Node {
	left := p.parseNot()
	for p.isKeyword("and") {
		line, col := p.cur().Line, p.cur().Column
		p.advance()
		right := p.parseNot()
		left = &ast.BinaryOp{Base: ast.NewBase(line, col), Left: left, Op: "and", Right: right}
	}
	return left
}

// parseNot handles prefix `not`, which binds tighter than and/or but looser
// than comparisons, per spec.md's precedence ladder.
func (p *Parser) parseNot() ast.Node {
	if p.isKeyword("not") {
		line, col := p.cur().Line, p.cur().Column
		p.advance()
		operand := p.parseNot()
		return &ast.UnaryOp{Base: ast.NewBase(line, col), Op: "not", Operand: operand}
	}
	return p.parseComparison()
}

// parseComparison is deliberately non-chaining: `a < b < c` parses as
// `(a < b) < c`, i.e. each comparison operator is an ordinary binary node
// grouped left to right, the same way parseAdditive loops — chained
// comparisons are semantically ill-specified but still must parse.
func (p *Parser) parseComparison() ast.Node {
	left := p.parseAdditive()
	for {
		switch p.cur().Kind {
		case lexer.EQ, lexer.NEQ, lexer.LT, lexer.GT, lexer.LE, lexer.GE:
			line, col := p.cur().Line, p.cur().Column
			op := string(p.cur().Kind)
			p.advance()
			right := p.parseAdditive()
			left = &ast.BinaryOp{Base: ast.NewBase(line, col), Left: left, Op: op, Right: right}
		default:
			return left
		}
	}
}

func (p *Parser) parseAdditive() ast.Node {
	left := p.parseMultiplicative()
	for p.cur().Kind == lexer.PLUS || p.cur().Kind == lexer.MINUS {
		line, col := p.cur().Line, p.cur().Column
		op := string(p.cur().Kind)
		p.advance()
		right := p.parseMultiplicative()
		left = &ast.BinaryOp{Base: ast.NewBase(line, col), Left: left, Op: op, Right: right}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Node {
	left := p.parsePower()
	for p.cur().Kind == lexer.STAR || p.cur().Kind == lexer.SLASH || p.cur().Kind == lexer.PCT {
		line, col := p.cur().Line, p.cur().Column
		op := string(p.cur().Kind)
		p.advance()
		right := p.parsePower()
		left = &ast.BinaryOp{Base: ast.NewBase(line, col), Left: left, Op: op, Right: right}
	}
	return left
}

// parsePower is right-associative: `2 ** 3 ** 2` parses as `2 ** (3 ** 2)`,
// per spec.md section 4.2, so the right operand recurses back into
// parsePower rather than descending to parseUnary.
func (p *Parser) parsePower() ast.Node {
	left := p.parseUnary()
	if p.cur().Kind == lexer.POW {
		line, col := p.cur().Line, p.cur().Column
		p.advance()
		right := p.parsePower()
		return &ast.BinaryOp{Base: ast.NewBase(line, col), Left: left, Op: "**", Right: right}
	}
	return left
}

func (p *Parser) parseUnary() ast.Node {
	if p.cur().Kind == lexer.MINUS {
		line, col := p.cur().Line, p.cur().Column
		p.advance()
		operand := p.parseUnary()
		return &ast.UnaryOp{Base: ast.NewBase(line, col), Op: "-", Operand: operand}
	}
	return p.parsePostfix()
}

// parsePostfix handles the highest-precedence suffix chain: `.method(args)`
// and `[index]`, applied left to right, per spec.md section 4.2.
func (p *Parser) parsePostfix() ast.Node {
	expr := p.parsePrimary()
	for {
		switch p.cur().Kind {
		case lexer.DOT:
			line, col := p.cur().Line, p.cur().Column
			p.advance()
			if !p.expect(lexer.IDENT, "expected a method name after '.'") {
				return expr
			}
			method := p.cur().Literal
			p.advance()
			var args []ast.Node
			if p.cur().Kind == lexer.LPAREN {
				args = p.parseArgList()
			}
			expr = &ast.MethodCall{Base: ast.NewBase(line, col), Receiver: expr, Method: method, Args: args}
		case lexer.LBRACKET:
			line, col := p.cur().Line, p.cur().Column
			p.advance()
			index := p.parseExpression(LOWEST)
			p.expectAdvance(lexer.RBRACKET, errs.HintForCloser("]"))
			expr = &ast.IndexGet{Base: ast.NewBase(line, col), Target: expr, Index: index}
		default:
			return expr
		}
	}
}

// parseArgList parses a parenthesized, comma-separated argument list,
// consuming the enclosing parens.
func (p *Parser) parseArgList() []ast.Node {
	p.advance() // '('
	var args []ast.Node
	for p.cur().Kind != lexer.RPAREN {
		if p.cur().Kind == lexer.EOF {
			p.errorHere(errs.HintForCloser(")"), "unterminated argument list")
			return args
		}
		args = append(args, p.parseExpression(LOWEST))
		if p.cur().Kind == lexer.COMMA {
			p.advance()
		}
	}
	p.advance() // ')'
	return args
}

func (p *Parser) parsePrimary() ast.Node {
	t := p.cur()
	switch t.Kind {
	case lexer.INT:
		p.advance()
		v, err := strconv.ParseInt(t.Literal, 10, 64)
		if err != nil {
			p.Errors = append(p.Errors, errs.NewParseError(t.Line, t.Column, "", "invalid integer literal %q", t.Literal))
		}
		return &ast.IntLiteral{Base: ast.NewBase(t.Line, t.Column), Value: v}
	case lexer.FLOAT:
		p.advance()
		v, err := strconv.ParseFloat(t.Literal, 64)
		if err != nil {
			p.Errors = append(p.Errors, errs.NewParseError(t.Line, t.Column, "", "invalid float literal %q", t.Literal))
		}
		return &ast.FloatLiteral{Base: ast.NewBase(t.Line, t.Column), Value: v}
	case lexer.STRING:
		p.advance()
		return &ast.StringLiteral{Base: ast.NewBase(t.Line, t.Column), Value: t.Literal}
	case lexer.INTERP_STRING:
		p.advance()
		return p.buildInterpolatedString(t)
	case lexer.KEYWORD:
		switch t.Literal {
		case "true":
			p.advance()
			return &ast.BoolLiteral{Base: ast.NewBase(t.Line, t.Column), Value: true}
		case "false":
			p.advance()
			return &ast.BoolLiteral{Base: ast.NewBase(t.Line, t.Column), Value: false}
		case "none":
			p.advance()
			return &ast.NullLiteral{Base: ast.NewBase(t.Line, t.Column)}
		case "take":
			return p.parseTake()
		}
		p.errorHere("", "unexpected keyword %q in expression position", t.Literal)
		p.advance()
		return nil
	case lexer.IDENT:
		return p.parseIdentifierPrimary()
	case lexer.LPAREN:
		return p.parseParenOrLambda()
	case lexer.LBRACKET:
		return p.parseListLiteral()
	case lexer.LBRACE:
		return p.parseObjectLiteral()
	default:
		p.errorHere("", "unexpected token %s (%q) in expression", t.Kind, t.Literal)
		p.advance()
		return nil
	}
}

func (p *Parser) parseTake() ast.Node {
	line, col := p.cur().Line, p.cur().Column
	p.advance() // 'take'
	var prompt ast.Node
	if p.cur().Kind == lexer.LPAREN {
		p.advance()
		if p.cur().Kind != lexer.RPAREN {
			prompt = p.parseExpression(LOWEST)
		}
		p.expectAdvance(lexer.RPAREN, errs.HintForCloser(")"))
	}
	return &ast.Take{Base: ast.NewBase(line, col), Prompt: prompt}
}

// parseIdentifierPrimary resolves a leading identifier in expression
// position to a function call, a single-parameter lambda (`name => expr`),
// or a plain variable reference.
func (p *Parser) parseIdentifierPrimary() ast.Node {
	t := p.cur()
	name := t.Literal

	if p.peek().Kind == lexer.FATARROW {
		p.advance() // ident
		p.advance() // '=>'
		body := p.parseExpression(LOWEST)
		return &ast.Lambda{Base: ast.NewBase(t.Line, t.Column), Params: []string{name}, Body: body}
	}

	if p.peek().Kind == lexer.LPAREN {
		p.advance() // ident
		args := p.parseArgList()
		return &ast.FunctionCall{Base: ast.NewBase(t.Line, t.Column), Name: name, Args: args}
	}

	p.advance()
	return &ast.Identifier{Base: ast.NewBase(t.Line, t.Column), Name: name}
}

// parseParenOrLambda resolves the ambiguity between a multi-parameter
// lambda `(a, b) => expr` and a parenthesized grouped expression `(expr)`.
// It speculatively tries to parse a parameter list and a following `=>`;
// if that fails, it rewinds and falls back to a grouped expression, per
// spec.md section 4.2 "Speculative parsing".
func (p *Parser) parseParenOrLambda() ast.Node {
	line, col := p.cur().Line, p.cur().Column
	m := p.mark()

	if params, ok := p.tryParseLambdaParams(); ok {
		body := p.parseExpression(LOWEST)
		return &ast.Lambda{Base: ast.NewBase(line, col), Params: params, Body: body}
	}
	p.reset(m)

	p.advance() // '('
	expr := p.parseExpression(LOWEST)
	p.expectAdvance(lexer.RPAREN, errs.HintForCloser(")"))
	return expr
}

// tryParseLambdaParams attempts to consume `(ident, ident, ...) =>` from
// the current position. On any mismatch it returns false without
// committing the caller to the rewind — the caller still must call
// reset(mark) itself since this helper may have advanced the cursor.
func (p *Parser) tryParseLambdaParams() ([]string, bool) {
	if p.cur().Kind != lexer.LPAREN {
		return nil, false
	}
	p.advance() // '('

	var params []string
	for p.cur().Kind != lexer.RPAREN {
		if p.cur().Kind != lexer.IDENT {
			return nil, false
		}
		params = append(params, p.cur().Literal)
		p.advance()
		if p.cur().Kind == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}
	if p.cur().Kind != lexer.RPAREN {
		return nil, false
	}
	p.advance() // ')'
	if p.cur().Kind != lexer.FATARROW {
		return nil, false
	}
	p.advance() // '=>'
	return params, true
}

func (p *Parser) parseListLiteral() ast.Node {
	line, col := p.cur().Line, p.cur().Column
	p.advance() // '['
	var elems []ast.Node
	for p.cur().Kind != lexer.RBRACKET {
		if p.cur().Kind == lexer.EOF {
			p.errorHere(errs.HintForCloser("]"), "unterminated list literal")
			break
		}
		elems = append(elems, p.parseExpression(LOWEST))
		if p.cur().Kind == lexer.COMMA {
			p.advance()
		}
	}
	p.expectAdvance(lexer.RBRACKET, errs.HintForCloser("]"))
	return &ast.List{Base: ast.NewBase(line, col), Elements: elems}
}

// parseObjectLiteral parses `{ key: value, ... }`. Keys may be identifiers
// (treated as string keys) or any primary expression.
func (p *Parser) parseObjectLiteral() ast.Node {
	line, col := p.cur().Line, p.cur().Column
	p.advance() // '{'
	p.skipNewlines()
	var entries []ast.ObjectEntry
	for p.cur().Kind != lexer.RBRACE {
		if p.cur().Kind == lexer.EOF {
			p.errorHere(errs.HintForCloser("}"), "unterminated map literal")
			break
		}
		var key ast.Node
		if p.cur().Kind == lexer.IDENT && p.peek().Kind == lexer.COLON {
			kt := p.cur()
			key = &ast.StringLiteral{Base: ast.NewBase(kt.Line, kt.Column), Value: kt.Literal}
			p.advance()
		} else {
			key = p.parseExpression(LOWEST)
		}
		p.expectAdvance(lexer.COLON, "expected ':' between map key and value")
		value := p.parseExpression(LOWEST)
		entries = append(entries, ast.ObjectEntry{Key: key, Value: value})
		p.skipNewlines()
		if p.cur().Kind == lexer.COMMA {
			p.advance()
			p.skipNewlines()
		}
	}
	p.expectAdvance(lexer.RBRACE, errs.HintForCloser("}"))
	return &ast.ObjectLiteral{Base: ast.NewBase(line, col), Entries: entries}
}

// buildInterpolatedString re-parses each `{expr}` segment captured by the
// lexer as a standalone expression. Parse and syntax errors found in a
// segment are reported at the string literal's line and column in the
// outer program rather than at a position inside the segment text.
func (p *Parser) buildInterpolatedString(t lexer.Token) ast.Node {
	node := &ast.InterpolatedString{Base: ast.NewBase(t.Line, t.Column)}
	for _, seg := range t.Segments {
		if !seg.IsExpr {
			node.Segments = append(node.Segments, ast.StringSegment{Literal: seg.Text})
			continue
		}
		sub := NewParser(seg.Text)
		expr := sub.parseExpression(LOWEST)
		if sub.HasErrors() {
			for _, e := range sub.GetErrors() {
				switch pe := e.(type) {
				case *errs.ParseError:
					pe.Line, pe.Column = t.Line, t.Column
				case *errs.SyntaxError:
					pe.Line, pe.Column = t.Line, t.Column
				}
				p.Errors = append(p.Errors, e)
			}
		}
		node.Segments = append(node.Segments, ast.StringSegment{Expr: expr})
	}
	return node
}
