package parser

import (
	"github.com/Eusha122/Elang/ast"
	"github.com/Eusha122/Elang/errs"
	"github.com/Eusha122/Elang/lexer"
)

// parseStatement dispatches on the current token, per spec.md section 4.2
// "Statement dispatch".
func (p *Parser) parseStatement() ast.Node {
	switch {
	case p.isKeyword("fn"):
		return p.parseFunctionDef()
	case p.isKeyword("return"):
		return p.parseReturn()
	case p.isKeyword("if"):
		return p.parseIf()
	case p.isKeyword("while"):
		return p.parseWhile()
	case p.isKeyword("for"):
		return p.parseFor()
	case p.isKeyword("use"):
		return p.parseUse()
	case p.isKeyword("break"):
		n := &ast.Break{}
		n.Line, n.Column = p.cur().Line, p.cur().Column
		p.advance()
		return n
	case p.isKeyword("continue"):
		n := &ast.Continue{}
		n.Line, n.Column = p.cur().Line, p.cur().Column
		p.advance()
		return n
	case p.isKeyword("say"):
		return p.parseSay()
	case p.cur().Kind == lexer.AMPAMP:
		return p.parseBuiltinCommand()
	case p.cur().Kind == lexer.IDENT:
		return p.parseIdentifierLed()
	default:
		return p.parseExpression(LOWEST)
	}
}

func (p *Parser) parseFunctionDef() ast.Node {
	line, col := p.cur().Line, p.cur().Column
	p.advance() // 'fn'

	if !p.expect(lexer.IDENT, "expected a function name after 'fn'") {
		return nil
	}
	name := p.cur().Literal
	p.advance()

	if !p.expectAdvance(lexer.LPAREN, errs.HintForCloser(")")) {
		return nil
	}
	var params []string
	for p.cur().Kind != lexer.RPAREN {
		if p.cur().Kind == lexer.EOF {
			p.errorHere(errs.HintForCloser(")"), "unterminated parameter list")
			return nil
		}
		if p.expect(lexer.IDENT, "expected a parameter name") {
			params = append(params, p.cur().Literal)
			p.advance()
		}
		if p.cur().Kind == lexer.COMMA {
			p.advance()
		}
	}
	p.advance() // ')'

	returnType := ""
	if p.cur().Kind == lexer.ARROW {
		p.advance()
		if p.expect(lexer.IDENT, "expected a type name after '->'") {
			returnType = p.cur().Literal
			p.advance()
		}
	}

	body := p.parseBlock()
	return &ast.FunctionDef{
		Base:       ast.NewBase(line, col),
		Name:       name,
		Params:     params,
		Body:       body,
		ReturnType: returnType,
	}
}

func (p *Parser) parseReturn() ast.Node {
	line, col := p.cur().Line, p.cur().Column
	p.advance() // 'return'
	if p.cur().Kind == lexer.NEWLINE || p.cur().Kind == lexer.RBRACE || p.cur().Kind == lexer.EOF {
		return &ast.Return{Base: ast.NewBase(line, col)}
	}
	value := p.parseExpression(LOWEST)
	return &ast.Return{Base: ast.NewBase(line, col), Value: value}
}

func (p *Parser) parseIf() ast.Node {
	line, col := p.cur().Line, p.cur().Column
	p.advance() // 'if'
	cond := p.parseExpression(LOWEST)
	thenBlock := p.parseBlock()

	node := &ast.If{Base: ast.NewBase(line, col), Cond: cond, Then: thenBlock}

	p.skipNewlinesBeforeElse()
	if p.isKeyword("else") {
		p.advance()
		if p.isKeyword("if") {
			node.Else = p.parseIf()
		} else {
			node.Else = p.parseBlock()
		}
	}
	return node
}

// skipNewlinesBeforeElse allows `}` NEWLINE* `else` formatting without
// consuming newlines that belong to the next unrelated statement when no
// `else` follows — it rewinds if it doesn't find one.
func (p *Parser) skipNewlinesBeforeElse() {
	m := p.mark()
	p.skipNewlines()
	if !p.isKeyword("else") {
		p.reset(m)
	}
}

func (p *Parser) parseWhile() ast.Node {
	line, col := p.cur().Line, p.cur().Column
	p.advance() // 'while'
	cond := p.parseExpression(LOWEST)
	body := p.parseBlock()
	return &ast.While{Base: ast.NewBase(line, col), Cond: cond, Body: body}
}

// parseFor implements `for ( var in start [..end [step N] [reverse]] )` and
// its for-each sibling `for ( var in iterable )`, per spec.md section 4.2.
func (p *Parser) parseFor() ast.Node {
	line, col := p.cur().Line, p.cur().Column
	p.advance() // 'for'

	if !p.expectAdvance(lexer.LPAREN, errs.HintForCloser(")")) {
		return nil
	}
	if !p.expect(lexer.IDENT, "expected a loop variable name") {
		return nil
	}
	varName := p.cur().Literal
	p.advance()

	if !p.isKeyword("in") {
		p.errorHere("", "expected 'in' in for-loop header")
		return nil
	}
	p.advance() // 'in'

	start := p.parseExpression(LOWEST)

	var node ast.Node
	if p.cur().Kind == lexer.RANGE {
		p.advance()
		end := p.parseExpression(LOWEST)

		var step ast.Node
		if p.isKeyword("step") {
			p.advance()
			step = p.parseExpression(LOWEST)
		}
		reverse := false
		if p.isKeyword("reverse") {
			p.advance()
			reverse = true
		}
		node = &ast.ForRange{Base: ast.NewBase(line, col), Var: varName, Start: start, End: end, Step: step, Reverse: reverse}
	} else {
		node = &ast.ForEach{Base: ast.NewBase(line, col), Var: varName, Iterable: start}
	}

	if !p.expectAdvance(lexer.RPAREN, errs.HintForCloser(")")) {
		return nil
	}
	body := p.parseBlock()
	switch n := node.(type) {
	case *ast.ForRange:
		n.Body = body
	case *ast.ForEach:
		n.Body = body
	}
	return node
}

func (p *Parser) parseUse() ast.Node {
	line, col := p.cur().Line, p.cur().Column
	p.advance() // 'use'
	if !p.expect(lexer.IDENT, "expected a module name after 'use'") {
		return nil
	}
	name := p.cur().Literal
	p.advance()
	return &ast.Use{Base: ast.NewBase(line, col), ModuleName: name}
}

// parseSay implements `say(expr[, expr...])[.modifier...]`. Multiple
// comma-separated expressions are desugared at parse time into a
// left-associative chain of string concatenations, per spec.md 4.2.
func (p *Parser) parseSay() ast.Node {
	line, col := p.cur().Line, p.cur().Column
	p.advance() // 'say'

	if !p.expectAdvance(lexer.LPAREN, errs.HintForCloser(")")) {
		return nil
	}

	var expr ast.Node
	if p.cur().Kind != lexer.RPAREN {
		expr = p.parseExpression(LOWEST)
		for p.cur().Kind == lexer.COMMA {
			p.advance()
			next := p.parseExpression(LOWEST)
			expr = &ast.BinaryOp{Base: ast.NewBase(line, col), Left: expr, Op: "say-concat", Right: next}
		}
	} else {
		expr = &ast.StringLiteral{Base: ast.NewBase(line, col), Value: ""}
	}
	if !p.expectAdvance(lexer.RPAREN, errs.HintForCloser(")")) {
		return nil
	}

	var mods []ast.SayModifier
	for p.cur().Kind == lexer.DOT {
		p.advance()
		if !p.expect(lexer.IDENT, "expected a modifier name (newl, space, or tab) after '.'") {
			break
		}
		switch p.cur().Literal {
		case "newl":
			mods = append(mods, ast.ModNewline)
		case "space":
			mods = append(mods, ast.ModSpace)
		case "tab":
			mods = append(mods, ast.ModTab)
		default:
			p.errorHere("", "unknown say modifier '.%s'", p.cur().Literal)
		}
		p.advance()
	}
	return &ast.Say{Base: ast.NewBase(line, col), Expr: expr, Modifiers: mods}
}

func (p *Parser) parseBuiltinCommand() ast.Node {
	line, col := p.cur().Line, p.cur().Column
	p.advance() // '&&'
	if !p.expect(lexer.IDENT, "expected a command name after '&&'") {
		return nil
	}
	path := p.cur().Literal
	p.advance()
	for p.cur().Kind == lexer.DOT {
		p.advance()
		if !p.expect(lexer.IDENT, "expected a command name segment after '.'") {
			break
		}
		path += "." + p.cur().Literal
		p.advance()
	}
	return &ast.BuiltinCommand{Base: ast.NewBase(line, col), Path: path}
}

// parseIdentifierLed resolves the three ways a leading identifier can open
// a statement: plain assignment, compound assignment, or an indexed
// assignment/read ambiguity, per spec.md section 4.2.
func (p *Parser) parseIdentifierLed() ast.Node {
	line, col := p.cur().Line, p.cur().Column
	name := p.cur().Literal

	switch p.peek().Kind {
	case lexer.ASSIGN:
		p.advance() // ident
		p.advance() // '='
		value := p.parseExpression(LOWEST)
		return &ast.Assign{Base: ast.NewBase(line, col), Name: name, Value: value}
	case lexer.PLUS_ASSIGN, lexer.MINUS_ASSIGN, lexer.STAR_ASSIGN, lexer.SLASH_ASSIGN:
		op := compoundOpFor(p.peek().Kind)
		p.advance() // ident
		p.advance() // op
		value := p.parseExpression(LOWEST)
		return &ast.CompoundAssign{Base: ast.NewBase(line, col), Name: name, Op: op, Value: value}
	default:
		// Either `name[idx] = value` or a plain expression statement; both
		// start with the same postfix-chain parse, so parse it once and
		// decide afterward whether a trailing '=' converts an IndexGet
		// into an IndexSet. This reaches the same observable outcome as
		// snapshot/rewind without re-parsing the chain twice.
		expr := p.parseExpression(LOWEST)
		if idxGet, ok := expr.(*ast.IndexGet); ok && p.cur().Kind == lexer.ASSIGN {
			p.advance()
			value := p.parseExpression(LOWEST)
			return &ast.IndexSet{Base: ast.NewBase(line, col), Target: idxGet.Target, Index: idxGet.Index, Value: value}
		}
		return expr
	}
}

func compoundOpFor(kind lexer.TokenKind) ast.CompoundAssignOp {
	switch kind {
	case lexer.PLUS_ASSIGN:
		return ast.CAddAssign
	case lexer.MINUS_ASSIGN:
		return ast.CSubAssign
	case lexer.STAR_ASSIGN:
		return ast.CMulAssign
	case lexer.SLASH_ASSIGN:
		return ast.CDivAssign
	}
	return ast.CAddAssign
}
