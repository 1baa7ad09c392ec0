package parser

import (
	"github.com/cwbudde/jsparse/internal/ast"
	"github.com/cwbudde/jsparse/pkg/token"
)

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.curToken.Type {
	case token.LBrace:
		return p.parseBlockStatement()
	case token.Semicolon:
		return p.parseEmptyStatement()
	case token.If:
		return p.parseIfStatement()
	case token.Do:
		return p.parseDoWhileStatement()
	case token.While:
		return p.parseWhileStatement()
	case token.For:
		return p.parseForStatement()
	case token.Break, token.Continue:
		return p.parseBreakOrContinueStatement()
	case token.Switch:
		return p.parseSwitchStatement()
	case token.Return:
		return p.parseReturnStatement()
	case token.With:
		return p.parseWithStatement()
	case token.Function:
		return p.parseFunctionDeclaration()
	case token.Var, token.Let, token.Const:
		return p.parseVariableStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseBlockStatement() (ast.Statement, error) {
	span := p.startSpan()
	if err := p.expect(token.LBrace); err != nil {
		return nil, err
	}
	var body []ast.Statement
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	if err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	return &ast.BlockStatement{SpanValue: p.endSpan(span), Body: body}, nil
}

func (p *Parser) parseEmptyStatement() (ast.Statement, error) {
	span := p.startSpan()
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.EmptyStatement{SpanValue: p.endSpan(span)}, nil
}

func (p *Parser) parseIfStatement() (ast.Statement, error) {
	span := p.startSpan()
	if err := p.advance(); err != nil { // `if`
		return nil, err
	}
	test, err := p.parseParenExpression()
	if err != nil {
		return nil, err
	}
	consequent, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	var alternate ast.Statement
	hasElse, err := p.eat(token.Else)
	if err != nil {
		return nil, err
	}
	if hasElse {
		alternate, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStatement{SpanValue: p.endSpan(span), Test: test, Consequent: consequent, Alternate: alternate}, nil
}

func (p *Parser) parseDoWhileStatement() (ast.Statement, error) {
	span := p.startSpan()
	if err := p.advance(); err != nil { // `do`
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.While); err != nil {
		return nil, err
	}
	test, err := p.parseParenExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.Semicolon); err != nil {
		return nil, err
	}
	return &ast.DoWhileStatement{SpanValue: p.endSpan(span), Body: body, Test: test}, nil
}

func (p *Parser) parseWhileStatement() (ast.Statement, error) {
	span := p.startSpan()
	if err := p.advance(); err != nil { // `while`
		return nil, err
	}
	test, err := p.parseParenExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStatement{SpanValue: p.endSpan(span), Test: test, Body: body}, nil
}

func (p *Parser) parseWithStatement() (ast.Statement, error) {
	span := p.startSpan()
	if err := p.advance(); err != nil { // `with`
		return nil, err
	}
	object, err := p.parseParenExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.WithStatement{SpanValue: p.endSpan(span), Object: object, Body: body}, nil
}

func isVariableDeclarationStart(t token.Type) bool {
	return t == token.Var || t == token.Let || t == token.Const
}

func (p *Parser) parseForStatement() (ast.Statement, error) {
	span := p.startSpan()
	if err := p.advance(); err != nil { // `for`
		return nil, err
	}
	if err := p.expect(token.LParen); err != nil {
		return nil, err
	}

	switch {
	case p.at(token.Semicolon):
		return p.parseForLoop(span, nil)
	case isVariableDeclarationStart(p.curToken.Type):
		return p.parseVariableDeclarationForStatement(span)
	case p.at(token.RParen):
		return p.parseForLoop(span, nil)
	}

	initExpr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return p.parseForLoop(span, ast.ExpressionInit{Expression: initExpr})
}

func (p *Parser) parseVariableDeclarationForStatement(span ast.Span) (ast.Statement, error) {
	declSpan := p.startSpan()
	decl, err := p.parseVariableDeclaration(declSpan)
	if err != nil {
		return nil, err
	}
	return p.parseForLoop(span, decl)
}

func (p *Parser) parseForLoop(span ast.Span, init ast.ForInit) (ast.Statement, error) {
	if err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	var test ast.Expression
	if !p.at(token.Semicolon) && !p.at(token.RParen) {
		var err error
		test, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	var update ast.Expression
	if !p.at(token.RParen) {
		var err error
		update, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.ForStatement{SpanValue: p.endSpan(span), Init: init, Test: test, Update: update, Body: body}, nil
}

func (p *Parser) parseBreakOrContinueStatement() (ast.Statement, error) {
	span := p.startSpan()
	kind := p.curToken.Type
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	resultSpan := p.endSpan(span)
	if kind == token.Break {
		return &ast.BreakStatement{SpanValue: resultSpan}, nil
	}
	return &ast.ContinueStatement{SpanValue: resultSpan}, nil
}

func (p *Parser) parseReturnStatement() (ast.Statement, error) {
	span := p.startSpan()
	if err := p.advance(); err != nil { // `return`
		return nil, err
	}
	var argument ast.Expression
	if !p.canInsertSemicolon() {
		var err error
		argument, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	return &ast.ReturnStatement{SpanValue: p.endSpan(span), Argument: argument}, nil
}

func (p *Parser) parseSwitchStatement() (ast.Statement, error) {
	span := p.startSpan()
	if err := p.advance(); err != nil { // `switch`
		return nil, err
	}
	discriminant, err := p.parseParenExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.LBrace); err != nil {
		return nil, err
	}
	var cases []*ast.SwitchCase
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		c, err := p.parseSwitchCase()
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	if err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	return &ast.SwitchStatement{SpanValue: p.endSpan(span), Discriminant: discriminant, Cases: cases}, nil
}

func (p *Parser) parseSwitchCase() (*ast.SwitchCase, error) {
	span := p.startSpan()
	var test ast.Expression
	switch p.curToken.Type {
	case token.Default:
		if err := p.advance(); err != nil {
			return nil, err
		}
	case token.Case:
		if err := p.advance(); err != nil {
			return nil, err
		}
		var err error
		test, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	default:
		return nil, newError(ErrInvalidSwitchCase, "expected 'case' or 'default'", p.curToken.Pos)
	}
	if err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	var consequent []ast.Statement
	for p.curToken.Type != token.Case && p.curToken.Type != token.Default &&
		p.curToken.Type != token.RBrace && p.curToken.Type != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		consequent = append(consequent, stmt)
	}
	return &ast.SwitchCase{SpanValue: p.endSpan(span), Test: test, Consequent: consequent}, nil
}

func (p *Parser) parseVariableDeclaration(span ast.Span) (*ast.VariableDeclaration, error) {
	var kind ast.VariableDeclarationKind
	switch p.curToken.Type {
	case token.Var:
		kind = ast.Var
	case token.Let:
		kind = ast.Let
	case token.Const:
		kind = ast.Const
	default:
		return nil, p.unexpected()
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	var init ast.Expression
	hasInit, err := p.eat(token.Eq)
	if err != nil {
		return nil, err
	}
	if hasInit {
		init, err = p.parseAssignmentExpressionOrHigher()
		if err != nil {
			return nil, err
		}
	}
	return &ast.VariableDeclaration{SpanValue: p.endSpan(span), Kind: kind, ID: id, Init: init}, nil
}

func (p *Parser) parseVariableStatement() (ast.Statement, error) {
	span := p.startSpan()
	decl, err := p.parseVariableDeclaration(span)
	if err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	return decl, nil
}

func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	span := p.startSpan()
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{SpanValue: p.endSpan(span), Expression: expr}, nil
}

// parseFunctionDeclaration parses `function IDENT? ( params ) { body }?`.
// Both the identifier and the body are optional: an absent body is legal,
// used for declarations without one, and requires no semicolon insertion of
// its own. Whatever follows (a `;`, another statement, `}`, EOF) is left for
// the next parseStatement call rather than consumed here.
func (p *Parser) parseFunctionDeclaration() (ast.Statement, error) {
	span := p.startSpan()
	if err := p.expect(token.Function); err != nil {
		return nil, err
	}
	var id *ast.Identifier
	if p.at(token.Identifier) {
		var err error
		id, err = p.parseIdentifier()
		if err != nil {
			return nil, err
		}
	}
	params, err := p.parseFormalParameters()
	if err != nil {
		return nil, err
	}
	var body *ast.FunctionBody
	if p.at(token.LBrace) {
		body, err = p.parseFunctionBody()
		if err != nil {
			return nil, err
		}
	}
	return &ast.Function{SpanValue: p.endSpan(span), ID: id, Params: params, Body: body}, nil
}

func (p *Parser) parseFormalParameters() (*ast.FormalParameters, error) {
	span := p.startSpan()
	if err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	var params []*ast.Identifier
	for !p.at(token.RParen) {
		id, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		params = append(params, id)
		if p.at(token.Comma) {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return &ast.FormalParameters{SpanValue: p.endSpan(span), Params: params}, nil
}

func (p *Parser) parseFunctionBody() (*ast.FunctionBody, error) {
	span := p.startSpan()
	if err := p.expect(token.LBrace); err != nil {
		return nil, err
	}
	var statements []ast.Statement
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	if err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	return &ast.FunctionBody{SpanValue: p.endSpan(span), Statements: statements}, nil
}
