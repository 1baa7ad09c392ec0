package parser

import (
	"strconv"

	"github.com/cwbudde/jsparse/internal/ast"
	"github.com/cwbudde/jsparse/pkg/token"
)

// parseExpr parses a full expression, including the comma operator.
func (p *Parser) parseExpr() (ast.Expression, error) {
	span := p.startSpan()
	lhs, err := p.parseAssignmentExpressionOrHigher()
	if err != nil {
		return nil, err
	}
	if !p.at(token.Comma) {
		return lhs, nil
	}
	return p.parseSequenceExpression(span, lhs)
}

// parseParenExpression parses `(expr)` for use as a control-flow test; it
// returns the inner expression directly, not a ParenthesizedExpression
// node (that node kind is reserved for parenthesized expressions occurring
// in expression position, per parsePrimaryExpression).
func (p *Parser) parseParenExpression() (ast.Expression, error) {
	if err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseSequenceExpression(span ast.Span, first ast.Expression) (ast.Expression, error) {
	expressions := []ast.Expression{first}
	for {
		ok, err := p.eat(token.Comma)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		expr, err := p.parseAssignmentExpressionOrHigher()
		if err != nil {
			return nil, err
		}
		expressions = append(expressions, expr)
	}
	return &ast.SequenceExpression{SpanValue: p.endSpan(span), Expressions: expressions}, nil
}

func (p *Parser) parseAssignmentExpressionOrHigher() (ast.Expression, error) {
	span := p.startSpan()
	lhs, err := p.parseBinaryExpressionOrHigher(token.CommaPrecedence)
	if err != nil {
		return nil, err
	}
	if p.curToken.Type.IsAssignmentOperator() {
		return p.parseAssignmentExpressionRecursive(span, lhs)
	}
	return lhs, nil
}

func (p *Parser) parseAssignmentExpressionRecursive(span ast.Span, lhs ast.Expression) (ast.Expression, error) {
	operator := ast.MapAssignmentOperator(p.curToken.Type)
	var left ast.AssignmentTarget
	switch target := lhs.(type) {
	case *ast.Identifier:
		left = target
	case *ast.StaticMemberExpression:
		left = target
	case *ast.ComputedMemberExpression:
		left = target
	default:
		return nil, newError(ErrInvalidAssignment, "invalid assignment target", p.curToken.Pos)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseAssignmentExpressionOrHigher()
	if err != nil {
		return nil, err
	}
	return &ast.AssignmentExpression{SpanValue: p.endSpan(span), Operator: operator, Left: left, Right: right}, nil
}

// parseUnaryExpressionOrHigher and parseSimpleUnaryExpression both exist,
// rather than collapsing into one, to mirror the shape of the grammar this
// was ported from (Section 13.4 Update Expression / 13.3 Unary Expression);
// update (`++`/`--`) expressions are tokenized but not parsed into an AST
// node, matching the original's unimplemented prefix/postfix handling.
func (p *Parser) parseUnaryExpressionOrHigher(lhsSpan ast.Span) (ast.Expression, error) {
	if !p.curToken.Type.IsUnaryOperator() {
		return p.parseUpdateExpression(lhsSpan)
	}
	return p.parseSimpleUnaryExpression(lhsSpan)
}

func (p *Parser) parseSimpleUnaryExpression(lhsSpan ast.Span) (ast.Expression, error) {
	if p.curToken.Type.IsUnaryOperator() {
		return p.parseUnaryExpression()
	}
	return p.parseUpdateExpression(lhsSpan)
}

func (p *Parser) parseUpdateExpression(lhsSpan ast.Span) (ast.Expression, error) {
	return p.parseLhsExpressionOrHigher()
}

func (p *Parser) parseUnaryExpression() (ast.Expression, error) {
	span := p.startSpan()
	operator := ast.MapUnaryOperator(p.curToken.Type)
	if err := p.advance(); err != nil {
		return nil, err
	}
	argument, err := p.parseSimpleUnaryExpression(span)
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpression{SpanValue: p.endSpan(span), Operator: operator, Argument: argument}, nil
}

// parseLhsExpressionOrHigher parses a member expression and extends it
// with any trailing call expressions: `a.b(c)[d](e)`.
func (p *Parser) parseLhsExpressionOrHigher() (ast.Expression, error) {
	span := p.startSpan()
	lhs, err := p.parseMemberExpressionOrHigher()
	if err != nil {
		return nil, err
	}
	return p.parseCallExpressionRest(span, lhs)
}

func (p *Parser) parseCallExpressionRest(lhsSpan ast.Span, lhs ast.Expression) (ast.Expression, error) {
	for {
		var err error
		lhs, err = p.parseMemberExpressionRest(lhsSpan, lhs)
		if err != nil {
			return nil, err
		}
		if p.at(token.LParen) {
			lhs, err = p.parseCallArguments(lhsSpan, lhs)
			if err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	return lhs, nil
}

func (p *Parser) parseCallArguments(lhsSpan ast.Span, callee ast.Expression) (ast.Expression, error) {
	if err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	var arguments []ast.Expression
	for !p.at(token.RParen) {
		argument, err := p.parseAssignmentExpressionOrHigher()
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, argument)
		if p.at(token.Comma) {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return &ast.CallExpression{SpanValue: p.endSpan(lhsSpan), Callee: callee, Arguments: arguments}, nil
}

func (p *Parser) parseMemberExpressionOrHigher() (ast.Expression, error) {
	span := p.startSpan()
	lhs, err := p.parsePrimaryExpression()
	if err != nil {
		return nil, err
	}
	return p.parseMemberExpressionRest(span, lhs)
}

func (p *Parser) parseMemberExpressionRest(lhsSpan ast.Span, lhs ast.Expression) (ast.Expression, error) {
	for {
		var err error
		switch p.curToken.Type {
		case token.Dot:
			lhs, err = p.parseStaticMemberExpression(lhsSpan, lhs)
		case token.LBrack:
			lhs, err = p.parseComputedMemberExpression(lhsSpan, lhs)
		default:
			return lhs, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) parseStaticMemberExpression(lhsSpan ast.Span, lhs ast.Expression) (ast.Expression, error) {
	if err := p.advance(); err != nil { // `.`
		return nil, err
	}
	property, err := p.parseIdentifierName()
	if err != nil {
		return nil, err
	}
	return &ast.StaticMemberExpression{SpanValue: p.endSpan(lhsSpan), Object: lhs, Property: property}, nil
}

func (p *Parser) parseComputedMemberExpression(lhsSpan ast.Span, lhs ast.Expression) (ast.Expression, error) {
	if err := p.advance(); err != nil { // `[`
		return nil, err
	}
	property, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RBrack); err != nil {
		return nil, err
	}
	return &ast.ComputedMemberExpression{SpanValue: p.endSpan(lhsSpan), Object: lhs, Expression: property}, nil
}

func (p *Parser) parsePrimaryExpression() (ast.Expression, error) {
	span := p.startSpan()
	switch {
	case p.curToken.Type == token.Identifier:
		return p.parseIdentifierExpression()
	case isLiteralExpressionStart(p.curToken.Type):
		return p.parseLiteralExpression()
	case p.at(token.LBrack):
		return p.parseArrayExpression()
	case p.at(token.LBrace):
		return p.parseObjectExpression()
	case p.at(token.LParen):
		return p.parseParenthesizedExpression(span)
	default:
		return p.parseIdentifierExpression()
	}
}

// parseParenthesizedExpression parses the ParenthesizedExpression /
// SequenceExpression forms: a single parenthesized expression stays
// wrapped (preserving parens for round-tripping); a comma list collapses
// to a SequenceExpression as it would unparenthesized; an empty `()` is a
// parse error, since JS has no unit-value expression.
func (p *Parser) parseParenthesizedExpression(span ast.Span) (ast.Expression, error) {
	if err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	var expressions []ast.Expression
	for !p.at(token.RParen) {
		expr, err := p.parseAssignmentExpressionOrHigher()
		if err != nil {
			return nil, err
		}
		expressions = append(expressions, expr)
		if p.at(token.Comma) {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	parenSpan := p.endSpan(span)

	if len(expressions) == 0 {
		return nil, newError(ErrEmptyParenExpr, "parenthesized expression must contain at least one expression", p.curToken.Pos)
	}
	if len(expressions) == 1 {
		return &ast.ParenthesizedExpression{SpanValue: parenSpan, Expression: expressions[0]}, nil
	}
	return &ast.SequenceExpression{SpanValue: parenSpan, Expressions: expressions}, nil
}

func (p *Parser) parseArrayExpression() (ast.Expression, error) {
	span := p.startSpan()
	if err := p.expect(token.LBrack); err != nil {
		return nil, err
	}
	var elements []ast.ArrayExpressionElement
	for !p.at(token.RBrack) {
		elemSpan := p.startSpan()
		skipped, err := p.eat(token.Comma)
		if err != nil {
			return nil, err
		}
		if skipped {
			elements = append(elements, &ast.Elision{SpanValue: elemSpan})
			continue
		}

		element, err := p.parseAssignmentExpressionOrHigher()
		if err != nil {
			return nil, err
		}
		elements = append(elements, ast.ExpressionElement{Expression: element})

		if p.at(token.Comma) {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expect(token.RBrack); err != nil {
		return nil, err
	}
	return &ast.ArrayExpression{SpanValue: p.endSpan(span), Elements: elements}, nil
}

func (p *Parser) parseObjectExpression() (ast.Expression, error) {
	span := p.startSpan()
	if err := p.expect(token.LBrace); err != nil {
		return nil, err
	}
	var properties []*ast.ObjectProperty
	var trailingComma *ast.Span
	for !p.at(token.RBrace) {
		prop, err := p.parseObjectProperty()
		if err != nil {
			return nil, err
		}
		properties = append(properties, prop)

		trailingComma = nil
		if p.at(token.Comma) {
			commaSpan := p.startSpan()
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.at(token.RBrace) {
				trailingComma = &commaSpan
			}
		}
	}
	if err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	return &ast.ObjectExpression{SpanValue: p.endSpan(span), Properties: properties, TrailingComma: trailingComma}, nil
}

func (p *Parser) parseObjectProperty() (*ast.ObjectProperty, error) {
	span := p.startSpan()
	key, err := p.parsePropertyKey()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	value, err := p.parseAssignmentExpressionOrHigher()
	if err != nil {
		return nil, err
	}
	return &ast.ObjectProperty{SpanValue: p.endSpan(span), Key: key, Value: value}, nil
}

func (p *Parser) parsePropertyKey() (ast.PropertyKey, error) {
	switch p.curToken.Type {
	case token.Identifier:
		return p.parseIdentifierName()
	case token.Str:
		return p.parseLiteralString()
	case token.Decimal, token.Hex:
		return p.parseLiteralNumber()
	default:
		return nil, p.unexpected()
	}
}

// isLiteralExpressionStart reports whether t starts a literal value in
// expression position: Type.IsLiteral covers the lexer's literal-token
// category (Decimal/Hex/Str plus, incidentally, Identifier), which isn't
// quite the set parsePrimaryExpression needs here, so True/False/Null are
// added explicitly.
func isLiteralExpressionStart(t token.Type) bool {
	switch t {
	case token.Str, token.Decimal, token.Hex, token.True, token.False, token.Null:
		return true
	default:
		return false
	}
}

func (p *Parser) parseLiteralExpression() (ast.Expression, error) {
	switch {
	case p.at(token.Str):
		return p.parseLiteralString()
	case p.at(token.True) || p.at(token.False):
		return p.parseLiteralBoolean()
	case p.at(token.Null):
		return p.parseLiteralNull()
	case p.at(token.Decimal) || p.at(token.Hex):
		return p.parseLiteralNumber()
	default:
		return nil, p.unexpected()
	}
}

func (p *Parser) parseLiteralString() (*ast.StringLiteral, error) {
	if !p.at(token.Str) {
		return nil, p.unexpected()
	}
	span := p.startSpan()
	value := p.curToken.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.StringLiteral{SpanValue: p.endSpan(span), Value: value}, nil
}

func (p *Parser) parseLiteralBoolean() (*ast.BooleanLiteral, error) {
	span := p.startSpan()
	var value bool
	switch p.curToken.Type {
	case token.True:
		value = true
	case token.False:
		value = false
	default:
		return nil, p.unexpected()
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.BooleanLiteral{SpanValue: p.endSpan(span), Value: value}, nil
}

func (p *Parser) parseLiteralNull() (*ast.NullLiteral, error) {
	span := p.startSpan()
	if err := p.advance(); err != nil { // `null`
		return nil, err
	}
	return &ast.NullLiteral{SpanValue: p.endSpan(span)}, nil
}

func (p *Parser) parseLiteralNumber() (*ast.NumericLiteral, error) {
	if !p.at(token.Decimal) && !p.at(token.Hex) {
		return nil, p.unexpected()
	}
	span := p.startSpan()
	raw := p.curToken.Literal
	value, err := parseNumericValue(p.curToken)
	if err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.NumericLiteral{SpanValue: p.endSpan(span), Value: value, Raw: raw}, nil
}

func parseNumericValue(t token.Token) (float64, error) {
	if t.Type == token.Hex {
		n, err := strconv.ParseUint(t.Literal[2:], 16, 64)
		if err != nil {
			return 0, newError(ErrInvalidNumber, "invalid hex literal: "+t.Literal, t.Pos)
		}
		return float64(n), nil
	}
	n, err := strconv.ParseFloat(t.Literal, 64)
	if err != nil {
		return 0, newError(ErrInvalidNumber, "invalid number literal: "+t.Literal, t.Pos)
	}
	return n, nil
}

func (p *Parser) parseBinaryExpressionOrHigher(minPrecedence token.Precedence) (ast.Expression, error) {
	lhsSpan := p.startSpan()
	lhs, err := p.parseUnaryExpressionOrHigher(lhsSpan)
	if err != nil {
		return nil, err
	}
	return p.parseBinaryExpressionRest(lhsSpan, lhs, minPrecedence)
}

// parseBinaryExpressionRest is the Pratt-parsing climb:
// https://matklad.github.io/2020/04/13/simple-but-powerful-pratt-parsing.html
func (p *Parser) parseBinaryExpressionRest(lhsSpan ast.Span, lhs ast.Expression, minPrecedence token.Precedence) (ast.Expression, error) {
	for {
		kind := p.curToken.Type
		leftPrecedence, ok := token.KindToPrecedence(kind)
		if !ok {
			break
		}

		var stop bool
		if leftPrecedence.IsRightAssociative() {
			stop = leftPrecedence < minPrecedence
		} else {
			stop = leftPrecedence <= minPrecedence
		}
		if stop {
			break
		}

		if err := p.advance(); err != nil { // bump operator
			return nil, err
		}
		rhs, err := p.parseBinaryExpressionOrHigher(leftPrecedence)
		if err != nil {
			return nil, err
		}

		switch {
		case kind.IsLogicalOperator():
			lhs = &ast.LogicalExpression{SpanValue: p.endSpan(lhsSpan), Left: lhs, Operator: ast.MapLogicalOperator(kind), Right: rhs}
		default:
			lhs = &ast.BinaryExpression{SpanValue: p.endSpan(lhsSpan), Left: lhs, Operator: ast.MapBinaryOperator(kind), Right: rhs}
		}
	}
	return lhs, nil
}

func (p *Parser) parseIdentifierExpression() (ast.Expression, error) {
	ident, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	return ident, nil
}

func (p *Parser) parseIdentifierName() (*ast.IdentifierName, error) {
	span := p.startSpan()
	name := p.curToken.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.IdentifierName{SpanValue: p.endSpan(span), Name: name}, nil
}

func (p *Parser) parseIdentifier() (*ast.Identifier, error) {
	if !p.at(token.Identifier) {
		return nil, p.unexpected()
	}
	span := p.startSpan()
	name := p.curToken.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.Identifier{SpanValue: p.endSpan(span), Name: name}, nil
}
