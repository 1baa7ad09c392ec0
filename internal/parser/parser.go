// Package parser implements a single-token-lookahead recursive-descent
// parser with Pratt-style binary expression climbing, turning a token
// stream from internal/lexer into the AST defined in internal/ast.
//
// Key patterns:
//   - Lookahead: exactly one token (curToken); no Peek/SaveState/RestoreState
//     machinery, because this grammar's parser never needs to backtrack.
//   - Position tracking: startSpan/endSpan bracket every node using
//     prevTokenEnd, the byte offset the previous token ended at.
//   - Errors: the first Error encountered aborts parsing and is returned to
//     the caller, rather than being accumulated alongside a degraded AST.
package parser

import (
	"github.com/cwbudde/jsparse/internal/ast"
	"github.com/cwbudde/jsparse/internal/lexer"
	"github.com/cwbudde/jsparse/pkg/token"
)

// Parser consumes a token stream and produces an AST.
type Parser struct {
	source       string
	lex          *lexer.Lexer
	curToken     token.Token
	prevTokenEnd int
}

// New creates a Parser over source and primes curToken with the first
// token, mirroring the original's bump_any-on-construction convention.
func New(source string, opts ...lexer.Option) (*Parser, error) {
	p := &Parser{source: source, lex: lexer.New(source, opts...)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// ParseProgram parses the entire source as a sequence of statements.
func ParseProgram(source string) (*ast.Program, error) {
	p, err := New(source)
	if err != nil {
		return nil, err
	}
	return p.ParseProgram()
}

// ParseProgram parses the remainder of p's token stream as a Program.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	span := p.startSpan()
	var body []ast.Statement
	for !p.at(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	return ast.NewProgram(p.endSpan(span), p.source, body), nil
}

// advance drains the next non-LineTerminator token from the lexer into
// curToken, recording prevTokenEnd for end_span bookkeeping. A lexer error
// is returned directly; it already carries a position.
func (p *Parser) advance() error {
	for {
		tok, err := p.lex.NextToken()
		if err != nil {
			return err
		}
		if tok.Type == token.LineTerminator {
			continue
		}
		p.prevTokenEnd = p.curToken.End
		p.curToken = tok
		return nil
	}
}

// at reports whether curToken has kind t.
func (p *Parser) at(t token.Type) bool {
	return p.curToken.Type == t
}

// eat advances past curToken if it has kind t, reporting whether it did.
func (p *Parser) eat(t token.Type) (bool, error) {
	if !p.at(t) {
		return false, nil
	}
	if err := p.advance(); err != nil {
		return false, err
	}
	return true, nil
}

// expect requires curToken to have kind t, advancing past it or returning
// an Error describing what was found instead.
func (p *Parser) expect(t token.Type) error {
	if !p.at(t) {
		return p.expectedError(t)
	}
	return p.advance()
}

// startSpan captures the byte offset curToken begins at. Pair with
// endSpan once the node's last token has been consumed.
func (p *Parser) startSpan() ast.Span {
	return ast.Span{Start: p.curToken.Start, End: p.curToken.Start}
}

// endSpan closes span off at prevTokenEnd: the end of the last token
// consumed while building the node.
func (p *Parser) endSpan(span ast.Span) ast.Span {
	return ast.Span{Start: span.Start, End: p.prevTokenEnd}
}

func (p *Parser) unexpected() error {
	return newError(ErrUnexpectedToken, "unexpected token "+p.curToken.String(), p.curToken.Pos)
}

func (p *Parser) expectedError(want token.Type) error {
	return newError(ErrUnexpectedToken, "expected "+want.String()+", found "+p.curToken.Type.String(), p.curToken.Pos)
}

// canInsertSemicolon reports whether a statement may end here without an
// explicit `;`: before `}`, before EOF, or (trivially) at a `;` itself.
// The original parser's newline-sensitive ASI rule was stubbed out with a
// TODO and never implemented; this port keeps that same narrower rule
// rather than inventing newline tracking the grammar never specified.
func (p *Parser) canInsertSemicolon() bool {
	return p.at(token.Semicolon) || p.at(token.RBrace) || p.at(token.EOF)
}

// consumeSemicolon enforces automatic semicolon insertion: it errors if
// the statement cannot end here, and eats a `;` if one is present.
func (p *Parser) consumeSemicolon() error {
	if !p.canInsertSemicolon() {
		return newError(ErrMissingSemicolon, "expected a semicolon or an implicit semicolon after a statement", p.curToken.Pos)
	}
	if p.at(token.Semicolon) {
		return p.advance()
	}
	return nil
}
