// Package ast defines the Abstract Syntax Tree node types produced by the
// parser: a discriminated hierarchy of statements and expressions rooted at
// Program, addressed by half-open byte spans into the original source.
package ast

import "encoding/json"

// Span is a half-open byte range [Start, End) into the source buffer a node
// was parsed from.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Node is the interface every AST node satisfies.
type Node interface {
	Span() Span
}

// Statement is a node that performs an action but does not itself produce a
// value.
type Statement interface {
	Node
	statementNode()
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root of the AST: the full statement list for one source
// file plus the source text it was parsed from, retained so spans can be
// sliced back into source without re-reading the file.
type Program struct {
	SpanValue  Span        `json:"-"`
	SourceText string      `json:"-"`
	Body       []Statement `json:"-"`
}

func NewProgram(span Span, sourceText string, body []Statement) *Program {
	return &Program{SpanValue: span, SourceText: sourceText, Body: body}
}

func (p *Program) Span() Span { return p.SpanValue }

// MarshalJSON emits {"type":"Program", ...} so the AST dump produced by
// cmd/jsparse is self-describing without a schema on the reading side.
func (p *Program) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type       string      `json:"type"`
		Span       Span        `json:"span"`
		SourceText string      `json:"sourceText"`
		Body       []Statement `json:"body"`
	}{"Program", p.SpanValue, p.SourceText, p.Body})
}
