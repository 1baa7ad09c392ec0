package ast

import (
	"encoding/json"
	"testing"

	"github.com/cwbudde/jsparse/pkg/token"
)

func TestProgramMarshalJSON(t *testing.T) {
	prog := NewProgram(Span{Start: 0, End: 12}, "var x = 10;", []Statement{
		&VariableDeclaration{
			SpanValue: Span{Start: 0, End: 11},
			Kind:      Var,
			ID:        &Identifier{SpanValue: Span{Start: 4, End: 5}, Name: "x"},
			Init:      &NumericLiteral{SpanValue: Span{Start: 8, End: 10}, Value: 10, Raw: "10"},
		},
	})

	out, err := json.Marshal(prog)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded["type"] != "Program" {
		t.Errorf("type = %v, want Program", decoded["type"])
	}
	if decoded["sourceText"] != "var x = 10;" {
		t.Errorf("sourceText = %v, want %q", decoded["sourceText"], "var x = 10;")
	}
	span, ok := decoded["span"].(map[string]any)
	if !ok {
		t.Fatalf("span field missing or wrong shape: %v", decoded["span"])
	}
	if span["start"] != float64(0) || span["end"] != float64(12) {
		t.Errorf("span = %v, want {0, 12}", span)
	}
}

// TestSpanInvariant checks that a node's span contains every child's span.
func TestSpanInvariant(t *testing.T) {
	left := &Identifier{SpanValue: Span{Start: 0, End: 1}, Name: "a"}
	right := &Identifier{SpanValue: Span{Start: 4, End: 5}, Name: "b"}
	bin := &BinaryExpression{
		SpanValue: Span{Start: 0, End: 5},
		Left:      left,
		Operator:  Addition,
		Right:     right,
	}
	if bin.Span().Start > left.Span().Start || bin.Span().Start > right.Span().Start {
		t.Error("parent span.start must be <= every child span.start")
	}
	if bin.Span().End < left.Span().End || bin.Span().End < right.Span().End {
		t.Error("parent span.end must be >= every child span.end")
	}
}

func TestMapBinaryOperatorPanicsOnNonBinaryToken(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a non-binary-operator token")
		}
	}()
	_ = MapBinaryOperator(token.ILLEGAL)
}
