package token

import "testing"

func TestTypeStringCanonicalSpelling(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{EOF, "EOF"},
		{Identifier, "Identifier"},
		{Decimal, "Decimal"},
		{True, "true"},
		{Function, "function"},
		{LParen, "("},
		{Eq3, "==="},
		{Neq2, "!!"},
		{Pipe2, "||"},
		{Typeof, "typeof"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestIsLiteral(t *testing.T) {
	for _, typ := range []Type{Identifier, Decimal, Hex, Str} {
		if !typ.IsLiteral() {
			t.Errorf("%s: IsLiteral() = false, want true", typ)
		}
	}
	for _, typ := range []Type{True, False, Null, EOF, LParen} {
		if typ.IsLiteral() {
			t.Errorf("%s: IsLiteral() = true, want false", typ)
		}
	}
}

func TestIsKeyword(t *testing.T) {
	for _, typ := range []Type{True, False, Null, Var, Function, With, Async, Let} {
		if !typ.IsKeyword() {
			t.Errorf("%s: IsKeyword() = false, want true", typ)
		}
	}
	for _, typ := range []Type{Identifier, LParen, Eq} {
		if typ.IsKeyword() {
			t.Errorf("%s: IsKeyword() = true, want false", typ)
		}
	}
}

func TestIsLogicalOperator(t *testing.T) {
	if !Pipe2.IsLogicalOperator() || !Amp2.IsLogicalOperator() {
		t.Error("Pipe2/Amp2 should be logical operators")
	}
	if Pipe.IsLogicalOperator() || Plus.IsLogicalOperator() {
		t.Error("Pipe/Plus should not be logical operators")
	}
}

func TestIsAssignmentOperator(t *testing.T) {
	for _, typ := range []Type{Eq, PlusEq, MinusEq, StarEq, SlashEq, PercentEq,
		ShiftLeftEq, ShiftRightEq, ShiftRight3Eq, PipeEq, CaretEq, AmpEq} {
		if !typ.IsAssignmentOperator() {
			t.Errorf("%s: IsAssignmentOperator() = false, want true", typ)
		}
	}
	if Eq2.IsAssignmentOperator() {
		t.Error("Eq2 (==) should not be an assignment operator")
	}
}
