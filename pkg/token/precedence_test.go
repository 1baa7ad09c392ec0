package token

import "testing"

func TestKindToPrecedenceCoversEveryBinaryOperator(t *testing.T) {
	ops := []Type{
		Pipe2, Amp2, Pipe, Caret, Amp,
		Eq2, Eq3, Neq, Neq2,
		LAngle, RAngle, LtEq, GtEq, Instanceof, In,
		ShiftLeft, ShiftRight, ShiftRight3,
		Plus, Minus,
		Star, Slash, Percent,
	}
	for _, op := range ops {
		prec, ok := KindToPrecedence(op)
		if !ok {
			t.Errorf("KindToPrecedence(%s) ok = false, want true", op)
		}
		if prec == Lowest {
			t.Errorf("KindToPrecedence(%s) = Lowest, want a real precedence", op)
		}
	}
}

func TestKindToPrecedenceRejectsNonBinaryTokens(t *testing.T) {
	for _, typ := range []Type{Eq, Identifier, LParen, Semicolon} {
		if _, ok := KindToPrecedence(typ); ok {
			t.Errorf("KindToPrecedence(%s) ok = true, want false", typ)
		}
	}
}

func TestPrecedenceOrdering(t *testing.T) {
	if !(Multiply > Add && Add > Shift && Shift > Compare && Compare > Equals &&
		Equals > BitwiseAnd && BitwiseAnd > BitwiseXor && BitwiseXor > BitwiseOr &&
		BitwiseOr > LogicalAnd && LogicalAnd > LogicalOr && LogicalOr > Assign &&
		Assign > CommaPrecedence) {
		t.Fatal("precedence ladder is not monotonically increasing in the expected order")
	}
}

func TestOnlyAssignIsRightAssociative(t *testing.T) {
	if !Assign.IsRightAssociative() {
		t.Error("Assign should be right-associative")
	}
	for _, p := range []Precedence{Add, Multiply, Compare, LogicalOr, LogicalAnd} {
		if p.IsRightAssociative() {
			t.Errorf("%d should not be right-associative", p)
		}
	}
}
