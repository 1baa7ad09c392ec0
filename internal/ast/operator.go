package ast

import "github.com/cwbudde/jsparse/pkg/token"

// BinaryOperator, UnaryOperator, LogicalOperator, and AssignmentOperator are
// modeled as their canonical source spelling rather than a numbered enum:
// serializing the AST to JSON then needs no symbol table, and
// `==".(BinaryOperator)` reads the same in Go source as it does in the
// emitted JSON.
type BinaryOperator string

const (
	Equality           BinaryOperator = "=="
	Inequality         BinaryOperator = "!="
	StrictEquality     BinaryOperator = "==="
	StrictInequality   BinaryOperator = "!!"
	LessThan           BinaryOperator = "<"
	LessEqualThan      BinaryOperator = "<="
	GreaterThan        BinaryOperator = ">"
	GreaterEqualThan   BinaryOperator = ">="
	ShiftLeft          BinaryOperator = "<<"
	ShiftRight         BinaryOperator = ">>"
	ShiftRightZeroFill BinaryOperator = ">>>"
	Addition           BinaryOperator = "+"
	Subtraction        BinaryOperator = "-"
	Multiplication     BinaryOperator = "*"
	Division           BinaryOperator = "/"
	Remainder          BinaryOperator = "%"
	BitwiseOR          BinaryOperator = "|"
	BitwiseXOR         BinaryOperator = "^"
	BitwiseAnd         BinaryOperator = "&"
	In                 BinaryOperator = "in"
	Instanceof         BinaryOperator = "instanceof"
)

// MapBinaryOperator converts a lexed operator token into the BinaryOperator
// it denotes. t must be one of the kinds KindToPrecedence accepts other than
// Pipe2/Amp2 (those are logical, see MapLogicalOperator); callers that
// violate this panic, mirroring the unreachable!() arm of the original
// kind-to-operator mapping.
func MapBinaryOperator(t token.Type) BinaryOperator {
	switch t {
	case token.Eq2:
		return Equality
	case token.Neq:
		return Inequality
	case token.Eq3:
		return StrictEquality
	case token.Neq2:
		return StrictInequality
	case token.LAngle:
		return LessThan
	case token.LtEq:
		return LessEqualThan
	case token.RAngle:
		return GreaterThan
	case token.GtEq:
		return GreaterEqualThan
	case token.ShiftLeft:
		return ShiftLeft
	case token.ShiftRight:
		return ShiftRight
	case token.ShiftRight3:
		return ShiftRightZeroFill
	case token.Plus:
		return Addition
	case token.Minus:
		return Subtraction
	case token.Star:
		return Multiplication
	case token.Slash:
		return Division
	case token.Percent:
		return Remainder
	case token.Pipe:
		return BitwiseOR
	case token.Caret:
		return BitwiseXOR
	case token.Amp:
		return BitwiseAnd
	case token.In:
		return In
	case token.Instanceof:
		return Instanceof
	default:
		panic("ast: not a binary operator token: " + t.String())
	}
}

type LogicalOperator string

const (
	Or  LogicalOperator = "||"
	And LogicalOperator = "&&"
)

// MapLogicalOperator converts `||`/`&&` into the LogicalOperator they denote.
func MapLogicalOperator(t token.Type) LogicalOperator {
	switch t {
	case token.Pipe2:
		return Or
	case token.Amp2:
		return And
	default:
		panic("ast: not a logical operator token: " + t.String())
	}
}

type UnaryOperator string

const (
	UnaryNegation UnaryOperator = "-"
	UnaryPlus     UnaryOperator = "+"
	LogicalNot    UnaryOperator = "!"
	BitwiseNot    UnaryOperator = "~"
	Typeof        UnaryOperator = "typeof"
	Void          UnaryOperator = "void"
	Delete        UnaryOperator = "delete"
)

// MapUnaryOperator converts a prefix-unary operator token into the
// UnaryOperator it denotes.
func MapUnaryOperator(t token.Type) UnaryOperator {
	switch t {
	case token.Minus:
		return UnaryNegation
	case token.Plus:
		return UnaryPlus
	case token.Bang:
		return LogicalNot
	case token.Tilde:
		return BitwiseNot
	case token.Typeof:
		return Typeof
	case token.Void:
		return Void
	case token.Delete:
		return Delete
	default:
		panic("ast: not a unary operator token: " + t.String())
	}
}

type AssignmentOperator string

const (
	Assign                   AssignmentOperator = "="
	AssignAddition           AssignmentOperator = "+="
	AssignSubtraction        AssignmentOperator = "-="
	AssignMultiplication     AssignmentOperator = "*="
	AssignDivision           AssignmentOperator = "/="
	AssignRemainder          AssignmentOperator = "%="
	AssignShiftLeft          AssignmentOperator = "<<="
	AssignShiftRight         AssignmentOperator = ">>="
	AssignShiftRightZeroFill AssignmentOperator = ">>>="
	AssignBitwiseOR          AssignmentOperator = "|="
	AssignBitwiseXOR         AssignmentOperator = "^="
	AssignBitwiseAnd         AssignmentOperator = "&="
)

// MapAssignmentOperator converts a compound/simple assignment token into the
// AssignmentOperator it denotes.
func MapAssignmentOperator(t token.Type) AssignmentOperator {
	switch t {
	case token.Eq:
		return Assign
	case token.PlusEq:
		return AssignAddition
	case token.MinusEq:
		return AssignSubtraction
	case token.StarEq:
		return AssignMultiplication
	case token.SlashEq:
		return AssignDivision
	case token.PercentEq:
		return AssignRemainder
	case token.ShiftLeftEq:
		return AssignShiftLeft
	case token.ShiftRightEq:
		return AssignShiftRight
	case token.ShiftRight3Eq:
		return AssignShiftRightZeroFill
	case token.PipeEq:
		return AssignBitwiseOR
	case token.CaretEq:
		return AssignBitwiseXOR
	case token.AmpEq:
		return AssignBitwiseAnd
	default:
		panic("ast: not an assignment operator token: " + t.String())
	}
}
