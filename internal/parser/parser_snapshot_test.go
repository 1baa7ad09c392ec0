package parser

import (
	"encoding/json"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// programs are representative fixtures covering most statement and
// expression forms this grammar recognizes, snapshotted as the same
// pretty-printed JSON cmd/jsparse writes to <path>-ast.json. A handful of
// inline sources stand in for a script fixture directory, since this front
// end has no corpus of script files of its own.
var programs = map[string]string{
	"var_decl":           "var x = 10;",
	"let_const":          "let a = 1; const b = 2;",
	"binary_climb":       "a + b * c - d / e % f;",
	"logical_bitwise":    "a || b && c | d ^ e & f;",
	"compare_shift":      "a < b <= c << 1 >>> 2;",
	"member_call":        "a.b.c(1, 2)[d];",
	"array_literal":      "[ 1, 'asdf', , 3 ];",
	"object_literal":     "({ a: 1, \"b\": 2, 3: \"c\" });",
	"if_else":            "if (a) { c = a; } else { return 1; }",
	"switch":             "switch (a) { case 1: break; default: return 1; }",
	"for_loop":           "for (var i = 0; i < 10; i = i + 1) { x = i; }",
	"while_do_while":     "while (a) { b = b + 1; } do { c = c + 1; } while (c < 10);",
	"with_stmt":          "with (obj) { x = 1; }",
	"function_decl":      "function add(a, b) { return a + b; }",
	"function_bodyless":  "function decl(x);",
	"assignment_ops":     "x += 1; x -= 1; x *= 2; x &= 1;",
	"sequence_paren":     "(a, b, c); (a + b);",
	"unary_ops":          "-a; +a; !a; ~a; typeof a; void a; delete a;",
}

// TestParserSnapshots parses each representative program and snapshots its
// JSON-serialized AST, giving the MarshalJSON surface fixture-driven
// regression coverage without a hand-rolled golden-file harness.
func TestParserSnapshots(t *testing.T) {
	for name, src := range programs {
		t.Run(name, func(t *testing.T) {
			prog, err := ParseProgram(src)
			if err != nil {
				t.Fatalf("ParseProgram(%q): %v", src, err)
			}
			out, err := json.MarshalIndent(prog, "", "  ")
			if err != nil {
				t.Fatalf("MarshalIndent: %v", err)
			}
			snaps.MatchSnapshot(t, name, string(out))
		})
	}
}
