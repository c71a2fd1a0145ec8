package parser

import (
	"strings"
	"testing"

	"mini/internal/diagnostics"
	"mini/internal/frontend/ast"
	"mini/internal/frontend/lexer"
)

// parse runs src through the tokenizer and parser and returns the tree
// plus the bag holding every syntax diagnostic.
func parse(t *testing.T, src string) (*ast.Program, *diagnostics.Bag) {
	t.Helper()
	tok := lexer.New("test.mini", src)
	tokens := tok.Tokenize()
	if len(tok.Errors) != 0 {
		t.Fatalf("unexpected lexical errors in %q: %v", src, tok.Errors)
	}
	bag := diagnostics.NewBag("test.mini")
	return Parse(tokens, "test.mini", bag), bag
}

func parseClean(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, bag := parse(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors in %q:\n%v", src, bag.Diagnostics())
	}
	return prog
}

func onlyStmt(t *testing.T, prog *ast.Program) ast.Statement {
	t.Helper()
	if len(prog.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Statements))
	}
	return prog.Statements[0]
}

func asBinary(t *testing.T, expr ast.Expression) *ast.BinaryExpr {
	t.Helper()
	bin, ok := expr.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("got %T, want *ast.BinaryExpr", expr)
	}
	return bin
}

func exprOf(t *testing.T, prog *ast.Program) ast.Expression {
	t.Helper()
	stmt, ok := onlyStmt(t, prog).(*ast.ExprStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.ExprStmt", prog.Statements[0])
	}
	return stmt.X
}

func TestSubtractionIsLeftAssociative(t *testing.T) {
	prog := parseClean(t, "1 - 2 - 3;")
	// ((1 - 2) - 3)
	outer := asBinary(t, exprOf(t, prog))
	if outer.Op != "-" {
		t.Errorf("outer op: got %q", outer.Op)
	}
	inner := asBinary(t, outer.X)
	if inner.Op != "-" {
		t.Errorf("inner op: got %q", inner.Op)
	}
	left, ok := inner.X.(*ast.NumberLit)
	if !ok || left.Value != 1 {
		t.Errorf("innermost left operand: got %#v", inner.X)
	}
	right, ok := outer.Y.(*ast.NumberLit)
	if !ok || right.Value != 3 {
		t.Errorf("outer right operand: got %#v", outer.Y)
	}
}

func TestMultiplicationBindsTighterThanAddition(t *testing.T) {
	prog := parseClean(t, "1 + 2 * 3;")
	// 1 + (2 * 3)
	outer := asBinary(t, exprOf(t, prog))
	if outer.Op != "+" {
		t.Fatalf("outer op: got %q, want +", outer.Op)
	}
	inner := asBinary(t, outer.Y)
	if inner.Op != "*" {
		t.Errorf("inner op: got %q, want *", inner.Op)
	}
}

func TestParenthesesOverridePrecedence(t *testing.T) {
	prog := parseClean(t, "(1 + 2) * 3;")
	// Grouping produces no node: the root is the '*' with the '+'
	// chain directly as its left child.
	outer := asBinary(t, exprOf(t, prog))
	if outer.Op != "*" {
		t.Fatalf("outer op: got %q, want *", outer.Op)
	}
	inner := asBinary(t, outer.X)
	if inner.Op != "+" {
		t.Errorf("inner op: got %q, want +", inner.Op)
	}
}

func TestComparisonDoesNotChain(t *testing.T) {
	_, bag := parse(t, "a < b < c;")
	if !bag.HasErrors() {
		t.Fatal("chained comparison must be rejected")
	}
	if len(bag.Diagnostics()) != 1 {
		t.Errorf("got %d diagnostics, want 1: %v", len(bag.Diagnostics()), bag.Diagnostics())
	}
}

func TestLogicNotNests(t *testing.T) {
	prog := parseClean(t, "not not x;")
	outer, ok := exprOf(t, prog).(*ast.UnaryExpr)
	if !ok || outer.Op != "not" {
		t.Fatalf("outer: got %#v", prog.Statements[0])
	}
	inner, ok := outer.X.(*ast.UnaryExpr)
	if !ok || inner.Op != "not" {
		t.Fatalf("inner: got %#v", outer.X)
	}
	if _, ok := inner.X.(*ast.IdentifierExpr); !ok {
		t.Errorf("operand: got %T", inner.X)
	}
}

func TestBangSpellingOfNot(t *testing.T) {
	prog := parseClean(t, "!x;")
	outer, ok := exprOf(t, prog).(*ast.UnaryExpr)
	if !ok || outer.Op != "!" {
		t.Fatalf("got %#v", prog.Statements[0])
	}
}

func TestUnaryMinusNests(t *testing.T) {
	prog := parseClean(t, "--5;")
	outer, ok := exprOf(t, prog).(*ast.UnaryExpr)
	if !ok || outer.Op != "-" {
		t.Fatalf("outer: got %#v", prog.Statements[0])
	}
	if _, ok := outer.X.(*ast.UnaryExpr); !ok {
		t.Errorf("inner: got %T", outer.X)
	}
}

func TestSymbolicAndWordOperatorsMix(t *testing.T) {
	prog := parseClean(t, "a and b || c;")
	outer := asBinary(t, exprOf(t, prog))
	if outer.Op != "||" {
		t.Fatalf("outer op: got %q, want ||", outer.Op)
	}
	inner := asBinary(t, outer.X)
	if inner.Op != "and" {
		t.Errorf("inner op: got %q, want and", inner.Op)
	}
}

func TestDeclarationForms(t *testing.T) {
	prog := parseClean(t, "int x; float y = 2.5;")
	if len(prog.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(prog.Statements))
	}

	bare, ok := prog.Statements[0].(*ast.DeclStmt)
	if !ok {
		t.Fatalf("first statement: got %T", prog.Statements[0])
	}
	if bare.TypeName != "int" || bare.Name != "x" || bare.Init != nil {
		t.Errorf("bare declaration: got %#v", bare)
	}

	init, ok := prog.Statements[1].(*ast.DeclStmt)
	if !ok {
		t.Fatalf("second statement: got %T", prog.Statements[1])
	}
	if init.TypeName != "float" || init.Name != "y" || init.Init == nil {
		t.Errorf("initialized declaration: got %#v", init)
	}
	num, ok := init.Init.(*ast.NumberLit)
	if !ok || !num.IsFloat || num.Value != 2.5 {
		t.Errorf("initializer: got %#v", init.Init)
	}
}

func TestIfWithoutElse(t *testing.T) {
	prog := parseClean(t, "if x > 0 then x = 1; end")
	stmt, ok := onlyStmt(t, prog).(*ast.IfStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.IfStmt", prog.Statements[0])
	}
	if len(stmt.Then) != 1 {
		t.Errorf("then branch: got %d statements, want 1", len(stmt.Then))
	}
	// Absent branch is nil, not an empty slice.
	if stmt.Else != nil {
		t.Errorf("else branch: got %#v, want nil", stmt.Else)
	}
}

func TestIfWithElse(t *testing.T) {
	prog := parseClean(t, "if b then x = 1; else x = 2; y = 3; end")
	stmt := onlyStmt(t, prog).(*ast.IfStmt)
	if len(stmt.Then) != 1 || len(stmt.Else) != 2 {
		t.Errorf("branches: then=%d else=%d, want 1 and 2", len(stmt.Then), len(stmt.Else))
	}
}

func TestWhileStatement(t *testing.T) {
	prog := parseClean(t, "while i < 10 do i = i + 1; end")
	stmt, ok := onlyStmt(t, prog).(*ast.WhileStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.WhileStmt", prog.Statements[0])
	}
	if len(stmt.Body) != 1 {
		t.Errorf("body: got %d statements, want 1", len(stmt.Body))
	}
	cond := asBinary(t, stmt.Cond)
	if cond.Op != "<" {
		t.Errorf("condition op: got %q, want <", cond.Op)
	}
}

func TestNestedBlocks(t *testing.T) {
	prog := parseClean(t, "begin begin x = 1; end end")
	outer, ok := onlyStmt(t, prog).(*ast.BlockStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.BlockStmt", prog.Statements[0])
	}
	inner, ok := outer.Statements[0].(*ast.BlockStmt)
	if !ok {
		t.Fatalf("inner: got %T, want *ast.BlockStmt", outer.Statements[0])
	}
	if len(inner.Statements) != 1 {
		t.Errorf("inner block: got %d statements", len(inner.Statements))
	}
}

func TestAssignmentVersusExprStatement(t *testing.T) {
	prog := parseClean(t, "x = 1; x == 1;")
	if _, ok := prog.Statements[0].(*ast.AssignStmt); !ok {
		t.Errorf("first: got %T, want *ast.AssignStmt", prog.Statements[0])
	}
	if _, ok := prog.Statements[1].(*ast.ExprStmt); !ok {
		t.Errorf("second: got %T, want *ast.ExprStmt", prog.Statements[1])
	}
}

func TestEmptyInputIsValid(t *testing.T) {
	prog := parseClean(t, "")
	if len(prog.Statements) != 0 {
		t.Errorf("got %d statements, want 0", len(prog.Statements))
	}
}

// Recovery behavior

func TestMissingThenRecoversIntoIf(t *testing.T) {
	prog, bag := parse(t, "if x > 0 then x = 1; end y = 2;")
	if bag.HasErrors() {
		t.Fatalf("control case must be clean: %v", bag.Diagnostics())
	}
	if len(prog.Statements) != 2 {
		t.Fatalf("control case: got %d statements", len(prog.Statements))
	}

	prog, bag = parse(t, "if x > 0 x = 1; end y = 2;")
	if len(bag.Diagnostics()) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(bag.Diagnostics()), bag.Diagnostics())
	}
	// The if-statement survives with an empty then branch, and the
	// statement after it still parses.
	if len(prog.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(prog.Statements))
	}
	if _, ok := prog.Statements[0].(*ast.IfStmt); !ok {
		t.Errorf("first: got %T, want *ast.IfStmt", prog.Statements[0])
	}
	if _, ok := prog.Statements[1].(*ast.AssignStmt); !ok {
		t.Errorf("second: got %T, want *ast.AssignStmt", prog.Statements[1])
	}
}

func TestTwoIndependentErrorsBothReported(t *testing.T) {
	_, bag := parse(t, "int x = ; bool = true;")
	diags := bag.Diagnostics()
	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2: %v", len(diags), diags)
	}
	if bag.HasFatal() {
		t.Error("recoverable errors must not be fatal")
	}
}

func TestUnclosedParenReportsOnce(t *testing.T) {
	_, bag := parse(t, "(1 + 2")
	if len(bag.Diagnostics()) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(bag.Diagnostics()), bag.Diagnostics())
	}
}

func TestTruncatedIfTerminates(t *testing.T) {
	// No then, no end, input just stops. The parse must finish with a
	// single report rather than loop or cascade.
	_, bag := parse(t, "if x > 0")
	if len(bag.Diagnostics()) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(bag.Diagnostics()), bag.Diagnostics())
	}
	if bag.HasFatal() {
		t.Error("truncated input must not be fatal")
	}
}

func TestStrayEndIsFatalStall(t *testing.T) {
	// 'end' at top level: recovery halts right on it without advancing,
	// which the statement loop detects and reports as fatal.
	_, bag := parse(t, "end")
	if !bag.HasFatal() {
		t.Fatal("expected a fatal diagnostic")
	}
	found := false
	for _, diag := range bag.Diagnostics() {
		if diag.Code == "P0004" {
			found = true
		}
	}
	if !found {
		t.Errorf("no P0004 in %v", bag.Diagnostics())
	}
}

func TestRecoverySkipsToSemicolon(t *testing.T) {
	prog, bag := parse(t, "x = * 2; y = 3;")
	if len(bag.Diagnostics()) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(bag.Diagnostics()), bag.Diagnostics())
	}
	// The broken assignment is dropped; the next one parses fine.
	if len(prog.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Statements))
	}
	if _, ok := prog.Statements[0].(*ast.AssignStmt); !ok {
		t.Errorf("got %T, want *ast.AssignStmt", prog.Statements[0])
	}
}

func TestErrorInsideBlockLeavesEndForEnclosure(t *testing.T) {
	prog, bag := parse(t, "begin x = * 2; end y = 1;")
	if len(bag.Diagnostics()) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(bag.Diagnostics()), bag.Diagnostics())
	}
	if len(prog.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(prog.Statements))
	}
	if _, ok := prog.Statements[0].(*ast.BlockStmt); !ok {
		t.Errorf("first: got %T, want *ast.BlockStmt", prog.Statements[0])
	}
}

func TestPrintedTreeForFullProgram(t *testing.T) {
	src := `int count = 0;
while count < 3 do
  count = count + 1;
end`
	prog := parseClean(t, src)

	want := strings.Join([]string{
		"Program",
		"  Declaration: int count (with init)",
		"    Number: 0",
		"  WhileStmt",
		"    Condition:",
		"      BinaryOp: <",
		"        Identifier: count",
		"        Number: 3",
		"    Body:",
		"      Assignment: count =",
		"        BinaryOp: +",
		"          Identifier: count",
		"          Number: 1",
	}, "\n")

	got := ast.NewPrinter().Print(prog)
	if got != want {
		t.Errorf("printed tree mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}
