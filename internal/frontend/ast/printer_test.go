package ast

import (
	"strings"
	"testing"
)

func TestPrintLiterals(t *testing.T) {
	cases := []struct {
		name string
		node Node
		want string
	}{
		{"int", &NumberLit{Value: 42}, "Number: 42"},
		{"float", &NumberLit{Value: 2.5, IsFloat: true}, "Number: 2.5"},
		{"whole float keeps float form", &NumberLit{Value: 3, IsFloat: true}, "Number: 3"},
		{"string", &StringLit{Value: "hi\n"}, `String: "hi\n"`},
		{"bool true", &BoolLit{Value: true}, "Bool: true"},
		{"bool false", &BoolLit{Value: false}, "Bool: false"},
		{"identifier", &IdentifierExpr{Name: "count"}, "Identifier: count"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewPrinter().Print(tc.node)
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPrintIfElse(t *testing.T) {
	node := &IfStmt{
		Cond: &BoolLit{Value: true},
		Then: []Statement{
			&AssignStmt{Name: "x", Value: &NumberLit{Value: 1}},
		},
		Else: []Statement{
			&AssignStmt{Name: "x", Value: &NumberLit{Value: 2}},
		},
	}

	want := strings.Join([]string{
		"IfStmt",
		"  Condition:",
		"    Bool: true",
		"  Then:",
		"    Assignment: x =",
		"      Number: 1",
		"  Else:",
		"    Assignment: x =",
		"      Number: 2",
	}, "\n")

	got := NewPrinter().Print(node)
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrintIfWithoutElseOmitsBranch(t *testing.T) {
	node := &IfStmt{
		Cond: &IdentifierExpr{Name: "b"},
		Then: []Statement{},
	}

	got := NewPrinter().Print(node)
	if strings.Contains(got, "Else:") {
		t.Errorf("absent else branch must not be printed:\n%s", got)
	}
}

func TestPrintDeclarationWithoutInit(t *testing.T) {
	got := NewPrinter().Print(&DeclStmt{TypeName: "int", Name: "x"})
	if got != "Declaration: int x" {
		t.Errorf("got %q", got)
	}
}

func TestPrintNestedExpression(t *testing.T) {
	// not (a and b)
	node := &ExprStmt{
		X: &UnaryExpr{
			Op: "not",
			X: &BinaryExpr{
				Op: "and",
				X:  &IdentifierExpr{Name: "a"},
				Y:  &IdentifierExpr{Name: "b"},
			},
		},
	}

	want := strings.Join([]string{
		"ExprStmt",
		"  UnaryOp: not",
		"    BinaryOp: and",
		"      Identifier: a",
		"      Identifier: b",
	}, "\n")

	got := NewPrinter().Print(node)
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrintBlock(t *testing.T) {
	node := &BlockStmt{
		Statements: []Statement{
			&ExprStmt{X: &NumberLit{Value: 1}},
		},
	}

	want := strings.Join([]string{
		"Block",
		"  ExprStmt",
		"    Number: 1",
	}, "\n")

	got := NewPrinter().Print(node)
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrinterIsReusable(t *testing.T) {
	p := NewPrinter()
	first := p.Print(&BlockStmt{Statements: []Statement{&ExprStmt{X: &NumberLit{Value: 1}}}})
	second := p.Print(&BlockStmt{Statements: []Statement{&ExprStmt{X: &NumberLit{Value: 1}}}})
	if first != second {
		t.Errorf("indentation leaked between prints:\n%s\nvs\n%s", first, second)
	}
}
