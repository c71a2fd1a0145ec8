package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Printer renders a finished tree as indented text, two spaces per
// level. It only reads the tree.
type Printer struct {
	indent int
}

func NewPrinter() *Printer {
	return &Printer{}
}

// Print returns the tree rendering of node
func (p *Printer) Print(node Node) string {
	var lines []string
	p.printNode(node, &lines)
	return strings.Join(lines, "\n")
}

func (p *Printer) emit(lines *[]string, format string, args ...any) {
	*lines = append(*lines, strings.Repeat("  ", p.indent)+fmt.Sprintf(format, args...))
}

func (p *Printer) printStmts(stmts []Statement, lines *[]string) {
	p.indent++
	for _, stmt := range stmts {
		p.printNode(stmt, lines)
	}
	p.indent--
}

// printNode dispatches over the closed node set. The type switch is
// exhaustive; a new variant shows up as an "unhandled node" line in
// test output rather than a silent omission.
func (p *Printer) printNode(node Node, lines *[]string) {
	switch n := node.(type) {
	case *Program:
		p.emit(lines, "Program")
		p.printStmts(n.Statements, lines)

	case *DeclStmt:
		withInit := ""
		if n.Init != nil {
			withInit = " (with init)"
		}
		p.emit(lines, "Declaration: %s %s%s", n.TypeName, n.Name, withInit)
		if n.Init != nil {
			p.indent++
			p.printNode(n.Init, lines)
			p.indent--
		}

	case *AssignStmt:
		p.emit(lines, "Assignment: %s =", n.Name)
		p.indent++
		p.printNode(n.Value, lines)
		p.indent--

	case *IfStmt:
		p.emit(lines, "IfStmt")
		p.indent++
		p.emit(lines, "Condition:")
		p.indent++
		p.printNode(n.Cond, lines)
		p.indent--
		p.emit(lines, "Then:")
		p.printStmts(n.Then, lines)
		if n.Else != nil {
			p.emit(lines, "Else:")
			p.printStmts(n.Else, lines)
		}
		p.indent--

	case *WhileStmt:
		p.emit(lines, "WhileStmt")
		p.indent++
		p.emit(lines, "Condition:")
		p.indent++
		p.printNode(n.Cond, lines)
		p.indent--
		p.emit(lines, "Body:")
		p.printStmts(n.Body, lines)
		p.indent--

	case *BlockStmt:
		p.emit(lines, "Block")
		p.printStmts(n.Statements, lines)

	case *ExprStmt:
		p.emit(lines, "ExprStmt")
		p.indent++
		p.printNode(n.X, lines)
		p.indent--

	case *BinaryExpr:
		p.emit(lines, "BinaryOp: %s", n.Op)
		p.indent++
		p.printNode(n.X, lines)
		p.printNode(n.Y, lines)
		p.indent--

	case *UnaryExpr:
		p.emit(lines, "UnaryOp: %s", n.Op)
		p.indent++
		p.printNode(n.X, lines)
		p.indent--

	case *IdentifierExpr:
		p.emit(lines, "Identifier: %s", n.Name)

	case *NumberLit:
		if n.IsFloat {
			p.emit(lines, "Number: %s", strconv.FormatFloat(n.Value, 'g', -1, 64))
		} else {
			p.emit(lines, "Number: %d", int64(n.Value))
		}

	case *StringLit:
		p.emit(lines, "String: %q", n.Value)

	case *BoolLit:
		p.emit(lines, "Bool: %t", n.Value)

	default:
		p.emit(lines, "unhandled node %T", n)
	}
}
