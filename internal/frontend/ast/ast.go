// Package ast defines the syntax tree for Mini programs.
//
// The node set is closed: every construct the grammar can produce is
// one of the types in this package, and consumers dispatch with an
// exhaustive type switch. Nodes are built bottom-up by the parser and
// never mutated afterwards; each node carries the source location of
// its leading token for diagnostics. Parenthesized expressions have no
// node of their own - grouping only shapes the tree.
package ast

import "mini/internal/source"

// Node is implemented by every AST node
type Node interface {
	INode()
	Loc() *source.Location
}

// Statement is a marker interface for all statement nodes
type Statement interface {
	Node
	Stmt()
}

// Expression is a marker interface for all expression nodes
type Expression interface {
	Node
	Expr()
}

// Program is the root of the tree: the source-ordered statement list
// of a whole compilation unit.
type Program struct {
	Statements []Statement
	source.Location
}

func (p *Program) INode()                {}
func (p *Program) Loc() *source.Location { return &p.Location }
