package ast

import "mini/internal/source"

// BinaryExpr represents a binary operation. Op holds the operator
// lexeme exactly as written ("+", "and", "&&", ...), always one of the
// grammar's fixed operator set - the parser is the only producer.
// Left-associative chains are left-deep: 1-2-3 is (1-2)-3.
type BinaryExpr struct {
	Op string
	X  Expression
	Y  Expression
	source.Location
}

func (b *BinaryExpr) INode()                {}
func (b *BinaryExpr) Expr()                 {}
func (b *BinaryExpr) Loc() *source.Location { return &b.Location }

// UnaryExpr represents a prefix operation: "-", "+", "not" or "!".
type UnaryExpr struct {
	Op string
	X  Expression
	source.Location
}

func (u *UnaryExpr) INode()                {}
func (u *UnaryExpr) Expr()                 {}
func (u *UnaryExpr) Loc() *source.Location { return &u.Location }

// IdentifierExpr represents a variable reference
type IdentifierExpr struct {
	Name string
	source.Location
}

func (i *IdentifierExpr) INode()                {}
func (i *IdentifierExpr) Expr()                 {}
func (i *IdentifierExpr) Loc() *source.Location { return &i.Location }

// NumberLit represents a numeric literal. IsFloat distinguishes 3.0
// from 3; Value holds the parsed number either way.
type NumberLit struct {
	Value   float64
	IsFloat bool
	source.Location
}

func (n *NumberLit) INode()                {}
func (n *NumberLit) Expr()                 {}
func (n *NumberLit) Loc() *source.Location { return &n.Location }

// StringLit represents a string literal with escapes already resolved
type StringLit struct {
	Value string
	source.Location
}

func (s *StringLit) INode()                {}
func (s *StringLit) Expr()                 {}
func (s *StringLit) Loc() *source.Location { return &s.Location }

// BoolLit represents true or false
type BoolLit struct {
	Value bool
	source.Location
}

func (b *BoolLit) INode()                {}
func (b *BoolLit) Expr()                 {}
func (b *BoolLit) Loc() *source.Location { return &b.Location }
