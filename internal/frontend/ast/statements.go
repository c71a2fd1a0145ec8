package ast

import "mini/internal/source"

// DeclStmt represents a variable declaration: Type ID ('=' Expr)? ';'
// Init is nil when the declaration has no initializer.
type DeclStmt struct {
	TypeName string // int, float, bool or string
	Name     string
	Init     Expression
	source.Location
}

func (d *DeclStmt) INode()                {}
func (d *DeclStmt) Stmt()                 {}
func (d *DeclStmt) Loc() *source.Location { return &d.Location }

// AssignStmt represents an assignment: ID '=' Expr ';'
type AssignStmt struct {
	Name  string
	Value Expression
	source.Location
}

func (a *AssignStmt) INode()                {}
func (a *AssignStmt) Stmt()                 {}
func (a *AssignStmt) Loc() *source.Location { return &a.Location }

// IfStmt represents: 'if' Expr 'then' StmtList ('else' StmtList)? 'end'
// Else is nil when the else branch is absent (as opposed to present but
// empty, which is a non-nil empty slice).
type IfStmt struct {
	Cond Expression
	Then []Statement
	Else []Statement
	source.Location
}

func (i *IfStmt) INode()                {}
func (i *IfStmt) Stmt()                 {}
func (i *IfStmt) Loc() *source.Location { return &i.Location }

// WhileStmt represents: 'while' Expr 'do' StmtList 'end'
type WhileStmt struct {
	Cond Expression
	Body []Statement
	source.Location
}

func (w *WhileStmt) INode()                {}
func (w *WhileStmt) Stmt()                 {}
func (w *WhileStmt) Loc() *source.Location { return &w.Location }

// BlockStmt represents: 'begin' StmtList 'end'
type BlockStmt struct {
	Statements []Statement
	source.Location
}

func (b *BlockStmt) INode()                {}
func (b *BlockStmt) Stmt()                 {}
func (b *BlockStmt) Loc() *source.Location { return &b.Location }

// ExprStmt represents a bare expression used as a statement: Expr ';'
type ExprStmt struct {
	X Expression
	source.Location
}

func (e *ExprStmt) INode()                {}
func (e *ExprStmt) Stmt()                 {}
func (e *ExprStmt) Loc() *source.Location { return &e.Location }
