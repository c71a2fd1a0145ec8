package parser

import (
	"strconv"

	"mini/internal/diagnostics"
	"mini/internal/frontend/ast"
	"mini/internal/frontend/lexer"
	"mini/internal/source"
)

// Expression parsing, one function per precedence level (low to high):
//
//	LogicOr -> LogicAnd -> LogicNot -> Comparison -> ArithExpr -> Term -> Factor
//
// Binary levels parse one operand at the next-higher level, then fold
// matching operators left-to-right into a left-deep chain. A nil return
// means the sub-expression failed; the error is already recorded and
// the cursor already synchronized, so callers just propagate the nil.

// parseExpr parses an expression: Expr -> LogicOr
func (p *Parser) parseExpr() ast.Expression {
	return p.parseLogicOr()
}

// LogicOr -> LogicAnd (('or'|'||') LogicAnd)*
func (p *Parser) parseLogicOr() ast.Expression {
	left := p.parseLogicAnd()

	for left != nil && p.checkAny(lexer.OR_TOKEN, lexer.OR_OP_TOKEN) {
		op := p.advance()
		right := p.parseLogicAnd()
		if right == nil {
			return nil
		}
		left = &ast.BinaryExpr{
			Op:       op.Lexeme,
			X:        left,
			Y:        right,
			Location: *source.NewLocation(&op.Start, &op.End),
		}
	}

	return left
}

// LogicAnd -> LogicNot (('and'|'&&') LogicNot)*
func (p *Parser) parseLogicAnd() ast.Expression {
	left := p.parseLogicNot()

	for left != nil && p.checkAny(lexer.AND_TOKEN, lexer.AND_OP_TOKEN) {
		op := p.advance()
		right := p.parseLogicNot()
		if right == nil {
			return nil
		}
		left = &ast.BinaryExpr{
			Op:       op.Lexeme,
			X:        left,
			Y:        right,
			Location: *source.NewLocation(&op.Start, &op.End),
		}
	}

	return left
}

// LogicNot -> ('not'|'!') LogicNot | Comparison
//
// Right-recursive: 'not not x' nests naturally.
func (p *Parser) parseLogicNot() ast.Expression {
	if p.checkAny(lexer.NOT_TOKEN, lexer.NOT_OP_TOKEN) {
		op := p.advance()
		operand := p.parseLogicNot()
		if operand == nil {
			return nil
		}
		return &ast.UnaryExpr{
			Op:       op.Lexeme,
			X:        operand,
			Location: *source.NewLocation(&op.Start, &op.End),
		}
	}

	return p.parseComparison()
}

// Comparison -> ArithExpr (CompOp ArithExpr)?
//
// Deliberately non-chaining: at most one comparator is accepted, so
// 'a < b < c' is rejected at the second '<' by whatever rule follows.
// This mirrors the grammar exactly; do not turn it into a loop.
func (p *Parser) parseComparison() ast.Expression {
	left := p.parseArithExpr()
	if left == nil {
		return nil
	}

	if p.checkAny(lexer.DOUBLE_EQUAL_TOKEN, lexer.NOT_EQUAL_TOKEN, lexer.LESS_TOKEN,
		lexer.LESS_EQUAL_TOKEN, lexer.GREATER_TOKEN, lexer.GREATER_EQUAL_TOKEN) {
		op := p.advance()
		right := p.parseArithExpr()
		if right == nil {
			return nil
		}
		return &ast.BinaryExpr{
			Op:       op.Lexeme,
			X:        left,
			Y:        right,
			Location: *source.NewLocation(&op.Start, &op.End),
		}
	}

	return left
}

// ArithExpr -> Term (('+'|'-') Term)*
func (p *Parser) parseArithExpr() ast.Expression {
	left := p.parseTerm()

	for left != nil && p.checkAny(lexer.PLUS_TOKEN, lexer.MINUS_TOKEN) {
		op := p.advance()
		right := p.parseTerm()
		if right == nil {
			return nil
		}
		left = &ast.BinaryExpr{
			Op:       op.Lexeme,
			X:        left,
			Y:        right,
			Location: *source.NewLocation(&op.Start, &op.End),
		}
	}

	return left
}

// Term -> Factor (('*'|'/') Factor)*
func (p *Parser) parseTerm() ast.Expression {
	left := p.parseFactor()

	for left != nil && p.checkAny(lexer.MUL_TOKEN, lexer.DIV_TOKEN) {
		op := p.advance()
		right := p.parseFactor()
		if right == nil {
			return nil
		}
		left = &ast.BinaryExpr{
			Op:       op.Lexeme,
			X:        left,
			Y:        right,
			Location: *source.NewLocation(&op.Start, &op.End),
		}
	}

	return left
}

// Factor -> '(' Expr ')' | Number | String | Bool | ID | ('+'|'-') Factor
func (p *Parser) parseFactor() ast.Expression {
	tok := p.peek()

	switch tok.Kind {
	case lexer.OPEN_PAREN:
		p.advance()
		expr := p.parseExpr()
		if expr == nil {
			return nil
		}
		p.expect(lexer.CLOSE_PAREN)
		// Grouping produces no node of its own
		return expr

	case lexer.INT_TOKEN:
		p.advance()
		value, _ := strconv.ParseFloat(tok.Value, 64)
		return &ast.NumberLit{
			Value:    value,
			Location: *source.NewLocation(&tok.Start, &tok.End),
		}

	case lexer.FLOAT_TOKEN:
		p.advance()
		value, _ := strconv.ParseFloat(tok.Value, 64)
		return &ast.NumberLit{
			Value:    value,
			IsFloat:  true,
			Location: *source.NewLocation(&tok.Start, &tok.End),
		}

	case lexer.STRING_TOKEN:
		p.advance()
		return &ast.StringLit{
			Value:    tok.Value,
			Location: *source.NewLocation(&tok.Start, &tok.End),
		}

	case lexer.TRUE_TOKEN, lexer.FALSE_TOKEN:
		p.advance()
		return &ast.BoolLit{
			Value:    tok.Kind == lexer.TRUE_TOKEN,
			Location: *source.NewLocation(&tok.Start, &tok.End),
		}

	case lexer.IDENTIFIER_TOKEN:
		p.advance()
		return &ast.IdentifierExpr{
			Name:     tok.Lexeme,
			Location: *source.NewLocation(&tok.Start, &tok.End),
		}

	case lexer.PLUS_TOKEN, lexer.MINUS_TOKEN:
		op := p.advance()
		operand := p.parseFactor()
		if operand == nil {
			return nil
		}
		return &ast.UnaryExpr{
			Op:       op.Lexeme,
			X:        operand,
			Location: *source.NewLocation(&op.Start, &op.End),
		}

	default:
		p.error(diagnostics.UnexpectedToken(
			p.filepath, source.NewLocation(&tok.Start, &tok.End), "an expression", describe(tok)))
		p.synchronize()
		return nil
	}
}
