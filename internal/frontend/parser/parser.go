package parser

import (
	"fmt"

	"mini/internal/diagnostics"
	"mini/internal/frontend/ast"
	"mini/internal/frontend/lexer"
	"mini/internal/source"
)

// ============================================================================
// PARSER - Token to AST Conversion
// ============================================================================
//
// The Parser builds an AST from a token stream by recursive descent:
// one parse function per grammar rule, a single cursor, and exactly one
// token of lookahead (peekNext, used only to tell an assignment from an
// expression statement).
//
// Errors never stop a run. An unexpected token is recorded in the bag
// and the parser synchronizes to the next statement boundary, so one
// pass reports every independent defect. The statement-sequence loop
// additionally enforces that every iteration advances the cursor; an
// iteration that fails to advance raises a fatal diagnostic and aborts
// the sequence, which bounds the whole parse by the token count.

// Parser holds temporary state during parsing of a single file.
// This is created on-the-fly, not stored persistently.
type Parser struct {
	tokens   []lexer.Token
	current  int
	bag      *diagnostics.Bag
	filepath string

	// panicking suppresses cascaded reports between an error and the
	// next synchronization point. It stays set when synchronize runs
	// off the end of the input, where no boundary exists.
	panicking bool
}

// Parse builds a Program from the token sequence, reporting syntax
// errors to the bag. The returned tree is best-effort: complete for
// valid input, partial past any recovered error.
func Parse(tokens []lexer.Token, filepath string, bag *diagnostics.Bag) *ast.Program {
	p := &Parser{
		tokens:   tokens,
		bag:      bag,
		filepath: filepath,
	}
	return p.parseProgram()
}

func (p *Parser) parseProgram() *ast.Program {
	start := source.Position{Line: 1, Column: 1}
	statements := p.parseStmtList()

	return &ast.Program{
		Statements: statements,
		Location:   p.makeLocation(start),
	}
}

// parseStmtList parses statements until the current token is one of
// the sequence's terminators or end of input. The terminators are left
// unconsumed for the caller.
//
// Every iteration must advance the cursor. If an attempt (including
// its recovery) leaves the cursor where it started there is nothing to
// synchronize on, and retrying would loop forever; a fatal diagnostic
// is recorded and the sequence aborts.
func (p *Parser) parseStmtList(terminators ...lexer.TOKEN) []ast.Statement {
	statements := make([]ast.Statement, 0)

	for !p.isAtEnd() && !p.checkAny(terminators...) {
		before := p.current

		stmt := p.parseStmt()
		if p.panicking {
			p.synchronize()
		}
		if stmt != nil {
			statements = append(statements, stmt)
		}

		if p.current == before {
			tok := p.peek()
			p.bag.Add(diagnostics.ParserStalled(
				p.filepath, source.NewLocation(&tok.Start, &tok.End), describe(tok)))
			break
		}
	}

	return statements
}

// parseStmt dispatches on the current token's kind
func (p *Parser) parseStmt() ast.Statement {
	tok := p.peek()
	switch {
	case tok.IsTypeKeyword():
		return p.parseDeclStmt()
	case tok.Kind == lexer.IF_TOKEN:
		return p.parseIfStmt()
	case tok.Kind == lexer.WHILE_TOKEN:
		return p.parseWhileStmt()
	case tok.Kind == lexer.BEGIN_TOKEN:
		return p.parseBlockStmt()
	case tok.Kind == lexer.IDENTIFIER_TOKEN && p.peekNext().Kind == lexer.EQUALS_TOKEN:
		return p.parseAssignStmt()
	default:
		return p.parseExprStmt()
	}
}

// parseDeclStmt: Type ID ('=' Expr)? ';'
func (p *Parser) parseDeclStmt() ast.Statement {
	typeTok := p.advance()

	if !p.check(lexer.IDENTIFIER_TOKEN) {
		tok := p.peek()
		p.error(diagnostics.MissingIdentifier(
			p.filepath, source.NewLocation(&tok.Start, &tok.End), describe(tok)))
		return nil
	}
	nameTok := p.advance()

	var init ast.Expression
	if p.match(lexer.EQUALS_TOKEN) {
		init = p.parseExpr()
		if init == nil {
			return nil
		}
	}

	p.expect(lexer.SEMICOLON_TOKEN)

	return &ast.DeclStmt{
		TypeName: typeTok.Lexeme,
		Name:     nameTok.Lexeme,
		Init:     init,
		Location: p.makeLocation(typeTok.Start),
	}
}

// parseAssignStmt: ID '=' Expr ';'
func (p *Parser) parseAssignStmt() ast.Statement {
	nameTok := p.advance()
	p.expect(lexer.EQUALS_TOKEN)

	value := p.parseExpr()
	if value == nil {
		return nil
	}

	p.expect(lexer.SEMICOLON_TOKEN)

	return &ast.AssignStmt{
		Name:     nameTok.Lexeme,
		Value:    value,
		Location: p.makeLocation(nameTok.Start),
	}
}

// parseIfStmt: 'if' Expr 'then' StmtList ('else' StmtList)? 'end'
func (p *Parser) parseIfStmt() ast.Statement {
	ifTok := p.advance()

	cond := p.parseExpr()
	p.expect(lexer.THEN_TOKEN)

	thenBranch := p.parseStmtList(lexer.ELSE_TOKEN, lexer.END_TOKEN)

	var elseBranch []ast.Statement
	if p.match(lexer.ELSE_TOKEN) {
		elseBranch = p.parseStmtList(lexer.END_TOKEN)
	}

	p.expect(lexer.END_TOKEN)

	return &ast.IfStmt{
		Cond:     cond,
		Then:     thenBranch,
		Else:     elseBranch,
		Location: p.makeLocation(ifTok.Start),
	}
}

// parseWhileStmt: 'while' Expr 'do' StmtList 'end'
func (p *Parser) parseWhileStmt() ast.Statement {
	whileTok := p.advance()

	cond := p.parseExpr()
	p.expect(lexer.DO_TOKEN)

	body := p.parseStmtList(lexer.END_TOKEN)

	p.expect(lexer.END_TOKEN)

	return &ast.WhileStmt{
		Cond:     cond,
		Body:     body,
		Location: p.makeLocation(whileTok.Start),
	}
}

// parseBlockStmt: 'begin' StmtList 'end'
func (p *Parser) parseBlockStmt() ast.Statement {
	beginTok := p.advance()

	statements := p.parseStmtList(lexer.END_TOKEN)

	p.expect(lexer.END_TOKEN)

	return &ast.BlockStmt{
		Statements: statements,
		Location:   p.makeLocation(beginTok.Start),
	}
}

// parseExprStmt: Expr ';'
func (p *Parser) parseExprStmt() ast.Statement {
	start := p.peek().Start

	expr := p.parseExpr()
	if expr == nil {
		return nil
	}

	p.expect(lexer.SEMICOLON_TOKEN)

	return &ast.ExprStmt{
		X:        expr,
		Location: p.makeLocation(start),
	}
}

// synchronize discards tokens until a statement boundary: a ';' is
// consumed (it terminates the broken statement), 'end' and 'else' are
// left for the enclosing sequence. At end of input there is no boundary
// and the panicking flag stays set so trailing expectations don't pile
// up additional reports.
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		switch p.peek().Kind {
		case lexer.SEMICOLON_TOKEN:
			p.advance()
			p.panicking = false
			return
		case lexer.END_TOKEN, lexer.ELSE_TOKEN:
			p.panicking = false
			return
		}
		p.advance()
	}
}

// Helper methods

func (p *Parser) isAtEnd() bool {
	if p.current >= len(p.tokens) {
		return true
	}
	return p.tokens[p.current].Kind == lexer.EOF_TOKEN
}

func (p *Parser) peek() lexer.Token {
	if p.current >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current]
}

func (p *Parser) peekNext() lexer.Token {
	if p.current+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current+1]
}

func (p *Parser) previous() lexer.Token {
	if p.current == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.current-1]
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind lexer.TOKEN) bool {
	if p.isAtEnd() {
		return kind == lexer.EOF_TOKEN
	}
	return p.peek().Kind == kind
}

func (p *Parser) checkAny(kinds ...lexer.TOKEN) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			return true
		}
	}
	return false
}

func (p *Parser) match(kinds ...lexer.TOKEN) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes the current token if it has the given kind. Otherwise
// it reports the missing token and synchronizes; the rule keeps going
// from the boundary, so a single missing keyword costs one diagnostic,
// not a cascade.
func (p *Parser) expect(kind lexer.TOKEN) lexer.Token {
	if p.check(kind) {
		return p.advance()
	}

	tok := p.peek()
	p.error(diagnostics.ExpectedToken(
		p.filepath, source.NewLocation(&tok.Start, &tok.End), kind.String(), describe(tok)))
	p.synchronize()
	return tok
}

// error records a diagnostic unless a previous one is still being
// recovered from, and puts the parser into panic mode.
func (p *Parser) error(diag *diagnostics.Diagnostic) {
	if !p.panicking {
		p.bag.Add(diag)
	}
	p.panicking = true
}

// makeLocation creates a source location spanning from start to the
// end of the last consumed token
func (p *Parser) makeLocation(start source.Position) source.Location {
	end := p.previous().End
	return *source.NewLocation(&start, &end)
}

// describe renders a token for an error message the way a reader saw
// it in the source.
func describe(tok lexer.Token) string {
	switch tok.Kind {
	case lexer.EOF_TOKEN:
		return "end of input"
	case lexer.IDENTIFIER_TOKEN:
		return fmt.Sprintf("identifier '%s'", tok.Lexeme)
	case lexer.INT_TOKEN, lexer.FLOAT_TOKEN:
		return fmt.Sprintf("number '%s'", tok.Lexeme)
	case lexer.STRING_TOKEN:
		return "string " + tok.Lexeme
	default:
		return "'" + tok.Lexeme + "'"
	}
}
