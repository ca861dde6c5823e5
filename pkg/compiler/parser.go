package compiler

// Parser walks a TokenStream top-down, one method per nonterminal of the C1
// grammar (see the package doc). It never backtracks: each decision commits
// on the current token plus at most one token of lookahead, and the first
// mismatch ends the parse.
type Parser struct {
	stream *TokenStream
}

// NewParser wraps stream. The parser owns the stream's cursor for the
// duration of the parse.
func NewParser(stream *TokenStream) *Parser {
	return &Parser{stream: stream}
}

// Parse lexes src and reports whether it is a syntactically valid C1 program.
// The returned error, if any, is a *SyntaxError.
func Parse(src string) error {
	return NewParser(NewTokenStream(Lex(src))).Program()
}

// FIRST sets used for production selection.
var (
	returnTypes   = []TokenType{KW_VOID, KW_BOOL, KW_INT, KW_FLOAT}
	statementKeys = []TokenType{KW_IF, KW_RETURN, KW_PRINTF, IDENTIFIER}

	assignmentFirst = []TokenType{IDENTIFIER, CONST_INT, CONST_FLOAT, CONST_BOOLEAN, LPAREN, MINUS}

	relationalOps     = []TokenType{EQUALS, NOT_EQ, LESS_EQ, GREATER_EQ, LESS, GREATER}
	additiveOps       = []TokenType{PLUS, MINUS, OR}
	multiplicativeOps = []TokenType{STAR, SLASH, AND}
)

// Token access, delegated to the stream.

func (p *Parser) current() (TokenType, bool) { return p.stream.Current() }
func (p *Parser) peek() (TokenType, bool)    { return p.stream.Peek() }
func (p *Parser) eat()                       { p.stream.Advance() }

// currentIs reports whether the token at the cursor has type tt.
func (p *Parser) currentIs(tt TokenType) bool {
	cur, ok := p.current()
	return ok && cur == tt
}

// peekIs reports whether the token after the cursor has type tt.
func (p *Parser) peekIs(tt TokenType) bool {
	next, ok := p.peek()
	return ok && next == tt
}

// currentIn reports whether the token at the cursor belongs to set.
func (p *Parser) currentIn(set []TokenType) bool {
	cur, ok := p.current()
	return ok && cur.in(set)
}

// expect consumes the current token if it has type tt, otherwise it fails
// with reason pointing at the current token.
func (p *Parser) expect(tt TokenType, reason string) error {
	if !p.currentIs(tt) {
		return p.errorAtCurrent(reason)
	}
	p.eat()
	return nil
}

// eatAny consumes the current token if it belongs to set and reports whether
// it did.
func (p *Parser) eatAny(set []TokenType) bool {
	if !p.currentIn(set) {
		return false
	}
	p.eat()
	return true
}

func (p *Parser) errorAtCurrent(reason string) *SyntaxError {
	line, ok := p.stream.CurrentLine()
	if !ok {
		return &SyntaxError{Reason: reason, AtEOF: true}
	}
	text, _ := p.stream.CurrentText()
	return &SyntaxError{Reason: reason, Line: line, Text: text}
}

func (p *Parser) errorAtPeek(reason string) *SyntaxError {
	line, ok := p.stream.PeekLine()
	if !ok {
		return &SyntaxError{Reason: reason, AtEOF: true}
	}
	text, _ := p.stream.PeekText()
	return &SyntaxError{Reason: reason, Line: line, Text: text}
}

// Program parses  ( function_definition )* EOF
func (p *Parser) Program() error {
	for {
		if _, ok := p.current(); !ok {
			return nil
		}
		if err := p.functionDefinition(); err != nil {
			return err
		}
	}
}

// functionDefinition parses  return_type ID "(" ")" "{" statement_list "}"
func (p *Parser) functionDefinition() error {
	if err := p.returnType(); err != nil {
		return err
	}
	if err := p.identifier(); err != nil {
		return err
	}
	if err := p.expect(LPAREN, "Expected '(' after function name"); err != nil {
		return err
	}
	if err := p.expect(RPAREN, "Expected ')' after '(' of function definition"); err != nil {
		return err
	}
	if err := p.expect(LBRACE, "Expected '{' before function body"); err != nil {
		return err
	}
	if err := p.statementList(); err != nil {
		return err
	}
	return p.expect(RBRACE, "Expected '}' after function body")
}

// returnType parses  "void" | "bool" | "int" | "float"
func (p *Parser) returnType() error {
	if _, ok := p.current(); !ok {
		return p.errorAtCurrent("Expected a return type")
	}
	if !p.eatAny(returnTypes) {
		return p.errorAtCurrent("Invalid return type")
	}
	return nil
}

func (p *Parser) identifier() error {
	if _, ok := p.current(); !ok {
		return p.errorAtCurrent("Expected an identifier")
	}
	if !p.currentIs(IDENTIFIER) {
		return p.errorAtCurrent("Invalid identifier")
	}
	p.eat()
	return nil
}

// block parses  "{" statement_list "}" | statement
func (p *Parser) block() error {
	if p.currentIs(LBRACE) {
		return p.bracedStatementList()
	}
	return p.statement()
}

// bracedStatementList parses  "{" statement_list "}"
// The closing brace belongs to this rule, not to statementList.
func (p *Parser) bracedStatementList() error {
	if err := p.expect(LBRACE, "Expected '{' before statement list"); err != nil {
		return err
	}
	if err := p.statementList(); err != nil {
		return err
	}
	return p.expect(RBRACE, "Expected '}' after statement list")
}

// statementList parses  ( block )*
// It continues while the current token can start a block and stops on "}"
// or end of input; whoever opened the list must consume the closing brace.
func (p *Parser) statementList() error {
	for {
		cur, ok := p.current()
		switch {
		case !ok || cur == RBRACE:
			return nil
		case cur.in(statementKeys):
			if err := p.block(); err != nil {
				return err
			}
		case cur == LBRACE:
			if err := p.bracedStatementList(); err != nil {
				return err
			}
		default:
			return p.errorAtCurrent("Invalid statement list")
		}
	}
}

// statement parses
//
//	if_statement
//	| "return" ( assignment )? ";"
//	| "printf" "(" assignment ")" ";"
//	| stat_assignment ";"
//	| function_call ";"
//
// Every statement but if_statement is terminated by ";".
func (p *Parser) statement() error {
	cur, ok := p.current()
	if !ok {
		return p.errorAtCurrent("Expected a statement")
	}

	var err error
	switch cur {
	case KW_IF:
		// if_statement ends in a block, which carries its own terminator
		return p.ifStatement()
	case KW_RETURN:
		err = p.returnStatement()
	case KW_PRINTF:
		err = p.printf()
	case IDENTIFIER:
		switch {
		case p.peekIs(ASSIGN):
			err = p.statAssignment()
		case p.peekIs(LPAREN):
			err = p.functionCall()
		default:
			return p.errorAtPeek("Invalid statement after identifier, expected an assignment or a function call")
		}
	default:
		return p.errorAtCurrent("Invalid statement")
	}
	if err != nil {
		return err
	}
	return p.expect(SEMICOLON, "Expected ';' after statement")
}

// ifStatement parses  "if" "(" assignment ")" block
func (p *Parser) ifStatement() error {
	if err := p.expect(KW_IF, "Expected an if statement"); err != nil {
		return err
	}
	if err := p.parenthesizedAssignment(); err != nil {
		return err
	}
	return p.block()
}

// returnStatement parses  "return" ( assignment )?
// The value is optional; it is parsed only if the current token can start one.
func (p *Parser) returnStatement() error {
	if err := p.expect(KW_RETURN, "Expected a return statement"); err != nil {
		return err
	}
	if p.currentIn(assignmentFirst) {
		return p.assignment()
	}
	return nil
}

// printf parses  "printf" "(" assignment ")"
func (p *Parser) printf() error {
	if err := p.expect(KW_PRINTF, "Expected a printf statement"); err != nil {
		return err
	}
	return p.parenthesizedAssignment()
}

// statAssignment parses  ID "=" assignment
func (p *Parser) statAssignment() error {
	if err := p.identifier(); err != nil {
		return err
	}
	if err := p.expect(ASSIGN, "Expected '=' in assignment"); err != nil {
		return err
	}
	return p.assignment()
}

// functionCall parses  ID "(" ")"
func (p *Parser) functionCall() error {
	if err := p.identifier(); err != nil {
		return err
	}
	if err := p.expect(LPAREN, "Expected '(' after function name"); err != nil {
		return err
	}
	return p.expect(RPAREN, "Expected ')' in function call")
}

// assignment parses  ( ID "=" assignment ) | expr
// Chained assignments recurse, so a = b = c groups to the right.
func (p *Parser) assignment() error {
	if p.currentIs(IDENTIFIER) && p.peekIs(ASSIGN) {
		return p.statAssignment()
	}
	return p.expr()
}

// parenthesizedAssignment parses  "(" assignment ")"
func (p *Parser) parenthesizedAssignment() error {
	if err := p.expect(LPAREN, "Expected '('"); err != nil {
		return err
	}
	if err := p.assignment(); err != nil {
		return err
	}
	return p.expect(RPAREN, "Expected ')'")
}

// expr parses  simp_expr ( relop simp_expr )?
// At most one relational operator is allowed: a < b < c is rejected.
func (p *Parser) expr() error {
	if err := p.simpExpr(); err != nil {
		return err
	}
	if p.eatAny(relationalOps) {
		return p.simpExpr()
	}
	return nil
}

// simpExpr parses  ( "-" )? term ( ( "+" | "-" | "||" ) term )*
func (p *Parser) simpExpr() error {
	if p.currentIs(MINUS) {
		p.eat()
	}
	if err := p.term(); err != nil {
		return err
	}
	for p.eatAny(additiveOps) {
		if err := p.term(); err != nil {
			return err
		}
	}
	return nil
}

// term parses  factor ( ( "*" | "/" | "&&" ) factor )*
func (p *Parser) term() error {
	if err := p.factor(); err != nil {
		return err
	}
	for p.eatAny(multiplicativeOps) {
		if err := p.factor(); err != nil {
			return err
		}
	}
	return nil
}

// factor parses
//
//	CONST_INT | CONST_FLOAT | CONST_BOOLEAN
//	| function_call | ID | "(" assignment ")"
func (p *Parser) factor() error {
	cur, ok := p.current()
	if !ok {
		return p.errorAtCurrent("Expected a factor")
	}
	switch cur {
	case CONST_INT, CONST_FLOAT, CONST_BOOLEAN:
		p.eat()
		return nil
	case LPAREN:
		return p.parenthesizedAssignment()
	case IDENTIFIER:
		if p.peekIs(LPAREN) {
			return p.functionCall()
		}
		p.eat()
		return nil
	default:
		return p.errorAtCurrent("Invalid factor")
	}
}
