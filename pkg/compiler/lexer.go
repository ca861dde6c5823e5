package compiler

import "unicode"

// keywords maps source text to its keyword TokenType.
var keywords = map[string]TokenType{
	"if":     KW_IF,
	"else":   KW_ELSE,
	"while":  KW_WHILE,
	"for":    KW_FOR,
	"do":     KW_DO,
	"return": KW_RETURN,
	"printf": KW_PRINTF,
	"void":   KW_VOID,
	"bool":   KW_BOOL,
	"int":    KW_INT,
	"float":  KW_FLOAT,
	"true":   CONST_BOOLEAN,
	"false":  CONST_BOOLEAN,
}

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src  []rune
	pos  int // index of the next rune to consume
	line int // current 1-based source line
}

func newLexer(src string) *Lexer {
	return &Lexer{src: []rune(src), pos: 0, line: 1}
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// peek2 returns the rune one position ahead of the current position.
func (l *Lexer) peek2() rune {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

// advance consumes one rune and returns it.
func (l *Lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
	}
	return r
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() && unicode.IsSpace(l.peek()) {
		l.advance()
	}
}

// skipLineComment discards everything from the current position to end-of-line.
// The opening "//" must already have been consumed.
func (l *Lexer) skipLineComment() {
	for !l.atEnd() && l.peek() != '\n' {
		l.advance()
	}
}

// skipBlockComment discards everything up to and including the closing "*/".
// The opening "/*" must already have been consumed. It reports false when the
// input ends first.
func (l *Lexer) skipBlockComment() bool {
	for !l.atEnd() {
		if l.peek() == '*' && l.peek2() == '/' {
			l.advance() // *
			l.advance() // /
			return true
		}
		l.advance()
	}
	return false
}

func isIdentStart(r rune) bool {
	return r == '_' || (r < unicode.MaxASCII && unicode.IsLetter(r))
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// scanIdent collects a full identifier, keyword or boolean constant.
// The first character must still be at l.peek().
func (l *Lexer) scanIdent() Token {
	line := l.line
	start := l.pos
	for !l.atEnd() && isIdentPart(l.peek()) {
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	tt := IDENTIFIER
	if kw, ok := keywords[lexeme]; ok {
		tt = kw
	}
	return Token{Type: tt, Lexeme: lexeme, Line: line}
}

func (l *Lexer) skipDigits() {
	for !l.atEnd() && isDigit(l.peek()) {
		l.advance()
	}
}

// scanExponent consumes an [eE][+-]?digits suffix if one is present and
// reports whether it did.
func (l *Lexer) scanExponent() bool {
	if l.peek() != 'e' && l.peek() != 'E' {
		return false
	}
	next := l.peek2()
	if isDigit(next) {
		l.advance() // e
		l.skipDigits()
		return true
	}
	if (next == '+' || next == '-') && l.pos+2 < len(l.src) && isDigit(l.src[l.pos+2]) {
		l.advance() // e
		l.advance() // sign
		l.skipDigits()
		return true
	}
	return false
}

// scanNumber collects an integer or float literal. The current rune is either
// a digit or a '.' followed by a digit.
//
//	12      CONST_INT
//	1.5     CONST_FLOAT
//	.5  1.  CONST_FLOAT
//	2e10    CONST_FLOAT
func (l *Lexer) scanNumber() Token {
	line := l.line
	start := l.pos
	isFloat := false

	l.skipDigits()
	if l.peek() == '.' {
		l.advance()
		l.skipDigits()
		isFloat = true
	}
	if l.scanExponent() {
		isFloat = true
	}

	tt := CONST_INT
	if isFloat {
		tt = CONST_FLOAT
	}
	return Token{Type: tt, Lexeme: string(l.src[start:l.pos]), Line: line}
}

// scanString collects a string literal "...". A newline or end of input
// before the closing quote yields an ILLEGAL token holding the partial text.
func (l *Lexer) scanString() Token {
	line := l.line
	start := l.pos
	l.advance() // opening "
	for !l.atEnd() {
		r := l.peek()
		if r == '\n' {
			break
		}
		l.advance()
		if r == '"' {
			return Token{Type: CONST_STRING, Lexeme: string(l.src[start:l.pos]), Line: line}
		}
	}
	return Token{Type: ILLEGAL, Lexeme: string(l.src[start:l.pos]), Line: line}
}

// nextToken skips whitespace/comments and returns the next Token.
// ok is false once the input is exhausted.
func (l *Lexer) nextToken() (tok Token, ok bool) {
	for {
		l.skipWhitespace()
		if l.atEnd() {
			return Token{}, false
		}
		if l.peek() == '/' && l.peek2() == '/' {
			l.advance()
			l.advance()
			l.skipLineComment()
			continue
		}
		if l.peek() == '/' && l.peek2() == '*' {
			line := l.line
			l.advance()
			l.advance()
			if !l.skipBlockComment() {
				return Token{ILLEGAL, "/*", line}, true
			}
			continue
		}
		break
	}

	ch := l.peek()
	line := l.line

	if isIdentStart(ch) {
		return l.scanIdent(), true
	}
	if isDigit(ch) || (ch == '.' && isDigit(l.peek2())) {
		return l.scanNumber(), true
	}
	if ch == '"' {
		return l.scanString(), true
	}

	l.advance() // consume the character before the switch
	switch ch {
	case '{':
		return Token{LBRACE, "{", line}, true
	case '}':
		return Token{RBRACE, "}", line}, true
	case '(':
		return Token{LPAREN, "(", line}, true
	case ')':
		return Token{RPAREN, ")", line}, true
	case ';':
		return Token{SEMICOLON, ";", line}, true
	case ',':
		return Token{COMMA, ",", line}, true
	case '+':
		return Token{PLUS, "+", line}, true
	case '-':
		return Token{MINUS, "-", line}, true
	case '*':
		return Token{STAR, "*", line}, true
	case '/':
		return Token{SLASH, "/", line}, true
	case '&':
		if l.peek() == '&' {
			l.advance()
			return Token{AND, "&&", line}, true
		}
	case '|':
		if l.peek() == '|' {
			l.advance()
			return Token{OR, "||", line}, true
		}
	case '!':
		if l.peek() == '=' {
			l.advance()
			return Token{NOT_EQ, "!=", line}, true
		}
	case '<':
		if l.peek() == '=' {
			l.advance()
			return Token{LESS_EQ, "<=", line}, true
		}
		return Token{LESS, "<", line}, true
	case '>':
		if l.peek() == '=' {
			l.advance()
			return Token{GREATER_EQ, ">=", line}, true
		}
		return Token{GREATER, ">", line}, true
	case '=':
		if l.peek() == '=' { // lookahead: distinguish = vs ==
			l.advance()
			return Token{EQUALS, "==", line}, true
		}
		return Token{ASSIGN, "=", line}, true
	}
	return Token{ILLEGAL, string(ch), line}, true
}

// Lex tokenises src and returns every token in source order. No EOF token is
// appended: the end of the slice is the end of input. Lex never fails;
// unrecognised text is returned as ILLEGAL tokens for the parser to reject.
func Lex(src string) []Token {
	l := newLexer(src)
	var tokens []Token
	for {
		tok, ok := l.nextToken()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}
