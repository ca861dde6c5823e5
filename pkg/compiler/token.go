package compiler

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF     TokenType = iota // sentinel: end of input, never stored in a stream
	ILLEGAL                  // text the scanner could not classify

	// Literals
	IDENTIFIER    // variable / function name
	CONST_INT     // 42
	CONST_FLOAT   // 1.5, .5, 1., 2e10
	CONST_BOOLEAN // true, false
	CONST_STRING  // "..."

	// Keywords
	KW_IF     // "if"
	KW_ELSE   // "else"
	KW_WHILE  // "while"
	KW_FOR    // "for"
	KW_DO     // "do"
	KW_RETURN // "return"
	KW_PRINTF // "printf"
	KW_VOID   // "void"
	KW_BOOL   // "bool"
	KW_INT    // "int"
	KW_FLOAT  // "float"

	// Paired delimiters
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }

	// Punctuation
	SEMICOLON // ;
	COMMA     // ,
	ASSIGN    // =

	// Arithmetic and boolean operators
	PLUS  // +
	MINUS // -
	STAR  // *
	SLASH // /
	AND   // &&
	OR    // ||

	// Relational operators
	EQUALS     // ==
	NOT_EQ     // !=
	LESS_EQ    // <=
	GREATER_EQ // >=
	LESS       // <
	GREATER    // >
)

var tokenNames = [...]string{
	EOF:           "EOF",
	ILLEGAL:       "ILLEGAL",
	IDENTIFIER:    "IDENTIFIER",
	CONST_INT:     "CONST_INT",
	CONST_FLOAT:   "CONST_FLOAT",
	CONST_BOOLEAN: "CONST_BOOLEAN",
	CONST_STRING:  "CONST_STRING",
	KW_IF:         "KW_IF",
	KW_ELSE:       "KW_ELSE",
	KW_WHILE:      "KW_WHILE",
	KW_FOR:        "KW_FOR",
	KW_DO:         "KW_DO",
	KW_RETURN:     "KW_RETURN",
	KW_PRINTF:     "KW_PRINTF",
	KW_VOID:       "KW_VOID",
	KW_BOOL:       "KW_BOOL",
	KW_INT:        "KW_INT",
	KW_FLOAT:      "KW_FLOAT",
	LPAREN:        "LPAREN",
	RPAREN:        "RPAREN",
	LBRACE:        "LBRACE",
	RBRACE:        "RBRACE",
	SEMICOLON:     "SEMICOLON",
	COMMA:         "COMMA",
	ASSIGN:        "ASSIGN",
	PLUS:          "PLUS",
	MINUS:         "MINUS",
	STAR:          "STAR",
	SLASH:         "SLASH",
	AND:           "AND",
	OR:            "OR",
	EQUALS:        "EQUALS",
	NOT_EQ:        "NOT_EQ",
	LESS_EQ:       "LESS_EQ",
	GREATER_EQ:    "GREATER_EQ",
	LESS:          "LESS",
	GREATER:       "GREATER",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// in reports whether tt is one of set.
func (tt TokenType) in(set []TokenType) bool {
	for _, t := range set {
		if t == tt {
			return true
		}
	}
	return false
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Line   int    // 1-based source line
}

func (t Token) String() string {
	return fmt.Sprintf("%-13s %-14q  line %d", t.Type, t.Lexeme, t.Line)
}
