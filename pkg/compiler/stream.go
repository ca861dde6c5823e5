package compiler

// TokenStream is a forward-only cursor over a lexed token slice. It exposes
// the current token and one token of lookahead; once Advance moves past a
// token it is never revisited.
type TokenStream struct {
	tokens []Token
	pos    int
}

// NewTokenStream positions a cursor on the first of tokens.
func NewTokenStream(tokens []Token) *TokenStream {
	return &TokenStream{tokens: tokens}
}

func (s *TokenStream) at(offset int) (Token, bool) {
	if s.pos+offset >= len(s.tokens) {
		return Token{Type: EOF}, false
	}
	return s.tokens[s.pos+offset], true
}

// Current returns the type of the token at the cursor. ok is false at end of input.
func (s *TokenStream) Current() (TokenType, bool) {
	tok, ok := s.at(0)
	return tok.Type, ok
}

// Peek returns the type of the token right after the cursor.
func (s *TokenStream) Peek() (TokenType, bool) {
	tok, ok := s.at(1)
	return tok.Type, ok
}

func (s *TokenStream) CurrentLine() (int, bool) {
	tok, ok := s.at(0)
	return tok.Line, ok
}

func (s *TokenStream) CurrentText() (string, bool) {
	tok, ok := s.at(0)
	return tok.Lexeme, ok
}

func (s *TokenStream) PeekLine() (int, bool) {
	tok, ok := s.at(1)
	return tok.Line, ok
}

func (s *TokenStream) PeekText() (string, bool) {
	tok, ok := s.at(1)
	return tok.Lexeme, ok
}

// Advance moves the cursor forward by one token. It is a no-op at end of input.
func (s *TokenStream) Advance() {
	if s.pos < len(s.tokens) {
		s.pos++
	}
}

// Consumed returns the number of tokens the cursor has moved past.
func (s *TokenStream) Consumed() int {
	return s.pos
}

// Len returns the total number of tokens in the stream.
func (s *TokenStream) Len() int {
	return len(s.tokens)
}
