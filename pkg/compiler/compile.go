package compiler

import (
	"errors"
	"log/slog"
	"time"
)

// Result is the outcome of checking one named source unit.
type Result struct {
	Name    string
	Valid   bool
	Tokens  int
	Err     *SyntaxError
	Elapsed time.Duration
}

// Check lexes and parses src once. name is only used for logging and is
// copied into the Result.
func Check(name string, src string) Result {
	start := time.Now()

	tokens := Lex(src)
	err := NewParser(NewTokenStream(tokens)).Program()

	res := Result{
		Name:    name,
		Valid:   err == nil,
		Tokens:  len(tokens),
		Elapsed: time.Since(start),
	}
	if err != nil {
		var se *SyntaxError
		if errors.As(err, &se) {
			res.Err = se
		} else {
			res.Err = &SyntaxError{Reason: err.Error()}
		}
	}

	slog.Debug("checked source",
		"name", name,
		"valid", res.Valid,
		"tokens", res.Tokens,
		"elapsed", res.Elapsed,
	)
	return res
}
