package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"c1check/pkg/compiler"

	"github.com/labstack/echo/v4"
)

// SyntaxErrorBody is the response for a rejected program.
type SyntaxErrorBody struct {
	Name  string `json:"name,omitempty"`
	Valid bool   `json:"valid"`
	Error string `json:"error"`
	Line  int    `json:"line,omitempty"`
	Text  string `json:"text,omitempty"`
	EOF   bool   `json:"eof"`
}

// NamedSyntaxError attaches the name of the checked unit to a SyntaxError so
// the error handler can echo it back.
type NamedSyntaxError struct {
	Name string
	Err  *compiler.SyntaxError
}

func (e *NamedSyntaxError) Error() string {
	return e.Name + ": " + e.Err.Error()
}

func (e *NamedSyntaxError) Unwrap() error {
	return e.Err
}

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var se *compiler.SyntaxError
		if errors.As(err, &se) {
			body := SyntaxErrorBody{
				Valid: false,
				Error: se.Error(),
				Line:  se.Line,
				Text:  se.Text,
				EOF:   se.AtEOF,
			}
			var named *NamedSyntaxError
			if errors.As(err, &named) {
				body.Name = named.Name
			}
			_ = c.JSON(http.StatusUnprocessableEntity, body)
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Message, "title": "validation error"})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
