package server

import (
	"io"
	"net/http"
	"strings"

	"c1check/internal/apperr"
	"c1check/pkg/compiler"

	"github.com/labstack/echo/v4"
)

type ValidateRequest struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

type ValidateResponse struct {
	Name   string `json:"name,omitempty"`
	Valid  bool   `json:"valid"`
	Tokens int    `json:"tokens"`
}

type TokenDTO struct {
	Type   string `json:"type"`
	Lexeme string `json:"lexeme"`
	Line   int    `json:"line"`
}

// readSource accepts either a JSON ValidateRequest or a raw text body.
func readSource(c echo.Context) (ValidateRequest, error) {
	var req ValidateRequest
	ctype := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
		if err := c.Bind(&req); err != nil {
			return req, apperr.NewValidationWrap("invalid request body", err)
		}
		if req.Source == "" {
			return req, apperr.NewValidation("source is required")
		}
		return req, nil
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return req, err
	}
	req.Name = c.QueryParam("name")
	req.Source = string(body)
	return req, nil
}

func validateHandler(c echo.Context) error {
	req, err := readSource(c)
	if err != nil {
		return err
	}

	res := compiler.Check(req.Name, req.Source)
	if !res.Valid {
		return &apperr.NamedSyntaxError{Name: req.Name, Err: res.Err}
	}
	return c.JSON(http.StatusOK, ValidateResponse{
		Name:   req.Name,
		Valid:  true,
		Tokens: res.Tokens,
	})
}

func tokensHandler(c echo.Context) error {
	req, err := readSource(c)
	if err != nil {
		return err
	}

	tokens := compiler.Lex(req.Source)
	out := make([]TokenDTO, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, TokenDTO{Type: tok.Type.String(), Lexeme: tok.Lexeme, Line: tok.Line})
	}
	return c.JSON(http.StatusOK, out)
}
