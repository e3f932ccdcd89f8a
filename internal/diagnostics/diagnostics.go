package diagnostics

import (
	"fmt"

	"github.com/Ondrekk12/pyright/internal/token"
)

type ErrorCode string

// Lexer error codes
const (
	ErrL001 ErrorCode = "L001" // unexpected character
	ErrL002 ErrorCode = "L002" // incomplete ellipsis
)

// Parser error codes
const (
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // unknown type name
	ErrP003 ErrorCode = "P003" // malformed type expression
	ErrP004 ErrorCode = "P004" // malformed parameter
	ErrP005 ErrorCode = "P005" // misused unpack operator
)

// DiagnosticError is a positioned error with a stable code.
type DiagnosticError struct {
	Code    ErrorCode
	Message string
	File    string
	Line    int
	Column  int
}

func NewError(code ErrorCode, tok token.Token, message string) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		Message: message,
		Line:    tok.Line,
		Column:  tok.Column,
	}
}

func (e *DiagnosticError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.File, e.Line, e.Column, e.Code, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s: %s", e.Line, e.Column, e.Code, e.Message)
}
