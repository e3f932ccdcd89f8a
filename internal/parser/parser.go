package parser

import (
	"fmt"

	"github.com/Ondrekk12/pyright/internal/diagnostics"
	"github.com/Ondrekk12/pyright/internal/lexer"
	"github.com/Ondrekk12/pyright/internal/token"
	"github.com/Ondrekk12/pyright/internal/typesystem"
)

// Parser turns signature notation into a typesystem.Signature.
type Parser struct {
	tokens []token.Token
	pos    int

	curToken  token.Token
	peekToken token.Token

	env    *TypeEnv
	errors []*diagnostics.DiagnosticError
}

func New(tokens []token.Token, env *TypeEnv) *Parser {
	p := &Parser{tokens: tokens, env: env}
	// Prime curToken and peekToken.
	p.nextToken()
	p.nextToken()
	return p
}

// ParseSignature parses a full signature string. Convenience entry point
// combining lexing and parsing; lexer diagnostics are carried through.
func ParseSignature(input string, env *TypeEnv) (*typesystem.Signature, []*diagnostics.DiagnosticError) {
	l := lexer.New(input)
	p := New(l.Tokenize(), env)
	sig := p.Parse()
	errs := append(l.Errors(), p.Errors()...)
	return sig, errs
}

// ParseTypeExpr parses a standalone type expression, such as a TypedDict
// entry's value type in a suite file.
func ParseTypeExpr(input string, env *TypeEnv) (typesystem.Type, []*diagnostics.DiagnosticError) {
	l := lexer.New(input)
	p := New(l.Tokenize(), env)
	t := p.parseTypeExpr()
	if !p.peekTokenIs(token.EOF) {
		p.addError(diagnostics.ErrP001, p.peekToken,
			fmt.Sprintf("unexpected %q after type expression", p.peekToken.Lexeme))
	}
	return t, append(l.Errors(), p.Errors()...)
}

func (p *Parser) Errors() []*diagnostics.DiagnosticError {
	return p.errors
}

// Parse consumes "(" parameter ("," parameter)* ")" and returns the
// signature. A best-effort signature is returned even when diagnostics were
// produced.
func (p *Parser) Parse() *typesystem.Signature {
	sig := &typesystem.Signature{}

	if !p.curTokenIs(token.LPAREN) {
		p.addError(diagnostics.ErrP001, p.curToken, "signature must start with '('")
		return sig
	}

	for !p.peekTokenIs(token.RPAREN) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		param, ok := p.parseParameter()
		if !ok {
			return sig
		}
		sig.Params = append(sig.Params, param)

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		} else if !p.peekTokenIs(token.RPAREN) {
			p.addError(diagnostics.ErrP001, p.peekToken, "expected ',' or ')' in parameter list")
			return sig
		}
	}

	if !p.expectPeek(token.RPAREN) {
		return sig
	}
	return sig
}

// parseParameter parses one declared parameter, positioned on its first
// token.
func (p *Parser) parseParameter() (typesystem.Parameter, bool) {
	switch p.curToken.Type {
	case token.SLASH:
		return typesystem.Parameter{Category: typesystem.ParamCategorySeparator}, true

	case token.ASTERISK:
		param := typesystem.Parameter{Category: typesystem.ParamCategoryArgsList}
		if p.peekTokenIs(token.IDENT) {
			p.nextToken()
			param.Name = p.curToken.Lexeme
			p.parseAnnotation(&param)
		}
		return param, true

	case token.DOUBLE_ASTERISK:
		if !p.expectPeek(token.IDENT) {
			return typesystem.Parameter{}, false
		}
		param := typesystem.Parameter{
			Category: typesystem.ParamCategoryKwargsDict,
			Name:     p.curToken.Lexeme,
		}
		p.parseAnnotation(&param)
		return param, true

	case token.IDENT:
		param := typesystem.Parameter{
			Category: typesystem.ParamCategorySimple,
			Name:     p.curToken.Lexeme,
		}
		p.parseAnnotation(&param)
		if p.peekTokenIs(token.ASSIGN) {
			p.nextToken()
			if !p.expectPeek(token.ELLIPSIS) {
				return typesystem.Parameter{}, false
			}
			param.HasDefault = true
			// The notation elides default values; the best type available
			// for the default is the declared one.
			if param.DeclaredType != nil {
				param.DefaultType = param.DeclaredType
			} else {
				param.DefaultType = typesystem.Unknown
			}
		}
		return param, true
	}

	p.addError(diagnostics.ErrP004, p.curToken,
		fmt.Sprintf("unexpected token %q in parameter list", p.curToken.Lexeme))
	return typesystem.Parameter{}, false
}

// parseAnnotation consumes an optional ": <type>" suffix.
func (p *Parser) parseAnnotation(param *typesystem.Parameter) {
	if !p.peekTokenIs(token.COLON) {
		return
	}
	p.nextToken() // consume :
	p.nextToken() // advance to the type expression
	param.DeclaredType = p.parseTypeExpr()
	param.HasDeclaredType = true
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	if p.pos < len(p.tokens) {
		p.peekToken = p.tokens[p.pos]
		p.pos++
	} else {
		p.peekToken = token.Token{Type: token.EOF}
	}
}

func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.Type) bool {
	return p.peekToken.Type == t
}

func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.addError(diagnostics.ErrP001, p.peekToken,
		fmt.Sprintf("expected %q, got %q", string(t), p.peekToken.Lexeme))
	return false
}

func (p *Parser) addError(code diagnostics.ErrorCode, tok token.Token, message string) {
	p.errors = append(p.errors, diagnostics.NewError(code, tok, message))
}
