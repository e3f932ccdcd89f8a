package parser

import (
	"fmt"

	"github.com/Ondrekk12/pyright/internal/config"
	"github.com/Ondrekk12/pyright/internal/diagnostics"
	"github.com/Ondrekk12/pyright/internal/token"
	"github.com/Ondrekk12/pyright/internal/typesystem"
)

// parseTypeExpr parses a type expression, positioned on its first token.
// Unions bind loosest: "int | str | None".
func (p *Parser) parseTypeExpr() typesystem.Type {
	first := p.parseUnaryType()
	if !p.peekTokenIs(token.PIPE) {
		return first
	}
	subtypes := []typesystem.Type{first}
	for p.peekTokenIs(token.PIPE) {
		p.nextToken() // consume |
		p.nextToken()
		subtypes = append(subtypes, p.parseUnaryType())
	}
	return typesystem.NewUnion(subtypes...)
}

// parseUnaryType handles the "*X" and "**X" unpack prefixes.
func (p *Parser) parseUnaryType() typesystem.Type {
	switch p.curToken.Type {
	case token.ASTERISK:
		unpackTok := p.curToken
		p.nextToken()
		inner := p.parseAtomType()
		switch it := inner.(type) {
		case *typesystem.TypeVarType:
			if it.IsVariadic {
				return it.WithUnpacked()
			}
		case *typesystem.ClassType:
			if it.Name == config.TupleTypeName || it.IsTypedDict {
				return it.WithUnpacked()
			}
		}
		p.addError(diagnostics.ErrP005, unpackTok,
			fmt.Sprintf("'*' cannot unpack %s", inner.String()))
		return inner

	case token.DOUBLE_ASTERISK:
		unpackTok := p.curToken
		p.nextToken()
		inner := p.parseAtomType()
		if cls, ok := inner.(*typesystem.ClassType); ok && cls.IsTypedDict {
			return cls.WithUnpacked()
		}
		p.addError(diagnostics.ErrP005, unpackTok,
			fmt.Sprintf("'**' cannot unpack %s", inner.String()))
		return inner
	}
	return p.parseAtomType()
}

// parseAtomType parses a named type, optionally followed by a ".args" or
// ".kwargs" projection or a "[...]" subscription.
func (p *Parser) parseAtomType() typesystem.Type {
	if !p.curTokenIs(token.IDENT) {
		p.addError(diagnostics.ErrP003, p.curToken,
			fmt.Sprintf("expected type name, got %q", p.curToken.Lexeme))
		return typesystem.Unknown
	}

	name := p.curToken.Lexeme
	base, ok := p.env.Lookup(name)
	if !ok {
		p.addError(diagnostics.ErrP002, p.curToken,
			fmt.Sprintf("unknown type name %q", name))
		return typesystem.Unknown
	}

	if p.peekTokenIs(token.DOT) {
		return p.parseProjection(base, name)
	}
	if p.peekTokenIs(token.LBRACKET) {
		return p.parseSubscription(base, name)
	}
	return base
}

func (p *Parser) parseProjection(base typesystem.Type, name string) typesystem.Type {
	p.nextToken() // consume .
	if !p.expectPeek(token.IDENT) {
		return typesystem.Unknown
	}
	member := p.curToken.Lexeme

	paramSpec, ok := base.(*typesystem.TypeVarType)
	if !ok || !paramSpec.IsParamSpec {
		p.addError(diagnostics.ErrP003, p.curToken,
			fmt.Sprintf("%q is not a ParamSpec; only ParamSpecs support member access", name))
		return typesystem.Unknown
	}

	switch member {
	case config.ParamSpecArgsMember:
		return paramSpec.WithAccess(typesystem.AccessArgs)
	case config.ParamSpecKwargsMember:
		return paramSpec.WithAccess(typesystem.AccessKwargs)
	}
	p.addError(diagnostics.ErrP003, p.curToken,
		fmt.Sprintf("ParamSpec has no member %q", member))
	return typesystem.Unknown
}

func (p *Parser) parseSubscription(base typesystem.Type, name string) typesystem.Type {
	cls, ok := base.(*typesystem.ClassType)
	if !ok {
		p.addError(diagnostics.ErrP003, p.peekToken,
			fmt.Sprintf("%q cannot be subscripted", name))
		return typesystem.Unknown
	}

	p.nextToken() // consume [

	if cls.Name == config.TupleTypeName {
		return p.parseTupleElements()
	}

	var typeArgs []typesystem.Type
	for !p.peekTokenIs(token.RBRACKET) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		typeArgs = append(typeArgs, p.parseTypeExpr())
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		} else if !p.peekTokenIs(token.RBRACKET) {
			p.addError(diagnostics.ErrP001, p.peekToken, "expected ',' or ']' in type arguments")
			return typesystem.Unknown
		}
	}
	if !p.expectPeek(token.RBRACKET) {
		return typesystem.Unknown
	}
	return cls.WithTypeArgs(typeArgs)
}

// parseTupleElements parses the element descriptors of "tuple[...]",
// positioned on the "[". A trailing "..." marks the preceding element
// unbounded; "*Ts" embeds a variadic type variable; "*tuple[...]" splices
// the inner tuple's elements.
func (p *Parser) parseTupleElements() typesystem.Type {
	var elements []typesystem.TupleElement

	for !p.peekTokenIs(token.RBRACKET) && !p.peekTokenIs(token.EOF) {
		p.nextToken()

		switch p.curToken.Type {
		case token.ELLIPSIS:
			if len(elements) == 0 {
				p.addError(diagnostics.ErrP003, p.curToken, "'...' must follow a tuple element")
			} else {
				elements[len(elements)-1].IsUnbounded = true
			}

		case token.ASTERISK:
			unpackTok := p.curToken
			p.nextToken()
			inner := p.parseAtomType()
			switch it := inner.(type) {
			case *typesystem.TypeVarType:
				if it.IsVariadic {
					elements = append(elements, typesystem.TupleElement{Type: it.WithUnpacked()})
				} else {
					p.addError(diagnostics.ErrP005, unpackTok,
						fmt.Sprintf("'*' cannot unpack %s inside tuple", inner.String()))
				}
			case *typesystem.ClassType:
				if it.Name == config.TupleTypeName && it.TupleElements != nil {
					elements = append(elements, it.TupleElements...)
				} else {
					p.addError(diagnostics.ErrP005, unpackTok,
						fmt.Sprintf("'*' cannot unpack %s inside tuple", inner.String()))
				}
			default:
				p.addError(diagnostics.ErrP005, unpackTok,
					fmt.Sprintf("'*' cannot unpack %s inside tuple", inner.String()))
			}

		default:
			elements = append(elements, typesystem.TupleElement{Type: p.parseTypeExpr()})
		}

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		} else if !p.peekTokenIs(token.RBRACKET) {
			p.addError(diagnostics.ErrP001, p.peekToken, "expected ',' or ']' in tuple type")
			return typesystem.Unknown
		}
	}
	if !p.expectPeek(token.RBRACKET) {
		return typesystem.Unknown
	}
	return typesystem.NewTupleInstance(elements)
}
