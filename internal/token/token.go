package token

type Type string

type Token struct {
	Type    Type
	Lexeme  string
	Literal interface{}
	Line    int
	Column  int
}

const (
	ILLEGAL Type = "ILLEGAL"
	EOF     Type = "EOF"

	IDENT Type = "IDENT"

	LPAREN   Type = "("
	RPAREN   Type = ")"
	LBRACKET Type = "["
	RBRACKET Type = "]"
	COMMA    Type = ","
	COLON    Type = ":"
	ASSIGN   Type = "="
	PIPE     Type = "|"
	DOT      Type = "."
	SLASH    Type = "/"

	ASTERISK        Type = "*"
	DOUBLE_ASTERISK Type = "**"
	ELLIPSIS        Type = "..."
)
