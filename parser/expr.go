package parser

import (
	"strconv"
	"strings"

	"github.com/pontaoski/myr/ast"
	"github.com/pontaoski/myr/errors"
	"github.com/pontaoski/myr/lexer"
	"github.com/pontaoski/myr/types"
)

type assoc int

const (
	leftAssoc assoc = iota
	nonAssoc
)

type binaryOp struct {
	op    ast.Operator
	prec  int
	assoc assoc
}

// Binary operators, loosest first. Unary minus sits above all of them and is
// handled by parseUnary.
var binaryOps = map[types.TokenKind]binaryOp{
	types.OR:    {ast.Or, 1, leftAssoc},
	types.AND:   {ast.And, 2, leftAssoc},
	types.LT:    {ast.Less, 3, nonAssoc},
	types.GT:    {ast.Greater, 3, nonAssoc},
	types.EQEQ:  {ast.Equal, 3, nonAssoc},
	types.PLUS:  {ast.Add, 4, leftAssoc},
	types.MINUS: {ast.Sub, 4, leftAssoc},
	types.STAR:  {ast.Mul, 5, leftAssoc},
	types.SLASH: {ast.Div, 5, leftAssoc},
}

// ParseExpression parses src as a single expression and nothing else.
func ParseExpression(src string) (expr ast.Expression, err error) {
	defer catch(&err)

	p := NewParser(lexer.NewLexer(strings.NewReader(src), "", nil))
	e := p.parseExpression()
	p.l.LexExpecting(types.EOF)

	return e, nil
}

func (p *Parser) parseExpression() ast.Expression {
	return p.parseBinary(1)
}

// parseBinary is a precedence climber: operators binding looser than
// minPrec are left for the caller.
func (p *Parser) parseBinary(minPrec int) ast.Expression {
	left := p.parseUnary()

	for {
		tok, _ := p.l.Peek()
		info, ok := binaryOps[tok.Kind]
		if !ok || info.prec < minPrec {
			return left
		}
		p.l.Lex()

		right := p.parseBinary(info.prec + 1)
		left = ast.Binary{
			Op:    info.op,
			Left:  left,
			Right: right,
			Pos:   span(exprSpan(left), exprSpan(right)),
		}

		if info.assoc == nonAssoc {
			next, lit := p.l.Peek()
			if n, ok := binaryOps[next.Kind]; ok && n.prec == info.prec {
				panic(errors.UnexpectedToken{
					Got:      next.Kind,
					Lexeme:   lit,
					Location: next.Location,
				})
			}
		}
	}
}

func (p *Parser) parseUnary() ast.Expression {
	tok, lit := p.l.LexExpecting(types.MINUS, types.LPAREN, types.NUMBER, types.IDENT)

	switch tok.Kind {
	case types.MINUS:
		operand := p.parseUnary()
		return ast.Negation{
			Operand: operand,
			Pos:     span(tok.Location, exprSpan(operand)),
		}
	case types.LPAREN:
		expr := p.parseExpression()
		p.l.LexExpecting(types.RPAREN)
		return expr
	case types.NUMBER:
		return ast.Number{Value: p.number(tok, lit), Pos: tok.Location}
	case types.IDENT:
		return ast.Var(ast.NewID(lit, tok.Location))
	}

	panic("unhandled")
}

func (p *Parser) number(tok types.Token, lit string) int64 {
	parsed, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		panic(errors.InvalidNumber{
			Lexeme:   lit,
			Location: tok.Location,
		})
	}
	return parsed
}

func exprSpan(e ast.Expression) types.Span {
	switch v := e.(type) {
	case ast.Binary:
		return v.Pos
	case ast.Negation:
		return v.Pos
	case ast.Number:
		return v.Pos
	case ast.Var:
		return v.Pos
	}

	panic("unhandled")
}
