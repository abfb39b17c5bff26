// Package parser turns a stream of MyR tokens into an *ast.Program.
//
// Parsing is fail-fast: the first token that cannot continue the grammar
// aborts the parse with a single error and no tree. Lexical diagnostics are
// collected separately by the lexer and never stop a parse.
package parser

import (
	"runtime"
	"strings"

	"github.com/pontaoski/myr/ast"
	"github.com/pontaoski/myr/lexer"
	"github.com/pontaoski/myr/types"
	"github.com/ztrue/tracerr"
)

var (
	declTypes  = []types.TokenKind{types.INT, types.FLOT, types.CHAR, types.VOID}
	paramTypes = []types.TokenKind{types.INT, types.FLOT, types.CHAR}

	statementStart = []types.TokenKind{
		types.IDENT,
		types.RETURN,
		types.READ,
		types.WRITE,
		types.IF,
		types.FOR,
		types.WHILE,
		types.VARS,
	}

	typeOf = map[types.TokenKind]ast.Type{
		types.INT:  ast.Int,
		types.FLOT: ast.Flot,
		types.CHAR: ast.Char,
		types.VOID: ast.Void,
	}
)

type Parser struct {
	l *lexer.Lexer
}

func NewParser(l *lexer.Lexer) Parser {
	return Parser{l}
}

// catch turns a syntax error raised anywhere below Parse into a returned
// error. Runtime errors and other panics keep propagating.
func catch(err *error) {
	if r := recover(); r != nil {
		if _, ok := r.(runtime.Error); ok {
			panic(r)
		}
		rerr, ok := r.(error)
		if !ok {
			panic(r)
		}
		*err = tracerr.Wrap(rerr)
	}
}

// Parse reads a whole program. On failure the returned program is nil.
func (p *Parser) Parse() (prog *ast.Program, err error) {
	defer catch(&err)

	return p.parseProgram(), nil
}

// ParseString parses the program held in src. It returns the tree (nil on a
// syntax error), every lexical diagnostic seen, and the syntax error if any.
func ParseString(src, filename string, errh func(error)) (*ast.Program, []error, error) {
	l := lexer.NewLexer(strings.NewReader(src), filename, errh)
	p := NewParser(l)
	prog, err := p.Parse()

	return prog, l.Errors(), err
}

func span(from, to types.Span) types.Span {
	return types.Span{From: from.From, To: to.To}
}

func (p *Parser) parseProgram() *ast.Program {
	start, _ := p.l.LexExpecting(types.PROGRAM)
	tok, name := p.l.LexExpecting(types.IDENT)
	p.l.LexExpecting(types.EOS)

	prog := &ast.Program{
		Name: ast.NewID(name, tok.Location),
		Vars: p.parseVars(),
	}

	tok, _ = p.l.LexExpecting(types.FUNCTION, types.MAIN)
	if tok.Kind == types.FUNCTION {
		fn := p.parseFunction(tok)
		prog.Function = &fn
		p.l.LexExpecting(types.MAIN)
	}

	var end types.Span
	prog.Main, end = p.parseBlock()
	p.l.LexExpecting(types.EOF)

	prog.Pos = span(start.Location, end)
	return prog
}

// parseVars handles the optional "vars" section in front of main and of the
// function body.
func (p *Parser) parseVars() ast.VarList {
	if !p.l.PeekIs(types.VARS) {
		return nil
	}
	p.l.Lex()

	return p.parseVarList()
}

// parseVarList reads `var ";" ("," var)*`, the separator following the
// semicolon. It should be called past the "vars" keyword.
func (p *Parser) parseVarList() ast.VarList {
	list := ast.VarList{p.parseVar()}
	p.l.LexExpecting(types.EOS)

	for p.l.PeekIs(types.COMMA) {
		p.l.Lex()
		list = append(list, p.parseVar())
	}

	return list
}

func (p *Parser) parseVar() ast.Decl {
	tok, _ := p.l.LexExpecting(declTypes...)
	kind := typeOf[tok.Kind]

	if !p.l.PeekIs(types.LBRACKET) {
		nameTok, name := p.l.LexExpecting(types.IDENT)
		return ast.VarDecl{
			Type: kind,
			Name: ast.NewID(name, nameTok.Location),
			Pos:  span(tok.Location, nameTok.Location),
		}
	}

	p.l.Lex()
	sizeTok, size := p.l.LexExpecting(types.NUMBER)
	p.l.LexExpecting(types.RBRACKET)
	nameTok, name := p.l.LexExpecting(types.IDENT)

	return ast.ArrayDecl{
		Type: kind,
		Name: ast.NewID(name, nameTok.Location),
		Size: p.number(sizeTok, size),
		Pos:  span(tok.Location, nameTok.Location),
	}
}

// parseFunction should be called past the "function" keyword.
func (p *Parser) parseFunction(start types.Token) ast.Function {
	tok, _ := p.l.LexExpecting(declTypes...)
	nameTok, name := p.l.LexExpecting(types.IDENT)

	fn := ast.Function{
		Returns: typeOf[tok.Kind],
		Name:    ast.NewID(name, nameTok.Location),
	}

	// param_list may be empty and still be followed by ", param".
	p.l.LexExpecting(types.LPAREN)
	if p.l.PeekIs(paramTypes...) {
		fn.Params = append(fn.Params, p.parseParam())
	}
	for p.l.PeekIs(types.COMMA) {
		p.l.Lex()
		fn.Params = append(fn.Params, p.parseParam())
	}
	p.l.LexExpecting(types.RPAREN)

	fn.Vars = p.parseVars()

	var end types.Span
	fn.Body, end = p.parseBlock()
	fn.Pos = span(start.Location, end)

	return fn
}

func (p *Parser) parseParam() ast.Param {
	tok, _ := p.l.LexExpecting(paramTypes...)
	nameTok, name := p.l.LexExpecting(types.IDENT)

	return ast.Param{
		Type: typeOf[tok.Kind],
		Name: ast.NewID(name, nameTok.Location),
	}
}

// parseBlock reads a braced, non-empty statement list and returns it with
// the span of the braces.
func (p *Parser) parseBlock() (ast.Block, types.Span) {
	open, _ := p.l.LexExpecting(types.LBRACE)

	var statements ast.Block
	for {
		statements = append(statements, p.parseStatement())
		if p.l.PeekIs(types.RBRACE) {
			break
		}
	}
	end, _ := p.l.LexExpecting(types.RBRACE)

	return statements, span(open.Location, end.Location)
}

func (p *Parser) parseStatement() ast.Statement {
	tok, lit := p.l.LexExpecting(statementStart...)

	switch tok.Kind {
	case types.IDENT:
		return p.parseIdentStatement(tok, lit)
	case types.RETURN:
		var value ast.Expression
		if !p.l.PeekIs(types.EOS) {
			value = p.parseExpression()
		}
		end, _ := p.l.LexExpecting(types.EOS)

		return ast.Return{Value: value, Pos: span(tok.Location, end.Location)}
	case types.READ:
		p.l.LexExpecting(types.LPAREN)
		nameTok, name := p.l.LexExpecting(types.IDENT)
		p.l.LexExpecting(types.RPAREN)
		end, _ := p.l.LexExpecting(types.EOS)

		return ast.Read{
			Target: ast.NewID(name, nameTok.Location),
			Pos:    span(tok.Location, end.Location),
		}
	case types.WRITE:
		var value ast.Expression
		p.l.LexExpecting(types.LPAREN)
		if !p.l.PeekIs(types.RPAREN) {
			value = p.parseExpression()
		}
		p.l.LexExpecting(types.RPAREN)
		end, _ := p.l.LexExpecting(types.EOS)

		return ast.Write{Value: value, Pos: span(tok.Location, end.Location)}
	case types.IF:
		p.l.LexExpecting(types.LPAREN)
		cond := p.parseExpression()
		p.l.LexExpecting(types.RPAREN)
		p.l.LexExpecting(types.THEN)
		then, end := p.parseBlock()

		// The innermost open If takes the else: any If nested in then has
		// already consumed its own.
		var elseBlock ast.Block
		if p.l.PeekIs(types.ELSE) {
			p.l.Lex()
			elseBlock, end = p.parseBlock()
		}

		return ast.If{
			Condition: cond,
			Then:      then,
			Else:      elseBlock,
			Pos:       span(tok.Location, end),
		}
	case types.FOR:
		varTok, name := p.l.LexExpecting(types.IDENT)
		p.l.LexExpecting(types.EQUALS)
		from := p.parseExpression()
		p.l.LexExpecting(types.TO)
		to := p.parseExpression()
		p.l.LexExpecting(types.DO)
		body, end := p.parseBlock()

		return ast.Repeat{Loop: ast.For{
			Var:  ast.NewID(name, varTok.Location),
			From: from,
			To:   to,
			Body: body,
			Pos:  span(tok.Location, end),
		}}
	case types.WHILE:
		p.l.LexExpecting(types.LPAREN)
		cond := p.parseExpression()
		p.l.LexExpecting(types.RPAREN)
		p.l.LexExpecting(types.DO)
		body, end := p.parseBlock()

		return ast.Repeat{Loop: ast.While{
			Condition: cond,
			Body:      body,
			Pos:       span(tok.Location, end),
		}}
	case types.VARS:
		return ast.Vars(p.parseVarList())
	}

	panic("unhandled")
}

// parseIdentStatement handles the statements that start with an identifier:
// scalar and element assignment, and function calls.
func (p *Parser) parseIdentStatement(tok types.Token, name string) ast.Statement {
	id := ast.NewID(name, tok.Location)
	next, _ := p.l.LexExpecting(types.EQUALS, types.LBRACKET, types.LPAREN)

	switch next.Kind {
	case types.EQUALS:
		value := p.parseExpression()
		end, _ := p.l.LexExpecting(types.EOS)

		return ast.Assign{Assignment: ast.ScalarAssign{
			Target: id,
			Value:  value,
			Pos:    span(tok.Location, end.Location),
		}}
	case types.LBRACKET:
		index := p.parseExpression()
		p.l.LexExpecting(types.RBRACKET)
		p.l.LexExpecting(types.EQUALS)
		value := p.parseExpression()
		end, _ := p.l.LexExpecting(types.EOS)

		return ast.Assign{Assignment: ast.ElementAssign{
			Target: id,
			Index:  index,
			Value:  value,
			Pos:    span(tok.Location, end.Location),
		}}
	case types.LPAREN:
		var args []ast.Expression
		if p.l.PeekIs(types.RPAREN) {
			p.l.Lex()
		} else {
			for {
				args = append(args, p.parseExpression())
				sep, _ := p.l.LexExpecting(types.COMMA, types.RPAREN)
				if sep.Kind == types.RPAREN {
					break
				}
			}
		}
		end, _ := p.l.LexExpecting(types.EOS)

		return ast.CallStmt{
			Function:  id,
			Arguments: args,
			Pos:       span(tok.Location, end.Location),
		}
	}

	panic("unhandled")
}
