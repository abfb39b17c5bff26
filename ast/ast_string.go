package ast

import (
	"fmt"
	"strings"
)

var typeNames = [...]string{
	Int:  "int",
	Flot: "flot",
	Char: "char",
	Void: "void",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

var operatorNames = [...]string{
	Add:     "+",
	Sub:     "-",
	Mul:     "*",
	Div:     "/",
	And:     "&",
	Or:      "|",
	Less:    "<",
	Greater: ">",
	Equal:   "==",
}

func (o Operator) String() string {
	if int(o) < len(operatorNames) {
		return operatorNames[o]
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

func (i Identifier) String() string {
	return i.Name
}

// ExprString renders e as a fully parenthesised prefix expression, e.g.
// "(+ 2 (* 3 4))".
func ExprString(e Expression) string {
	switch v := e.(type) {
	case nil:
		return ""
	case Binary:
		return fmt.Sprintf("(%s %s %s)", v.Op, ExprString(v.Left), ExprString(v.Right))
	case Negation:
		return fmt.Sprintf("(- %s)", ExprString(v.Operand))
	case Number:
		return fmt.Sprintf("%d", v.Value)
	case Var:
		return v.Name
	}

	panic("unhandled")
}

func (v Binary) String() string   { return ExprString(v) }
func (v Negation) String() string { return ExprString(v) }
func (v Number) String() string   { return ExprString(v) }
func (v Var) String() string      { return v.Name }

func (d VarDecl) String() string {
	return fmt.Sprintf("%s %s", d.Type, d.Name)
}

func (d ArrayDecl) String() string {
	return fmt.Sprintf("%s[%d] %s", d.Type, d.Size, d.Name)
}

func (p Param) String() string {
	return fmt.Sprintf("%s %s", p.Type, p.Name)
}

func (f Function) String() string {
	var params []string
	for _, param := range f.Params {
		params = append(params, param.String())
	}
	return fmt.Sprintf("function %s %s(%s)", f.Returns, f.Name, strings.Join(params, ", "))
}
