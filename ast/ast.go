// Package ast holds the syntax tree produced by the MyR parser.
//
// Every syntactic category with more than one shape (declarations,
// statements, assignments, loops, expressions) is a sealed interface with one
// struct per case; switch on the dynamic type to take a node apart. Nodes are
// built bottom-up by the parser and never modified afterwards.
package ast

//go:generate sh -c "cd ../tool && go run . ../ast/ast.adt ../ast/ast_gen.go ast"

import "github.com/pontaoski/myr/types"

type Span = types.Span

type Identifier struct {
	Name string
	Pos  Span
}

func NewID(name string, pos Span) Identifier {
	return Identifier{Name: name, Pos: pos}
}

type Type int

const (
	Int Type = iota
	Flot
	Char
	Void
)

type Operator int

const (
	Add Operator = iota
	Sub
	Mul
	Div
	And
	Or
	Less
	Greater
	Equal
)

// VarList is one "vars" section, in source order.
type VarList []Decl

// Block is never empty once parsed.
type Block []Statement

type Param struct {
	Type Type
	Name Identifier
}

type Function struct {
	Returns Type
	Name    Identifier
	Params  []Param
	Vars    VarList
	Body    Block
	Pos     Span
}

type Program struct {
	Name     Identifier
	Vars     VarList
	Function *Function
	Main     Block
	Pos      Span
}
