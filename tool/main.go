// Command adtGen generates Go sum types from an .adt description:
//
//	type Name = | Case of Kind | Case of `struct { ... }` ;
//
// becomes a sealed interface Name with an is_Name marker method, and one type
// per case implementing it.
//
//	adtGen IN.adt OUT.go PACKAGE
package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/alecthomas/participle"

	"github.com/dave/jennifer/jen"
)

// Description is a whole .adt file.
type Description struct {
	Decls []*TypeDecl `@@*`
}

// TypeDecl is either an alias (Plain) or a sum type (Cases).
type TypeDecl struct {
	Name  string   `"type" @Ident "="`
	Plain *string  `(  (@Ident | @String | @RawString)`
	Cases *[]Case  ` | ("|" (@@))*)`
	End   struct{} `";"`
}

// Case is one alternative of a sum type. Kind is a type name or a quoted
// Go type expression, usually a struct body.
type Case struct {
	Name string `@Ident "of"`
	Kind string `(@Ident | @String | @RawString)`
}

var adtParser = participle.MustBuild(&Description{}, participle.Unquote("String", "RawString"))

type generator struct {
	// sum types by name; a case whose kind is another sum type embeds it
	sums map[string]bool
}

func newGenerator(desc *Description) *generator {
	g := &generator{sums: map[string]bool{}}
	for _, decl := range desc.Decls {
		if decl.Cases != nil {
			g.sums[decl.Name] = true
		}
	}
	return g
}

func (g *generator) alias(out *jen.File, decl *TypeDecl) {
	out.Type().Id(decl.Name).Id(*decl.Plain)
}

func (g *generator) sum(out *jen.File, decl *TypeDecl) {
	marker := "is_" + decl.Name
	out.Type().Id(decl.Name).Interface(
		jen.Id(marker).Params(),
	)

	for _, c := range *decl.Cases {
		if g.sums[c.Kind] {
			out.Type().Id(c.Name).Struct(jen.Id(c.Kind))
		} else {
			out.Type().Id(c.Name).Id(c.Kind)
		}
		out.Func().Params(jen.Id("v").Id(c.Name)).Id(marker).Params().Block()
	}
}

// Generate renders the Go source for pkgname. source names the .adt file in
// the generated-code header.
func Generate(pkgname, source string, desc *Description) string {
	g := newGenerator(desc)

	out := jen.NewFile(pkgname)
	out.HeaderComment(fmt.Sprintf("Code generated by adtGen from %s. DO NOT EDIT.", source))

	for _, decl := range desc.Decls {
		switch {
		case decl.Plain != nil:
			g.alias(out, decl)
		case decl.Cases != nil:
			g.sum(out, decl)
		}
	}

	return fmt.Sprintf("%#v", out)
}

func run(in, out, pkgname string) error {
	data, err := ioutil.ReadFile(in)
	if err != nil {
		return err
	}

	desc := Description{}
	if err := adtParser.ParseBytes(data, &desc); err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	return ioutil.WriteFile(out, []byte(Generate(pkgname, filepath.Base(in), &desc)), 0644)
}

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: adtGen IN.adt OUT.go PACKAGE")
		os.Exit(2)
	}

	if err := run(os.Args[1], os.Args[2], os.Args[3]); err != nil {
		fmt.Fprintln(os.Stderr, "adtGen:", err)
		os.Exit(1)
	}
}
