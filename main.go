package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/pontaoski/myr/ast"
	"github.com/pontaoski/myr/lexer"
	"github.com/pontaoski/myr/parser"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

func readSource(path string) (string, error) {
	if path == "-" {
		data, err := ioutil.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := ioutil.ReadFile(path)
	return string(data), err
}

func logDiagnostic(err error) {
	log.Println(err)
}

func dump(w io.Writer, prog *ast.Program, format string) error {
	switch format {
	case "repr":
		_, err := fmt.Fprintln(w, repr.String(prog, repr.Indent("  ")))
		return err
	case "yaml":
		out, err := yaml.Marshal(prog)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	}

	return fmt.Errorf("unknown format %q, want repr or yaml", format)
}

// parseFile parses one file, logging lexical diagnostics as they come.
func parseFile(path string, trace bool) (*ast.Program, error) {
	src, err := readSource(path)
	if err != nil {
		return nil, err
	}

	prog, _, err := parser.ParseString(src, path, logDiagnostic)
	if err != nil {
		if trace {
			tracerr.PrintSourceColor(err)
		}
		return nil, tracerr.Unwrap(err)
	}

	return prog, nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("myr: ")

	traceFlag := &cli.BoolFlag{
		Name:  "trace",
		Usage: "print the parser stack on syntax errors",
	}
	formatFlag := &cli.StringFlag{
		Name:  "format",
		Value: "repr",
		Usage: "dump format, repr or yaml",
	}

	app := &cli.App{
		Name:  "myr",
		Usage: "MyR front-end",
		ExitErrHandler: func(context *cli.Context, err error) {
			if err == nil {
				return
			}
			log.Fatalf("%v", err)
		},
		Commands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "write a " + moduleInfoFile + " in the current directory",
				ArgsUsage: "NAME",
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return cli.Exit("no module name provided", 1)
					}
					return writeModuleInfo(moduleInfoFile, myrModule{
						Package: name,
					})
				},
			},
			{
				Name:      "tokens",
				Usage:     "print the tokens of a file",
				ArgsUsage: "FILE",
				Action: func(c *cli.Context) error {
					path := c.Args().First()
					src, err := readSource(path)
					if err != nil {
						return err
					}

					l := lexer.NewLexer(strings.NewReader(src), path, logDiagnostic)
					for _, lexeme := range l.LexToEOF() {
						fmt.Printf("%s\t%s\t%q\n", lexeme.Token.Location, lexeme.Token.Kind, lexeme.Text)
					}
					return nil
				},
			},
			{
				Name:      "parse",
				Usage:     "parse a file and dump its syntax tree",
				ArgsUsage: "FILE",
				Flags:     []cli.Flag{formatFlag, traceFlag},
				Action: func(c *cli.Context) error {
					prog, err := parseFile(c.Args().First(), c.Bool("trace"))
					if err != nil {
						return err
					}
					return dump(os.Stdout, prog, c.String("format"))
				},
			},
			{
				Name:      "expr",
				Usage:     "parse a single expression and print it fully parenthesised",
				ArgsUsage: "EXPR",
				Action: func(c *cli.Context) error {
					expr, err := parser.ParseExpression(c.Args().First())
					if err != nil {
						return tracerr.Unwrap(err)
					}
					fmt.Println(ast.ExprString(expr))
					return nil
				},
			},
			{
				Name:  "check",
				Usage: "parse every source of the module in the current directory",
				Flags: []cli.Flag{
					traceFlag,
					&cli.BoolFlag{
						Name:  "dump",
						Usage: "dump each tree in the module's format",
					},
				},
				Action: func(c *cli.Context) error {
					doc, err := readModuleInfo(moduleInfoFile)
					if err != nil {
						return err
					}
					files, err := doc.sourceFiles(".")
					if err != nil {
						return err
					}

					failed := 0
					for _, file := range files {
						prog, err := parseFile(file, c.Bool("trace"))
						if err != nil {
							log.Println(err)
							failed++
							continue
						}
						fmt.Printf("ok\t%s\n", filepath.Clean(file))
						if c.Bool("dump") {
							if err := dump(os.Stdout, prog, doc.format()); err != nil {
								return err
							}
						}
					}
					if failed > 0 {
						return cli.Exit(fmt.Sprintf("%s: %d of %d files failed", doc.Package, failed, len(files)), 1)
					}
					return nil
				},
			},
			{
				Name:  "sample",
				Usage: "parse the built-in sample program",
				Flags: []cli.Flag{formatFlag},
				Action: func(c *cli.Context) error {
					prog, _, err := parser.ParseString(sampleProgram, "sample.myr", logDiagnostic)
					if err != nil {
						return tracerr.Unwrap(err)
					}
					return dump(os.Stdout, prog, c.String("format"))
				},
			},
		},
	}
	app.Run(os.Args)
}
