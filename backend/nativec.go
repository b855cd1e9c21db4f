/*
File    : l/backend/nativec.go
Author  : adapted from go-mix by Akash Maji
*/

package backend

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/l-lang/l/ast"
	"github.com/l-lang/l/ir"
	"github.com/l-lang/l/lerr"
)

// nativeCBackend is the only backend with a real implementation: it
// walks an ir.Program and textually emits C, a stepping stone for
// testing optimizations on a toolchain that can actually compile them
// (gcc/clang), ported from the original's native_gen module.
type nativeCBackend struct{}

func (nativeCBackend) Name() string                  { return "native-c" }
func (nativeCBackend) SupportsOptimization() bool     { return true }
func (nativeCBackend) Generate(prog *ir.Program) ([]byte, error) {
	g := &cGenerator{}
	return g.generate(prog)
}

type cGenerator struct {
	out    strings.Builder
	indent int
}

func (g *cGenerator) generate(prog *ir.Program) ([]byte, error) {
	g.out.WriteString("#include <stdio.h>\n")
	g.out.WriteString("#include <stdint.h>\n")
	g.out.WriteString("#include <stdbool.h>\n")
	g.out.WriteString("#include <string.h>\n\n")

	for _, global := range prog.Globals {
		if err := g.genGlobal(global); err != nil {
			return nil, err
		}
	}
	for _, fn := range prog.Functions {
		if err := g.genFunction(fn); err != nil {
			return nil, err
		}
	}
	return []byte(g.out.String()), nil
}

func (g *cGenerator) genGlobal(global *ir.Global) error {
	g.out.WriteString(fmt.Sprintf("%s %s = ", cTypeOfExpr(global.Value), global.Name))
	if err := g.genExpr(global.Value); err != nil {
		return err
	}
	g.out.WriteString(";\n")
	return nil
}

func (g *cGenerator) genFunction(fn *ir.Function) error {
	ret := "void"
	if fn.ReturnType != nil {
		ret = cType(fn.ReturnType)
	}
	g.out.WriteString(fmt.Sprintf("%s %s(", ret, fn.Name))
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		t := "int64_t"
		if p.Type != nil {
			t = cType(p.Type)
		}
		params[i] = fmt.Sprintf("%s %s", t, p.Name)
	}
	g.out.WriteString(strings.Join(params, ", "))
	g.out.WriteString(") {\n")
	g.indent++
	if err := g.genBlock(fn.Body); err != nil {
		return err
	}
	g.indent--
	g.out.WriteString("}\n\n")
	return nil
}

func (g *cGenerator) genBlock(b *ir.Block) error {
	if b.IsExprBody() {
		g.writeIndent()
		if err := g.genExpr(b.Expr); err != nil {
			return err
		}
		g.out.WriteString(";\n")
		return nil
	}
	for _, stmt := range b.Statements {
		if err := g.genStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (g *cGenerator) genStmt(stmt ir.Statement) error {
	g.writeIndent()
	switch s := stmt.(type) {
	case *ir.LetStmt:
		t := "int64_t"
		if s.Type != nil {
			t = cType(s.Type)
		}
		g.out.WriteString(t + " " + s.Name + " = ")
		if err := g.genExpr(s.Value); err != nil {
			return err
		}
		g.out.WriteString(";\n")
	case *ir.AssignStmt:
		g.out.WriteString(s.Name + " = ")
		if err := g.genExpr(s.Value); err != nil {
			return err
		}
		g.out.WriteString(";\n")
	case *ir.ReturnStmt:
		g.out.WriteString("return")
		if s.Value != nil {
			g.out.WriteString(" ")
			if err := g.genExpr(s.Value); err != nil {
				return err
			}
		}
		g.out.WriteString(";\n")
	case *ir.BreakStmt:
		g.out.WriteString("break;\n")
	case *ir.ContinueStmt:
		g.out.WriteString("continue;\n")
	case *ir.ExprStmt:
		if err := g.genExpr(s.Expr); err != nil {
			return err
		}
		g.out.WriteString(";\n")
	case *ir.IfStmt:
		g.out.WriteString("if (")
		if err := g.genExpr(s.Condition); err != nil {
			return err
		}
		g.out.WriteString(") {\n")
		g.indent++
		if err := g.genStmts(s.Then); err != nil {
			return err
		}
		g.indent--
		if s.Else != nil {
			g.writeIndent()
			g.out.WriteString("} else {\n")
			g.indent++
			if err := g.genStmts(s.Else); err != nil {
				return err
			}
			g.indent--
		}
		g.writeIndent()
		g.out.WriteString("}\n")
	case *ir.WhileStmt:
		g.out.WriteString("while (")
		if err := g.genExpr(s.Condition); err != nil {
			return err
		}
		g.out.WriteString(") {\n")
		g.indent++
		if err := g.genStmts(s.Body); err != nil {
			return err
		}
		g.indent--
		g.writeIndent()
		g.out.WriteString("}\n")
	default:
		return lerr.New(lerr.Runtime, "native-c: cannot generate statement of type %T", stmt)
	}
	return nil
}

func (g *cGenerator) genStmts(stmts []ir.Statement) error {
	for _, s := range stmts {
		if err := g.genStmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (g *cGenerator) genExpr(expr ir.Expression) error {
	switch e := expr.(type) {
	case *ir.IntLit:
		g.out.WriteString(strconv.FormatInt(e.Value, 10))
	case *ir.FloatLit:
		g.out.WriteString(strconv.FormatFloat(e.Value, 'g', -1, 64))
	case *ir.StringLit:
		g.out.WriteString("\"" + escapeC(e.Value) + "\"")
	case *ir.BoolLit:
		if e.Value {
			g.out.WriteString("true")
		} else {
			g.out.WriteString("false")
		}
	case *ir.Variable:
		g.out.WriteString(e.Name)
	case *ir.Binary:
		g.out.WriteString("(")
		if err := g.genExpr(e.Left); err != nil {
			return err
		}
		g.out.WriteString(" " + binaryOpToC(e.Op) + " ")
		if err := g.genExpr(e.Right); err != nil {
			return err
		}
		g.out.WriteString(")")
	case *ir.Unary:
		g.out.WriteString(unaryOpToC(e.Op) + "(")
		if err := g.genExpr(e.Right); err != nil {
			return err
		}
		g.out.WriteString(")")
	case *ir.Call:
		g.out.WriteString(e.Callee + "(")
		for i, a := range e.Args {
			if i > 0 {
				g.out.WriteString(", ")
			}
			if err := g.genExpr(a); err != nil {
				return err
			}
		}
		g.out.WriteString(")")
	case *ir.Index:
		if err := g.genExpr(e.Left); err != nil {
			return err
		}
		g.out.WriteString("[")
		if err := g.genExpr(e.Index); err != nil {
			return err
		}
		g.out.WriteString("]")
	default:
		return lerr.New(lerr.Runtime, "native-c: cannot generate expression of type %T", expr)
	}
	return nil
}

func (g *cGenerator) writeIndent() {
	for i := 0; i < g.indent; i++ {
		g.out.WriteString("    ")
	}
}

func cType(t *ast.TypeExpr) string {
	if t == nil {
		return "int64_t"
	}
	switch t.Kind {
	case ast.TInt:
		return "int64_t"
	case ast.TFloat:
		return "double"
	case ast.TString:
		return "char*"
	case ast.TBool:
		return "bool"
	case ast.TNone:
		return "void"
	case ast.TArray:
		return "int64_t*"
	case ast.TFunction:
		return "void*"
	case ast.TNamed:
		return "void*"
	default:
		return "int64_t"
	}
}

// cTypeOfExpr infers a global's C type from its literal kind, since IR
// globals don't carry a declared TypeExpr of their own.
func cTypeOfExpr(expr ir.Expression) string {
	switch expr.(type) {
	case *ir.FloatLit:
		return "double"
	case *ir.StringLit:
		return "char*"
	case *ir.BoolLit:
		return "bool"
	default:
		return "int64_t"
	}
}

func binaryOpToC(op string) string {
	switch op {
	case "&&":
		return "&&"
	case "||":
		return "||"
	default:
		return op
	}
}

func unaryOpToC(op string) string {
	switch op {
	case "-":
		return "-"
	case "!":
		return "!"
	default:
		return op
	}
}

func escapeC(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`)
	return r.Replace(s)
}
