package sandbox

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"regexp"
	"strconv"
	"strings"
)

var (
	printPattern      = regexp.MustCompile(`print\s*\(\s*([^)]+)\s*\)`)
	arithmeticPattern = regexp.MustCompile(`^[\d+\-*/.() ]+$`)
	identPattern      = regexp.MustCompile(`^[A-Za-z_]\w*$`)
)

// FabricateOutput produces plausible output for code without running it.
// Each print argument is rendered on its own line.
func FabricateOutput(code string) string {
	matches := printPattern.FindAllStringSubmatch(code, -1)
	if len(matches) == 0 {
		switch {
		case strings.Contains(code, "def main("):
			return "Function defined successfully"
		case strings.Contains(code, "return "):
			return "Return statement executed"
		default:
			return "Code executed successfully"
		}
	}

	lines := make([]string, 0, len(matches))
	for _, m := range matches {
		lines = append(lines, renderPrintArg(strings.TrimSpace(m[1])))
	}
	return strings.Join(lines, "\n")
}

func renderPrintArg(arg string) string {
	if s, ok := unquote(arg); ok {
		return s
	}
	if arithmeticPattern.MatchString(arg) {
		if v, err := EvalArithmetic(arg); err == nil {
			return formatNumber(v)
		}
		return arg
	}
	if identPattern.MatchString(arg) {
		return fmt.Sprintf("[Variable: %s]", arg)
	}
	return arg
}

func unquote(s string) (string, bool) {
	if len(s) < 2 {
		return "", false
	}
	q := s[0]
	if (q != '"' && q != '\'') || s[len(s)-1] != q {
		return "", false
	}
	return s[1 : len(s)-1], true
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var errNotArithmetic = errors.New("not an arithmetic expression")

// EvalArithmetic evaluates + - * / over decimal literals and parentheses with float semantics.
func EvalArithmetic(expr string) (float64, error) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return 0, err
	}
	return evalNode(node)
}

func evalNode(n ast.Expr) (float64, error) {
	switch e := n.(type) {
	case *ast.BasicLit:
		if e.Kind != token.INT && e.Kind != token.FLOAT {
			return 0, errNotArithmetic
		}
		return strconv.ParseFloat(e.Value, 64)
	case *ast.ParenExpr:
		return evalNode(e.X)
	case *ast.UnaryExpr:
		x, err := evalNode(e.X)
		if err != nil {
			return 0, err
		}
		switch e.Op {
		case token.SUB:
			return -x, nil
		case token.ADD:
			return x, nil
		}
		return 0, errNotArithmetic
	case *ast.BinaryExpr:
		x, err := evalNode(e.X)
		if err != nil {
			return 0, err
		}
		y, err := evalNode(e.Y)
		if err != nil {
			return 0, err
		}
		switch e.Op {
		case token.ADD:
			return x + y, nil
		case token.SUB:
			return x - y, nil
		case token.MUL:
			return x * y, nil
		case token.QUO:
			if y == 0 {
				return 0, errors.New("division by zero")
			}
			return x / y, nil
		}
	}
	return 0, errNotArithmetic
}
