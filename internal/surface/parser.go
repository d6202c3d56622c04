package surface

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"

	"fluido/internal/ferrors"
	"fluido/internal/fluid"
	"fluido/internal/numeric"
)

var mixLangParser = participle.MustBuild[Grammar](
	participle.Lexer(MixLangLexer),
	participle.Elide("Whitespace"),
)

// Parse parses a surface S-expression into a fluid.Expr tree, per spec §4.2
// and §6. Syntactic problems are returned as *ferrors.ParseError; semantic
// validation (volume > 0, concentration in range) is left to downstream
// consumers, matching the original parser's contract.
func Parse(input string) (fluid.Expr, error) {
	grammar, err := mixLangParser.ParseString("", input)
	if err != nil {
		return nil, ferrors.NewParseError(friendlyMessage(input, err), err)
	}
	return toExpr(grammar.Expr)
}

func toExpr(e *Expr) (fluid.Expr, error) {
	switch {
	case e.Fluid != nil:
		concentration, err := numeric.ParseQ(e.Fluid.Concentration)
		if err != nil {
			return nil, ferrors.NewParseError(fmt.Sprintf("invalid concentration literal %q", e.Fluid.Concentration), err)
		}
		volume, err := numeric.ParseQ(e.Fluid.Volume)
		if err != nil {
			return nil, ferrors.NewParseError(fmt.Sprintf("invalid volume literal %q", e.Fluid.Volume), err)
		}
		return fluid.FluidExpr{Fluid: fluid.New(concentration, volume)}, nil
	case e.Mix != nil:
		left, err := toExpr(e.Mix.Left)
		if err != nil {
			return nil, err
		}
		right, err := toExpr(e.Mix.Right)
		if err != nil {
			return nil, err
		}
		return fluid.MixExpr{Left: left, Right: right}, nil
	default:
		return nil, ferrors.NewParseError("expression is neither a fluid nor a mix", nil)
	}
}

// friendlyMessage renders a caret-style pointer at the failing column, the
// same presentation the teacher's own reportParseError produces for its
// language's syntax errors.
func friendlyMessage(src string, err error) string {
	pe, ok := err.(participle.Error)
	if !ok {
		return err.Error()
	}
	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		return err.Error()
	}
	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", max(pos.Column-1, 0)) + "^"
	return fmt.Sprintf("%s\n%s\n%s\n%s", color.RedString("syntax error at line %d, column %d:", pos.Line, pos.Column), line, color.HiRedString(caret), pe.Message())
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
