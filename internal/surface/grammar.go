package surface

import "github.com/alecthomas/participle/v2/lexer"

// Grammar is the participle struct grammar for the surface S-expressions.
// Expr dispatches on which alternative consumes the "(fluid" / "(mix"
// keyword, matching the mix|fluid alternation of spec §6.
type Grammar struct {
	Expr *Expr `@@`
}

type Expr struct {
	Pos   lexer.Position
	Fluid *FluidNode `  @@`
	Mix   *MixNode   `| @@`
}

type FluidNode struct {
	Concentration string `"(" "fluid" @Number`
	Volume        string `@Number ")"`
}

type MixNode struct {
	Left  *Expr `"(" "mix" @@`
	Right *Expr `@@ ")"`
}
