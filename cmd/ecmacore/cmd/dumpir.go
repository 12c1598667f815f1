package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/ecmacore/internal/ir"
	"github.com/cwbudde/ecmacore/internal/token"
)

// samplePipelineInput builds a small, fixed IR tree to exercise the
// pipeline and its reporting commands. Parsing source text into IR is out
// of scope for this module; a production embedder supplies
// its own parser and hands the result straight to internal/compiler.
func samplePipelineInput() *ir.Function {
	tok := token.New(token.KindUnknown, 0, 1)
	one := ir.NewLiteral(tok, 1, ir.LiteralNumber, 1.0)
	two := ir.NewLiteral(tok, 1, ir.LiteralNumber, 2.0)
	sum := ir.NewBinary(tok, 1, ir.OpAdd, one, two)
	stmt := ir.NewExpressionStatement(tok, 1, sum)
	body := ir.NewBlock(tok, 1, []ir.Statement{stmt}, nil, ir.BlockIsBody|ir.BlockIsGlobalScope)
	return ir.NewFunction(tok, 1, nil, nil, body, ir.FunctionScript)
}

var dumpIRCmd = &cobra.Command{
	Use:   "dump-ir",
	Short: "Print the IR tree for the built-in sample program",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), samplePipelineInput().String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpIRCmd)
}
