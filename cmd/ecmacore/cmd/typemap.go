package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/cwbudde/ecmacore/internal/compiler"
	"github.com/cwbudde/ecmacore/internal/optimistic"
)

var typeMapCmd = &cobra.Command{
	Use:   "type-map",
	Short: "Run the pipeline over the built-in sample program and print its program-point type map",
	RunE: func(cmd *cobra.Command, args []string) error {
		unit := &compiler.Unit{CompileUnit: 1, Program: samplePipelineInput()}
		pipeline := compiler.NewPipeline(
			compiler.SymbolScopeStage{},
			compiler.FlowStage{},
			compiler.OptimisticTypingStage{},
			compiler.CodegenReadinessStage{},
		)
		if err := pipeline.Run(unit); err != nil {
			return err
		}

		pps := make([]optimistic.ProgramPoint, 0, len(unit.TypeMap))
		for pp := range unit.TypeMap {
			pps = append(pps, pp)
		}
		sort.Slice(pps, func(i, j int) bool { return pps[i] < pps[j] })
		for _, pp := range pps {
			fmt.Printf("pp=%d -> %s\n", pp, unit.TypeMap[pp])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(typeMapCmd)
}
