package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/ecmacore/internal/codecache"
)

var cacheStatsCmd = &cobra.Command{
	Use:   "cache-stats <dir>",
	Short: "Show aggregate size of a code-cache directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := codecache.Open(args[0])
		if err != nil {
			return err
		}
		stat, err := c.Stats()
		if err != nil {
			return err
		}
		fmt.Println(stat.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cacheStatsCmd)
}
