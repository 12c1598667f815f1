package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "ecmacore",
	Short: "ECMAScript 5.1 compiler core CLI",
	Long: `ecmacore is a Go implementation of an ECMAScript 5.1 compiler core:
an immutable-IR pipeline from parsed source through optimistic-typed,
codegen-ready program, with a persistent directory-backed code cache.

This CLI is glue only — it drives internal/compiler's fixed pipeline and
reports on its artifacts; it is not a script engine.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
