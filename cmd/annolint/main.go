package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "annolint",
	Short: "Audits inspector rule plugins for annotation consistency",
	Long: `annolint inspects rule-plugin projects built against the viant inspector
platform and reports types whose marker annotations are missing or whose
declared language support could be extended.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(rulesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
