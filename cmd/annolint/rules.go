package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/viant/annolint/rule"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the diagnostic catalog",
	RunE:  runRules,
}

func runRules(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSEVERITY\tENABLED\tTAGS\tTITLE")
	for _, desc := range rule.Descriptors() {
		fmt.Fprintf(w, "%s\t%s\t%v\t%s\t%s\n",
			desc.ID, desc.Severity, desc.Enabled, strings.Join(desc.Tags, ","), desc.Title)
	}
	return w.Flush()
}
