package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/annolint/adapter/golang"
	"github.com/viant/annolint/adapter/java"
	"github.com/viant/annolint/audit"
	"github.com/viant/annolint/diag"
	"github.com/viant/annolint/report"
	"github.com/viant/annolint/repository"
	"github.com/viant/annolint/rule"
	"github.com/viant/annolint/symbol"
)

var auditFlags struct {
	config    string
	format    string
	enable    []string
	failOn    string
	jobs      int
	skipTests bool
}

var auditCmd = &cobra.Command{
	Use:   "audit [dir]",
	Short: "Audit a rule-plugin project and report findings",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAudit,
}

func init() {
	auditCmd.Flags().StringVarP(&auditFlags.config, "config", "c", "", "config file (default <root>/"+defaultConfigFile+")")
	auditCmd.Flags().StringVarP(&auditFlags.format, "format", "f", "", "report format: text, json or sarif")
	auditCmd.Flags().StringSliceVarP(&auditFlags.enable, "enable", "e", nil, "diagnostic IDs to opt into, e.g. AL1001")
	auditCmd.Flags().StringVar(&auditFlags.failOn, "fail-on", "", "minimum severity that fails the run: info, advisory, warning or error")
	auditCmd.Flags().IntVarP(&auditFlags.jobs, "jobs", "j", 0, "parallel symbol evaluations, NumCPU when zero")
	auditCmd.Flags().BoolVar(&auditFlags.skipTests, "skip-tests", false, "skip test sources when building the graph")
}

func runAudit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	detector := repository.New()
	project, err := detector.Detect(ctx, dir)
	if err != nil {
		return fmt.Errorf("failed to detect project in %s: %w", dir, err)
	}

	config, err := loadConfig(ctx, auditFlags.config, project.Root)
	if err != nil {
		return err
	}
	applyFlags(cmd, config)

	graph, marker, base, err := buildGraph(project, config)
	if err != nil {
		return err
	}
	references, err := detector.References(ctx, project)
	if err != nil {
		return err
	}
	for _, display := range references {
		graph.AddReference(display)
	}

	bag := diag.NewBag()
	err = audit.Run(ctx, graph, bag, audit.Options{
		Marker:  marker,
		Base:    base,
		Enabled: config.enabledOverrides(auditFlags.enable),
		Jobs:    config.Jobs,
	})
	if err != nil {
		return err
	}
	bag.Sort()

	if err := report.Write(os.Stdout, config.Format, bag.Items(), rule.Descriptors()); err != nil {
		return err
	}

	if config.FailOn != "" {
		min, ok := diag.ParseSeverity(config.FailOn)
		if !ok {
			return fmt.Errorf("unknown severity: %s", config.FailOn)
		}
		if n := bag.Count(min); n > 0 {
			return fmt.Errorf("found %d finding(s) at or above %s", n, min)
		}
	}
	return nil
}

// applyFlags overlays command-line flags onto the loaded config
func applyFlags(cmd *cobra.Command, config *Config) {
	if cmd.Flags().Changed("format") || config.Format == "" {
		config.Format = auditFlags.format
	}
	if cmd.Flags().Changed("fail-on") {
		config.FailOn = auditFlags.failOn
	}
	if cmd.Flags().Changed("jobs") {
		config.Jobs = auditFlags.jobs
	}
	if cmd.Flags().Changed("skip-tests") {
		config.SkipTests = auditFlags.skipTests
	}
}

// buildGraph constructs the symbol graph for the project kind and returns the
// marker and base type names the audit resolves against.
func buildGraph(project *repository.Project, config *Config) (*symbol.Graph, string, string, error) {
	switch {
	case project.IsJava():
		inspector := java.NewInspector(&java.Config{SkipTests: config.SkipTests})
		graph, err := inspector.InspectProject(project.Root)
		if err != nil {
			return nil, "", "", err
		}
		return graph, java.MarkerTypeName, java.BaseTypeName, nil
	case project.Kind == repository.KindGo:
		inspector := golang.NewInspector(&golang.Config{SkipTests: config.SkipTests})
		graph, err := inspector.InspectProject(project.Root)
		if err != nil {
			return nil, "", "", err
		}
		return graph, golang.MarkerTypeName, golang.BaseTypeName, nil
	}
	return nil, "", "", fmt.Errorf("cannot audit %s project: %s", project.Kind, project.Root)
}
