package report

import (
	"encoding/json"
	"io"

	"github.com/viant/annolint/diag"
)

type sarifOutput struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	ShortDescription sarifMessage      `json:"shortDescription"`
	Properties       map[string]string `json:"properties,omitempty"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations,omitempty"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           *sarifRegion          `json:"region,omitempty"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

// WriteSARIF renders diagnostics as a SARIF 2.1.0 log
func WriteSARIF(w io.Writer, diagnostics []diag.Diagnostic, catalog []diag.Descriptor) error {
	index := Index(catalog)

	rules := make([]sarifRule, 0, len(catalog))
	for _, desc := range catalog {
		rule := sarifRule{
			ID:               desc.ID,
			Name:             desc.Title,
			ShortDescription: sarifMessage{Text: desc.Title},
		}
		if len(desc.Tags) > 0 {
			rule.Properties = map[string]string{"tags": desc.Tags[0]}
		}
		rules = append(rules, rule)
	}

	results := make([]sarifResult, 0, len(diagnostics))
	for _, d := range diagnostics {
		result := sarifResult{
			RuleID:  d.Rule,
			Level:   sarifLevel(d.Severity),
			Message: sarifMessage{Text: message(d, index)},
		}
		if d.Location.Path != "" {
			physical := sarifPhysicalLocation{
				ArtifactLocation: sarifArtifactLocation{URI: d.Location.Path},
			}
			if d.Location.Line > 0 {
				physical.Region = &sarifRegion{
					StartLine:   d.Location.Line,
					StartColumn: d.Location.Column,
				}
			}
			result.Locations = []sarifLocation{{PhysicalLocation: physical}}
		}
		results = append(results, result)
	}

	out := sarifOutput{
		Version: "2.1.0",
		Schema:  "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json",
		Runs: []sarifRun{
			{
				Tool: sarifTool{
					Driver: sarifDriver{
						Name:           "annolint",
						Version:        "0.1.0",
						InformationURI: "https://github.com/viant/annolint",
						Rules:          rules,
					},
				},
				Results: results,
			},
		},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// sarifLevel maps internal severities to the SARIF level vocabulary
func sarifLevel(severity diag.Severity) string {
	switch severity {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "note"
	}
}
