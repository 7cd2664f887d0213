package diag

import "fmt"

// TagTelemetry marks diagnostics collected for adoption measurement rather
// than build gating.
const TagTelemetry = "telemetry"

// Descriptor describes one diagnostic kind a rule can produce
type Descriptor struct {
	ID       string   // Stable identifier, e.g. AL1001
	Title    string   // Short human summary
	Template string   // Message template rendered with the diagnostic args
	Severity Severity // Default severity
	Enabled  bool     // Whether the diagnostic is reported without opt-in
	Tags     []string // Classification tags
}

// Format renders the message template with the supplied ordered arguments
func (d Descriptor) Format(args ...string) string {
	if len(args) == 0 {
		return d.Template
	}
	out := make([]any, len(args))
	for i, arg := range args {
		out[i] = arg
	}
	return fmt.Sprintf(d.Template, out...)
}

// HasTag reports whether the descriptor carries the supplied tag
func (d Descriptor) HasTag(tag string) bool {
	for _, candidate := range d.Tags {
		if candidate == tag {
			return true
		}
	}
	return false
}
