package diag

import (
	"github.com/viant/annolint/symbol"
)

// Diagnostic is one finding produced by a rule evaluation
type Diagnostic struct {
	Rule     string          // Descriptor ID that produced the finding
	Severity Severity        // Severity at report time
	Location symbol.Location // Anchoring source position
	Args     []string        // Ordered message arguments
}

// Sink consumes diagnostics as they are produced. Implementations are not
// required to be safe for concurrent use; drivers serialize reporting.
type Sink interface {
	Report(d Diagnostic)
}
