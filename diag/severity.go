package diag

// Severity grades a diagnostic
type Severity uint8

const (
	SevInfo Severity = iota
	SevAdvisory
	SevWarning
	SevError
)

// String returns the lowercase severity label
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevAdvisory:
		return "advisory"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseSeverity maps a label back to its severity, defaulting to info
func ParseSeverity(label string) (Severity, bool) {
	switch label {
	case "info":
		return SevInfo, true
	case "advisory":
		return SevAdvisory, true
	case "warning":
		return SevWarning, true
	case "error":
		return SevError, true
	}
	return SevInfo, false
}
