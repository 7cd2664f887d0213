package repository

// Project kinds recognized by the detector
const (
	KindGo      = "go"
	KindMaven   = "maven"
	KindGradle  = "gradle"
	KindGit     = "git"
	KindUnknown = "unknown"
)

// Project describes a detected rule-plugin project
type Project struct {
	Name string `yaml:"name"` // Module or artifact name from the build manifest
	Kind string `yaml:"kind"` // One of the Kind constants
	Root string `yaml:"root"` // Absolute project root directory
}

// IsJava reports whether the project builds Java sources
func (p *Project) IsJava() bool {
	return p.Kind == KindMaven || p.Kind == KindGradle
}
