package repository

import (
	"context"
	"os"
	"path/filepath"
	"regexp"

	"github.com/viant/afs"
	"golang.org/x/mod/modfile"
)

// Detector identifies project root folders and provides project-related
// information
type Detector struct {
	fs afs.Service
	// Ordered project root marker files
	markers []marker
}

type marker struct {
	file string
	kind string
}

// New creates a new project detector instance
func New() *Detector {
	return &Detector{
		fs: afs.New(),
		markers: []marker{
			{file: "go.mod", kind: KindGo},
			{file: "pom.xml", kind: KindMaven},
			{file: "build.gradle", kind: KindGradle},
			{file: "build.gradle.kts", kind: KindGradle},
			{file: ".git", kind: KindGit},
		},
	}
}

// Detect identifies the project containing the given path. The search starts
// at the path itself, a file's parent directory when the path is a file, and
// walks up until a marker matches.
func (d *Detector) Detect(ctx context.Context, path string) (*Project, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	startDir := absPath
	if !fileInfo.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	rootPath, kind := d.findProjectRoot(startDir)
	project := &Project{Kind: KindUnknown, Root: absPath}
	if rootPath != "" {
		project.Root = rootPath
		project.Kind = kind
	}
	project.Name = d.extractProjectName(ctx, project.Root, project.Kind)
	return project, nil
}

// findProjectRoot searches up from the current directory for project markers
func (d *Detector) findProjectRoot(startDir string) (string, string) {
	dir := startDir
	for {
		for _, candidate := range d.markers {
			markerPath := filepath.Join(dir, candidate.file)
			if _, err := os.Stat(markerPath); err == nil {
				return dir, candidate.kind
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// We've reached the filesystem root with no match
			break
		}
		dir = parent
	}
	return "", ""
}

// extractProjectName attempts to extract a project name from the build
// manifest, falling back to the root directory name.
func (d *Detector) extractProjectName(ctx context.Context, rootPath, kind string) string {
	switch kind {
	case KindGo:
		if name := d.goModuleName(ctx, filepath.Join(rootPath, "go.mod")); name != "" {
			return name
		}
	case KindMaven:
		if name := d.mavenArtifactName(ctx, filepath.Join(rootPath, "pom.xml")); name != "" {
			return name
		}
	case KindGradle:
		if name := d.gradleProjectName(ctx, filepath.Join(rootPath, "settings.gradle")); name != "" {
			return name
		}
	}
	return filepath.Base(rootPath)
}

// goModuleName reads the module path from a go.mod file
func (d *Detector) goModuleName(ctx context.Context, goModPath string) string {
	content, err := d.fs.DownloadWithURL(ctx, goModPath)
	if err != nil || len(content) == 0 {
		return ""
	}
	mod, err := modfile.Parse(goModPath, content, nil)
	if err != nil || mod.Module == nil {
		return ""
	}
	return mod.Module.Mod.Path
}

// mavenArtifactName extracts the artifactId of a POM's own coordinates
func (d *Detector) mavenArtifactName(ctx context.Context, pomPath string) string {
	pom, err := d.parsePom(ctx, pomPath)
	if err != nil {
		return ""
	}
	return pom.ArtifactID
}

var gradleNameRegex = regexp.MustCompile(`rootProject\.name\s*=\s*['"]([^'"]+)['"]`)

// gradleProjectName extracts rootProject.name from settings.gradle
func (d *Detector) gradleProjectName(ctx context.Context, settingsPath string) string {
	content, err := d.fs.DownloadWithURL(ctx, settingsPath)
	if err != nil {
		return ""
	}
	matches := gradleNameRegex.FindSubmatch(content)
	if len(matches) < 2 {
		return ""
	}
	return string(matches[1])
}
