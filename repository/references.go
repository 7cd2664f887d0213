package repository

import (
	"context"
	"encoding/xml"
	"fmt"
	"path/filepath"
	"regexp"

	"golang.org/x/mod/modfile"
)

// pom models the dependency-bearing subset of a Maven POM
type pom struct {
	GroupID      string          `xml:"groupId"`
	ArtifactID   string          `xml:"artifactId"`
	Dependencies []pomDependency `xml:"dependencies>dependency"`
}

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
}

// References extracts the project's referenced module display names from its
// build manifest, in declaration order. Unknown project kinds yield no
// references rather than an error.
func (d *Detector) References(ctx context.Context, project *Project) ([]string, error) {
	if project == nil {
		return nil, fmt.Errorf("failed to extract references: project was nil")
	}
	switch project.Kind {
	case KindGo:
		return d.goReferences(ctx, filepath.Join(project.Root, "go.mod"))
	case KindMaven:
		return d.mavenReferences(ctx, filepath.Join(project.Root, "pom.xml"))
	case KindGradle:
		return d.gradleReferences(ctx, filepath.Join(project.Root, "build.gradle"))
	}
	return nil, nil
}

// goReferences lists a go.mod's required module paths
func (d *Detector) goReferences(ctx context.Context, goModPath string) ([]string, error) {
	content, err := d.fs.DownloadWithURL(ctx, goModPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", goModPath, err)
	}
	mod, err := modfile.Parse(goModPath, content, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", goModPath, err)
	}
	var out []string
	for _, require := range mod.Require {
		out = append(out, require.Mod.Path)
	}
	return out, nil
}

// mavenReferences lists a POM's dependency coordinates as groupId/artifactId
func (d *Detector) mavenReferences(ctx context.Context, pomPath string) ([]string, error) {
	parsed, err := d.parsePom(ctx, pomPath)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, dep := range parsed.Dependencies {
		if dep.ArtifactID == "" {
			continue
		}
		display := dep.ArtifactID
		if dep.GroupID != "" {
			display = dep.GroupID + "/" + dep.ArtifactID
		}
		out = append(out, display)
	}
	return out, nil
}

// parsePom reads and decodes a Maven POM
func (d *Detector) parsePom(ctx context.Context, pomPath string) (*pom, error) {
	content, err := d.fs.DownloadWithURL(ctx, pomPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", pomPath, err)
	}
	parsed := &pom{}
	if err := xml.Unmarshal(content, parsed); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", pomPath, err)
	}
	return parsed, nil
}

var gradleDependencyRegex = regexp.MustCompile(`(?m)^\s*(?:implementation|api|compileOnly|runtimeOnly|testImplementation)\s*[('"]+([^:'"]+):([^:'"]+)(?::[^'"]*)?['")]`)

// gradleReferences lists build.gradle dependency coordinates as group/name
func (d *Detector) gradleReferences(ctx context.Context, gradlePath string) ([]string, error) {
	content, err := d.fs.DownloadWithURL(ctx, gradlePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", gradlePath, err)
	}
	var out []string
	for _, match := range gradleDependencyRegex.FindAllSubmatch(content, -1) {
		out = append(out, string(match[1])+"/"+string(match[2]))
	}
	return out, nil
}
