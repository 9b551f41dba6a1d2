package scan

import (
	"encoding/json"
	"encoding/xml"
	"regexp"
	"sort"
	"strings"

	"codefactory/internal/safeio"
)

var gradleDepRe = regexp.MustCompile(`(implementation|api|compileOnly|runtimeOnly)\s+["']([^"']+)["']`)

// ExtractManifestDeps scrapes dependency lists from the common manifest
// files at the repo root. Every key is always present so downstream
// consumers can rely on the shape; a manifest that fails to parse simply
// contributes nothing.
func ExtractManifestDeps(fs *safeio.RepoFS) map[string][]string {
	deps := map[string][]string{
		"maven":  {},
		"gradle": {},
		"npm":    {},
		"pip":    {},
	}

	if b, err := fs.ReadFile("pom.xml"); err == nil {
		deps["maven"] = parsePomDependencies(b)
	}
	if b, err := fs.ReadFile("build.gradle"); err == nil {
		for _, m := range gradleDepRe.FindAllStringSubmatch(string(b), -1) {
			deps["gradle"] = append(deps["gradle"], m[2])
		}
	}
	if b, err := fs.ReadFile("package.json"); err == nil {
		deps["npm"] = parseNPMDependencies(b)
	}
	if b, err := fs.ReadFile("requirements.txt"); err == nil {
		for _, line := range splitLines(string(b)) {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			deps["pip"] = append(deps["pip"], line)
		}
	}
	return deps
}

// parsePomDependencies collects "group:artifact" pairs from every
// <dependency> element, wherever it sits in the document.
func parsePomDependencies(b []byte) []string {
	var out []string
	dec := xml.NewDecoder(strings.NewReader(string(b)))
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "dependency" {
			continue
		}
		var dep struct {
			GroupID    string `xml:"groupId"`
			ArtifactID string `xml:"artifactId"`
		}
		if err := dec.DecodeElement(&dep, &start); err != nil {
			continue
		}
		if dep.GroupID != "" && dep.ArtifactID != "" {
			out = append(out, dep.GroupID+":"+dep.ArtifactID)
		}
	}
	if out == nil {
		return []string{}
	}
	return out
}

// parseNPMDependencies renders "name@version" entries from dependencies
// and devDependencies, sorted for a stable manifest.
func parseNPMDependencies(b []byte) []string {
	var pkg struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(b, &pkg); err != nil {
		return []string{}
	}
	out := make([]string, 0, len(pkg.Dependencies)+len(pkg.DevDependencies))
	for _, m := range []map[string]string{pkg.Dependencies, pkg.DevDependencies} {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			out = append(out, k+"@"+m[k])
		}
	}
	return out
}
