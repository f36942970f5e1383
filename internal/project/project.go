// Package project loads ProjectRef values from on-disk JSON
// manifests. This is the "project loader" collaborator referenced by
// the engine's external interfaces; the engine itself never reads
// these files — it only ever sees the ProjectRef value produced here.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Ref is a project's identity and dependency graph as seen by the
// version-decision engine.
type Ref struct {
	Name         string   `json:"name"`
	RelativePath string   `json:"relative_path"`
	Dependencies []string `json:"dependencies"`
	IsTest       bool     `json:"is_test"`
	IsPackable   bool     `json:"is_packable"`
}

// Slug is the canonical, lowercased form of Name used for
// project-scoped tag matching.
func (r Ref) Slug() string {
	return strings.ToLower(r.Name)
}

// manifestSuffix is the filename convention LoadManifestDir scans for.
const manifestSuffix = ".project.json"

// LoadManifest reads a single project manifest file.
func LoadManifest(path string) (Ref, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Ref{}, fmt.Errorf("read project manifest %s: %w", path, err)
	}

	var ref Ref
	if err := json.Unmarshal(raw, &ref); err != nil {
		return Ref{}, fmt.Errorf("parse project manifest %s: %w", path, err)
	}

	if ref.Name == "" {
		return Ref{}, fmt.Errorf("project manifest %s: missing required field \"name\"", path)
	}
	if ref.Dependencies == nil {
		ref.Dependencies = []string{}
	}
	ref.RelativePath = normalizePath(ref.RelativePath)
	for i, dep := range ref.Dependencies {
		ref.Dependencies[i] = normalizePath(dep)
	}

	return ref, nil
}

// LoadManifestDir loads every *.project.json file directly under dir,
// sorted by name for deterministic CLI report ordering.
func LoadManifestDir(dir string) ([]Ref, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read project manifest dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), manifestSuffix) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	refs := make([]Ref, 0, len(names))
	for _, name := range names {
		ref, err := LoadManifest(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// normalizePath canonicalizes a manifest-supplied path the same way
// the engine requires at its boundary: forward slashes, no leading
// "./", no trailing slash.
func normalizePath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.TrimPrefix(p, "./")
	p = strings.TrimSuffix(p, "/")
	return p
}
