package vcsrepo

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// GitAdapter implements Adapter by shelling out to the git binary
// found on PATH, the same approach the project's git tooling has
// always used: one small method per subcommand, output parsed with
// strings.Split and friends, errors wrapped with the failing command.
type GitAdapter struct {
	RepoPath string

	tagsOnce sync.Once
	tagsErr  error
	tagsVal  []Tag
}

// NewGitAdapter returns an adapter rooted at repoPath.
func NewGitAdapter(repoPath string) *GitAdapter {
	return &GitAdapter{RepoPath: repoPath}
}

func (g *GitAdapter) run(args ...string) ([]byte, error) {
	cmd := exec.Command("git", append([]string{"-C", g.RepoPath}, args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), ErrRepoUnavailable, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

// CurrentBranch implements Adapter.
func (g *GitAdapter) CurrentBranch() (Branch, error) {
	nameOut, err := g.run("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return Branch{}, err
	}
	tipOut, err := g.run("rev-parse", "HEAD")
	if err != nil {
		return Branch{}, err
	}
	return Branch{
		Name:        strings.TrimSpace(string(nameOut)),
		TipCommitID: strings.TrimSpace(string(tipOut)),
	}, nil
}

// Tags implements Adapter. Results are cached for the lifetime of
// this *GitAdapter, matching the engine's "cached for the duration of
// a single decision" resource rule when one adapter is used per call.
func (g *GitAdapter) Tags() ([]Tag, error) {
	g.tagsOnce.Do(func() {
		out, err := g.run("for-each-ref", "refs/tags",
			"--format=%(refname:short)%09%(objectname)%09%(*objectname)")
		if err != nil {
			g.tagsErr = err
			return
		}

		lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
		tags := make([]Tag, 0, len(lines))
		for _, line := range lines {
			if line == "" {
				continue
			}
			fields := strings.Split(line, "\t")
			if len(fields) < 2 {
				continue
			}
			name := fields[0]
			commit := fields[1]
			if len(fields) >= 3 && fields[2] != "" {
				// Annotated tag: deref to the commit it points at.
				commit = fields[2]
			}
			tags = append(tags, Tag{Name: name, TargetCommitID: commit})
		}
		g.tagsVal = tags
	})
	return g.tagsVal, g.tagsErr
}

// ResetTagCache drops the cached tag enumeration, releasing the
// repository handle's per-decision cache ahead of a subsequent,
// independent decision against the same adapter instance.
func (g *GitAdapter) ResetTagCache() {
	g.tagsOnce = sync.Once{}
	g.tagsErr = nil
	g.tagsVal = nil
}

var statusKind = map[byte]ChangeKind{
	'A': Added,
	'M': Modified,
	'D': Deleted,
	'R': Renamed,
}

// DiffPaths implements Adapter.
func (g *GitAdapter) DiffPaths(fromCommit, toCommit string) ([]DiffEntry, error) {
	out, err := g.run("diff", "--name-status", "--find-renames",
		fmt.Sprintf("%s..%s", fromCommit, toCommit))
	if err != nil {
		return nil, fmt.Errorf("%w: %s..%s", ErrUnknownCommit, fromCommit, toCommit)
	}

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	entries := make([]DiffEntry, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}
		status := fields[0]
		kind, ok := statusKind[status[0]]
		if !ok {
			continue
		}

		path := fields[len(fields)-1]
		entries = append(entries, DiffEntry{Path: canonicalizePath(path), Change: kind})
	}
	return entries, nil
}

// ReadBlob implements Adapter.
func (g *GitAdapter) ReadBlob(commit, path string) ([]byte, error) {
	out, err := g.run("show", fmt.Sprintf("%s:%s", commit, path))
	if err != nil {
		if strings.Contains(err.Error(), "does not exist") || strings.Contains(err.Error(), "exists on disk, but not in") {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

// IsAncestor implements Adapter.
func (g *GitAdapter) IsAncestor(ancestor, descendant string) (bool, error) {
	cmd := exec.Command("git", "-C", g.RepoPath, "merge-base", "--is-ancestor", ancestor, descendant)
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return false, nil
		}
		return false, fmt.Errorf("git merge-base --is-ancestor %s %s: %w", ancestor, descendant, ErrUnknownCommit)
	}
	return true, nil
}

func canonicalizePath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.TrimPrefix(p, "./")
	p = strings.TrimSuffix(p, "/")
	return p
}
