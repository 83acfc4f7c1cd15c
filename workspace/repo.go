// Package workspace describes the repositories that script-executing
// tools operate against, and how to bring them back to a known commit
// between runs.
package workspace

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

var (
	// ErrNotRepo is returned when a local path holds no git repository.
	ErrNotRepo = errors.New("workspace: not a git repository")

	// ErrDirty is returned when a local repository has uncommitted
	// changes.
	ErrDirty = errors.New("workspace: repository has uncommitted changes")
)

// Repo is a repository configuration. Name identifies the working
// directory on the execution side, and ResetCommands restores the tree
// to the configured base commit.
type Repo interface {
	Name() string
	BaseCommit() string
	ResetCommands() []string
}

// resetCommands restores a checkout to base, discarding local edits and
// untracked files.
func resetCommands(base string) []string {
	return []string{
		"git fetch",
		"git status",
		"git restore .",
		"git reset --hard",
		"git checkout " + base,
		"git clean -fdq",
	}
}

// sanitizeName makes a directory name usable as a repo identifier.
var sanitizeName = strings.NewReplacer(" ", "-", "'", "")

// PreExistingRepo points at a repository already present on the
// execution side.
type PreExistingRepo struct {
	RepoName string `yaml:"repo_name"`
	Base     string `yaml:"base_commit"`

	// Reset controls whether the tree is reset to Base between runs.
	Reset bool `yaml:"reset"`
}

func (r PreExistingRepo) Name() string { return r.RepoName }

func (r PreExistingRepo) BaseCommit() string { return defaultBase(r.Base) }

func (r PreExistingRepo) ResetCommands() []string {
	if !r.Reset {
		return nil
	}
	return resetCommands(r.BaseCommit())
}

// LocalRepo points at a repository on the local filesystem.
type LocalRepo struct {
	Path string `yaml:"path"`
	Base string `yaml:"base_commit"`
}

func (r LocalRepo) Name() string {
	abs, err := filepath.Abs(r.Path)
	if err != nil {
		abs = r.Path
	}
	return sanitizeName.Replace(filepath.Base(abs))
}

func (r LocalRepo) BaseCommit() string { return defaultBase(r.Base) }

func (r LocalRepo) ResetCommands() []string {
	return resetCommands(r.BaseCommit())
}

// Validate checks that the path holds a clean git repository.
func (r LocalRepo) Validate() error {
	repo, err := r.open()
	if err != nil {
		return err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("workspace: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return fmt.Errorf("workspace: %w", err)
	}
	if !status.IsClean() {
		return fmt.Errorf("%w: %s", ErrDirty, r.Path)
	}
	return nil
}

// ResolveBaseCommit resolves the configured base (commit hash, branch,
// tag, or HEAD) to a concrete commit hash.
func (r LocalRepo) ResolveBaseCommit() (string, error) {
	repo, err := r.open()
	if err != nil {
		return "", err
	}
	hash, err := repo.ResolveRevision(plumbing.Revision(r.BaseCommit()))
	if err != nil {
		return "", fmt.Errorf("workspace: resolve %s: %w", r.BaseCommit(), err)
	}
	return hash.String(), nil
}

func (r LocalRepo) open() (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(r.Path, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, fmt.Errorf("%w: %s", ErrNotRepo, r.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("workspace: open %s: %w", r.Path, err)
	}
	return repo, nil
}

// GitHubRepo names a repository to clone from GitHub. URL accepts
// either a full https URL or the short "org/repo" form.
type GitHubRepo struct {
	URL  string `yaml:"github_url"`
	Base string `yaml:"base_commit"`
}

func (r GitHubRepo) Name() string {
	org, repo := splitGitHubURL(r.fullURL())
	return org + "__" + repo
}

func (r GitHubRepo) BaseCommit() string { return defaultBase(r.Base) }

func (r GitHubRepo) ResetCommands() []string {
	return resetCommands(r.BaseCommit())
}

// CloneCommands produces the shallow-fetch sequence that materializes
// the repo at its base commit.
func (r GitHubRepo) CloneCommands(token string) []string {
	name := r.Name()
	return []string{
		"mkdir /" + name,
		"cd /" + name,
		"git init",
		"git remote add origin " + r.urlWithToken(token),
		"git fetch --depth 1 origin " + r.BaseCommit(),
		"git checkout FETCH_HEAD",
		"cd ..",
	}
}

func (r GitHubRepo) fullURL() string {
	if strings.Count(r.URL, "/") == 1 && !strings.Contains(r.URL, "://") {
		return "https://github.com/" + r.URL
	}
	return r.URL
}

// urlWithToken prepends an access token to the clone URL. A URL that
// already carries credentials is left alone.
func (r GitHubRepo) urlWithToken(token string) string {
	u := r.fullURL()
	if token == "" || strings.Contains(u, "@") {
		return u
	}
	_, rest, ok := strings.Cut(u, "://")
	if !ok {
		return u
	}
	return "https://" + token + "@" + rest
}

func splitGitHubURL(u string) (org, repo string) {
	u = strings.TrimSuffix(u, ".git")
	if _, rest, ok := strings.Cut(u, "://"); ok {
		u = rest
	}
	parts := strings.Split(u, "/")
	if len(parts) < 2 {
		return u, ""
	}
	return parts[len(parts)-2], parts[len(parts)-1]
}

func defaultBase(base string) string {
	if base == "" {
		return "HEAD"
	}
	return base
}
