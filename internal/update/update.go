// Package update performs self-updates by driving the git client against
// the repository the quoter installation lives in.
package update

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNotInstalled indicates the git binary is not on PATH.
var ErrNotInstalled = errors.New("git is not installed")

// ErrDevEnvironment indicates the installation is marked as a development
// environment and destructive updates are refused.
var ErrDevEnvironment = errors.New("development environment, refusing to merge")

// DevMarkerFile marks a checkout as a development environment when present
// at the repository root.
const DevMarkerFile = ".devenv"

// Result describes the outcome of a fetch-and-merge.
type Result struct {
	UpToDate bool   `json:"up_to_date"`
	Output   string `json:"output,omitempty"`
}

// Updater is the narrow collaborator interface the CLI depends on. The
// quote store itself never touches version control.
type Updater interface {
	FetchUpdates(ctx context.Context) (Result, error)
	CurrentVersionTag(ctx context.Context) (string, error)
}

// GitUpdater updates a checkout by shelling out to the git client.
type GitUpdater struct {
	RepoRoot string
	Remote   string
	Branch   string // Empty means the currently checked out branch
}

// NewGitUpdater locates the enclosing git repository starting from dir and
// returns an updater for it. Fails if git is not installed or dir is not
// inside a repository.
func NewGitUpdater(dir, remote, branch string) (*GitUpdater, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return nil, ErrNotInstalled
	}

	root, err := FindRepoRoot(dir)
	if err != nil {
		return nil, err
	}

	if remote == "" {
		remote = "origin"
	}
	return &GitUpdater{RepoRoot: root, Remote: remote, Branch: branch}, nil
}

// FindRepoRoot walks up from start looking for a .git directory.
func FindRepoRoot(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		info, err := os.Stat(filepath.Join(abs, ".git"))
		if err == nil && info.IsDir() {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not inside a git repository")
		}
		abs = parent
	}
}

// IsDevEnvironment reports whether the checkout carries the .devenv marker.
func (u *GitUpdater) IsDevEnvironment() bool {
	_, err := os.Stat(filepath.Join(u.RepoRoot, DevMarkerFile))
	return err == nil
}

// CurrentVersionTag returns the most recent tag reachable from HEAD.
// Release tags are pushed lightweight, so describe needs --tags.
func (u *GitUpdater) CurrentVersionTag(ctx context.Context) (string, error) {
	out, err := u.git(ctx, "describe", "--tags", "--abbrev=0")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// FetchUpdates fetches from the configured remote and fast-forwards the
// current branch. A checkout marked as a development environment is never
// merged into. Failure leaves the checkout and the quote store untouched.
func (u *GitUpdater) FetchUpdates(ctx context.Context) (Result, error) {
	if u.IsDevEnvironment() {
		return Result{}, ErrDevEnvironment
	}

	if _, err := u.git(ctx, "fetch", u.Remote); err != nil {
		return Result{}, fmt.Errorf("fetching from %s: %w", u.Remote, err)
	}

	branch := u.Branch
	if branch == "" {
		out, err := u.git(ctx, "rev-parse", "--abbrev-ref", "HEAD")
		if err != nil {
			return Result{}, fmt.Errorf("resolving current branch: %w", err)
		}
		branch = strings.TrimSpace(out)
	}

	out, err := u.git(ctx, "merge", "--ff-only", u.Remote+"/"+branch)
	if err != nil {
		return Result{}, fmt.Errorf("merging %s/%s: %w", u.Remote, branch, err)
	}

	out = strings.TrimSpace(out)
	return Result{
		UpToDate: strings.HasPrefix(out, "Already up to date"),
		Output:   out,
	}, nil
}

// git runs a git command in the repository root and returns stdout.
func (u *GitUpdater) git(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = u.RepoRoot
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("git %s: %s", args[0], strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return string(output), nil
}
