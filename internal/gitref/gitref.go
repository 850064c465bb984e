// Package gitref discovers the release tag of the checked-out commit.
// It reads the repository with go-git, so no git binary is required.
package gitref

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/maruel/natural"
)

// Sentinel errors for tag discovery.
var (
	ErrOpenRepository = errors.New("cannot open git repository")
	ErrNoTagAtHead    = errors.New("no tag points at HEAD")
)

// HeadTag returns the tag naming the HEAD commit of the repository
// containing path. The search walks up to the enclosing .git directory.
// Lightweight and annotated tags both count. When several tags point at
// HEAD the highest in natural order wins, so v1.10.0 beats v1.9.0.
func HeadTag(path string) (string, error) {
	tags, err := TagsAtHead(path)
	if err != nil {
		return "", err
	}
	return tags[len(tags)-1], nil
}

// TagsAtHead returns every tag naming the HEAD commit in ascending
// natural order. Returns ErrNoTagAtHead when there is none.
func TagsAtHead(path string) ([]string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return nil, err
	}

	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, fmt.Errorf("%w: repository has no commits", ErrNoTagAtHead)
		}
		return nil, fmt.Errorf("resolving HEAD: %w", err)
	}

	iter, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	defer iter.Close()

	var names []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		target, ok := commitHash(repo, ref)
		if ok && target == head.Hash() {
			names = append(names, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("%w (%s)", ErrNoTagAtHead, head.Hash().String()[:7])
	}

	sort.Sort(natural.StringSlice(names))
	return names, nil
}

// commitHash resolves a tag reference to the commit it names.
// Annotated tags are peeled to their target; tags on trees or blobs are skipped.
func commitHash(repo *git.Repository, ref *plumbing.Reference) (plumbing.Hash, bool) {
	tag, err := repo.TagObject(ref.Hash())
	switch {
	case err == nil:
		commit, cErr := tag.Commit()
		if cErr != nil {
			return plumbing.ZeroHash, false
		}
		return commit.Hash, true
	case errors.Is(err, plumbing.ErrObjectNotFound):
		return ref.Hash(), true
	default:
		return plumbing.ZeroHash, false
	}
}

// openRepo opens the repository at path, or the working directory when
// path is empty, walking up the tree to find .git.
func openRepo(path string) (*git.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w at %s: %v", ErrOpenRepository, path, err)
	}
	return repo, nil
}
