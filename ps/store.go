package ps

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-git/go-billy/v6"
	"github.com/go-git/go-billy/v6/memfs"
	"github.com/go-git/go-billy/v6/osfs"
	"github.com/go-git/go-billy/v6/util"
	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/cache"
	"github.com/go-git/go-git/v6/plumbing/object"
	"github.com/go-git/go-git/v6/storage/filesystem"
	"github.com/go-git/go-git/v6/storage/memory"

	"github.com/reldb/reldb/core"
)

const snapshotFile = "snapshot.json"

var ErrNoSnapshot = errors.New("no snapshot saved")

// Store keeps snapshots in a git repository, one commit per save. The
// memory flavor lives entirely in process; the file flavor persists
// under a base directory and survives restarts.
type Store struct {
	fs   billy.Filesystem
	repo *git.Repository
}

// Version is one saved snapshot in the store's history.
type Version struct {
	Id      string    `json:"id"`
	Author  string    `json:"author"`
	Time    time.Time `json:"time"`
	Message string    `json:"message"`
}

func NewMemoryStore() (*Store, error) {
	wt := memfs.New()
	storer := memory.NewStorage()

	repo, err := git.Init(storer, git.WithWorkTree(wt))
	if err != nil {
		return nil, err
	}

	return &Store{fs: wt, repo: repo}, nil
}

func NewFileStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	wt := osfs.New(baseDir)
	fs, err := wt.Chroot(".git")
	if err != nil {
		return nil, err
	}

	storer := filesystem.NewStorageWithOptions(
		fs,
		cache.NewObjectLRUDefault(),
		filesystem.Options{ExclusiveAccess: true})

	var repo *git.Repository
	if _, statErr := os.Stat(fs.Root()); statErr != nil {
		repo, err = git.Init(storer, git.WithWorkTree(wt))
	} else {
		repo, err = git.Open(storer, wt)
	}
	if err != nil {
		return nil, err
	}

	return &Store{fs: wt, repo: repo}, nil
}

// Save writes the snapshot and commits it with the identity as author.
func (store *Store) Save(snapshot Snapshot, identity core.Identity, message string) (Version, error) {
	data, err := Marshal(snapshot)
	if err != nil {
		return Version{}, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := util.WriteFile(store.fs, snapshotFile, data, 0644); err != nil {
		return Version{}, fmt.Errorf("failed to write snapshot: %w", err)
	}

	wt, err := store.repo.Worktree()
	if err != nil {
		return Version{}, err
	}

	if _, err := wt.Add(snapshotFile); err != nil {
		return Version{}, fmt.Errorf("failed to stage snapshot: %w", err)
	}

	hash, err := wt.Commit(message, &git.CommitOptions{
		AllowEmptyCommits: true,
		Author: &object.Signature{
			Name:  identity.Name,
			Email: identity.Email,
			When:  time.Now(),
		},
	})
	if err != nil {
		return Version{}, fmt.Errorf("failed to commit snapshot: %w", err)
	}

	return Version{
		Id:      hash.String(),
		Author:  identity.Name,
		Time:    time.Now(),
		Message: message,
	}, nil
}

// Load reads the most recently saved snapshot from the worktree.
func (store *Store) Load() (Snapshot, error) {
	data, err := util.ReadFile(store.fs, snapshotFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return Unmarshal(data)
}

// Versions lists every saved snapshot, most recent first.
func (store *Store) Versions() ([]Version, error) {
	head, err := store.repo.Head()
	if err != nil {
		return nil, nil
	}

	iter, err := store.repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, err
	}

	var versions []Version
	err = iter.ForEach(func(c *object.Commit) error {
		versions = append(versions, Version{
			Id:      c.Hash.String(),
			Author:  c.Author.Name,
			Time:    c.Author.When,
			Message: c.Message,
		})
		return nil
	})
	return versions, err
}

// LoadAt reads the snapshot exactly as it was at the given version.
func (store *Store) LoadAt(id string) (Snapshot, error) {
	commit, err := store.repo.CommitObject(plumbing.NewHash(id))
	if err != nil {
		return nil, fmt.Errorf("version %s: %w", id, err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, err
	}

	file, err := tree.File(snapshotFile)
	if err != nil {
		return nil, fmt.Errorf("version %s: %w", id, ErrNoSnapshot)
	}

	contents, err := file.Contents()
	if err != nil {
		return nil, err
	}
	return Unmarshal([]byte(contents))
}
