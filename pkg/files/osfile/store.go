package osfile

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/datatug/filescope/pkg/files"
)

var (
	osReadDir  = os.ReadDir
	osHostname = os.Hostname
)

func parentOf(path string) string { return filepath.Dir(path) }
func baseOf(path string) string   { return filepath.Base(path) }

var _ files.Store = (*Store)(nil)

// Store is the local filesystem backing for the tree and operations.
type Store struct {
	title string
	root  string
}

func NewStore(root string) *Store {
	if root == "" {
		_, _ = fmt.Fprintf(os.Stderr, "osfile store root is empty, defaulting to /\n")
		root = "/"
	}
	store := Store{root: root}
	var err error
	if store.title, err = osHostname(); err != nil {
		store.title = err.Error()
	}
	return &store
}

func (s Store) Root() string {
	return s.root
}

func (s Store) RootTitle() string {
	return s.title
}

func (s Store) RootURL() url.URL {
	return url.URL{Scheme: "file"}
}

func (s Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osReadDir(name)
}

func (s Store) CreateDir(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := files.CreateFolder(parentOf(path), baseOf(path))
	return err
}

func (s Store) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return files.Delete(path)
}

func (s Store) Rename(ctx context.Context, oldPath, newPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := files.Rename(oldPath, baseOf(newPath))
	return err
}
