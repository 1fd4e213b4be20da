package filetree

import (
	"context"

	"github.com/datatug/filescope/pkg/files"
	"github.com/sirupsen/logrus"
)

// State tracks where the model is in its listing cycle.
type State int

const (
	StateUnloaded State = iota
	StateReloading
	StateLoaded
)

// Model is a lazy, stateful view over one directory root. Entries are
// recomputed on every reload and never cached beyond one listing cycle.
// It is driven from a single event stream and does no locking of its own.
type Model struct {
	store   files.Store
	root    string
	state   State
	filter  Filter
	entries []files.Entry
}

func NewModel(store files.Store, root string) *Model {
	return &Model{
		store: store,
		root:  root,
	}
}

func (m *Model) Root() string           { return m.root }
func (m *Model) State() State           { return m.state }
func (m *Model) ShowHidden() bool       { return m.filter.ShowHidden }
func (m *Model) Filter() Filter         { return m.filter }
func (m *Model) Entries() []files.Entry { return m.entries }

// SetRoot re-roots the tree and loads the new root's listing.
func (m *Model) SetRoot(ctx context.Context, root string) []files.Entry {
	m.root = root
	return m.Reload(ctx)
}

// Reload re-lists the current root with the current filter. A listing
// failure degrades to an empty entry set with a logged warning so one
// unreadable directory cannot take the tree down.
func (m *Model) Reload(ctx context.Context) []files.Entry {
	m.state = StateReloading
	m.entries = m.List(ctx, m.root)
	m.state = StateLoaded
	return m.entries
}

// ToggleHidden flips the dotfile filter and refreshes in one step so the
// visible listing can never go stale against the flag.
func (m *Model) ToggleHidden(ctx context.Context) []files.Entry {
	m.filter.ShowHidden = !m.filter.ShowHidden
	return m.Reload(ctx)
}

// List returns the filtered entries of any directory, in the store's
// listing order.
func (m *Model) List(ctx context.Context, dir string) []files.Entry {
	dirEntries, err := m.store.ReadDir(ctx, dir)
	if err != nil {
		logrus.WithError(err).WithField("dir", dir).Warn("directory listing failed")
		return nil
	}
	entries := make([]files.Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entries = append(entries, files.NewEntry(dir, de))
	}
	return m.filter.Apply(entries)
}
