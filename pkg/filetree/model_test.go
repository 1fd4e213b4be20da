package filetree

import (
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/datatug/filescope/pkg/files"
	"github.com/datatug/filescope/pkg/files/osfile"
)

type failingStore struct {
	files.Store
}

func (failingStore) ReadDir(context.Context, string) ([]os.DirEntry, error) {
	return nil, errors.New("boom")
}

func (failingStore) RootTitle() string { return "failing" }
func (failingStore) RootURL() url.URL  { return url.URL{Scheme: "file"} }

func newTestDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "visible.txt"), nil, 0644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), nil, 0644))
	assert.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
	assert.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	return dir
}

func names(entries []files.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestModelReload(t *testing.T) {
	ctx := context.Background()
	dir := newTestDir(t)
	model := NewModel(osfile.NewStore(dir), dir)

	assert.Equal(t, StateUnloaded, model.State())

	entries := model.Reload(ctx)
	assert.Equal(t, StateLoaded, model.State())
	assert.Equal(t, []string{"sub", "visible.txt"}, names(entries))

	t.Run("deterministic_for_fixed_snapshot", func(t *testing.T) {
		again := model.Reload(ctx)
		assert.Equal(t, names(entries), names(again))
	})
}

func TestModelToggleHidden(t *testing.T) {
	ctx := context.Background()
	dir := newTestDir(t)
	model := NewModel(osfile.NewStore(dir), dir)

	visible := model.Reload(ctx)
	assert.Equal(t, 2, len(visible))

	all := model.ToggleHidden(ctx)
	assert.True(t, model.ShowHidden())
	assert.Equal(t, []string{".git", ".hidden", "sub", "visible.txt"}, names(all))

	t.Run("idempotent_in_pairs", func(t *testing.T) {
		back := model.ToggleHidden(ctx)
		assert.False(t, model.ShowHidden())
		assert.Equal(t, names(visible), names(back))
	})
}

func TestModelSetRoot(t *testing.T) {
	ctx := context.Background()
	dirA := newTestDir(t)
	dirB := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dirB, "only.txt"), nil, 0644))

	model := NewModel(osfile.NewStore(dirA), dirA)
	model.Reload(ctx)

	entries := model.SetRoot(ctx, dirB)
	assert.Equal(t, dirB, model.Root())
	assert.Equal(t, []string{"only.txt"}, names(entries))
}

func TestModelListingFailureDegradesToEmpty(t *testing.T) {
	model := NewModel(failingStore{}, "/somewhere")
	entries := model.Reload(context.Background())
	assert.Equal(t, 0, len(entries))
	assert.Equal(t, StateLoaded, model.State())
}

func TestFilter(t *testing.T) {
	entries := []files.Entry{
		{Name: ".hidden"},
		{Name: "shown.txt"},
		{Name: ".git", IsDir: true},
	}

	t.Run("hides_dotfiles_by_default", func(t *testing.T) {
		filtered := Filter{}.Apply(entries)
		assert.Equal(t, 1, len(filtered))
		assert.Equal(t, "shown.txt", filtered[0].Name)
	})

	t.Run("show_hidden_is_identity", func(t *testing.T) {
		filtered := Filter{ShowHidden: true}.Apply(entries)
		assert.Equal(t, entries, filtered)
	})

	t.Run("is_visible", func(t *testing.T) {
		f := Filter{}
		assert.False(t, f.IsVisible(files.Entry{Name: ".x"}))
		assert.True(t, f.IsVisible(files.Entry{Name: "x"}))
	})
}
