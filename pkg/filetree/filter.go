package filetree

import "github.com/datatug/filescope/pkg/files"

// Filter decides which entries a listing shows.
type Filter struct {
	ShowHidden bool
}

// Apply excludes dotfile entries unless ShowHidden is set. Pure and
// deterministic; with ShowHidden it is the identity function.
func (f Filter) Apply(entries []files.Entry) []files.Entry {
	if f.ShowHidden {
		return entries
	}
	visible := make([]files.Entry, 0, len(entries))
	for _, entry := range entries {
		if !entry.Hidden() {
			visible = append(visible, entry)
		}
	}
	return visible
}

// IsVisible reports whether a single entry passes the filter.
func (f Filter) IsVisible(entry files.Entry) bool {
	return f.ShowHidden || !entry.Hidden()
}
