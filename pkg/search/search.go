package search

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"github.com/sirupsen/logrus"
)

// DefaultThreshold is the minimum score a name must reach to be reported.
const DefaultThreshold = 50

// Match is one file that scored at or above the threshold.
type Match struct {
	Path  string
	Name  string
	Score int
}

// Options narrows a search. A zero value searches every file with the
// default threshold.
type Options struct {
	Extensions []string // allow-list, e.g. []string{".go", ".md"}; empty allows all
	Threshold  int      // minimum score; 0 means DefaultThreshold
}

// Score rates how well a file name matches the query, 0..100. An empty
// query matches everything perfectly.
func Score(query, name string) int {
	if query == "" {
		return 100
	}
	return fuzzy.TokenSortRatio(strings.ToLower(query), strings.ToLower(name))
}

// Search walks root and returns files whose names score at or above the
// threshold, best matches first. Unreadable subtrees are skipped with a
// logged warning rather than aborting the walk.
func Search(root, query string, opts Options) ([]Match, error) {
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	allowed := normalizeExtensions(opts.Extensions)

	var matches []Match
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d == nil {
				return err // root itself is unreadable
			}
			logrus.WithError(err).WithField("path", path).Warn("search: subtree skipped")
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !extensionAllowed(allowed, d.Name()) {
			return nil
		}
		if score := Score(query, d.Name()); score >= threshold {
			matches = append(matches, Match{Path: path, Name: d.Name(), Score: score})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Path < matches[j].Path
	})
	return matches, nil
}

func normalizeExtensions(exts []string) map[string]bool {
	if len(exts) == 0 {
		return nil
	}
	allowed := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[ext] = true
	}
	return allowed
}

func extensionAllowed(allowed map[string]bool, name string) bool {
	if allowed == nil {
		return true
	}
	return allowed[strings.ToLower(filepath.Ext(name))]
}
