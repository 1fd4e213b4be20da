package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func newSearchTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range []string{"report.txt", "image.png", "readme.md"} {
		assert.NoError(t, os.WriteFile(filepath.Join(root, name), nil, 0644))
	}
	assert.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0755))
	assert.NoError(t, os.WriteFile(filepath.Join(root, "sub", "report_final.txt"), nil, 0644))
	return root
}

func matchNames(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Name
	}
	return out
}

func TestScore(t *testing.T) {
	t.Run("empty_query_is_perfect", func(t *testing.T) {
		assert.Equal(t, 100, Score("", "report.txt"))
	})

	t.Run("exact_name", func(t *testing.T) {
		assert.Equal(t, 100, Score("report.txt", "report.txt"))
	})

	t.Run("case_insensitive", func(t *testing.T) {
		assert.Equal(t, Score("readme", "README.md"), Score("readme", "readme.md"))
	})

	t.Run("unrelated_scores_low", func(t *testing.T) {
		assert.True(t, Score("zzzzqqqq", "report.txt") < DefaultThreshold)
	})
}

func TestSearch(t *testing.T) {
	root := newSearchTree(t)

	t.Run("empty_query_matches_everything", func(t *testing.T) {
		matches, err := Search(root, "", Options{})
		assert.NoError(t, err)
		assert.Equal(t, 4, len(matches))
		for _, m := range matches {
			assert.Equal(t, 100, m.Score)
		}
	})

	t.Run("walks_subdirectories", func(t *testing.T) {
		matches, err := Search(root, "report", Options{})
		assert.NoError(t, err)
		found := false
		for _, m := range matches {
			if m.Name == "report_final.txt" {
				found = true
				assert.Equal(t, filepath.Join(root, "sub", "report_final.txt"), m.Path)
			}
		}
		assert.True(t, found)
	})

	t.Run("best_match_first", func(t *testing.T) {
		matches, err := Search(root, "report.txt", Options{})
		assert.NoError(t, err)
		assert.True(t, len(matches) >= 1)
		assert.Equal(t, "report.txt", matches[0].Name)
		assert.Equal(t, 100, matches[0].Score)
	})

	t.Run("extension_allow_list", func(t *testing.T) {
		matches, err := Search(root, "", Options{Extensions: []string{"png"}})
		assert.NoError(t, err)
		assert.Equal(t, []string{"image.png"}, matchNames(matches))
	})

	t.Run("threshold_filters", func(t *testing.T) {
		matches, err := Search(root, "report.txt", Options{Threshold: 100})
		assert.NoError(t, err)
		assert.Equal(t, []string{"report.txt"}, matchNames(matches))
	})

	t.Run("missing_root_errors", func(t *testing.T) {
		_, err := Search(filepath.Join(root, "nope"), "", Options{})
		assert.Error(t, err)
	})
}
