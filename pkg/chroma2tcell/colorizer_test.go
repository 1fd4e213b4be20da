package chroma2tcell

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

func TestColorize(t *testing.T) {
	// Note: Cannot use t.Parallel() because subtests modify global getStyle and getFallbackStyle
	t.Run("with_lexer", func(t *testing.T) {
		lexer := lexers.Get("go")
		s, err := Colorize("package main", "dracula", lexer)
		assert.NoError(t, err)
		assert.Contains(t, s, "package")
	})

	t.Run("unknown_style_uses_fallback", func(t *testing.T) {
		lexer := lexers.Get("go")
		getStyleCalls := 0
		fallbackCalls := 0
		oldGetStyle := getStyle
		oldGetFallbackStyle := getFallbackStyle
		defer func() {
			getStyle = oldGetStyle
			getFallbackStyle = oldGetFallbackStyle
		}()
		getStyle = func(name string) *chroma.Style {
			getStyleCalls++
			return nil
		}
		getFallbackStyle = func() *chroma.Style {
			fallbackCalls++
			return styles.Fallback
		}
		_, err := Colorize("", "unknown_style", lexer)
		assert.NoError(t, err)
		assert.Equal(t, 1, getStyleCalls)
		assert.Equal(t, 1, fallbackCalls)
	})
}

func TestColorizeByLanguage(t *testing.T) {
	t.Run("known_language", func(t *testing.T) {
		s, err := ColorizeByLanguage("key: value", "dracula", "yaml")
		assert.NoError(t, err)
		assert.Contains(t, s, "key")
		assert.Contains(t, s, "value")
	})

	t.Run("unknown_language_falls_back", func(t *testing.T) {
		s, err := ColorizeByLanguage("plain words", "dracula", "no_such_language")
		assert.NoError(t, err)
		assert.Contains(t, s, "plain words")
	})
}

func TestWithLineNumbers(t *testing.T) {
	t.Run("three_lines", func(t *testing.T) {
		out := WithLineNumbers("a\nb\nc")
		lines := strings.Split(out, "\n")
		assert.Equal(t, 3, len(lines))
		assert.Contains(t, lines[0], "1")
		assert.Contains(t, lines[2], "3")
		assert.Contains(t, lines[1], "b")
	})

	t.Run("width_aligns_to_line_count", func(t *testing.T) {
		out := WithLineNumbers(strings.Repeat("x\n", 10) + "x")
		lines := strings.Split(out, "\n")
		assert.Equal(t, 11, len(lines))
		assert.Contains(t, lines[0], " 1")
		assert.Contains(t, lines[10], "11")
	})
}
