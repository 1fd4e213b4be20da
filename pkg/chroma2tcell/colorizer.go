package chroma2tcell

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

var getStyle = styles.Get

var getFallbackStyle = func() *chroma.Style {
	return styles.Fallback
}

// Colorize tokenizes text with the given lexer and emits tview [color] tags.
func Colorize(text, styleName string, lexer chroma.Lexer) (string, error) {
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	style := getStyle(styleName)
	if style == nil {
		style = getFallbackStyle()
	}

	var sb strings.Builder
	for _, token := range iterator.Tokens() {
		color := style.Get(token.Type)
		if color.IsZero() {
			sb.WriteString(token.Value)
			continue
		}
		sb.WriteString("[" + color.Colour.String() + "]")
		sb.WriteString(token.Value)
		sb.WriteString("[-]")
	}

	return sb.String(), nil
}

// ColorizeByLanguage colorizes text using the named lexer, falling back to the
// plain-text lexer for unknown languages.
func ColorizeByLanguage(text, styleName, language string) (string, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return Colorize(text, styleName, lexer)
}

// WithLineNumbers prefixes each line of colorized output with a right-aligned
// gray line number. Counting is done on the raw text so color tags spanning
// line breaks do not shift numbering.
func WithLineNumbers(colorized string) string {
	lines := strings.Split(colorized, "\n")
	width := len(fmt.Sprintf("%d", len(lines)))
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(fmt.Sprintf("[gray]%*d[-] %s", width, i+1, line))
	}
	return sb.String()
}
