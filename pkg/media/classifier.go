package media

import (
	"path/filepath"
	"strings"
)

// Category is the preview family a file belongs to.
type Category string

const (
	CategoryImage  Category = "image"
	CategoryVideo  Category = "video"
	CategoryAudio  Category = "audio"
	CategoryPDF    Category = "pdf"
	CategoryVector Category = "vector"
	CategoryCode   Category = "code"
	CategoryText   Category = "text"
)

var extCategories = map[string]Category{
	".png":  CategoryImage,
	".jpg":  CategoryImage,
	".jpeg": CategoryImage,
	".gif":  CategoryImage,
	".bmp":  CategoryImage,
	".webp": CategoryImage,

	".mp4":  CategoryVideo,
	".mov":  CategoryVideo,
	".mkv":  CategoryVideo,
	".avi":  CategoryVideo,
	".webm": CategoryVideo,

	".mp3":  CategoryAudio,
	".wav":  CategoryAudio,
	".flac": CategoryAudio,
	".ogg":  CategoryAudio,

	".pdf": CategoryPDF,

	".svg": CategoryVector,
}

// extLanguages maps code extensions to chroma lexer names.
var extLanguages = map[string]string{
	".py":          "python",
	".js":          "javascript",
	".jsx":         "jsx",
	".ts":          "typescript",
	".tsx":         "tsx",
	".html":        "html",
	".css":         "css",
	".java":        "java",
	".c":           "c",
	".cpp":         "cpp",
	".cs":          "csharp",
	".csproj":      "xml",
	".go":          "go",
	".lua":         "lua",
	".swift":       "swift",
	".kt":          "kotlin",
	".rb":          "ruby",
	".php":         "php",
	".json":        "json",
	".md":          "markdown",
	".sh":          "bash",
	".yaml":        "yaml",
	".yml":         "yaml",
	".toml":        "toml",
	".xml":         "xml",
	".rs":          "rust",
	".dart":        "dart",
	".ps1":         "powershell",
	".psm1":        "powershell",
	".bat":         "batchfile",
	".sql":         "sql",
	".gd":          "gdscript",
	".gitignore":   "text",
	".gitconfig":   "ini",
	".gitmodules":  "ini",
	".editorconfig": "ini",
}

// Classify maps a path to its preview category by the final extension only,
// case-insensitive. Unknown extensions resolve to CategoryText.
func Classify(path string) Category {
	ext := Ext(path)
	if c, ok := extCategories[ext]; ok {
		return c
	}
	if _, ok := extLanguages[ext]; ok {
		return CategoryCode
	}
	return CategoryText
}

// Language returns the lexer name for a code file.
func Language(path string) (string, bool) {
	lang, ok := extLanguages[Ext(path)]
	return lang, ok
}

// Ext returns the lower-cased final extension, so "photo.PNG" yields ".png"
// and "archive.tar.gz" yields ".gz".
func Ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
