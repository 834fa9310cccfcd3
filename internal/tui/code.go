package tui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
)

var languages = map[string]string{
	".py":  "python",
	".sh":  "bash",
	".rb":  "ruby",
	".js":  "javascript",
	".ts":  "typescript",
	".go":  "go",
	".lua": "lua",
	".pl":  "perl",
	".ps1": "powershell",
}

// LanguageFor returns the fenced-code language for a file name.
func LanguageFor(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if lang, ok := languages[ext]; ok {
		return lang
	}
	return strings.TrimPrefix(ext, ".")
}

// CodeRenderer highlights script content as a markdown code block.
type CodeRenderer struct {
	r *glamour.TermRenderer
}

func NewCodeRenderer(width int) (*CodeRenderer, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &CodeRenderer{r: r}, nil
}

// Render returns content highlighted for the file name. The raw content is
// returned if rendering fails.
func (c *CodeRenderer) Render(content, name string) string {
	out, err := c.r.Render(fence(content, LanguageFor(name)))
	if err != nil {
		return content
	}
	return out
}

func fence(content, lang string) string {
	longest, run := 0, 0
	for _, r := range content {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}

	marker := strings.Repeat("`", max(3, longest+1))
	return marker + lang + "\n" + strings.TrimRight(content, "\n") + "\n" + marker + "\n"
}
