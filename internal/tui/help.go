package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# tada

## Keys

| key | action |
|-----|--------|
| a | focus the new task field, enter adds, esc leaves |
| space | mark the selected task done |
| e | edit the selected task, enter saves, esc cancels |
| d | move the selected task to the trash, or restore it |
| f / tab | next filter |
| 1 2 3 4 | all tasks, completed tasks, current tasks, trash |
| y | copy the task text |
| ? | close this help |
| q | quit |

Done and trashed tasks are read-only until restored.
`

// renderHelp renders the key sheet. Glamour failures fall back to the raw
// markdown.
func renderHelp(width int, plain bool) string {
	style := "dark"
	if plain {
		style = "notty"
	}
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return strings.TrimSpace(out)
}
