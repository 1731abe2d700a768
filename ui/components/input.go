package components

import (
	"github.com/Rorical/NovaQuest/ui/styles"
)

// RenderInput draws the query field. The cursor is hidden while a request
// is running; the placeholder depends on the selected mode.
func RenderInput(input, placeholder string, loading bool, width int) string {
	prompt := styles.InputPromptStyle().Render("> ")
	content := input
	if content == "" {
		content = styles.PlaceholderStyle().Render(placeholder)
	} else if !loading {
		content += "█"
	}
	return styles.InputStyle(width).Render(prompt + content)
}
