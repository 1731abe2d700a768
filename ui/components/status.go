package components

import (
	"strings"

	"github.com/Rorical/NovaQuest/ui/styles"
)

const LoadingText = "Please wait, querying the cosmos..."

var orbitFrames = []string{"◐", "◓", "◑", "◒"}

func RenderStatus(status string, loading bool, loadingDots int, width int) string {
	statusContent := status
	if loading {
		statusContent += strings.Repeat(".", loadingDots)
	}
	return styles.StatusStyle(width).Render(statusContent)
}

// RenderLoading is shown in place of the results while a request runs.
func RenderLoading(loadingDots int) string {
	frame := orbitFrames[loadingDots%len(orbitFrames)]
	return styles.LoadingStyle().Render(frame + " " + LoadingText)
}

// RenderError shows the failure message of the last request.
func RenderError(err error, width int) string {
	if err == nil {
		return ""
	}
	return styles.ErrorStyle(width).Render("Error: " + err.Error())
}
