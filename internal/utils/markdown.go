package utils

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	orderedItemRe  = regexp.MustCompile(`^(\d+)\.\s+(.*)`)
	inlineCodeRe   = regexp.MustCompile("``[^`]*``|`[^`]*`")
	linkRe         = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	boldRe         = regexp.MustCompile(`\*\*([^*]|\*[^*])*\*\*`)
	italicUnderRe  = regexp.MustCompile(`(^|\W)_([^_]+)_(\W|$)`)
	italicStarRe   = regexp.MustCompile(`(^|[^*])\*([^*\s][^*]*)\*([^*]|$)`)
	paragraphBreak = regexp.MustCompile(`\n\s*\n`)
)

// Markdown styles
func CodeBlockStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("236")).
		Padding(0, 1).
		MarginLeft(2)
}

func BoldStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

func ItalicStyle() lipgloss.Style {
	return lipgloss.NewStyle().Italic(true)
}

func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("111")).
		Bold(true)
}

func SubtitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("147")).
		Bold(true)
}

func LinkStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("75")).
		Underline(true)
}

func ListStyle() lipgloss.Style {
	return lipgloss.NewStyle().MarginLeft(2)
}

func QuoteStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color("60")).
		PaddingLeft(1)
}

// RenderMarkdown renders the markdown subset model answers use: headings,
// bullet and numbered lists, block quotes, fenced code, links, bold and
// italic. Paragraph text is wrapped to width when width > 0.
func RenderMarkdown(text string, width int) string {
	text = normalizeMarkdownNewlines(text)

	lines := strings.Split(text, "\n")
	var result strings.Builder

	inCodeBlock := false
	wrap := func(s string) string {
		if width <= 0 {
			return s
		}
		return lipgloss.NewStyle().Width(width).Render(s)
	}

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			inCodeBlock = !inCodeBlock
			continue
		}

		if inCodeBlock {
			result.WriteString(CodeBlockStyle().Render(line) + "\n")
			continue
		}

		if title, found := cutHeading(line); found {
			result.WriteString(title + "\n")
			continue
		}

		if item, found := cutBullet(line); found {
			result.WriteString(wrap(ListStyle().Render("• "+processInlineMarkdown(item))) + "\n")
			continue
		}

		if matches := orderedItemRe.FindStringSubmatch(line); len(matches) == 3 {
			result.WriteString(wrap(ListStyle().Render(matches[1]+". "+processInlineMarkdown(matches[2]))) + "\n")
			continue
		}

		if quote, found := strings.CutPrefix(line, "> "); found {
			result.WriteString(wrap(QuoteStyle().Render(processInlineMarkdown(quote))) + "\n")
			continue
		}

		result.WriteString(wrap(processInlineMarkdown(line)) + "\n")
	}

	return strings.TrimSuffix(result.String(), "\n")
}

func cutHeading(line string) (string, bool) {
	for _, prefix := range []string{"#### ", "### "} {
		if title, found := strings.CutPrefix(line, prefix); found {
			return SubtitleStyle().Render(processInlineMarkdown(title)), true
		}
	}
	for _, prefix := range []string{"## ", "# "} {
		if title, found := strings.CutPrefix(line, prefix); found {
			return TitleStyle().Render(processInlineMarkdown(title)), true
		}
	}
	return "", false
}

func cutBullet(line string) (string, bool) {
	if item, found := strings.CutPrefix(line, "- "); found {
		return item, true
	}
	return strings.CutPrefix(line, "* ")
}

// processInlineMarkdown handles code spans first so their content is left
// alone, then links, then emphasis.
func processInlineMarkdown(line string) string {
	line = inlineCodeRe.ReplaceAllStringFunc(line, func(match string) string {
		return CodeBlockStyle().UnsetMarginLeft().Render(strings.Trim(match, "`"))
	})

	line = linkRe.ReplaceAllStringFunc(line, func(match string) string {
		matches := linkRe.FindStringSubmatch(match)
		if len(matches) != 3 {
			return match
		}
		return LinkStyle().Render(processNestedFormatting(matches[1])) + " (" + matches[2] + ")"
	})

	return processNestedFormatting(line)
}

func processNestedFormatting(text string) string {
	text = boldRe.ReplaceAllStringFunc(text, func(match string) string {
		content := strings.TrimSuffix(strings.TrimPrefix(match, "**"), "**")
		return BoldStyle().Render(processItalicText(content))
	})
	return processItalicText(text)
}

func processItalicText(line string) string {
	line = italicUnderRe.ReplaceAllStringFunc(line, func(match string) string {
		parts := italicUnderRe.FindStringSubmatch(match)
		return parts[1] + ItalicStyle().Render(parts[2]) + parts[3]
	})
	return italicStarRe.ReplaceAllStringFunc(line, func(match string) string {
		parts := italicStarRe.FindStringSubmatch(match)
		return parts[1] + ItalicStyle().Render(parts[2]) + parts[3]
	})
}

// normalizeMarkdownNewlines joins soft-wrapped lines inside a paragraph and
// collapses blank-line paragraph breaks to a single newline. Structural
// lines (headings, list items, quotes, fences) stay on their own line, and
// fenced code is passed through untouched.
func normalizeMarkdownNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var out []string
	for _, block := range splitFences(text) {
		if block.code {
			out = append(out, block.text)
			continue
		}
		for _, paragraph := range paragraphBreak.Split(block.text, -1) {
			if joined := joinParagraph(paragraph); joined != "" {
				out = append(out, joined)
			}
		}
	}
	return strings.Join(out, "\n")
}

func joinParagraph(paragraph string) string {
	var lines []string
	for _, line := range strings.Split(paragraph, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(lines) > 0 && !isSpecialFormattingLine(line) && !isSpecialFormattingLine(lines[len(lines)-1]) {
			lines[len(lines)-1] += " " + line
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

type fenceBlock struct {
	text string
	code bool
}

// splitFences separates fenced code (fence lines included) from prose.
func splitFences(text string) []fenceBlock {
	var blocks []fenceBlock
	var cur []string
	inCode := false
	flush := func(code bool) {
		if len(cur) > 0 {
			blocks = append(blocks, fenceBlock{text: strings.Join(cur, "\n"), code: code})
		}
		cur = nil
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if inCode {
				cur = append(cur, "```")
				flush(true)
			} else {
				flush(false)
				cur = append(cur, "```")
			}
			inCode = !inCode
			continue
		}
		cur = append(cur, line)
	}
	flush(inCode)
	return blocks
}

func isSpecialFormattingLine(line string) bool {
	line = strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(line, "#"),
		strings.HasPrefix(line, "- "),
		strings.HasPrefix(line, "* "),
		strings.HasPrefix(line, "> "),
		strings.HasPrefix(line, "```"):
		return true
	}
	return orderedItemRe.MatchString(line)
}
