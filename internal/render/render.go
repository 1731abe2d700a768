package render

import (
	"github.com/Rorical/NovaQuest/internal/models"
)

const (
	GridColumns = 3

	FallbackImage = "https://via.placeholder.com/300x200/1e293b/94a3b8?text=NASA+Image"

	NoImagesText   = "No images found. Try a different search term."
	NoFactsText    = "No random facts available at the moment."
	UnknownDate    = "Unknown date"
	PictureTitle   = "Astronomy Picture of the Day"
	FactsTitle     = "Random Space Discoveries"
	ImageAlt       = "NASA Image"
	Ellipsis       = "..."
	DescriptionCut = 150
	ExplanationCut = 200
)

// Render builds the display tree for r. A nil result renders nothing.
func Render(r *models.Result) *Node {
	if r == nil {
		return nil
	}
	switch r.Kind() {
	case models.KindImageCollection:
		return renderImages(r.Images())
	case models.KindSinglePicture:
		return renderPicture(r.Picture())
	case models.KindFactList:
		return renderFacts(r.Facts())
	case models.KindTextAnswer:
		return renderAnswer(r.Answer())
	}
	return nil
}

func renderImages(items []models.ImageItem) *Node {
	if len(items) == 0 {
		return &Node{Kind: KindPlaceholder, Text: NoImagesText}
	}

	grid := &Node{Kind: KindGrid, Columns: GridColumns}
	for _, item := range items {
		alt := orDefault(item.Title, ImageAlt)
		grid.Children = append(grid.Children, &Node{
			Kind: KindCard,
			Children: []*Node{
				{Kind: KindImage, Src: item.ThumbnailURL, Fallback: FallbackImage, Label: alt},
				{Kind: KindHeading, Text: orDefault(item.Title, "Untitled")},
				{Kind: KindText, Text: Truncate(orDefault(item.Description, "No description available."), DescriptionCut)},
				{Kind: KindMeta, Text: orDefault(item.CreatedDate, UnknownDate)},
			},
		})
	}
	return grid
}

func renderPicture(p models.Picture) *Node {
	card := &Node{Kind: KindCard}
	card.Children = append(card.Children, &Node{Kind: KindHeading, Text: orDefault(p.Title, PictureTitle)})
	if p.MediaURL != "" {
		card.Children = append(card.Children, mediaNode(p.MediaURL, p.MediaKind, p.Title))
	}
	if p.HDURL != "" && p.HDURL != p.MediaURL {
		card.Children = append(card.Children, &Node{Kind: KindMeta, Label: "HD", Text: p.HDURL})
	}
	card.Children = append(card.Children,
		&Node{Kind: KindMeta, Label: "Date", Text: p.Date},
		&Node{Kind: KindText, Text: p.Explanation},
	)
	if p.Copyright != "" {
		card.Children = append(card.Children, &Node{Kind: KindMeta, Label: "Copyright", Text: p.Copyright})
	}
	return card
}

func renderFacts(facts []models.Fact) *Node {
	if len(facts) == 0 {
		return &Node{Kind: KindPlaceholder, Text: NoFactsText}
	}

	grid := &Node{Kind: KindGrid, Columns: GridColumns}
	for _, f := range facts {
		card := &Node{Kind: KindCard}
		card.Children = append(card.Children, &Node{Kind: KindHeading, Text: f.Title})
		if f.MediaURL != "" {
			card.Children = append(card.Children, mediaNode(f.MediaURL, f.MediaKind, f.Title))
		}
		card.Children = append(card.Children,
			&Node{Kind: KindText, Text: Truncate(f.Explanation, ExplanationCut)},
			&Node{Kind: KindMeta, Text: f.Date},
		)
		grid.Children = append(grid.Children, card)
	}
	return &Node{
		Kind: KindSection,
		Children: []*Node{
			{Kind: KindHeading, Text: FactsTitle},
			grid,
		},
	}
}

func renderAnswer(a models.TextAnswer) *Node {
	return &Node{
		Kind: KindSection,
		Children: []*Node{
			{Kind: KindBadge, Text: a.PromptMode.Label()},
			{Kind: KindMarkdown, Text: a.Body},
		},
	}
}

func mediaNode(src string, kind models.MediaKind, title string) *Node {
	if kind == models.MediaVideo {
		return &Node{Kind: KindFrame, Src: src, Label: title}
	}
	return &Node{Kind: KindImage, Src: src, Fallback: FallbackImage, Label: title}
}

// Truncate keeps the first n characters of s and always appends the
// ellipsis, even when s was already short enough.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes) + Ellipsis
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
