// Package render maps a normalized result to a display tree. It is a pure
// function of the result: no I/O, no mutation, no validation beyond
// substituting fallback text for missing fields.
package render

// NodeKind identifies a display element.
type NodeKind int

const (
	KindSection NodeKind = iota
	KindGrid
	KindCard
	KindHeading
	KindImage
	KindFrame // embedded video
	KindText
	KindMeta
	KindBadge
	KindMarkdown
	KindPlaceholder
)

func (k NodeKind) String() string {
	switch k {
	case KindSection:
		return "section"
	case KindGrid:
		return "grid"
	case KindCard:
		return "card"
	case KindHeading:
		return "heading"
	case KindImage:
		return "image"
	case KindFrame:
		return "frame"
	case KindText:
		return "text"
	case KindMeta:
		return "meta"
	case KindBadge:
		return "badge"
	case KindMarkdown:
		return "markdown"
	case KindPlaceholder:
		return "placeholder"
	}
	return "unknown"
}

// Node is one element of the display tree.
type Node struct {
	Kind     NodeKind
	Text     string // heading, text, meta, badge and placeholder content; markdown source
	Label    string // meta label ("Date", "Copyright"), alt text for media
	Src      string // media URL
	Fallback string // media substituted when Src fails to load
	Columns  int    // grid only
	Children []*Node
}

// Find returns every node of kind k in depth-first order.
func (n *Node) Find(k NodeKind) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	if n.Kind == k {
		out = append(out, n)
	}
	for _, c := range n.Children {
		out = append(out, c.Find(k)...)
	}
	return out
}
