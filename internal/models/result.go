package models

// ResultKind tags the populated payload of a Result.
type ResultKind string

const (
	KindImageCollection ResultKind = "image-collection"
	KindSinglePicture   ResultKind = "single-picture"
	KindFactList        ResultKind = "fact-list"
	KindTextAnswer      ResultKind = "text-answer"
)

// Label names the result kind for the status bar.
func (k ResultKind) Label() string {
	switch k {
	case KindImageCollection:
		return "Image Collection"
	case KindSinglePicture:
		return "Picture of the Day"
	case KindFactList:
		return "Space Facts"
	case KindTextAnswer:
		return "AI Answer"
	}
	return string(k)
}

// MediaKind is the declared media type of an APOD entry.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// ParseMediaKind maps an upstream media_type value to a MediaKind.
func ParseMediaKind(s string) MediaKind {
	if s == string(MediaVideo) {
		return MediaVideo
	}
	return MediaImage
}

// ImageItem is one card of an image collection. Every field is optional.
type ImageItem struct {
	ThumbnailURL string
	Title        string
	Description  string
	CreatedDate  string
}

// Picture is a single APOD entry.
type Picture struct {
	Title       string
	MediaURL    string
	MediaKind   MediaKind
	HDURL       string // full resolution image, empty for videos
	Date        string
	Explanation string
	Copyright   string
}

// Fact is an APOD entry shown in a fact list; it carries no copyright.
type Fact struct {
	Title       string
	MediaURL    string
	MediaKind   MediaKind
	Date        string
	Explanation string
}

// TextAnswer is a markdown answer from the generative model.
type TextAnswer struct {
	Body       string
	PromptMode Mode
}

// Result is the normalized, immutable outcome of a query. Exactly one payload
// matching Kind is populated; build it with the New* constructors.
type Result struct {
	kind    ResultKind
	images  []ImageItem
	picture *Picture
	facts   []Fact
	answer  *TextAnswer
}

func NewImageCollection(items []ImageItem) *Result {
	return &Result{kind: KindImageCollection, images: append([]ImageItem{}, items...)}
}

func NewSinglePicture(p Picture) *Result {
	return &Result{kind: KindSinglePicture, picture: &p}
}

func NewFactList(facts []Fact) *Result {
	return &Result{kind: KindFactList, facts: append([]Fact{}, facts...)}
}

func NewTextAnswer(body string, mode Mode) *Result {
	return &Result{kind: KindTextAnswer, answer: &TextAnswer{Body: body, PromptMode: mode}}
}

func (r *Result) Kind() ResultKind {
	return r.kind
}

// Images returns a copy of the image-collection payload.
func (r *Result) Images() []ImageItem {
	return append([]ImageItem{}, r.images...)
}

// Picture returns the single-picture payload, or the zero value.
func (r *Result) Picture() Picture {
	if r.picture == nil {
		return Picture{}
	}
	return *r.picture
}

// Facts returns a copy of the fact-list payload.
func (r *Result) Facts() []Fact {
	return append([]Fact{}, r.facts...)
}

// Answer returns the text-answer payload, or the zero value.
func (r *Result) Answer() TextAnswer {
	if r.answer == nil {
		return TextAnswer{}
	}
	return *r.answer
}
