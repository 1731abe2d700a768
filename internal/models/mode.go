package models

import (
	"fmt"
	"strings"
)

// Mode selects which collaborator and prompt a query is routed to.
type Mode string

const (
	ModeImageSearch     Mode = "image-search"
	ModePictureOfDay    Mode = "picture-of-day"
	ModePlanetaryData   Mode = "planetary-data"
	ModeAIDescription   Mode = "ai-description"
	ModeAIAstronomyPics Mode = "ai-apod"
	// ModeAIFact is only recorded on random AI answers; it cannot be selected.
	ModeAIFact Mode = "ai-fact"
)

var selectableModes = []Mode{
	ModePlanetaryData,
	ModeAIDescription,
	ModeAIAstronomyPics,
	ModeImageSearch,
	ModePictureOfDay,
}

var modeAliases = map[string]Mode{
	"image":    ModeImageSearch,
	"images":   ModeImageSearch,
	"apod":     ModePictureOfDay,
	"planet":   ModePlanetaryData,
	"describe": ModeAIDescription,
	"apod-ai":  ModeAIAstronomyPics,
}

// Modes returns the selectable modes in display order.
func Modes() []Mode {
	out := make([]Mode, len(selectableModes))
	copy(out, selectableModes)
	return out
}

// ParseMode accepts canonical mode names and the short aliases.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, m := range selectableModes {
		if string(m) == name {
			return m, nil
		}
	}
	if m, ok := modeAliases[name]; ok {
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// IsAI reports whether the mode is served by the generative text model.
func (m Mode) IsAI() bool {
	switch m {
	case ModePlanetaryData, ModeAIDescription, ModeAIAstronomyPics, ModeAIFact:
		return true
	}
	return false
}

// Label is the human readable badge text for the mode.
func (m Mode) Label() string {
	switch m {
	case ModeImageSearch:
		return "Space Images"
	case ModePictureOfDay:
		return "Astronomy Picture"
	case ModePlanetaryData:
		return "Planetary Data"
	case ModeAIDescription:
		return "Image Descriptions"
	case ModeAIAstronomyPics:
		return "APOD Insight"
	case ModeAIFact:
		return "Random Fact"
	}
	return string(m)
}

// Next returns the selectable mode after m, wrapping around.
func (m Mode) Next() Mode {
	return m.shift(1)
}

// Prev returns the selectable mode before m, wrapping around.
func (m Mode) Prev() Mode {
	return m.shift(-1)
}

func (m Mode) shift(delta int) Mode {
	n := len(selectableModes)
	for i, candidate := range selectableModes {
		if candidate == m {
			return selectableModes[((i+delta)%n+n)%n]
		}
	}
	return selectableModes[0]
}
