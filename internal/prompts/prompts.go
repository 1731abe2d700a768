// Package prompts holds the literal prompt templates sent to the generative
// model.
package prompts

import (
	"fmt"

	"github.com/Rorical/NovaQuest/internal/models"
)

const exoplanetPreamble = "You are an expert AI assistant with access to NASA's archives. " +
	"Your primary source for exoplanet data is NASA's Exoplanet Archive Composite Planet Data table: " +
	"https://exoplanetarchive.ipac.caltech.edu/cgi-bin/TblView/nph-tblView?app=ExoTbls&config=PSCompPars. " +
	"Answer the user's query concisely and informatively. " +
	"Format your response using markdown for readability (e.g., use bolding for key terms, use lists for multiple results)."

// RandomFact is sent for random requests of the AI family.
const RandomFact = "Provide one fascinating and surprising fact about space or exoplanets from NASA's archives. " +
	"Make it a short, single paragraph."

// Build renders the prompt for mode with query interpolated. Modes without a
// template fall back to the query itself.
func Build(mode models.Mode, query string) string {
	switch mode {
	case models.ModePlanetaryData:
		return fmt.Sprintf("%s\n\nThe user is asking for planetary data. Based on the Exoplanet Archive, answer the following query: \"%s\"",
			exoplanetPreamble, query)
	case models.ModeAIDescription:
		return fmt.Sprintf("You are a helpful space enthusiast assistant. A user is searching for a space image. "+
			"Based on their query, generate a vivid and engaging one-paragraph description of what a NASA image for \"%s\" might look like. "+
			"Do not mention that you are generating a description; describe the image itself.", query)
	case models.ModeAIAstronomyPics:
		return fmt.Sprintf("You are an assistant knowledgeable about NASA's Astronomy Picture of the Day (APOD). "+
			"If the user's query is a date (YYYY-MM-DD), provide a likely description for an APOD on or around that date. "+
			"If it's a term, explain its significance in astronomy, possibly referencing a famous APOD. "+
			"User's query: \"%s\"", query)
	}
	return query
}
