// ABOUTME: Prompt builder translates event-styling attributes into an image prompt
// ABOUTME: Known attribute values map to curated phrases, unknown values pass through

package moodboard

import (
	"strings"

	"moodboard-app-api/core/domain"
)

const basePrompt = "Photoreal event styling moodboard. Bright, airy, daylight-balanced lighting. " +
	"Premium event design, realistic venue materials, no text, no logos, no watermark."

var moodPhrases = map[string]string{
	"Editorial":     "Editorial styling, high-end magazine look, crisp composition.",
	"Luxe":          "Luxe styling, layered linens, refined textures, elegant tableware.",
	"Minimal":       "Minimal styling, clean lines, negative space, calm sophistication.",
	"Mediterranean": "Mediterranean styling, sun-warmed textures, relaxed elegance.",
	"Manhattan":     "Manhattan styling, modern architecture, polished details.",
}

var palettePhrases = map[string]string{
	"Terracotta":      "Terracotta, warm sand, clay accents, soft brass.",
	"Champagne":       "Champagne, ivory, warm whites, soft gold.",
	"Slate":           "Slate grey, cool stone, airy contrast.",
	"Coastal Neutral": "Driftwood, sand, linen white, warm greys.",
}

var layoutPhrases = map[string]string{
	"Cocktail":    "Cocktail layout, lounge clusters, relaxed mingling.",
	"Long Tables": "Long tables, continuous runs, layered centre styling.",
	"Banquet":     "Round banquet tables, balanced centrepieces.",
	"Theatre":     "Theatre seating, refined aisle moments.",
}

var avPhrases = map[string]string{
	"LED Screen":    "Large seamless LED screen as a styled stage backdrop.",
	"Projection":    "Soft wide-format projection wash on the feature wall.",
	"Stage & Truss": "Low black stage with slim truss, discreet line-array speakers.",
	"Dance Floor":   "Polished white dance floor with a subtle centre monogram wash.",
}

// BuildPrompt composes the full generation prompt for a request.
// Unknown attribute values are used verbatim so free-text entries still steer
// the model.
func BuildPrompt(req domain.MoodboardRequest) string {
	lines := []string{
		basePrompt,
		phraseOr(moodPhrases, req.Mood),
		phraseOr(palettePhrases, req.Palette),
		phraseOr(layoutPhrases, req.Layout),
	}

	if req.AVEquipment != "" {
		lines = append(lines, phraseOr(avPhrases, req.AVEquipment))
	}

	if req.UplightingColour != "" {
		lines = append(lines, "Perimeter uplighting in "+strings.ToLower(req.UplightingColour)+", even wall wash, no lens flare.")
	}

	if req.Room != "" {
		lines = append(lines, "Designed for the venue room: "+req.Room+".")
	} else {
		lines = append(lines, "Designed for a modern event venue.")
	}

	return strings.Join(lines, "\n")
}

func phraseOr(phrases map[string]string, value string) string {
	if phrase, ok := phrases[value]; ok {
		return phrase
	}
	return value
}
