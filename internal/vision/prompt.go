package vision

import (
	"encoding/json"
	"strings"

	"github.com/parte-archiv/parte-tracker/constants"
)

// BuildTextPrompt composes the instruction for the full extraction task.
// Notices are Czech or Polish; the model must preserve original wording and
// diacritics and return JSON only.
func BuildTextPrompt(mode constants.ExtractionMode, knownName string) string {
	parts := []string{
		"You are reading a death notice (parte / nekrolog) written in Czech or Polish.",
		"Return ONLY JSON that matches the provided JSON Schema. No prose, no markdown fence.",
		"full_name: the deceased person's name exactly as printed, without honorifics (pan, paní, śp.).",
		"opening_quote: the poem or farewell verse at the top of the notice, if any, including its attribution.",
		"death_date and funeral_date: ISO-8601 (YYYY-MM-DD). Czech and Polish month names are in the genitive case.",
		"announcement_text: the main announcement paragraph, verbatim, with diacritics preserved. Exclude the funeral home's company footer, phone numbers and addresses.",
		"has_photo: true when the notice shows a portrait photograph of the deceased.",
		"photo_bbox: the portrait's position as percentages of image width and height.",
		"Never output null for a field you can read. If a field is not present in the notice, output null.",
	}
	if mode == constants.ModeDeathDate {
		parts = append(parts, "Focus on death_date; it is the field this pass exists to recover.")
	}
	if knownName = strings.TrimSpace(knownName); knownName != "" {
		parts = append(parts,
			`The notice is known to concern "`+knownName+`". Locate that person's name in the image and read the remaining fields relative to it.`)
	}
	parts = append(parts, "JSON Schema:\n"+mustJSON(BuildTextJSONSchema()))
	return strings.Join(parts, " ")
}

// BuildPhotoPrompt composes the instruction for the portrait detection task.
// The prompt is deliberately high recall: a missed portrait is worse than a
// wrongly guessed one, so the model is told to report any plausible photo.
func BuildPhotoPrompt() string {
	parts := []string{
		"You are looking at a death notice (parte / nekrolog) image.",
		"Decide whether it contains a portrait photograph of the deceased person.",
		"If there is ANY region that could plausibly be a portrait photo, report has_photo=true and give its bounding box.",
		"Only report has_photo=false when you are certain the notice has no photograph at all.",
		"photo_bbox coordinates are percentages of the full image width and height (x_percent, y_percent, width_percent, height_percent).",
		"Return ONLY JSON that matches the provided JSON Schema. No prose, no markdown fence.",
		"JSON Schema:\n" + mustJSON(BuildPhotoJSONSchema()),
	}
	return strings.Join(parts, " ")
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
