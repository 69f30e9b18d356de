package regexparse

import (
	"regexp"
	"strings"
	"unicode"
)

// Polish notices put the name inline right after the śp. marker, often with a
// dagger: "śp. † Jan Kowalski". Czech notices instead end a sentence with an
// honorific ("rozloučíme se s paní") and put the name on the following lines.
// No (?i) here: case folding would make \p{Lu} match lowercase letters and
// the capture would swallow ordinary sentence words after the name.
var reInlineName = regexp.MustCompile(`(?:[śŚ]\.?[ \t]?[pP]|[sS][pP])\.[ \t]*[†✝+]?[ \t]*(\p{Lu}[\p{L}-]*(?:[ \t]+\p{Lu}[\p{L}-]*){0,3})`)

var reHonorificLine = regexp.MustCompile(`(?i)(?:^|\s)(?:paní|pan[aieu]?m?|s\s+panem)\s*[,:]?\s*$`)

// Section keywords that terminate multi-line name collection.
var reSectionKw = regexp.MustCompile(`(?i)` + czFuneralKw + `|` + plFuneralKw + `|` + deathKw + `|zádušní|zadusni|parte|rodina`)

// FindName extracts the deceased's name from OCR text. It tries the Polish
// inline marker first, then the Czech honorific multi-line strategy.
func FindName(text string) string {
	if m := reInlineName.FindStringSubmatch(text); m != nil {
		return tidyName(m[1])
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !reHonorificLine.MatchString(strings.TrimSpace(line)) {
			continue
		}
		var parts []string
		for _, next := range lines[i+1:] {
			next = strings.TrimSpace(next)
			if next == "" {
				if len(parts) > 0 {
					break
				}
				continue
			}
			if reSectionKw.MatchString(next) || !isCapitalizedLine(next) {
				break
			}
			parts = append(parts, next)
		}
		if len(parts) > 0 {
			return tidyName(strings.Join(parts, " "))
		}
	}
	return ""
}

// isCapitalizedLine reports whether every word on the line starts with an
// uppercase letter. Connective particles common in names ("z", "von") are
// allowed lowercase.
func isCapitalizedLine(line string) bool {
	words := strings.Fields(line)
	if len(words) == 0 || len(words) > 5 {
		return false
	}
	for _, w := range words {
		w = strings.Trim(w, ",.")
		if w == "" || w == "z" || w == "von" || w == "de" {
			continue
		}
		r := []rune(w)[0]
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func tidyName(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.Trim(s, " ,.")
}
