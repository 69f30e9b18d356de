package textproc

import (
	"regexp"
	"strings"
)

// Announcement openers. Every family-authored body starts with one of these
// phrases (or a close variant); anything before them is the opening quote.
const czOpeners = `S hlubokým zármutkem|V hlubokém zármutku|Se zármutkem v srdci|S bolestí v srdci|Oznamujeme všem|Smutečné oznámení|S velkou bolestí`

const plOpeners = `Z głębokim smutkiem|Z głębokim żalem|Z żalem zawiadamiamy|W głębokim smutku|Pogrążeni w smutku|Z wielkim smutkiem|Z wielkim bólem`

const openers = czOpeners + `|` + plOpeners

// Quote boundary: sentence-ending punctuation or ellipsis, with an optional
// closing quotation mark.
const quoteEnd = `(?:\.{3}|…|[.!?])["”“'»]?`

// Author attribution after the quote: either a capitalized two-word name or
// an initial plus surname.
const author = `(?:\s+(?:\p{Lu}\p{L}+\s+\p{Lu}\p{L}+|\p{Lu}\.\s*\p{Lu}\p{L}+))`

// Bible-verse reference, e.g. "(Jan 14,27)" or "J 11,25-26".
const verseRef = `(?:\s*\(?\d?\s?\p{Lu}\p{L}{0,4}\.?\s\d{1,3}\s*[,:]\s*\d{1,3}(?:\s*-\s*\d{1,3})?\)?)`

// Ordered boundary patterns, most specific first. The first match wins.
var quotePatterns = []*regexp.Regexp{
	// quote + author + verse reference + opener
	regexp.MustCompile(`(?s)^(.{20,600}?` + quoteEnd + author + verseRef + `)\s+((?:` + openers + `).*)$`),
	// quote + author + opener
	regexp.MustCompile(`(?s)^(.{20,600}?` + quoteEnd + author + `)\s+((?:` + openers + `).*)$`),
	// quote + opener
	regexp.MustCompile(`(?s)^(.{20,600}?` + quoteEnd + `)\s+((?:` + openers + `).*)$`),
}

// minSplitLength gates the back-extraction: short announcements carry no
// separable quote.
const minSplitLength = 100

// SplitQuote attempts to split a leading opening quote off announcement text
// when the provider did not supply one. Returns (quote, remainder, true) on
// success, or ("", text, false) when no boundary pattern matches.
func SplitQuote(text string) (string, string, bool) {
	text = strings.TrimSpace(text)
	if len([]rune(text)) <= minSplitLength {
		return "", text, false
	}
	for _, re := range quotePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			quote := strings.TrimSpace(m[1])
			rest := strings.TrimSpace(m[2])
			if quote != "" && rest != "" {
				return quote, rest, true
			}
		}
	}
	return "", text, false
}
