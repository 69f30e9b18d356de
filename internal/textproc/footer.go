package textproc

import (
	"regexp"
	"strings"
)

// Family-signature phrases. The signature itself always stays in the
// announcement; only the funeral-business boilerplate after it is removed.
const familySignature = `(?:[Zz]armoucená rodina|[Zz]armoucené rodiny|[Tt]ruchlící rodina|[Pp]ogrążona w smutku [Rr]odzina|[Pp]ogrążeni w smutku|[Rr]odzina [Zz]marłego|[Rr]odzina)`

// Legal-entity suffixes used by Czech and Polish funeral companies.
const legalEntity = `(?:s\.\s?r\.\s?o\.|a\.\s?s\.|sp\.\s?z\s?o\.\s?o\.|s\.\s?c\.|spol\.)`

// footerPatterns is an ordered substitution chain. Each pattern covers one
// observed shape of trailing business boilerplate and replaces it with the
// preserved family signature. Later patterns still run on the output of
// earlier ones, so mixed footers (company line then phone line) also clear.
var footerPatterns = []*regexp.Regexp{
	// signature, then an uppercase-led company name with a legal-entity suffix
	regexp.MustCompile(`(?s)(` + familySignature + `)[.,]?\s+\p{Lu}[\p{L}\p{N} .,&–-]*?` + legalEntity + `.*$`),
	// signature, then "Pohřební služba ..." / "Zakład pogrzebowy ..."
	regexp.MustCompile(`(?s)(` + familySignature + `)[.,]?\s+(?:[Pp]ohřební služba|[Zz]akład [Pp]ogrzebowy|[Uu]sługi [Pp]ogrzebowe).*$`),
	// signature, then a phone/mobile contact line
	regexp.MustCompile(`(?s)(` + familySignature + `)[.,]?\s+.{0,120}?(?:[Tt]el\.?\s?:?|[Mm]obil\s?:?|[Kk]om\.?\s?:?)\s*\+?[\d][\d ]{7,}.*$`),
	// signature, then a street address ("ul. ..." / "nám. ..." house number)
	regexp.MustCompile(`(?s)(` + familySignature + `)[.,]?\s+(?:ul\.|nám\.|ulica|třída)\s.*$`),
}

// StripBusinessFooter removes funeral-company contact boilerplate appearing
// after a family-signature phrase.
func StripBusinessFooter(text string) string {
	out := text
	for _, re := range footerPatterns {
		out = re.ReplaceAllString(out, `$1`)
	}
	return strings.TrimSpace(out)
}
