package regexparse

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Month words in genitive form, as they appear in running text. Variants
// without diacritics cover the usual OCR misreads.
var czMonths = map[string]int{
	"ledna": 1, "února": 2, "unora": 2, "března": 3, "brezna": 3,
	"dubna": 4, "května": 5, "kvetna": 5, "června": 6, "cervna": 6,
	"července": 7, "cervence": 7, "srpna": 8, "září": 9, "zari": 9,
	"října": 10, "rijna": 10, "listopadu": 11, "prosince": 12,
}

var plMonths = map[string]int{
	"stycznia": 1, "lutego": 2, "marca": 3, "kwietnia": 4, "maja": 5,
	"czerwca": 6, "lipca": 7, "sierpnia": 8, "września": 9, "wrzesnia": 9,
	"października": 10, "pazdziernika": 10, "listopada": 11, "grudnia": 12,
}

func monthAlt(m map[string]int) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return strings.Join(keys, "|")
}

var (
	czMonthAlt = monthAlt(czMonths)
	plMonthAlt = monthAlt(plMonths)
)

// Death keywords with OCR-typo tolerance (ř/r, ł/l confusions).
const czDeathKw = `(?:zem[řr]el[aio]?|zesnul[aio]?|skonal[aio]?|opustil[aio]?\s+nás)`
const plDeathKw = `(?:zmar[łl]a?|odszed[łl]|odesz[łl]a|umar[łl]a?|zasnę[łl]a?|zasnal)`
const deathKw = czDeathKw + `|` + plDeathKw

// Optional day-of-week, optionally preceded by v/ve/w.
const dayOfWeek = `(?:\s+(?:ve?|w)?\s*(?:pond[ěe]l[íi]|úter[ýy]|uter[ýy]|st[řr]edu?|[čc]tvrtek|p[áa]tek|sobot[uęe]?|ned[ěe]li|poniedzia[łl]ek|wtorek|[śs]rod[ęe]|czwartek|pi[ąa]tek|niedziel[ęe])\s*,?)?`

const numDate = `(\d{1,2})\s*\.\s*(\d{1,2})\s*\.\s*(\d{4})`

// Death-date patterns, in strict priority order. The first pattern that
// yields a parseable date wins; later ones run only when earlier ones found
// nothing.
var deathDatePatterns = []*regexp.Regexp{
	// a. Czech month-name date (day + month word + year)
	regexp.MustCompile(`(?i)(\d{1,2})\.?\s+(` + czMonthAlt + `)\s+(\d{4})`),
	// b. Polish, date before keyword: "dnia 12 stycznia 2026 ... zmarł"
	regexp.MustCompile(`(?i)dnia\s+(\d{1,2})\s+(` + plMonthAlt + `)\s+(\d{4})(?:\s*r\.?)?[^.]{0,80}?(?:` + plDeathKw + `)`),
	// c. Polish, keyword before date: "zmarł ... dnia 12 stycznia 2026"
	regexp.MustCompile(`(?i)(?:` + plDeathKw + `)[^.]{0,80}?dnia\s+(\d{1,2})\s+(` + plMonthAlt + `)\s+(\d{4})`),
	// d. numeric date preceded by a death keyword (or dagger symbol)
	regexp.MustCompile(`(?i)(?:(?:` + deathKw + `)(?:\s+dn[ei]a?)?` + dayOfWeek + `\s*[:,]?\s*|[†✝+]\s*)` + numDate),
	// e. numeric date followed by a death keyword
	regexp.MustCompile(`(?i)` + numDate + `\s*,?\s*(?:dne\s+)?(?:` + deathKw + `)`),
}

// monthName reports whether the pattern captured a month word (groups
// day, month-word, year) instead of a numeric month.
var reAllDigits = regexp.MustCompile(`^\d+$`)

const czFuneralKw = `(?:poh[řr]eb|posledn[íi]\s+rozlou[čc]en[íi]|rozlou[čc]en[íi]|smute[čc]n[íi]\s+ob[řr]ad|ob[řr]ad|kremace)`
const plFuneralKw = `(?:pogrzeb|uroczysto[śs]ci\s+pogrzebowe|msza\s+[śs]w|ostatnie\s+po[żz]egnanie)`
const funeralKw = czFuneralKw + `|` + plFuneralKw

var funeralDatePatterns = []*regexp.Regexp{
	// funeral keyword, then a numeric date within the same sentence
	regexp.MustCompile(`(?i)(?:` + funeralKw + `)[^.]{0,120}?` + numDate),
	// funeral keyword, then a Polish month-name date
	regexp.MustCompile(`(?i)(?:` + funeralKw + `)[^.]{0,120}?(\d{1,2})\s+(` + plMonthAlt + `)\s+(\d{4})`),
}

var reNumDate = regexp.MustCompile(numDate)

// FindDeathDate scans text for a death date using the keyword-anchored
// patterns. Returns an ISO date or "".
func FindDeathDate(logger *slog.Logger, text string) string {
	return findDate(logger, text, deathDatePatterns)
}

// FindFuneralDate scans text for a funeral date. Returns an ISO date or "".
func FindFuneralDate(logger *slog.Logger, text string) string {
	return findDate(logger, text, funeralDatePatterns)
}

func findDate(logger *slog.Logger, text string, patterns []*regexp.Regexp) string {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		iso, err := toISO(m[1], m[2], m[3])
		if err != nil {
			// a matched pattern with an unparseable date counts as
			// "not found" for this pattern only
			logger.Warn("regexparse.date.parse_failed", "match", m[0], "error", err)
			continue
		}
		return iso
	}
	return ""
}

// FindAllNumericDates returns every parseable D.M.YYYY date in order of
// appearance. Used by the positional fallback when no keyword anchors a date.
func FindAllNumericDates(logger *slog.Logger, text string) []string {
	var out []string
	for _, m := range reNumDate.FindAllStringSubmatch(text, -1) {
		iso, err := toISO(m[1], m[2], m[3])
		if err != nil {
			logger.Warn("regexparse.date.parse_failed", "match", m[0], "error", err)
			continue
		}
		out = append(out, iso)
	}
	return out
}

func toISO(dayStr, monthStr, yearStr string) (string, error) {
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return "", err
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return "", err
	}

	var month int
	if reAllDigits.MatchString(monthStr) {
		if month, err = strconv.Atoi(monthStr); err != nil {
			return "", err
		}
	} else {
		lower := strings.ToLower(monthStr)
		if m, ok := czMonths[lower]; ok {
			month = m
		} else if m, ok := plMonths[lower]; ok {
			month = m
		} else {
			return "", fmt.Errorf("unknown month word %q", monthStr)
		}
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", fmt.Errorf("date out of range: %d.%d.%d", day, month, year)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return "", fmt.Errorf("impossible calendar date: %d.%d.%d", day, month, year)
	}
	return t.Format("2006-01-02"), nil
}
