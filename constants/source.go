package constants

import "strings"

// Source identifies the funeral-service website a notice was scraped from.
type Source string

// Stable values (store these exact strings in DB).
const (
	SourcePshajdukova Source = "pshajdukova"
	SourceWrzecionko  Source = "wrzecionko"
	SourceCzsPogrzeby Source = "czs-pogrzeby"
)

// Sources lists every configured scraper source.
var Sources = []Source{SourcePshajdukova, SourceWrzecionko, SourceCzsPogrzeby}

// ParseSource maps an identifier to a known Source.
func ParseSource(s string) (Source, bool) {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case SourcePshajdukova:
		return SourcePshajdukova, true
	case SourceWrzecionko:
		return SourceWrzecionko, true
	case SourceCzsPogrzeby:
		return SourceCzsPogrzeby, true
	}
	return "", false
}
