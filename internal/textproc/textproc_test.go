package textproc

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parte-archiv/parte-tracker/internal/entity"
)

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"śp. Jan Kowalski", "Jan Kowalski"},
		{"Śp. Maria Nowak", "Maria Nowak"},
		{"ś.p. Anna Wiśniewska", "Anna Wiśniewska"},
		{"sp. Piotr Zieliński", "Piotr Zieliński"},
		{"  Jana Dvořáková  ", "Jana Dvořáková"},
		{"Karel Novák", "Karel Novák"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanName(tt.in), "input %q", tt.in)
	}
}

func TestEnforceKnownName(t *testing.T) {
	tests := []struct {
		name      string
		known     string
		candidate string
		want      string
	}{
		{"diacritics stripped by provider", "Dvořák", "Dvorak", "Dvořák"},
		{"case changed", "NOVÁK", "Novák", "NOVÁK"},
		{"completely different", "Jana Dvořáková", "Jan Dvořák", "Jana Dvořáková"},
		{"identical", "Karel Novák", "Karel Novák", "Karel Novák"},
		{"no known name keeps candidate", "", "Jan Kowalski", "Jan Kowalski"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EnforceKnownName(discard(), tt.known, tt.candidate))
		})
	}
}

func TestClassifyNameDiff(t *testing.T) {
	assert.Equal(t, "diacritics", classifyNameDiff("Dvořák", "Dvorak"))
	assert.Equal(t, "diacritics", classifyNameDiff("Wisława", "Wislawa"))
	assert.Equal(t, "case", classifyNameDiff("NOVÁK", "Novák"))
	assert.Equal(t, "length_delta_-3", classifyNameDiff("Jana Dvořáková", "Jana Dvořák"))
}

func TestSplitQuotePolish(t *testing.T) {
	text := "Będę żyć dalej w sercach tych, którzy mnie kochali. " +
		"Z głębokim smutkiem i żalem zawiadamiamy, że dnia 12 stycznia 2026 " +
		"odeszła nasza ukochana Mama. Pogrzeb odbędzie się 15 stycznia 2026."

	quote, rest, ok := SplitQuote(text)
	require.True(t, ok)
	assert.Equal(t, "Będę żyć dalej w sercach tych, którzy mnie kochali.", quote)
	assert.True(t, strings.HasPrefix(rest, "Z głębokim smutkiem i żalem zawiadamiamy"), "rest: %q", rest)
}

func TestSplitQuoteCzechWithAuthor(t *testing.T) {
	text := "Kdo v srdcích žije, neumírá. František Hrubín " +
		"S hlubokým zármutkem oznamujeme všem příbuzným a známým, že nás navždy " +
		"opustila naše drahá maminka a babička."

	quote, rest, ok := SplitQuote(text)
	require.True(t, ok)
	assert.Equal(t, "Kdo v srdcích žije, neumírá. František Hrubín", quote)
	assert.True(t, strings.HasPrefix(rest, "S hlubokým zármutkem"), "rest: %q", rest)
}

func TestSplitQuoteNoBoundary(t *testing.T) {
	text := strings.Repeat("oznámení bez citátu a bez úvodní fráze ", 5)
	quote, rest, ok := SplitQuote(text)
	assert.False(t, ok)
	assert.Empty(t, quote)
	assert.Equal(t, strings.TrimSpace(text), rest)
}

func TestSplitQuoteShortTextSkipped(t *testing.T) {
	_, _, ok := SplitQuote("Krátký text.")
	assert.False(t, ok)
}

func TestSplitQuoteLengthGateCountsRunes(t *testing.T) {
	// 95 runes but 104 bytes; diacritics must not push a short announcement
	// past the length gate.
	text := "Kdo žil v srdcích těch, jež opustil, ten nezemřel. " +
		"S hlubokým zármutkem oznamujeme, že zemřela."
	require.LessOrEqual(t, len([]rune(text)), minSplitLength)
	require.Greater(t, len(text), minSplitLength)

	quote, rest, ok := SplitQuote(text)
	assert.False(t, ok)
	assert.Empty(t, quote)
	assert.Equal(t, text, rest)
}

func TestStripBusinessFooter(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "czech company footer",
			in:   "Poslední rozloučení se koná v pátek. Zarmoucená rodina. PSHAJDUKOVÁ, s.r.o., ul. 1.máje 172, Třinec, tel.: 558 339 296",
			want: "Poslední rozloučení se koná v pátek. Zarmoucená rodina",
		},
		{
			name: "phone only footer",
			in:   "Rozloučení proběhne v úzkém rodinném kruhu. Zarmoucená rodina tel.: 558 339 296",
			want: "Rozloučení proběhne v úzkém rodinném kruhu. Zarmoucená rodina",
		},
		{
			name: "polish funeral home footer",
			in:   "O czym zawiadamia Pogrążona w smutku Rodzina. Zakład Pogrzebowy Wrzecionko, Cieszyn",
			want: "O czym zawiadamia Pogrążona w smutku Rodzina",
		},
		{
			name: "no footer untouched",
			in:   "Poslední rozloučení se koná v pátek. Zarmoucená rodina",
			want: "Poslední rozloučení se koná v pátek. Zarmoucená rodina",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripBusinessFooter(tt.in))
		})
	}
}

func TestProcessChain(t *testing.T) {
	res := entity.ExtractionResult{
		FullName: "śp. Jan   Kowalski",
		AnnouncementText: "Będę żyć dalej w sercach tych, którzy mnie kochali. " +
			"Z głębokim smutkiem i żalem zawiadamiamy, że odszedł nasz ukochany Tata. " +
			"Pogrążona w smutku Rodzina. Zakład Pogrzebowy Wrzecionko, tel.: 33 852 00 00",
	}

	out := Process(discard(), res, nil, 0, 0, "")

	assert.Equal(t, "Jan   Kowalski", out.FullName) // marker stripped, inner spacing untouched
	assert.Equal(t, "Będę żyć dalej w sercach tych, którzy mnie kochali.", out.OpeningQuote)
	assert.NotContains(t, out.AnnouncementText, "Będę żyć dalej")
	assert.NotContains(t, out.AnnouncementText, "Zakład Pogrzebowy")
	assert.True(t, strings.HasSuffix(out.AnnouncementText, "Pogrążona w smutku Rodzina"), "announcement: %q", out.AnnouncementText)
}

func TestProcessRejectsShortAnnouncement(t *testing.T) {
	out := Process(discard(), entity.ExtractionResult{
		FullName:         "Karel Novák",
		AnnouncementText: "Krátké torzo textu.",
	}, nil, 0, 0, "")
	assert.Empty(t, out.AnnouncementText)
}

func TestProcessValidatesBox(t *testing.T) {
	raw := map[string]any{
		"x_percent":      250.0,
		"y_percent":      40.0,
		"width_percent":  500.0,
		"height_percent": 600.0,
	}
	out := Process(discard(), entity.ExtractionResult{FullName: "Karel Novák", HasPhoto: true}, raw, 1000, 2000, "")
	require.NotNil(t, out.PhotoBBox)
	assert.Equal(t, 25.0, out.PhotoBBox.X)
	assert.Equal(t, 2.0, out.PhotoBBox.Y)
	assert.Equal(t, 50.0, out.PhotoBBox.Width)
	assert.Equal(t, 30.0, out.PhotoBBox.Height)
	assert.True(t, out.HasPhoto)
}

func TestProcessNullsInvalidBox(t *testing.T) {
	raw := map[string]any{
		"x_percent":      80.0,
		"y_percent":      10.0,
		"width_percent":  40.0,
		"height_percent": 30.0,
	}
	out := Process(discard(), entity.ExtractionResult{FullName: "Karel Novák", HasPhoto: true}, raw, 1000, 1000, "")
	assert.Nil(t, out.PhotoBBox)
	assert.True(t, out.HasPhoto) // has_photo stays as reported
}
