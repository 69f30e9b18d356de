package regexparse

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parte-archiv/parte-tracker/constants"
)

var testLogger = slog.New(slog.DiscardHandler)

func TestFindDeathDate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "czech keyword before numeric date",
			text: "S bolestí oznamujeme, že zemřel dne 29.12.2025 náš drahý tatínek.",
			want: "2025-12-29",
		},
		{
			name: "czech numeric date before keyword",
			text: "Oznamujeme, že dne 29.12.2025 zemřel náš drahý tatínek.",
			want: "2025-12-29",
		},
		{
			name: "czech month-name date",
			text: "zesnula tiše 5. ledna 2026 ve věku 87 let",
			want: "2026-01-05",
		},
		{
			name: "polish date before keyword",
			text: "dnia 12 stycznia 2026 roku zmarła nasza ukochana Mama",
			want: "2026-01-12",
		},
		{
			name: "polish keyword before date",
			text: "zmarł po długiej chorobie dnia 12 stycznia 2026",
			want: "2026-01-12",
		},
		{
			name: "dagger prefixed date",
			text: "† 3.2.2026 ve věku 91 let",
			want: "2026-02-03",
		},
		{
			name: "keyword with day of week",
			text: "zemřela v pátek 6.2.2026 po krátké nemoci",
			want: "2026-02-06",
		},
		{
			name: "no keyword no date",
			text: "Vzpomínáme s láskou.",
			want: "",
		},
		{
			name: "impossible date rejected",
			text: "zemřel dne 31.2.2026 náhle",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindDeathDate(testLogger, tt.text))
		})
	}
}

func TestFindFuneralDate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "czech numeric",
			text: "Poslední rozloučení se koná 8.1.2026 v obřadní síni.",
			want: "2026-01-08",
		},
		{
			name: "polish month name",
			text: "Pogrzeb odbędzie się dnia 15 stycznia 2026 o godz. 13:00",
			want: "2026-01-15",
		},
		{
			name: "no funeral keyword",
			text: "dne 8.1.2026 se nic nekoná",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindFuneralDate(testLogger, tt.text))
		})
	}
}

func TestFindName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "polish inline marker",
			text: "Z głębokim smutkiem zawiadamiamy, że odszedł\nśp. Jan Kowalski\nPogrzeb odbędzie się w piątek.",
			want: "Jan Kowalski",
		},
		{
			name: "polish marker with dagger",
			text: "śp. † Anna Nowak z domu Wiśniewska",
			want: "Anna Nowak",
		},
		{
			name: "czech honorific multi line",
			text: "oznamujeme, že nás navždy opustila paní\nMarie Nováková\nPohřeb se koná ve středu.",
			want: "Marie Nováková",
		},
		{
			name: "czech multi line stops at lowercase",
			text: "rozloučíme se s panem\nJosef Svoboda\nnarozen v Brně",
			want: "Josef Svoboda",
		},
		{
			name: "no marker no honorific",
			text: "Vzpomínka na všechny zesnulé.",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindName(tt.text))
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("two bare dates fall back to positional assignment", func(t *testing.T) {
		text := "Rozloučení v úzkém rodinném kruhu.\n12.1.2026\n15.1.2026"
		res := Parse(testLogger, text, constants.ModeFull)
		assert.Equal(t, "2026-01-12", res.DeathDate)
		assert.Equal(t, "2026-01-15", res.FuneralDate)
	})

	t.Run("single bare date is the funeral date", func(t *testing.T) {
		res := Parse(testLogger, "Obřad v rodinném kruhu.\n15.1.2026", constants.ModeFull)
		assert.Empty(t, res.DeathDate)
		assert.Equal(t, "2026-01-15", res.FuneralDate)
	})

	t.Run("keyword dates win over positional fallback", func(t *testing.T) {
		text := "zemřel dne 29.12.2025. Poslední rozloučení se koná 8.1.2026."
		res := Parse(testLogger, text, constants.ModeFull)
		assert.Equal(t, "2025-12-29", res.DeathDate)
		assert.Equal(t, "2026-01-08", res.FuneralDate)
	})

	t.Run("death date mode skips name and funeral date", func(t *testing.T) {
		text := "śp. Jan Kowalski zmarł dnia 12 stycznia 2026. Pogrzeb 15.1.2026."
		res := Parse(testLogger, text, constants.ModeDeathDate)
		assert.Equal(t, "2026-01-12", res.DeathDate)
		assert.Empty(t, res.FullName)
		assert.Empty(t, res.FuneralDate)
	})
}
