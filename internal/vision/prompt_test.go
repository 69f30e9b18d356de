package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parte-archiv/parte-tracker/constants"
)

func TestBuildTextPromptKnownNameAnchor(t *testing.T) {
	anchored := BuildTextPrompt(constants.ModeFull, "Marie Nováková")
	assert.Contains(t, anchored, `"Marie Nováková"`)

	plain := BuildTextPrompt(constants.ModeFull, "  ")
	assert.NotContains(t, plain, "known to concern")
}

func TestBuildTextPromptDeathDateFocus(t *testing.T) {
	p := BuildTextPrompt(constants.ModeDeathDate, "")
	assert.Contains(t, p, "Focus on death_date")
	assert.NotContains(t, BuildTextPrompt(constants.ModeFull, ""), "Focus on death_date")
}
