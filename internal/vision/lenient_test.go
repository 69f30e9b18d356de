package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain json untouched", `{"a":1}`, `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"json language tag", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripFences(tt.in))
		})
	}
}

func TestDecodeText(t *testing.T) {
	t.Run("fenced response with raw pixel bbox", func(t *testing.T) {
		content := "```json\n{\"full_name\":\"Jan Novák\",\"death_date\":\"2025-12-29\",\"has_photo\":true,\"photo_bbox\":{\"x_percent\":250,\"y_percent\":40,\"width_percent\":500,\"height_percent\":60}}\n```"
		fields, rawBox, _, err := DecodeText(content)
		require.NoError(t, err)
		assert.Equal(t, "Jan Novák", fields.FullName)
		assert.Equal(t, "2025-12-29", fields.DeathDate)
		assert.True(t, fields.HasPhoto)
		assert.Nil(t, fields.PhotoBBox, "typed bbox is only set after unit normalization")
		assert.Equal(t, 250.0, rawBox["x_percent"])
	})

	t.Run("missing discriminator is a parse failure", func(t *testing.T) {
		_, _, _, err := DecodeText(`{"death_date":"2025-12-29"}`)
		assert.ErrorContains(t, err, "full_name")
	})

	t.Run("null name still counts as present", func(t *testing.T) {
		fields, _, _, err := DecodeText(`{"full_name":null}`)
		require.NoError(t, err)
		assert.Empty(t, fields.FullName)
	})

	t.Run("garbage is a parse failure", func(t *testing.T) {
		_, _, _, err := DecodeText("I could not read the image, sorry.")
		assert.Error(t, err)
	})
}

func TestDecodePhoto(t *testing.T) {
	t.Run("has_photo true with bbox", func(t *testing.T) {
		hasPhoto, rawBox, _, err := DecodePhoto(`{"has_photo":true,"photo_bbox":{"x_percent":10,"y_percent":5,"width_percent":20,"height_percent":25}}`)
		require.NoError(t, err)
		assert.True(t, hasPhoto)
		assert.Equal(t, 20.0, rawBox["width_percent"])
	})

	t.Run("missing has_photo is a parse failure", func(t *testing.T) {
		_, _, _, err := DecodePhoto(`{"photo_bbox":null}`)
		assert.ErrorContains(t, err, "has_photo")
	})
}

func TestParseSpec(t *testing.T) {
	spec, err := ParseSpec("gemini/gemini-2.0-flash")
	require.NoError(t, err)
	assert.Equal(t, "gemini", string(spec.Provider))
	assert.Equal(t, "gemini-2.0-flash", spec.Model)

	bare, err := ParseSpec("gemini")
	require.NoError(t, err)
	assert.Empty(t, bare.Model, "bare provider uses the adapter default model")

	_, err = ParseSpec("openai/gpt-4o")
	assert.Error(t, err)
}
