package bbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(x, y, w, h float64) map[string]any {
	return map[string]any{
		"x_percent":      x,
		"y_percent":      y,
		"width_percent":  w,
		"height_percent": h,
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		in        map[string]any
		imgW      int
		imgH      int
		want      map[string]any
		unchanged bool
	}{
		{
			// one component over 100 flips ALL four into pixel interpretation
			name: "mixed magnitudes treated as pixels",
			in:   box(250, 40, 500, 60),
			imgW: 1000, imgH: 2000,
			want: box(25.0, 2.0, 50.0, 3.0),
		},
		{
			name: "all pixels",
			in:   box(120, 340, 480, 640),
			imgW: 1200, imgH: 1700,
			want: box(10.0, 20.0, 40.0, 37.65),
		},
		{
			name: "percentages pass through",
			in:   box(10, 20, 30, 40),
			imgW: 1000, imgH: 2000,
			unchanged: true,
		},
		{
			// tiny pixel box is indistinguishable from a percentage box
			name: "small pixel box passes through unconverted",
			in:   box(50, 50, 80, 90),
			imgW: 4000, imgH: 4000,
			unchanged: true,
		},
		{
			name:      "missing key returns input unchanged",
			in:        map[string]any{"x_percent": 250.0, "y_percent": 40.0},
			imgW:      1000,
			imgH:      2000,
			unchanged: true,
		},
		{
			name:      "zero image dimensions return input unchanged",
			in:        box(250, 40, 500, 60),
			imgW:      0,
			imgH:      0,
			unchanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in, tt.imgW, tt.imgH)
			if tt.unchanged {
				assert.Equal(t, tt.in, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	in := box(250, 40, 500, 60)
	once := Normalize(in, 1000, 2000)
	twice := Normalize(once, 1000, 2000)
	assert.Equal(t, once, twice)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
		ok   bool
	}{
		{"valid", box(10, 10, 30, 40), true},
		{"full frame", box(0, 0, 100, 100), true},
		{"negative x", box(-1, 10, 30, 40), false},
		{"value over 100", box(10, 10, 130, 40), false},
		{"width below minimum", box(10, 10, 4.9, 40), false},
		{"height below minimum", box(10, 10, 30, 4), false},
		{"x plus width overflows", box(80, 10, 30, 40), false},
		{"y plus height overflows", box(10, 70, 30, 40), false},
		{"missing keys", map[string]any{"x_percent": 10.0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.in)
			if !tt.ok {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
		})
	}
}

func TestValidateReturnsParsedBox(t *testing.T) {
	got := Validate(box(12.5, 7.25, 30, 42))
	require.NotNil(t, got)
	assert.Equal(t, 12.5, got.X)
	assert.Equal(t, 7.25, got.Y)
	assert.Equal(t, 30.0, got.Width)
	assert.Equal(t, 42.0, got.Height)
}
