// Package bbox normalizes and validates portrait photo regions reported by
// vision providers. Providers answer sometimes in pixels and sometimes in
// percentages of the image dimensions; the canonical form is percentages.
package bbox

import (
	"math"

	"github.com/parte-archiv/parte-tracker/internal/entity"
)

// MinSpanPercent is the smallest accepted width/height. Regions below 5% of
// an axis are noise (a detected initial, a cross ornament), not a portrait.
const MinSpanPercent = 5.0

// Normalize converts a candidate box into percentage form. If any of the four
// values exceeds 100, all four are treated as pixel coordinates and divided by
// the image dimensions. If every value is <= 100 the box is returned
// unchanged; a legitimately tiny pixel box is indistinguishable from a
// percentage box and passes through unconverted. Keep it that way: admin
// review catches the rare misread, and "fixing" the heuristic would silently
// reinterpret historical provider replies.
func Normalize(raw map[string]any, imgWidth, imgHeight int) map[string]any {
	b, ok := fromMap(raw)
	if !ok {
		return raw
	}
	if b.X <= 100 && b.Y <= 100 && b.Width <= 100 && b.Height <= 100 {
		return raw
	}
	if imgWidth <= 0 || imgHeight <= 0 {
		return raw
	}
	out := entity.BoundingBox{
		X:      round2(b.X / float64(imgWidth) * 100),
		Y:      round2(b.Y / float64(imgHeight) * 100),
		Width:  round2(b.Width / float64(imgWidth) * 100),
		Height: round2(b.Height / float64(imgHeight) * 100),
	}
	return toMap(out)
}

// Validate rejects out-of-range and sub-minimum boxes. It returns the parsed
// box on success and nil for anything a sane percentage region cannot be.
func Validate(raw map[string]any) *entity.BoundingBox {
	b, ok := fromMap(raw)
	if !ok {
		return nil
	}
	vals := []float64{b.X, b.Y, b.Width, b.Height}
	for _, v := range vals {
		if v < 0 || v > 100 {
			return nil
		}
	}
	if b.Width < MinSpanPercent || b.Height < MinSpanPercent {
		return nil
	}
	if b.X+b.Width > 100 || b.Y+b.Height > 100 {
		return nil
	}
	return &b
}

func fromMap(raw map[string]any) (entity.BoundingBox, bool) {
	var b entity.BoundingBox
	var ok bool
	if b.X, ok = num(raw, "x_percent"); !ok {
		return b, false
	}
	if b.Y, ok = num(raw, "y_percent"); !ok {
		return b, false
	}
	if b.Width, ok = num(raw, "width_percent"); !ok {
		return b, false
	}
	if b.Height, ok = num(raw, "height_percent"); !ok {
		return b, false
	}
	return b, true
}

func toMap(b entity.BoundingBox) map[string]any {
	return map[string]any{
		"x_percent":      b.X,
		"y_percent":      b.Y,
		"width_percent":  b.Width,
		"height_percent": b.Height,
	}
}

func num(m map[string]any, key string) (float64, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	}
	return 0, false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
