// Package color deterministically maps open-vocabulary type labels to hues.
// The same function backs node fills, edge strokes, arrowheads, and legend
// swatches, so one label is visually consistent everywhere in a render pass.
// Distinct labels may collide on a hue; that is accepted.
package color

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	saturation = 0.65
	lightness  = 0.55
)

// Hue folds the label into a 32-bit signed hash (h*31 + rune, with
// wraparound) and reduces it to a degree in [0, 360).
func Hue(label string) int {
	var h int32
	for _, r := range label {
		h = h*31 + int32(r)
	}
	hue := int(h) % 360
	if hue < 0 {
		hue += 360
	}
	return hue
}

// HSL renders the label's color as a CSS hsl() string.
func HSL(label string) string {
	return fmt.Sprintf("hsl(%d, 65%%, 55%%)", Hue(label))
}

// Hex renders the label's color as a #rrggbb string, for consumers that do
// not accept hsl() (the graphology/sigma wire format, image encoders).
func Hex(label string) string {
	return colorful.Hsl(float64(Hue(label)), saturation, lightness).Hex()
}

