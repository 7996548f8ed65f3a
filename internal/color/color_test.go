package color

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHueStable(t *testing.T) {
	for _, label := range []string{"premise", "conclusion", "supports", "attacks", ""} {
		assert.Equal(t, Hue(label), Hue(label))
		assert.Equal(t, HSL(label), HSL(label))
		assert.Equal(t, Hex(label), Hex(label))
	}
}

func TestHueRange(t *testing.T) {
	for _, label := range []string{"", "a", "premise", "rebuts", "質問", "a very long open vocabulary label"} {
		h := Hue(label)
		assert.GreaterOrEqual(t, h, 0, "label %q", label)
		assert.Less(t, h, 360, "label %q", label)
	}
}

func TestHSLFormat(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^hsl\(\d+, 65%, 55%\)$`), HSL("premise"))
	assert.Equal(t, "hsl(0, 65%, 55%)", HSL(""))
}

func TestHexFormat(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^#[0-9a-f]{6}$`), Hex("supports"))
}

func TestHueMatchesReferenceFold(t *testing.T) {
	// h = h*31 + charCode over "ab": 'a'*31 + 'b' = 3105; 3105 % 360 = 225.
	assert.Equal(t, 225, Hue("ab"))
}
