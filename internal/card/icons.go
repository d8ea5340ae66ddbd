package card

import "github.com/avoskres/tui-keepsake/internal/core"

// Icon is the glyph and color a reason-card variant renders with.
type Icon struct {
	Rune  rune
	Color core.Color
}

// iconVariants maps reason tags to their glyphs. Variant dispatch is a
// lookup table, not a type hierarchy.
var iconVariants = map[string]Icon{
	"heart": {Rune: '♥', Color: core.ColorPink},
	"star":  {Rune: '★', Color: core.ColorGold},
	"cat":   {Rune: 'ᨐ', Color: core.ColorOrange},
}

// IconFor resolves a reason tag to its icon. Unknown tags fall back to the
// heart variant.
func IconFor(tag string) Icon {
	if icon, ok := iconVariants[tag]; ok {
		return icon
	}
	return iconVariants["heart"]
}
