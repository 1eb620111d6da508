package pixedit

import "image/color"

// RGBA8 is the built-in 8-bit-per-channel pixel type. Alpha is not
// premultiplied. It is a comparable value type, so it satisfies the Pixel
// contract directly.
type RGBA8 struct {
	R, G, B, A uint8
}

// Color implements the Pixel contract.
func (c RGBA8) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Common pixel values.
var (
	// Transparent is the fully transparent pixel. The render cache fills
	// patch samples outside the image bounds with it.
	Transparent = RGBA8{}

	// Black is opaque black.
	Black = RGBA8{A: 255}

	// White is opaque white.
	White = RGBA8{R: 255, G: 255, B: 255, A: 255}
)

// FromColor converts any color.Color to an RGBA8 pixel.
func FromColor(c color.Color) RGBA8 {
	r, g, b, a := c.RGBA()
	return RGBA8{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
}

// Hex parses a hex color string into an RGBA8 pixel.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an optional
// '#' prefix. Invalid input returns Transparent.
func Hex(hex string) RGBA8 {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}

	parse := func(s string) (uint8, bool) {
		var v uint8
		for i := 0; i < len(s); i++ {
			c := s[i]
			var d uint8
			switch {
			case c >= '0' && c <= '9':
				d = c - '0'
			case c >= 'a' && c <= 'f':
				d = c - 'a' + 10
			case c >= 'A' && c <= 'F':
				d = c - 'A' + 10
			default:
				return 0, false
			}
			v = v<<4 | d
		}
		// Expand single digit to both nibbles ("F" -> 0xFF).
		if len(s) == 1 {
			v = v<<4 | v
		}
		return v, true
	}

	var rs, gs, bs, as string
	switch len(hex) {
	case 3:
		rs, gs, bs, as = hex[0:1], hex[1:2], hex[2:3], "F"
	case 4:
		rs, gs, bs, as = hex[0:1], hex[1:2], hex[2:3], hex[3:4]
	case 6:
		rs, gs, bs, as = hex[0:2], hex[2:4], hex[4:6], "FF"
	case 8:
		rs, gs, bs, as = hex[0:2], hex[2:4], hex[4:6], hex[6:8]
	default:
		return Transparent
	}

	r, ok1 := parse(rs)
	g, ok2 := parse(gs)
	b, ok3 := parse(bs)
	a, ok4 := parse(as)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return Transparent
	}
	return RGBA8{R: r, G: g, B: b, A: a}
}
