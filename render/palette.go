package render

// Color is a color index within the terminal 256-color range.
type Color uint16

// Palette is an ordered list of channel colors.
type Palette []Color

// DefaultPalette is the palette used when none is configured.
var DefaultPalette = Palette{
	45,  // cyan
	213, // pink
	118, // green
	208, // orange
	141, // purple
	227, // yellow
}

// Color maps a channel index to a palette entry. The mapping is fixed
// for the life of the palette: channel i always gets entry i modulo the
// palette size.
func (p Palette) Color(i int) Color {
	return p[i%len(p)]
}
