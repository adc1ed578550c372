package layout

// This file defines the fixed monospace grid and the hard size ceilings.
// Every pixel value used by layout or rendering is derived from Metrics.

// Conversion constants between pt and mm. The renderer rasterizes at one
// pixel per millimetre, so font sizes given in pixels go through MmToPt.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// Metrics describes the character grid of the fixed-width font.
type Metrics struct {
	CharWidth      int `json:"charWidth" toml:"char_width"`           // Wc: advance of one character
	LineHeight     int `json:"lineHeight" toml:"line_height"`         // Lh: glyph height plus line spacing
	Padding        int `json:"padding" toml:"padding"`                // P: applied on all four sides
	SeparatorInset int `json:"separatorInset" toml:"separator_inset"` // extra gap around option-bearing lines
	Gutter         int `json:"gutter" toml:"gutter"`                  // gap between option boxes
	Border         int `json:"border" toml:"border"`                  // frame stroke width
	FontSize       int `json:"fontSize" toml:"font_size"`             // glyph size, renderer only
}

// DefaultMetrics returns the grid of 11pt Courier New: 15px glyphs, 9px
// advance, 2px line spacing and 6px padding.
func DefaultMetrics() Metrics {
	return Metrics{
		CharWidth:      9,
		LineHeight:     17,
		Padding:        6,
		SeparatorInset: 3,
		Gutter:         5,
		Border:         2,
		FontSize:       15,
	}
}

// TextWidth is the pixel width of a block whose longest line has chars characters.
func (m Metrics) TextWidth(chars int) int { return chars*m.CharWidth + 2*m.Padding }

// TextHeight is the pixel height of a block of lines lines.
func (m Metrics) TextHeight(lines int) int { return lines*m.LineHeight + 2*m.Padding }

// SeparatorGap is the space reserved above and below a line holding a target.
func (m Metrics) SeparatorGap() int { return m.Padding + m.SeparatorInset }

// ColumnX returns the left edge of the glyph cell at col (0-based).
func (m Metrics) ColumnX(col int) int { return m.Padding + col*m.CharWidth }

// FontSizePt converts FontSize (pixels) to points for font face creation.
func (m Metrics) FontSizePt() float64 { return float64(m.FontSize) * MmToPt }

// Limits holds the ceilings imposed by the downstream testing system.
type Limits struct {
	ExhibitMaxChars int `json:"exhibitMaxChars" toml:"exhibit_max_chars"`
	ExhibitMaxLines int `json:"exhibitMaxLines" toml:"exhibit_max_lines"`
	DnDMaxWidth     int `json:"dndMaxWidth" toml:"dnd_max_width"`
	DnDMaxHeight    int `json:"dndMaxHeight" toml:"dnd_max_height"`
	OptionMaxChars  int `json:"optionMaxChars" toml:"option_max_chars"`
	OptionMaxLines  int `json:"optionMaxLines" toml:"option_max_lines"`
	MaxOptions      int `json:"maxOptions" toml:"max_options"`
}

// DefaultLimits returns the item ceilings. 104 characters at 9px plus padding
// fills the 950px item width; 34 lines keep a basic exhibit under 600px.
func DefaultLimits() Limits {
	return Limits{
		ExhibitMaxChars: 104,
		ExhibitMaxLines: 34,
		DnDMaxWidth:     950,
		DnDMaxHeight:    764,
		OptionMaxChars:  50,
		OptionMaxLines:  3,
		MaxOptions:      10,
	}
}
