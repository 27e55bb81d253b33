package blockmark

// Theme defines semantic color mappings for terminal output using ANSI color
// indices (0-15). -1 means no color. The user's terminal theme determines the
// actual RGB values.
type Theme struct {
	Heading int // Heading text
	Rule    int // Thematic breaks, heading underlines
	Text    int // Paragraph text
	Muted   int // Status bar, token offsets
	Accent  int // Token kinds, level markers
	Error   int // Error messages
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Heading: 5,
		Rule:    8,
		Text:    -1,
		Muted:   8,
		Accent:  4,
		Error:   1,
	}
}
