package blockmark

import "strings"

// Normalize rewrites "\r\n" and lone "\r" line endings to "\n" and pads the
// result so that a non-empty document always ends with a blank line ("\n\n").
// No other bytes are altered. Normalizing an already normalized buffer is a
// no-op.
func Normalize(input string) string {
	if input == "" {
		return ""
	}

	s := input
	if strings.IndexByte(s, '\r') >= 0 {
		var b strings.Builder
		b.Grow(len(s) + 2)
		for i := 0; i < len(s); i++ {
			c := s[i]
			if c != '\r' {
				b.WriteByte(c)
				continue
			}
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			b.WriteByte('\n')
		}
		s = b.String()
	}

	switch {
	case strings.HasSuffix(s, "\n\n"):
		return s
	case strings.HasSuffix(s, "\n"):
		return s + "\n"
	default:
		return s + "\n\n"
	}
}
