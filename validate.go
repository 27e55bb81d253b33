package blockmark

import "fmt"

// Validate checks the structural constraints of a token.
func (t Token) Validate() error {
	if t.Offset < 0 {
		return fmt.Errorf("offset must be non-negative, got %d: %w", t.Offset, ErrValidation)
	}
	switch t.Kind {
	case Heading:
		if t.Level < 1 || t.Level > MaxHeadingLevel {
			return fmt.Errorf("heading level must be in [1, %d], got %d: %w", MaxHeadingLevel, t.Level, ErrValidation)
		}
	case ThematicBreak, Paragraph, EndOfInput:
		if t.Level != 0 {
			return fmt.Errorf("%s must have level 0, got %d: %w", t.Kind, t.Level, ErrValidation)
		}
	default:
		return fmt.Errorf("%s: %w", t.Kind, ErrUnknownKind)
	}
	return nil
}
