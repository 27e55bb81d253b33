package blockmark

// NewTokenizerWithRule returns a tokenizer whose dispatch table maps the
// leading byte b to r, on top of the default rules.
func NewTokenizerWithRule(markdown string, b byte, r BlockRule) *Tokenizer {
	table := rules
	table[b] = r
	tz := NewTokenizer(markdown)
	tz.rules = &table
	return tz
}
