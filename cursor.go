package blockmark

// Cursor is a byte position over a normalized buffer. Scanners peek ahead
// from it and advance it past the input they consume.
type Cursor struct {
	src string
	off int
}

// NewCursor returns a cursor positioned at the start of src.
func NewCursor(src string) Cursor {
	return Cursor{src: src}
}

// Mark is a saved cursor position.
type Mark int

// EOF reports whether the cursor is at the end of the buffer.
func (c *Cursor) EOF() bool {
	return c.off >= len(c.src)
}

// Pos returns the byte offset of the cursor.
func (c *Cursor) Pos() int { return c.off }

// Peek returns the byte at the cursor, or 0 at end of buffer.
func (c *Cursor) Peek() byte {
	return c.PeekAt(0)
}

// PeekAt returns the byte n positions past the cursor, or 0 when that is
// beyond the end of the buffer.
func (c *Cursor) PeekAt(n int) byte {
	i := c.off + n
	if i < 0 || i >= len(c.src) {
		return 0
	}
	return c.src[i]
}

// Bump advances the cursor by one byte and returns the byte it passed.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.src[c.off]
	c.off++
	return b
}

// Skip advances the cursor by n bytes, stopping at the end of the buffer.
func (c *Cursor) Skip(n int) {
	c.off = min(c.off+n, len(c.src))
}

// Eat consumes the next byte if it equals b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.src[c.off] == b {
		c.off++
		return true
	}
	return false
}

// Mark saves the current position.
func (c *Cursor) Mark() Mark {
	return Mark(c.off)
}

// Reset moves the cursor back to m.
func (c *Cursor) Reset(m Mark) {
	c.off = int(m)
}

// Slice returns the buffer between m and the cursor.
func (c *Cursor) Slice(m Mark) string {
	return c.src[m:c.off]
}

// Rest returns the unread remainder of the buffer.
func (c *Cursor) Rest() string {
	return c.src[c.off:]
}
