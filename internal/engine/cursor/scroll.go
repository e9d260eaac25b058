package cursor

// ScrollUp shows one more row at the top of the viewport. The cursor keeps
// its buffer row when it still fits in the viewport; otherwise it is
// carried up with the bottom edge. Returns false at the top of the buffer.
func (c *Cursor) ScrollUp(t Text, rows int) bool {
	if c.ScreenY == 0 {
		return false
	}
	c.ScreenY--
	if c.Y < visible(rows)-1 {
		c.Y++
		return true
	}
	c.clampX(t)
	return true
}

// ScrollDown hides the top row of the viewport. The cursor keeps its buffer
// row unless it was on the top viewport row, in which case it is carried
// down. Returns false once the last buffer row is at the top.
func (c *Cursor) ScrollDown(t Text, rows int) bool {
	if c.ScreenY >= t.LineCount()-1 {
		return false
	}
	c.ScreenY++
	if c.Y > 0 {
		c.Y--
		return true
	}
	c.clampX(t)
	return true
}

// Scroll moves the viewport by delta rows. Negative values scroll toward
// the top of the buffer. It stops early at either end.
func (c *Cursor) Scroll(t Text, rows, delta int) bool {
	moved := false
	for ; delta < 0; delta++ {
		if !c.ScrollUp(t, rows) {
			break
		}
		moved = true
	}
	for ; delta > 0; delta-- {
		if !c.ScrollDown(t, rows) {
			break
		}
		moved = true
	}
	return moved
}
