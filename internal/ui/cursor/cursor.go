// Package cursor provides scroll bookkeeping for scrollable lists: a
// manual cursor with a scroll margin, and follow-mode targeting that keeps
// an externally chosen row in view.
package cursor

// Cursor manages cursor position and scroll offset for a scrollable list.
// The list length and viewport height are passed to methods rather than
// stored, since they can change dynamically.
type Cursor struct {
	pos    int // Current cursor position (0-indexed)
	offset int // Scroll offset (first visible item index)
	margin int // Scroll margin (items to keep visible above/below cursor)
}

// New creates a new Cursor with the specified scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the current cursor position.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the current scroll offset.
func (c Cursor) Offset() int {
	return c.offset
}

// Move moves the cursor by delta positions within a list of given length.
// It clamps the cursor to valid bounds and adjusts the offset for visibility.
// If listLen is 0, this is a no-op.
func (c *Cursor) Move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, listLen-1)
	c.ensureVisible(listLen, height)
}

// JumpStart moves cursor to position 0 and resets offset.
func (c *Cursor) JumpStart() {
	c.pos = 0
	c.offset = 0
}

// JumpEnd moves cursor to the last position and adjusts offset.
func (c *Cursor) JumpEnd(listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = listLen - 1
	c.ensureVisible(listLen, height)
}

// ensureVisible adjusts the scroll offset to keep the cursor visible.
func (c *Cursor) ensureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}

	// Scroll up: cursor too close to top
	if c.pos < c.offset+c.margin {
		c.offset = max(c.pos-c.margin, 0)
	}

	// Scroll down: cursor too close to bottom
	if c.pos >= c.offset+height-c.margin {
		c.offset = c.pos - height + c.margin + 1
	}

	// Clamp offset to valid range
	c.offset = clamp(c.offset, maxOffset(listLen, height))
}

// FollowTarget scrolls so the row at pos sits lookback rows below the top
// of the viewport, giving the operator already-called context above the
// current element. A row already above the viewport midline is left alone,
// so a steadily advancing target never causes scroll churn, and the offset
// never goes past the point where the last row sits flush with the bottom.
// Reports whether the offset changed; repeating the call with the same
// inputs is a no-op.
func (c *Cursor) FollowTarget(pos, lookback, listLen, height int) bool {
	if height <= 0 || listLen == 0 || pos < 0 || pos >= listLen {
		return false
	}

	// Above the midline (or scrolled past entirely): leave the view alone.
	if pos-c.offset < height/2 {
		return false
	}

	target := clamp(pos-lookback, maxOffset(listLen, height))
	if target == c.offset {
		return false
	}
	c.offset = target
	c.pos = pos
	return true
}

// SyncTo moves the cursor position without scrolling, keeping it in step
// with an externally chosen row.
func (c *Cursor) SyncTo(pos, listLen int) {
	if listLen == 0 {
		c.pos = 0
		return
	}
	c.pos = clamp(pos, listLen-1)
}

// ClampToBounds ensures cursor and offset are valid for the given length.
// Useful when the list shrinks (script reloaded with fewer rows).
// Returns true if anything was adjusted.
func (c *Cursor) ClampToBounds(listLen, height int) bool {
	if listLen == 0 {
		changed := c.pos != 0 || c.offset != 0
		c.pos = 0
		c.offset = 0
		return changed
	}

	oldPos, oldOffset := c.pos, c.offset
	c.pos = clamp(c.pos, listLen-1)
	c.offset = clamp(c.offset, maxOffset(listLen, height))
	return c.pos != oldPos || c.offset != oldOffset
}

// VisibleRange returns the range of visible indices [start, end).
// The end index is exclusive.
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	start = c.offset
	end = min(c.offset+height, listLen)
	return start, end
}

// Reset resets the cursor to position 0 and offset 0.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

// EdgeState reports where the viewport sits relative to the list, for
// jump-to-top/bottom indicator controls.
type EdgeState struct {
	AtTop    bool
	AtBottom bool
	AllFit   bool // every row fits without scrolling
}

// Edges computes the viewport edge state for the given list and height.
func (c Cursor) Edges(listLen, height int) EdgeState {
	fit := height <= 0 || listLen <= height
	return EdgeState{
		AtTop:    c.offset <= 0,
		AtBottom: fit || c.offset >= listLen-height,
		AllFit:   fit,
	}
}

// HandleKey handles common list navigation keys and returns true if the key
// was handled. Supported keys: j/down, k/up, g/home, G/end, ctrl+d (half
// page down), ctrl+u (half page up).
func (c *Cursor) HandleKey(key string, listLen, height int) bool {
	switch key {
	case "j", "down":
		c.Move(1, listLen, height)
		return true
	case "k", "up":
		c.Move(-1, listLen, height)
		return true
	case "g", "home":
		c.JumpStart()
		return true
	case "G", "end":
		c.JumpEnd(listLen, height)
		return true
	case "ctrl+d":
		c.Move(height/2, listLen, height)
		return true
	case "ctrl+u":
		c.Move(-height/2, listLen, height)
		return true
	}
	return false
}

func maxOffset(listLen, height int) int {
	return max(listLen-height, 0)
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
