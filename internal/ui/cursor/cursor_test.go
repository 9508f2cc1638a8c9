package cursor

import "testing"

func TestMove(t *testing.T) {
	tests := []struct {
		name       string
		margin     int
		initial    int
		delta      int
		len        int
		height     int
		wantPos    int
		wantOffset int
	}{
		{
			name:    "move down within bounds no scroll",
			margin:  2,
			delta:   1,
			len:     10,
			height:  5,
			wantPos: 1,
		},
		{
			name:       "move down triggers scroll with margin",
			margin:     2,
			delta:      3,
			len:        10,
			height:     5,
			wantPos:    3,
			wantOffset: 1,
		},
		{
			name:    "move up clamps to 0",
			margin:  2,
			initial: 2,
			delta:   -5,
			len:     10,
			height:  5,
			wantPos: 0,
		},
		{
			name:       "move down clamps to len-1",
			margin:     2,
			initial:    8,
			delta:      10,
			len:        10,
			height:     5,
			wantPos:    9,
			wantOffset: 5,
		},
		{
			name:    "empty list is a no-op",
			margin:  2,
			delta:   3,
			len:     0,
			height:  5,
			wantPos: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.margin)
			c.pos = tt.initial
			c.ensureVisible(tt.len, tt.height)
			c.Move(tt.delta, tt.len, tt.height)
			if c.Pos() != tt.wantPos {
				t.Errorf("pos = %d, want %d", c.Pos(), tt.wantPos)
			}
			if c.Offset() != tt.wantOffset {
				t.Errorf("offset = %d, want %d", c.Offset(), tt.wantOffset)
			}
		})
	}
}

func TestFollowTarget(t *testing.T) {
	tests := []struct {
		name       string
		offset     int
		pos        int
		lookback   int
		len        int
		height     int
		wantMoved  bool
		wantOffset int
	}{
		{
			name: "target above midline stays put",
			// height 10, midline 5: row 3 is comfortably visible
			pos:    3,
			len:    50,
			height: 10,
		},
		{
			name:   "target scrolled past the top stays put",
			offset: 20,
			pos:    5,
			len:    50,
			height: 10,
			// pos-offset is negative, well above the midline
			wantOffset: 20,
		},
		{
			name:       "target below midline scrolls with lookback",
			pos:        7,
			lookback:   3,
			len:        50,
			height:     10,
			wantMoved:  true,
			wantOffset: 4,
		},
		{
			name:       "never scrolls past the last page",
			pos:        49,
			lookback:   3,
			len:        50,
			height:     10,
			wantMoved:  true,
			wantOffset: 40, // len-height, last row flush with bottom
		},
		{
			name:     "zero height is a no-op",
			pos:      7,
			lookback: 3,
			len:      50,
		},
		{
			name:     "out of range target is a no-op",
			pos:      60,
			lookback: 3,
			len:      50,
			height:   10,
		},
		{
			name:     "negative target is a no-op",
			pos:      -1,
			lookback: 3,
			len:      50,
			height:   10,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(0)
			c.offset = tt.offset
			moved := c.FollowTarget(tt.pos, tt.lookback, tt.len, tt.height)
			if moved != tt.wantMoved {
				t.Errorf("moved = %v, want %v", moved, tt.wantMoved)
			}
			if c.Offset() != tt.wantOffset {
				t.Errorf("offset = %d, want %d", c.Offset(), tt.wantOffset)
			}
		})
	}
}

func TestFollowTargetIdempotent(t *testing.T) {
	c := New(0)
	if !c.FollowTarget(7, 3, 50, 10) {
		t.Fatal("first call should scroll")
	}
	offset := c.Offset()
	if c.FollowTarget(7, 3, 50, 10) {
		t.Error("second call with unchanged inputs should not scroll")
	}
	if c.Offset() != offset {
		t.Errorf("offset drifted from %d to %d", offset, c.Offset())
	}
}

func TestFollowTargetAdvancingShow(t *testing.T) {
	// A current element walking down the list only ever scrolls forward,
	// one settled position per target row.
	c := New(0)
	last := 0
	for pos := 0; pos < 50; pos++ {
		c.FollowTarget(pos, 3, 50, 10)
		if c.Offset() < last {
			t.Fatalf("offset went backwards at pos %d: %d < %d", pos, c.Offset(), last)
		}
		last = c.Offset()
	}
	if last != 40 {
		t.Errorf("final offset = %d, want 40", last)
	}
}

func TestEdges(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		len    int
		height int
		want   EdgeState
	}{
		{
			name:   "all rows fit",
			len:    5,
			height: 10,
			want:   EdgeState{AtTop: true, AtBottom: true, AllFit: true},
		},
		{
			name:   "at top of long list",
			len:    50,
			height: 10,
			want:   EdgeState{AtTop: true},
		},
		{
			name:   "middle of long list",
			offset: 20,
			len:    50,
			height: 10,
			want:   EdgeState{},
		},
		{
			name:   "at bottom of long list",
			offset: 40,
			len:    50,
			height: 10,
			want:   EdgeState{AtBottom: true},
		},
		{
			name:   "empty list",
			len:    0,
			height: 10,
			want:   EdgeState{AtTop: true, AtBottom: true, AllFit: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(0)
			c.offset = tt.offset
			if got := c.Edges(tt.len, tt.height); got != tt.want {
				t.Errorf("Edges() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestClampToBounds(t *testing.T) {
	c := New(2)
	c.pos = 30
	c.offset = 25

	if !c.ClampToBounds(10, 5) {
		t.Error("expected adjustment when list shrinks")
	}
	if c.Pos() != 9 {
		t.Errorf("pos = %d, want 9", c.Pos())
	}
	if c.Offset() != 5 {
		t.Errorf("offset = %d, want 5", c.Offset())
	}

	if c.ClampToBounds(10, 5) {
		t.Error("no adjustment expected when already in bounds")
	}

	if !c.ClampToBounds(0, 5) {
		t.Error("expected reset on empty list")
	}
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("pos/offset = %d/%d after empty clamp, want 0/0", c.Pos(), c.Offset())
	}
}

func TestVisibleRange(t *testing.T) {
	c := New(0)
	c.offset = 8

	start, end := c.VisibleRange(10, 5)
	if start != 8 || end != 10 {
		t.Errorf("VisibleRange = [%d, %d), want [8, 10)", start, end)
	}

	start, end = c.VisibleRange(0, 5)
	if start != 0 || end != 0 {
		t.Errorf("VisibleRange on empty = [%d, %d), want [0, 0)", start, end)
	}
}

func TestHandleKey(t *testing.T) {
	c := New(1)

	if !c.HandleKey("G", 20, 5) {
		t.Fatal("G should be handled")
	}
	if c.Pos() != 19 {
		t.Errorf("pos = %d after G, want 19", c.Pos())
	}

	if !c.HandleKey("g", 20, 5) {
		t.Fatal("g should be handled")
	}
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("pos/offset = %d/%d after g, want 0/0", c.Pos(), c.Offset())
	}

	if c.HandleKey("x", 20, 5) {
		t.Error("x should not be handled")
	}
}
