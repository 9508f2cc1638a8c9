package script

import (
	"testing"
	"time"
)

func sec(n int) time.Duration { return time.Duration(n) * time.Second }

func TestIndexAt(t *testing.T) {
	elements := []Element{
		{ID: "A", Offset: 0},
		{ID: "B", Offset: sec(5)},
		{ID: "C", Offset: sec(15)},
	}

	tests := []struct {
		name    string
		elapsed time.Duration
		want    int
	}{
		{"at first element", 0, 0},
		{"between first and second", sec(3), 0},
		{"exactly at second", sec(5), 1},
		{"between second and third", sec(6), 1},
		{"past the last", sec(100), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IndexAt(elements, tt.elapsed); got != tt.want {
				t.Errorf("IndexAt(%v) = %d, want %d", tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestIndexAtBeforeFirst(t *testing.T) {
	elements := []Element{{ID: "A", Offset: sec(10)}}
	if got := IndexAt(elements, sec(2)); got != -1 {
		t.Errorf("IndexAt before first element = %d, want -1", got)
	}
}

func TestIndexAtEmpty(t *testing.T) {
	if got := IndexAt(nil, sec(5)); got != -1 {
		t.Errorf("IndexAt(nil) = %d, want -1", got)
	}
}

func TestIndexAtTiePicksLastReached(t *testing.T) {
	elements := []Element{
		{ID: "A", Offset: sec(5)},
		{ID: "B", Offset: sec(5)},
		{ID: "C", Offset: sec(9)},
	}
	if got := IndexAt(elements, sec(5)); got != 1 {
		t.Errorf("IndexAt at tied offset = %d, want 1", got)
	}
}

func TestDisplayOrderWithoutAutoSort(t *testing.T) {
	elements := []Element{
		{ID: "A", Offset: sec(30)},
		{ID: "B", Offset: sec(10)},
	}
	got := DisplayOrder(elements, false)
	if got[0].ID != "A" || got[1].ID != "B" {
		t.Errorf("file order not preserved: %v", ids(got))
	}
}

func TestDisplayOrderStableSort(t *testing.T) {
	elements := []Element{
		{ID: "late", Offset: sec(30)},
		{ID: "first-ten", Offset: sec(10)},
		{ID: "second-ten", Offset: sec(10)},
		{ID: "twenty", Offset: sec(20)},
	}
	got := DisplayOrder(elements, true)

	want := []string{"first-ten", "second-ten", "twenty", "late"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("display order = %v, want %v", ids(got), want)
		}
	}

	// Input order must be untouched
	if elements[0].ID != "late" {
		t.Error("DisplayOrder mutated its input")
	}
}

func TestScriptDuration(t *testing.T) {
	s := &Script{Elements: []Element{
		{Offset: sec(10)},
		{Offset: sec(90)},
		{Offset: sec(45)},
	}}
	if got := s.Duration(); got != sec(90) {
		t.Errorf("Duration() = %v, want 90s", got)
	}
}

func TestScriptDurationFromWallClock(t *testing.T) {
	start, _ := time.Parse("15:04", "19:30")
	end, _ := time.Parse("15:04", "22:00")
	s := &Script{Start: start, End: end}
	if got := s.Duration(); got != 2*time.Hour+30*time.Minute {
		t.Errorf("Duration() = %v, want 2h30m", got)
	}
}

func TestScriptNilSafe(t *testing.T) {
	var s *Script
	if s.HasClockTimes() {
		t.Error("nil script should not report clock times")
	}
	if s.Duration() != 0 {
		t.Error("nil script duration should be zero")
	}
}

func ids(elements []Element) []string {
	out := make([]string, len(elements))
	for i, el := range elements {
		out[i] = el.ID
	}
	return out
}
