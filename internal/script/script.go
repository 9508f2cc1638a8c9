// Package script defines the call-script data model and ordering rules.
package script

import (
	"sort"
	"time"
)

// Kind identifies what a script element represents.
type Kind int

const (
	KindCue Kind = iota
	KindNote
	KindGroup
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindCue:
		return "cue"
	case KindNote:
		return "note"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Element is one timed row of a call script.
type Element struct {
	ID         string
	Offset     time.Duration // from script start; rows without a stamp get 0
	Kind       Kind
	Label      string
	Department string
	Page       int
}

// Script is the full call script for one performance.
type Script struct {
	Title    string
	Venue    string
	Start    time.Time // wall-clock curtain time, zero when unknown
	End      time.Time
	Elements []Element
}

// HasClockTimes reports whether wall-clock labels can be derived for elements.
func (s *Script) HasClockTimes() bool {
	return s != nil && !s.Start.IsZero()
}

// Duration returns the script's running time: End-Start when both are set,
// otherwise the offset of the last element in chronological order.
func (s *Script) Duration() time.Duration {
	if s == nil {
		return 0
	}
	if !s.Start.IsZero() && !s.End.IsZero() && s.End.After(s.Start) {
		return s.End.Sub(s.Start)
	}
	var last time.Duration
	for _, el := range s.Elements {
		if el.Offset > last {
			last = el.Offset
		}
	}
	return last
}

// DisplayOrder returns the elements in the order they should be shown.
// With autoSort enabled the result is sorted ascending by offset using a
// stable sort, so equal offsets keep their file order. Without it the file
// order is returned unchanged (assumed already chronological).
func DisplayOrder(elements []Element, autoSort bool) []Element {
	if !autoSort {
		return elements
	}
	out := make([]Element, len(elements))
	copy(out, elements)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Offset < out[j].Offset
	})
	return out
}

// IndexAt returns the index of the last element whose offset is at or
// before elapsed, or -1 when the clock has not reached the first element.
// Among elements sharing an offset the later list position wins, since
// every one of them has been reached.
func IndexAt(elements []Element, elapsed time.Duration) int {
	idx := -1
	for i, el := range elements {
		if el.Offset <= elapsed {
			idx = i
		} else {
			break
		}
	}
	return idx
}
