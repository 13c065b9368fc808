// Package tracker maps a scroll position onto the section that should be
// highlighted in a page's sidebar, and turns a sidebar selection into a
// scroll command for the viewport that owns the page.
//
// Nothing here measures or mutates a view. Callers pass in the geometry they
// measured and apply the commands they get back.
package tracker

import (
	"errors"
	"fmt"
)

// DefaultActivationOffset is how far ahead of its top edge a section
// becomes active.
const DefaultActivationOffset = 100

// None is the active index when no section contains the scroll position.
const None = -1

// ErrOutOfRange is returned when a scroll target does not name a section.
var ErrOutOfRange = errors.New("section index out of range")

// Section is the measured geometry of one content block. Top is the
// distance from the document top to the block's start.
type Section struct {
	Top    int `json:"top"`
	Height int `json:"height"`
}

// ScrollCommand asks the viewport to move so that Offset is the new scroll
// position.
type ScrollCommand struct {
	Offset     int  `json:"offset"`
	Smooth     bool `json:"smooth"`
	AlignStart bool `json:"align_start"`
}

// ActiveIndex returns the active section for pos using the default
// activation offset.
func ActiveIndex(sections []Section, pos int) int {
	return ActiveIndexWithOffset(sections, pos, DefaultActivationOffset)
}

// ActiveIndexWithOffset returns the index of the first section whose window
// [Top-offset, Top+Height) contains pos, or None.
func ActiveIndexWithOffset(sections []Section, pos, offset int) int {
	for i, s := range sections {
		if s.Top-offset <= pos && pos < s.Top+s.Height {
			return i
		}
	}
	return None
}

// RequestScrollTo builds the command that brings sections[index] to the top
// of the viewport.
func RequestScrollTo(sections []Section, index int) (ScrollCommand, error) {
	if index < 0 || index >= len(sections) {
		return ScrollCommand{}, fmt.Errorf("%w: index %d, %d sections", ErrOutOfRange, index, len(sections))
	}
	return ScrollCommand{
		Offset:     sections[index].Top,
		Smooth:     true,
		AlignStart: true,
	}, nil
}

// Tracker carries a configured activation offset.
type Tracker struct {
	Offset int
}

// New returns a Tracker using offset; a negative offset selects the default.
func New(offset int) Tracker {
	if offset < 0 {
		offset = DefaultActivationOffset
	}
	return Tracker{Offset: offset}
}

// Active is ActiveIndexWithOffset with the tracker's offset.
func (t Tracker) Active(sections []Section, pos int) int {
	return ActiveIndexWithOffset(sections, pos, t.Offset)
}

// ScrollTo is RequestScrollTo.
func (t Tracker) ScrollTo(sections []Section, index int) (ScrollCommand, error) {
	return RequestScrollTo(sections, index)
}
