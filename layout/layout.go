// Package layout combines independently sized widget keyboards into one
// rectangular keyboard.
//
// Widgets are concatenated along a single axis. Cells of the combined
// rectangle that no widget covers are filled with a placeholder cell.
package layout

import (
	"fmt"

	"github.com/lojasmm/inlinekb/keyboard"
)

// Orientation is the axis along which entries are concatenated.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Entry pairs a rendered keyboard with the size its producer reported.
type Entry struct {
	Keyboard keyboard.Keyboard
	Size     keyboard.Size
}

// Layout is a transient composition built once per render.
type Layout struct {
	Entries     []Entry
	Orientation Orientation
	Placeholder keyboard.Cell
}

func New(orientation Orientation, placeholder keyboard.Cell, entries ...Entry) *Layout {
	return &Layout{Entries: entries, Orientation: orientation, Placeholder: placeholder}
}

// Add appends an entry and returns the layout for chaining.
func (l *Layout) Add(kb keyboard.Keyboard, size keyboard.Size) *Layout {
	l.Entries = append(l.Entries, Entry{Keyboard: kb, Size: size})
	return l
}

func (l *Layout) Size() keyboard.Size {
	return TotalSize(l.Entries, l.Orientation)
}

func (l *Layout) Keyboard() keyboard.Keyboard {
	return Compose(l.Entries, l.Orientation, l.Placeholder)
}

// TotalSize folds the entry sizes along the orientation axis: the main axis
// is summed and the cross axis takes the maximum. No entries yield 0x0.
func TotalSize(entries []Entry, orientation Orientation) keyboard.Size {
	var total keyboard.Size
	for _, e := range entries {
		switch orientation {
		case Horizontal:
			total.Rows = max(total.Rows, e.Size.Rows)
			total.Columns += e.Size.Columns
		case Vertical:
			total.Rows += e.Size.Rows
			total.Columns = max(total.Columns, e.Size.Columns)
		}
	}
	return total
}

// Compose places every entry at a running offset inside a placeholder-filled
// rectangle of TotalSize. The cursor advances by each entry's columns
// (Horizontal) or rows (Vertical) and never moves along the other axis.
//
// An entry whose keyboard does not match its declared size is a producer
// bug; Compose panics with *ContractError instead of writing over the
// cells of its neighbours.
func Compose(entries []Entry, orientation Orientation, placeholder keyboard.Cell) keyboard.Keyboard {
	total := TotalSize(entries, orientation)
	out := keyboard.Filled(total, placeholder)

	var curRow, curCol int
	for i, e := range entries {
		if !e.Keyboard.Fits(e.Size) {
			panic(&ContractError{Index: i, Declared: e.Size, Actual: e.Keyboard.Size(), Reason: "declared size does not match keyboard"})
		}
		if curRow+int(e.Size.Rows) > int(total.Rows) || curCol+int(e.Size.Columns) > int(total.Columns) {
			panic(&ContractError{Index: i, Declared: e.Size, Actual: e.Keyboard.Size(), Reason: fmt.Sprintf("placement at (%d,%d) exceeds %s", curRow, curCol, total)})
		}

		for r, row := range e.Keyboard {
			copy(out[curRow+r][curCol:], row)
		}

		switch orientation {
		case Horizontal:
			curCol += int(e.Size.Columns)
		case Vertical:
			curRow += int(e.Size.Rows)
		}
	}
	return out
}

// ContractError is the panic value raised when an entry violates the
// producer contract.
type ContractError struct {
	Index    int
	Declared keyboard.Size
	Actual   keyboard.Size
	Reason   string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("layout: entry %d (declared %s, actual %s): %s", e.Index, e.Declared, e.Actual, e.Reason)
}
