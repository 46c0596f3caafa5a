// Package keyboard holds the data model shared by widgets and layouts:
// a rectangular grid of clickable cells and its footprint.
package keyboard

import "fmt"

// NoopToken is the reserved callback token of placeholder cells.
// The router never dispatches it to a handler.
const NoopToken = "noop"

// Size is the rectangular footprint of a widget or layout in cells.
type Size struct {
	Rows    uint8 `json:"rows" yaml:"rows" toml:"rows"`
	Columns uint8 `json:"columns" yaml:"columns" toml:"columns"`
}

func NewSize(rows, columns uint8) Size {
	return Size{Rows: rows, Columns: columns}
}

// Cells returns the number of cells the footprint covers.
func (s Size) Cells() int {
	return int(s.Rows) * int(s.Columns)
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Columns)
}

// Cell is a single button. It encodes as a Telegram InlineKeyboardButton.
type Cell struct {
	Label string `json:"text"`
	Token string `json:"callback_data"`
}

// Placeholder returns a no-op cell with the given label.
func Placeholder(label string) Cell {
	return Cell{Label: label, Token: NoopToken}
}

// IsPlaceholder reports whether c carries the reserved no-op token.
func (c Cell) IsPlaceholder() bool {
	return c.Token == NoopToken
}

// Keyboard is an ordered list of rows. Every row has the same length.
type Keyboard [][]Cell

// Filled allocates a keyboard of the given size with every cell set to c.
func Filled(size Size, c Cell) Keyboard {
	kb := make(Keyboard, size.Rows)
	for i := range kb {
		row := make([]Cell, size.Columns)
		for j := range row {
			row[j] = c
		}
		kb[i] = row
	}
	return kb
}

// Chunk splits cells into rows of the given width. The last row is padded
// with pad so the result stays rectangular.
func Chunk(cells []Cell, columns int, pad Cell) Keyboard {
	if columns <= 0 || len(cells) == 0 {
		return Keyboard{}
	}
	rows := (len(cells) + columns - 1) / columns
	kb := make(Keyboard, 0, rows)
	for start := 0; start < len(cells); start += columns {
		row := make([]Cell, columns)
		n := copy(row, cells[start:min(start+columns, len(cells))])
		for j := n; j < columns; j++ {
			row[j] = pad
		}
		kb = append(kb, row)
	}
	return kb
}

// Size measures the keyboard from its first row. Use Rectangular to check
// that the remaining rows agree.
func (k Keyboard) Size() Size {
	if len(k) == 0 {
		return Size{}
	}
	return Size{Rows: uint8(len(k)), Columns: uint8(len(k[0]))}
}

// Rectangular reports whether every row has the first row's length.
func (k Keyboard) Rectangular() bool {
	for _, row := range k {
		if len(row) != len(k[0]) {
			return false
		}
	}
	return true
}

// Fits reports whether k is a strict rectangle of exactly size.
func (k Keyboard) Fits(size Size) bool {
	if len(k) != int(size.Rows) {
		return false
	}
	for _, row := range k {
		if len(row) != int(size.Columns) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy that shares no rows with k.
func (k Keyboard) Clone() Keyboard {
	out := make(Keyboard, len(k))
	for i, row := range k {
		out[i] = append([]Cell(nil), row...)
	}
	return out
}

// Tokens returns every callback token in row-major order.
func (k Keyboard) Tokens() []string {
	var tokens []string
	for _, row := range k {
		for _, c := range row {
			tokens = append(tokens, c.Token)
		}
	}
	return tokens
}
