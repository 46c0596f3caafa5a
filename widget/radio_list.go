package widget

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/lojasmm/inlinekb/keyboard"
)

// NoSelection marks a RadioList without an active item.
const NoSelection = -1

// RadioList is a single-choice list laid out row-major on a fixed grid.
type RadioList[T any] struct {
	items  []T
	active int
	size   keyboard.Size
}

// NewRadioList panics when active is neither NoSelection nor a valid index,
// or when the items do not fit the grid.
func NewRadioList[T any](items []T, active int, size keyboard.Size) *RadioList[T] {
	if len(items) == 0 {
		log.Printf("radiolist: created without items")
	}
	if active != NoSelection {
		checkIndex(active, len(items))
	}
	checkFits(len(items), size)
	return &RadioList[T]{items: append([]T(nil), items...), active: active, size: size}
}

// RadioListOf lays the items out on a single row with nothing selected.
func RadioListOf[T any](items ...T) *RadioList[T] {
	return NewRadioList(items, NoSelection, keyboard.NewSize(1, uint8(len(items))))
}

func (l *RadioList[T]) Size() keyboard.Size { return l.size }

func (l *RadioList[T]) Len() int { return len(l.items) }

func (l *RadioList[T]) Items() []T { return l.items }

// Active returns the selected item, if any.
func (l *RadioList[T]) Active() (T, bool) {
	var zero T
	if l.active == NoSelection {
		return zero, false
	}
	return l.items[l.active], true
}

func (l *RadioList[T]) ActiveIndex() (int, bool) {
	return l.active, l.active != NoSelection
}

// SetActive selects the i-th item. It panics if i is out of range.
func (l *RadioList[T]) SetActive(i int) {
	checkIndex(i, len(l.items))
	l.active = i
}

// Render draws the list. Item i sends prefix+i; free grid cells are
// placeholders.
func (l *RadioList[T]) Render(prefix string, styles *Styles) keyboard.Keyboard {
	return renderGrid(l.size, len(l.items), styles, func(i int) keyboard.Cell {
		icon := styles.RadioList.InactiveIcon
		if i == l.active {
			icon = styles.RadioList.ActiveIcon
		}
		return keyboard.Cell{Label: label(icon, fmt.Sprint(l.items[i])), Token: prefix + strconv.Itoa(i)}
	})
}

type radioListJSON[T any] struct {
	Items  []T           `json:"items"`
	Active *int          `json:"active,omitempty"`
	Size   keyboard.Size `json:"size"`
}

func (l *RadioList[T]) MarshalJSON() ([]byte, error) {
	v := radioListJSON[T]{Items: l.items, Size: l.size}
	if l.active != NoSelection {
		active := l.active
		v.Active = &active
	}
	return json.Marshal(v)
}

func (l *RadioList[T]) UnmarshalJSON(data []byte) error {
	var v radioListJSON[T]
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	active := NoSelection
	if v.Active != nil {
		if *v.Active < 0 || *v.Active >= len(v.Items) {
			return fmt.Errorf("radiolist: active index %d out of range [0,%d)", *v.Active, len(v.Items))
		}
		active = *v.Active
	}
	if len(v.Items) > v.Size.Cells() {
		return fmt.Errorf("radiolist: %d items do not fit %s", len(v.Items), v.Size)
	}
	*l = RadioList[T]{items: v.Items, active: active, size: v.Size}
	return nil
}

func checkIndex(i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("widget: index %d out of range [0,%d)", i, n))
	}
}

func checkFits(n int, size keyboard.Size) {
	if n > size.Cells() {
		panic(fmt.Sprintf("widget: %d items do not fit %s", n, size))
	}
}

// renderGrid fills a size-shaped keyboard with placeholders and writes the
// first n cells row-major.
func renderGrid(size keyboard.Size, n int, styles *Styles, cell func(i int) keyboard.Cell) keyboard.Keyboard {
	kb := keyboard.Filled(size, keyboard.Placeholder(styles.Common.EmptyCellIcon))
	columns := int(size.Columns)
	for i := 0; i < n; i++ {
		kb[i/columns][i%columns] = cell(i)
	}
	return kb
}
