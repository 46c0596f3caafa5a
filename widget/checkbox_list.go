package widget

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/lojasmm/inlinekb/keyboard"
)

// CheckboxItem is one entry of a CheckboxList.
type CheckboxItem[T any] struct {
	Selected bool `json:"selected"`
	Value    T    `json:"value"`
}

// CheckboxList is a multiple-choice list laid out row-major on a fixed grid.
type CheckboxList[T any] struct {
	items []CheckboxItem[T]
	size  keyboard.Size
}

// NewCheckboxList panics when the items do not fit the grid.
func NewCheckboxList[T any](items []CheckboxItem[T], size keyboard.Size) *CheckboxList[T] {
	checkFits(len(items), size)
	return &CheckboxList[T]{items: append([]CheckboxItem[T](nil), items...), size: size}
}

// CheckboxListOf lays unselected items out on a single row.
func CheckboxListOf[T any](values ...T) *CheckboxList[T] {
	items := make([]CheckboxItem[T], len(values))
	for i, v := range values {
		items[i] = CheckboxItem[T]{Value: v}
	}
	return NewCheckboxList(items, keyboard.NewSize(1, uint8(len(values))))
}

func (l *CheckboxList[T]) Size() keyboard.Size { return l.size }

func (l *CheckboxList[T]) Len() int { return len(l.items) }

func (l *CheckboxList[T]) Items() []CheckboxItem[T] { return l.items }

// Toggle flips the selection of the i-th item. It panics if i is out of range.
func (l *CheckboxList[T]) Toggle(i int) {
	checkIndex(i, len(l.items))
	l.items[i].Selected = !l.items[i].Selected
}

func (l *CheckboxList[T]) IsSelected(i int) bool {
	checkIndex(i, len(l.items))
	return l.items[i].Selected
}

// Selected returns the selected values in list order.
func (l *CheckboxList[T]) Selected() []T {
	var out []T
	for _, it := range l.items {
		if it.Selected {
			out = append(out, it.Value)
		}
	}
	return out
}

// Render draws the list. Item i sends prefix+i.
func (l *CheckboxList[T]) Render(prefix string, styles *Styles) keyboard.Keyboard {
	return renderGrid(l.size, len(l.items), styles, func(i int) keyboard.Cell {
		icon := styles.CheckboxList.InactiveIcon
		if l.items[i].Selected {
			icon = styles.CheckboxList.ActiveIcon
		}
		return keyboard.Cell{Label: label(icon, fmt.Sprint(l.items[i].Value)), Token: prefix + strconv.Itoa(i)}
	})
}

type checkboxListJSON[T any] struct {
	Items []CheckboxItem[T] `json:"items"`
	Size  keyboard.Size     `json:"size"`
}

func (l *CheckboxList[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(checkboxListJSON[T]{Items: l.items, Size: l.size})
}

func (l *CheckboxList[T]) UnmarshalJSON(data []byte) error {
	var v checkboxListJSON[T]
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if len(v.Items) > v.Size.Cells() {
		return fmt.Errorf("checkboxlist: %d items do not fit %s", len(v.Items), v.Size)
	}
	*l = CheckboxList[T]{items: v.Items, size: v.Size}
	return nil
}
