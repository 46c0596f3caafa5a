// Package gallery holds the demo forms the bot sends, one per command.
package gallery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lojasmm/inlinekb/form"
	"github.com/lojasmm/inlinekb/keyboard"
	"github.com/lojasmm/inlinekb/layout"
	"github.com/lojasmm/inlinekb/router"
	"github.com/lojasmm/inlinekb/widget"
)

// Notifier sends plain text replies from button handlers.
type Notifier interface {
	SendText(ctx context.Context, chatID int64, text string) error
}

// Form is a gallery form. Bind hands it the notifier before its fields are
// used; the notifier is not persisted.
type Form interface {
	form.Form
	Bind(n Notifier)
}

// Kind describes one gallery command.
type Kind struct {
	Name  string
	Title string
	New   func() Form
}

var kinds = []Kind{
	{Name: "button", Title: "Button example:", New: func() Form { return NewButtonForm() }},
	{Name: "radio_list", Title: "Radio list example:", New: func() Form { return NewRadioListForm() }},
	{Name: "checkbox_list", Title: "Checkbox list example:", New: func() Form { return NewCheckboxListForm() }},
	{Name: "calendar", Title: "Choose a date:", New: func() Form { return NewCalendarForm() }},
	{Name: "complex", Title: "Choose shape and options:", New: func() Form { return NewComplexForm() }},
}

// Kinds lists every gallery form in command order.
func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

// Lookup finds a kind by name.
func Lookup(name string) (Kind, bool) {
	for _, k := range kinds {
		if k.Name == name {
			return k, true
		}
	}
	return Kind{}, false
}

// --- Button ---

type ButtonForm struct {
	Button *widget.Button `json:"button"`
	n      Notifier
}

func NewButtonForm() *ButtonForm {
	b := widget.NewButton("Click me")
	return &ButtonForm{Button: &b}
}

func (f *ButtonForm) Bind(n Notifier) { f.n = n }

func (f *ButtonForm) Orientation() layout.Orientation { return layout.Horizontal }

func (f *ButtonForm) Fields() []form.Field {
	return []form.Field{
		form.Button("b", f.Button, func(ctx context.Context, cb router.Callback) error {
			return f.n.SendText(ctx, cb.ChatID, "Hello!")
		}),
	}
}

// --- RadioList ---

type RadioListForm struct {
	Numbers *widget.RadioList[int] `json:"numbers"`
}

func NewRadioListForm() *RadioListForm {
	return &RadioListForm{Numbers: widget.RadioListOf(1, 2)}
}

func (f *RadioListForm) Bind(Notifier) {}

func (f *RadioListForm) Orientation() layout.Orientation { return layout.Horizontal }

func (f *RadioListForm) Fields() []form.Field {
	return []form.Field{form.RadioList("rl_", f.Numbers)}
}

// --- CheckboxList ---

type CheckboxListForm struct {
	Numbers *widget.CheckboxList[int] `json:"numbers"`
}

func NewCheckboxListForm() *CheckboxListForm {
	return &CheckboxListForm{Numbers: widget.CheckboxListOf(1, 2, 3, 4)}
}

func (f *CheckboxListForm) Bind(Notifier) {}

func (f *CheckboxListForm) Orientation() layout.Orientation { return layout.Horizontal }

func (f *CheckboxListForm) Fields() []form.Field {
	return []form.Field{form.CheckboxList("cl_", f.Numbers)}
}

// --- Calendar ---

type CalendarForm struct {
	Calendar *widget.Calendar `json:"calendar"`
	n        Notifier
}

func NewCalendarForm() *CalendarForm {
	return &CalendarForm{Calendar: widget.NewCalendar()}
}

func (f *CalendarForm) Bind(n Notifier) { f.n = n }

func (f *CalendarForm) Orientation() layout.Orientation { return layout.Vertical }

func (f *CalendarForm) Fields() []form.Field {
	return []form.Field{
		form.Calendar(f.Calendar, form.CalendarOptions{
			OnDay: func(ctx context.Context, cb router.Callback, day time.Time) error {
				return f.n.SendText(ctx, cb.ChatID, "You've clicked: "+day.Format("2006-01-02"))
			},
			OnWeekday: func(ctx context.Context, cb router.Callback, day time.Weekday) error {
				return f.n.SendText(ctx, cb.ChatID, "You've clicked: "+day.String())
			},
		}),
	}
}

// --- Several widgets in one keyboard ---

type ComplexForm struct {
	Shapes  *widget.RadioList[string]    `json:"shapes"`
	Options *widget.CheckboxList[string] `json:"options"`
	Done    *widget.Button               `json:"done"`
	n       Notifier
}

func NewComplexForm() *ComplexForm {
	done := widget.NewButton("Done")
	return &ComplexForm{
		Shapes: widget.NewRadioList([]string{"square", "triangle", "circle"}, widget.NoSelection, keyboard.NewSize(4, 1)),
		Options: widget.NewCheckboxList([]widget.CheckboxItem[string]{
			{Value: "A"}, {Value: "B"}, {Value: "C"},
		}, keyboard.NewSize(3, 1)),
		Done: &done,
	}
}

func (f *ComplexForm) Bind(n Notifier) { f.n = n }

func (f *ComplexForm) Orientation() layout.Orientation { return layout.Horizontal }

func (f *ComplexForm) Fields() []form.Field {
	return []form.Field{
		form.RadioList("s_", f.Shapes),
		form.CheckboxList("o_", f.Options),
		form.Button("done", f.Done, func(ctx context.Context, cb router.Callback) error {
			return f.n.SendText(ctx, cb.ChatID, f.Summary())
		}),
	}
}

// Summary describes the current choice.
func (f *ComplexForm) Summary() string {
	shape, ok := f.Shapes.Active()
	if !ok {
		shape = "no shape"
	}
	options := f.Options.Selected()
	if len(options) == 0 {
		return fmt.Sprintf("You chose %s without options.", shape)
	}
	return fmt.Sprintf("You chose %s with options %s.", shape, strings.Join(options, ", "))
}
