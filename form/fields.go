package form

import (
	"context"
	"log"
	"time"

	"github.com/lojasmm/inlinekb/keyboard"
	"github.com/lojasmm/inlinekb/router"
	"github.com/lojasmm/inlinekb/widget"
)

// Selectable is satisfied by *widget.RadioList[T].
type Selectable interface {
	Size() keyboard.Size
	Len() int
	ActiveIndex() (int, bool)
	SetActive(i int)
	Render(prefix string, styles *widget.Styles) keyboard.Keyboard
}

// Toggleable is satisfied by *widget.CheckboxList[T].
type Toggleable interface {
	Size() keyboard.Size
	Len() int
	Toggle(i int)
	Render(prefix string, styles *widget.Styles) keyboard.Keyboard
}

// ClickFunc handles a button click.
type ClickFunc func(ctx context.Context, cb router.Callback) error

// --- Button ---

type buttonField struct {
	token   string
	button  *widget.Button
	onClick ClickFunc
}

// Button binds a button sending token to onClick.
func Button(token string, b *widget.Button, onClick ClickFunc) Field {
	return &buttonField{token: token, button: b, onClick: onClick}
}

func (f *buttonField) Size() keyboard.Size { return f.button.Size() }

func (f *buttonField) Render(*widget.Styles) keyboard.Keyboard { return f.button.Render(f.token) }

func (f *buttonField) Routes() []router.Route {
	return []router.Route{{
		Name:  "button " + f.token,
		Match: router.Exact(f.token),
		Handle: func(ctx context.Context, cb router.Callback) (router.Outcome, error) {
			if f.onClick == nil {
				return router.Ignored, nil
			}
			return router.Handled, f.onClick(ctx, cb)
		},
	}}
}

// --- RadioList ---

type radioListField struct {
	prefix string
	list   Selectable
}

// RadioList binds a radio list whose items send prefix+index.
func RadioList(prefix string, l Selectable) Field {
	return &radioListField{prefix: prefix, list: l}
}

func (f *radioListField) Size() keyboard.Size { return f.list.Size() }

func (f *radioListField) Render(styles *widget.Styles) keyboard.Keyboard {
	return f.list.Render(f.prefix, styles)
}

func (f *radioListField) Routes() []router.Route {
	return []router.Route{{
		Name:  "radio list " + f.prefix,
		Match: router.Prefix(f.prefix),
		Handle: func(_ context.Context, cb router.Callback) (router.Outcome, error) {
			i, _ := router.Index(cb.Data, f.prefix)
			if i >= f.list.Len() {
				log.Printf("form: radio list %q got stale index %d (%d items)", f.prefix, i, f.list.Len())
				return router.Ignored, nil
			}
			if active, ok := f.list.ActiveIndex(); ok && active == i {
				log.Printf("form: radio list %q item %d is already selected", f.prefix, i)
				return router.Ignored, nil
			}
			f.list.SetActive(i)
			return router.Changed, nil
		},
	}}
}

// --- CheckboxList ---

type checkboxListField struct {
	prefix string
	list   Toggleable
}

// CheckboxList binds a checkbox list whose items send prefix+index.
func CheckboxList(prefix string, l Toggleable) Field {
	return &checkboxListField{prefix: prefix, list: l}
}

func (f *checkboxListField) Size() keyboard.Size { return f.list.Size() }

func (f *checkboxListField) Render(styles *widget.Styles) keyboard.Keyboard {
	return f.list.Render(f.prefix, styles)
}

func (f *checkboxListField) Routes() []router.Route {
	return []router.Route{{
		Name:  "checkbox list " + f.prefix,
		Match: router.Prefix(f.prefix),
		Handle: func(_ context.Context, cb router.Callback) (router.Outcome, error) {
			i, _ := router.Index(cb.Data, f.prefix)
			if i >= f.list.Len() {
				log.Printf("form: checkbox list %q got stale index %d (%d items)", f.prefix, i, f.list.Len())
				return router.Ignored, nil
			}
			f.list.Toggle(i)
			return router.Changed, nil
		},
	}}
}

// --- Calendar ---

// CalendarOptions configures a calendar field. Zero Tokens means
// widget.DefaultCalendarTokens.
type CalendarOptions struct {
	Tokens    widget.CalendarTokens
	OnDay     func(ctx context.Context, cb router.Callback, day time.Time) error
	OnWeekday func(ctx context.Context, cb router.Callback, day time.Weekday) error
}

type calendarField struct {
	cal  *widget.Calendar
	opts CalendarOptions
}

// Calendar binds a calendar. Navigation buttons change the shown month;
// day and weekday clicks are passed to the callbacks in opts.
func Calendar(c *widget.Calendar, opts CalendarOptions) Field {
	if opts.Tokens == (widget.CalendarTokens{}) {
		opts.Tokens = widget.DefaultCalendarTokens()
	}
	return &calendarField{cal: c, opts: opts}
}

func (f *calendarField) Size() keyboard.Size { return f.cal.Size() }

func (f *calendarField) Render(styles *widget.Styles) keyboard.Keyboard {
	return f.cal.Render(f.opts.Tokens, styles)
}

func (f *calendarField) Routes() []router.Route {
	t := f.opts.Tokens
	return []router.Route{
		{
			Name:  "calendar day",
			Match: func(data string) bool { _, ok := widget.ParseDay(data, t.DayPrefix); return ok },
			Handle: func(ctx context.Context, cb router.Callback) (router.Outcome, error) {
				if f.opts.OnDay == nil {
					return router.Ignored, nil
				}
				day, _ := widget.ParseDay(cb.Data, t.DayPrefix)
				return router.Handled, f.opts.OnDay(ctx, cb, day)
			},
		},
		{
			Name:  "calendar weekday",
			Match: func(data string) bool { _, ok := widget.ParseWeekday(data, t.WeekdayPrefix); return ok },
			Handle: func(ctx context.Context, cb router.Callback) (router.Outcome, error) {
				if f.opts.OnWeekday == nil {
					log.Printf("form: calendar weekday %q clicked without a handler", cb.Data)
					return router.Ignored, nil
				}
				wd, _ := widget.ParseWeekday(cb.Data, t.WeekdayPrefix)
				return router.Handled, f.opts.OnWeekday(ctx, cb, wd)
			},
		},
		{
			Name:  "calendar navigation",
			Match: router.OneOf(t.PreviousYear, t.NextYear, t.PreviousMonth, t.NextMonth),
			Handle: func(_ context.Context, cb router.Callback) (router.Outcome, error) {
				switch cb.Data {
				case t.PreviousYear:
					f.cal.SetPreviousYear()
				case t.NextYear:
					f.cal.SetNextYear()
				case t.PreviousMonth:
					f.cal.SetPreviousMonth()
				case t.NextMonth:
					f.cal.SetNextMonth()
				}
				return router.Changed, nil
			},
		},
	}
}
