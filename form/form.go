// Package form turns a struct of widgets into one keyboard and one router.
//
// A form registers each of its widgets as a Field: the widget's size, how to
// render it and the callback routes that mutate it. The form's keyboard is
// the layout composition of every field in declaration order and its router
// is the concatenation of every field's routes.
package form

import (
	"context"
	"fmt"

	"github.com/lojasmm/inlinekb/keyboard"
	"github.com/lojasmm/inlinekb/layout"
	"github.com/lojasmm/inlinekb/router"
	"github.com/lojasmm/inlinekb/widget"
)

// Form is implemented by user structs composed of widgets. Fields must bind
// to the receiver's own widgets so routes mutate that instance.
type Form interface {
	Orientation() layout.Orientation
	Fields() []Field
}

// Field is a widget registered in a form.
type Field interface {
	Size() keyboard.Size
	Render(styles *widget.Styles) keyboard.Keyboard
	Routes() []router.Route
}

// Keyboard renders every field and composes them along the form's axis.
func Keyboard(f Form, styles *widget.Styles) keyboard.Keyboard {
	fields := f.Fields()
	entries := make([]layout.Entry, len(fields))
	for i, fd := range fields {
		entries[i] = layout.Entry{Keyboard: fd.Render(styles), Size: fd.Size()}
	}
	return layout.Compose(entries, f.Orientation(), keyboard.Placeholder(styles.Common.EmptyCellIcon))
}

// Router collects the routes of every field in declaration order.
func Router(f Form) *router.Router {
	r := router.New()
	for _, fd := range f.Fields() {
		r.Add(fd.Routes()...)
	}
	return r
}

// Editor replaces the keyboard attached to a sent message.
type Editor interface {
	EditKeyboard(ctx context.Context, chatID, messageID int64, kb keyboard.Keyboard) error
}

// Deps are the collaborators Handle needs after a state change.
type Deps struct {
	Editor  Editor
	Persist func(ctx context.Context) error
	Styles  *widget.Styles
}

// Handle routes cb into f. When a widget changed, the message keyboard is
// redrawn before the form is persisted; callers must serialize callbacks of
// the same chat for that order to be safe.
func Handle(ctx context.Context, f Form, cb router.Callback, deps Deps) (router.Outcome, error) {
	out, err := Router(f).Dispatch(ctx, cb)
	if err != nil || out != router.Changed {
		return out, err
	}

	if err := deps.Editor.EditKeyboard(ctx, cb.ChatID, cb.MessageID, Keyboard(f, deps.Styles)); err != nil {
		return out, fmt.Errorf("redrawing form: %w", err)
	}
	if deps.Persist != nil {
		if err := deps.Persist(ctx); err != nil {
			return out, fmt.Errorf("persisting form: %w", err)
		}
	}
	return out, nil
}
