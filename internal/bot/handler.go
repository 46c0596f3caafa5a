package bot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/lojasmm/inlinekb/form"
	"github.com/lojasmm/inlinekb/internal/gallery"
	"github.com/lojasmm/inlinekb/internal/session"
	"github.com/lojasmm/inlinekb/internal/store"
	"github.com/lojasmm/inlinekb/internal/telegram"
	"github.com/lojasmm/inlinekb/keyboard"
	"github.com/lojasmm/inlinekb/router"
	"github.com/lojasmm/inlinekb/widget"
)

const outdatedNotice = "This keyboard is no longer active."

// Messenger is the part of the Telegram client the bot uses.
type Messenger interface {
	SendText(ctx context.Context, chatID int64, text string) error
	SendKeyboard(ctx context.Context, chatID int64, text string, kb keyboard.Keyboard) (int64, error)
	EditKeyboard(ctx context.Context, chatID, messageID int64, kb keyboard.Keyboard) error
	AnswerCallback(ctx context.Context, callbackID, text string) error
}

type Handler struct {
	tg       Messenger
	store    store.Store
	sessions *session.Manager
	styles   *widget.Styles
	tracer   trace.Tracer
}

func NewHandler(tg Messenger, s store.Store, sessions *session.Manager, styles *widget.Styles) *Handler {
	if styles == nil {
		styles = widget.DefaultStyles()
	}
	return &Handler{
		tg:       tg,
		store:    s,
		sessions: sessions,
		styles:   styles,
		tracer:   otel.Tracer("github.com/lojasmm/inlinekb/internal/bot"),
	}
}

func (h *Handler) HandleMessage(ctx context.Context, msg telegram.Message) {
	chatID := msg.Chat.ID
	ctx, span := h.tracer.Start(ctx, "bot.message", trace.WithAttributes(attribute.Int64("chat.id", chatID)))
	defer span.End()

	err := h.sessions.WithLock(chatID, func() error {
		h.rememberChat(msg)
		return h.handleCommand(ctx, chatID, parseCommand(msg.Text))
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Printf("bot: message from %d: %v", chatID, err)
	}
}

func (h *Handler) rememberChat(msg telegram.Message) {
	c := store.Chat{ID: msg.Chat.ID, FirstSeen: time.Now()}
	if msg.From != nil {
		c.Username = msg.From.Username
	}
	if err := h.store.SaveChat(c); err != nil {
		log.Printf("bot: store error for %d: %v", msg.Chat.ID, err)
	}
}

func (h *Handler) handleCommand(ctx context.Context, chatID int64, command string) error {
	if command == "cancel" {
		if err := h.store.ClearDialogue(chatID); err != nil {
			return fmt.Errorf("clearing dialogue: %w", err)
		}
		return h.tg.SendText(ctx, chatID, "Cancelled.")
	}

	kind, ok := gallery.Lookup(command)
	if !ok {
		return h.tg.SendText(ctx, chatID, helpText())
	}
	return h.sendForm(ctx, chatID, kind)
}

// sendForm sends a fresh form and makes it the chat's open dialogue.
func (h *Handler) sendForm(ctx context.Context, chatID int64, kind gallery.Kind) error {
	f := kind.New()
	messageID, err := h.tg.SendKeyboard(ctx, chatID, kind.Title, form.Keyboard(f, h.styles))
	if err != nil {
		return fmt.Errorf("sending %s: %w", kind.Name, err)
	}
	return h.saveForm(chatID, kind.Name, messageID, f)
}

func (h *Handler) saveForm(chatID int64, kind string, messageID int64, f gallery.Form) error {
	payload, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", kind, err)
	}
	return h.store.SaveDialogue(chatID, store.Dialogue{Kind: kind, MessageID: messageID, Payload: payload, UpdatedAt: time.Now()})
}

func (h *Handler) HandleCallback(ctx context.Context, cq telegram.CallbackQuery) {
	if cq.Message == nil {
		// Inline-mode messages carry no chat to redraw into.
		if err := h.tg.AnswerCallback(ctx, cq.ID, ""); err != nil {
			log.Printf("bot: answering callback %s: %v", cq.ID, err)
		}
		return
	}

	cb := router.Callback{ID: cq.ID, ChatID: cq.Message.Chat.ID, MessageID: cq.Message.MessageID, Data: cq.Data}
	ctx, span := h.tracer.Start(ctx, "bot.callback", trace.WithAttributes(
		attribute.Int64("chat.id", cb.ChatID),
		attribute.String("callback.data", cb.Data),
	))
	defer span.End()

	err := h.sessions.WithLock(cb.ChatID, func() error {
		out, err := h.handleCallback(ctx, cb)
		span.SetAttributes(attribute.String("callback.outcome", out.String()))
		return err
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Printf("bot: callback %q from %d: %v", cb.Data, cb.ChatID, err)
	}
}

func (h *Handler) handleCallback(ctx context.Context, cb router.Callback) (router.Outcome, error) {
	d, err := h.store.GetDialogue(cb.ChatID)
	if err != nil {
		return router.Ignored, fmt.Errorf("loading dialogue: %w", err)
	}

	kind, known := gallery.Kind{}, false
	if d != nil && d.MessageID == cb.MessageID {
		kind, known = gallery.Lookup(d.Kind)
	}
	if !known {
		return router.Ignored, h.tg.AnswerCallback(ctx, cb.ID, outdatedNotice)
	}

	if err := h.tg.AnswerCallback(ctx, cb.ID, ""); err != nil {
		log.Printf("bot: answering callback %s: %v", cb.ID, err)
	}

	f := kind.New()
	if err := json.Unmarshal(d.Payload, f); err != nil {
		return router.Ignored, fmt.Errorf("decoding %s: %w", kind.Name, err)
	}
	f.Bind(h.tg)

	out, err := form.Handle(ctx, f, cb, form.Deps{
		Editor: h.tg,
		Styles: h.styles,
		Persist: func(context.Context) error {
			return h.saveForm(cb.ChatID, kind.Name, cb.MessageID, f)
		},
	})
	if errors.Is(err, router.ErrNoRoute) {
		log.Printf("bot: %s form ignored unknown token %q", kind.Name, cb.Data)
		return router.Ignored, nil
	}
	return out, err
}

// parseCommand turns "/radio_list@my_bot args" into "radio_list".
func parseCommand(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return ""
	}
	cmd, _, _ := strings.Cut(strings.TrimPrefix(fields[0], "/"), "@")
	return strings.ToLower(cmd)
}

func helpText() string {
	var b strings.Builder
	b.WriteString("Widget gallery. Commands:\n")
	for _, k := range gallery.Kinds() {
		fmt.Fprintf(&b, "/%s\n", k.Name)
	}
	b.WriteString("/cancel")
	return b.String()
}
