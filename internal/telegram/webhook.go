package telegram

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"log"
	"net/http"
)

// SecretHeader carries the secret_token given to setWebhook.
const SecretHeader = "X-Telegram-Bot-Api-Secret-Token"

// MessageHandler is called for each incoming text message.
type MessageHandler func(ctx context.Context, msg Message)

// CallbackHandler is called for each inline keyboard button press.
type CallbackHandler func(ctx context.Context, cq CallbackQuery)

type WebhookHandler struct {
	secret     string
	onMessage  MessageHandler
	onCallback CallbackHandler
}

func NewWebhookHandler(secret string, onMessage MessageHandler, onCallback CallbackHandler) *WebhookHandler {
	return &WebhookHandler{
		secret:     secret,
		onMessage:  onMessage,
		onCallback: onCallback,
	}
}

// HandleIncoming processes a webhook POST from Telegram.
// Reference: https://core.telegram.org/bots/api#setwebhook
func (h *WebhookHandler) HandleIncoming(w http.ResponseWriter, r *http.Request) {
	if h.secret != "" && subtle.ConstantTimeCompare([]byte(r.Header.Get(SecretHeader)), []byte(h.secret)) != 1 {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var update Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Printf("webhook: failed to decode update: %v", err)
		// Telegram redelivers on non-2xx.
		w.WriteHeader(http.StatusOK)
		return
	}

	switch {
	case update.CallbackQuery != nil:
		if h.onCallback != nil {
			h.onCallback(r.Context(), *update.CallbackQuery)
		}
	case update.Message != nil && update.Message.Text != "":
		if h.onMessage != nil {
			h.onMessage(r.Context(), *update.Message)
		}
	}

	w.WriteHeader(http.StatusOK)
}
