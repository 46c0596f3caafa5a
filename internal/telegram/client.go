package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/lojasmm/inlinekb/keyboard"
)

const DefaultAPIURL = "https://api.telegram.org"

// APIError is a Bot API reply with ok=false.
type APIError struct {
	Method      string
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram %s: %d %s", e.Method, e.Code, e.Description)
}

type Client struct {
	apiURL string
	token  string
	http   *http.Client
}

func NewClient(apiURL, token string) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &Client{
		apiURL: strings.TrimRight(apiURL, "/"),
		token:  token,
		http:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) SendText(ctx context.Context, chatID int64, text string) error {
	_, err := c.sendMessage(ctx, SendMessageRequest{ChatID: chatID, Text: text})
	return err
}

// SendKeyboard sends text with an inline keyboard and returns the id of the
// new message, which later edits refer to.
func (c *Client) SendKeyboard(ctx context.Context, chatID int64, text string, kb keyboard.Keyboard) (int64, error) {
	msg, err := c.sendMessage(ctx, SendMessageRequest{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: &InlineKeyboardMarkup{InlineKeyboard: kb},
	})
	if err != nil {
		return 0, err
	}
	return msg.MessageID, nil
}

// EditKeyboard replaces the inline keyboard of a sent message. Telegram
// rejects edits that change nothing; those are not reported as errors.
func (c *Client) EditKeyboard(ctx context.Context, chatID, messageID int64, kb keyboard.Keyboard) error {
	err := c.call(ctx, "editMessageReplyMarkup", EditMessageReplyMarkupRequest{
		ChatID:      chatID,
		MessageID:   messageID,
		ReplyMarkup: &InlineKeyboardMarkup{InlineKeyboard: kb},
	}, nil)
	var apiErr *APIError
	if errors.As(err, &apiErr) && strings.Contains(apiErr.Description, "message is not modified") {
		return nil
	}
	return err
}

// AnswerCallback stops the client-side loading indicator of a button.
func (c *Client) AnswerCallback(ctx context.Context, callbackID, text string) error {
	return c.call(ctx, "answerCallbackQuery", AnswerCallbackQueryRequest{CallbackQueryID: callbackID, Text: text}, nil)
}

// SetWebhook registers url as the update endpoint.
// Reference: https://core.telegram.org/bots/api#setwebhook
func (c *Client) SetWebhook(ctx context.Context, url, secret string) error {
	return c.call(ctx, "setWebhook", SetWebhookRequest{
		URL:            url,
		SecretToken:    secret,
		AllowedUpdates: []string{"message", "callback_query"},
	}, nil)
}

func (c *Client) sendMessage(ctx context.Context, req SendMessageRequest) (*Message, error) {
	var msg Message
	if err := c.call(ctx, "sendMessage", req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *Client) call(ctx context.Context, method string, body, result any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", method, err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.apiURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", method, err)
	}
	defer resp.Body.Close()

	var envelope apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decoding %s response (status %d): %w", method, resp.StatusCode, err)
	}
	if !envelope.OK {
		return &APIError{Method: method, Code: envelope.ErrorCode, Description: envelope.Description}
	}
	if result != nil && len(envelope.Result) > 0 {
		if err := json.Unmarshal(envelope.Result, result); err != nil {
			return fmt.Errorf("decoding %s result: %w", method, err)
		}
	}
	return nil
}
