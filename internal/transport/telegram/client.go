// Package telegram adapts the chat platform to the bot engine: an HTTP
// client for outbound rendering and a long-poll loop feeding inbound
// updates into the engine's entry points.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"artfeed/internal/bot"
)

const defaultAPIBase = "https://api.telegram.org"

// Client talks to the Bot API over HTTPS+JSON. It implements bot.Transport.
type Client struct {
	httpc *http.Client
	base  string
}

// NewClient constructs a client for the given bot token. baseURL overrides
// the API host for tests; pass "" for the real one. pollTimeout is the
// long-poll window; the HTTP timeout sits above it so a quiet getUpdates
// is not cut short.
func NewClient(token, baseURL string, pollTimeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultAPIBase
	}
	return &Client{
		httpc: &http.Client{Timeout: pollTimeout + 10*time.Second},
		base:  fmt.Sprintf("%s/bot%s", baseURL, token),
	}
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	Description string          `json:"description"`
}

// call POSTs a method with a JSON payload and decodes result into out
// (which may be nil when the result is irrelevant).
func (c *Client) call(ctx context.Context, method string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/"+method, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	defer resp.Body.Close()

	var ar apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
		return fmt.Errorf("telegram %s: decode: %w", method, err)
	}
	if !ar.OK {
		return fmt.Errorf("telegram %s: %s", method, ar.Description)
	}
	if out != nil {
		return json.Unmarshal(ar.Result, out)
	}
	return nil
}

func markup(kb bot.Keyboard) *inlineKeyboard {
	if len(kb) == 0 {
		return nil
	}
	ik := &inlineKeyboard{Buttons: make([][]inlineButton, 0, len(kb))}
	for _, row := range kb {
		r := make([]inlineButton, 0, len(row))
		for _, b := range row {
			r = append(r, inlineButton{Text: b.Label, CallbackData: b.Tag})
		}
		ik.Buttons = append(ik.Buttons, r)
	}
	return ik
}

// SendText implements bot.Transport.
func (c *Client) SendText(ctx context.Context, chatID int64, text string, kb bot.Keyboard) error {
	return c.call(ctx, "sendMessage", struct {
		ChatID      int64           `json:"chat_id"`
		Text        string          `json:"text"`
		ReplyMarkup *inlineKeyboard `json:"reply_markup,omitempty"`
	}{chatID, text, markup(kb)}, nil)
}

// SendPhoto implements bot.Transport; fileID is a platform storage token.
func (c *Client) SendPhoto(ctx context.Context, chatID int64, fileID, caption string, kb bot.Keyboard) error {
	return c.call(ctx, "sendPhoto", struct {
		ChatID      int64           `json:"chat_id"`
		Photo       string          `json:"photo"`
		Caption     string          `json:"caption,omitempty"`
		ReplyMarkup *inlineKeyboard `json:"reply_markup,omitempty"`
	}{chatID, fileID, caption, markup(kb)}, nil)
}

// EditText implements bot.Transport.
func (c *Client) EditText(ctx context.Context, chatID int64, messageID int, text string, kb bot.Keyboard) error {
	return c.call(ctx, "editMessageText", struct {
		ChatID      int64           `json:"chat_id"`
		MessageID   int             `json:"message_id"`
		Text        string          `json:"text"`
		ReplyMarkup *inlineKeyboard `json:"reply_markup,omitempty"`
	}{chatID, messageID, text, markup(kb)}, nil)
}

// Delete implements bot.Transport.
func (c *Client) Delete(ctx context.Context, chatID int64, messageID int) error {
	return c.call(ctx, "deleteMessage", struct {
		ChatID    int64 `json:"chat_id"`
		MessageID int   `json:"message_id"`
	}{chatID, messageID}, nil)
}

// Toast implements bot.Transport.
func (c *Client) Toast(ctx context.Context, callbackID, text string, alert bool) error {
	return c.call(ctx, "answerCallbackQuery", struct {
		CallbackQueryID string `json:"callback_query_id"`
		Text            string `json:"text,omitempty"`
		ShowAlert       bool   `json:"show_alert,omitempty"`
	}{callbackID, text, alert}, nil)
}

// GetUpdates long-polls for inbound updates past offset.
func (c *Client) GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]Update, error) {
	var out []Update
	err := c.call(ctx, "getUpdates", struct {
		Offset  int64 `json:"offset"`
		Timeout int   `json:"timeout"`
	}{offset, int(timeout / time.Second)}, &out)
	return out, err
}
