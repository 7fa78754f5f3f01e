package telegram

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"artfeed/internal/bot"
)

// Poller long-polls getUpdates and feeds each update into the engine.
// Updates are dispatched on their own goroutines; the engine's per-user
// session locks provide the required serialization, so a slow user never
// stalls the poll loop or other users.
type Poller struct {
	client  *Client
	engine  *bot.Engine
	timeout time.Duration
	log     *zap.Logger
}

// NewPoller constructs a poller over a client and an engine.
func NewPoller(client *Client, engine *bot.Engine, timeout time.Duration, log *zap.Logger) *Poller {
	return &Poller{client: client, engine: engine, timeout: timeout, log: log}
}

// Run polls until ctx is canceled. Transient fetch errors back off briefly
// instead of terminating the loop.
func (p *Poller) Run(ctx context.Context) error {
	var offset int64
	for {
		updates, err := p.client.GetUpdates(ctx, offset, p.timeout)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.log.Warn("getUpdates failed", zap.Error(err))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Second):
			}
			continue
		}
		for _, u := range updates {
			if u.ID >= offset {
				offset = u.ID + 1
			}
			go p.dispatch(ctx, u)
		}
	}
}

// dispatch classifies one update into the engine's four entry points.
func (p *Poller) dispatch(ctx context.Context, u Update) {
	var err error
	switch {
	case u.CallbackQuery != nil:
		cq := u.CallbackQuery
		if cq.Message == nil {
			return
		}
		ev := bot.Event{
			UserID:      cq.From.ID,
			ChatID:      cq.Message.Chat.ID,
			DisplayName: displayName(&cq.From),
			MessageID:   cq.Message.ID,
			CallbackID:  cq.ID,
		}
		err = p.engine.OnButton(ctx, cq.Data, ev)

	case u.Message != nil && u.Message.From != nil:
		m := u.Message
		ev := bot.Event{
			UserID:      m.From.ID,
			ChatID:      m.Chat.ID,
			DisplayName: displayName(m.From),
		}
		switch {
		case len(m.Photo) > 0:
			// Largest rendition is listed last.
			err = p.engine.OnMedia(ctx, m.Photo[len(m.Photo)-1].FileID, m.Caption, ev)
		case strings.HasPrefix(m.Text, "/"):
			err = p.engine.OnCommand(ctx, commandName(m.Text), ev)
		case m.Text != "":
			err = p.engine.OnText(ctx, m.Text, ev)
		}
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		p.log.Error("update handling failed", zap.Int64("update", u.ID), zap.Error(err))
	}
}

// commandName extracts "start" from "/start", "/start@somebot" or
// "/start args".
func commandName(text string) string {
	name := strings.TrimPrefix(text, "/")
	if i := strings.IndexAny(name, " @"); i >= 0 {
		name = name[:i]
	}
	return name
}

func displayName(u *User) string {
	if u.Username != "" {
		return u.Username
	}
	return u.FirstName
}
