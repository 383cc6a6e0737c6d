package post

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const telegramAPI = "https://api.telegram.org"

// Telegram is a minimal Bot API client; sending a message and listing the
// chats the bot can see is all the notifier needs.
type Telegram struct {
	token  string
	base   string
	client *http.Client
}

func NewTelegram(token string) *Telegram {
	return &Telegram{
		token:  token,
		base:   telegramAPI,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// ToTelegram wraps the client into the poster boundary. The target is the
// group chat identifier.
func ToTelegram(tg *Telegram) PosterFn {
	if tg == nil || tg.token == "" {
		return ToStdout
	}
	return func(target, text string) error {
		if err := tg.SendMessage(context.Background(), target, text); err != nil {
			return SendError{Target: target, Err: err}
		}
		return nil
	}
}

// SendMessage posts a Markdown message to a chat.
func (t *Telegram) SendMessage(ctx context.Context, chatID, text string) error {
	if t.token == "" || chatID == "" {
		return fmt.Errorf("telegram client misconfigured")
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", t.base, t.token)
	form := url.Values{}
	form.Set("chat_id", chatID)
	form.Set("text", text)
	form.Set("parse_mode", "Markdown")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram error: %s", resp.Status)
	}
	return nil
}

// Chat is one group chat the bot has seen recently.
type Chat struct {
	ID    int64
	Title string
	Type  string
}

type updatesResponse struct {
	OK     bool `json:"ok"`
	Result []struct {
		Message struct {
			Chat struct {
				ID    int64  `json:"id"`
				Title string `json:"title"`
				Type  string `json:"type"`
			} `json:"chat"`
		} `json:"message"`
	} `json:"result"`
}

// ListChats returns the distinct group chats found in the bot's pending
// updates so an operator can pick the target identifier.
func (t *Telegram) ListChats(ctx context.Context) ([]Chat, error) {
	if t.token == "" {
		return nil, fmt.Errorf("telegram client misconfigured")
	}

	endpoint := fmt.Sprintf("%s/bot%s/getUpdates", t.base, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("telegram error: %s", resp.Status)
	}

	updates := updatesResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&updates); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	seen := make(map[int64]struct{})
	chats := make([]Chat, 0)
	for _, u := range updates.Result {
		c := u.Message.Chat
		if c.Type != "group" && c.Type != "supergroup" {
			continue
		}
		if _, ok := seen[c.ID]; ok {
			continue
		}
		seen[c.ID] = struct{}{}
		chats = append(chats, Chat{ID: c.ID, Title: c.Title, Type: c.Type})
	}
	return chats, nil
}
