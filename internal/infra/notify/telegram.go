package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const telegramAPIBase = "https://api.telegram.org"

// Telegram posts messages to the operator's chat via the Bot API. Chat ids
// are keyed by the property's channel key; a "default" entry catches
// everything without its own channel.
type Telegram struct {
	Token   string
	ChatIDs map[string]string
	HTTP    *http.Client
	BaseURL string // overridden in tests
}

type telegramPayload struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type telegramResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SendMessage delivers text to the channel behind channelKey.
func (t *Telegram) SendMessage(ctx context.Context, channelKey, text string) error {
	chatID, ok := t.ChatIDs[channelKey]
	if !ok {
		chatID, ok = t.ChatIDs["default"]
	}
	if !ok || chatID == "" {
		return fmt.Errorf("telegram: no chat id for channel %q", channelKey)
	}

	payload, err := json.Marshal(telegramPayload{ChatID: chatID, Text: text, ParseMode: "HTML"})
	if err != nil {
		return err
	}

	base := t.BaseURL
	if base == "" {
		base = telegramAPIBase
	}
	url := fmt.Sprintf("%s/bot%s/sendMessage", base, t.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var body telegramResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("telegram: decode response: %w", err)
	}
	if !body.OK {
		return fmt.Errorf("telegram: send failed: %s", body.Description)
	}
	return nil
}

func (t *Telegram) client() *http.Client {
	if t.HTTP != nil {
		return t.HTTP
	}
	return http.DefaultClient
}
