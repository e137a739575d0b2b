package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const apiBase = "https://api.telegram.org"

// Client talks to the Telegram Bot API for a single bot token.
type Client struct {
	token      string
	httpClient *http.Client
}

// NewClient creates a Telegram client for the given bot token.
func NewClient(token string) *Client {
	return &Client{
		token: token,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description"`
	Result      json.RawMessage `json:"result"`
}

// BotInfo is the subset of getMe we care about.
type BotInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsBot    bool   `json:"is_bot"`
}

// GetMe verifies that the bot token is valid and returns the bot identity.
func (c *Client) GetMe(ctx context.Context) (*BotInfo, error) {
	url := fmt.Sprintf("%s/bot%s/getMe", apiBase, c.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("telegram request failed: %v", err)
	}
	defer resp.Body.Close()

	var api apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&api); err != nil {
		return nil, fmt.Errorf("failed to decode telegram response: %v", err)
	}
	if !api.OK {
		return nil, fmt.Errorf("telegram rejected token: %s", api.Description)
	}

	var info BotInfo
	if err := json.Unmarshal(api.Result, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SendMessage delivers a text message to a chat. Telegram HTML parse mode is
// used so callers can bold labels in notification bodies.
func (c *Client) SendMessage(ctx context.Context, chatID, text string) error {
	url := fmt.Sprintf("%s/bot%s/sendMessage", apiBase, c.token)

	payload, err := json.Marshal(map[string]string{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "HTML",
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request failed: %v", err)
	}
	defer resp.Body.Close()

	var api apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&api); err != nil {
		return fmt.Errorf("failed to decode telegram response: %v", err)
	}
	if !api.OK {
		return fmt.Errorf("telegram send failed: %s", api.Description)
	}
	return nil
}
