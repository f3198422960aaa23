package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// chatRequest is the payload for assistant messages.
type chatRequest struct {
	Text string `json:"text"`
}

// SendToThread forwards free text to the conversational assistant under the
// given thread id and returns the ordered reply strings.
func (c *Client) SendToThread(ctx context.Context, text, threadID string) ([]string, error) {
	var replies []string
	path := "/chat/" + url.PathEscape(threadID)
	if err := c.do(ctx, http.MethodPost, path, chatRequest{Text: text}, &replies); err != nil {
		return nil, fmt.Errorf("send to thread: %w", err)
	}
	return replies, nil
}
