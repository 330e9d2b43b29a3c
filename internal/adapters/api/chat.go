package api

import (
	"context"

	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/domain"
)

type chatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Message string     `json:"message"`
	History []chatTurn `json:"history"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Chat sends one user message together with the prior transcript and returns
// the assistant's reply.
func (c *Client) Chat(ctx context.Context, message string, history []domain.Message) (string, error) {
	turns := make([]chatTurn, 0, len(history))
	for _, m := range history {
		turns = append(turns, chatTurn{Role: string(m.Role), Content: m.Content})
	}

	var resp chatResponse
	if err := c.postJSON(ctx, "/api/v1/chat", chatRequest{Message: message, History: turns}, &resp, "chat"); err != nil {
		return "", err
	}
	return resp.Reply, nil
}
