// Package ai answers free-form messages through an OpenRouter-hosted model.
package ai

import (
	"context"
	"errors"
	"fmt"

	"resty.dev/v3"
)

const (
	openRouterBaseURL = "https://openrouter.ai/api/v1"
	defaultModel      = "gpt-4o-mini"
)

const systemPrompt = `You are a sales assistant AI for Khusmee Fashion. Your name is "Khusmee Fashion AI".

Your responsibilities:
1. Respond politely and professionally to customer questions.
2. Track and report sales information.
3. Explain the bot commands when asked:
   #sale (PRODUCT_NAME) UNIT_PRICE QUANTITY AMOUNT_RECEIVED — record a new sale.
   #update_sale SALE_ID (PRODUCT_NAME) UNIT_PRICE QUANTITY AMOUNT_RECEIVED — update a sale.
   #remove_sale SALE_ID — remove a sale.
   #total_sale — totals for the current seller.
   #total_sales_report — totals grouped by seller, with a subtotal.
   #get SALE_ID — retrieve one sale.

Rules:
- Do not invent sales or numbers.
- Respond in a professional, friendly, and concise manner.
- If the user sends text not recognized as a command, reply naturally as a sales assistant.`

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Client asks the chat-completions API for a free-form reply.
type Client struct {
	http  *resty.Client
	model string
}

// NewClient creates an OpenRouter client with the default model.
func NewClient(apiKey string) *Client {
	return &Client{
		http:  resty.New().SetBaseURL(openRouterBaseURL).SetAuthToken(apiKey),
		model: defaultModel,
	}
}

// Ask returns the model's reply to the given prompt.
func (c *Client) Ask(ctx context.Context, prompt string) (string, error) {
	req := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
	}
	var out chatResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("ask ai: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("ask ai: unexpected status %s", resp.Status())
	}
	if len(out.Choices) == 0 {
		return "", errors.New("ask ai: empty completion")
	}
	return out.Choices[0].Message.Content, nil
}
