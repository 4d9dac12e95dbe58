// Package whatsapp sends outbound text messages through the Meta Graph API.
package whatsapp

import (
	"context"
	"fmt"

	"resty.dev/v3"
)

const graphBaseURL = "https://graph.facebook.com/v22.0"

// Client posts text messages to a WhatsApp Business phone number.
type Client struct {
	http          *resty.Client
	phoneNumberID string
}

// NewClient creates a Graph API client authenticated with the given token.
func NewClient(token, phoneNumberID string) *Client {
	return &Client{
		http:          resty.New().SetBaseURL(graphBaseURL).SetAuthToken(token),
		phoneNumberID: phoneNumberID,
	}
}

// SendText delivers a plain text message to the given recipient number.
func (c *Client) SendText(ctx context.Context, to, body string) error {
	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
		"text":              map[string]string{"body": body},
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post(fmt.Sprintf("/%s/messages", c.phoneNumberID))
	if err != nil {
		return fmt.Errorf("send whatsapp message: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("send whatsapp message: unexpected status %s", resp.Status())
	}
	return nil
}
