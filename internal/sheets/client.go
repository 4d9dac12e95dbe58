// Package sheets adapts the Google Sheets values API to the sales.Ledger
// interface. The sheet is the row-ordered source of truth; all positional
// semantics of the ledger (header at row 0, replace/delete by index) map
// one-to-one onto sheet ranges.
package sheets

import (
	"fmt"

	"resty.dev/v3"

	"sales_bot/internal/sales"
)

const (
	sheetsBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"
	salesRange    = "Sales!A:G"
)

type valueRange struct {
	Range  string     `json:"range,omitempty"`
	Values [][]string `json:"values,omitempty"`
}

// Client talks to one spreadsheet. It implements sales.Ledger; because the
// sheet has no per-id operations, a replace or delete keyed to a stale row
// index can hit the wrong row if the sheet mutated in between. Callers read
// a fresh snapshot immediately before each positional write.
type Client struct {
	http          *resty.Client
	spreadsheetID string
}

var _ sales.Ledger = (*Client)(nil)

// NewClient creates a Sheets client using the given OAuth bearer token.
func NewClient(spreadsheetID, accessToken string) *Client {
	return &Client{
		http:          resty.New().SetBaseURL(sheetsBaseURL).SetAuthToken(accessToken),
		spreadsheetID: spreadsheetID,
	}
}

// Append adds one row after the last row of the sales range.
func (c *Client) Append(row []string) error {
	resp, err := c.http.R().
		SetQueryParam("valueInputOption", "USER_ENTERED").
		SetBody(valueRange{Values: [][]string{row}}).
		Post(fmt.Sprintf("/%s/values/%s:append", c.spreadsheetID, salesRange))
	return checkResp(resp, err, "append")
}

// ReadAll returns every row of the sales range, header first.
func (c *Client) ReadAll() ([][]string, error) {
	var out valueRange
	resp, err := c.http.R().
		SetResult(&out).
		Get(fmt.Sprintf("/%s/values/%s", c.spreadsheetID, salesRange))
	if err := checkResp(resp, err, "read"); err != nil {
		return nil, err
	}
	return out.Values, nil
}

// Replace overwrites the row at rowIndex (0-based; sheet rows are 1-based).
func (c *Client) Replace(rowIndex int, row []string) error {
	rng := fmt.Sprintf("Sales!A%d:G%d", rowIndex+1, rowIndex+1)
	resp, err := c.http.R().
		SetQueryParam("valueInputOption", "USER_ENTERED").
		SetBody(valueRange{Values: [][]string{row}}).
		Put(fmt.Sprintf("/%s/values/%s", c.spreadsheetID, rng))
	return checkResp(resp, err, "replace")
}

// DeleteRow removes the row at rowIndex via a deleteDimension batch update.
func (c *Client) DeleteRow(rowIndex int) error {
	body := map[string]any{
		"requests": []any{
			map[string]any{
				"deleteDimension": map[string]any{
					"range": map[string]any{
						"sheetId":    0,
						"dimension":  "ROWS",
						"startIndex": rowIndex,
						"endIndex":   rowIndex + 1,
					},
				},
			},
		},
	}
	resp, err := c.http.R().
		SetBody(body).
		Post(fmt.Sprintf("/%s:batchUpdate", c.spreadsheetID))
	return checkResp(resp, err, "delete row")
}

func checkResp(resp *resty.Response, err error, op string) error {
	if err != nil {
		return fmt.Errorf("sheets %s: %w", op, err)
	}
	if resp.IsError() {
		return fmt.Errorf("sheets %s: unexpected status %s", op, resp.Status())
	}
	return nil
}
