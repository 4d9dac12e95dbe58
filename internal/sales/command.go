package sales

import (
	"regexp"
	"strings"
)

// Command is one parsed chat command. Parse returns exactly one of the
// concrete types below.
type Command interface{ isCommand() }

// CreateSale records a new sale: #sale (PRODUCT) unitPrice quantity received.
type CreateSale struct {
	Product        string
	UnitPrice      Amount
	Quantity       Amount
	AmountReceived Amount
}

// UpdateSale replaces an existing sale by ID:
// #update_sale ID (PRODUCT) unitPrice quantity received.
type UpdateSale struct {
	ID             string
	Product        string
	UnitPrice      Amount
	Quantity       Amount
	AmountReceived Amount
}

// RemoveSale deletes a sale by ID.
type RemoveSale struct{ ID string }

// GetSale looks up a single sale by ID.
type GetSale struct{ ID string }

// TotalSale asks for the requesting sender's totals.
type TotalSale struct{}

// TotalSalesReport asks for the cross-sender report.
type TotalSalesReport struct{}

// Unrecognized carries text that matched no command, for the AI fallback.
type Unrecognized struct{ RawText string }

func (CreateSale) isCommand()       {}
func (UpdateSale) isCommand()       {}
func (RemoveSale) isCommand()       {}
func (GetSale) isCommand()          {}
func (TotalSale) isCommand()        {}
func (TotalSalesReport) isCommand() {}
func (Unrecognized) isCommand()     {}

var (
	commandRe = regexp.MustCompile(`^#\w+`)
	productRe = regexp.MustCompile(`\(([^)]+)\)`)
)

// Parse turns raw message text into a typed command. Parsing is lenient:
// missing or non-numeric argument tokens become invalid Amounts rather than
// errors, and anything without a leading #command token is Unrecognized.
func Parse(text string) Command {
	token := commandRe.FindString(strings.TrimSpace(text))
	if token == "" {
		return Unrecognized{RawText: text}
	}

	switch token {
	case "#sale":
		return parseCreate(text, token)
	case "#update_sale":
		return parseUpdate(text, token)
	case "#remove_sale":
		return RemoveSale{ID: firstArg(text)}
	case "#get":
		return GetSale{ID: firstArg(text)}
	case "#total_sale":
		return TotalSale{}
	case "#total_sales_report":
		return TotalSalesReport{}
	default:
		return Unrecognized{RawText: text}
	}
}

func parseCreate(text, token string) CreateSale {
	pm := productRe.FindStringSubmatch(text)
	if pm == nil {
		// No parenthesized product: keep the lenient pass-through, the sale
		// is still recorded with an empty product and NaN figures.
		return CreateSale{}
	}

	remaining := strings.Replace(text, token, "", 1)
	remaining = strings.Replace(remaining, pm[0], "", 1)
	toks := strings.Fields(remaining)

	return CreateSale{
		Product:        strings.TrimSpace(pm[1]),
		UnitPrice:      amountAt(toks, 0),
		Quantity:       amountAt(toks, 1),
		AmountReceived: amountAt(toks, 2),
	}
}

func parseUpdate(text, token string) UpdateSale {
	pm := productRe.FindStringSubmatch(text)
	if pm == nil {
		return UpdateSale{}
	}

	// The second whitespace token is the sale ID, whatever its shape.
	id := ""
	if fields := strings.Fields(strings.TrimSpace(text)); len(fields) > 1 {
		id = fields[1]
	}

	// Only the first textual occurrence of the ID is stripped; if the same
	// string reoccurs later (inside the product name) it stays put.
	remaining := strings.Replace(text, token, "", 1)
	remaining = strings.Replace(remaining, id, "", 1)
	remaining = strings.Replace(remaining, pm[0], "", 1)
	toks := strings.Fields(remaining)

	return UpdateSale{
		ID:             id,
		Product:        strings.TrimSpace(pm[1]),
		UnitPrice:      amountAt(toks, 0),
		Quantity:       amountAt(toks, 1),
		AmountReceived: amountAt(toks, 2),
	}
}

// firstArg returns the first whitespace token after the command, or "".
func firstArg(text string) string {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}

func amountAt(toks []string, i int) Amount {
	if i >= len(toks) {
		return Amount{}
	}
	return ParseAmount(toks[i])
}
