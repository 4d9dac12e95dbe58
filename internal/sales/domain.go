package sales

import "strconv"

// Amount is a numeric value parsed from a command token or a ledger cell.
// Tokens that do not parse as numbers stay representable instead of failing:
// arithmetic on an invalid Amount yields an invalid Amount and it renders as
// "NaN", so a malformed command still produces a reply.
type Amount struct {
	value float64
	valid bool
}

// NewAmount wraps a known-good number.
func NewAmount(v float64) Amount {
	return Amount{value: v, valid: true}
}

// ParseAmount coerces a token to an Amount. Empty or non-numeric tokens
// produce an invalid Amount, never an error.
func ParseAmount(token string) Amount {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return Amount{}
	}
	return Amount{value: v, valid: true}
}

// Valid reports whether the Amount carries a real number.
func (a Amount) Valid() bool { return a.valid }

func (a Amount) Mul(b Amount) Amount {
	if !a.valid || !b.valid {
		return Amount{}
	}
	return Amount{value: a.value * b.value, valid: true}
}

func (a Amount) Sub(b Amount) Amount {
	if !a.valid || !b.valid {
		return Amount{}
	}
	return Amount{value: a.value - b.value, valid: true}
}

// OrZero returns the numeric value, counting invalid amounts as zero.
// Aggregation uses this so malformed ledger cells never break a report.
func (a Amount) OrZero() float64 {
	if !a.valid {
		return 0
	}
	return a.value
}

func (a Amount) String() string {
	if !a.valid {
		return "NaN"
	}
	return strconv.FormatFloat(a.value, 'f', -1, 64)
}

// SaleRecord represents one recorded sale in the ledger.
type SaleRecord struct {
	ID             string
	Product        string
	UnitPrice      Amount
	Quantity       Amount
	AmountReceived Amount
	TotalPrice     Amount
	Due            Amount
	SenderID       string
	CreatedAt      string
}

// Row renders the record as the 7-cell ledger row:
// id, product, totalPrice, due, quantity, senderId, timestamp.
func (r *SaleRecord) Row() []string {
	return []string{
		r.ID,
		r.Product,
		r.TotalPrice.String(),
		r.Due.String(),
		r.Quantity.String(),
		r.SenderID,
		r.CreatedAt,
	}
}

// Totals accumulates sale figures for one sender or for the whole ledger.
type Totals struct {
	TotalPrice float64
	TotalDue   float64
	TotalItems float64
}

// SenderTotals pairs a sender identifier with its totals in the grouped report.
type SenderTotals struct {
	SenderID string
	Totals
}
