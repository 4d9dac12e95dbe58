package sales

import "strings"

// TotalForSender sums totalPrice, due and quantity across the rows whose
// sender cell exactly matches senderID. Malformed numeric cells contribute
// zero; a malformed row never fails the aggregation.
func TotalForSender(rows [][]string, senderID string) Totals {
	var t Totals
	for _, row := range rows {
		if cell(row, 5) != senderID {
			continue
		}
		t.TotalPrice += ParseAmount(cell(row, 2)).OrZero()
		t.TotalDue += ParseAmount(cell(row, 3)).OrZero()
		t.TotalItems += ParseAmount(cell(row, 4)).OrZero()
	}
	return t
}

// GroupedReport computes per-sender totals plus a grand total over the whole
// snapshot. The header row is excluded, as is any row whose trimmed sender
// cell is empty. Groups keep the first-seen order of distinct senders so the
// rendered report is stable across runs.
func GroupedReport(rows [][]string) ([]SenderTotals, Totals) {
	if len(rows) > 0 {
		rows = rows[1:]
	}

	groups := make([]SenderTotals, 0)
	index := make(map[string]int)
	var grand Totals

	for _, row := range rows {
		sender := strings.TrimSpace(cell(row, 5))
		if sender == "" {
			continue
		}
		i, ok := index[sender]
		if !ok {
			i = len(groups)
			index[sender] = i
			groups = append(groups, SenderTotals{SenderID: sender})
		}

		price := ParseAmount(cell(row, 2)).OrZero()
		due := ParseAmount(cell(row, 3)).OrZero()
		quantity := ParseAmount(cell(row, 4)).OrZero()

		groups[i].TotalPrice += price
		groups[i].TotalDue += due
		groups[i].TotalItems += quantity

		grand.TotalPrice += price
		grand.TotalDue += due
		grand.TotalItems += quantity
	}

	return groups, grand
}

// cell reads a row column, tolerating short rows.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}
