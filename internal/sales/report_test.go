package sales

import "testing"

func reportRows() [][]string {
	return [][]string{
		{"Sale ID", "Product", "Price", "Due", "Quantity", "SellerNumber", "Timestamp"},
		{"1", "Jam", "1050", "0", "1", "+8800001", "Mon, Sep 1, 2025 1:00 PM"},
		{"2", "Soap", "50", "10", "2", "+8800002", "Mon, Sep 1, 2025 2:00 PM"},
	}
}

func TestGroupedReport_GrandTotal(t *testing.T) {
	groups, grand := GroupedReport(reportRows())

	if len(groups) != 2 {
		t.Fatalf("expected 2 sender groups, got %d", len(groups))
	}
	if grand.TotalPrice != 1100 || grand.TotalDue != 10 || grand.TotalItems != 3 {
		t.Errorf("unexpected grand total: %+v", grand)
	}

	var sum Totals
	for _, g := range groups {
		sum.TotalPrice += g.TotalPrice
		sum.TotalDue += g.TotalDue
		sum.TotalItems += g.TotalItems
	}
	if sum != grand {
		t.Errorf("grand total %+v does not equal sum of groups %+v", grand, sum)
	}
}

func TestGroupedReport_FirstSeenOrder(t *testing.T) {
	rows := [][]string{
		{"Sale ID", "Product", "Price", "Due", "Quantity", "SellerNumber", "Timestamp"},
		{"1", "A", "10", "0", "1", "+zz", ""},
		{"2", "B", "20", "0", "1", "+aa", ""},
		{"3", "C", "30", "0", "1", "+zz", ""},
	}
	groups, _ := GroupedReport(rows)
	if len(groups) != 2 || groups[0].SenderID != "+zz" || groups[1].SenderID != "+aa" {
		t.Errorf("expected first-seen order [+zz +aa], got %+v", groups)
	}
	if groups[0].TotalPrice != 40 {
		t.Errorf("expected +zz total price 40, got %v", groups[0].TotalPrice)
	}
}

func TestGroupedReport_SkipsAndNormalizes(t *testing.T) {
	rows := [][]string{
		{"Sale ID", "Product", "Price", "Due", "Quantity", "SellerNumber", "Timestamp"},
		{"1", "A", "10", "0", "1", "  ", ""},
		{"2", "B", "abc", "xyz", "oops", " +88 ", ""},
		{"3", "C", "5", "1", "1", "+88", ""},
	}
	groups, grand := GroupedReport(rows)
	if len(groups) != 1 {
		t.Fatalf("expected empty sender skipped and whitespace sender merged, got %+v", groups)
	}
	if groups[0].SenderID != "+88" {
		t.Errorf("expected trimmed sender +88, got %q", groups[0].SenderID)
	}
	// Malformed cells contribute zero, never fail the report.
	if grand.TotalPrice != 5 || grand.TotalDue != 1 || grand.TotalItems != 1 {
		t.Errorf("unexpected grand total with malformed row: %+v", grand)
	}
}

func TestTotalForSender(t *testing.T) {
	rows := append(reportRows(), []string{"3", "Tea", "200", "50", "4", "+8800001", ""})

	got := TotalForSender(rows, "+8800001")
	if got.TotalPrice != 1250 || got.TotalDue != 50 || got.TotalItems != 5 {
		t.Errorf("unexpected totals for +8800001: %+v", got)
	}
	if got := TotalForSender(rows, "+nobody"); got != (Totals{}) {
		t.Errorf("expected zero totals for unknown sender, got %+v", got)
	}
}
