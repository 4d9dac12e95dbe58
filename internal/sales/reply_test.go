package sales

import (
	"strings"
	"testing"
)

func TestConfirmationReply_CarriesAllFields(t *testing.T) {
	rec := &SaleRecord{
		ID:         "123456",
		Product:    "Jam Jam 3 Pcs",
		TotalPrice: NewAmount(1050),
		Due:        NewAmount(0),
	}
	// The template pick is random; only the shared fields are asserted.
	for i := 0; i < 20; i++ {
		reply := confirmationReply(rec)
		for _, field := range []string{"123456", "Jam Jam 3 Pcs", "1050", "0 BDT"} {
			if !strings.Contains(reply, field) {
				t.Fatalf("confirmation %q is missing %q", reply, field)
			}
		}
	}
}

func TestSaleInfoReply(t *testing.T) {
	row := []string{"123456", "Jam", "1050", "0", "1", "+8800001", "Mon, Sep 1, 2025 2:30 PM"}
	got := saleInfoReply(row)
	want := "Sale Info:\nSale ID: 123456\nProduct Name: Jam\nPrice: 1050\nDue: 0\nQuantity: 1\nSellerNumber: +8800001\nSale Date: Mon, Sep 1, 2025 2:30 PM"
	if got != want {
		t.Errorf("unexpected sale info reply:\n%s", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short"); got != "short" {
		t.Errorf("expected short replies untouched, got %q", got)
	}
	long := strings.Repeat("৳", maxReplyLen+100)
	got := Truncate(long)
	if n := len([]rune(got)); n != maxReplyLen {
		t.Errorf("expected %d runes after truncation, got %d", maxReplyLen, n)
	}
}

func TestFormatNumber(t *testing.T) {
	if got := formatNumber(1100); got != "1100" {
		t.Errorf("expected whole numbers without decimals, got %q", got)
	}
	if got := formatNumber(10.5); got != "10.5" {
		t.Errorf("expected fractions kept, got %q", got)
	}
}
