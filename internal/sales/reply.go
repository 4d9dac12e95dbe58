package sales

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// maxReplyLen caps outbound replies before they reach the messaging channel.
const maxReplyLen = 4000

const (
	reportFailureReply = "❌ Failed to generate sales report."
	storeFailureReply  = "❌ Something went wrong while saving your request. Please try again."
	missingSaleIDReply = "❌ Please provide a Sale ID. Example: #get 12345678"
)

// confirmationPool holds the creation confirmations. Every template carries
// the same four fields in the same order: saleId, product, price, due.
var confirmationPool = []string{
	"Victory unlocked! 🥳 Sale ID %s for %s is saved. Total: %s BDT, Due: %s BDT. Keep building your sales streak!",
	"Target hit! 🎯 Sale ID %s for %s is locked in. Total: %s BDT, Due: %s BDT. Keep smashing those goals!",
	"Star seller move! ✨ Sale ID %s for %s is now saved. Price: %s BDT, Due: %s BDT. Shine on!",
	"Cha-ching! 💰 Sale ID %s for %s recorded. Total sale: %s BDT, Pending: %s BDT. Keep the momentum going!",
	"High five! 🙌 Sale ID %s for %s is saved. Price: %s BDT, Due: %s BDT. You're on a roll!",
	"Boom! 💥 Sale ID %s for %s is in the books. Total: %s BDT, Due: %s BDT. Keep the energy up!",
	"Way to go! 🚀 Sale ID %s for %s is saved. Total price: %s BDT, Due: %s BDT. Sky's the limit!",
	"Nailed it! 🔨 Sale ID %s for %s recorded. Price: %s BDT, Due: %s BDT. Keep building that success!",
	"Kudos! 👏 Sale ID %s for %s is saved. Total: %s BDT, Due: %s BDT. Keep up the fantastic work!",
	"On fire! 🔥 Sale ID %s for %s locked in. Total sale: %s BDT, Due: %s BDT. Keep blazing that trail!",
	"Great job! ✅ Sale ID %s for %s is now saved. Total: %s BDT, Pending: %s BDT.",
	"Congratulations! 🎉 Your sale has been recorded. Sale ID: %s for %s. Total: %s BDT, Due: %s BDT.",
	"Well done! 🏆 Sale ID %s for %s is saved. Price: %s BDT, Due: %s BDT. Add more wins to your sales history!",
	"Fantastic! 🌟 Sale ID %s for %s successfully saved. Total: %s BDT, Due: %s BDT.",
	"Success! 🎯 Sale ID %s for %s is now in the records. Price: %s BDT, Due: %s BDT. Keep it up!",
	"You just made a sale! 🛍️ Sale ID %s for %s saved. Total: %s BDT, Due: %s BDT. Keep rocking your sales!",
}

// confirmationReply picks one confirmation template pseudo-randomly. The
// pick only affects wording, never the recorded data.
func confirmationReply(rec *SaleRecord) string {
	tmpl := confirmationPool[rand.Intn(len(confirmationPool))]
	return fmt.Sprintf(tmpl, rec.ID, rec.Product, rec.TotalPrice, rec.Due)
}

func updatedReply(cmd UpdateSale, price, due Amount) string {
	return fmt.Sprintf("Sale %s updated for %s. Price: %s BDT, Due: %s BDT.", cmd.ID, cmd.Product, price, due)
}

func notFoundReply(id string) string {
	return fmt.Sprintf("Sale %s not found.", id)
}

func removedReply(id string) string {
	return fmt.Sprintf("Sale %s removed.", id)
}

func getNotFoundReply(id string) string {
	return fmt.Sprintf("❌ Sale with ID %s not found.", id)
}

func totalsReply(t Totals) string {
	return fmt.Sprintf("Total Sale: %s\nTotal Due: %s\nTotal Items: %s",
		formatNumber(t.TotalPrice), formatNumber(t.TotalDue), formatNumber(t.TotalItems))
}

func groupedReportReply(groups []SenderTotals, grand Totals) string {
	var b strings.Builder
	for _, g := range groups {
		fmt.Fprintf(&b, "SellerNumber: %s\n", g.SenderID)
		fmt.Fprintf(&b, "Total Sale: %s\n", formatNumber(g.TotalPrice))
		fmt.Fprintf(&b, "Total Due: %s\n", formatNumber(g.TotalDue))
		fmt.Fprintf(&b, "Total Items: %s\n\n", formatNumber(g.TotalItems))
	}
	fmt.Fprintf(&b, "Sub Total:\n")
	fmt.Fprintf(&b, "Total Sale: %s\n", formatNumber(grand.TotalPrice))
	fmt.Fprintf(&b, "Total Due: %s\n", formatNumber(grand.TotalDue))
	fmt.Fprintf(&b, "Total Items Sold: %s", formatNumber(grand.TotalItems))
	return b.String()
}

func saleInfoReply(row []string) string {
	return fmt.Sprintf("Sale Info:\nSale ID: %s\nProduct Name: %s\nPrice: %s\nDue: %s\nQuantity: %s\nSellerNumber: %s\nSale Date: %s",
		cell(row, 0), cell(row, 1), cell(row, 2), cell(row, 3), cell(row, 4), cell(row, 5), cell(row, 6))
}

// Truncate caps a reply at the channel's maximum message length.
func Truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxReplyLen {
		return s
	}
	return string(runes[:maxReplyLen])
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
