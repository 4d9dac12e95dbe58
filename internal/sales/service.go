package sales

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

const ledgerTimeLayout = "Mon, Jan 2, 2006 3:04 PM"

// Service provides the sale command operations on a Ledger backend and turns
// each command into its reply text.
//
// Update and remove are not ownership-scoped: any sender who knows a sale ID
// can mutate or delete that sale. That gap is deliberate here; senders are
// trusted staff on the same ledger.
type Service struct {
	ledger Ledger
	logger *zap.Logger
	now    func() time.Time
	loc    *time.Location
}

// NewService creates a new Service.
func NewService(ledger Ledger, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	loc, err := time.LoadLocation("Asia/Dhaka")
	if err != nil {
		loc = time.UTC
	}
	return &Service{
		ledger: ledger,
		logger: logger,
		now:    time.Now,
		loc:    loc,
	}
}

// HandleText parses one inbound message and executes the command it carries.
// It returns the reply text and whether the message was handled; unhandled
// text belongs to the free-form AI responder. Backing-store failures are
// logged and answered with a generic failure reply, never propagated.
func (s *Service) HandleText(senderID, text string) (string, bool) {
	switch cmd := Parse(text).(type) {
	case CreateSale:
		rec, err := s.CreateSale(cmd, senderID)
		if err != nil {
			s.logger.Error("failed to record sale", zap.String("sender_id", senderID), zap.Error(err))
			return storeFailureReply, true
		}
		return confirmationReply(rec), true

	case UpdateSale:
		updated, err := s.UpdateSale(cmd, senderID)
		if err != nil {
			s.logger.Error("failed to update sale", zap.String("sale_id", cmd.ID), zap.Error(err))
			return storeFailureReply, true
		}
		if !updated {
			return notFoundReply(cmd.ID), true
		}
		price := cmd.UnitPrice.Mul(cmd.Quantity)
		return updatedReply(cmd, price, price.Sub(cmd.AmountReceived)), true

	case RemoveSale:
		removed, err := s.RemoveSale(cmd.ID)
		if err != nil {
			s.logger.Error("failed to remove sale", zap.String("sale_id", cmd.ID), zap.Error(err))
			return storeFailureReply, true
		}
		if !removed {
			return notFoundReply(cmd.ID), true
		}
		return removedReply(cmd.ID), true

	case GetSale:
		if cmd.ID == "" {
			return missingSaleIDReply, true
		}
		row, err := s.GetSale(cmd.ID)
		if err == ErrNotFound {
			return getNotFoundReply(cmd.ID), true
		}
		if err != nil {
			s.logger.Error("failed to read sale", zap.String("sale_id", cmd.ID), zap.Error(err))
			return storeFailureReply, true
		}
		return saleInfoReply(row), true

	case TotalSale:
		rows, err := s.ledger.ReadAll()
		if err != nil {
			s.logger.Error("failed to read ledger for totals", zap.Error(err))
			return storeFailureReply, true
		}
		return totalsReply(TotalForSender(rows, senderID)), true

	case TotalSalesReport:
		rows, err := s.ledger.ReadAll()
		if err != nil {
			s.logger.Error("failed to generate sales report", zap.Error(err))
			return reportFailureReply, true
		}
		groups, grand := GroupedReport(rows)
		return groupedReportReply(groups, grand), true
	}

	return "", false
}

// CreateSale assigns a fresh sale ID, derives totalPrice and due, and appends
// the row to the ledger. There is no rollback on append failure.
func (s *Service) CreateSale(cmd CreateSale, senderID string) (*SaleRecord, error) {
	total := cmd.UnitPrice.Mul(cmd.Quantity)
	rec := &SaleRecord{
		ID:             GenerateSaleID(),
		Product:        cmd.Product,
		UnitPrice:      cmd.UnitPrice,
		Quantity:       cmd.Quantity,
		AmountReceived: cmd.AmountReceived,
		TotalPrice:     total,
		Due:            total.Sub(cmd.AmountReceived),
		SenderID:       senderID,
		CreatedAt:      s.now().In(s.loc).Format(ledgerTimeLayout),
	}
	if err := s.ledger.Append(rec.Row()); err != nil {
		return nil, fmt.Errorf("append sale: %w", err)
	}
	s.logger.Info("sale recorded",
		zap.String("sale_id", rec.ID),
		zap.String("sender_id", senderID),
		zap.String("product", rec.Product),
	)
	return rec, nil
}

// UpdateSale replaces the row holding cmd.ID in place, preserving the
// original timestamp. It never creates a row: an absent ID returns false.
func (s *Service) UpdateSale(cmd UpdateSale, senderID string) (bool, error) {
	rows, err := s.ledger.ReadAll()
	if err != nil {
		return false, fmt.Errorf("read ledger: %w", err)
	}
	idx := findRowByID(rows, cmd.ID)
	if idx < 0 {
		return false, nil
	}

	total := cmd.UnitPrice.Mul(cmd.Quantity)
	row := []string{
		cmd.ID,
		cmd.Product,
		total.String(),
		total.Sub(cmd.AmountReceived).String(),
		cmd.Quantity.String(),
		senderID,
		cell(rows[idx], 6),
	}
	if err := s.ledger.Replace(idx, row); err != nil {
		return false, fmt.Errorf("replace sale row: %w", err)
	}
	return true, nil
}

// RemoveSale deletes the row holding id. The snapshot is taken immediately
// before the positional delete; see the Ledger atomicity note.
func (s *Service) RemoveSale(id string) (bool, error) {
	rows, err := s.ledger.ReadAll()
	if err != nil {
		return false, fmt.Errorf("read ledger: %w", err)
	}
	idx := findRowByID(rows, id)
	if idx < 0 {
		return false, nil
	}
	if err := s.ledger.DeleteRow(idx); err != nil {
		return false, fmt.Errorf("delete sale row: %w", err)
	}
	return true, nil
}

// GetSale returns the ledger row for id, skipping the header row.
// Returns ErrNotFound if no data row carries the ID.
func (s *Service) GetSale(id string) ([]string, error) {
	rows, err := s.ledger.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	if len(rows) > 0 {
		rows = rows[1:]
	}
	for _, row := range rows {
		if cell(row, 0) == id {
			return row, nil
		}
	}
	return nil, ErrNotFound
}

// findRowByID resolves a sale ID to its physical row position, header
// included, matching how the backing sheet addresses rows.
func findRowByID(rows [][]string, id string) int {
	for i, row := range rows {
		if cell(row, 0) == id {
			return i
		}
	}
	return -1
}
