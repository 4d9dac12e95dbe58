package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sales_bot/api"
	"sales_bot/internal/ai"
	"sales_bot/internal/config"
	"sales_bot/internal/sales"
	"sales_bot/internal/sheets"
	"sales_bot/internal/whatsapp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("error loading configuration: %v", err))
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var ledger sales.Ledger
	if cfg.LedgerBackend == "memory" {
		ledger = sales.NewLocalLedger()
	} else {
		ledger = sheets.NewClient(cfg.SpreadsheetID, cfg.SheetsAccessToken)
	}

	salesService := sales.NewService(ledger, logger)
	messenger := whatsapp.NewClient(cfg.MetaWhatsAppToken, cfg.WhatsAppPhoneNumberID)
	responder := ai.NewClient(cfg.OpenAIAPIKey)

	r := gin.Default()
	api.InitRoutes(r, salesService, messenger, responder, cfg.MetaVerifyToken, logger)

	if err := r.Run(":" + cfg.Port); err != nil {
		panic(fmt.Errorf("error trying to start server: %v", err))
	}
}
