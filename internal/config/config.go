// Package config loads runtime configuration from environment variables.
package config

import (
	"errors"

	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the process needs at startup.
type Config struct {
	Port string `envconfig:"PORT" default:"9500"`

	MetaVerifyToken       string `envconfig:"META_VERIFY_TOKEN" required:"true"`
	MetaWhatsAppToken     string `envconfig:"META_WHATSAPP_TOKEN" required:"true"`
	WhatsAppPhoneNumberID string `envconfig:"WHATSAPP_PHONE_NUMBER_ID" required:"true"`

	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY" required:"true"`

	// LedgerBackend selects the sales ledger: "sheets" or "memory".
	LedgerBackend     string `envconfig:"LEDGER_BACKEND" default:"sheets"`
	SpreadsheetID     string `envconfig:"SPREADSHEET_ID"`
	SheetsAccessToken string `envconfig:"SHEETS_ACCESS_TOKEN"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.LedgerBackend != "sheets" && cfg.LedgerBackend != "memory" {
		return nil, errors.New("ledger backend must be sheets or memory")
	}
	if cfg.LedgerBackend == "sheets" && (cfg.SpreadsheetID == "" || cfg.SheetsAccessToken == "") {
		return nil, errors.New("spreadsheet id and sheets access token must be provided for the sheets backend")
	}
	return &cfg, nil
}
