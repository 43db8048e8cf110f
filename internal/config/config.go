package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/jdalisay/pitaka/internal/schema"
	"github.com/jdalisay/pitaka/internal/sheets"
)

// Settings is the resolved runtime configuration.
type Settings struct {
	StoreBackend string // "sheets" or "sqlite"
	SQLitePath   string
	DisplayName  string // identity string for personalization only
	Sheets       sheets.Config
	Tables       schema.Tables
}

// Load resolves settings with this precedence: viper configuration (config
// file or PITAKA_ env vars), then direct environment variables, then
// defaults.
func Load() (*Settings, error) {
	s := &Settings{
		StoreBackend: "sqlite",
		Tables:       schema.DefaultTables(),
		Sheets:       sheets.DefaultConfig(),
	}

	if v := viper.GetString("store.backend"); v != "" {
		s.StoreBackend = v
	}
	if s.StoreBackend != "sqlite" && s.StoreBackend != "sheets" {
		return nil, fmt.Errorf("unknown store backend: %q", s.StoreBackend)
	}

	s.SQLitePath = ExpandPath(viper.GetString("store.sqlite_path"))
	if s.SQLitePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		s.SQLitePath = filepath.Join(home, ".local", "share", "pitaka", "pitaka.db")
	}

	s.DisplayName = viper.GetString("user.name")
	if s.DisplayName == "" {
		s.DisplayName = os.Getenv("PITAKA_USER")
	}

	loadTableNames(&s.Tables)

	if s.StoreBackend == "sheets" {
		if err := loadSheetsConfig(&s.Sheets); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func loadTableNames(t *schema.Tables) {
	if v := viper.GetString("tables.transactions"); v != "" {
		t.Transactions = v
	}
	if v := viper.GetString("tables.cards"); v != "" {
		t.Cards = v
	}
	if v := viper.GetString("tables.goals"); v != "" {
		t.Goals = v
	}
	if v := viper.GetString("tables.reminders"); v != "" {
		t.Reminders = v
	}
	if v := viper.GetString("tables.config"); v != "" {
		t.Config = v
	}
}

func loadSheetsConfig(c *sheets.Config) error {
	if v := viper.GetString("sheets.service_account_path"); v != "" {
		c.ServiceAccountPath = ExpandPath(v)
	}
	if v := viper.GetString("sheets.client_id"); v != "" {
		c.ClientID = v
	}
	if v := viper.GetString("sheets.client_secret"); v != "" {
		c.ClientSecret = v
	}
	if v := viper.GetString("sheets.refresh_token"); v != "" {
		c.RefreshToken = v
	}
	if v := viper.GetString("sheets.spreadsheet_id"); v != "" {
		c.SpreadsheetID = v
	}
	if v := viper.GetInt("sheets.retry_attempts"); v > 0 {
		c.RetryAttempts = v
	}
	if v := viper.GetDuration("sheets.retry_delay"); v > 0 {
		c.RetryDelay = v
	}

	// Override with direct environment variables if not set
	if c.ServiceAccountPath == "" {
		if v := os.Getenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH"); v != "" {
			c.ServiceAccountPath = ExpandPath(v)
		}
	}
	if c.ClientID == "" {
		c.ClientID = os.Getenv("GOOGLE_SHEETS_CLIENT_ID")
	}
	if c.ClientSecret == "" {
		c.ClientSecret = os.Getenv("GOOGLE_SHEETS_CLIENT_SECRET")
	}
	if c.RefreshToken == "" {
		c.RefreshToken = os.Getenv("GOOGLE_SHEETS_REFRESH_TOKEN")
	}
	if c.SpreadsheetID == "" {
		c.SpreadsheetID = os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID")
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = time.Second
	}

	return c.Validate()
}
