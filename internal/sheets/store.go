package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/jdalisay/pitaka/internal/common"
	"github.com/jdalisay/pitaka/internal/service"
)

// Store implements the TabularStore interface on a Google Sheets
// spreadsheet: one sheet tab per table, first row the header. Cells are
// read formatted, so numbers may arrive as comma-grouped strings and
// dates as display strings; the row decoder owns that normalization.
type Store struct {
	service *sheets.Service
	logger  *slog.Logger
	config  Config
}

// NewStore creates a Google Sheets store.
func NewStore(ctx context.Context, config Config, logger *slog.Logger) (*Store, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	svc, err := createSheetsService(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Store{
		config:  config,
		service: svc,
		logger:  logger,
	}, nil
}

// ReadTable implements the TabularStore interface.
func (s *Store) ReadTable(ctx context.Context, name string) (*service.Table, error) {
	resp, err := s.service.Spreadsheets.Values.
		Get(s.config.SpreadsheetID, tabRange(name)).
		Context(ctx).Do()
	if err != nil {
		if isMissingSheet(err) {
			return nil, fmt.Errorf("%w: %s", common.ErrTableNotFound, name)
		}
		return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
	}

	t := &service.Table{Name: name}
	if len(resp.Values) == 0 {
		return t, nil
	}

	t.Header = make([]string, len(resp.Values[0]))
	for i, cell := range resp.Values[0] {
		t.Header[i] = fmt.Sprint(cell)
	}
	t.Rows = resp.Values[1:]
	return t, nil
}

// AppendRow implements the TabularStore interface.
func (s *Store) AppendRow(ctx context.Context, name string, row []any) error {
	return s.withRetry(ctx, func() error {
		_, err := s.service.Spreadsheets.Values.
			Append(s.config.SpreadsheetID, tabRange(name), &sheets.ValueRange{Values: [][]any{row}}).
			ValueInputOption("USER_ENTERED").
			InsertDataOption("INSERT_ROWS").
			Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("failed to append to sheet %s: %w", name, err)
		}
		return nil
	})
}

// UpdateRow implements the TabularStore interface.
func (s *Store) UpdateRow(ctx context.Context, name string, rowIndex int, row []any) error {
	return s.UpdateRows(ctx, name, rowIndex, [][]any{row})
}

// UpdateRows implements the TabularStore interface. Data row 0 lives at
// sheet row 2, below the header.
func (s *Store) UpdateRows(ctx context.Context, name string, startRow int, rows [][]any) error {
	if startRow < 0 {
		return fmt.Errorf("row %d out of range for sheet %s", startRow, name)
	}
	writeRange := fmt.Sprintf("'%s'!A%d", name, startRow+2)
	return s.withRetry(ctx, func() error {
		_, err := s.service.Spreadsheets.Values.
			Update(s.config.SpreadsheetID, writeRange, &sheets.ValueRange{Values: rows}).
			ValueInputOption("USER_ENTERED").
			Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("failed to update sheet %s at row %d: %w", name, startRow, err)
		}
		return nil
	})
}

// Close implements the TabularStore interface.
func (s *Store) Close() error {
	return nil
}

func (s *Store) withRetry(ctx context.Context, operation func() error) error {
	return common.WithRetry(ctx, operation, service.RetryOptions{
		MaxAttempts:  s.config.RetryAttempts,
		InitialDelay: s.config.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	})
}

func tabRange(name string) string {
	return fmt.Sprintf("'%s'", name)
}

// isMissingSheet recognizes the API error for a range referencing a sheet
// tab that does not exist. The API reports it as a 400 with an "Unable to
// parse range" message; other 400s (bad values, malformed requests) must
// not read as a missing table.
func isMissingSheet(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == 400 && strings.Contains(apiErr.Message, "Unable to parse range")
}

// createSheetsService creates a Google Sheets API client from either a
// service account key or OAuth2 refresh-token credentials.
func createSheetsService(ctx context.Context, config Config) (*sheets.Service, error) {
	var tokenSource oauth2.TokenSource

	if config.ServiceAccountPath != "" {
		jsonKey, err := os.ReadFile(config.ServiceAccountPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key file: %w", err)
		}

		jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("unable to parse service account key: %w", err)
		}

		tokenSource = jwtConfig.TokenSource(ctx)
	} else {
		oauthConfig := &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{sheets.SpreadsheetsScope},
		}

		token := &oauth2.Token{
			RefreshToken: config.RefreshToken,
			TokenType:    "Bearer",
		}

		tokenSource = oauthConfig.TokenSource(ctx, token)
	}

	httpClient := oauth2.NewClient(ctx, tokenSource)
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}

	return srv, nil
}
