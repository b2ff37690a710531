package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/repository/sheets"
	"google.golang.org/api/option"

	"github.com/urfave/cli/v3"
)

type Sheets struct {
	spreadsheetID   string
	credentialsFile string
}

func (x *Sheets) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sheets-spreadsheet-id",
			Usage:       "Google Sheets spreadsheet ID",
			Category:    "Sheets",
			Destination: &x.spreadsheetID,
			Sources:     cli.EnvVars("STELLA_SHEETS_SPREADSHEET_ID"),
		},
		&cli.StringFlag{
			Name:        "sheets-credentials-file",
			Usage:       "Path to service account credentials JSON (default: application default credentials)",
			Category:    "Sheets",
			Destination: &x.credentialsFile,
			Sources:     cli.EnvVars("STELLA_SHEETS_CREDENTIALS_FILE"),
		},
	}
}

func (x Sheets) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("spreadsheet_id", x.spreadsheetID),
		slog.String("credentials_file", x.credentialsFile),
	)
}

func (x *Sheets) Configure(ctx context.Context) (*sheets.Sheets, error) {
	if x.spreadsheetID == "" {
		return nil, goerr.New("sheets spreadsheet ID is not set")
	}

	var opts []option.ClientOption
	if x.credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(x.credentialsFile))
	}

	return sheets.New(ctx, x.spreadsheetID, opts...)
}

// IsConfigured returns true if Sheets is configured
func (x *Sheets) IsConfigured() bool {
	return x.spreadsheetID != ""
}
