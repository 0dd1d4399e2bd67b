package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hward/gamenight/internal/ingest"
	"github.com/hward/gamenight/internal/sheet"
	"github.com/hward/gamenight/internal/store"
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	Database string
	Create   bool
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "import <workbook>",
		Short: "Import a results workbook into the database",
		Long: `Import a game-night results workbook into a SQLite database.

The workbook needs three sheets: "Games" and "Players" hold alias
tables (canonical name followed by alternate spellings, one entity per
row), and "Results" holds one event per row as date, game, winning
team, then any number of losing teams. Team cells join player names
with "+".

The workbook may be an .xlsx file or a directory with one .csv file
per sheet.

Games and players are upserted, so re-importing the same workbook does
not duplicate them; events and results are append-only.

Example:
  gamenight import --create --db results.db scores.xlsx
  gamenight import --db results.db ./exported-sheets/`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Database, "db", "o", "results.db", "path to the output SQLite database")
	cmd.Flags().BoolVarP(&opts.Create, "create", "c", false, "create the database (with schema) if it does not exist")

	return cmd
}

func runImport(ctx context.Context, opts *ImportOptions, workbook string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Without --create, a missing database file is a command error:
	// importing into the wrong path should not silently mint a new db.
	if !opts.Create {
		if _, err := os.Stat(opts.Database); err != nil {
			return WrapExitError(ExitCommandError,
				fmt.Sprintf("database %s not found (use --create to make a new one)", opts.Database), err)
		}
	}

	wb, err := sheet.Open(workbook)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open workbook", err)
	}
	defer wb.Close()

	slog.Info("opening database", "path", opts.Database)
	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	run, err := ingest.ImportWorkbook(ctx, st, wb, workbook)
	if err != nil {
		return WrapExitError(ExitFailure, "import failed", err)
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return out.Success(run)
	}
	return out.Success(fmt.Sprintf("Imported %d events from %s into %s", run.Events, workbook, opts.Database))
}
