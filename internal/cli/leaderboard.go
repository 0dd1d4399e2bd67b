package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hward/gamenight/internal/store"
)

// LeaderboardOptions holds flags for the leaderboard command.
type LeaderboardOptions struct {
	*RootOptions
	Database string
}

// NewLeaderboardCommand creates the leaderboard command.
func NewLeaderboardCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LeaderboardOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Print player standings by win count",
		Long: `Print players ranked by number of winning results, descending.
Ties are broken by name.

Example:
  gamenight leaderboard --db results.db
  gamenight leaderboard --db results.db --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLeaderboard(cmd.Context(), opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runLeaderboard(ctx context.Context, opts *LeaderboardOptions, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	standings, err := st.Leaderboard(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, "leaderboard query failed", err)
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return out.Success(standings)
	}

	if len(standings) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No results imported yet.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PLACE\tPLAYER\tWINS")
	for i, s := range standings {
		fmt.Fprintf(w, "%d.\t%s\t%d\n", i+1, s.Name, s.Wins)
	}
	return w.Flush()
}
