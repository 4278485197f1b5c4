package main

import (
	"context"
	"fmt"
	"io"

	"gridiron/database"
	"gridiron/models"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatCSV  = "csv"
)

func newQueryCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run the sample queries against a loaded database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatText && format != formatCSV {
				return fmt.Errorf("unsupported format %q (want %s or %s)", format, formatText, formatCSV)
			}

			db, err := database.Open(a.cfg.Driver, a.cfg.DSN)
			if err != nil {
				return err
			}
			defer database.Close(db)

			return runQueries(cmd.Context(), cmd.OutOrStdout(), database.NewQueries(db), format)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "output format (text or csv)")
	return cmd
}

// report is one titled sample query
type report struct {
	title string
	run   func(ctx context.Context, q *database.Queries) (interface{}, []string, error)
}

var reports = []report{
	{
		title: "All NFL Teams",
		run: func(ctx context.Context, q *database.Queries) (interface{}, []string, error) {
			rows, err := q.AllTeams(ctx)
			lines := make([]string, len(rows))
			for i, r := range rows {
				lines[i] = teamLine(r)
			}
			return &rows, lines, err
		},
	},
	{
		title: "Player count by team",
		run: func(ctx context.Context, q *database.Queries) (interface{}, []string, error) {
			rows, err := q.PlayerCountsByTeam(ctx, 10)
			lines := make([]string, len(rows))
			for i, r := range rows {
				lines[i] = fmt.Sprintf("%s: %d players", models.Deref(r.Team), r.PlayerCount)
			}
			return &rows, lines, err
		},
	},
	{
		title: "Starting Quarterbacks (sample)",
		run: func(ctx context.Context, q *database.Queries) (interface{}, []string, error) {
			rows, err := q.StartingQuarterbacks(ctx, 10)
			lines := make([]string, len(rows))
			for i, r := range rows {
				lines[i] = fmt.Sprintf("#%s %s - %s", models.Deref(r.JerseyNumber), r.PlayerName, models.Deref(r.Team))
			}
			return &rows, lines, err
		},
	},
	{
		title: "Sample players with full team info",
		run: func(ctx context.Context, q *database.Queries) (interface{}, []string, error) {
			rows, err := q.QuarterbacksWithTeams(ctx, 5)
			lines := make([]string, len(rows))
			for i, r := range rows {
				lines[i] = fmt.Sprintf("%s (%s) - %s (%s %s)", r.PlayerName, r.Position, r.TeamName,
					models.Deref(r.TeamConf), models.Deref(r.TeamDivision))
			}
			return &rows, lines, err
		},
	},
	{
		title: "Sample players",
		run: func(ctx context.Context, q *database.Queries) (interface{}, []string, error) {
			rows, err := q.SamplePlayers(ctx, 5)
			lines := make([]string, len(rows))
			for i, r := range rows {
				lines[i] = playerLine(r)
			}
			return &rows, lines, err
		},
	},
}

func runQueries(ctx context.Context, out io.Writer, q *database.Queries, format string) error {
	if format == formatText {
		fmt.Fprintln(out, "=== NFL DATABASE SAMPLE QUERIES ===")
	}

	for i, rep := range reports {
		rows, lines, err := rep.run(ctx, q)
		if err != nil {
			return err
		}

		if format == formatCSV {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "# %d. %s\n", i+1, rep.title)
			if err := gocsv.Marshal(rows, out); err != nil {
				return fmt.Errorf("write %s: %w", rep.title, err)
			}
			continue
		}

		fmt.Fprintf(out, "\n%d. %s:\n", i+1, rep.title)
		for _, line := range lines {
			fmt.Fprintf(out, "   %s\n", line)
		}
	}
	return nil
}

func teamLine(t models.TeamSummary) string {
	return fmt.Sprintf("%s: %s (%s %s)", t.TeamAbbr, t.TeamName, models.Deref(t.TeamConf), models.Deref(t.TeamDivision))
}

func playerLine(p models.PlayerSample) string {
	return fmt.Sprintf("%s - %s %s", p.PlayerName, models.Deref(p.Team), models.Deref(p.Position))
}
