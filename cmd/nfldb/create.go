package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"gridiron/csvdata"
	"gridiron/database"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const sampleSize = 5

func newCreateCmd(a *app) *cobra.Command {
	var teamsPath, playersPath string
	var skipQueries bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create the teams and players_2024 tables from CSV files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("teams") {
				a.cfg.TeamsCSV = teamsPath
			}
			if cmd.Flags().Changed("players") {
				a.cfg.PlayersCSV = playersPath
			}
			if err := a.create(cmd.Context(), cmd.OutOrStdout(), skipQueries); err != nil {
				return fmt.Errorf("error creating database: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&teamsPath, "teams", "teams.csv", "teams CSV file")
	cmd.Flags().StringVar(&playersPath, "players", "players_2024.csv", "players CSV file")
	cmd.Flags().BoolVar(&skipQueries, "skip-queries", false, "do not run the sample queries after loading")
	return cmd
}

func (a *app) create(ctx context.Context, out io.Writer, skipQueries bool) error {
	start := time.Now()

	fmt.Fprintln(out, "Reading CSV files...")
	teams, err := csvdata.ReadFile(a.cfg.TeamsCSV)
	if err != nil {
		return err
	}
	players, err := csvdata.ReadFile(a.cfg.PlayersCSV)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Teams data: %d records\n", len(teams.Rows))
	fmt.Fprintf(out, "Players data: %d records\n", len(players.Rows))

	fmt.Fprintf(out, "Creating %s database: %s\n", a.cfg.Driver, a.cfg.DSN)
	db, err := database.Open(a.cfg.Driver, a.cfg.DSN)
	if err != nil {
		return err
	}
	defer database.Close(db)

	for _, load := range []struct {
		name  string
		table *csvdata.Table
	}{
		{database.TeamsTable, teams},
		{database.PlayersTable, players},
	} {
		fmt.Fprintf(out, "Creating %s table...\n", load.name)
		n, err := database.ReplaceTable(ctx, db, load.name, load.table)
		if err != nil {
			return err
		}
		log.Debug().Str("table", load.name).Int64("rows", n).Msg("Table loaded")
	}

	if err := printSummary(ctx, out, db, a.cfg.DSN); err != nil {
		return err
	}
	log.Info().Dur("duration", time.Since(start)).Msg("Database created")

	if skipQueries {
		return nil
	}
	fmt.Fprintln(out)
	return runQueries(ctx, out, database.NewQueries(db), formatText)
}

func printSummary(ctx context.Context, out io.Writer, db *gorm.DB, dsn string) error {
	q := database.NewQueries(db)

	fmt.Fprintln(out, "\n=== DATABASE CREATED SUCCESSFULLY ===")
	fmt.Fprintf(out, "Database file: %s\n", dsn)

	tables, err := q.Tables(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Tables created: %s\n", strings.Join(tables, ", "))

	for _, name := range []string{database.TeamsTable, database.PlayersTable} {
		info, err := q.TableInfo(ctx, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n--- %s TABLE ---\n", strings.ToUpper(name))
		fmt.Fprintln(out, "Columns:")
		for _, c := range info.Columns {
			fmt.Fprintf(out, "  - %s (%s)\n", c.Name, c.Type)
		}
		fmt.Fprintf(out, "Records: %d\n", info.Records)
	}

	fmt.Fprintln(out, "\n--- SAMPLE QUERIES ---")
	fmt.Fprintln(out, "Sample teams:")
	teams, err := q.SampleTeams(ctx, sampleSize)
	if err != nil {
		return err
	}
	for _, t := range teams {
		fmt.Fprintf(out, "  %s\n", teamLine(t))
	}

	fmt.Fprintln(out, "\nSample players:")
	players, err := q.SamplePlayers(ctx, sampleSize)
	if err != nil {
		return err
	}
	for _, p := range players {
		fmt.Fprintf(out, "  %s\n", playerLine(p))
	}

	fmt.Fprintf(out, "\nDatabase successfully created: %s\n", dsn)
	return nil
}
